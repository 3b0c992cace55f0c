package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"os"
	"regexp"
	"strings"
)

const inviteCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateSecureToken returns a hex token of `length` random bytes.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateInviteToken returns an n-char A-Z0-9 token like "AB4D93KF".
// Uses crypto/rand with math/big to avoid modulo bias.
func GenerateInviteToken(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(inviteCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(inviteCharset[num.Int64()])
	}
	return sb.String(), nil
}

var inviteTokenRe = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// NormalizeInviteToken strips whitespace/hyphens and upcases.
func NormalizeInviteToken(token string) string {
	s := strings.ToUpper(strings.TrimSpace(token))
	return strings.ReplaceAll(s, "-", "")
}

// IsValidInviteTokenFormat reports whether a normalized token looks valid.
func IsValidInviteTokenFormat(token string) bool {
	return inviteTokenRe.MatchString(token)
}
