package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendHotelInviteEmail sends the join-hotel invitation with its token.
// Falls back to a mock log line when SMTP is not configured (dev).
func SendHotelInviteEmail(recipientEmail, inviteLink, name, hotelName, token string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] invite to:%s hotel:%s token:%s link:%s", recipientEmail, hotelName, token, inviteLink)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	name = safe(name)
	hotelName = safe(hotelName)
	token = safe(token)
	inviteLink = safe(inviteLink)

	if !(strings.HasPrefix(inviteLink, "http://") || strings.HasPrefix(inviteLink, "https://")) {
		inviteLink = "https://" + strings.TrimLeft(inviteLink, "/")
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("You're invited to join %s on RoomPlanner", hotelName)
	boundary := "----=_INVITE_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"You have been invited to join the staff of %s.\n"+
			"Your invitation code: %s\n"+
			"Accept the invitation here: %s\n\n"+
			"The invitation is single-use and expires automatically.\n"+
			"If you did not expect this invitation, you can ignore this email.\n",
		name, hotelName, token, inviteLink,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Invitation</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.code { font-size:22px; letter-spacing:3px; font-weight:700; margin:12px 0; }
.btn { display:inline-block; padding:12px 20px; background:#0b74ff; color:#fff; text-decoration:none; border-radius:6px; margin-top:16px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>You're invited</h2>
    <p>Hi %s,</p>
    <p>You have been invited to join the staff of <strong>%s</strong>.</p>
    <p>Your invitation code:</p>
    <p class="code">%s</p>
    <a class="btn" href="%s" target="_blank">Accept invitation</a>
    <p>The invitation is single-use and expires automatically.</p>
    <p>If you did not expect this invitation, you can ignore this email.</p>
  </div>
</div>
</body>
</html>`,
		name, hotelName, token, inviteLink,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send invite email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("Invite email sent to %s", recipientEmail)
	return nil
}
