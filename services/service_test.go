package services

import (
	"testing"
	"time"

	"roomplanner-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.Invitation{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestHotel(t *testing.T, db *gorm.DB) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: "Test Hotel", Address: "1 Test St"}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	return hotel
}

func createTestRoom(t *testing.T, db *gorm.DB, hotelID uint, number string) models.Room {
	t.Helper()
	room := models.Room{
		HotelID: hotelID,
		Number:  number,
		Status:  models.RoomStatusFree,
		IsClean: true,
		Price:   80,
	}
	if err := room.SetRanges(nil); err != nil {
		t.Fatalf("init ranges: %v", err)
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "x", Role: role}
	if err := user.SetHotels(nil); err != nil {
		t.Fatalf("init hotel refs: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func reloadRoom(t *testing.T, db *gorm.DB, roomID uint) models.Room {
	t.Helper()
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		t.Fatalf("reload room %d: %v", roomID, err)
	}
	return room
}

// day returns midnight UTC offset from today by the given number of days.
func day(offset int) time.Time {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, offset)
}
