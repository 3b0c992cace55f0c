package services

import (
	"errors"
	"testing"
	"time"

	"roomplanner-backend/models"
)

func newBooking(hotelID, roomID uint, checkIn, checkOut time.Time) models.Booking {
	return models.Booking{
		HotelID:      hotelID,
		RoomID:       roomID,
		GuestName:    "Guest",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}
}

func TestCreateBookingHalfOpenSemantics(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	first := newBooking(hotel.ID, room.ID, day(10), day(12))
	if err := svc.Create(&first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	overlapping := newBooking(hotel.ID, room.ID, day(11), day(13))
	if err := svc.Create(&overlapping); !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("overlapping create: want ErrBookingConflict, got %v", err)
	}

	// back-to-back stay, checkout == next check-in, no conflict
	adjacent := newBooking(hotel.ID, room.ID, day(12), day(14))
	if err := svc.Create(&adjacent); err != nil {
		t.Fatalf("back-to-back create: %v", err)
	}
}

func TestCreateBookingRejectsInvalidRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	b := newBooking(hotel.ID, room.ID, day(5), day(5))
	if err := svc.Create(&b); !errors.Is(err, ErrInvalidStayRange) {
		t.Fatalf("zero-length stay: want ErrInvalidStayRange, got %v", err)
	}

	b = newBooking(hotel.ID, room.ID, day(5), day(3))
	if err := svc.Create(&b); !errors.Is(err, ErrInvalidStayRange) {
		t.Fatalf("inverted stay: want ErrInvalidStayRange, got %v", err)
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)

	b := newBooking(hotel.ID, 999, day(1), day(2))
	if err := svc.Create(&b); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("want ErrRoomNotFound, got %v", err)
	}
}

func TestCreateThenHasOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	b := newBooking(hotel.ID, room.ID, day(3), day(6))
	if err := svc.Create(&b); err != nil {
		t.Fatalf("create: %v", err)
	}

	conflict, err := svc.HasOverlap(hotel.ID, room.ID, day(3), day(6), 0)
	if err != nil {
		t.Fatalf("overlap check: %v", err)
	}
	if !conflict {
		t.Fatal("freshly created booking should conflict with its own range")
	}

	conflict, err = svc.HasOverlap(hotel.ID, room.ID, day(3), day(6), b.ID)
	if err != nil {
		t.Fatalf("overlap check excluding self: %v", err)
	}
	if conflict {
		t.Fatal("excluding the booking's own id should report no conflict")
	}
}

func TestCreateMirrorsRoomState(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	// stay covering now -> occupied
	current := newBooking(hotel.ID, room.ID, day(-1), day(1))
	if err := svc.Create(&current); err != nil {
		t.Fatalf("create current stay: %v", err)
	}
	got := reloadRoom(t, db, room.ID)
	if got.Status != models.RoomStatusOccupied {
		t.Fatalf("room status: want OCCUPIED, got %s", got.Status)
	}
	if ranges := got.Ranges(); len(ranges) != 1 {
		t.Fatalf("reserved ranges: want 1, got %d", len(ranges))
	}

	// a future stay on another room does not occupy it today
	room2 := createTestRoom(t, db, hotel.ID, "R102")
	future := newBooking(hotel.ID, room2.ID, day(5), day(7))
	if err := svc.Create(&future); err != nil {
		t.Fatalf("create future stay: %v", err)
	}
	got2 := reloadRoom(t, db, room2.ID)
	if got2.Status != models.RoomStatusFree {
		t.Fatalf("room2 status: want FREE, got %s", got2.Status)
	}
	if ranges := got2.Ranges(); len(ranges) != 1 {
		t.Fatalf("room2 reserved ranges: want 1, got %d", len(ranges))
	}
}

func TestCancelFreesRoomWithoutDirtying(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	b := newBooking(hotel.ID, room.ID, day(-1), day(2))
	if err := svc.Create(&b); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Cancel(b.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	conflict, err := svc.HasOverlap(hotel.ID, room.ID, day(-1), day(2), 0)
	if err != nil {
		t.Fatalf("overlap check: %v", err)
	}
	if conflict {
		t.Fatal("cancelled range should be available again")
	}

	got := reloadRoom(t, db, room.ID)
	if got.Status != models.RoomStatusFree {
		t.Fatalf("room status: want FREE, got %s", got.Status)
	}
	if !got.IsClean {
		t.Fatal("soft cancellation must not dirty the room")
	}
	if ranges := got.Ranges(); len(ranges) != 0 {
		t.Fatalf("reserved ranges after cancel: want 0, got %d", len(ranges))
	}
}

func TestRemoveMissingBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	if err := svc.Remove(12345, false); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("want ErrBookingNotFound, got %v", err)
	}
}

func TestUpdateConflictAbortsWithoutMutation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	a := newBooking(hotel.ID, room.ID, day(1), day(3))
	if err := svc.Create(&a); err != nil {
		t.Fatalf("create a: %v", err)
	}
	b := newBooking(hotel.ID, room.ID, day(5), day(7))
	if err := svc.Create(&b); err != nil {
		t.Fatalf("create b: %v", err)
	}

	moved := b
	moved.CheckInDate = day(2)
	moved.CheckOutDate = day(4)
	if err := svc.Update(&moved); !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("conflicting update: want ErrBookingConflict, got %v", err)
	}

	stored, err := svc.GetByID(b.ID)
	if err != nil {
		t.Fatalf("reload b: %v", err)
	}
	if !stored.CheckInDate.Equal(day(5)) || !stored.CheckOutDate.Equal(day(7)) {
		t.Fatalf("booking mutated by aborted update: %v - %v", stored.CheckInDate, stored.CheckOutDate)
	}
}

func TestUpdateSameRangeSucceeds(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	b := newBooking(hotel.ID, room.ID, day(1), day(3))
	if err := svc.Create(&b); err != nil {
		t.Fatalf("create: %v", err)
	}

	b.GuestName = "Renamed Guest"
	if err := svc.Update(&b); err != nil {
		t.Fatalf("update keeping range: %v", err)
	}
}

func TestUpdateMovesRooms(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room1 := createTestRoom(t, db, hotel.ID, "R101")
	room2 := createTestRoom(t, db, hotel.ID, "R102")

	b := newBooking(hotel.ID, room1.ID, day(-1), day(1))
	if err := svc.Create(&b); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := reloadRoom(t, db, room1.ID); got.Status != models.RoomStatusOccupied {
		t.Fatalf("room1 should start occupied, got %s", got.Status)
	}

	b.RoomID = room2.ID
	if err := svc.Update(&b); err != nil {
		t.Fatalf("move update: %v", err)
	}

	got1 := reloadRoom(t, db, room1.ID)
	if got1.Status != models.RoomStatusFree {
		t.Fatalf("old room status: want FREE, got %s", got1.Status)
	}
	if !got1.IsClean {
		t.Fatal("moving a booking must not dirty the old room")
	}
	if ranges := got1.Ranges(); len(ranges) != 0 {
		t.Fatalf("old room ranges: want 0, got %d", len(ranges))
	}

	got2 := reloadRoom(t, db, room2.ID)
	if got2.Status != models.RoomStatusOccupied {
		t.Fatalf("new room status: want OCCUPIED, got %s", got2.Status)
	}
}

func TestSweepCheckouts(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	past := newBooking(hotel.ID, room.ID, day(-3), day(-1))
	if err := svc.Create(&past); err != nil {
		t.Fatalf("create past booking: %v", err)
	}
	ongoing := newBooking(hotel.ID, room.ID, day(-1), day(2))
	if err := svc.Create(&ongoing); err != nil {
		t.Fatalf("create ongoing booking: %v", err)
	}

	svc.SweepCheckouts([]uint{hotel.ID})

	if _, err := svc.GetByID(past.ID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("swept booking should be gone, got %v", err)
	}
	if _, err := svc.GetByID(ongoing.ID); err != nil {
		t.Fatalf("ongoing booking must survive the sweep: %v", err)
	}

	got := reloadRoom(t, db, room.ID)
	if got.IsClean {
		t.Fatal("sweep must dirty the room after checkout")
	}
	// the ongoing stay still covers now
	if got.Status != models.RoomStatusOccupied {
		t.Fatalf("room status after sweep: want OCCUPIED, got %s", got.Status)
	}

	// sweeping again is a no-op, the booking no longer exists
	svc.SweepCheckouts([]uint{hotel.ID})
	if _, err := svc.GetByID(ongoing.ID); err != nil {
		t.Fatalf("second sweep touched the ongoing booking: %v", err)
	}
}

func TestSweepLeavesRoomFree(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room := createTestRoom(t, db, hotel.ID, "R101")

	past := newBooking(hotel.ID, room.ID, day(-3), day(-1))
	if err := svc.Create(&past); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc.SweepCheckouts([]uint{hotel.ID})

	got := reloadRoom(t, db, room.ID)
	if got.Status != models.RoomStatusFree {
		t.Fatalf("room status: want FREE, got %s", got.Status)
	}
	if got.IsClean {
		t.Fatal("room must be dirty after a checkout sweep")
	}
	if ranges := got.Ranges(); len(ranges) != 0 {
		t.Fatalf("reserved ranges after sweep: want 0, got %d", len(ranges))
	}
}

func TestGetUpcomingOrdersByCheckIn(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	hotel := createTestHotel(t, db)
	room1 := createTestRoom(t, db, hotel.ID, "R101")
	room2 := createTestRoom(t, db, hotel.ID, "R102")

	later := newBooking(hotel.ID, room1.ID, day(5), day(6))
	if err := svc.Create(&later); err != nil {
		t.Fatalf("create later: %v", err)
	}
	sooner := newBooking(hotel.ID, room2.ID, day(2), day(3))
	if err := svc.Create(&sooner); err != nil {
		t.Fatalf("create sooner: %v", err)
	}

	list, err := svc.GetUpcoming(hotel.ID, day(0), day(10))
	if err != nil {
		t.Fatalf("get upcoming: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("upcoming count: want 2, got %d", len(list))
	}
	if list[0].ID != sooner.ID || list[1].ID != later.ID {
		t.Fatal("upcoming bookings not ordered by check-in")
	}
}
