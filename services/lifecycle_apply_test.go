package services

import (
	"testing"
	"time"

	"hotel-ops-backend/models"

	"github.com/shopspring/decimal"
)

func newConfirmedBooking(room *models.Room) *models.Booking {
	return &models.Booking{
		ID:           1,
		GuestID:      10,
		RoomID:       room.ID,
		CheckinDate:  time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		CheckoutDate: time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
		Status:       models.BookingConfirmed,
		GuestsCount:  2,
		ExtraCharges: decimal.Zero,
	}
}

func availableRoom() *models.Room {
	r := &models.Room{RoomNumber: "101", RoomType: "Single", PricePerNight: decimal.NewFromInt(60)}
	r.ID = 7
	r.SetStatus(models.RoomAvailable)
	return r
}

func TestApplyCheckIn(t *testing.T) {
	now := time.Now().UTC()

	room := availableRoom()
	room.SetStatus(models.RoomBooked)
	booking := newConfirmedBooking(room)

	changed, err := applyCheckIn(booking, room, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Fatalf("expected change")
	}
	if booking.Status != models.BookingCheckedIn {
		t.Fatalf("booking status = %s, want checked-in", booking.Status)
	}
	if room.Status != models.RoomOccupied || room.IsAvailable {
		t.Fatalf("room = %s/avail=%v, want occupied/false", room.Status, room.IsAvailable)
	}
	if booking.CheckedInAt == nil {
		t.Fatalf("expected CheckedInAt set")
	}

	// Replay is a no-op success, not an error, and no side effects repeat.
	changed, err = applyCheckIn(booking, room, now.Add(time.Minute))
	if err != nil || changed {
		t.Fatalf("replay: changed=%v err=%v, want no-op success", changed, err)
	}
	if !booking.CheckedInAt.Equal(now) {
		t.Fatalf("replay must not move CheckedInAt")
	}
}

func TestApplyCheckInRejectsOtherStatuses(t *testing.T) {
	now := time.Now().UTC()
	for _, status := range []string{models.BookingPending, models.BookingCheckedOut, models.BookingCancelled} {
		room := availableRoom()
		booking := newConfirmedBooking(room)
		booking.Status = status
		if _, err := applyCheckIn(booking, room, now); err != ErrIllegalTransition {
			t.Errorf("checkIn from %s: got %v, want ErrIllegalTransition", status, err)
		}
	}
}

func TestApplyCheckOut(t *testing.T) {
	now := time.Now().UTC()

	room := availableRoom()
	room.SetStatus(models.RoomOccupied)
	booking := newConfirmedBooking(room)
	booking.Status = models.BookingCheckedIn

	changed, err := applyCheckOut(booking, room, decimal.NewFromInt(25), now)
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if booking.Status != models.BookingCheckedOut {
		t.Fatalf("booking status = %s, want checked-out", booking.Status)
	}
	if room.Status != models.RoomCleaning {
		t.Fatalf("room status = %s, want cleaning", room.Status)
	}
	if !booking.ExtraCharges.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("extra charges = %s, want 25", booking.ExtraCharges)
	}

	// Replay: no-op, charges must not double.
	changed, err = applyCheckOut(booking, room, decimal.NewFromInt(25), now)
	if err != nil || changed {
		t.Fatalf("replay: changed=%v err=%v", changed, err)
	}
	if !booking.ExtraCharges.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("replay doubled extra charges: %s", booking.ExtraCharges)
	}
}

func TestApplyCheckOutRejectsNegativeCharge(t *testing.T) {
	room := availableRoom()
	booking := newConfirmedBooking(room)
	booking.Status = models.BookingCheckedIn

	if _, err := applyCheckOut(booking, room, decimal.NewFromInt(-1), time.Now().UTC()); err != ErrInvalidCharge {
		t.Fatalf("got %v, want ErrInvalidCharge", err)
	}
	if booking.Status != models.BookingCheckedIn {
		t.Fatalf("booking mutated on validation failure")
	}
}

func TestApplyCheckOutRejectsOtherStatuses(t *testing.T) {
	for _, status := range []string{models.BookingPending, models.BookingConfirmed, models.BookingCancelled} {
		room := availableRoom()
		booking := newConfirmedBooking(room)
		booking.Status = status
		if _, err := applyCheckOut(booking, room, decimal.Zero, time.Now().UTC()); err != ErrIllegalTransition {
			t.Errorf("checkOut from %s: got %v, want ErrIllegalTransition", status, err)
		}
	}
}

func TestApplyCancelReleasesRoom(t *testing.T) {
	room := availableRoom()
	room.SetStatus(models.RoomBooked)
	booking := newConfirmedBooking(room)

	changed, err := applyCancel(booking, room, false)
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if booking.Status != models.BookingCancelled || !booking.IsTerminal() {
		t.Fatalf("booking status = %s, want terminal cancelled", booking.Status)
	}
	if room.Status != models.RoomAvailable || !room.IsAvailable {
		t.Fatalf("room not released: %s/avail=%v", room.Status, room.IsAvailable)
	}
}

func TestApplyCancelKeepsClaimedRoom(t *testing.T) {
	room := availableRoom()
	room.SetStatus(models.RoomBooked)
	booking := newConfirmedBooking(room)

	// Another non-terminal booking still claims the room.
	if _, err := applyCancel(booking, room, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.RoomBooked {
		t.Fatalf("room released while still claimed: %s", room.Status)
	}
}

func TestApplyCancelFromCheckedInFails(t *testing.T) {
	room := availableRoom()
	booking := newConfirmedBooking(room)
	booking.Status = models.BookingCheckedIn
	if _, err := applyCancel(booking, room, false); err != ErrIllegalTransition {
		t.Fatalf("got %v, want ErrIllegalTransition", err)
	}
}

func TestApplyMarkRoomCleanedAndDirty(t *testing.T) {
	room := availableRoom()
	room.SetStatus(models.RoomCleaning)

	if changed, err := applyMarkRoomCleaned(room); err != nil || !changed {
		t.Fatalf("cleaned: changed=%v err=%v", changed, err)
	}
	if room.Status != models.RoomAvailable || !room.IsAvailable {
		t.Fatalf("room = %s/avail=%v, want available/true", room.Status, room.IsAvailable)
	}

	// Replay is a no-op.
	if changed, err := applyMarkRoomCleaned(room); err != nil || changed {
		t.Fatalf("cleaned replay: changed=%v err=%v", changed, err)
	}

	if changed, err := applyMarkRoomDirty(room); err != nil || !changed {
		t.Fatalf("dirty: changed=%v err=%v", changed, err)
	}
	if room.Status != models.RoomCleaning || room.IsAvailable {
		t.Fatalf("room = %s/avail=%v, want cleaning/false", room.Status, room.IsAvailable)
	}

	// Occupied rooms cannot be flagged cleaned.
	room.SetStatus(models.RoomOccupied)
	if _, err := applyMarkRoomCleaned(room); err != ErrIllegalTransition {
		t.Fatalf("cleaned from occupied: got %v, want ErrIllegalTransition", err)
	}
	if _, err := applyMarkRoomDirty(room); err != ErrIllegalTransition {
		t.Fatalf("dirty from occupied: got %v, want ErrIllegalTransition", err)
	}

	// Maintenance resolution goes back to available through the same path.
	room.SetStatus(models.RoomUnderMaintenance)
	if changed, err := applyMarkRoomCleaned(room); err != nil || !changed {
		t.Fatalf("maintenance resolve: changed=%v err=%v", changed, err)
	}
	if room.Status != models.RoomAvailable {
		t.Fatalf("room = %s, want available", room.Status)
	}
}

// TestFrontDeskScenario walks the full stay: book → confirm → check in →
// check out → clean, asserting each intermediate room/booking status.
func TestFrontDeskScenario(t *testing.T) {
	now := time.Now().UTC()

	room := availableRoom()
	booking := newConfirmedBooking(room)
	booking.Status = models.BookingPending

	// Booking created: room goes booked.
	room.SetStatus(models.RoomBooked)
	if room.IsAvailable {
		t.Fatalf("booked room still flagged available")
	}

	if changed, err := applyConfirm(booking); err != nil || !changed {
		t.Fatalf("confirm: changed=%v err=%v", changed, err)
	}
	if booking.Status != models.BookingConfirmed {
		t.Fatalf("status = %s, want confirmed", booking.Status)
	}

	if _, err := applyCheckIn(booking, room, now); err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if booking.Status != models.BookingCheckedIn || room.Status != models.RoomOccupied {
		t.Fatalf("after check-in: booking=%s room=%s", booking.Status, room.Status)
	}

	if _, err := applyCheckOut(booking, room, decimal.Zero, now); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if booking.Status != models.BookingCheckedOut || room.Status != models.RoomCleaning {
		t.Fatalf("after check-out: booking=%s room=%s", booking.Status, room.Status)
	}
	if !booking.IsTerminal() {
		t.Fatalf("checked-out booking must be terminal")
	}

	if _, err := applyMarkRoomCleaned(room); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if room.Status != models.RoomAvailable || !room.IsAvailable {
		t.Fatalf("after cleaning: room=%s avail=%v", room.Status, room.IsAvailable)
	}
}
