package services

import (
	"strings"
	"testing"
	"time"

	"hotel-ops-backend/models"
)

func TestRoomTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		// The operational cycle.
		{models.RoomAvailable, models.RoomBooked, true},
		{models.RoomBooked, models.RoomOccupied, true},
		{models.RoomOccupied, models.RoomCleaning, true},
		{models.RoomCleaning, models.RoomAvailable, true},
		// Manual dirty flag and cancel release.
		{models.RoomAvailable, models.RoomCleaning, true},
		{models.RoomBooked, models.RoomAvailable, true},
		// Maintenance: reachable from anywhere, leaves only to available.
		{models.RoomAvailable, models.RoomUnderMaintenance, true},
		{models.RoomOccupied, models.RoomUnderMaintenance, true},
		{models.RoomUnderMaintenance, models.RoomAvailable, true},
		{models.RoomUnderMaintenance, models.RoomBooked, false},
		// Skips.
		{models.RoomAvailable, models.RoomOccupied, false},
		{models.RoomBooked, models.RoomCleaning, false},
		{models.RoomCleaning, models.RoomOccupied, false},
		{models.RoomOccupied, models.RoomAvailable, false},
	}
	for _, tc := range cases {
		if got := RoomTransitionAllowed(tc.from, tc.to); got != tc.want {
			t.Errorf("RoomTransitionAllowed(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBookingTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingConfirmed, models.BookingCheckedIn, true},
		{models.BookingCheckedIn, models.BookingCheckedOut, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		// Cancellation is impossible once checked in.
		{models.BookingCheckedIn, models.BookingCancelled, false},
		{models.BookingCheckedOut, models.BookingCancelled, false},
		// State skips must be rejected even for the override.
		{models.BookingPending, models.BookingCheckedIn, false},
		{models.BookingPending, models.BookingCheckedOut, false},
		{models.BookingConfirmed, models.BookingCheckedOut, false},
		// Terminal states have no outgoing edges.
		{models.BookingCheckedOut, models.BookingConfirmed, false},
		{models.BookingCancelled, models.BookingPending, false},
	}
	for _, tc := range cases {
		if got := BookingTransitionAllowed(tc.from, tc.to); got != tc.want {
			t.Errorf("BookingTransitionAllowed(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role string
		act  action
		want bool
	}{
		{models.RoleGuest, actCreateBooking, true},
		{models.RoleGuest, actCheckIn, false},
		{models.RoleGuest, actOverrideBooking, false},
		{models.RoleGuest, actGenerateInvoice, false},
		{models.RoleStaff, actMarkRoomCleaned, true},
		{models.RoleStaff, actMarkRoomDirty, true},
		{models.RoleStaff, actCheckIn, false},
		{models.RoleStaff, actCreateBooking, false},
		{models.RoleReception, actCreateBooking, true},
		{models.RoleReception, actCheckIn, true},
		{models.RoleReception, actCheckOut, true},
		{models.RoleReception, actGenerateInvoice, true},
		{models.RoleReception, actOverrideBooking, false},
		{models.RoleManager, actOverrideBooking, true},
		{models.RoleManager, actOverrideRoom, true},
		{models.RoleAdmin, actOverrideBooking, true},
		{"unknown", actCreateBooking, false},
	}
	for _, tc := range cases {
		if got := roleCan(tc.role, tc.act); got != tc.want {
			t.Errorf("roleCan(%s, %s) = %v, want %v", tc.role, tc.act, got, tc.want)
		}
	}
}

func TestGuestCancelAllowed(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{models.BookingPending, true},
		// Replay of an already-cancelled booking stays a no-op success.
		{models.BookingCancelled, true},
		// Confirmed bookings are cancelled by the front desk, not the guest.
		{models.BookingConfirmed, false},
		{models.BookingCheckedIn, false},
		{models.BookingCheckedOut, false},
	}
	for _, tc := range cases {
		if got := guestCancelAllowed(tc.status); got != tc.want {
			t.Errorf("guestCancelAllowed(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestMayAccessBooking(t *testing.T) {
	booking := &models.Booking{GuestID: 10}

	if !mayAccessBooking(models.Actor{UserID: 10, Role: models.RoleGuest}, booking) {
		t.Errorf("owner guest denied access to own booking")
	}
	if mayAccessBooking(models.Actor{UserID: 11, Role: models.RoleGuest}, booking) {
		t.Errorf("guest granted access to another guest's booking")
	}
	for _, role := range []string{models.RoleAdmin, models.RoleManager, models.RoleReception, models.RoleStaff} {
		if !mayAccessBooking(models.Actor{UserID: 99, Role: role}, booking) {
			t.Errorf("%s denied access to booking", role)
		}
	}
}

func TestValidateStayDates(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
	}

	if err := validateStayDates(day(1), day(3)); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := validateStayDates(day(3), day(3)); err != ErrInvalidDateRange {
		t.Fatalf("same-day stay: got %v, want ErrInvalidDateRange", err)
	}
	if err := validateStayDates(day(5), day(3)); err != ErrInvalidDateRange {
		t.Fatalf("inverted range: got %v, want ErrInvalidDateRange", err)
	}
}

func TestDatesOverlap(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint", 1, 3, 5, 8, false},
		{"contained", 1, 10, 3, 5, true},
		{"partial", 1, 5, 4, 8, true},
		{"identical", 2, 4, 2, 4, true},
		{"back to back", 1, 3, 3, 5, false},
	}
	for _, tc := range cases {
		// Mirrors the SQL guard in CreateBooking (checkin_date < end AND
		// checkout_date > start); a change in either must show up here.
		got := datesOverlap(day(tc.aStart), day(tc.aEnd), day(tc.bStart), day(tc.bEnd))
		if got != tc.want {
			t.Errorf("%s: datesOverlap = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFailureMessagesReadAsSentences(t *testing.T) {
	// These strings go to the initiating UI verbatim.
	for _, err := range []error{
		ErrInvalidDateRange, ErrRoomUnavailable, ErrIllegalTransition,
		ErrInvalidCharge, ErrAlreadyBilled, ErrNotFound, ErrForbidden, ErrConflict,
	} {
		if strings.Contains(err.Error(), "_") {
			t.Errorf("%q reads as a code, not a sentence", err.Error())
		}
	}
}
