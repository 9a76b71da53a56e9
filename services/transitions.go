package services

import (
	"time"

	"hotel-ops-backend/models"

	"github.com/shopspring/decimal"
)

// Room state machine:
// available → booked → occupied → cleaning → available (the operational
// cycle), available → cleaning (manual dirty flag), under_maintenance
// reachable from any state and leaving only to available.
var roomEdges = map[string][]string{
	models.RoomAvailable:        {models.RoomBooked, models.RoomCleaning, models.RoomUnderMaintenance},
	models.RoomBooked:           {models.RoomOccupied, models.RoomAvailable, models.RoomUnderMaintenance},
	models.RoomOccupied:         {models.RoomCleaning, models.RoomUnderMaintenance},
	models.RoomCleaning:         {models.RoomAvailable, models.RoomUnderMaintenance},
	models.RoomUnderMaintenance: {models.RoomAvailable},
}

// Booking state machine: pending → confirmed → checked-in → checked-out,
// cancelled reachable from pending/confirmed only.
var bookingEdges = map[string][]string{
	models.BookingPending:    {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed:  {models.BookingCheckedIn, models.BookingCancelled},
	models.BookingCheckedIn:  {models.BookingCheckedOut},
	models.BookingCheckedOut: {},
	models.BookingCancelled:  {},
}

// RoomTransitionAllowed reports whether a single edge from → to exists.
// Same-state requests are not edges; callers treat them as no-op replays.
func RoomTransitionAllowed(from, to string) bool {
	for _, next := range roomEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BookingTransitionAllowed reports whether a single edge from → to exists.
// The manager override goes through this too: reachability means one legal
// edge per call, never a skip over intermediate states.
func BookingTransitionAllowed(from, to string) bool {
	for _, next := range bookingEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Actions gated by role. The router enforces these on routes; the services
// re-check them here so the gate holds no matter how an operation is reached.
type action string

const (
	actCreateBooking   action = "booking.create"
	actCheckIn         action = "booking.check_in"
	actCheckOut        action = "booking.check_out"
	actCancelBooking   action = "booking.cancel"
	actOverrideBooking action = "booking.override_status"
	actMarkRoomCleaned action = "room.mark_cleaned"
	actMarkRoomDirty   action = "room.mark_dirty"
	actOverrideRoom    action = "room.override_status"
	actGenerateInvoice action = "billing.generate_invoice"
)

var rolePermissions = map[string]map[action]bool{
	models.RoleAdmin: {
		actCreateBooking: true, actCheckIn: true, actCheckOut: true,
		actCancelBooking: true, actOverrideBooking: true,
		actMarkRoomCleaned: true, actMarkRoomDirty: true, actOverrideRoom: true,
		actGenerateInvoice: true,
	},
	models.RoleManager: {
		actCreateBooking: true, actCheckIn: true, actCheckOut: true,
		actCancelBooking: true, actOverrideBooking: true,
		actMarkRoomCleaned: true, actMarkRoomDirty: true, actOverrideRoom: true,
		actGenerateInvoice: true,
	},
	models.RoleReception: {
		actCreateBooking: true, actCheckIn: true, actCheckOut: true,
		actCancelBooking: true, actGenerateInvoice: true,
	},
	models.RoleStaff: {
		actMarkRoomCleaned: true, actMarkRoomDirty: true,
	},
	models.RoleGuest: {
		actCreateBooking: true, actCancelBooking: true,
	},
}

func roleCan(role string, a action) bool {
	return rolePermissions[role][a]
}

// guestCancelAllowed restricts guest self-cancellation to bookings that are
// still pending. Once the front desk confirms, cancellation moves to the
// staff side. Cancelled is listed so a guest's replay stays a no-op success.
func guestCancelAllowed(status string) bool {
	return status == models.BookingPending || status == models.BookingCancelled
}

// mayAccessBooking reports whether the actor may read records scoped to the
// booking (its invoice, its service requests). Staff-side roles see every
// booking; guests only their own stay.
func mayAccessBooking(actor models.Actor, b *models.Booking) bool {
	return actor.Role != models.RoleGuest || b.GuestID == actor.UserID
}

// validateStayDates rejects a checkout on or before the checkin.
func validateStayDates(checkin, checkout time.Time) error {
	if !checkout.After(checkin) {
		return ErrInvalidDateRange
	}
	return nil
}

// datesOverlap reports whether [aStart, aEnd) intersects [bStart, bEnd).
// Back-to-back stays (checkout day == next checkin day) do not overlap.
// The SQL overlap guard in CreateBooking encodes the same half-open
// predicate (checkin_date < end AND checkout_date > start); change both or
// neither.
func datesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// The apply* helpers below mutate booking/room values in memory and report
// whether anything changed. The lifecycle service calls them on rows locked
// inside a transaction; replaying a terminal state is a no-op success so
// duplicate UI submissions have no side effects.

func applyConfirm(b *models.Booking) (bool, error) {
	switch b.Status {
	case models.BookingConfirmed:
		return false, nil
	case models.BookingPending:
		b.Status = models.BookingConfirmed
		return true, nil
	default:
		return false, ErrIllegalTransition
	}
}

func applyCheckIn(b *models.Booking, r *models.Room, now time.Time) (bool, error) {
	switch b.Status {
	case models.BookingCheckedIn:
		return false, nil
	case models.BookingConfirmed:
		b.Status = models.BookingCheckedIn
		b.CheckedInAt = &now
		r.SetStatus(models.RoomOccupied)
		return true, nil
	default:
		return false, ErrIllegalTransition
	}
}

func applyCheckOut(b *models.Booking, r *models.Room, extraCharges decimal.Decimal, now time.Time) (bool, error) {
	if extraCharges.IsNegative() {
		return false, ErrInvalidCharge
	}
	switch b.Status {
	case models.BookingCheckedOut:
		return false, nil
	case models.BookingCheckedIn:
		b.Status = models.BookingCheckedOut
		b.CheckedOutAt = &now
		b.ExtraCharges = b.ExtraCharges.Add(extraCharges)
		r.SetStatus(models.RoomCleaning)
		return true, nil
	default:
		return false, ErrIllegalTransition
	}
}

// applyCancel cancels the booking; the room drops back to available only
// when it was booked for this booking and roomStillClaimed is false.
func applyCancel(b *models.Booking, r *models.Room, roomStillClaimed bool) (bool, error) {
	switch b.Status {
	case models.BookingCancelled:
		return false, nil
	case models.BookingPending, models.BookingConfirmed:
		b.Status = models.BookingCancelled
		if r.Status == models.RoomBooked && !roomStillClaimed {
			r.SetStatus(models.RoomAvailable)
		}
		return true, nil
	default:
		return false, ErrIllegalTransition
	}
}

func applyMarkRoomCleaned(r *models.Room) (bool, error) {
	switch r.Status {
	case models.RoomAvailable:
		return false, nil
	case models.RoomCleaning, models.RoomUnderMaintenance:
		r.SetStatus(models.RoomAvailable)
		return true, nil
	default:
		return false, ErrIllegalTransition
	}
}

func applyMarkRoomDirty(r *models.Room) (bool, error) {
	switch r.Status {
	case models.RoomCleaning:
		return false, nil
	case models.RoomAvailable:
		r.SetStatus(models.RoomCleaning)
		return true, nil
	default:
		return false, ErrIllegalTransition
	}
}
