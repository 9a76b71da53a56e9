package services

import (
	"context"
	"errors"
	"time"

	"hotel-ops-backend/events"
	"hotel-ops-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LifecycleService validates and applies room/booking state transitions.
// Every operation runs as one transaction with the affected rows locked
// (SELECT ... FOR UPDATE), so two actors racing on the same booking
// serialize and the loser observes the already-updated status.
type LifecycleService struct {
	DB     *gorm.DB
	Events *events.Publisher
	Cache  *SnapshotCache
}

func NewLifecycleService(db *gorm.DB, pub *events.Publisher, cache *SnapshotCache) *LifecycleService {
	return &LifecycleService{DB: db, Events: pub, Cache: cache}
}

type CreateBookingInput struct {
	GuestID      uint
	RoomID       uint
	CheckinDate  time.Time
	CheckoutDate time.Time
	GuestsCount  int
}

// CreateBooking reserves an available room for the date range. The booking
// starts pending for guest self-service and confirmed when the front desk
// (or above) creates it. Rejects overlapping non-terminal bookings for the
// same room even if the room status was left inconsistent.
func (s *LifecycleService) CreateBooking(actor models.Actor, in CreateBookingInput) (*models.Booking, error) {
	if !roleCan(actor.Role, actCreateBooking) {
		return nil, ErrForbidden
	}
	// Guests can only book for themselves.
	if actor.Role == models.RoleGuest {
		in.GuestID = actor.UserID
	}
	if err := validateStayDates(in.CheckinDate, in.CheckoutDate); err != nil {
		return nil, err
	}
	if in.GuestsCount < 1 {
		in.GuestsCount = 1
	}

	status := models.BookingConfirmed
	if actor.Role == models.RoleGuest {
		status = models.BookingPending
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if room.Status != models.RoomAvailable {
			return ErrRoomUnavailable
		}

		var guest models.User
		if err := tx.First(&guest, in.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Double-booking guard: no other non-terminal booking for this room
		// may intersect the requested range. The predicate is datesOverlap
		// pushed into SQL; the two must stay equivalent.
		var overlapping int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", in.RoomID, models.NonTerminalBookingStatuses).
			Where("checkin_date < ? AND checkout_date > ?", in.CheckoutDate, in.CheckinDate).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrRoomUnavailable
		}

		booking = models.Booking{
			GuestID:      in.GuestID,
			RoomID:       in.RoomID,
			CheckinDate:  in.CheckinDate,
			CheckoutDate: in.CheckoutDate,
			Status:       status,
			GuestsCount:  in.GuestsCount,
			ExtraCharges: decimal.Zero,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		room.SetStatus(models.RoomBooked)
		return tx.Save(&room).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	s.afterWrite(events.LifecycleEvent{
		Type:          events.TypeBookingCreated,
		BookingID:     booking.ID,
		GuestID:       booking.GuestID,
		RoomID:        booking.RoomID,
		BookingStatus: booking.Status,
		RoomStatus:    models.RoomBooked,
	})
	return &booking, nil
}

// CheckIn moves a confirmed booking to checked-in and its room to occupied.
// Replaying an already checked-in booking is a no-op success.
func (s *LifecycleService) CheckIn(actor models.Actor, bookingID uint) (*models.Booking, error) {
	if !roleCan(actor.Role, actCheckIn) {
		return nil, ErrForbidden
	}

	var booking models.Booking
	var mutated bool
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		b, room, err := lockBookingAndRoom(tx, bookingID)
		if err != nil {
			return err
		}
		mutated, err = applyCheckIn(b, room, time.Now().UTC())
		if err != nil {
			return err
		}
		booking = *b
		if !mutated {
			return nil
		}
		if err := tx.Save(b).Error; err != nil {
			return err
		}
		return tx.Save(room).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	if !mutated {
		return &booking, nil
	}

	s.afterWrite(events.LifecycleEvent{
		Type:          events.TypeBookingCheckedIn,
		BookingID:     booking.ID,
		GuestID:       booking.GuestID,
		RoomID:        booking.RoomID,
		BookingStatus: booking.Status,
		RoomStatus:    models.RoomOccupied,
	})
	return &booking, nil
}

// CheckOut moves a checked-in booking to checked-out and its room to
// cleaning. extraCharges (≥ 0) accumulate on the booking and default into
// the invoice's service charges.
func (s *LifecycleService) CheckOut(actor models.Actor, bookingID uint, extraCharges decimal.Decimal) (*models.Booking, error) {
	if !roleCan(actor.Role, actCheckOut) {
		return nil, ErrForbidden
	}
	if extraCharges.IsNegative() {
		return nil, ErrInvalidCharge
	}

	var booking models.Booking
	var mutated bool
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		b, room, err := lockBookingAndRoom(tx, bookingID)
		if err != nil {
			return err
		}
		mutated, err = applyCheckOut(b, room, extraCharges, time.Now().UTC())
		if err != nil {
			return err
		}
		booking = *b
		if !mutated {
			return nil
		}
		if err := tx.Save(b).Error; err != nil {
			return err
		}
		return tx.Save(room).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	if !mutated {
		return &booking, nil
	}

	s.afterWrite(events.LifecycleEvent{
		Type:          events.TypeBookingCheckedOut,
		BookingID:     booking.ID,
		GuestID:       booking.GuestID,
		RoomID:        booking.RoomID,
		BookingStatus: booking.Status,
		RoomStatus:    models.RoomCleaning,
	})
	return &booking, nil
}

// CancelBooking cancels a pending/confirmed booking. Guests may only cancel
// their own, and only while it is still pending; confirmed bookings are
// cancelled by the front desk. The room is released back to available unless
// another non-terminal booking still claims it.
func (s *LifecycleService) CancelBooking(actor models.Actor, bookingID uint) (*models.Booking, error) {
	if !roleCan(actor.Role, actCancelBooking) {
		return nil, ErrForbidden
	}

	var booking models.Booking
	var mutated bool
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		b, room, err := lockBookingAndRoom(tx, bookingID)
		if err != nil {
			return err
		}
		if actor.Role == models.RoleGuest {
			if b.GuestID != actor.UserID {
				return ErrForbidden
			}
			if !guestCancelAllowed(b.Status) {
				return ErrForbidden
			}
		}

		var others int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND id <> ? AND status IN ?", b.RoomID, b.ID, models.NonTerminalBookingStatuses).
			Count(&others).Error; err != nil {
			return err
		}

		mutated, err = applyCancel(b, room, others > 0)
		if err != nil {
			return err
		}
		booking = *b
		if !mutated {
			return nil
		}
		if err := tx.Save(b).Error; err != nil {
			return err
		}
		return tx.Save(room).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	if !mutated {
		return &booking, nil
	}

	s.afterWrite(events.LifecycleEvent{
		Type:          events.TypeBookingCancelled,
		BookingID:     booking.ID,
		GuestID:       booking.GuestID,
		RoomID:        booking.RoomID,
		BookingStatus: booking.Status,
	})
	return &booking, nil
}

// MarkRoomCleaned returns a cleaning (or resolved maintenance) room to
// available. Replay on an available room is a no-op success.
func (s *LifecycleService) MarkRoomCleaned(actor models.Actor, roomID uint) (*models.Room, error) {
	if !roleCan(actor.Role, actMarkRoomCleaned) {
		return nil, ErrForbidden
	}
	return s.mutateRoom(roomID, applyMarkRoomCleaned)
}

// MarkRoomDirty flags an available room for housekeeping without an active
// booking (spill, staff inspection).
func (s *LifecycleService) MarkRoomDirty(actor models.Actor, roomID uint) (*models.Room, error) {
	if !roleCan(actor.Role, actMarkRoomDirty) {
		return nil, ErrForbidden
	}
	return s.mutateRoom(roomID, applyMarkRoomDirty)
}

// UpdateRoomStatus applies an arbitrary room transition (manager/admin
// override, e.g. flipping a room to under_maintenance). Only single edges
// of the room machine are accepted; same-status is a no-op.
func (s *LifecycleService) UpdateRoomStatus(actor models.Actor, roomID uint, target string) (*models.Room, error) {
	if !roleCan(actor.Role, actOverrideRoom) {
		return nil, ErrForbidden
	}
	return s.mutateRoom(roomID, func(r *models.Room) (bool, error) {
		if r.Status == target {
			return false, nil
		}
		if !RoomTransitionAllowed(r.Status, target) {
			return false, ErrIllegalTransition
		}
		r.SetStatus(target)
		return true, nil
	})
}

// UpdateBookingStatus is the privileged override. It accepts only a single
// legal edge from the current status; skipping intermediate states (e.g.
// pending → checked-out) fails with ErrIllegalTransition. Room side effects
// are identical to the first-class operations.
func (s *LifecycleService) UpdateBookingStatus(actor models.Actor, bookingID uint, target string) (*models.Booking, error) {
	if !roleCan(actor.Role, actOverrideBooking) {
		return nil, ErrForbidden
	}

	var booking models.Booking
	var eventType string
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		b, room, err := lockBookingAndRoom(tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status == target {
			booking = *b
			return nil
		}
		if !BookingTransitionAllowed(b.Status, target) {
			return ErrIllegalTransition
		}

		now := time.Now().UTC()
		var changed bool
		switch target {
		case models.BookingConfirmed:
			changed, err = applyConfirm(b)
			eventType = events.TypeBookingConfirmed
		case models.BookingCheckedIn:
			changed, err = applyCheckIn(b, room, now)
			eventType = events.TypeBookingCheckedIn
		case models.BookingCheckedOut:
			changed, err = applyCheckOut(b, room, decimal.Zero, now)
			eventType = events.TypeBookingCheckedOut
		case models.BookingCancelled:
			var others int64
			if err := tx.Model(&models.Booking{}).
				Where("room_id = ? AND id <> ? AND status IN ?", b.RoomID, b.ID, models.NonTerminalBookingStatuses).
				Count(&others).Error; err != nil {
				return err
			}
			changed, err = applyCancel(b, room, others > 0)
			eventType = events.TypeBookingCancelled
		default:
			return ErrIllegalTransition
		}
		if err != nil {
			return err
		}
		booking = *b
		if !changed {
			return nil
		}
		if err := tx.Save(b).Error; err != nil {
			return err
		}
		return tx.Save(room).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	if eventType != "" {
		s.afterWrite(events.LifecycleEvent{
			Type:          eventType,
			BookingID:     booking.ID,
			GuestID:       booking.GuestID,
			RoomID:        booking.RoomID,
			BookingStatus: booking.Status,
		})
	}
	return &booking, nil
}

func (s *LifecycleService) mutateRoom(roomID uint, apply func(*models.Room) (bool, error)) (*models.Room, error) {
	var room models.Room
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		changed, err := apply(&room)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return tx.Save(&room).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	s.Cache.Invalidate(context.Background(), cacheKeyRooms)
	return &room, nil
}

// lockBookingAndRoom loads both rows FOR UPDATE, booking first to keep lock
// order stable across operations.
func lockBookingAndRoom(tx *gorm.DB, bookingID uint) (*models.Booking, *models.Room, error) {
	var booking models.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	var room models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, booking.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return &booking, &room, nil
}

// afterWrite publishes the event and drops stale snapshots; both best-effort.
func (s *LifecycleService) afterWrite(ev events.LifecycleEvent) {
	ctx := context.Background()
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	_ = s.Events.Publish(ctx, ev)
	s.Cache.Invalidate(ctx, cacheKeyRooms, cacheKeyBookings)
}
