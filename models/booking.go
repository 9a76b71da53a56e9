package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking lifecycle statuses. checked-out and cancelled are terminal.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checked-in"
	BookingCheckedOut = "checked-out"
	BookingCancelled  = "cancelled"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`
	RoomID  uint `gorm:"index;column:room_id" json:"roomId"`

	CheckinDate  time.Time `gorm:"column:checkin_date" json:"checkinDate"`
	CheckoutDate time.Time `gorm:"column:checkout_date" json:"checkoutDate"`

	Status      string `gorm:"size:32;index" json:"status"`
	GuestsCount int    `gorm:"column:guests_count;default:1" json:"guestsCount"`

	// Ad-hoc charges collected at checkout (minibar, damages). Folded into
	// the invoice's service charges default.
	ExtraCharges decimal.Decimal `gorm:"column:extra_charges;type:decimal(10,2);default:0" json:"extraCharges"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`

	Guest User `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Room  Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// IsTerminal reports whether the booking can no longer advance.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingCheckedOut || b.Status == BookingCancelled
}

// Nights returns the length of stay; never below 1 for a valid date range.
func (b *Booking) Nights() int {
	n := int(b.CheckoutDate.Sub(b.CheckinDate).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

// NonTerminalBookingStatuses are the statuses under which a booking still
// claims its room (used by the overlap guard and room release).
var NonTerminalBookingStatuses = []string{BookingPending, BookingConfirmed, BookingCheckedIn}
