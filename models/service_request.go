package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ServiceRequestOpen       = "open"
	ServiceRequestInProgress = "in_progress"
	ServiceRequestCompleted  = "completed"
	ServiceRequestCancelled  = "cancelled"
)

// ServiceRequest is a chargeable guest request (room service, laundry,
// extra bed). Completed charges sum into the invoice's service charges.
type ServiceRequest struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestID   uint `gorm:"index;column:guest_id" json:"guestId"`
	BookingID uint `gorm:"index;column:booking_id" json:"bookingId"`
	RoomID    uint `gorm:"index;column:room_id" json:"roomId"`

	Description string          `gorm:"type:text" json:"description"`
	Charge      decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"charge"`
	Status      string          `gorm:"size:32;index" json:"status"`
}
