package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is guest feedback for a completed stay. One review per booking.
type Review struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestID   uint `gorm:"index;column:guest_id" json:"guestId"`
	BookingID uint `gorm:"column:booking_id;uniqueIndex" json:"bookingId"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`
}
