package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Operational room statuses. Status is authoritative; IsAvailable is a
// denormalized flag the dashboards filter on and must stay in sync.
const (
	RoomAvailable        = "available"
	RoomBooked           = "booked"
	RoomOccupied         = "occupied"
	RoomCleaning         = "cleaning"
	RoomUnderMaintenance = "under_maintenance"
)

var RoomTypes = []string{"Single", "Double", "Deluxe", "Suite", "Family", "Presidential"}

type Room struct {
	gorm.Model

	RoomNumber    string          `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomType      string          `json:"roomType" gorm:"column:room_type;size:50"`
	PricePerNight decimal.Decimal `json:"pricePerNight" gorm:"column:price_per_night;type:decimal(10,2)"`

	Status      string `json:"status" gorm:"size:32;index"`
	IsAvailable bool   `json:"isAvailable" gorm:"column:is_available"`

	Floor        string `json:"floor" gorm:"type:varchar(10)"`
	MaxOccupancy int    `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string `json:"description" gorm:"type:text"`
}

// SetStatus is the only way room status should be written; it keeps the
// derived IsAvailable flag in sync.
func (r *Room) SetStatus(status string) {
	r.Status = status
	r.IsAvailable = status == RoomAvailable
}

func IsValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}
