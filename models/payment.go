package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentCancelled = "cancelled"
	PaymentRefunded  = "refunded"
)

const PaymentMethodCash = "cash"

// Payment is the settlement record created by invoice generation. The unique
// index on booking_id is the schema backstop for at-most-once billing.
type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index;not null;unique" json:"bookingId"`
	RoomID    uint `gorm:"index" json:"roomId"`

	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentMethod string          `gorm:"column:payment_method;size:50" json:"paymentMethod"`
	Status        string          `gorm:"size:32" json:"status"`
	Reference     string          `gorm:"size:64" json:"reference"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
