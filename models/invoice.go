package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// WarningDiscountExceedsCharges is set on an invoice whose discount exceeded
// subtotal + tax; the total is clamped to zero instead of going negative.
const WarningDiscountExceedsCharges = "discount_exceeds_charges"

// Invoice is the immutable monetary summary for one checked-out booking.
// Rows are written once at bill-generation time and never updated.
type Invoice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	InvoiceNumber string `gorm:"column:invoice_number;size:64;uniqueIndex" json:"invoiceNumber"`
	BookingID     uint   `gorm:"column:booking_id;uniqueIndex" json:"bookingId"`

	RoomCharges    decimal.Decimal `gorm:"column:room_charges;type:decimal(10,2)" json:"roomCharges"`
	ServiceCharges decimal.Decimal `gorm:"column:service_charges;type:decimal(10,2)" json:"serviceCharges"`
	TaxRate        decimal.Decimal `gorm:"column:tax_rate;type:decimal(5,2)" json:"taxRate"`
	DiscountRate   decimal.Decimal `gorm:"column:discount_rate;type:decimal(5,2)" json:"discountRate"`

	Subtotal       decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2)" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"column:tax_amount;type:decimal(10,2)" json:"taxAmount"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:decimal(10,2)" json:"discountAmount"`
	Total          decimal.Decimal `gorm:"column:total;type:decimal(10,2)" json:"total"`

	// Line breakdown snapshot for print/display (room nights, service items).
	Lines datatypes.JSON `gorm:"column:lines" json:"lines,omitempty"`

	Warning string `gorm:"size:64" json:"warning,omitempty"`
}
