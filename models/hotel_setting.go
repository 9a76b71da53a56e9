package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HotelSetting is a singleton row. DefaultTaxRate and DefaultDiscountRate
// feed invoice generation when the request omits explicit rates.
type HotelSetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	Website string `gorm:"size:255" json:"website"`

	DefaultTaxRate      decimal.Decimal `gorm:"column:default_tax_rate;type:decimal(5,2);default:0" json:"defaultTaxRate"`
	DefaultDiscountRate decimal.Decimal `gorm:"column:default_discount_rate;type:decimal(5,2);default:0" json:"defaultDiscountRate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
