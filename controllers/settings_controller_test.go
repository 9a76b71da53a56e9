package controllers

import (
	"testing"

	"hotel-ops-backend/models"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestApplySettingsPayloadKeepsOmittedFields(t *testing.T) {
	setting := models.HotelSetting{
		Name:           "Hotel Ops",
		Address:        "1 Beach Road",
		Phone:          "555-0100",
		Email:          "desk@hotel.local",
		DefaultTaxRate: decimal.NewFromInt(7),
	}

	tax := decimal.NewFromInt(10)
	applySettingsPayload(&setting, hotelSettingsPayload{
		Phone:          strPtr("555-0199"),
		DefaultTaxRate: &tax,
	})

	if setting.Phone != "555-0199" {
		t.Errorf("phone = %s, want 555-0199", setting.Phone)
	}
	if !setting.DefaultTaxRate.Equal(tax) {
		t.Errorf("defaultTaxRate = %s, want 10", setting.DefaultTaxRate)
	}

	// Omitted fields keep their stored values.
	if setting.Name != "Hotel Ops" {
		t.Errorf("name overwritten: %q", setting.Name)
	}
	if setting.Address != "1 Beach Road" {
		t.Errorf("address overwritten: %q", setting.Address)
	}
	if setting.Email != "desk@hotel.local" {
		t.Errorf("email overwritten: %q", setting.Email)
	}
	if !setting.DefaultDiscountRate.Equal(decimal.Zero) {
		t.Errorf("defaultDiscountRate = %s, want 0", setting.DefaultDiscountRate)
	}
}

func TestApplySettingsPayloadCanClearField(t *testing.T) {
	setting := models.HotelSetting{Website: "https://hotel.local"}

	applySettingsPayload(&setting, hotelSettingsPayload{Website: strPtr("")})

	if setting.Website != "" {
		t.Errorf("explicit empty value not applied: %q", setting.Website)
	}
}
