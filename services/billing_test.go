package services

import (
	"errors"
	"testing"

	"hotel-ops-backend/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeInvoiceTotalsDeterminism(t *testing.T) {
	got, err := computeInvoiceTotals(dec("100"), dec("20"), dec("10"), dec("5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Subtotal.Equal(dec("120")) {
		t.Errorf("subtotal = %s, want 120", got.Subtotal)
	}
	if !got.TaxAmount.Equal(dec("12")) {
		t.Errorf("taxAmount = %s, want 12", got.TaxAmount)
	}
	if !got.DiscountAmount.Equal(dec("6")) {
		t.Errorf("discountAmount = %s, want 6", got.DiscountAmount)
	}
	if !got.Total.Equal(dec("126")) {
		t.Errorf("total = %s, want 126", got.Total)
	}
	if got.Clamped {
		t.Errorf("unexpected clamp")
	}
}

func TestComputeInvoiceTotalsFullDiscountClampsToZero(t *testing.T) {
	got, err := computeInvoiceTotals(dec("50"), dec("0"), dec("0"), dec("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Total.Equal(decimal.Zero) {
		t.Fatalf("total = %s, want 0", got.Total)
	}
	// Full discount with no tax lands exactly at zero: no warning.
	if got.Clamped {
		t.Fatalf("full discount should not flag a clamp")
	}
}

func TestComputeInvoiceTotalsNeverNegative(t *testing.T) {
	// Sweep the rate extremes: within the validated bounds the total must
	// never come out negative, with or without the clamp firing.
	for _, tax := range []string{"0", "0.5", "7", "50"} {
		for _, discount := range []string{"0", "50", "99.99", "100"} {
			got, err := computeInvoiceTotals(dec("0.01"), dec("0"), dec(tax), dec(discount))
			if err != nil {
				t.Fatalf("tax=%s discount=%s: unexpected error: %v", tax, discount, err)
			}
			if got.Total.IsNegative() {
				t.Errorf("tax=%s discount=%s: total = %s, want >= 0", tax, discount, got.Total)
			}
		}
	}
}

func TestComputeInvoiceTotalsBounds(t *testing.T) {
	cases := []struct {
		name                         string
		room, service, tax, discount string
	}{
		{"zero room charges", "0", "10", "10", "5"},
		{"negative room charges", "-5", "10", "10", "5"},
		{"negative service charges", "100", "-1", "10", "5"},
		{"tax above 50", "100", "0", "51", "5"},
		{"negative tax", "100", "0", "-1", "5"},
		{"discount above 100", "100", "0", "10", "101"},
		{"negative discount", "100", "0", "10", "-1"},
	}
	for _, tc := range cases {
		_, err := computeInvoiceTotals(dec(tc.room), dec(tc.service), dec(tc.tax), dec(tc.discount))
		if !errors.Is(err, ErrInvalidCharge) {
			t.Errorf("%s: got %v, want ErrInvalidCharge", tc.name, err)
		}
	}
}

func TestCheckBillable(t *testing.T) {
	if err := checkBillable(models.BookingCheckedOut, 0, 0); err != nil {
		t.Fatalf("clean checked-out booking rejected: %v", err)
	}

	// Billing before checkout is a transition error, not a billing one.
	for _, status := range []string{models.BookingPending, models.BookingConfirmed,
		models.BookingCheckedIn, models.BookingCancelled} {
		if err := checkBillable(status, 0, 0); !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("billing from %s: got %v, want ErrIllegalTransition", status, err)
		}
	}

	// A second invoice for the same booking must fail.
	if err := checkBillable(models.BookingCheckedOut, 1, 0); !errors.Is(err, ErrAlreadyBilled) {
		t.Errorf("prior invoice: got %v, want ErrAlreadyBilled", err)
	}
	// A live payment blocks even if the invoice row is missing.
	if err := checkBillable(models.BookingCheckedOut, 0, 1); !errors.Is(err, ErrAlreadyBilled) {
		t.Errorf("live payment: got %v, want ErrAlreadyBilled", err)
	}
}

func TestComputeInvoiceTotalsNoPrematureRounding(t *testing.T) {
	// 33.33 + 0.01 = 33.34 subtotal; 7% tax = 2.3338 exact. The computation
	// must carry full precision; rounding is the caller's display concern.
	got, err := computeInvoiceTotals(dec("33.33"), dec("0.01"), dec("7"), dec("0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.TaxAmount.Equal(dec("2.3338")) {
		t.Errorf("taxAmount = %s, want exact 2.3338", got.TaxAmount)
	}
	if !got.Total.Equal(dec("35.6738")) {
		t.Errorf("total = %s, want exact 35.6738", got.Total)
	}
}
