package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-ops-backend/events"
	"hotel-ops-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	maxTaxRate      = decimal.NewFromInt(50)
	maxDiscountRate = decimal.NewFromInt(100)
	oneHundred      = decimal.NewFromInt(100)
)

// BillingService computes invoices for checked-out bookings and records the
// payment side effect. Generation is at-most-once per booking: the check is
// made on locked rows and the unique booking_id index on payments backs it.
type BillingService struct {
	DB     *gorm.DB
	Events *events.Publisher
	Cache  *SnapshotCache
}

func NewBillingService(db *gorm.DB, pub *events.Publisher, cache *SnapshotCache) *BillingService {
	return &BillingService{DB: db, Events: pub, Cache: cache}
}

// GenerateInvoiceInput carries the charge inputs. Nil pointers mean
// "use the default": room charges from nights × price, service charges from
// completed service requests plus checkout extras, rates from settings.
type GenerateInvoiceInput struct {
	BookingID      uint
	RoomCharges    *decimal.Decimal
	ServiceCharges *decimal.Decimal
	TaxRate        *decimal.Decimal
	DiscountRate   *decimal.Decimal
	PaymentMethod  string
}

type invoiceTotals struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
	Clamped        bool
}

// computeInvoiceTotals is the deterministic billing arithmetic:
//
//	subtotal = roomCharges + serviceCharges
//	taxAmount = subtotal × taxRate / 100
//	discountAmount = subtotal × discountRate / 100
//	total = subtotal + taxAmount − discountAmount, clamped at zero
//
// No rounding happens here; amounts round to 2 places at persistence.
func computeInvoiceTotals(roomCharges, serviceCharges, taxRate, discountRate decimal.Decimal) (invoiceTotals, error) {
	var t invoiceTotals
	if roomCharges.LessThanOrEqual(decimal.Zero) {
		return t, fmt.Errorf("%w: room charges must be > 0", ErrInvalidCharge)
	}
	if serviceCharges.IsNegative() {
		return t, fmt.Errorf("%w: service charges must be >= 0", ErrInvalidCharge)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(maxTaxRate) {
		return t, fmt.Errorf("%w: tax rate must be between 0 and 50", ErrInvalidCharge)
	}
	if discountRate.IsNegative() || discountRate.GreaterThan(maxDiscountRate) {
		return t, fmt.Errorf("%w: discount rate must be between 0 and 100", ErrInvalidCharge)
	}

	t.Subtotal = roomCharges.Add(serviceCharges)
	t.TaxAmount = t.Subtotal.Mul(taxRate).Div(oneHundred)
	t.DiscountAmount = t.Subtotal.Mul(discountRate).Div(oneHundred)
	t.Total = t.Subtotal.Add(t.TaxAmount).Sub(t.DiscountAmount)
	if t.Total.IsNegative() {
		t.Total = decimal.Zero
		t.Clamped = true
	}
	return t, nil
}

// checkBillable is the at-most-once billing decision: only a checked-out
// booking with no prior invoice and no live (pending/completed) payment may
// be billed. Failed, cancelled and refunded payments do not block a retry.
func checkBillable(bookingStatus string, invoices, livePayments int64) error {
	if bookingStatus != models.BookingCheckedOut {
		return ErrIllegalTransition
	}
	if invoices > 0 || livePayments > 0 {
		return ErrAlreadyBilled
	}
	return nil
}

// GenerateInvoice bills a checked-out booking once, writing the immutable
// invoice row and the payment (completed for cash, pending otherwise).
func (s *BillingService) GenerateInvoice(actor models.Actor, in GenerateInvoiceInput) (*models.Invoice, *models.Payment, error) {
	if !roleCan(actor.Role, actGenerateInvoice) {
		return nil, nil, ErrForbidden
	}

	method := strings.TrimSpace(strings.ToLower(in.PaymentMethod))
	if method == "" {
		method = models.PaymentMethodCash
	}

	var invoice models.Invoice
	var payment models.Payment
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Room").
			First(&booking, in.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var invoices int64
		if err := tx.Model(&models.Invoice{}).
			Where("booking_id = ?", booking.ID).
			Count(&invoices).Error; err != nil {
			return err
		}
		var livePayments int64
		if err := tx.Model(&models.Payment{}).
			Where("booking_id = ? AND status IN ?", booking.ID,
				[]string{models.PaymentPending, models.PaymentCompleted}).
			Count(&livePayments).Error; err != nil {
			return err
		}
		if err := checkBillable(booking.Status, invoices, livePayments); err != nil {
			return err
		}

		roomCharges, serviceCharges, err := s.resolveCharges(tx, &booking, in)
		if err != nil {
			return err
		}
		taxRate, discountRate, err := s.resolveRates(tx, in)
		if err != nil {
			return err
		}

		totals, err := computeInvoiceTotals(roomCharges, serviceCharges, taxRate, discountRate)
		if err != nil {
			return err
		}

		lines, _ := json.Marshal(map[string]interface{}{
			"nights":         booking.Nights(),
			"pricePerNight":  booking.Room.PricePerNight,
			"roomNumber":     booking.Room.RoomNumber,
			"roomCharges":    roomCharges,
			"serviceCharges": serviceCharges,
			"extraCharges":   booking.ExtraCharges,
		})

		invoice = models.Invoice{
			InvoiceNumber:  "INV-" + strings.ToUpper(uuid.NewString()[:8]),
			BookingID:      booking.ID,
			RoomCharges:    roomCharges.Round(2),
			ServiceCharges: serviceCharges.Round(2),
			TaxRate:        taxRate,
			DiscountRate:   discountRate,
			Subtotal:       totals.Subtotal.Round(2),
			TaxAmount:      totals.TaxAmount.Round(2),
			DiscountAmount: totals.DiscountAmount.Round(2),
			Total:          totals.Total.Round(2),
			Lines:          datatypes.JSON(lines),
		}
		if totals.Clamped {
			invoice.Warning = models.WarningDiscountExceedsCharges
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		paymentStatus := models.PaymentPending
		if method == models.PaymentMethodCash {
			paymentStatus = models.PaymentCompleted
		}
		payment = models.Payment{
			BookingID:     booking.ID,
			RoomID:        booking.RoomID,
			Amount:        invoice.Total,
			PaymentMethod: method,
			Status:        paymentStatus,
			Reference:     "PAY-" + strings.ToUpper(uuid.NewString()[:8]),
		}
		if err := tx.Create(&payment).Error; err != nil {
			// Unique booking_id index: a concurrent generate won the race.
			lc := strings.ToLower(err.Error())
			if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
				return ErrAlreadyBilled
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	ctx := context.Background()
	_ = s.Events.Publish(ctx, events.LifecycleEvent{
		Type:          events.TypeInvoiceGenerated,
		BookingID:     invoice.BookingID,
		RoomID:        payment.RoomID,
		Amount:        invoice.Total.String(),
		InvoiceNumber: invoice.InvoiceNumber,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
	s.Cache.Invalidate(ctx, cacheKeyPayments)

	return &invoice, &payment, nil
}

// resolveCharges fills defaults: room charges from the stay length × room
// price, service charges from completed service requests plus checkout
// extras.
func (s *BillingService) resolveCharges(tx *gorm.DB, booking *models.Booking, in GenerateInvoiceInput) (decimal.Decimal, decimal.Decimal, error) {
	var roomCharges decimal.Decimal
	if in.RoomCharges != nil {
		roomCharges = *in.RoomCharges
	} else {
		roomCharges = booking.Room.PricePerNight.Mul(decimal.NewFromInt(int64(booking.Nights())))
	}

	var serviceCharges decimal.Decimal
	if in.ServiceCharges != nil {
		serviceCharges = *in.ServiceCharges
	} else {
		var reqs []models.ServiceRequest
		if err := tx.Where("booking_id = ? AND status = ?", booking.ID, models.ServiceRequestCompleted).
			Find(&reqs).Error; err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		serviceCharges = booking.ExtraCharges
		for _, r := range reqs {
			serviceCharges = serviceCharges.Add(r.Charge)
		}
	}
	return roomCharges, serviceCharges, nil
}

// resolveRates fills tax/discount from the settings row when omitted.
func (s *BillingService) resolveRates(tx *gorm.DB, in GenerateInvoiceInput) (decimal.Decimal, decimal.Decimal, error) {
	if in.TaxRate != nil && in.DiscountRate != nil {
		return *in.TaxRate, *in.DiscountRate, nil
	}

	var setting models.HotelSetting
	if err := tx.First(&setting).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, decimal.Zero, err
	}

	taxRate := setting.DefaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}
	discountRate := setting.DefaultDiscountRate
	if in.DiscountRate != nil {
		discountRate = *in.DiscountRate
	}
	return taxRate, discountRate, nil
}

// GetAllPayments is the dashboard snapshot read.
func (s *BillingService) GetAllPayments() ([]models.Payment, error) {
	ctx := context.Background()
	var payments []models.Payment
	if s.Cache.Get(ctx, cacheKeyPayments, &payments) {
		return payments, nil
	}
	if err := s.DB.Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	s.Cache.Set(ctx, cacheKeyPayments, payments)
	return payments, nil
}

// GetInvoiceByBooking returns the immutable invoice for display/print.
// Guests can only read invoices for their own stays.
func (s *BillingService) GetInvoiceByBooking(actor models.Actor, bookingID uint) (*models.Invoice, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !mayAccessBooking(actor, &booking) {
		return nil, ErrForbidden
	}

	var invoice models.Invoice
	if err := s.DB.Where("booking_id = ?", bookingID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}
