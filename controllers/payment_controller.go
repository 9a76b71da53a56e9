package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ops-backend/middleware"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type PaymentController struct {
	Billing *services.BillingService
}

func NewPaymentController(billing *services.BillingService) *PaymentController {
	return &PaymentController{Billing: billing}
}

type processPaymentPayload struct {
	BookingID      uint             `json:"bookingId" binding:"required"`
	RoomCharges    *decimal.Decimal `json:"roomCharges"`
	ServiceCharges *decimal.Decimal `json:"serviceCharges"`
	TaxRate        *decimal.Decimal `json:"taxRate"`
	DiscountRate   *decimal.Decimal `json:"discountRate"`
	PaymentMethod  string           `json:"paymentMethod"`
}

// ProcessPayment — POST /payment/process-payment
// Generates the invoice for a checked-out booking and records the payment.
// Omitted charges and rates fall back to computed/configured defaults.
func (pc *PaymentController) ProcessPayment(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var payload processPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	invoice, payment, err := pc.Billing.GenerateInvoice(actor, services.GenerateInvoiceInput{
		BookingID:      payload.BookingID,
		RoomCharges:    payload.RoomCharges,
		ServiceCharges: payload.ServiceCharges,
		TaxRate:        payload.TaxRate,
		DiscountRate:   payload.DiscountRate,
		PaymentMethod:  payload.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"invoice": invoice,
		"payment": payment,
	})
}

// GetAllPayments — GET /payment/get-all-payments
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	payments, err := pc.Billing.GetAllPayments()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

// GetInvoice — GET /payment/invoice/:id (id = booking id)
func (pc *PaymentController) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)
	invoice, err := pc.Billing.GetInvoiceByBooking(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}
