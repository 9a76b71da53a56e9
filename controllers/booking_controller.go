package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ops-backend/middleware"
	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type BookingController struct {
	Bookings  *services.BookingService
	Lifecycle *services.LifecycleService
}

func NewBookingController(bookings *services.BookingService, lifecycle *services.LifecycleService) *BookingController {
	return &BookingController{Bookings: bookings, Lifecycle: lifecycle}
}

// parseStayDate accepts the date formats the dashboards send.
func parseStayDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// GetAllBookings — GET /booking/all-bookings. Guests see only their own.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var list []models.Booking
	var err error
	if actor.Role == models.RoleGuest {
		list, err = bc.Bookings.GetByGuest(actor.UserID)
	} else {
		list, err = bc.Bookings.GetAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	booking, err := bc.Bookings.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if actor.Role == models.RoleGuest && booking.GuestID != actor.UserID {
		utils.JSONError(c, http.StatusForbidden, "operation not permitted for this account")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type createBookingPayload struct {
	GuestID      uint   `json:"guestId"`
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckinDate  string `json:"checkinDate" binding:"required"`
	CheckoutDate string `json:"checkoutDate" binding:"required"`
	GuestsCount  int    `json:"guestsCount"`
	// Accepted for dashboard compatibility; the actor role decides the
	// actual initial status.
	BookingStatus string `json:"bookingStatus"`
}

// CreateBooking — POST /booking/create-booking
func (bc *BookingController) CreateBooking(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	checkin, err := parseStayDate(payload.CheckinDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkinDate format")
		return
	}
	checkout, err := parseStayDate(payload.CheckoutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkoutDate format")
		return
	}

	booking, err := bc.Lifecycle.CreateBooking(actor, services.CreateBookingInput{
		GuestID:      payload.GuestID,
		RoomID:       payload.RoomID,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		GuestsCount:  payload.GuestsCount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

type bookingStatusPayload struct {
	BookingStatus string `json:"bookingStatus" binding:"required"`
}

// UpdateBookingStatus — PUT /booking/update-booking-status/:id
// Manager/admin override; only single legal edges are accepted.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bookingStatus is required")
		return
	}

	booking, err := bc.Lifecycle.UpdateBookingStatus(actor, id, payload.BookingStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckIn — POST /booking/check-in/:id
func (bc *BookingController) CheckIn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	booking, err := bc.Lifecycle.CheckIn(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type checkOutPayload struct {
	ExtraCharges decimal.Decimal `json:"extraCharges"`
}

// CheckOut — POST /booking/check-out/:id
func (bc *BookingController) CheckOut(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var payload checkOutPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
			return
		}
	}

	booking, err := bc.Lifecycle.CheckOut(actor, id, payload.ExtraCharges)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking — POST /booking/cancel/:id
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	booking, err := bc.Lifecycle.CancelBooking(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
