package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ops-backend/middleware"
	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type ServiceRequestController struct {
	Requests *services.ServiceRequestService
}

func NewServiceRequestController(requests *services.ServiceRequestService) *ServiceRequestController {
	return &ServiceRequestController{Requests: requests}
}

type createServiceRequestPayload struct {
	BookingID   uint            `json:"bookingId" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Charge      decimal.Decimal `json:"charge"`
}

// CreateServiceRequest — POST /service-request
func (sc *ServiceRequestController) CreateServiceRequest(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var payload createServiceRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	req := models.ServiceRequest{
		BookingID:   payload.BookingID,
		Description: payload.Description,
		Charge:      payload.Charge,
	}
	if err := sc.Requests.Create(actor, &req); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, req)
}

type serviceRequestStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateServiceRequestStatus — PUT /service-request/:id/status (staff side)
func (sc *ServiceRequestController) UpdateServiceRequestStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload serviceRequestStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	if err := sc.Requests.UpdateStatus(id, payload.Status); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "service request updated"})
}

// GetAllServiceRequests — GET /service-request (staff side)
func (sc *ServiceRequestController) GetAllServiceRequests(c *gin.Context) {
	list, err := sc.Requests.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetServiceRequestsByBooking — GET /service-request/booking/:id
func (sc *ServiceRequestController) GetServiceRequestsByBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)
	list, err := sc.Requests.GetByBooking(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
