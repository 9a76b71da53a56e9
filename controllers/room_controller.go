package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ops-backend/middleware"
	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type RoomController struct {
	Rooms     *services.RoomService
	Lifecycle *services.LifecycleService
}

func NewRoomController(rooms *services.RoomService, lifecycle *services.LifecycleService) *RoomController {
	return &RoomController{Rooms: rooms, Lifecycle: lifecycle}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetAllRooms — GET /room/all-rooms
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type createRoomPayload struct {
	RoomNumber    string          `json:"roomNumber" binding:"required"`
	RoomType      string          `json:"roomType" binding:"required"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Floor         string          `json:"floor"`
	MaxOccupancy  int             `json:"maxOccupancy"`
	Description   string          `json:"description"`
}

// CreateRoom — POST /room (admin)
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room := models.Room{
		RoomNumber:    payload.RoomNumber,
		RoomType:      payload.RoomType,
		PricePerNight: payload.PricePerNight,
		Floor:         payload.Floor,
		MaxOccupancy:  payload.MaxOccupancy,
		Description:   payload.Description,
	}
	if err := rc.Rooms.Create(&room); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom — PUT /room/:id (admin, non-status fields only)
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := rc.Rooms.Update(id, fields); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room updated"})
}

// DeleteRoom — DELETE /room/:id (admin)
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}

type roomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRoomStatus — PUT /room/update-room-status/:id
// Staff request the cleaned/dirty edges; other edges are the manager/admin
// override. The lifecycle service validates the edge either way.
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	var room *models.Room
	var err error
	if actor.Role == models.RoleStaff {
		// Housekeeping only flips cleaned/dirty.
		switch payload.Status {
		case models.RoomAvailable:
			room, err = rc.Lifecycle.MarkRoomCleaned(actor, id)
		case models.RoomCleaning:
			room, err = rc.Lifecycle.MarkRoomDirty(actor, id)
		default:
			utils.JSONError(c, http.StatusForbidden, "operation not permitted for this account")
			return
		}
	} else {
		room, err = rc.Lifecycle.UpdateRoomStatus(actor, id, payload.Status)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
