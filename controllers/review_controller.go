package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/middleware"
	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type createReviewPayload struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// CreateReview — POST /review (guest, own checked-out booking)
func (rc *ReviewController) CreateReview(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var payload createReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	review := models.Review{
		BookingID: payload.BookingID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
	}
	if err := rc.Reviews.Create(actor, &review); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

// GetAllReviews — GET /review
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := rc.Reviews.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}
