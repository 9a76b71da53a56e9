package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-ops-backend/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create accepts one review per booking, from the guest who stayed, after
// checkout.
func (s *ReviewService) Create(actor models.Actor, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidCharge)
	}

	var booking models.Booking
	if err := s.DB.First(&booking, review.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if booking.GuestID != actor.UserID {
		return ErrForbidden
	}
	if booking.Status != models.BookingCheckedOut {
		return ErrIllegalTransition
	}

	review.GuestID = actor.UserID
	if err := s.DB.Create(review).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return fmt.Errorf("%w: booking already reviewed", ErrConflict)
		}
		return err
	}
	return nil
}

func (s *ReviewService) GetAll() ([]models.Review, error) {
	var list []models.Review
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return list, nil
}
