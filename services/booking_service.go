package services

import (
	"context"
	"errors"
	"fmt"

	"hotel-ops-backend/models"

	"gorm.io/gorm"
)

// BookingService covers the read side of bookings. All mutations go through
// the LifecycleService.
type BookingService struct {
	DB    *gorm.DB
	Cache *SnapshotCache
}

func NewBookingService(db *gorm.DB, cache *SnapshotCache) *BookingService {
	return &BookingService{DB: db, Cache: cache}
}

// GetAll is the snapshot read for the staff-side dashboards.
func (s *BookingService) GetAll() ([]models.Booking, error) {
	ctx := context.Background()
	var list []models.Booking
	if s.Cache.Get(ctx, cacheKeyBookings, &list) {
		return list, nil
	}
	if err := s.DB.
		Preload("Guest").
		Preload("Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	s.Cache.Set(ctx, cacheKeyBookings, list)
	return list, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// GetByGuest lists a guest's own bookings for the guest dashboard.
func (s *BookingService) GetByGuest(guestID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}
