package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-ops-backend/models"

	"gorm.io/gorm"
)

// RoomService covers admin CRUD over rooms. Status changes do not go
// through here; they belong to the LifecycleService.
type RoomService struct {
	DB    *gorm.DB
	Cache *SnapshotCache
}

func NewRoomService(db *gorm.DB, cache *SnapshotCache) *RoomService {
	return &RoomService{DB: db, Cache: cache}
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidCharge)
	}
	if !models.IsValidRoomType(room.RoomType) {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidCharge, room.RoomType)
	}
	if room.PricePerNight.IsNegative() {
		return fmt.Errorf("%w: price per night must be >= 0", ErrInvalidCharge)
	}
	room.SetStatus(models.RoomAvailable)

	if err := s.DB.Create(room).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return fmt.Errorf("%w: room number %s already exists", ErrConflict, room.RoomNumber)
		}
		return err
	}
	s.Cache.Invalidate(context.Background(), cacheKeyRooms)
	return nil
}

// GetAll is the snapshot read the dashboards poll; served from the cache
// when warm.
func (s *RoomService) GetAll() ([]models.Room, error) {
	ctx := context.Background()
	var rooms []models.Room
	if s.Cache.Get(ctx, cacheKeyRooms, &rooms) {
		return rooms, nil
	}
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	s.Cache.Set(ctx, cacheKeyRooms, rooms)
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// Update applies non-status fields. Protected columns are stripped so the
// lifecycle stays the only writer of status/is_available.
func (s *RoomService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "status")
	delete(fields, "is_available")
	delete(fields, "isAvailable")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.Cache.Invalidate(context.Background(), cacheKeyRooms)
	return nil
}

// Delete refuses while any non-terminal booking still references the room.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var claims int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", id, models.NonTerminalBookingStatuses).
			Count(&claims).Error; err != nil {
			return err
		}
		if claims > 0 {
			return fmt.Errorf("%w: room has active bookings", ErrConflict)
		}

		res := tx.Delete(&models.Room{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		s.Cache.Invalidate(context.Background(), cacheKeyRooms)
		return nil
	})
}
