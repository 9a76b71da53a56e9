package services

import (
	"errors"
	"fmt"

	"hotel-ops-backend/models"

	"gorm.io/gorm"
)

// ServiceRequestService manages chargeable guest requests. Charges of
// completed requests default into the invoice's service charges.
type ServiceRequestService struct {
	DB *gorm.DB
}

func NewServiceRequestService(db *gorm.DB) *ServiceRequestService {
	return &ServiceRequestService{DB: db}
}

// Create opens a request against a checked-in booking. Guests may only file
// against their own stay.
func (s *ServiceRequestService) Create(actor models.Actor, req *models.ServiceRequest) error {
	if req.Charge.IsNegative() {
		return fmt.Errorf("%w: charge must be >= 0", ErrInvalidCharge)
	}

	var booking models.Booking
	if err := s.DB.First(&booking, req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if actor.Role == models.RoleGuest && booking.GuestID != actor.UserID {
		return ErrForbidden
	}
	if booking.Status != models.BookingCheckedIn {
		return ErrIllegalTransition
	}

	req.GuestID = booking.GuestID
	req.RoomID = booking.RoomID
	req.Status = models.ServiceRequestOpen
	return s.DB.Create(req).Error
}

// UpdateStatus advances a request (staff side). Any status from the request
// enum is accepted; there is no ordering invariant on these.
func (s *ServiceRequestService) UpdateStatus(id uint, status string) error {
	switch status {
	case models.ServiceRequestOpen, models.ServiceRequestInProgress,
		models.ServiceRequestCompleted, models.ServiceRequestCancelled:
	default:
		return fmt.Errorf("%w: unknown service request status %q", ErrInvalidCharge, status)
	}

	res := s.DB.Model(&models.ServiceRequest{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ServiceRequestService) GetAll() ([]models.ServiceRequest, error) {
	var list []models.ServiceRequest
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve service requests: %w", err)
	}
	return list, nil
}

// GetByBooking lists a booking's requests. Guests can only read their own.
func (s *ServiceRequestService) GetByBooking(actor models.Actor, bookingID uint) ([]models.ServiceRequest, error) {
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

	var list []models.ServiceRequest
	if err := s.DB.Where("booking_id = ?", bookingID).Order("created_at").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve service requests: %w", err)
	}
	return list, nil
}
