package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-ops-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Create hashes the password and stores the user. Role defaults to guest;
// only admins reach the staff-role creation path (enforced at the route).
func (s *UserService) Create(user *models.User, plainPassword string) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || plainPassword == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidCharge)
	}
	if user.Role == "" {
		user.Role = models.RoleGuest
	}
	if !models.IsValidRole(user.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidCharge, user.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)

	if err := s.DB.Create(user).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return err
	}
	return nil
}

// Authenticate verifies credentials and returns the user for token issuing.
func (s *UserService) Authenticate(email, plainPassword string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(plainPassword)); err != nil {
		return nil, ErrForbidden
	}
	return &user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "password")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")
	if role, ok := fields["role"].(string); ok && !models.IsValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidCharge, role)
	}

	res := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) Delete(id uint) error {
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
