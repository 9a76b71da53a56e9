package models

import (
	"time"

	"gorm.io/gorm"
)

// Actor roles. Role gates on lifecycle operations are resolved against these.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleReception = "reception"
	RoleStaff     = "staff"
	RoleGuest     = "guest"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"size:150;uniqueIndex" json:"email"`
	Password string `gorm:"size:255" json:"-"`
	Phone    string `gorm:"size:50" json:"phone"`
	Role     string `gorm:"size:32;index" json:"role"`
}

// Actor is the authenticated identity of the current request, extracted from
// the bearer token by middleware and passed explicitly to every service call.
// Services must not read identity from any ambient/global state.
type Actor struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleReception, RoleStaff, RoleGuest:
		return true
	}
	return false
}
