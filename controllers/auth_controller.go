package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type AuthController struct {
	Users  *services.UserService
	Secret string
}

func NewAuthController(users *services.UserService, secret string) *AuthController {
	return &AuthController{Users: users, Secret: secret}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := ac.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user, ac.Secret)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

type registerPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// Register is guest self-registration; staff accounts are created by admin
// through the users endpoints.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user := models.User{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Role:     models.RoleGuest,
	}
	if err := ac.Users.Create(&user, payload.Password); err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}
