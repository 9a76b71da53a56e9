package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

// UserController is the admin surface for managing accounts (staff roles
// included). Guest self-registration lives on AuthController.
type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.Users.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := uc.Users.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

type createUserPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var payload createUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user := models.User{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Role:     payload.Role,
	}
	if err := uc.Users.Create(&user, payload.Password); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := uc.Users.Update(id, fields); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user updated"})
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := uc.Users.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user deleted"})
}
