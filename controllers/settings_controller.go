package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ops-backend/config"
	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

type hotelSettingsPayload struct {
	Name                *string          `json:"name"`
	Address             *string          `json:"address"`
	Phone               *string          `json:"phone"`
	Email               *string          `json:"email"`
	Website             *string          `json:"website"`
	DefaultTaxRate      *decimal.Decimal `json:"defaultTaxRate"`
	DefaultDiscountRate *decimal.Decimal `json:"defaultDiscountRate"`
}

// applySettingsPayload merges only the fields the payload carries; omitted
// fields keep their stored values.
func applySettingsPayload(setting *models.HotelSetting, p hotelSettingsPayload) {
	if p.Name != nil {
		setting.Name = *p.Name
	}
	if p.Address != nil {
		setting.Address = *p.Address
	}
	if p.Phone != nil {
		setting.Phone = *p.Phone
	}
	if p.Email != nil {
		setting.Email = *p.Email
	}
	if p.Website != nil {
		setting.Website = *p.Website
	}
	if p.DefaultTaxRate != nil {
		setting.DefaultTaxRate = *p.DefaultTaxRate
	}
	if p.DefaultDiscountRate != nil {
		setting.DefaultDiscountRate = *p.DefaultDiscountRate
	}
}

// GetSettings — GET /settings. Supplies the default tax/discount rates the
// billing calculator falls back to.
func GetSettings(c *gin.Context) {
	var setting models.HotelSetting
	if err := config.DB.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONSuccess(c, http.StatusOK, models.HotelSetting{})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

// UpdateSettings — PUT /settings (admin/manager)
func UpdateSettings(c *gin.Context) {
	var payload hotelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.DefaultTaxRate != nil &&
		(payload.DefaultTaxRate.IsNegative() || payload.DefaultTaxRate.GreaterThan(decimal.NewFromInt(50))) {
		utils.JSONError(c, http.StatusBadRequest, "defaultTaxRate must be between 0 and 50")
		return
	}
	if payload.DefaultDiscountRate != nil &&
		(payload.DefaultDiscountRate.IsNegative() || payload.DefaultDiscountRate.GreaterThan(decimal.NewFromInt(100))) {
		utils.JSONError(c, http.StatusBadRequest, "defaultDiscountRate must be between 0 and 100")
		return
	}

	var setting models.HotelSetting
	err := config.DB.First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	applySettingsPayload(&setting, payload)

	if err := config.DB.Save(&setting).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
