package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/services"
	"tablerunner-api/utils"
)

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := services.NewAuthService(config.DB).Login(input.Email, input.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if err == services.ErrPendingApproval || err == services.ErrRejected {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func Register(c *gin.Context) {
	var input struct {
		Email           string `json:"email" binding:"required"`
		Password        string `json:"password" binding:"required,min=6"`
		FullName        string `json:"full_name" binding:"required"`
		ContactNo       string `json:"contact_no" binding:"required"`
		HotelName       string `json:"hotel_name" binding:"required"`
		HotelLocation   string `json:"hotel_location" binding:"required"`
		ProfilePhotoURL string `json:"profile_photo_url"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// field validators match the registration form rules
	validations := []func() (bool, string){
		func() (bool, string) { return utils.ValidateEmail(input.Email) },
		func() (bool, string) { return utils.ValidateFullName(input.FullName) },
		func() (bool, string) { return utils.ValidateNepaliPhoneNumber(input.ContactNo) },
		func() (bool, string) { return utils.ValidateHotelName(input.HotelName) },
		func() (bool, string) { return utils.ValidateHotelLocation(input.HotelLocation) },
		func() (bool, string) { return utils.ValidateProfilePhotoURL(input.ProfilePhotoURL) },
	}
	for _, validate := range validations {
		if ok, msg := validate(); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
	}

	user, err := services.NewAuthService(config.DB).Register(services.RegisterInput{
		Email:           input.Email,
		Password:        input.Password,
		FullName:        input.FullName,
		ContactNo:       input.ContactNo,
		HotelName:       input.HotelName,
		HotelLocation:   input.HotelLocation,
		ProfilePhotoURL: input.ProfilePhotoURL,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if err == services.ErrEmailTaken {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration submitted. You can sign in once an admin approves your account.",
		"user":    user,
	})
}

func Me(c *gin.Context) {
	userID := utils.GetUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", *userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
