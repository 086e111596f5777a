package controllers

import (
	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/constants"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/services"
	"github.com/Samoo1234/HotelCosta-sub001/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// tokenExpiryMinutes é a validade do token de acesso (um turno de recepção)
const tokenExpiryMinutes = 60 * 12

func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	}
	if user.Role == 0 {
		user.Role = models.RoleReceptionist
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count)
	if count > 0 {
		response.Conflict(c)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = string(hashed)

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
	})
}
