package controllers

import (
	"strconv"

	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/constants"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/services"
	"github.com/Samoo1234/HotelCosta-sub001/validator"

	"github.com/gin-gonic/gin"
)

func GetGuests(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		response.BadRequest(c, "Parâmetros inválidos")
		return
	}

	page := pagination.Page
	if page < 0 {
		page = constants.DefaultPage
	}
	limit := pagination.Limit
	if limit <= 0 {
		limit = constants.DefaultLimit
	}

	var total int64
	if err := config.DB.Model(&models.Guest{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var guests []models.Guest
	if err := config.DB.Order("name").
		Offset(page * limit).
		Limit(limit).
		Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, guests, page, limit, int(total))
}

// SearchGuestsByName busca hóspedes por nome tolerando acentos e erros de
// digitação (José encontra Jose e vice-versa).
func SearchGuestsByName(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Informe o termo de busca")
		return
	}

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var guests []models.Guest
	if err := config.DB.Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, services.SearchGuests(guests, query, limit))
}

func GetGuestDetail(c *gin.Context) {
	guestID := c.Param("id")

	var guest models.Guest
	if err := config.DB.Where("id = ?", guestID).First(&guest).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, guest)
}

func CreateGuest(c *gin.Context) {
	var request dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	guest := models.Guest{
		Name:     request.Name,
		Document: request.Document,
		Email:    request.Email,
		Phone:    request.Phone,
		Notes:    request.Notes,
	}

	if err := validator.ValidateGuest(&guest); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, guest)
}

func UpdateGuest(c *gin.Context) {
	var request dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		guest.Name = request.Name
	}
	if request.Document != "" {
		guest.Document = request.Document
	}
	if request.Email != "" {
		guest.Email = request.Email
	}
	if request.Phone != "" {
		guest.Phone = request.Phone
	}
	if request.Notes != "" {
		guest.Notes = request.Notes
	}

	if err := validator.ValidateGuest(&guest); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, guest)
}

func DeleteGuest(c *gin.Context) {
	guestID := c.Param("id")

	var guest models.Guest
	if err := config.DB.First(&guest, guestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var count int64
	config.DB.Model(&models.Reservation{}).Where("guest_id = ?", guest.ID).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Hóspede possui reservas e não pode ser removido")
		return
	}

	if err := config.DB.Delete(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": guest.ID})
}
