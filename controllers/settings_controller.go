package controllers

import (
	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/validator"

	"github.com/gin-gonic/gin"
)

// getHotelSettings carrega o registro singleton de configuração, criando o
// padrão na primeira leitura.
func getHotelSettings() (models.HotelSettings, error) {
	var settings models.HotelSettings
	err := config.DB.FirstOrCreate(&settings, models.HotelSettings{ID: 1}).Error
	return settings, err
}

func GetSettings(c *gin.Context) {
	settings, err := getHotelSettings()
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, settings)
}

func UpdateSettings(c *gin.Context) {
	var request dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	settings, err := getHotelSettings()
	if err != nil {
		response.ServerError(c)
		return
	}

	if request.HotelName != "" {
		settings.HotelName = request.HotelName
	}
	if request.CheckInTime != "" {
		settings.CheckInTime = request.CheckInTime
	}
	if request.CheckOutTime != "" {
		settings.CheckOutTime = request.CheckOutTime
	}
	if request.Currency != "" {
		settings.Currency = request.Currency
	}

	if err := validator.ValidateSettings(&settings); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&settings).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, settings)
}
