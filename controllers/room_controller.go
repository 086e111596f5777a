package controllers

import (
	"log"
	"strconv"
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/services"
	"github.com/Samoo1234/HotelCosta-sub001/validator"

	"github.com/gin-gonic/gin"
)

const roomsCacheKey = "rooms:all"

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.ID,
		Number:      room.Number,
		Floor:       room.Floor,
		Type:        room.Type,
		NightlyRate: room.NightlyRate,
		Status:      string(room.Status),
		StatusLabel: room.Status.Label(),
		Description: room.Description,
	}
}

func GetRooms(c *gin.Context) {
	var allRooms []models.Room

	rdb := config.RedisClient

	if err := services.GetFromRedis(config.Ctx, rdb, roomsCacheKey, &allRooms); err != nil || len(allRooms) == 0 {
		if err := config.DB.Order("number").Find(&allRooms).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, roomsCacheKey, allRooms, 10*time.Minute); err != nil {
			log.Printf("Erro ao gravar listagem de quartos no Redis: %v", err)
		}
	}

	statusFilter := c.Query("status")
	floorFilter := 0
	if floorStr := c.Query("floor"); floorStr != "" {
		if parsed, err := strconv.Atoi(floorStr); err == nil {
			floorFilter = parsed
		}
	}

	roomResponses := make([]dto.RoomResponse, 0, len(allRooms))
	for _, room := range allRooms {
		if statusFilter != "" && string(room.Status) != statusFilter {
			continue
		}
		if floorFilter != 0 && room.Floor != floorFilter {
			continue
		}
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.Success(c, roomResponses)
}

func GetRoomDetail(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.Where("id = ?", roomID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// GetAvailableRooms lista os quartos capazes de receber a estadia informada.
// O parâmetro exclude identifica a reserva em edição, que não deve conflitar
// consigo mesma.
func GetAvailableRooms(c *gin.Context) {
	var request dto.AvailabilityRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		response.BadRequest(c, "Parâmetros inválidos")
		return
	}

	if request.CheckInDate == "" {
		response.BadRequest(c, "Data de check-in é obrigatória")
		return
	}

	var rooms []models.Room
	if err := config.DB.Order("number").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	query := services.AvailabilityQuery{
		CheckInDate:  request.CheckInDate,
		CheckOutDate: request.CheckOutDate,
	}

	// Fluxo de edição: ignora só canceladas e libera o quarto atual da reserva
	if request.ExcludeReservationID != 0 {
		var current models.Reservation
		if err := config.DB.First(&current, request.ExcludeReservationID).Error; err != nil {
			response.NotFound(c)
			return
		}
		query.ExcludedStatuses = services.EditExcludedStatuses
		query.ExcludeReservationID = current.ID
		query.CurrentRoomID = current.RoomID
	}

	availability := services.NewAvailabilityService(services.NewGormConflictSource(config.DB))
	available, err := availability.AvailableRooms(rooms, query)
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(available))
	for _, room := range available {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.Success(c, roomResponses)
}

func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	room := models.Room{
		Number:      request.Number,
		Floor:       request.Floor,
		Type:        request.Type,
		NightlyRate: request.NightlyRate,
		Status:      models.RoomAvailable,
		Description: request.Description,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var count int64
	config.DB.Model(&models.Room{}).Where("number = ?", room.Number).Count(&count)
	if count > 0 {
		response.Conflict(c)
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateReservationCaches()
	response.Success(c, convertToRoomResponse(room))
}

func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Number != "" {
		room.Number = request.Number
	}
	if request.Floor != 0 {
		room.Floor = request.Floor
	}
	if request.Type != "" {
		room.Type = request.Type
	}
	if request.NightlyRate != 0 {
		room.NightlyRate = request.NightlyRate
	}
	if request.Description != "" {
		room.Description = request.Description
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateReservationCaches()
	response.Success(c, convertToRoomResponse(room))
}

// ChangeRoomStatus muda o flag consultivo do quarto. O flag não bloqueia
// datas: a checagem de conflito das reservas continua valendo.
func ChangeRoomStatus(c *gin.Context) {
	var request dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = models.RoomStatus(request.Status)
	if err := room.ValidateStatus(); err != nil {
		response.ValidationError(c, "Status do quarto inválido")
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateReservationCaches()
	response.Success(c, convertToRoomResponse(room))
}

func DeleteRoom(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var count int64
	config.DB.Model(&models.Reservation{}).Where("room_id = ?", room.ID).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Quarto possui reservas e não pode ser removido")
		return
	}

	if err := config.DB.Delete(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateReservationCaches()
	response.Success(c, gin.H{"id": room.ID})
}
