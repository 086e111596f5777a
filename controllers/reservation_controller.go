package controllers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/commands"
	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/constants"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/services"
	"github.com/Samoo1234/HotelCosta-sub001/validator"

	"github.com/gin-gonic/gin"
)

const reservationsCacheKey = "reservations:all"

func convertToReservationResponse(reservation models.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID: reservation.ID,
		Room: dto.ReservationRoomResponse{
			ID:          reservation.Room.ID,
			Number:      reservation.Room.Number,
			Type:        reservation.Room.Type,
			NightlyRate: reservation.Room.NightlyRate,
		},
		Guest: dto.ReservationGuestResponse{
			ID:       reservation.Guest.ID,
			Name:     reservation.Guest.Name,
			Document: reservation.Guest.Document,
			Phone:    reservation.Guest.Phone,
		},
		CheckInDate:  reservation.CheckInDate,
		CheckOutDate: reservation.CheckOutDate,
		Status:       string(reservation.Status),
		StatusLabel:  reservation.Status.Label(),
		Nights:       reservation.Nights,
		TotalAmount:  reservation.TotalAmount,
		Notes:        reservation.Notes,
		CreatedAt:    reservation.CreatedAt,
		UpdatedAt:    reservation.UpdatedAt,
	}
}

// invalidateReservationCaches limpa as listagens afetadas por escrita de reserva
func invalidateReservationCaches() {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, reservationsCacheKey)
	_ = services.DeleteFromRedis(config.Ctx, rdb, roomsCacheKey)
	_ = services.DeleteKeysByPattern(config.Ctx, rdb, "reports:*")
}

func GetReservations(c *gin.Context) {
	var allReservations []models.Reservation

	rdb := config.RedisClient

	// Tenta o cache; sem cache ou com Redis fora, vai ao banco
	if err := services.GetFromRedis(config.Ctx, rdb, reservationsCacheKey, &allReservations); err != nil || len(allReservations) == 0 {
		if err := config.DB.Model(&models.Reservation{}).
			Preload("Room").
			Preload("Guest").
			Find(&allReservations).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, reservationsCacheKey, allReservations, 10*time.Minute); err != nil {
			log.Printf("Erro ao gravar listagem de reservas no Redis: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	guestFilter := c.Query("guest")
	roomFilter := c.Query("room")
	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	page := constants.DefaultPage
	limit := constants.DefaultLimit
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filtered := make([]models.Reservation, 0)
	for _, reservation := range allReservations {
		if guestFilter != "" {
			decodedGuest, _ := url.QueryUnescape(guestFilter)
			if !strings.Contains(strings.ToLower(reservation.Guest.Name), strings.ToLower(decodedGuest)) {
				continue
			}
		}
		if roomFilter != "" && reservation.Room.Number != roomFilter {
			continue
		}
		if statusFilter != "" && string(reservation.Status) != statusFilter {
			continue
		}
		if fromDateStr != "" && reservation.CheckInDate < fromDateStr {
			continue
		}
		if toDateStr != "" && reservation.CheckInDate > toDateStr {
			continue
		}
		filtered = append(filtered, reservation)
	}

	totalFiltered := len(filtered)

	// Mais recentes primeiro
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filtered = []models.Reservation{}
	} else if end > totalFiltered {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	reservationResponses := make([]dto.ReservationResponse, 0, len(filtered))
	for _, reservation := range filtered {
		reservationResponses = append(reservationResponses, convertToReservationResponse(reservation))
	}

	response.SuccessWithPagination(c, reservationResponses, page, limit, totalFiltered)
}

func GetReservationDetail(c *gin.Context) {
	reservationID := c.Param("id")

	var reservation models.Reservation
	if err := config.DB.Preload("Room").
		Preload("Guest").
		Where("id = ?", reservationID).
		First(&reservation).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToReservationResponse(reservation))
}

func CreateReservation(c *gin.Context) {
	var request dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	if request.RoomID == 0 || request.GuestID == 0 {
		response.BadRequest(c, "Quarto e hóspede são obrigatórios")
		return
	}

	if err := validator.ValidateStayDates(request.CheckInDate, request.CheckOutDate); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	settings, err := getHotelSettings()
	if err != nil {
		response.ServerError(c)
		return
	}

	facade := services.NewReservationFacade(config.DB)
	reservation, handled := facade.CreateReservation(services.CreateReservationInput{
		RoomID:       request.RoomID,
		GuestID:      request.GuestID,
		CheckInDate:  request.CheckInDate,
		CheckOutDate: request.CheckOutDate,
		Notes:        request.Notes,
	}, settings)
	if handled != nil {
		response.HandledError(c, http.StatusBadRequest, *handled)
		return
	}

	if err := config.DB.Preload("Room").Preload("Guest").First(reservation, reservation.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	notifyReservationEvent("reservation.created", reservation)
	invalidateReservationCaches()

	response.Success(c, convertToReservationResponse(*reservation))
}

func UpdateReservation(c *gin.Context) {
	var request dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	if request.ID == 0 {
		response.BadRequest(c, "ID da reserva é obrigatório")
		return
	}

	if err := validator.ValidateStayDates(request.CheckInDate, request.CheckOutDate); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	settings, err := getHotelSettings()
	if err != nil {
		response.ServerError(c)
		return
	}

	facade := services.NewReservationFacade(config.DB)
	reservation, handled := facade.UpdateStay(request.ID, services.UpdateStayInput{
		RoomID:       request.RoomID,
		CheckInDate:  request.CheckInDate,
		CheckOutDate: request.CheckOutDate,
		Notes:        request.Notes,
	}, settings)
	if handled != nil {
		response.HandledError(c, http.StatusBadRequest, *handled)
		return
	}

	if err := config.DB.Preload("Room").Preload("Guest").First(reservation, reservation.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	notifyReservationEvent("reservation.updated", reservation)
	invalidateReservationCaches()

	response.Success(c, convertToReservationResponse(*reservation))
}

func ChangeReservationStatus(c *gin.Context) {
	var request dto.ChangeReservationStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	target, err := models.ParseReservationStatus(request.Status)
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("Status inválido: %s", request.Status))
		return
	}

	facade := services.NewReservationFacade(config.DB)
	reservation, result, handled := facade.ChangeStatus(request.ID, target)
	if handled != nil {
		// Transição ilegal é condição esperada: resultado estruturado, não erro
		response.HandledError(c, http.StatusOK, *handled)
		return
	}

	if err := config.DB.Preload("Room").Preload("Guest").First(reservation, reservation.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	notifyReservationEvent("reservation.status_changed", reservation)
	invalidateReservationCaches()

	response.Success(c, gin.H{
		"reservation": convertToReservationResponse(*reservation),
		"validation":  result,
	})
}

// DeleteReservation remove a reserva em definitivo. Uso administrativo;
// o fluxo normal é o cancelamento via mudança de status.
func DeleteReservation(c *gin.Context) {
	reservationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID da reserva inválido")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, reservationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := commands.NewDeleteReservationCommand(reservation.ID, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	invalidateReservationCaches()
	response.Success(c, gin.H{"id": reservation.ID})
}

// QuoteStay calcula diárias e total de forma especulativa, enquanto o
// formulário é preenchido. Entrada incompleta retorna cotação zerada.
func QuoteStay(c *gin.Context) {
	var request dto.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.RoomID).Error; err != nil {
		// Quarto ainda não escolhido: cotação zerada, sem erro
		response.Success(c, services.StayQuote{})
		return
	}

	settings, err := getHotelSettings()
	if err != nil {
		response.ServerError(c)
		return
	}

	quote := services.CalculateStay(room.NightlyRate, request.CheckInDate, request.CheckOutDate, settings.CheckInTime, settings.CheckOutTime)
	response.Success(c, quote)
}
