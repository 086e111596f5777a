package controllers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetConsumptions lista os consumos de uma reserva
func GetConsumptions(c *gin.Context) {
	reservationID := c.Param("id")

	var consumptions []models.Consumption
	if err := config.DB.Preload("Product").
		Where("reservation_id = ?", reservationID).
		Order("created_at").
		Find(&consumptions).Error; err != nil {
		response.ServerError(c)
		return
	}

	var total float64
	for _, consumption := range consumptions {
		total += consumption.Total
	}

	response.Success(c, gin.H{
		"items": consumptions,
		"total": math.Round(total*100) / 100,
	})
}

// CreateConsumption lança um consumo na reserva, congelando o preço unitário
// e baixando o estoque na mesma transação.
func CreateConsumption(c *gin.Context) {
	var request dto.CreateConsumptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	audit := services.NewAuditSink(config.DB)

	fail := func(status int, message string, suggestions ...string) {
		handled := errors.Handle(errors.CategoryConsumption, errors.HandleOptions{
			Message:     message,
			Suggestions: suggestions,
		})
		audit.Record(handled, services.AuditEntry{EntityType: "reservation", EntityID: request.ReservationID})
		response.HandledError(c, status, handled)
	}

	if request.Quantity <= 0 {
		fail(http.StatusBadRequest, "Quantidade deve ser maior que zero.")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, request.ReservationID).Error; err != nil {
		fail(http.StatusNotFound, "Reserva não encontrada.")
		return
	}

	if reservation.Status != models.StatusCheckedIn {
		fail(http.StatusBadRequest,
			"Consumo só pode ser lançado em reserva com check-in ativo.",
			"Realize o check-in antes de lançar consumos")
		return
	}

	var consumption models.Consumption

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, request.ProductID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Produto não encontrado", err)
		}

		if !product.Active {
			return errors.NewAppError(errors.ErrCodeValidation, "Produto inativo", nil)
		}

		if product.Stock < request.Quantity {
			return errors.NewAppError(errors.ErrCodeValidation,
				fmt.Sprintf("Estoque insuficiente: restam %d unidades", product.Stock), nil)
		}

		product.Stock -= request.Quantity
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		consumption = models.Consumption{
			ReservationID: reservation.ID,
			ProductID:     product.ID,
			Quantity:      request.Quantity,
			UnitPrice:     product.Price,
			Total:         math.Round(product.Price*float64(request.Quantity)*100) / 100,
		}
		return tx.Create(&consumption).Error
	})
	if err != nil {
		fail(http.StatusBadRequest, err.Error(), "Verifique o estoque do produto")
		return
	}

	invalidateReservationCaches()
	response.Success(c, consumption)
}

// DeleteConsumption estorna um lançamento de consumo devolvendo o estoque
func DeleteConsumption(c *gin.Context) {
	consumptionID := c.Param("id")

	var consumption models.Consumption
	if err := config.DB.First(&consumption, consumptionID).Error; err != nil {
		response.NotFound(c)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, consumption.ProductID).Error; err == nil {
			product.Stock += consumption.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&consumption).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateReservationCaches()
	response.Success(c, gin.H{"id": consumption.ID})
}
