package controllers

import (
	"net/http"
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/services"
	"github.com/Samoo1234/HotelCosta-sub001/validator"

	"github.com/gin-gonic/gin"
)

func convertToPaymentResponse(payment models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            payment.ID,
		ReceiptCode:   payment.ReceiptCode,
		ReservationID: payment.ReservationID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        payment.Status,
		PaidAt:        payment.PaidAt,
		CreatedAt:     payment.CreatedAt,
	}
}

// GetPayments lista os pagamentos, opcionalmente filtrados por reserva
func GetPayments(c *gin.Context) {
	query := config.DB.Model(&models.Payment{}).Order("created_at DESC")
	if reservationID := c.Query("reservationId"); reservationID != "" {
		query = query.Where("reservation_id = ?", reservationID)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		response.ServerError(c)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		paymentResponses = append(paymentResponses, convertToPaymentResponse(payment))
	}

	response.Success(c, paymentResponses)
}

func CreatePayment(c *gin.Context) {
	var request dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	audit := services.NewAuditSink(config.DB)

	var reservation models.Reservation
	if err := config.DB.First(&reservation, request.ReservationID).Error; err != nil {
		handled := errors.Handle(errors.CategoryNotFound, errors.HandleOptions{
			Message: "Reserva do pagamento não encontrada.",
			Context: "pagamento",
		})
		audit.Record(handled, services.AuditEntry{EntityType: "reservation", EntityID: request.ReservationID})
		response.HandledError(c, http.StatusNotFound, handled)
		return
	}

	payment := models.Payment{
		ReservationID: reservation.ID,
		Amount:        request.Amount,
		Method:        request.Method,
		Status:        models.PaymentStatusPaid,
	}

	if err := validator.ValidatePayment(&payment); err != nil {
		handled := errors.Handle(errors.CategoryPayment, errors.HandleOptions{
			Message: err.Error(),
			Context: payment.Method,
		})
		audit.Record(handled, services.AuditEntry{EntityType: "reservation", EntityID: reservation.ID})
		response.HandledError(c, http.StatusBadRequest, handled)
		return
	}

	now := time.Now()
	payment.PaidAt = &now

	if err := config.DB.Create(&payment).Error; err != nil {
		handled := errors.Handle(errors.CategoryPayment, errors.HandleOptions{Context: payment.Method})
		audit.Record(handled, services.AuditEntry{EntityType: "reservation", EntityID: reservation.ID})
		response.HandledError(c, http.StatusInternalServerError, handled)
		return
	}

	invalidateReservationCaches()
	response.Success(c, convertToPaymentResponse(payment))
}

// RefundPayment marca um pagamento como estornado. O registro original é
// mantido para o fechamento de caixa.
func RefundPayment(c *gin.Context) {
	paymentID := c.Param("id")

	var payment models.Payment
	if err := config.DB.First(&payment, paymentID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if payment.Status != models.PaymentStatusPaid {
		handled := errors.Handle(errors.CategoryPayment, errors.HandleOptions{
			Message:     "Só pagamentos confirmados podem ser estornados.",
			Suggestions: []string{"Verifique o status atual do pagamento"},
		})
		services.NewAuditSink(config.DB).Record(handled, services.AuditEntry{EntityType: "payment", EntityID: payment.ID})
		response.HandledError(c, http.StatusBadRequest, handled)
		return
	}

	payment.Status = models.PaymentStatusRefunded
	if err := config.DB.Save(&payment).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateReservationCaches()
	response.Success(c, convertToPaymentResponse(payment))
}
