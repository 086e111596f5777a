package dto

import "time"

// CreatePaymentRequest é o corpo de lançamento de pagamento
type CreatePaymentRequest struct {
	ReservationID uint    `json:"reservationId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
}

// PaymentResponse é o DTO de resposta de pagamento
type PaymentResponse struct {
	ID            uint       `json:"id"`
	ReceiptCode   string     `json:"receiptCode"`
	ReservationID uint       `json:"reservationId"`
	Amount        float64    `json:"amount"`
	Method        string     `json:"method"`
	Status        int        `json:"status"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
