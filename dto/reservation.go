package dto

import "time"

// CreateReservationRequest é o corpo de criação de reserva
type CreateReservationRequest struct {
	RoomID       uint   `json:"roomId"`
	GuestID      uint   `json:"guestId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate,omitempty"` // vazio = estadia em aberto
	Notes        string `json:"notes,omitempty"`
}

// UpdateReservationRequest é o corpo de edição de estadia
type UpdateReservationRequest struct {
	ID           uint   `json:"id"`
	RoomID       uint   `json:"roomId,omitempty"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ChangeReservationStatusRequest é o corpo de mudança de status
type ChangeReservationStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// QuoteRequest é o corpo da cotação especulativa de preço
type QuoteRequest struct {
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate,omitempty"`
}

// ReservationGuestResponse resume o hóspede dentro da reserva
type ReservationGuestResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

// ReservationRoomResponse resume o quarto dentro da reserva
type ReservationRoomResponse struct {
	ID          uint    `json:"id"`
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	NightlyRate float64 `json:"nightlyRate"`
}

// ReservationResponse é o DTO de resposta de reserva
type ReservationResponse struct {
	ID           uint                     `json:"id"`
	Room         ReservationRoomResponse  `json:"room"`
	Guest        ReservationGuestResponse `json:"guest"`
	CheckInDate  string                   `json:"checkInDate"`
	CheckOutDate *string                  `json:"checkOutDate"`
	Status       string                   `json:"status"`
	StatusLabel  string                   `json:"statusLabel"`
	Nights       int                      `json:"nights"`
	TotalAmount  float64                  `json:"totalAmount"`
	Notes        string                   `json:"notes,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// AvailabilityRequest são os parâmetros da consulta de quartos livres
type AvailabilityRequest struct {
	CheckInDate          string `form:"checkIn"`
	CheckOutDate         string `form:"checkOut"`
	ExcludeReservationID uint   `form:"exclude"`
}
