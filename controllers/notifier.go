package controllers

import (
	"encoding/json"
	"log"

	"github.com/Samoo1234/HotelCosta-sub001/models"

	"github.com/olahol/melody"
)

var wsHub *melody.Melody

// SetWebSocketHub injeta o hub usado para avisar as telas abertas
func SetWebSocketHub(m *melody.Melody) {
	wsHub = m
}

// notifyReservationEvent transmite o evento de reserva para as telas abertas.
// Falha de broadcast não afeta a operação.
func notifyReservationEvent(event string, reservation *models.Reservation) {
	if wsHub == nil || reservation == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"event":         event,
		"reservationId": reservation.ID,
		"roomId":        reservation.RoomID,
		"status":        reservation.Status,
		"statusLabel":   reservation.Status.Label(),
	})
	if err != nil {
		return
	}

	if err := wsHub.Broadcast(payload); err != nil {
		log.Printf("Erro ao transmitir evento de reserva: %v", err)
	}
}
