package builders

import (
	"github.com/Samoo1234/HotelCosta-sub001/models"
)

// ReservationBuilder monta uma reserva passo a passo
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder cria uma instância nova de ReservationBuilder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{Status: models.StatusConfirmed},
	}
}

// WithRoom define o quarto
func (b *ReservationBuilder) WithRoom(roomID uint) *ReservationBuilder {
	b.reservation.RoomID = roomID
	return b
}

// WithGuest define o hóspede
func (b *ReservationBuilder) WithGuest(guestID uint) *ReservationBuilder {
	b.reservation.GuestID = guestID
	return b
}

// WithStatus define o status
func (b *ReservationBuilder) WithStatus(status models.ReservationStatus) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// WithCheckIn define a data de check-in
func (b *ReservationBuilder) WithCheckIn(checkIn string) *ReservationBuilder {
	b.reservation.CheckInDate = checkIn
	return b
}

// WithCheckOut define a data de check-out; vazio mantém a estadia em aberto
func (b *ReservationBuilder) WithCheckOut(checkOut string) *ReservationBuilder {
	if checkOut == "" {
		b.reservation.CheckOutDate = nil
		return b
	}
	b.reservation.CheckOutDate = &checkOut
	return b
}

// WithStay define diárias e total calculados
func (b *ReservationBuilder) WithStay(nights int, totalAmount float64) *ReservationBuilder {
	b.reservation.Nights = nights
	b.reservation.TotalAmount = totalAmount
	return b
}

// WithNotes define as observações
func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.reservation.Notes = notes
	return b
}

// Build retorna a reserva montada
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
