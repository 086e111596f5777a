package commands

import (
	"github.com/Samoo1234/HotelCosta-sub001/models"

	"gorm.io/gorm"
)

// ReservationCommand define a interface dos comandos de reserva
type ReservationCommand interface {
	Execute() error
}

// CreateReservationCommand cria uma reserva nova
type CreateReservationCommand struct {
	reservation *models.Reservation
	db          *gorm.DB
}

func NewCreateReservationCommand(reservation *models.Reservation, db *gorm.DB) *CreateReservationCommand {
	return &CreateReservationCommand{
		reservation: reservation,
		db:          db,
	}
}

func (c *CreateReservationCommand) Execute() error {
	return c.db.Create(c.reservation).Error
}

// UpdateReservationCommand grava alterações de uma reserva
type UpdateReservationCommand struct {
	reservation *models.Reservation
	db          *gorm.DB
}

func NewUpdateReservationCommand(reservation *models.Reservation, db *gorm.DB) *UpdateReservationCommand {
	return &UpdateReservationCommand{
		reservation: reservation,
		db:          db,
	}
}

func (c *UpdateReservationCommand) Execute() error {
	return c.db.Save(c.reservation).Error
}

// DeleteReservationCommand remove uma reserva
type DeleteReservationCommand struct {
	reservationID uint
	db            *gorm.DB
}

func NewDeleteReservationCommand(reservationID uint, db *gorm.DB) *DeleteReservationCommand {
	return &DeleteReservationCommand{
		reservationID: reservationID,
		db:            db,
	}
}

func (c *DeleteReservationCommand) Execute() error {
	return c.db.Delete(&models.Reservation{}, c.reservationID).Error
}
