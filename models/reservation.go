package models

import "time"

// DateLayout é o formato de data de calendário persistido (colunas date do
// Postgres hospedado).
const DateLayout = "2006-01-02"

type Reservation struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	RoomID       uint              `json:"roomId" gorm:"index"`
	Room         Room              `json:"room" gorm:"foreignKey:RoomID"`
	GuestID      uint              `json:"guestId" gorm:"index"`
	Guest        Guest             `json:"guest" gorm:"foreignKey:GuestID"`
	CheckInDate  string            `json:"checkInDate"`
	CheckOutDate *string           `json:"checkOutDate"` // nil = estadia em aberto
	Status       ReservationStatus `json:"status" gorm:"default:confirmed;index"`
	Nights       int               `json:"nights"`
	TotalAmount  float64           `json:"totalAmount"` // calculado na criação, não recalculado automaticamente
	Notes        string            `json:"notes"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsOpenEnded indica se a reserva ainda não tem data de check-out.
// Para fins de conflito, uma estadia em aberto ocupa o quarto indefinidamente.
func (r *Reservation) IsOpenEnded() bool {
	return r.CheckOutDate == nil || *r.CheckOutDate == ""
}

// ReservationConflict é a tupla mínima que a consulta de conflitos retorna.
type ReservationConflict struct {
	ReservationID uint
	RoomID        uint
	CheckInDate   string
	CheckOutDate  *string
}
