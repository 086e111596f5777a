package models

import (
	"fmt"
	"time"
)

// RoomStatus é o flag consultivo do quarto. A disponibilidade real é derivada
// da sobreposição de reservas, não deste campo.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

// Label retorna o rótulo do flag no idioma do produto.
func (s RoomStatus) Label() string {
	switch s {
	case RoomAvailable:
		return "Disponível"
	case RoomOccupied:
		return "Ocupado"
	case RoomMaintenance:
		return "Manutenção"
	case RoomReserved:
		return "Reservado"
	default:
		return string(s)
	}
}

type Room struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Number      string     `json:"number" gorm:"uniqueIndex;size:10"`
	Floor       int        `json:"floor"`
	Type        string     `json:"type"`
	NightlyRate float64    `json:"nightlyRate"`
	Status      RoomStatus `json:"status" gorm:"default:available"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomReserved:
		return nil
	default:
		return fmt.Errorf("status de quarto inválido: %q", r.Status)
	}
}
