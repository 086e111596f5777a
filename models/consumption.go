package models

import "time"

// Consumption registra um produto consumido durante a estadia.
// UnitPrice é congelado no momento do lançamento.
type Consumption struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	ReservationID uint        `json:"reservationId" gorm:"index"`
	Reservation   Reservation `json:"reservation" gorm:"foreignKey:ReservationID"`
	ProductID     uint        `json:"productId"`
	Product       Product     `json:"product" gorm:"foreignKey:ProductID"`
	Quantity      int         `json:"quantity"`
	UnitPrice     float64     `json:"unitPrice"`
	Total         float64     `json:"total"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
}
