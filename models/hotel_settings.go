package models

import "time"

// HotelSettings é o registro singleton de configuração do hotel.
// Os horários HH:MM convertem intervalos de datas em contagens de diárias;
// são sempre passados explicitamente para o cálculo de preço, nunca lidos
// como estado global.
type HotelSettings struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	HotelName    string    `json:"hotelName"`
	CheckInTime  string    `json:"checkInTime" gorm:"default:14:00"`  // HH:MM
	CheckOutTime string    `json:"checkOutTime" gorm:"default:12:00"` // HH:MM
	Currency     string    `json:"currency" gorm:"default:BRL"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
