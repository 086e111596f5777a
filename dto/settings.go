package dto

// UpdateSettingsRequest é o corpo de atualização da configuração do hotel
type UpdateSettingsRequest struct {
	HotelName    string `json:"hotelName"`
	CheckInTime  string `json:"checkInTime"`  // HH:MM
	CheckOutTime string `json:"checkOutTime"` // HH:MM
	Currency     string `json:"currency"`
}
