package dto

// CreateRoomRequest é o corpo de criação de quarto
type CreateRoomRequest struct {
	Number      string  `json:"number"`
	Floor       int     `json:"floor"`
	Type        string  `json:"type"`
	NightlyRate float64 `json:"nightlyRate"`
	Description string  `json:"description"`
}

// UpdateRoomRequest é o corpo de atualização de quarto
type UpdateRoomRequest struct {
	ID          uint    `json:"id"`
	Number      string  `json:"number"`
	Floor       int     `json:"floor"`
	Type        string  `json:"type"`
	NightlyRate float64 `json:"nightlyRate"`
	Description string  `json:"description"`
}

// ChangeRoomStatusRequest muda o flag consultivo do quarto
type ChangeRoomStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// RoomResponse é o DTO de resposta de quarto
type RoomResponse struct {
	ID          uint    `json:"id"`
	Number      string  `json:"number"`
	Floor       int     `json:"floor"`
	Type        string  `json:"type"`
	NightlyRate float64 `json:"nightlyRate"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"statusLabel"`
	Description string  `json:"description"`
}
