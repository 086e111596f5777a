package dto

// CreateGuestRequest é o corpo de criação de hóspede
type CreateGuestRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateGuestRequest é o corpo de atualização de hóspede
type UpdateGuestRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
