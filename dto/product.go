package dto

// CreateProductRequest é o corpo de criação de produto
type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// UpdateProductRequest é o corpo de atualização de produto
type UpdateProductRequest struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Stock  int     `json:"stock"`
	Active *bool   `json:"active,omitempty"`
}

// CreateConsumptionRequest é o corpo de lançamento de consumo
type CreateConsumptionRequest struct {
	ReservationID uint `json:"reservationId"`
	ProductID     uint `json:"productId"`
	Quantity      int  `json:"quantity"`
}
