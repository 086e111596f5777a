package dto

// RevenueReport resume a receita do período
type RevenueReport struct {
	FromDate      string  `json:"fromDate"`
	ToDate        string  `json:"toDate"`
	PaymentTotal  float64 `json:"paymentTotal"`
	PaymentCount  int     `json:"paymentCount"`
	ConsumptionNo int     `json:"consumptionCount"`
	Consumption   float64 `json:"consumptionTotal"`
}

// OccupancyReport resume a ocupação do dia
type OccupancyReport struct {
	Date          string  `json:"date"`
	TotalRooms    int     `json:"totalRooms"`
	OccupiedRooms int     `json:"occupiedRooms"`
	OccupancyRate float64 `json:"occupancyRate"`
}
