package services

import (
	"math"
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/models"
)

const millisPerNight = 24 * 60 * 60 * 1000

// StayQuote é o resultado do cálculo de diárias e total de uma estadia.
type StayQuote struct {
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// CalculateStay calcula diárias e total para uma estadia.
//
// Estadia em aberto (sem data de check-out) cobra uma única diária
// provisória. Estadia fechada combina as datas com os horários HH:MM do
// hotel e arredonda as diárias sempre para cima, com mínimo de 1.
//
// Entradas inválidas ou incompletas retornam cotação zerada em vez de erro:
// a tela chama este cálculo especulativamente enquanto o formulário é
// preenchido.
func CalculateStay(nightlyRate float64, checkInDate, checkOutDate, checkInTime, checkOutTime string) StayQuote {
	if nightlyRate < 0 || checkInDate == "" {
		return StayQuote{}
	}

	checkIn, err := time.Parse(models.DateLayout, checkInDate)
	if err != nil {
		return StayQuote{}
	}

	if checkOutDate == "" {
		return StayQuote{Nights: 1, Total: roundMoney(nightlyRate)}
	}

	checkOut, err := time.Parse(models.DateLayout, checkOutDate)
	if err != nil {
		return StayQuote{}
	}

	start := combineDateTime(checkIn, checkInTime)
	end := combineDateTime(checkOut, checkOutTime)

	elapsedMillis := end.Sub(start).Milliseconds()
	nights := int(math.Ceil(float64(elapsedMillis) / float64(millisPerNight)))
	if nights < 1 {
		// check-out no mesmo dia ou antes do horário de entrada: cobra 1 diária
		nights = 1
	}

	return StayQuote{
		Nights: nights,
		Total:  roundMoney(float64(nights) * nightlyRate),
	}
}

// combineDateTime junta uma data de calendário com um horário HH:MM.
// Horário ilegível cai em meia-noite.
func combineDateTime(date time.Time, hhmm string) time.Time {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

// roundMoney arredonda para a precisão de centavos da moeda.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
