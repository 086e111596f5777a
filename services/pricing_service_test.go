package services

import "testing"

func TestCalculateStayClosedRange(t *testing.T) {
	// Mesmos horários de entrada e saída: conta diárias de calendário
	quote := CalculateStay(100, "2024-01-10", "2024-01-13", "12:00", "12:00")
	if quote.Nights != 3 {
		t.Fatalf("expected 3 nights, got %d", quote.Nights)
	}
	if quote.Total != 300.00 {
		t.Fatalf("expected total 300.00, got %.2f", quote.Total)
	}
}

func TestCalculateStayPartialNightRoundsUp(t *testing.T) {
	// Saída depois do horário padrão: a fração vira diária cheia
	quote := CalculateStay(100, "2024-01-10", "2024-01-13", "14:00", "18:00")
	if quote.Nights != 4 {
		t.Fatalf("expected 4 nights (3 days + late checkout), got %d", quote.Nights)
	}
	if quote.Total != 400.00 {
		t.Fatalf("expected total 400.00, got %.2f", quote.Total)
	}

	// Saída antes do horário de entrada: ainda assim 3 diárias não viram 2
	quote = CalculateStay(100, "2024-01-10", "2024-01-13", "14:00", "12:00")
	if quote.Nights != 3 {
		t.Fatalf("expected 3 nights with early checkout clock, got %d", quote.Nights)
	}
}

func TestCalculateStaySameDayChargesOneNight(t *testing.T) {
	quote := CalculateStay(250, "2024-05-01", "2024-05-01", "14:00", "12:00")
	if quote.Nights != 1 {
		t.Fatalf("expected minimum of 1 night, got %d", quote.Nights)
	}
	if quote.Total != 250.00 {
		t.Fatalf("expected total 250.00, got %.2f", quote.Total)
	}
}

func TestCalculateStayOpenEnded(t *testing.T) {
	quote := CalculateStay(180.50, "2024-03-01", "", "14:00", "12:00")
	if quote.Nights != 1 {
		t.Fatalf("expected 1 provisional night, got %d", quote.Nights)
	}
	if quote.Total != 180.50 {
		t.Fatalf("expected total 180.50, got %.2f", quote.Total)
	}
}

func TestCalculateStayInvalidInputIsZero(t *testing.T) {
	cases := []struct {
		name                     string
		rate                     float64
		checkIn, checkOut        string
		checkInTime, checkOutTime string
	}{
		{"negative rate", -10, "2024-01-10", "2024-01-12", "14:00", "12:00"},
		{"empty check-in", 100, "", "2024-01-12", "14:00", "12:00"},
		{"garbled check-in", 100, "10/01/2024", "2024-01-12", "14:00", "12:00"},
		{"garbled check-out", 100, "2024-01-10", "12-01", "14:00", "12:00"},
	}

	for _, tc := range cases {
		quote := CalculateStay(tc.rate, tc.checkIn, tc.checkOut, tc.checkInTime, tc.checkOutTime)
		if quote.Nights != 0 || quote.Total != 0 {
			t.Fatalf("%s: expected zero quote, got %+v", tc.name, quote)
		}
	}
}

func TestCalculateStayInvalidClockFallsBackToMidnight(t *testing.T) {
	// Horário ilegível cai em meia-noite dos dois lados: diárias de calendário
	quote := CalculateStay(100, "2024-01-10", "2024-01-12", "xx:yy", "zz:ww")
	if quote.Nights != 2 {
		t.Fatalf("expected 2 nights with midnight fallback, got %d", quote.Nights)
	}
}

func TestCalculateStayRoundsToCents(t *testing.T) {
	// 99.99 * 3 acumula erro binário (299.96999...): o total sai exato
	quote := CalculateStay(99.99, "2024-01-10", "2024-01-13", "12:00", "12:00")
	if quote.Total != 299.97 {
		t.Fatalf("expected total rounded to 299.97, got %v", quote.Total)
	}
}
