package validator

import (
	"testing"

	"github.com/Samoo1234/HotelCosta-sub001/models"
)

func TestValidateStayDates(t *testing.T) {
	if err := ValidateStayDates("2024-01-10", "2024-01-12"); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}

	// Check-out vazio = estadia em aberto, aceito
	if err := ValidateStayDates("2024-01-10", ""); err != nil {
		t.Fatalf("open-ended stay rejected: %v", err)
	}

	if err := ValidateStayDates("", "2024-01-12"); err == nil {
		t.Fatalf("missing check-in should be rejected")
	}
	if err := ValidateStayDates("10/01/2024", "2024-01-12"); err == nil {
		t.Fatalf("garbled check-in should be rejected")
	}
	if err := ValidateStayDates("2024-01-10", "2024-01-10"); err == nil {
		t.Fatalf("same-day check-out should be rejected")
	}
	if err := ValidateStayDates("2024-01-10", "2024-01-09"); err == nil {
		t.Fatalf("check-out before check-in should be rejected")
	}
}

func TestValidateGuest(t *testing.T) {
	guest := &models.Guest{Name: "José da Silva", Document: "12345678900"}
	if err := ValidateGuest(guest); err != nil {
		t.Fatalf("valid guest rejected: %v", err)
	}

	if err := ValidateGuest(&models.Guest{Document: "123"}); err == nil {
		t.Fatalf("guest without name should be rejected")
	}
	if err := ValidateGuest(&models.Guest{Name: "José"}); err == nil {
		t.Fatalf("guest without document should be rejected")
	}
	if err := ValidateGuest(&models.Guest{Name: "José", Document: "123", Email: "not-an-email"}); err == nil {
		t.Fatalf("bad email should be rejected")
	}
	if err := ValidateGuest(&models.Guest{Name: "José", Document: "123", Phone: "123"}); err == nil {
		t.Fatalf("short phone should be rejected")
	}
}

func TestValidatePayment(t *testing.T) {
	payment := &models.Payment{ReservationID: 1, Amount: 100, Method: "pix"}
	if err := ValidatePayment(payment); err != nil {
		t.Fatalf("valid payment rejected: %v", err)
	}

	if err := ValidatePayment(&models.Payment{ReservationID: 1, Amount: 0, Method: "pix"}); err == nil {
		t.Fatalf("zero amount should be rejected")
	}
	if err := ValidatePayment(&models.Payment{ReservationID: 1, Amount: 50, Method: "cheque"}); err == nil {
		t.Fatalf("unknown method should be rejected")
	}
}

func TestValidateSettings(t *testing.T) {
	settings := &models.HotelSettings{CheckInTime: "14:00", CheckOutTime: "12:00"}
	if err := ValidateSettings(settings); err != nil {
		t.Fatalf("valid settings rejected: %v", err)
	}

	settings.CheckInTime = "25:00"
	if err := ValidateSettings(settings); err == nil {
		t.Fatalf("invalid clock time should be rejected")
	}
}
