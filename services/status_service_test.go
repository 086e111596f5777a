package services

import (
	"strings"
	"testing"

	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"
)

func TestValidateStatusTransitionHappyPath(t *testing.T) {
	cases := []struct {
		current, target models.ReservationStatus
	}{
		{models.StatusConfirmed, models.StatusCheckedIn},
		{models.StatusConfirmed, models.StatusCancelled},
		{models.StatusConfirmed, models.StatusNoShow},
		{models.StatusCheckedIn, models.StatusCheckedOut},
	}

	for _, tc := range cases {
		result := ValidateStatusTransition(tc.current, tc.target)
		if !result.Valid {
			t.Fatalf("%s -> %s should be valid, got %+v", tc.current, tc.target, result)
		}
		if result.Message != "" {
			t.Fatalf("%s -> %s should carry no warning, got %q", tc.current, tc.target, result.Message)
		}
	}
}

func TestValidateStatusTransitionTerminalsRejectEverything(t *testing.T) {
	terminals := []models.ReservationStatus{
		models.StatusCheckedOut,
		models.StatusCancelled,
		models.StatusNoShow,
	}

	for _, current := range terminals {
		for _, target := range models.AllReservationStatuses {
			result := ValidateStatusTransition(current, target)
			if result.Valid {
				t.Fatalf("terminal %s -> %s should be invalid", current, target)
			}
			if result.Message == "" || len(result.Suggestions) == 0 {
				t.Fatalf("terminal %s -> %s should explain and suggest, got %+v", current, target, result)
			}
		}
	}
}

func TestValidateStatusTransitionSkipCheckInIsRejected(t *testing.T) {
	result := ValidateStatusTransition(models.StatusConfirmed, models.StatusCheckedOut)
	if result.Valid {
		t.Fatalf("confirmed -> checked_out should be invalid")
	}
	if !strings.Contains(result.Message, "Confirmada") || !strings.Contains(result.Message, "Check-out Realizado") {
		t.Fatalf("message should name both statuses, got %q", result.Message)
	}
	if len(result.Suggestions) == 0 {
		t.Fatalf("expected at least one suggestion")
	}
}

func TestValidateStatusTransitionNoRollback(t *testing.T) {
	result := ValidateStatusTransition(models.StatusCheckedIn, models.StatusConfirmed)
	if result.Valid {
		t.Fatalf("checked_in -> confirmed should be invalid")
	}
	if !strings.Contains(result.Message, "Check-in Realizado") || !strings.Contains(result.Message, "Confirmada") {
		t.Fatalf("message should name both statuses, got %q", result.Message)
	}
	if len(result.Suggestions) == 0 {
		t.Fatalf("expected at least one suggestion")
	}
	if result.Severity != errors.SeverityError {
		t.Fatalf("expected error severity, got %s", result.Severity)
	}
}

func TestValidateStatusTransitionCheckedInNoShowRejected(t *testing.T) {
	result := ValidateStatusTransition(models.StatusCheckedIn, models.StatusNoShow)
	if result.Valid {
		t.Fatalf("checked_in -> no_show should be invalid: the guest showed up")
	}
}

func TestValidateStatusTransitionCancelDuringStayWarns(t *testing.T) {
	// Permitida porém incomum: válida com aviso, diferente do no_show acima
	result := ValidateStatusTransition(models.StatusCheckedIn, models.StatusCancelled)
	if !result.Valid {
		t.Fatalf("checked_in -> cancelled should be allowed, got %+v", result)
	}
	if result.Severity != errors.SeverityWarning {
		t.Fatalf("expected warning severity, got %q", result.Severity)
	}
	if result.Message == "" || len(result.Suggestions) == 0 {
		t.Fatalf("warning should carry message and suggestion, got %+v", result)
	}
}

func TestValidateStatusTransitionSameStatus(t *testing.T) {
	for _, status := range models.AllReservationStatuses {
		result := ValidateStatusTransition(status, status)
		if result.Valid {
			t.Fatalf("%s -> %s should be invalid", status, status)
		}
	}
}

func TestValidateStatusTransitionUnknownStatus(t *testing.T) {
	if result := ValidateStatusTransition("pending", models.StatusConfirmed); result.Valid {
		t.Fatalf("unknown current status should be invalid")
	}
	if result := ValidateStatusTransition(models.StatusConfirmed, "archived"); result.Valid {
		t.Fatalf("unknown target status should be invalid")
	}
}
