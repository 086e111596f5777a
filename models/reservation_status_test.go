package models

import "testing"

func TestParseReservationStatus(t *testing.T) {
	for _, status := range AllReservationStatuses {
		parsed, err := ParseReservationStatus(string(status))
		if err != nil || parsed != status {
			t.Fatalf("expected %s to parse, got %v / %v", status, parsed, err)
		}
	}

	for _, garbage := range []string{"", "pending", "CONFIRMED", "checkedin"} {
		if _, err := ParseReservationStatus(garbage); err == nil {
			t.Fatalf("expected %q to be rejected", garbage)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := map[ReservationStatus]bool{
		StatusConfirmed:  false,
		StatusCheckedIn:  false,
		StatusCheckedOut: true,
		StatusCancelled:  true,
		StatusNoShow:     true,
	}

	for status, want := range terminal {
		if status.IsTerminal() != want {
			t.Fatalf("IsTerminal(%s) = %v, want %v", status, !want, want)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	allowed := map[ReservationStatus][]ReservationStatus{
		StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
		StatusCheckedIn: {StatusCheckedOut, StatusCancelled},
	}

	for _, current := range AllReservationStatuses {
		for _, target := range AllReservationStatuses {
			want := false
			for _, a := range allowed[current] {
				if a == target {
					want = true
				}
			}
			if got := current.CanTransitionTo(target); got != want {
				t.Fatalf("CanTransitionTo(%s, %s) = %v, want %v", current, target, got, want)
			}
		}
	}
}

func TestLabelCoversAllStatuses(t *testing.T) {
	for _, status := range AllReservationStatuses {
		if status.Label() == string(status) {
			t.Fatalf("status %s is missing a display label", status)
		}
	}
}
