package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/models"
)

// fakeConflictSource aplica o mesmo predicado exato do colaborador real
// sobre reservas em memória.
type fakeConflictSource struct {
	reservations []models.Reservation
	err          error
}

func (f *fakeConflictSource) FindConflicts(checkIn time.Time, checkOut *time.Time, excluded []models.ReservationStatus, excludeReservationID uint) ([]models.ReservationConflict, error) {
	if f.err != nil {
		return nil, f.err
	}

	excludedSet := make(map[models.ReservationStatus]bool, len(excluded))
	for _, s := range excluded {
		excludedSet[s] = true
	}

	var conflicts []models.ReservationConflict
	for _, r := range f.reservations {
		if r.ID == excludeReservationID || excludedSet[r.Status] {
			continue
		}
		candidate := models.ReservationConflict{
			ReservationID: r.ID,
			RoomID:        r.RoomID,
			CheckInDate:   r.CheckInDate,
			CheckOutDate:  r.CheckOutDate,
		}
		overlaps, err := ConflictOverlaps(candidate, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if overlaps {
			conflicts = append(conflicts, candidate)
		}
	}
	return conflicts, nil
}

func strPtr(s string) *string { return &s }

func testRooms() []models.Room {
	return []models.Room{
		{ID: 1, Number: "101", Status: models.RoomAvailable},
		{ID: 2, Number: "102", Status: models.RoomAvailable},
		{ID: 3, Number: "103", Status: models.RoomMaintenance},
	}
}

func TestAvailableRoomsFiltersConflicts(t *testing.T) {
	source := &fakeConflictSource{reservations: []models.Reservation{
		{ID: 10, RoomID: 1, Status: models.StatusConfirmed, CheckInDate: "2024-02-01", CheckOutDate: strPtr("2024-02-05")},
	}}
	svc := NewAvailabilityService(source)

	available, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{
		CheckInDate:  "2024-02-03",
		CheckOutDate: "2024-02-04",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Quarto 1 conflita, quarto 3 está em manutenção: sobra só o 2
	if len(available) != 1 || available[0].ID != 2 {
		t.Fatalf("expected only room 2, got %+v", available)
	}
}

func TestAvailableRoomsInclusiveBoundaries(t *testing.T) {
	source := &fakeConflictSource{reservations: []models.Reservation{
		{ID: 10, RoomID: 1, Status: models.StatusConfirmed, CheckInDate: "2024-02-01", CheckOutDate: strPtr("2024-02-05")},
	}}
	svc := NewAvailabilityService(source)

	// Check-in no dia do check-out da existente ainda conflita (bordas inclusivas)
	available, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{
		CheckInDate:  "2024-02-05",
		CheckOutDate: "2024-02-07",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, room := range available {
		if room.ID == 1 {
			t.Fatalf("room 1 should conflict on shared boundary day")
		}
	}

	// Um dia depois do check-out já libera o quarto
	available, err = svc.AvailableRooms(testRooms(), AvailabilityQuery{
		CheckInDate:  "2024-02-06",
		CheckOutDate: "2024-02-08",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, room := range available {
		if room.ID == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("room 1 should be free after existing checkout, got %+v", available)
	}
}

func TestAvailableRoomsCancelledIsIgnoredOnCreate(t *testing.T) {
	source := &fakeConflictSource{reservations: []models.Reservation{
		{ID: 10, RoomID: 1, Status: models.StatusConfirmed, CheckInDate: "2024-02-01", CheckOutDate: strPtr("2024-02-05")},
		{ID: 11, RoomID: 2, Status: models.StatusCancelled, CheckInDate: "2024-02-03", CheckOutDate: strPtr("2024-02-06")},
	}}
	svc := NewAvailabilityService(source)

	// Sem conjunto explícito vale o fluxo de criação: cancelada e encerrada
	// não ocupam o quarto
	available, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{
		CheckInDate:  "2024-02-03",
		CheckOutDate: "2024-02-04",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].ID != 2 {
		t.Fatalf("expected room 2 free despite cancelled reservation, got %+v", available)
	}
}

func TestAvailableRoomsOpenEndedExistingBlocks(t *testing.T) {
	source := &fakeConflictSource{reservations: []models.Reservation{
		{ID: 10, RoomID: 1, Status: models.StatusCheckedIn, CheckInDate: "2024-02-01", CheckOutDate: nil},
	}}
	svc := NewAvailabilityService(source)

	// Existente em aberto ocupa o quarto indefinidamente
	available, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{
		CheckInDate:  "2024-06-01",
		CheckOutDate: "2024-06-05",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, room := range available {
		if room.ID == 1 {
			t.Fatalf("room 1 with open-ended stay should never be available")
		}
	}
}

func TestAvailableRoomsOpenEndedTarget(t *testing.T) {
	source := &fakeConflictSource{reservations: []models.Reservation{
		// Termina exatamente no dia alvo: não conflita com alvo em aberto
		{ID: 10, RoomID: 1, Status: models.StatusConfirmed, CheckInDate: "2024-02-01", CheckOutDate: strPtr("2024-02-10")},
		// Termina depois do dia alvo: conflita
		{ID: 11, RoomID: 2, Status: models.StatusConfirmed, CheckInDate: "2024-02-01", CheckOutDate: strPtr("2024-02-11")},
	}}
	svc := NewAvailabilityService(source)

	available, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{
		CheckInDate: "2024-02-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].ID != 1 {
		t.Fatalf("expected only room 1 free for open-ended target, got %+v", available)
	}
}

func TestAvailableRoomsEditExcludesOwnReservation(t *testing.T) {
	source := &fakeConflictSource{reservations: []models.Reservation{
		{ID: 10, RoomID: 1, Status: models.StatusConfirmed, CheckInDate: "2024-02-01", CheckOutDate: strPtr("2024-02-05")},
	}}
	svc := NewAvailabilityService(source)

	// Editando a própria reserva 10: ela não conflita consigo mesma e o
	// quarto atual entra mesmo que o flag não esteja available
	rooms := testRooms()
	rooms[0].Status = models.RoomOccupied

	available, err := svc.AvailableRooms(rooms, AvailabilityQuery{
		CheckInDate:          "2024-02-02",
		CheckOutDate:         "2024-02-06",
		ExcludedStatuses:     EditExcludedStatuses,
		ExcludeReservationID: 10,
		CurrentRoomID:        1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, room := range available {
		if room.ID == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("room 1 should be offered when editing its own reservation, got %+v", available)
	}
}

func TestAvailableRoomsEditStillSeesCheckedOut(t *testing.T) {
	source := &fakeConflictSource{reservations: []models.Reservation{
		{ID: 12, RoomID: 2, Status: models.StatusCheckedOut, CheckInDate: "2024-02-01", CheckOutDate: strPtr("2024-02-05")},
	}}
	svc := NewAvailabilityService(source)

	// No fluxo de edição só canceladas são ignoradas: a encerrada ainda ocupa
	available, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{
		CheckInDate:      "2024-02-03",
		CheckOutDate:     "2024-02-04",
		ExcludedStatuses: EditExcludedStatuses,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, room := range available {
		if room.ID == 2 {
			t.Fatalf("room 2 should conflict with checked_out reservation in edit flow")
		}
	}
}

func TestAvailableRoomsSourceErrorPropagates(t *testing.T) {
	sourceErr := errors.New("connection refused")
	svc := NewAvailabilityService(&fakeConflictSource{err: sourceErr})

	_, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{
		CheckInDate:  "2024-02-03",
		CheckOutDate: "2024-02-04",
	})
	if err == nil {
		t.Fatalf("expected source error to propagate, got nil")
	}
}

func TestAvailableRoomsRejectsBadDates(t *testing.T) {
	svc := NewAvailabilityService(&fakeConflictSource{})

	if _, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{CheckInDate: "03/02/2024"}); err == nil {
		t.Fatalf("expected error for garbled check-in date")
	}
	if _, err := svc.AvailableRooms(testRooms(), AvailabilityQuery{CheckInDate: "2024-02-04", CheckOutDate: "2024-02-04"}); err == nil {
		t.Fatalf("expected error for check-out not after check-in")
	}
}

func TestConflictOverlapsGarbledStoredDateIsError(t *testing.T) {
	targetIn, _ := time.Parse(models.DateLayout, "2024-02-03")
	_, err := ConflictOverlaps(models.ReservationConflict{
		ReservationID: 1,
		RoomID:        1,
		CheckInDate:   "not-a-date",
	}, targetIn, nil)
	if err == nil {
		t.Fatalf("garbled stored date must surface as error, never as free room")
	}
}
