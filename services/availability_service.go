package services

import (
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"
)

// ConflictSource é o colaborador que retorna as reservas existentes que podem
// conflitar com o intervalo alvo. checkOut nil significa alvo em aberto.
type ConflictSource interface {
	FindConflicts(checkIn time.Time, checkOut *time.Time, excluded []models.ReservationStatus, excludeReservationID uint) ([]models.ReservationConflict, error)
}

// Conjuntos de status excluídos da checagem de conflito. Os dois fluxos
// divergem de propósito (questão em aberto de política, não unificar):
// criação ignora canceladas e encerradas; edição ignora só canceladas.
var (
	CreateExcludedStatuses = []models.ReservationStatus{models.StatusCancelled, models.StatusCheckedOut}
	EditExcludedStatuses   = []models.ReservationStatus{models.StatusCancelled}
)

// AvailabilityQuery descreve o intervalo alvo e o contexto da checagem.
type AvailabilityQuery struct {
	CheckInDate          string
	CheckOutDate         string // vazio = estadia em aberto
	ExcludedStatuses     []models.ReservationStatus
	ExcludeReservationID uint // reserva em edição, para não conflitar consigo mesma
	CurrentRoomID        uint // quarto atual da reserva em edição
}

// AvailabilityService aplica a política de filtro de disponibilidade sobre o
// catálogo de quartos. A execução da consulta fica no ConflictSource; a
// política de conflito fica aqui.
type AvailabilityService struct {
	source ConflictSource
}

func NewAvailabilityService(source ConflictSource) *AvailabilityService {
	return &AvailabilityService{source: source}
}

// AvailableRooms retorna o subconjunto de quartos que pode receber a estadia.
//
// Um quarto entra no resultado se o flag consultivo é available (ou se é o
// quarto da própria reserva em edição) e se nenhuma reserva conflitante o
// referencia. Falha do colaborador é propagada — nunca tratar todos os
// quartos como livres.
func (s *AvailabilityService) AvailableRooms(rooms []models.Room, q AvailabilityQuery) ([]models.Room, error) {
	checkIn, err := time.Parse(models.DateLayout, q.CheckInDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Data de check-in inválida", err)
	}

	var checkOut *time.Time
	if q.CheckOutDate != "" {
		parsed, err := time.Parse(models.DateLayout, q.CheckOutDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Data de check-out inválida", err)
		}
		if !parsed.After(checkIn) {
			return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Data de check-out deve ser posterior à de check-in", nil)
		}
		checkOut = &parsed
	}

	excluded := q.ExcludedStatuses
	if len(excluded) == 0 {
		excluded = CreateExcludedStatuses
	}

	conflicts, err := s.source.FindConflicts(checkIn, checkOut, excluded, q.ExcludeReservationID)
	if err != nil {
		return nil, err
	}

	occupied := make(map[uint]bool, len(conflicts))
	for _, c := range conflicts {
		occupied[c.RoomID] = true
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Status != models.RoomAvailable && room.ID != q.CurrentRoomID {
			continue
		}
		if occupied[room.ID] {
			continue
		}
		available = append(available, room)
	}

	return available, nil
}

// RangesConflict decide se uma reserva existente conflita com o intervalo alvo.
//
// Alvo fechado: teste de sobreposição com bordas inclusivas
// (existente.checkIn <= alvo.checkOut && existente.checkOut >= alvo.checkIn);
// uma existente em aberto (existingOut nil) ocupa o quarto indefinidamente.
//
// Alvo em aberto: conflita a existente que começa no mesmo dia, ou que começou
// antes e ainda está em aberto ou termina estritamente depois do dia alvo.
func RangesConflict(existingIn time.Time, existingOut *time.Time, targetIn time.Time, targetOut *time.Time) bool {
	if targetOut != nil {
		if existingIn.After(*targetOut) {
			return false
		}
		return existingOut == nil || !existingOut.Before(targetIn)
	}

	if existingIn.Equal(targetIn) {
		return true
	}
	if existingIn.After(targetIn) {
		return false
	}
	return existingOut == nil || existingOut.After(targetIn)
}

// ConflictOverlaps aplica RangesConflict sobre a tupla crua vinda da consulta.
// Datas ilegíveis na base são tratadas como falha da consulta, não como
// quarto livre.
func ConflictOverlaps(c models.ReservationConflict, targetIn time.Time, targetOut *time.Time) (bool, error) {
	existingIn, err := time.Parse(models.DateLayout, c.CheckInDate)
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Data de check-in ilegível na reserva existente", err)
	}

	var existingOut *time.Time
	if c.CheckOutDate != nil && *c.CheckOutDate != "" {
		parsed, err := time.Parse(models.DateLayout, *c.CheckOutDate)
		if err != nil {
			return false, errors.NewAppError(errors.ErrCodeDBError, "Data de check-out ilegível na reserva existente", err)
		}
		existingOut = &parsed
	}

	return RangesConflict(existingIn, existingOut, targetIn, targetOut), nil
}
