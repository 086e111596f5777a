package models

import "fmt"

// ReservationStatus é o ciclo de vida fechado de uma reserva.
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// AllReservationStatuses lista todos os status válidos, na ordem do ciclo de vida.
var AllReservationStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}

// ParseReservationStatus converte a string persistida no status tipado.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("status de reserva desconhecido: %q", s)
	}
}

// Label retorna o rótulo do status no idioma do produto.
func (s ReservationStatus) Label() string {
	switch s {
	case StatusConfirmed:
		return "Confirmada"
	case StatusCheckedIn:
		return "Check-in Realizado"
	case StatusCheckedOut:
		return "Check-out Realizado"
	case StatusCancelled:
		return "Cancelada"
	case StatusNoShow:
		return "Não Compareceu"
	default:
		return string(s)
	}
}

// IsTerminal indica se nenhuma transição adicional é permitida a partir do status.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// CanTransitionTo aplica a tabela de transições.
//
// A assimetria entre checked_in→cancelled (aceita) e checked_in→no_show
// (rejeitada) é intencional e está pendente de definição de produto.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	if s == target {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	switch s {
	case StatusConfirmed:
		switch target {
		case StatusCheckedIn, StatusCancelled, StatusNoShow:
			return true
		default:
			return false
		}
	case StatusCheckedIn:
		switch target {
		case StatusCheckedOut, StatusCancelled:
			return true
		default:
			return false
		}
	default:
		return false
	}
}
