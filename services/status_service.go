package services

import (
	"fmt"

	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"
)

// ValidateStatusTransition decide se a mudança de status é permitida e, quando
// não é, produz o resultado estruturado com explicação e sugestões de
// correção. Transição ilegal é condição esperada e corrigível pelo usuário:
// vira dado, nunca erro lançado.
func ValidateStatusTransition(current, target models.ReservationStatus) errors.ValidationResult {
	if _, err := models.ParseReservationStatus(string(current)); err != nil {
		return invalidTransition(
			fmt.Sprintf("Status atual desconhecido: %q.", string(current)),
			"Recarregue a reserva e tente novamente",
		)
	}
	if _, err := models.ParseReservationStatus(string(target)); err != nil {
		return invalidTransition(
			fmt.Sprintf("Status de destino desconhecido: %q.", string(target)),
			"Escolha um status válido na listagem",
		)
	}

	if current == target {
		return invalidTransition(
			fmt.Sprintf("A reserva já está no status %s.", current.Label()),
			"Nenhuma ação é necessária",
		)
	}

	if current.CanTransitionTo(target) {
		if current == models.StatusCheckedIn && target == models.StatusCancelled {
			// Permitido porém incomum: sinaliza sem bloquear.
			return errors.ValidationResult{
				Valid:    true,
				Message:  fmt.Sprintf("Cancelando uma reserva que já está em %s.", current.Label()),
				Severity: errors.SeverityWarning,
				Suggestions: []string{
					"Confirme com o hóspede antes de cancelar uma estadia em andamento",
				},
			}
		}
		return errors.ValidationResult{Valid: true}
	}

	if current.IsTerminal() {
		return invalidTransition(
			fmt.Sprintf("A reserva está em um status final (%s) e não pode mudar para %s.", current.Label(), target.Label()),
			"Crie uma nova reserva se o hóspede retornar",
			"Status finais não podem ser reabertos",
		)
	}

	switch {
	case current == models.StatusConfirmed && target == models.StatusCheckedOut:
		return invalidTransition(
			fmt.Sprintf("Não é possível mudar de %s direto para %s.", current.Label(), target.Label()),
			"Realize o check-in primeiro",
			"Depois do check-in, faça o check-out normalmente",
		)
	case current == models.StatusCheckedIn && target == models.StatusConfirmed:
		return invalidTransition(
			fmt.Sprintf("Não é possível voltar de %s para %s.", current.Label(), target.Label()),
			"O status da reserva não retrocede",
			"Cancele a reserva se o check-in foi registrado por engano",
		)
	case current == models.StatusCheckedIn && target == models.StatusNoShow:
		return invalidTransition(
			fmt.Sprintf("Uma reserva em %s não pode ser marcada como %s.", current.Label(), target.Label()),
			"Realize o check-out ao fim da estadia",
			"Use o cancelamento se a estadia foi interrompida",
		)
	default:
		return invalidTransition(
			fmt.Sprintf("Não é possível mudar de %s para %s.", current.Label(), target.Label()),
			"Verifique o status atual da reserva",
			"Siga a ordem: confirmada, check-in, check-out",
		)
	}
}

func invalidTransition(message string, suggestions ...string) errors.ValidationResult {
	return errors.ValidationResult{
		Valid:       false,
		Message:     message,
		Severity:    errors.SeverityError,
		Suggestions: suggestions,
	}
}
