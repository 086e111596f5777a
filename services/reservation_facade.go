package services

import (
	"fmt"

	"github.com/Samoo1234/HotelCosta-sub001/builders"
	"github.com/Samoo1234/HotelCosta-sub001/commands"
	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"

	"gorm.io/gorm"
)

// ReservationFacade simplifica a orquestração de criação, edição e mudança de
// status de reservas: disponibilidade → preço → gravação → auditoria.
type ReservationFacade struct {
	db           *gorm.DB
	availability *AvailabilityService
	audit        *AuditSink
}

// NewReservationFacade cria uma instância nova de ReservationFacade
func NewReservationFacade(db *gorm.DB) *ReservationFacade {
	return &ReservationFacade{
		db:           db,
		availability: NewAvailabilityService(NewGormConflictSource(db)),
		audit:        NewAuditSink(db),
	}
}

// CreateReservationInput são os campos vindos do formulário de criação.
type CreateReservationInput struct {
	RoomID       uint
	GuestID      uint
	CheckInDate  string
	CheckOutDate string // vazio = estadia em aberto
	Notes        string
}

// CreateReservation cria a reserva com status inicial confirmada.
//
// A checagem de disponibilidade e a gravação são duas idas separadas ao
// banco, sem transação: dois operadores simultâneos podem enxergar o mesmo
// quarto livre e gravar reservas sobrepostas. Limitação conhecida e assumida;
// a defesa recomendada é uma constraint de exclusão quarto+intervalo no banco.
func (f *ReservationFacade) CreateReservation(in CreateReservationInput, settings models.HotelSettings) (*models.Reservation, *errors.HandledError) {
	var room models.Room
	if err := f.db.First(&room, in.RoomID).Error; err != nil {
		return nil, f.fail(errors.CategoryNotFound, errors.HandleOptions{
			Message: "Quarto não encontrado.",
			Context: "quarto",
		}, "room", in.RoomID)
	}

	var guest models.Guest
	if err := f.db.First(&guest, in.GuestID).Error; err != nil {
		return nil, f.fail(errors.CategoryNotFound, errors.HandleOptions{
			Message: "Hóspede não encontrado.",
			Context: "hospede",
		}, "guest", in.GuestID)
	}

	free, err := f.availability.AvailableRooms([]models.Room{room}, AvailabilityQuery{
		CheckInDate:      in.CheckInDate,
		CheckOutDate:     in.CheckOutDate,
		ExcludedStatuses: CreateExcludedStatuses,
	})
	if err != nil {
		return nil, f.fail(errors.CategoryNetwork, errors.HandleOptions{
			Message: "Não foi possível verificar a disponibilidade do quarto.",
			Context: "reserva",
		}, "room", in.RoomID)
	}
	if len(free) == 0 {
		return nil, f.fail(errors.CategoryValidation, errors.HandleOptions{
			Message: fmt.Sprintf("O quarto %s não está disponível no período informado.", room.Number),
			Suggestions: []string{
				"Consulte os quartos livres para o período",
				"Ajuste as datas da estadia",
			},
			Context: "reserva",
		}, "room", in.RoomID)
	}

	quote := CalculateStay(room.NightlyRate, in.CheckInDate, in.CheckOutDate, settings.CheckInTime, settings.CheckOutTime)
	if quote.Nights == 0 {
		return nil, f.fail(errors.CategoryValidation, errors.HandleOptions{
			Message: "Datas da estadia inválidas ou incompletas.",
			Context: "reserva",
		}, "room", in.RoomID)
	}

	reservation := builders.NewReservationBuilder().
		WithRoom(in.RoomID).
		WithGuest(in.GuestID).
		WithCheckIn(in.CheckInDate).
		WithCheckOut(in.CheckOutDate).
		WithStay(quote.Nights, quote.Total).
		WithNotes(in.Notes).
		Build()

	if err := commands.NewCreateReservationCommand(reservation, f.db).Execute(); err != nil {
		return nil, f.fail(errors.CategoryServer, errors.HandleOptions{
			Message: "Não foi possível gravar a reserva.",
			Context: "reserva",
		}, "reservation", 0)
	}

	return reservation, nil
}

// UpdateStayInput são os campos editáveis de uma estadia existente.
type UpdateStayInput struct {
	RoomID       uint
	CheckInDate  string
	CheckOutDate string
	Notes        string
}

// UpdateStay altera quarto/datas de uma reserva e recalcula o total.
// O fluxo de edição exclui da checagem apenas reservas canceladas e ignora a
// própria reserva em edição.
func (f *ReservationFacade) UpdateStay(reservationID uint, in UpdateStayInput, settings models.HotelSettings) (*models.Reservation, *errors.HandledError) {
	var reservation models.Reservation
	if err := f.db.First(&reservation, reservationID).Error; err != nil {
		return nil, f.fail(errors.CategoryNotFound, errors.HandleOptions{Context: "reserva"}, "reservation", reservationID)
	}

	roomID := reservation.RoomID
	if in.RoomID != 0 {
		roomID = in.RoomID
	}

	var room models.Room
	if err := f.db.First(&room, roomID).Error; err != nil {
		return nil, f.fail(errors.CategoryNotFound, errors.HandleOptions{
			Message: "Quarto não encontrado.",
			Context: "quarto",
		}, "room", roomID)
	}

	free, err := f.availability.AvailableRooms([]models.Room{room}, AvailabilityQuery{
		CheckInDate:          in.CheckInDate,
		CheckOutDate:         in.CheckOutDate,
		ExcludedStatuses:     EditExcludedStatuses,
		ExcludeReservationID: reservation.ID,
		CurrentRoomID:        reservation.RoomID,
	})
	if err != nil {
		return nil, f.fail(errors.CategoryNetwork, errors.HandleOptions{
			Message: "Não foi possível verificar a disponibilidade do quarto.",
			Context: "reserva",
		}, "reservation", reservation.ID)
	}
	if len(free) == 0 {
		return nil, f.fail(errors.CategoryValidation, errors.HandleOptions{
			Message: fmt.Sprintf("O quarto %s não está disponível no novo período.", room.Number),
			Suggestions: []string{
				"Consulte os quartos livres para o período",
				"Mantenha as datas originais",
			},
			Context: "reserva",
		}, "reservation", reservation.ID)
	}

	quote := CalculateStay(room.NightlyRate, in.CheckInDate, in.CheckOutDate, settings.CheckInTime, settings.CheckOutTime)
	if quote.Nights == 0 {
		return nil, f.fail(errors.CategoryValidation, errors.HandleOptions{
			Message: "Datas da estadia inválidas ou incompletas.",
			Context: "reserva",
		}, "reservation", reservation.ID)
	}

	reservation.RoomID = roomID
	reservation.CheckInDate = in.CheckInDate
	if in.CheckOutDate != "" {
		checkOut := in.CheckOutDate
		reservation.CheckOutDate = &checkOut
	} else {
		reservation.CheckOutDate = nil
	}
	reservation.Nights = quote.Nights
	reservation.TotalAmount = quote.Total
	if in.Notes != "" {
		reservation.Notes = in.Notes
	}

	if err := commands.NewUpdateReservationCommand(&reservation, f.db).Execute(); err != nil {
		return nil, f.fail(errors.CategoryServer, errors.HandleOptions{
			Message: "Não foi possível gravar a reserva.",
			Context: "reserva",
		}, "reservation", reservation.ID)
	}

	return &reservation, nil
}

// ChangeStatus aplica a mudança de status gated pelo validador de transições.
// Transição ilegal retorna o resultado estruturado como dado (HandledError
// renderizável), nunca como erro lançado. O ValidationResult retornado carrega
// o aviso das transições permitidas porém incomuns.
func (f *ReservationFacade) ChangeStatus(reservationID uint, target models.ReservationStatus) (*models.Reservation, errors.ValidationResult, *errors.HandledError) {
	var reservation models.Reservation
	if err := f.db.First(&reservation, reservationID).Error; err != nil {
		return nil, errors.ValidationResult{}, f.fail(errors.CategoryNotFound, errors.HandleOptions{Context: "reserva"}, "reservation", reservationID)
	}

	result := ValidateStatusTransition(reservation.Status, target)
	if !result.Valid {
		return nil, result, f.fail(errors.CategoryStatusChange, errors.HandleOptions{
			Validation: &result,
			Context:    string(target),
		}, "reservation", reservation.ID)
	}

	reservation.Status = target
	if err := commands.NewUpdateReservationCommand(&reservation, f.db).Execute(); err != nil {
		return nil, result, f.fail(errors.CategoryServer, errors.HandleOptions{
			Message: "Não foi possível gravar a mudança de status.",
			Context: "reserva",
		}, "reservation", reservation.ID)
	}

	return &reservation, result, nil
}

// fail monta o HandledError e registra na auditoria. Falha de auditoria não
// altera o resultado.
func (f *ReservationFacade) fail(category errors.Category, opts errors.HandleOptions, entityType string, entityID uint) *errors.HandledError {
	handled := errors.Handle(category, opts)
	f.audit.Record(handled, AuditEntry{
		EntityType: entityType,
		EntityID:   entityID,
	})
	return &handled
}
