package services

import (
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/services/logger"

	"gorm.io/gorm"
)

// RoomFlagService recalcula o flag consultivo dos quartos a partir das
// reservas vigentes. O flag é apenas informativo para as telas de listagem;
// a disponibilidade real continua sendo derivada da sobreposição de reservas.
type RoomFlagService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewRoomFlagService(db *gorm.DB) *RoomFlagService {
	return &RoomFlagService{
		db:  db,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// RefreshRoomFlags marca occupied os quartos com hóspede em casa, reserved os
// quartos com reserva confirmada cobrindo o dia, e available o restante.
// Quartos em manutenção são controlados manualmente e não são tocados.
func (s *RoomFlagService) RefreshRoomFlags() error {
	today := time.Now().Format(models.DateLayout)

	var reservations []models.Reservation
	if err := s.db.
		Where("status IN ?", []models.ReservationStatus{models.StatusCheckedIn, models.StatusConfirmed}).
		Where("check_in_date <= ?", today).
		Find(&reservations).Error; err != nil {
		return err
	}

	flags := make(map[uint]models.RoomStatus)
	for _, r := range reservations {
		coversToday := r.IsOpenEnded() || *r.CheckOutDate > today
		if !coversToday {
			continue
		}
		if r.Status == models.StatusCheckedIn {
			flags[r.RoomID] = models.RoomOccupied
		} else if flags[r.RoomID] != models.RoomOccupied {
			flags[r.RoomID] = models.RoomReserved
		}
	}

	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return err
	}

	for _, room := range rooms {
		if room.Status == models.RoomMaintenance {
			continue
		}
		want, ok := flags[room.ID]
		if !ok {
			want = models.RoomAvailable
		}
		if room.Status == want {
			continue
		}
		if err := s.db.Model(&models.Room{}).Where("id = ?", room.ID).Update("status", want).Error; err != nil {
			s.log.Error("falha ao atualizar flag do quarto %d: %v", room.ID, err)
		}
	}

	return nil
}
