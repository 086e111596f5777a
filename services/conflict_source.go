package services

import (
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"

	"gorm.io/gorm"
)

// GormConflictSource materializa o ConflictSource sobre o Postgres hospedado.
//
// A consulta faz um pré-filtro grosseiro por status e data de início; o teste
// exato de sobreposição (bordas inclusivas, estadias em aberto) roda em
// ConflictOverlaps para manter a política num único lugar.
type GormConflictSource struct {
	db *gorm.DB
}

func NewGormConflictSource(db *gorm.DB) *GormConflictSource {
	return &GormConflictSource{db: db}
}

func (s *GormConflictSource) FindConflicts(checkIn time.Time, checkOut *time.Time, excluded []models.ReservationStatus, excludeReservationID uint) ([]models.ReservationConflict, error) {
	// O formato AAAA-MM-DD ordena lexicograficamente, então a comparação de
	// strings no SQL é segura.
	upperBound := checkIn
	if checkOut != nil {
		upperBound = *checkOut
	}

	tx := s.db.Model(&models.Reservation{}).
		Select("id", "room_id", "check_in_date", "check_out_date").
		Where("check_in_date <= ?", upperBound.Format(models.DateLayout))

	if len(excluded) > 0 {
		tx = tx.Where("status NOT IN ?", excluded)
	}
	if excludeReservationID != 0 {
		tx = tx.Where("id <> ?", excludeReservationID)
	}

	var rows []models.Reservation
	if err := tx.Find(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Erro ao consultar reservas conflitantes", err)
	}

	var conflicts []models.ReservationConflict
	for _, row := range rows {
		candidate := models.ReservationConflict{
			ReservationID: row.ID,
			RoomID:        row.RoomID,
			CheckInDate:   row.CheckInDate,
			CheckOutDate:  row.CheckOutDate,
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
