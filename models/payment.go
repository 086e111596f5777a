package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusPaid     = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

type Payment struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	ReceiptCode   string      `json:"receiptCode" gorm:"unique;size:20"`
	ReservationID uint        `json:"reservationId" gorm:"index"`
	Reservation   Reservation `json:"reservation" gorm:"foreignKey:ReservationID"`
	Amount        float64     `json:"amount"`
	Method        string      `json:"method"` // dinheiro, cartao, pix
	Status        int         `json:"status"`
	PaidAt        *time.Time  `json:"paidAt,omitempty"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	p.ReceiptCode = fmt.Sprintf("HC%d", time.Now().UnixNano()/1e6)

	var count int64
	if err := tx.Model(&Payment{}).Where("receipt_code = ?", p.ReceiptCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("ReceiptCode já existe, tente novamente")
	}
	return nil
}
