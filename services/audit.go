package services

import (
	"encoding/json"

	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/services/logger"

	"gorm.io/gorm"
)

// AuditEntry carrega o contexto da entidade associado ao erro tratado.
type AuditEntry struct {
	EntityType string
	EntityID   uint
	Tags       map[string]string
}

// AuditSink grava erros tratados na tabela de auditoria.
//
// Se a gravação falhar, o registro cai no log local e a operação original
// NÃO é considerada falha: auditoria indisponível nunca derruba a operação.
type AuditSink struct {
	db  *gorm.DB
	log logger.Logger
}

func NewAuditSink(db *gorm.DB) *AuditSink {
	return &AuditSink{
		db:  db,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// Record persiste o erro tratado. Sempre retorna sem erro.
func (s *AuditSink) Record(h errors.HandledError, entry AuditEntry) {
	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		tags = []byte("{}")
	}

	row := models.AuditLog{
		Code:       h.Code,
		Category:   string(h.Category),
		Message:    h.Message,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Tags:       tags,
	}

	if err := s.db.Create(&row).Error; err != nil {
		// Fallback local: registra e segue.
		s.log.Error("auditoria indisponível, registrando localmente: %s %s (%v)", h.Code, h.Message, err)
	}
}
