package models

import (
	"encoding/json"
	"time"
)

// AuditLog é o destino do registro estruturado de erros tratados.
type AuditLog struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Code       string          `json:"code" gorm:"size:20"` // código de correlação
	Category   string          `json:"category" gorm:"index"`
	Message    string          `json:"message"`
	EntityType string          `json:"entityType"`
	EntityID   uint            `json:"entityId"`
	Tags       json.RawMessage `json:"tags" gorm:"type:json"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}
