package models

import "time"

// Perfis da recepção
const (
	RoleReceptionist = 1
	RoleAdmin        = 2
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Role      int       `json:"role" gorm:"default:1"`
	Status    int       `json:"status" gorm:"default:1"` // 1 ativo, 0 inativo
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
