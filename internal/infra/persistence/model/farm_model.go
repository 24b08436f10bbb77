// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmModel is the GORM-specific struct for the 'farms' table.
type FarmModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID   uuid.UUID `gorm:"not null;index:idx_farms_on_owner"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CenterLat float64   `gorm:"type:decimal(10,8);not null"`
	CenterLng float64   `gorm:"type:decimal(11,8);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmModel) TableName() string {
	return "farms"
}
