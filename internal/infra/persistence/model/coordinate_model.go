package model

import (
	"time"

	"github.com/google/uuid"
)

// CoordinateModel is the GORM-specific struct for the 'coordinates' table.
// The composite unique index on (farm_id, client_event_id) is the
// idempotency key for submissions.
type CoordinateModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FarmID         uuid.UUID  `gorm:"not null;uniqueIndex:idx_coordinates_farm_client_event"`
	ClientEventID  string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_coordinates_farm_client_event"`
	Lat            float64    `gorm:"type:decimal(10,8);not null"`
	Lng            float64    `gorm:"type:decimal(11,8);not null"`
	Accuracy       *float64   `gorm:"type:decimal(10,2)"`
	Status         string     `gorm:"type:varchar(20);not null;default:'queued';index:idx_coordinates_on_status"`
	FetchedImageID *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CoordinateModel) TableName() string {
	return "coordinates"
}
