package model

import (
	"time"

	"cropsat/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImageModel is the GORM-specific struct for the 'images' table.
// The bounding box and upload metadata are stored as JSONB documents.
type ImageModel struct {
	ID        uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Key       string                                `gorm:"type:text;not null;uniqueIndex:idx_images_on_key"`
	BBox      datatypes.JSONType[entity.BoundingBox] `gorm:"type:jsonb;not null"`
	Meta      datatypes.JSONType[entity.ImageMeta]   `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
