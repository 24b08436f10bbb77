package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farm groups coordinates under a single owner. Ownership is checked on
// every submission and status read.
type Farm struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	CenterLat float64   `json:"center_lat"`
	CenterLng float64   `json:"center_lng"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
