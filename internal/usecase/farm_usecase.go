package usecase

import (
	"context"

	"cropsat/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFarmInput represents the input for registering a new farm.
type CreateFarmInput struct {
	Name      string  `json:"name"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
}

// FarmUsecase defines farm management use cases.
type FarmUsecase interface {
	CreateFarm(ctx context.Context, ownerID uuid.UUID, input *CreateFarmInput) (*entity.Farm, error)
	GetFarms(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error)
	GetFarm(ctx context.Context, ownerID, farmID uuid.UUID) (*entity.Farm, error)
}
