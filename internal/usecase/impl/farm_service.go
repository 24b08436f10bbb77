package impl

import (
	"context"
	"time"

	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	"cropsat/internal/domain/repository"
	"cropsat/internal/errors"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
)

type farmService struct {
	farmRepo repository.FarmRepository
}

// NewFarmService creates a new farm service instance
func NewFarmService(farmRepo repository.FarmRepository) usecase.FarmUsecase {
	return &farmService{farmRepo: farmRepo}
}

// CreateFarm registers a new farm owned by the caller.
func (s *farmService) CreateFarm(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateFarmInput) (*entity.Farm, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	now := time.Now()
	farm := &entity.Farm{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      input.Name,
		CenterLat: input.CenterLat,
		CenterLng: input.CenterLng,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.farmRepo.CreateFarm(ctx, farm); err != nil {
		return nil, domainerrors.ErrFarmCreationFailed.WrapMessage(err.Error())
	}

	return farm, nil
}

// GetFarms lists the farms owned by the caller.
func (s *farmService) GetFarms(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error) {
	farms, err := s.farmRepo.FindFarmsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farms")
	}

	return farms, nil
}

// GetFarm returns one farm, hiding foreign farms behind a 403.
func (s *farmService) GetFarm(ctx context.Context, ownerID, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm")
	}

	if farm.OwnerID != ownerID {
		return nil, domainerrors.ErrForbidden
	}

	return farm, nil
}
