package postgres

import (
	"context"

	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	"cropsat/internal/domain/repository"
	"cropsat/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// farmRepository implements the domain.FarmRepository interface.
type farmRepository struct {
	db *gorm.DB
}

// NewFarmRepository is the constructor for farmRepository.
func NewFarmRepository(db *gorm.DB) repository.FarmRepository {
	return &farmRepository{db: db}
}

// CreateFarm persists a new farm.
func (repo *farmRepository) CreateFarm(ctx context.Context, farm *entity.Farm) error {
	farmM := fromFarmDomain(farm)

	if err := repo.db.WithContext(ctx).Create(farmM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrFarmCreationFailed.WrapMessage("missing required farm information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create farm")
	}

	farm.ID = farmM.ID
	farm.CreatedAt = farmM.CreatedAt
	farm.UpdatedAt = farmM.UpdatedAt

	return nil
}

// FindFarmByID retrieves a farm by its unique ID. Ownership is not
// filtered here; the caller decides between not-found and forbidden.
func (repo *farmRepository) FindFarmByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	var farmM model.FarmModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&farmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm by ID")
	}

	return toFarmDomain(&farmM), nil
}

// FindFarmsByOwner retrieves all farms for a specific owner.
func (repo *farmRepository) FindFarmsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error) {
	var farmModels []*model.FarmModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&farmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find farms by owner")
	}

	farms := make([]*entity.Farm, 0, len(farmModels))
	for _, farmM := range farmModels {
		farms = append(farms, toFarmDomain(farmM))
	}

	return farms, nil
}

// --- Mapper Functions ---

// toFarmDomain converts a GORM FarmModel to a domain Farm entity.
func toFarmDomain(data *model.FarmModel) *entity.Farm {
	if data == nil {
		return nil
	}

	return &entity.Farm{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		CenterLat: data.CenterLat,
		CenterLng: data.CenterLng,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFarmDomain converts a domain Farm entity to a GORM FarmModel.
func fromFarmDomain(data *entity.Farm) *model.FarmModel {
	if data == nil {
		return nil
	}

	return &model.FarmModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		CenterLat: data.CenterLat,
		CenterLng: data.CenterLng,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
