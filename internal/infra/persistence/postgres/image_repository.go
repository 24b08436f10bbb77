package postgres

import (
	"context"

	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	"cropsat/internal/domain/repository"
	"cropsat/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// imageRepository implements the domain.ImageRepository interface.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

// CreateImage persists a new image record.
func (repo *imageRepository) CreateImage(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required image information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// FindImageByID retrieves an image by its unique ID.
func (repo *imageRepository) FindImageByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	var imageM model.ImageModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image by ID")
	}

	return toImageDomain(&imageM), nil
}

// --- Mapper Functions ---

// toImageDomain converts a GORM ImageModel to a domain Image entity.
func toImageDomain(data *model.ImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:        data.ID,
		Key:       data.Key,
		BBox:      data.BBox.Data(),
		Meta:      data.Meta.Data(),
		CreatedAt: data.CreatedAt,
	}
}

// fromImageDomain converts a domain Image entity to a GORM ImageModel.
func fromImageDomain(data *entity.Image) *model.ImageModel {
	if data == nil {
		return nil
	}

	return &model.ImageModel{
		ID:        data.ID,
		Key:       data.Key,
		BBox:      datatypes.NewJSONType(data.BBox),
		Meta:      datatypes.NewJSONType(data.Meta),
		CreatedAt: data.CreatedAt,
	}
}
