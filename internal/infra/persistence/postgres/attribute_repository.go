package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// attributeRepository implements the domain.AttributeRepository interface.
type attributeRepository struct {
	db *gorm.DB
}

// NewAttributeRepository is the constructor for attributeRepository.
func NewAttributeRepository(db *gorm.DB) repository.AttributeRepository {
	return &attributeRepository{db: db}
}

// CreateAttribute persists a new attribute.
func (repo *attributeRepository) CreateAttribute(ctx context.Context, attribute *entity.Attribute) error {
	attributeM := fromAttributeDomain(attribute)

	if err := repo.db.WithContext(ctx).Create(attributeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAttributeNameTaken.WrapMessage("attribute name already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attribute")
	}

	attribute.ID = attributeM.ID
	attribute.CreatedAt = attributeM.CreatedAt
	attribute.UpdatedAt = attributeM.UpdatedAt

	return nil
}

// FindAttributeByID retrieves an attribute with its values.
func (repo *attributeRepository) FindAttributeByID(ctx context.Context, id uuid.UUID) (*entity.Attribute, error) {
	var attributeM model.AttributeModel
	err := repo.db.WithContext(ctx).
		Preload("Values").
		First(&attributeM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute by id")
	}

	return toAttributeDomain(&attributeM), nil
}

// FindAttributeByName retrieves an attribute by its unique name.
func (repo *attributeRepository) FindAttributeByName(ctx context.Context, name string) (*entity.Attribute, error) {
	var attributeM model.AttributeModel
	err := repo.db.WithContext(ctx).First(&attributeM, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute by name")
	}

	return toAttributeDomain(&attributeM), nil
}

// FindAllAttributes retrieves every attribute with values populated.
func (repo *attributeRepository) FindAllAttributes(ctx context.Context) ([]*entity.Attribute, error) {
	var attributeModels []*model.AttributeModel
	err := repo.db.WithContext(ctx).
		Preload("Values").
		Order("name ASC").
		Find(&attributeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	attributes := make([]*entity.Attribute, 0, len(attributeModels))
	for _, attributeM := range attributeModels {
		attributes = append(attributes, toAttributeDomain(attributeM))
	}

	return attributes, nil
}

// DeleteAttribute removes an attribute and its values.
func (repo *attributeRepository) DeleteAttribute(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.AttributeValueModel{}, "attribute_id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete attribute values")
	}

	result := repo.db.WithContext(ctx).Delete(&model.AttributeModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete attribute")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAttributeNotFound
	}

	return nil
}

// CreateValue persists a new value under an attribute.
func (repo *attributeRepository) CreateValue(ctx context.Context, value *entity.AttributeValue) error {
	valueM := fromAttributeValueDomain(value)

	if err := repo.db.WithContext(ctx).Create(valueM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAttributeValueTaken.WrapMessage("value already exists for this attribute")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attribute value")
	}

	value.ID = valueM.ID
	value.CreatedAt = valueM.CreatedAt
	value.UpdatedAt = valueM.UpdatedAt

	return nil
}

// FindValueByID retrieves an attribute value by ID.
func (repo *attributeRepository) FindValueByID(ctx context.Context, id uuid.UUID) (*entity.AttributeValue, error) {
	var valueM model.AttributeValueModel
	err := repo.db.WithContext(ctx).
		Preload("Attribute").
		First(&valueM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeValueNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute value by id")
	}

	return toAttributeValueDomain(&valueM), nil
}

// FindValue retrieves a value by attribute and literal value.
func (repo *attributeRepository) FindValue(ctx context.Context, attributeID uuid.UUID, value string) (*entity.AttributeValue, error) {
	var valueM model.AttributeValueModel
	err := repo.db.WithContext(ctx).
		Where("attribute_id = ? AND value = ?", attributeID, value).
		First(&valueM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeValueNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute value")
	}

	return toAttributeValueDomain(&valueM), nil
}

// DeleteValue removes an attribute value by ID.
func (repo *attributeRepository) DeleteValue(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AttributeValueModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete attribute value")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAttributeValueNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAttributeDomain(data *model.AttributeModel) *entity.Attribute {
	if data == nil {
		return nil
	}

	values := make([]*entity.AttributeValue, 0, len(data.Values))
	for _, valueM := range data.Values {
		values = append(values, toAttributeValueDomain(valueM))
	}

	return &entity.Attribute{
		ID:        data.ID,
		Name:      data.Name,
		Values:    values,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAttributeDomain(data *entity.Attribute) *model.AttributeModel {
	if data == nil {
		return nil
	}

	return &model.AttributeModel{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toAttributeValueDomain(data *model.AttributeValueModel) *entity.AttributeValue {
	if data == nil {
		return nil
	}

	return &entity.AttributeValue{
		ID:          data.ID,
		AttributeID: data.AttributeID,
		Attribute:   toAttributeDomain(data.Attribute),
		Value:       data.Value,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAttributeValueDomain(data *entity.AttributeValue) *model.AttributeValueModel {
	if data == nil {
		return nil
	}

	return &model.AttributeValueModel{
		ID:          data.ID,
		AttributeID: data.AttributeID,
		Value:       data.Value,
	}
}
