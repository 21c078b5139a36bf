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

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("address owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).First(&addressM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindByUser retrieves all addresses of a user, default address first.
func (repo *addressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindDefaultByUser retrieves the user's default address.
func (repo *addressRepository) FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address")
	}

	return toAddressDomain(&addressM), nil
}

// ClearDefault unsets the default flag on the user's addresses, keeping the
// given address untouched when except is not uuid.Nil.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID, except uuid.UUID) error {
	query := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true)
	if except != uuid.Nil {
		query = query.Where("id <> ?", except)
	}

	if err := query.Update("is_default", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default address")
	}

	return nil
}

// Update modifies an existing address record.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"first_name":  addressM.FirstName,
			"last_name":   addressM.LastName,
			"phone":       addressM.Phone,
			"address":     addressM.Address,
			"city":        addressM.City,
			"postal_code": addressM.PostalCode,
			"country":     addressM.Country,
			"is_default":  addressM.IsDefault,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	return nil
}

// Delete removes an address by its ID.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		UserID:     data.UserID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		Address:    data.Address,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		UserID:     data.UserID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		Address:    data.Address,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		IsDefault:  data.IsDefault,
	}
}
