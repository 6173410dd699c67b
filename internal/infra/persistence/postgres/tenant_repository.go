package postgres

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

// FindByID retrieves a tenant by its unique ID.
func (r *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantModel model.TenantModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	return &entity.Tenant{
		ID:                  tenantModel.ID,
		Name:                tenantModel.Name,
		GoogleSSOEnabled:    tenantModel.GoogleSSOEnabled,
		GoogleAutoProvision: tenantModel.GoogleAutoProvision,
		CreatedAt:           tenantModel.CreatedAt,
		UpdatedAt:           tenantModel.UpdatedAt,
	}, nil
}
