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

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByTenantAndName retrieves a role by name within a tenant.
func (r *roleRepository) FindByTenantAndName(ctx context.Context, tenantID uuid.UUID, name string) (*entity.Role, error) {
	var roleModel model.RoleModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND name = ?", tenantID, name).
		First(&roleModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by tenant and name")
	}

	role := toRoleEntity(&roleModel)

	return &role, nil
}

// FindDefaultRole retrieves the tenant's default role, assigned on auto-provisioning.
func (r *roleRepository) FindDefaultRole(ctx context.Context, tenantID uuid.UUID) (*entity.Role, error) {
	var roleModel model.RoleModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_default = ?", tenantID, true).
		First(&roleModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find default role")
	}

	role := toRoleEntity(&roleModel)

	return &role, nil
}

func toRoleEntity(m *model.RoleModel) entity.Role {
	return entity.Role{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		IsDefault: m.IsDefault,
	}
}
