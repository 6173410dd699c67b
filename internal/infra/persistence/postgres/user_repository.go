package postgres

import (
	"context"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, with roles preloaded.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("id = ?", id).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserEntity(&userModel), nil
}

// FindByEmail retrieves a user by email within one tenant partition.
// A nil tenantID selects the tenant-less partition.
func (r *userRepository) FindByEmail(ctx context.Context, email string, tenantID *uuid.UUID) (*entity.User, error) {
	query := r.db.WithContext(ctx).
		Preload("Roles").
		Where("email = ?", email)
	if tenantID == nil {
		query = query.Where("tenant_id IS NULL")
	} else {
		query = query.Where("tenant_id = ?", *tenantID)
	}

	var userModel model.UserModel
	if err := query.First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserEntity(&userModel), nil
}

// FindByGoogleID retrieves the user owning a Google identity.
func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("google_id = ?", googleID).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by google ID")
	}

	return toUserEntity(&userModel), nil
}

// Create persists a new user entity.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTenantNotFound
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "missing required user column")
		}

		return errors.Wrap(err, "failed to create user")
	}
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage. Role assignment is
// managed outside this core, so the association column set is left untouched.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("email", "name", "password_hash", "tenant_id", "google_id",
			"google_linked_at", "email_verified", "email_verified_at", "updated_at").
		Updates(userModel)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AssignRole grants a role through the join table. ON CONFLICT keeps the
// grant idempotent under concurrent provisioning.
func (r *userRepository) AssignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Exec("INSERT INTO user_roles (user_model_id, role_model_id) VALUES (?, ?) ON CONFLICT DO NOTHING", userID, roleID).
		Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to assign role")
	}

	return nil
}

func toUserEntity(m *model.UserModel) *entity.User {
	roles := make(entity.Roles, 0, len(m.Roles))
	for _, roleModel := range m.Roles {
		if roleModel == nil {
			continue
		}
		roles = append(roles, toRoleEntity(roleModel))
	}

	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		PasswordHash:    m.PasswordHash,
		TenantID:        m.TenantID,
		GoogleID:        m.GoogleID,
		GoogleLinkedAt:  m.GoogleLinkedAt,
		EmailVerified:   m.EmailVerified,
		EmailVerifiedAt: m.EmailVerifiedAt,
		Roles:           roles,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toUserModel(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		PasswordHash:    u.PasswordHash,
		TenantID:        u.TenantID,
		GoogleID:        u.GoogleID,
		GoogleLinkedAt:  u.GoogleLinkedAt,
		EmailVerified:   u.EmailVerified,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
