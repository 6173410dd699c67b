package postgres

import (
	"context"
	"time"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type refreshSessionRepository struct {
	db *gorm.DB
}

// NewRefreshSessionRepository is the constructor for refreshSessionRepository.
func NewRefreshSessionRepository(db *gorm.DB) repository.RefreshSessionRepository {
	return &refreshSessionRepository{db: db}
}

// CreateSession persists a new session node of a rotation chain.
func (r *refreshSessionRepository) CreateSession(ctx context.Context, session *entity.RefreshSession) error {
	sessionModel := toRefreshSessionModel(session)
	if err := r.db.WithContext(ctx).Create(sessionModel).Error; err != nil {
		return errors.Wrap(err, "failed to create refresh session")
	}
	session.ID = sessionModel.ID
	session.CreatedAt = sessionModel.CreatedAt

	return nil
}

// FindSessionByID retrieves a session row regardless of its state.
func (r *refreshSessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.RefreshSession, error) {
	var sessionModel model.RefreshSessionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh session by ID")
	}

	return toRefreshSessionEntity(&sessionModel), nil
}

// RevokeSessionIfActive atomically claims a still-active session. The
// conditional UPDATE is the serialization point for concurrent rotations:
// RowsAffected tells each caller whether it won.
func (r *refreshSessionRepository) RevokeSessionIfActive(ctx context.Context, id uuid.UUID, replacedBy *uuid.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Updates(map[string]any{
			"revoked_at":     now,
			"replaced_by_id": replacedBy,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim refresh session")
	}

	return result.RowsAffected > 0, nil
}

// RevokeSessionByID unconditionally revokes one session. Idempotent.
func (r *refreshSessionRepository) RevokeSessionByID(ctx context.Context, id uuid.UUID, now time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now).Error
	if err != nil {
		return errors.Wrap(err, "failed to revoke refresh session")
	}

	return nil
}

// RevokeSessionsByUserID revokes every active session of a user. Idempotent.
func (r *refreshSessionRepository) RevokeSessionsByUserID(ctx context.Context, userID uuid.UUID, now time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
	if err != nil {
		return errors.Wrap(err, "failed to revoke user refresh sessions")
	}

	return nil
}

// RevokeFamily revokes every active session sharing a rotation lineage.
func (r *refreshSessionRepository) RevokeFamily(ctx context.Context, familyID uuid.UUID, now time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("family_id = ? AND revoked_at IS NULL", familyID).
		Update("revoked_at", now).Error
	if err != nil {
		return errors.Wrap(err, "failed to revoke refresh session family")
	}

	return nil
}

// FindSessionsByUserID retrieves all active sessions for a user, newest first.
func (r *refreshSessionRepository) FindSessionsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshSession, error) {
	var sessionModels []model.RefreshSessionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refresh sessions by user ID")
	}

	sessions := make([]*entity.RefreshSession, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = toRefreshSessionEntity(&sessionModels[i])
	}

	return sessions, nil
}

// CountActiveSessionsByUserID returns the number of active sessions.
func (r *refreshSessionRepository) CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, time.Now()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active refresh sessions")
	}

	return int(count), nil
}

// DeleteExpiredSessions removes rows whose ExpiresAt has passed.
func (r *refreshSessionRepository) DeleteExpiredSessions(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.RefreshSessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete expired refresh sessions")
	}

	return nil
}

func toRefreshSessionEntity(m *model.RefreshSessionModel) *entity.RefreshSession {
	return &entity.RefreshSession{
		ID:           m.ID,
		UserID:       m.UserID,
		TokenHash:    m.TokenHash,
		FamilyID:     m.FamilyID,
		ExpiresAt:    m.ExpiresAt,
		RevokedAt:    m.RevokedAt,
		ReplacedByID: m.ReplacedByID,
		IPAddress:    m.IPAddress,
		UserAgent:    m.UserAgent,
		CreatedAt:    m.CreatedAt,
	}
}

func toRefreshSessionModel(s *entity.RefreshSession) *model.RefreshSessionModel {
	return &model.RefreshSessionModel{
		ID:           s.ID,
		UserID:       s.UserID,
		TokenHash:    s.TokenHash,
		FamilyID:     s.FamilyID,
		ExpiresAt:    s.ExpiresAt,
		RevokedAt:    s.RevokedAt,
		ReplacedByID: s.ReplacedByID,
		IPAddress:    s.IPAddress,
		UserAgent:    s.UserAgent,
		CreatedAt:    s.CreatedAt,
	}
}
