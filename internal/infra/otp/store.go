package otp

import (
	"context"
	"strconv"
	"time"

	"passport/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	recordKeyPrefix = "otp:user:"
	recordKeyMatch  = recordKeyPrefix + "*"
	scanBatchSize   = 100

	fieldCode     = "code"
	fieldAttempts = "attempts"
)

type redisOtpStore struct {
	client *redis.Client
}

// NewStore is the constructor for redisOtpStore.
func NewStore(client *redis.Client) service.OtpStore {
	return &redisOtpStore{client: client}
}

func recordKey(userID uuid.UUID) string {
	return recordKeyPrefix + userID.String()
}

// Save stores a fresh record with attempts reset to zero, replacing any live
// record for the same user. The TTL covers the whole hash, so code and
// attempt counter expire together.
func (s *redisOtpStore) Save(ctx context.Context, userID uuid.UUID, code string, ttl time.Duration) error {
	key := recordKey(userID)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fieldCode, code, fieldAttempts, 0)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to save otp record")
	}

	return nil
}

// Get retrieves the live record, or service.ErrOtpRecordNotFound.
func (s *redisOtpStore) Get(ctx context.Context, userID uuid.UUID) (*service.OtpRecord, error) {
	values, err := s.client.HGetAll(ctx, recordKey(userID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get otp record")
	}
	if len(values) == 0 {
		return nil, service.ErrOtpRecordNotFound
	}

	return recordFromHash(userID, values), nil
}

// IncrementAttempts atomically bumps the attempt counter and returns the new
// value. HINCRBY keeps the cap exact under concurrent verifies.
func (s *redisOtpStore) IncrementAttempts(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := recordKey(userID)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to check otp record")
	}
	if exists == 0 {
		return 0, service.ErrOtpRecordNotFound
	}

	attempts, err := s.client.HIncrBy(ctx, key, fieldAttempts, 1).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment otp attempts")
	}

	return attempts, nil
}

// Delete removes the record. Deleting an absent record is not an error.
func (s *redisOtpStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, recordKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete otp record")
	}

	return nil
}

// FindByCode scans live records for ones matching the code. Live key volume
// is bounded by the generation rate limiter, so the SCAN stays cheap.
func (s *redisOtpStore) FindByCode(ctx context.Context, code string) ([]*service.OtpRecord, error) {
	var records []*service.OtpRecord
	var cursor uint64

	for {
		keys, next, err := s.client.Scan(ctx, cursor, recordKeyMatch, scanBatchSize).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan otp records")
		}

		for _, key := range keys {
			values, err := s.client.HGetAll(ctx, key).Result()
			if err != nil {
				return nil, errors.Wrap(err, "failed to read otp record")
			}
			if values[fieldCode] != code {
				continue
			}

			userID, err := uuid.Parse(key[len(recordKeyPrefix):])
			if err != nil {
				// Foreign key under our prefix, skip it.
				continue
			}
			records = append(records, recordFromHash(userID, values))
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return records, nil
}

func recordFromHash(userID uuid.UUID, values map[string]string) *service.OtpRecord {
	record := &service.OtpRecord{
		UserID: userID,
		Code:   values[fieldCode],
	}
	if raw, ok := values[fieldAttempts]; ok {
		attempts, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			record.Attempts = attempts
		}
	}

	return record
}
