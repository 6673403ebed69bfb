package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "portfolio:session:" // portfolio:session:{id}

// RedisSessionRepository stores sessions as JSON values whose TTL matches ExpiresAt,
// so Redis evicts them on expiry.
type RedisSessionRepository struct {
	client *redis.Client
	now    func() time.Time
}

var _ SessionRepository = (*RedisSessionRepository)(nil)

// NewRedisSessionRepository creates a RedisSessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, now: time.Now}
}

func (r *RedisSessionRepository) Create(ctx context.Context, s *model.Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", s.ID)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+s.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisSessionRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired は何もしない。キーの TTL により Redis が失効時に削除する。
func (r *RedisSessionRepository) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
