package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"authbox/internal/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const resetTokenPrefix = "pwreset:"

// ResetTokenRepository хранит дайджесты одноразовых токенов сброса пароля в
// Redis. Сырой токен сюда не попадает никогда — только его SHA-256.
type ResetTokenRepository struct {
	rdb *redis.Client
}

func NewResetTokenRepository(rdb *redis.Client) *ResetTokenRepository {
	return &ResetTokenRepository{rdb: rdb}
}

func (r *ResetTokenRepository) Save(ctx context.Context, digest, username string, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, resetTokenPrefix+digest, username, ttl).Err(); err != nil {
		logger.Log.Error("Ошибка сохранения токена сброса (repo)", zap.String("username", username), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Consume атомарно читает и удаляет запись токена (GETDEL), поэтому два
// конкурентных подтверждения с одним токеном не пройдут оба.
func (r *ResetTokenRepository) Consume(ctx context.Context, digest string) (string, error) {
	username, err := r.rdb.GetDel(ctx, resetTokenPrefix+digest).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		logger.Log.Error("Ошибка чтения токена сброса (repo)", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return username, nil
}
