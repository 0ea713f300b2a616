package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"authbox/internal/logger"
	"authbox/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRepository хранит активные сессии в Redis: ключ sess:<owner>:<nonce>,
// значение — username владельца, TTL ограничивает время жизни сессии.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

func (r *SessionRepository) Register(ctx context.Context, username string) (models.SessionKey, error) {
	key := models.SessionKey{Owner: username, Nonce: uuid.NewString()}
	if err := r.rdb.Set(ctx, key.String(), username, r.ttl).Err(); err != nil {
		logger.Log.Error("Ошибка создания сессии (repo)", zap.String("username", username), zap.Error(err))
		return models.SessionKey{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	logger.Log.Debug("Сессия создана (repo)", zap.String("username", username))
	return key, nil
}

// Revoke удаляет одну сессию. Отсутствие ключа не считается ошибкой.
func (r *SessionRepository) Revoke(ctx context.Context, key models.SessionKey) error {
	if err := r.rdb.Del(ctx, key.String()).Err(); err != nil {
		logger.Log.Error("Ошибка удаления сессии (repo)", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// RevokeAll перебирает все сессии пользователя по префиксу и удаляет их,
// возвращая число удалённых. Перебор и удаление не атомарны: сессия,
// созданная после снимка SCAN, может уцелеть — страховкой служит TTL сессий.
func (r *SessionRepository) RevokeAll(ctx context.Context, username string) (int, error) {
	pattern := models.SessionPattern(username)
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logger.Log.Error("Ошибка перебора сессий (repo)", zap.String("username", username), zap.Error(err))
			return deleted, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if len(keys) > 0 {
			n, err := r.rdb.Del(ctx, keys...).Result()
			if err != nil {
				logger.Log.Error("Ошибка удаления сессий (repo)", zap.String("username", username), zap.Error(err))
				return deleted, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
			}
			deleted += int(n)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	logger.Log.Info("Сессии пользователя отозваны (repo)", zap.String("username", username), zap.Int("count", deleted))
	return deleted, nil
}

// Owner возвращает владельца активной сессии; ErrNotFound — сессии нет
// (истекла или отозвана).
func (r *SessionRepository) Owner(ctx context.Context, key models.SessionKey) (string, error) {
	username, err := r.rdb.Get(ctx, key.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		logger.Log.Error("Ошибка проверки сессии (repo)", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return username, nil
}
