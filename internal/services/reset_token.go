package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"time"

	"authbox/internal/logger"
	"authbox/internal/repository"

	"go.uber.org/zap"
)

// ResetTokenStore — кеш-хранилище дайджестов токенов сброса.
type ResetTokenStore interface {
	Save(ctx context.Context, digest, username string, ttl time.Duration) error
	Consume(ctx context.Context, digest string) (string, error)
}

// ResetTokenService выдаёт одноразовые токены сброса пароля.
// Жизненный цикл токена: выдан -> использован (Verify) либо выдан -> истёк
// (запись в кеше просто исчезает по TTL). Несколько живых токенов одного
// пользователя могут сосуществовать — новый запрос не отменяет прежние.
type ResetTokenService struct {
	store ResetTokenStore
	ttl   time.Duration
}

func NewResetTokenService(store ResetTokenStore, ttl time.Duration) *ResetTokenService {
	return &ResetTokenService{store: store, ttl: ttl}
}

// Issue генерирует криптостойкий токен, сохраняет его дайджест с TTL и
// возвращает сырой токен — он уходит в письмо и больше нигде не хранится.
func (s *ResetTokenService) Issue(ctx context.Context, username string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		logger.Log.Error("Ошибка генерации токена сброса", zap.Error(err))
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	if err := s.store.Save(ctx, TokenDigest(token), username, s.ttl); err != nil {
		return "", err
	}

	logger.Log.Info("Выдан токен сброса пароля",
		zap.String("username", username),
		zap.Duration("ttl", s.ttl),
	)
	return token, nil
}

// Verify находит и одновременно гасит токен (single-use). «Не выдавался»,
// «истёк» и «уже использован» неразличимы — во всех случаях ErrTokenInvalid.
func (s *ResetTokenService) Verify(ctx context.Context, token string) (string, error) {
	username, err := s.store.Consume(ctx, TokenDigest(token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("Неверный или просроченный токен сброса")
			return "", ErrTokenInvalid
		}
		return "", err
	}
	return username, nil
}

// TokenDigest — base64url(SHA-256(token)). В кеше хранится только дайджест:
// компрометация кеша не даёт рабочих токенов. Хеш обязан быть
// детерминированным (это ключ поиска), поэтому солёный argon2id здесь
// не подходит.
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
