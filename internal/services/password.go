package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"authbox/internal/logger"
	"authbox/internal/models"
	"authbox/internal/repository"
	"authbox/internal/utils"

	"go.uber.org/zap"
)

type EmailSender interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

// ResetTokens — выдача и одноразовое подтверждение токенов сброса.
type ResetTokens interface {
	Issue(ctx context.Context, username string) (string, error)
	Verify(ctx context.Context, token string) (string, error)
}

// PasswordService — сценарии восстановления пароля по e-mail.
type PasswordService struct {
	repo           UserRepo
	tokens         ResetTokens
	sessions       SessionRegistry
	emailSender    EmailSender
	appURL         string // фронтовый URL: ссылка вида /reset?token=...
	minPasswordLen int
}

func NewPasswordService(
	repo UserRepo,
	tokens ResetTokens,
	sessions SessionRegistry,
	emailSender EmailSender,
	appURL string,
	minPasswordLen int,
) *PasswordService {
	return &PasswordService{
		repo:           repo,
		tokens:         tokens,
		sessions:       sessions,
		emailSender:    emailSender,
		appURL:         strings.TrimRight(appURL, "/"),
		minPasswordLen: minPasswordLen,
	}
}

// RequestReset выдаёт токен и отправляет письмо со ссылкой.
// Возвращает nil всегда: ни отсутствие почты, ни сбой отправки наружу
// не раскрываются.
func (s *PasswordService) RequestReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	logger.Log.Info("Запрос на сброс пароля")

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Не раскрываем наличие почты пользователю, но логируем для нас:
		logger.Log.Warn("Не удалось найти пользователя по email при запросе сброса", zap.Error(err))
		return nil
	}

	token, err := s.tokens.Issue(ctx, user.Username)
	if err != nil {
		logger.Log.Error("Ошибка выдачи токена сброса", zap.String("username", user.Username), zap.Error(err))
		return nil
	}

	resetLink := fmt.Sprintf("%s/reset?token=%s", s.appURL, token)
	if err := s.emailSender.SendPasswordReset(ctx, email, resetLink); err != nil {
		// Не фейлим намеренно — чтобы нельзя было брутить наличие e-mail
		logger.Log.Error("Ошибка отправки письма для сброса пароля", zap.String("username", user.Username), zap.Error(err))
	}

	logger.Log.Info("Письмо со ссылкой на сброс пароля поставлено на отправку", zap.String("username", user.Username))
	return nil
}

// ResetPassword подтверждает токен, отзывает все сессии пользователя,
// устанавливает новый пароль и открывает свежую сессию. Токен гасится до
// смены пароля: повторный запрос с тем же токеном не пройдёт.
func (s *PasswordService) ResetPassword(ctx context.Context, token, newPassword string) (models.SessionKey, error) {
	logger.Log.Info("Попытка сброса пароля по токену")

	if len(newPassword) < s.minPasswordLen {
		logger.Log.Warn("Слишком короткий новый пароль")
		return models.SessionKey{}, ErrInvalidPassword
	}

	username, err := s.tokens.Verify(ctx, token)
	if err != nil {
		return models.SessionKey{}, err
	}

	// Best-effort: отзыв не атомарен с перебором, страховка — TTL сессий.
	count, err := s.sessions.RevokeAll(ctx, username)
	if err != nil {
		logger.Log.Warn("Не удалось отозвать все сессии при сбросе",
			zap.String("username", username),
			zap.Int("revoked", count),
			zap.Error(err),
		)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Ошибка хеширования нового пароля", zap.String("username", username), zap.Error(err))
		return models.SessionKey{}, err
	}

	if err := s.repo.UpdatePassword(ctx, username, hashed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Пользователь исчез между выдачей токена и подтверждением.
			logger.Log.Warn("Пользователь не найден при сбросе пароля", zap.String("username", username))
			return models.SessionKey{}, ErrTokenInvalid
		}
		logger.Log.Error("Ошибка обновления пароля", zap.String("username", username), zap.Error(err))
		return models.SessionKey{}, err
	}

	key, err := s.sessions.Register(ctx, username)
	if err != nil {
		// Пароль уже сменён — свежая сессия не критична, пользователь войдёт сам.
		logger.Log.Warn("Не удалось открыть сессию после сброса", zap.String("username", username), zap.Error(err))
		return models.SessionKey{}, nil
	}

	logger.Log.Info("Пароль успешно сброшен", zap.String("username", username), zap.Int("revoked_sessions", count))
	return key, nil
}
