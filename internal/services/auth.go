package services

import (
	"context"
	"errors"
	"strings"

	"authbox/internal/logger"
	"authbox/internal/models"
	"authbox/internal/repository"
	"authbox/internal/utils"
	helpers "authbox/internal/utils/helpers"

	"go.uber.org/zap"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

type SessionRegistry interface {
	Register(ctx context.Context, username string) (models.SessionKey, error)
	Revoke(ctx context.Context, key models.SessionKey) error
	RevokeAll(ctx context.Context, username string) (int, error)
	Owner(ctx context.Context, key models.SessionKey) (string, error)
}

// AuthService — оркестратор регистрации, входа и выхода. Никаких своих
// блокировок: конкурентную корректность обеспечивают констрейнт БД на
// username и атомарные операции Redis.
type AuthService struct {
	repo           UserRepo
	sessions       SessionRegistry
	minPasswordLen int
}

func NewAuthService(repo UserRepo, sessions SessionRegistry, minPasswordLen int) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, minPasswordLen: minPasswordLen}
}

func (s *AuthService) checkPasswordPolicy(password string) error {
	if len(password) < s.minPasswordLen {
		return ErrInvalidPassword
	}
	return nil
}

// RegisterUser валидирует вход, хеширует пароль и создаёт пользователя.
// Приветственное письмо ставится в очередь fire-and-forget: сбой отправки
// не откатывает созданный аккаунт.
func (s *AuthService) RegisterUser(ctx context.Context, input *models.User, plainPassword string) error {
	logger.Log.Info("Регистрация пользователя (service)", zap.String("username", input.Username))

	input.Username = strings.TrimSpace(input.Username)
	// Двоеточие сломало бы префиксную схему ключей сессий, а метасимволы
	// Redis MATCH позволили бы при массовом отзыве зацепить чужие сессии.
	if input.Username == "" || strings.ContainsAny(input.Username, `:*?[]\`) {
		logger.Log.Warn("Недопустимое имя пользователя (service)", zap.String("username", input.Username))
		return ErrInvalidUsername
	}
	if err := s.checkPasswordPolicy(plainPassword); err != nil {
		logger.Log.Warn("Слишком короткий пароль при регистрации (service)", zap.String("username", input.Username))
		return err
	}

	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
		return err
	}
	input.PasswordHash = hashed

	if err := s.repo.CreateUser(ctx, input); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return ErrUsernameTaken
		}
		logger.Log.Error("Ошибка создания пользователя (service)", zap.Error(err))
		return err
	}

	if input.Email != "" {
		enqueueEmail(EmailJob{
			To:      []string{input.Email},
			Subject: "Добро пожаловать",
			Body:    helpers.BuildWelcomeHTML(input.Username),
			IsHTML:  true,
		})
	}

	logger.Log.Info("Пользователь зарегистрирован (service)", zap.String("username", input.Username))
	return nil
}

// LoginUser проверяет учётные данные и регистрирует сессию. «Нет такого
// пользователя» и «неверный пароль» снаружи неразличимы.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (models.SessionKey, *models.User, error) {
	logger.Log.Info("Попытка входа (service)", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("Пользователь не найден (service)", zap.String("username", username))
			return models.SessionKey{}, nil, ErrInvalidCredentials
		}
		logger.Log.Error("Ошибка поиска пользователя (service)", zap.Error(err))
		return models.SessionKey{}, nil, err
	}

	ok, err := utils.CheckPasswordHash(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Повреждённый хеш пароля (service)", zap.String("username", username), zap.Error(err))
		return models.SessionKey{}, nil, err
	}
	if !ok {
		logger.Log.Warn("Неверный пароль (service)", zap.String("username", username))
		return models.SessionKey{}, nil, ErrInvalidCredentials
	}

	key, err := s.sessions.Register(ctx, user.Username)
	if err != nil {
		logger.Log.Error("Ошибка создания сессии (service)", zap.Error(err))
		return models.SessionKey{}, nil, err
	}

	logger.Log.Info("Вход выполнен (service)", zap.String("username", username))
	return key, user, nil
}

// Logout отзывает одну сессию. Успех не зависит от того, существовал ли ключ.
func (s *AuthService) Logout(ctx context.Context, key models.SessionKey) error {
	logger.Log.Info("Выход пользователя (service)", zap.String("username", key.Owner))
	return s.sessions.Revoke(ctx, key)
}
