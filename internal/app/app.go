package app

import (
	"fmt"
	"strconv"
	"time"

	"authbox/internal/config"
	"authbox/internal/db"
	"authbox/internal/handlers"
	"authbox/internal/repository"
	"authbox/internal/routes"
	"authbox/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := db.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("некорректный SESSION_TTL %q: %w", cfg.SessionTTL, err)
	}
	resetTTL, err := time.ParseDuration(cfg.ResetTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("некорректный RESET_TOKEN_TTL %q: %w", cfg.ResetTokenTTL, err)
	}
	minPasswordLen, err := strconv.Atoi(cfg.PasswordMinLen)
	if err != nil {
		return nil, fmt.Errorf("некорректный PASSWORD_MIN_LEN %q: %w", cfg.PasswordMinLen, err)
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	sessionRepo := repository.NewSessionRepository(rdb, sessionTTL)
	tokenRepo := repository.NewResetTokenRepository(rdb)

	// Сервисы
	emailService := services.NewEmailService(cfg)
	tokenService := services.NewResetTokenService(tokenRepo, resetTTL)
	authService := services.NewAuthService(userRepo, sessionRepo, minPasswordLen)
	passwordService := services.NewPasswordService(
		userRepo,
		tokenService,
		sessionRepo,
		emailService,
		cfg.SiteURL,
		minPasswordLen,
	)

	// Запуск воркеров email
	for i := 0; i < 3; i++ {
		services.StartEmailWorker(emailService)
	}

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService)
	passwordHandler := handlers.NewPasswordHandler(passwordService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, passwordHandler, sessionRepo)

	return router, nil
}
