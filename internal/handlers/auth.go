package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"authbox/internal/logger"
	"authbox/internal/middleware"
	"authbox/internal/models"
	"authbox/internal/reqctx"
	"authbox/internal/services"
	helpers "authbox/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	SessionKey string `json:"session_key"`
	Username   string `json:"username"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Данные регистрации"
// @Success 201 {string} string "Пользователь успешно зарегистрирован"
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 409 {string} string "Имя пользователя занято"
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}

	err := h.authService.RegisterUser(r.Context(), user, req.Password)
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		helpers.Error(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, services.ErrInvalidPassword), errors.Is(err, services.ErrInvalidUsername):
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error("Ошибка регистрации пользователя", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось зарегистрировать пользователя")
		return
	}

	helpers.JSON(w, http.StatusCreated, "Пользователь успешно зарегистрирован. Теперь войдите в аккаунт.")
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Неверный логин или пароль"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	key, user, err := h.authService.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.Error("Ошибка входа пользователя", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось выполнить вход")
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{
		SessionKey: key.String(),
		Username:   user.Username,
	})
}

// Logout godoc
// @Summary Выход (отзыв текущей сессии)
// @Tags auth
// @Security ApiKeyAuth
// @Success 200 {string} string "Выход выполнен"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	// Выход успешен независимо от того, была ли сессия жива.
	key, ok := middleware.SessionKeyFromRequest(r)
	if ok {
		if err := h.authService.Logout(r.Context(), key); err != nil {
			log.Error("Ошибка отзыва сессии при выходе", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Не удалось выполнить выход")
			return
		}
	}

	helpers.JSON(w, http.StatusOK, "Выход выполнен")
}

// Protected godoc
// @Summary Получить данные профиля
// @Tags profile
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Профиль пользователя"
// @Failure 401 {string} string "Нет доступа"
// @Router /api/profile [get]
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	username, _ := reqctx.GetUsername(r.Context())
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Привет, %s", username),
	})
}
