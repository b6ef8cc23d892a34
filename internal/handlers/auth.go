package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilomarket/shop-backend/internal/auth"
	"github.com/ilomarket/shop-backend/internal/logging"
	"github.com/ilomarket/shop-backend/internal/mykafka"
)

type AuthHandler struct {
	Auth     *auth.Service
	Producer *mykafka.Producer
}

func (h *AuthHandler) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, failure("invalid body"))
	}

	user, err := h.Auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			l.Warn("register_error", "status", 409, "reason", "user exists")
			return c.JSON(http.StatusConflict, failure(err.Error()))
		case errors.Is(err, auth.ErrValidation):
			l.Warn("register_error", "status", 400, "reason", "validation", "error", err)
			return c.JSON(http.StatusBadRequest, failure(err.Error()))
		default:
			l.Error("register_error", "status", 500, "reason", "internal error", "error", err)
			return c.JSON(http.StatusInternalServerError, failure("Failed to register user"))
		}
	}

	h.publish(c, user.ID, map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	return c.JSON(http.StatusCreated, success(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, failure("invalid body"))
	}

	result, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			l.Warn("login_error", "status", 401, "reason", "invalid credentials")
			return c.JSON(http.StatusUnauthorized, failure(err.Error()))
		}
		l.Error("login_error", "status", 500, "reason", "internal error", "error", err)
		return c.JSON(http.StatusInternalServerError, failure("Failed to login"))
	}

	h.publish(c, result.User.ID, map[string]any{
		"type":    "user_logged_in",
		"user_id": result.User.ID,
		"email":   result.User.Email,
	})

	return c.JSON(http.StatusOK, success(echo.Map{
		"user": echo.Map{
			"id":    result.User.ID,
			"name":  result.User.Name,
			"email": result.User.Email,
		},
		"token": result.Token,
	}))
}
