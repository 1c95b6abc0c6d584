package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/TutorDesk/middlewares"
	"github.com/patiponrmutl/TutorDesk/store"
)

/* ====================== Config & Helpers ====================== */

type AuthHandler struct {
	users     *store.UserStore
	jwtSecret string
}

func NewAuthHandler(users *store.UserStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

/* ====================== DTOs ====================== */

type CreateAccountReq struct {
	Username        string `json:"username" form:"username" validate:"required,max=60"`
	Password        string `json:"password" form:"password" validate:"required,min=6,max=20"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginReq struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Remember bool   `json:"remember" form:"remember"`
}

type ResetPasswordReq struct {
	Username        string `json:"username" form:"username" validate:"required"`
	NewPassword     string `json:"new_password" form:"new_password" validate:"required,min=6,max=20"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

/* ====================== Handlers ====================== */

// POST /account
func (h *AuthHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	username := strings.TrimSpace(req.Username)
	ctx := c.Request().Context()

	// the users table allows duplicates; account creation does not
	_, err := h.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "USERNAME_EXISTS"})
	case !isNotFound(err):
		return storageFailure(c, "find user", err)
	}

	id, err := h.users.Create(ctx, username, req.Password)
	if err != nil {
		return storageFailure(c, "create user", err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": id, "username": username})
}

// POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	username := strings.TrimSpace(req.Username)

	u, err := h.users.FindByCredentials(c.Request().Context(), username, req.Password)
	if err != nil {
		if isNotFound(err) {
			return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
		}
		return storageFailure(c, "find user", err)
	}

	token, ttl, err := middlewares.SignSession(h.jwtSecret, u.Username, req.Remember)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}
	middlewares.SetSessionCookie(c, token, req.Remember, ttl)

	return c.JSON(http.StatusOK, map[string]any{
		"token":    token,
		"remember": req.Remember,
		"user":     map[string]any{"id": u.ID, "username": u.Username},
	})
}

// POST /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	middlewares.ClearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// GET /me
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"username": middlewares.CurrentUser(c),
		"remember": middlewares.Remembered(c),
	})
}

// POST /password/reset
// Every account with this username gets the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	n, err := h.users.UpdatePassword(c.Request().Context(), strings.TrimSpace(req.Username), req.NewPassword)
	if err != nil {
		return storageFailure(c, "update password", err)
	}
	if n == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "USER_NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "updated": n})
}
