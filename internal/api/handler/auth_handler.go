package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/userform-api/internal/api/metrics"
	"github.com/creatorhub/userform-api/internal/core/domain"
	"github.com/creatorhub/userform-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  validationErrorResponse
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: []string{"invalid payload"}})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: strings.Split(err.Error(), "; ")})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, messageResponse{Msg: "User already exists"})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusOK, registerResponse{
		Success: true,
		Msg:     "User registration successful",
	})
}

// Login verifies credentials and returns the access/refresh token pair.
// Unknown usernames and wrong passwords produce the same response body so
// account existence cannot be probed.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "Invalid credentials"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Msg: "Invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success:      true,
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		Data: userData{
			UserID:   result.User.ID,
			Username: result.User.Username,
			Role:     result.User.Role,
		},
		Msg: "Login successful",
	})
}

// RefreshToken exchanges a valid refresh token for a 15-minute access token.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshTokenRequest  true  "Refresh token"
// @Success      200   {object}  refreshTokenResponse
// @Failure      403   {object}  messageResponse
// @Router       /refresh-token [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return c.JSON(http.StatusForbidden, messageResponse{Msg: "Refresh token not provided"})
	}

	access, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return c.JSON(http.StatusForbidden, messageResponse{Msg: "Invalid refresh token"})
	}

	return c.JSON(http.StatusOK, refreshTokenResponse{AccessToken: access})
}

// GetUser returns the caller's own account, password stripped.
//
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  getUserResponse
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /get-user [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"success": false,
				"msg":     "User not found",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, getUserResponse{
		Success: true,
		Data: userData{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	})
}
