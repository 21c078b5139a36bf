package handler

import (
	"context"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles customer registration.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid signup input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &AuthResponse{
		AccessToken: out.AccessToken,
		User:        toUserResponse(out.User),
	}, "account created")
}

// Login handles customer and admin login.
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, h.uc.Login)
}

// AdminLogin handles the admin-only login endpoint.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, h.uc.AdminLogin)
}

func (h *AuthHandler) login(c echo.Context, authenticate func(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error)) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid login input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := authenticate(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &AuthResponse{
		AccessToken: out.AccessToken,
		User:        toUserResponse(out.User),
	}, "login successful")
}
