package handler

import (
	"log/slog"
	"net/http"

	"petspa/internal/delivery/http/middleware"
	"petspa/internal/delivery/http/response"
	"petspa/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for the customer account handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// UpdateProfileRequest represents the request body for editing a profile.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// GetProfile handles the request for the current user's account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile handles the profile edit request.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), session, &usecase.UpdateProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// GetLoyaltyCard handles the loyalty card request. With ?format=png the
// QR code image is returned directly for embedding in an <img> tag.
func (h *ProfileHandler) GetLoyaltyCard(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	card, err := h.profileUC.GetLoyaltyCard(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("format") == "png" {
		return c.Blob(http.StatusOK, "image/png", card.QRCodePNG)
	}

	return response.Success(c, http.StatusOK, card, "Loyalty card retrieved successfully")
}

// GetStats handles the customer dashboard request.
func (h *ProfileHandler) GetStats(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	stats, err := h.profileUC.GetCustomerStats(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard retrieved successfully")
}
