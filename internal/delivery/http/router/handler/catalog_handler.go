package handler

import (
	"log/slog"
	"net/http"

	"petspa/internal/delivery/http/response"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public catalog handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// ListServices handles the public active service listing.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalogUC.ListActiveServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// GetService handles retrieving a single catalog service.
func (h *CatalogHandler) GetService(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service ID")
	}

	svc, err := h.catalogUC.GetService(c.Request().Context(), serviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service retrieved successfully")
}

// ListGroomers handles the public available groomer listing.
func (h *CatalogHandler) ListGroomers(c echo.Context) error {
	groomers, err := h.catalogUC.ListAvailableGroomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groomers, "Groomers retrieved successfully")
}
