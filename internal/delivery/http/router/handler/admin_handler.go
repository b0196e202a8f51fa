package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petspa/internal/delivery/http/middleware"
	"petspa/internal/delivery/http/response"
	"petspa/internal/domain/entity"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC   usecase.AdminUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// AdminHandler holds dependencies for the back-office handlers.
type AdminHandler struct {
	adminUC   usecase.AdminUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:   params.AdminUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// UpdateAppointmentRequest represents the back-office appointment edit body.
// Absent fields are left unchanged.
type UpdateAppointmentRequest struct {
	Status               *string  `json:"status" validate:"omitempty,oneof=pending confirmed in-progress completed cancelled"`
	GroomerID            *string  `json:"groomer_id" validate:"omitempty,uuid"`
	TotalPrice           *float64 `json:"total_price" validate:"omitempty,min=0"`
	DiscountApplied      *float64 `json:"discount_applied" validate:"omitempty,min=0"`
	EstimatedWaitMinutes *int     `json:"estimated_wait_minutes" validate:"omitempty,min=0"`
	Notes                *string  `json:"notes"`
}

// CreateServiceRequest represents the request body for adding a catalog service
type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category" validate:"required,oneof=grooming boarding"`
	PriceMin        float64 `json:"price_min" validate:"min=0"`
	PriceMax        float64 `json:"price_max" validate:"min=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
}

// UpdateServiceRequest represents the request body for editing a catalog service.
// Absent fields are left unchanged.
type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category" validate:"omitempty,oneof=grooming boarding"`
	PriceMin        *float64 `json:"price_min" validate:"omitempty,min=0"`
	PriceMax        *float64 `json:"price_max" validate:"omitempty,min=0"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active"`
}

// CreateGroomerRequest represents the request body for adding a groomer
type CreateGroomerRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
}

// UpdateGroomerRequest represents the request body for editing a groomer.
// Absent fields are left unchanged.
type UpdateGroomerRequest struct {
	Name        *string `json:"name"`
	Specialty   *string `json:"specialty"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url"`
	IsAvailable *bool   `json:"is_available"`
}

// ListAppointments handles the filtered back-office appointment listing.
// Filters come from query parameters: status, date_from, date_to.
func (h *AdminHandler) ListAppointments(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	input := &usecase.ListAppointmentsInput{}

	if status := c.QueryParam("status"); status != "" {
		parsed := entity.AppointmentStatus(status)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment status filter")
		}
		input.Status = parsed
	}
	if raw := c.QueryParam("date_from"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid date_from, expected YYYY-MM-DD")
		}
		input.DateFrom = &parsed
	}
	if raw := c.QueryParam("date_to"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid date_to, expected YYYY-MM-DD")
		}
		input.DateTo = &parsed
	}

	appointments, err := h.adminUC.ListAppointments(c.Request().Context(), session, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "Appointments retrieved successfully")
}

// UpdateAppointment handles back-office appointment changes, including
// status transitions and pricing.
func (h *AdminHandler) UpdateAppointment(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	var req UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateAppointmentInput{
		TotalPrice:           req.TotalPrice,
		DiscountApplied:      req.DiscountApplied,
		EstimatedWaitMinutes: req.EstimatedWaitMinutes,
		Notes:                req.Notes,
	}
	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		input.Status = &status
	}
	if req.GroomerID != nil {
		groomerID, err := uuid.Parse(*req.GroomerID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid groomer ID")
		}
		input.GroomerID = &groomerID
	}

	appointment, err := h.adminUC.UpdateAppointment(c.Request().Context(), session, appointmentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment updated successfully")
}

// GetStats handles the back-office dashboard request.
func (h *AdminHandler) GetStats(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	stats, err := h.adminUC.GetStats(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard retrieved successfully")
}

// ListAllServices handles the back-office catalog listing, inactive included.
func (h *AdminHandler) ListAllServices(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	services, err := h.catalogUC.ListAllServices(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// CreateService handles adding a catalog service.
func (h *AdminHandler) CreateService(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	svc, err := h.catalogUC.CreateService(c.Request().Context(), session, &usecase.CreateServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        entity.ServiceCategory(req.Category),
		PriceMin:        req.PriceMin,
		PriceMax:        req.PriceMax,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, svc, "Service created successfully")
}

// UpdateService handles editing a catalog service.
func (h *AdminHandler) UpdateService(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service ID")
	}

	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		PriceMin:        req.PriceMin,
		PriceMax:        req.PriceMax,
		DurationMinutes: req.DurationMinutes,
		IsActive:        req.IsActive,
	}
	if req.Category != nil {
		category := entity.ServiceCategory(*req.Category)
		input.Category = &category
	}

	svc, err := h.catalogUC.UpdateService(c.Request().Context(), session, serviceID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service updated successfully")
}

// DeleteService handles removing a catalog service permanently.
// Retiring a service from listings without deleting it goes through
// UpdateService with is_active set to false.
func (h *AdminHandler) DeleteService(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service ID")
	}

	if err := h.catalogUC.DeleteService(c.Request().Context(), session, serviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Service deleted"}, "Service deleted successfully")
}

// ListAllGroomers handles the back-office groomer listing, unavailable included.
func (h *AdminHandler) ListAllGroomers(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	groomers, err := h.catalogUC.ListAllGroomers(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groomers, "Groomers retrieved successfully")
}

// CreateGroomer handles adding a groomer.
func (h *AdminHandler) CreateGroomer(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreateGroomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid groomer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	groomer, err := h.catalogUC.CreateGroomer(c.Request().Context(), session, &usecase.CreateGroomerInput{
		Name:      req.Name,
		Specialty: req.Specialty,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, groomer, "Groomer created successfully")
}

// UpdateGroomer handles editing a groomer.
func (h *AdminHandler) UpdateGroomer(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	groomerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid groomer ID")
	}

	var req UpdateGroomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid groomer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	groomer, err := h.catalogUC.UpdateGroomer(c.Request().Context(), session, groomerID, &usecase.UpdateGroomerInput{
		Name:        req.Name,
		Specialty:   req.Specialty,
		PhotoURL:    req.PhotoURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groomer, "Groomer updated successfully")
}

// DeleteGroomer handles removing a groomer from the roster.
func (h *AdminHandler) DeleteGroomer(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	groomerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid groomer ID")
	}

	if err := h.catalogUC.DeleteGroomer(c.Request().Context(), session, groomerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Groomer deleted"}, "Groomer deleted successfully")
}
