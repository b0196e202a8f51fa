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
)

// BookingHandler holds dependencies for customer appointment handlers.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(bookingUC usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		logger:    logger,
	}
}

// BookAppointmentRequest represents the request body for booking an appointment
type BookAppointmentRequest struct {
	PetID       string  `json:"pet_id" validate:"required,uuid"`
	ServiceID   string  `json:"service_id" validate:"required,uuid"`
	GroomerID   *string `json:"groomer_id" validate:"omitempty,uuid"`
	ServiceType string  `json:"service_type" validate:"required,oneof=walk-in home-service pick-up"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time" validate:"required"`
	Notes       string  `json:"notes"`
}

// BookAppointment handles the booking request.
func (h *BookingHandler) BookAppointment(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req BookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	petID, err := uuid.Parse(req.PetID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pet ID")
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service ID")
	}

	input := &usecase.BookAppointmentInput{
		PetID:       petID,
		ServiceID:   serviceID,
		ServiceType: entity.ServiceType(req.ServiceType),
		StartTime:   req.StartTime,
		Notes:       req.Notes,
	}

	if req.GroomerID != nil {
		groomerID, err := uuid.Parse(*req.GroomerID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid groomer ID")
		}
		input.GroomerID = &groomerID
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}
	input.Date = date

	appointment, err := h.bookingUC.BookAppointment(c.Request().Context(), session, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Appointment booked successfully")
}

// GetAppointment handles retrieving a single appointment.
func (h *BookingHandler) GetAppointment(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	appointment, err := h.bookingUC.GetAppointment(c.Request().Context(), session, appointmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment retrieved successfully")
}

// ListMyAppointments handles listing the session user's appointments,
// partitioned into upcoming and past.
func (h *BookingHandler) ListMyAppointments(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	output, err := h.bookingUC.ListMyAppointments(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Appointments retrieved successfully")
}

// CancelAppointment handles a customer cancelling their own pending appointment.
func (h *BookingHandler) CancelAppointment(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	appointment, err := h.bookingUC.CancelAppointment(c.Request().Context(), session, appointmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment cancelled successfully")
}

// ListTimeSlots handles the bookable time slot listing for a date.
// Defaults to today when no date is given.
func (h *BookingHandler) ListTimeSlots(c echo.Context) error {
	now := time.Now()
	date := now
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	slots, err := h.bookingUC.ListTimeSlots(c.Request().Context(), date, now)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, slots, "Time slots retrieved successfully")
}
