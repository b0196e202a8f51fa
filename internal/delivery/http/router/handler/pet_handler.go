package handler

import (
	"log/slog"
	"net/http"

	"petspa/internal/delivery/http/middleware"
	"petspa/internal/delivery/http/response"
	"petspa/internal/domain/entity"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PetHandler holds dependencies for pet management handlers.
type PetHandler struct {
	petUC  usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler, injected by Fx.
func NewPetHandler(petUC usecase.PetUsecase, logger *slog.Logger) *PetHandler {
	return &PetHandler{
		petUC:  petUC,
		logger: logger,
	}
}

// CreatePetRequest represents the request body for registering a pet
type CreatePetRequest struct {
	Name    string   `json:"name" validate:"required"`
	Species string   `json:"species" validate:"required,oneof=dog cat bird rabbit other"`
	Breed   string   `json:"breed"`
	Age     *int     `json:"age" validate:"omitempty,min=0"`
	Weight  *float64 `json:"weight" validate:"omitempty,gt=0"`
	Notes   string   `json:"notes"`
}

// UpdatePetRequest represents the request body for editing a pet.
// Absent fields are left unchanged.
type UpdatePetRequest struct {
	Name    *string  `json:"name"`
	Species *string  `json:"species" validate:"omitempty,oneof=dog cat bird rabbit other"`
	Breed   *string  `json:"breed"`
	Age     *int     `json:"age" validate:"omitempty,min=0"`
	Weight  *float64 `json:"weight" validate:"omitempty,gt=0"`
	Notes   *string  `json:"notes"`
}

// CreatePet handles pet registration.
func (h *PetHandler) CreatePet(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreatePetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pet, err := h.petUC.CreatePet(c.Request().Context(), session, &usecase.CreatePetInput{
		Name:    req.Name,
		Species: entity.Species(req.Species),
		Breed:   req.Breed,
		Age:     req.Age,
		Weight:  req.Weight,
		Notes:   req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pet, "Pet registered successfully")
}

// GetPet handles retrieving a single pet.
func (h *PetHandler) GetPet(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pet ID")
	}

	pet, err := h.petUC.GetPet(c.Request().Context(), session, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet retrieved successfully")
}

// ListPets handles listing the session user's pets.
func (h *PetHandler) ListPets(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	pets, err := h.petUC.ListPets(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pets, "Pets retrieved successfully")
}

// UpdatePet handles editing a pet.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pet ID")
	}

	var req UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdatePetInput{
		Name:   req.Name,
		Breed:  req.Breed,
		Age:    req.Age,
		Weight: req.Weight,
		Notes:  req.Notes,
	}
	if req.Species != nil {
		species := entity.Species(*req.Species)
		input.Species = &species
	}

	pet, err := h.petUC.UpdatePet(c.Request().Context(), session, petID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet updated successfully")
}

// DeletePet handles removing a pet.
func (h *PetHandler) DeletePet(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pet ID")
	}

	if err := h.petUC.DeletePet(c.Request().Context(), session, petID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Pet deleted"}, "Pet deleted successfully")
}
