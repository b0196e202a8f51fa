// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petspa/internal/delivery/http/middleware"
	"petspa/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PetHandler     *handler.PetHandler
	BookingHandler *handler.BookingHandler
	CatalogHandler *handler.CatalogHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	petHandler     *handler.PetHandler
	bookingHandler *handler.BookingHandler
	catalogHandler *handler.CatalogHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		petHandler:     params.PetHandler,
		bookingHandler: params.BookingHandler,
		catalogHandler: params.CatalogHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public catalog routes; no authentication so visitors can browse
	// offerings before creating an account.
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/services", r.catalogHandler.ListServices)
		catalogGroup.GET("/services/:id", r.catalogHandler.GetService)
		catalogGroup.GET("/groomers", r.catalogHandler.ListGroomers)
		catalogGroup.GET("/timeslots", r.bookingHandler.ListTimeSlots)
	}

	// Customer account routes
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/profile", r.profileHandler.GetProfile)
		meGroup.PATCH("/profile", r.profileHandler.UpdateProfile)
		meGroup.GET("/loyalty-card", r.profileHandler.GetLoyaltyCard)
		meGroup.GET("/stats", r.profileHandler.GetStats)

		meGroup.POST("/pets", r.petHandler.CreatePet)
		meGroup.GET("/pets", r.petHandler.ListPets)
		meGroup.GET("/pets/:id", r.petHandler.GetPet)
		meGroup.PATCH("/pets/:id", r.petHandler.UpdatePet)
		meGroup.DELETE("/pets/:id", r.petHandler.DeletePet)

		meGroup.POST("/appointments", r.bookingHandler.BookAppointment)
		meGroup.GET("/appointments", r.bookingHandler.ListMyAppointments)
		meGroup.GET("/appointments/:id", r.bookingHandler.GetAppointment)
		meGroup.POST("/appointments/:id/cancel", r.bookingHandler.CancelAppointment)
	}

	// Back-office routes. Authentication establishes the session; the
	// capability checks live in the use cases.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/appointments", r.adminHandler.ListAppointments)
		adminGroup.PATCH("/appointments/:id", r.adminHandler.UpdateAppointment)
		adminGroup.GET("/stats", r.adminHandler.GetStats)

		adminGroup.GET("/services", r.adminHandler.ListAllServices)
		adminGroup.POST("/services", r.adminHandler.CreateService)
		adminGroup.PATCH("/services/:id", r.adminHandler.UpdateService)
		adminGroup.DELETE("/services/:id", r.adminHandler.DeleteService)

		adminGroup.GET("/groomers", r.adminHandler.ListAllGroomers)
		adminGroup.POST("/groomers", r.adminHandler.CreateGroomer)
		adminGroup.PATCH("/groomers/:id", r.adminHandler.UpdateGroomer)
		adminGroup.DELETE("/groomers/:id", r.adminHandler.DeleteGroomer)
	}
}
