// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"placehub/internal/delivery/http/middleware"
	"placehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	PlaceHandler   *handler.PlaceHandler
	SearchHandler  *handler.SearchHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	placeHandler   *handler.PlaceHandler
	searchHandler  *handler.SearchHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		placeHandler:   params.PlaceHandler,
		searchHandler:  params.SearchHandler,
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
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Account routes that require authentication
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.accountHandler.GetProfile)
		accountGroup.PATCH("/me/update-profile", r.accountHandler.UpdateProfile)
		accountGroup.POST("/me/change-password", r.accountHandler.ChangePassword)
	}

	// Place routes. Reads take optional authentication so visibility widens
	// with the requester's capability; mutations require a token.
	placeGroup := e.Group("/places")
	{
		placeGroup.GET("", r.placeHandler.ListPlaces, r.authMiddleware.OptionalAuthenticate)
		placeGroup.POST("", r.placeHandler.CreatePlace, r.authMiddleware.Authenticate)

		// Public search over the published set.
		placeGroup.GET("/search/radius", r.searchHandler.RadiusSearch)
		placeGroup.GET("/search/bbox", r.searchHandler.BBoxSearch)

		// Privileged listings. Capability checks live in the use case.
		placeGroup.GET("/moderation", r.placeHandler.ListModerationQueue, r.authMiddleware.Authenticate)
		placeGroup.GET("/archived", r.placeHandler.ListArchived, r.authMiddleware.Authenticate)

		placeGroup.GET("/:id", r.placeHandler.GetPlace, r.authMiddleware.OptionalAuthenticate)
		placeGroup.PATCH("/:id", r.placeHandler.UpdatePlace, r.authMiddleware.Authenticate)
		placeGroup.DELETE("/:id", r.placeHandler.DeletePlace, r.authMiddleware.Authenticate)
		placeGroup.POST("/:id/upload-photo", r.placeHandler.UploadPhoto, r.authMiddleware.Authenticate)
		placeGroup.POST("/:id/moderate", r.placeHandler.ModeratePlace, r.authMiddleware.Authenticate)
	}
}
