// Package router contains routing for the API delivery.
package router

import (
	"notesia/internal/delivery/api/middleware"
	"notesia/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	NoteHandler     *handler.NoteHandler
	AIHandler       *handler.AIHandler
	ActivityHandler *handler.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	authHandler     *handler.AuthHandler
	noteHandler     *handler.NoteHandler
	aiHandler       *handler.AIHandler
	activityHandler *handler.ActivityHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		authHandler:     params.AuthHandler,
		noteHandler:     params.NoteHandler,
		aiHandler:       params.AIHandler,
		activityHandler: params.ActivityHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Health)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.OptionalAuthenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Every note and assistant route requires authentication
	notesGroup := api.Group("/notes", r.authMiddleware.Authenticate)
	{
		notesGroup.POST("", r.noteHandler.CreateNote)
		notesGroup.POST("/", r.noteHandler.CreateNote)
		notesGroup.GET("", r.noteHandler.ListNotes)
		notesGroup.GET("/", r.noteHandler.ListNotes)
		notesGroup.GET("/tags/list", r.noteHandler.ListTags)
		notesGroup.GET("/:id", r.noteHandler.GetNote)
		notesGroup.PUT("/:id", r.noteHandler.UpdateNote)
		notesGroup.DELETE("/:id", r.noteHandler.DeleteNote)
		notesGroup.GET("/:id/activity", r.activityHandler.ListNoteActivity)
	}

	aiGroup := api.Group("/ai", r.authMiddleware.Authenticate)
	{
		aiGroup.POST("/chat", r.aiHandler.Chat)
		aiGroup.POST("/summarize", r.aiHandler.Summarize)
		aiGroup.POST("/enhance", r.aiHandler.Enhance)
		aiGroup.POST("/generate", r.aiHandler.Generate)
		aiGroup.POST("/analyze-notes", r.aiHandler.AnalyzeNotes)
	}
}
