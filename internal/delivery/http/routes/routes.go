package routes

import (
	"jobtalk/internal/delivery/http/handler"
	"jobtalk/internal/delivery/http/middleware"
	"jobtalk/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health     *handler.HealthHandler
	Chat       *handler.ChatHandler
	Jobs       *handler.JobsHandler
	Candidates *handler.CandidatesHandler
	Proposals  *handler.ProposalsHandler
	ChatWS     *ws.Handler
	Auth       *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.Chat.RegisterRoutes(v1.Group("/chat"))
	r.Jobs.RegisterRoutes(v1.Group("/jobs"))

	// Employer-side surfaces: candidate listing tolerates guests (guest
	// cache bucket), proposal mutations require a resolved identity.
	r.Candidates.RegisterRoutes(v1.Group("/candidates", r.Auth.Optional()))
	r.Proposals.RegisterRoutes(v1.Group("/proposals", r.Auth.Optional()))

	if r.ChatWS != nil {
		app.Get("/ws/chat", r.ChatWS.HandleChatWS)
	}
}
