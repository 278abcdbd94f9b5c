package app

import (
	"fmt"
	"strings"

	"jobtalk/internal/config"
	"jobtalk/internal/delivery/http/handler"
	"jobtalk/internal/delivery/http/middleware"
	"jobtalk/internal/delivery/http/routes"
	"jobtalk/internal/pkg/jwt"
	"jobtalk/internal/usecase"
	"jobtalk/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := newLogger(cfg.App.AppName)

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	chatUC := usecase.NewChatUsecase(container.Store, container.Archive, cfg.Chat.ReplyDelay, logger)
	searchUC := usecase.NewSearchUsecase(container.Upstream, chatUC, logger)
	proposalUC := usecase.NewProposalUsecase(container.Upstream, container.Store, logger)

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiresIn)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	registry := &routes.Registry{
		Health:     handler.NewHealthHandler(),
		Chat:       handler.NewChatHandler(chatUC),
		Jobs:       handler.NewJobsHandler(searchUC),
		Candidates: handler.NewCandidatesHandler(searchUC, proposalUC),
		Proposals:  handler.NewProposalsHandler(proposalUC),
		ChatWS:     ws.NewHandler(hub, logger),
		Auth:       middleware.NewAuthMiddleware(jwtSvc),
	}
	registry.Register(f)

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
