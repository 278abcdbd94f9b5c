package app

import (
	"context"
	"log"
	"time"

	"jobtalk/internal/config"
	"jobtalk/internal/database"
	dbpostgres "jobtalk/internal/database/postgres"
	"jobtalk/internal/infrastructure/cache"
	"jobtalk/internal/infrastructure/upstream"
	"jobtalk/internal/repository"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Store    *cache.Redis
	Upstream upstream.Client
	Archive  repository.ConversationRepository
	Logger   *log.Logger
}

// NewContainer wires the infrastructure. Postgres is optional: without DB
// env the conversation archive is disabled and the gateway still serves.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	c.Store = cache.NewRedis(logger)
	c.Upstream = upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)

	if cfg.Database.DBHost != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db

		archive := repository.NewPostgresConversationRepository(db)
		if err := archive.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		c.Archive = archive
	} else if logger != nil {
		logger.Printf("[App] DB_HOST unset, conversation archive disabled")
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
