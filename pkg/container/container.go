package container

import (
	"context"
	"fmt"
	"time"

	"mozfest-backend/internal/config"
	"mozfest-backend/internal/infrastructure/database"
	"mozfest-backend/internal/infrastructure/storage"

	contributorHandler "mozfest-backend/internal/domains/contributor/handler"
	contributorRepo "mozfest-backend/internal/domains/contributor/repository"
	contributorService "mozfest-backend/internal/domains/contributor/service"
	storyHandler "mozfest-backend/internal/domains/story/handler"
	storyRepo "mozfest-backend/internal/domains/story/repository"
	storyService "mozfest-backend/internal/domains/story/service"
	gradientHandler "mozfest-backend/internal/domains/tilegradient/handler"
	gradientRepo "mozfest-backend/internal/domains/tilegradient/repository"
	gradientService "mozfest-backend/internal/domains/tilegradient/service"

	"github.com/rs/zerolog/log"
)

// Container holds the application dependency graph. Everything in it
// is a singleton wired once at startup.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Storage storage.Uploader

	ContributorHandler  *contributorHandler.ContributorHandler
	StoryHandler        *storyHandler.StoryHandler
	TileGradientHandler *gradientHandler.TileGradientHandler
}

// NewContainer initializes dependencies in order: config, database
// (with schema bootstrap), upload gateway, then per-domain
// repository -> service -> handler chains.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db

	// The gateway dials its provider lazily on first upload, so an
	// unconfigured storage backend does not block startup.
	c.Storage = storage.NewMinIOGateway(cfg.Storage, storage.NewImageProcessor())
	if !cfg.Storage.Configured() {
		log.Warn().Msg("Storage credentials not resolved; uploads will fail until configured")
	}

	contribRepo := contributorRepo.NewPostgresRepository(db.Pool)
	contribSvc := contributorService.NewContributorService(contribRepo, c.Storage)
	c.ContributorHandler = contributorHandler.NewContributorHandler(contribSvc)

	stRepo := storyRepo.NewPostgresRepository(db.Pool)
	stSvc := storyService.NewStoryService(stRepo, c.Storage)
	c.StoryHandler = storyHandler.NewStoryHandler(stSvc)

	tgRepo := gradientRepo.NewPostgresRepository(db.Pool)
	tgSvc := gradientService.NewTileGradientService(tgRepo)
	c.TileGradientHandler = gradientHandler.NewTileGradientHandler(tgSvc)

	return c, nil
}

// Cleanup releases held resources; called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
