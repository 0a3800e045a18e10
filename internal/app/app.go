package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jobdeck/jobdeck/internal/api"
	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/database"
	"github.com/jobdeck/jobdeck/internal/savedjobs"
	"github.com/jobdeck/jobdeck/internal/session"
)

// App is the dependency container for the CLI application
type App struct {
	DB        *sql.DB
	Config    *config.Config
	Session   *session.Store
	API       *api.Client
	SavedJobs *savedjobs.Cache
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Open local database for history and saved searches
	if err := database.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := database.DB.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Load any persisted session
	sess, err := session.NewStore(config.StateDir())
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	timeout := time.Duration(config.AppConfig.RequestTimeoutSeconds) * time.Second
	client := api.New(config.AppConfig.APIBaseURL, timeout, sess)

	// Warm the saved-jobs cache for signed-in candidates
	saved := savedjobs.NewCache(ctx, client, sess)

	return &App{
		DB:        database.DB,
		Config:    config.AppConfig,
		Session:   sess,
		API:       client,
		SavedJobs: saved,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	return database.Close()
}
