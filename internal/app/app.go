package app

import (
	"fmt"
	"io"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/config"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/repository"
	filerepo "github.com/Maheswari-BaskaranS/MediCare-App/internal/repository/file"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/repository/sqlite"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/service"
)

// App ties config, the storage backend and the services together for one
// command invocation.
type App struct {
	Config   config.Config
	Services *service.Services

	repoClose io.Closer
}

func New() (*App, error) {
	cfg := config.Load()
	repo, err := openRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &App{
		Config:    cfg,
		Services:  service.NewServices(repo, cfg),
		repoClose: repo,
	}, nil
}

func (a *App) Close() error {
	return a.repoClose.Close()
}

func openRepository(cfg config.Config) (repository.Repository, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return filerepo.New(cfg.DataDir)
	default:
		return sqlite.New(cfg.DatabaseDSN)
	}
}
