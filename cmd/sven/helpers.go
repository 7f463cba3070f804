package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/sven/internal/cache"
	"github.com/at-ishikawa/sven/internal/config"
	"github.com/at-ishikawa/sven/internal/database"
	"github.com/at-ishikawa/sven/internal/fetcher"
	"github.com/at-ishikawa/sven/internal/lexicon"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// resolveDirection prefers an explicit --language flag over default_language.
func resolveDirection(cfg *config.Config) (lexicon.Direction, error) {
	if language.set {
		return language.direction, nil
	}
	direction, err := cfg.Direction()
	if err != nil {
		return 0, fmt.Errorf("cfg.Direction > %w", err)
	}
	return direction, nil
}

// lexiconService owns the cache store and the fetcher for a single command run.
type lexiconService struct {
	store    cache.Store
	selector *lexicon.Selector
	fetcher  *fetcher.Fetcher
	closers  []func() error
}

func newLexiconService(ctx context.Context, cfg *config.Config) (*lexiconService, error) {
	service := &lexiconService{}

	switch cache.Driver(cfg.Cache.Driver) {
	case cache.DriverMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		service.closers = append(service.closers, db.Close)
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = service.Close()
			return nil, fmt.Errorf("database.EnsureSchema > %w", err)
		}
		service.store = cache.NewDBStore(db)
	default:
		service.store = cache.NewFileStore(cfg.Cache.Directory)
	}

	selector, err := lexicon.NewSelector(cfg.Fetch.BaseURL, lexicon.CacheFormat(cfg.Cache.Format))
	if err != nil {
		_ = service.Close()
		return nil, fmt.Errorf("lexicon.NewSelector > %w", err)
	}
	service.selector = selector

	service.fetcher = fetcher.New(service.store, selector, fetcher.Config{
		UserAgent:     cfg.Fetch.UserAgent,
		RetryAttempts: cfg.Fetch.RetryAttempts,
		Timeout:       cfg.Fetch.Timeout,
	})
	service.closers = append(service.closers, service.fetcher.Close)
	return service, nil
}

// open prepares the lexicon of the direction when needed and loads it.
func (s *lexiconService) open(ctx context.Context, direction lexicon.Direction) (*lexicon.Engine, error) {
	if err := s.fetcher.EnsureAvailable(ctx, direction); err != nil {
		return nil, fmt.Errorf("fetcher.EnsureAvailable > %w", err)
	}
	engine, err := lexicon.Load(ctx, s.store, s.selector.Resolve(direction))
	if err != nil {
		return nil, fmt.Errorf("lexicon.Load > %w", err)
	}
	return engine, nil
}

func (s *lexiconService) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// openEngine loads the lexicon of the requested direction.
func openEngine(ctx context.Context, cfg *config.Config) (*lexicon.Engine, lexicon.Direction, func() error, error) {
	direction, err := resolveDirection(cfg)
	if err != nil {
		return nil, 0, nil, err
	}
	service, err := newLexiconService(ctx, cfg)
	if err != nil {
		return nil, 0, nil, err
	}
	engine, err := service.open(ctx, direction)
	if err != nil {
		_ = service.Close()
		return nil, 0, nil, err
	}
	return engine, direction, service.Close, nil
}
