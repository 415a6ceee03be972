// Package app assembles the pieces both front-ends share: the card store
// selected by configuration, the shuffle source and the face labels.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/vytor/flashdeck/internal/config"
	"github.com/vytor/flashdeck/internal/db"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/repository"
	"github.com/vytor/flashdeck/internal/repository/jsonfile"
	"github.com/vytor/flashdeck/internal/repository/memory"
	"github.com/vytor/flashdeck/internal/repository/sqlite"
	"github.com/vytor/flashdeck/internal/services"
)

// OpenStore opens the card store named by cfg.Storage. The returned func
// releases it.
func OpenStore(ctx context.Context, cfg config.Config) (repository.CardStore, func() error, error) {
	log := logger.FromContext(ctx).WithPrefix("app")
	noop := func() error { return nil }

	switch cfg.Storage {
	case config.StorageSQLite:
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		log.Debug("using sqlite card store: %s", cfg.DBPath)
		return sqlite.NewCardStore(database.DB), database.Close, nil
	case config.StorageFile:
		store, err := jsonfile.NewCardStore(cfg.DeckFile)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("using file card store: %s", jsonfile.Path(store))
		return store, noop, nil
	case config.StorageMemory:
		log.Debug("using in-memory card store")
		return memory.NewCardStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

// Labels returns the card face names configured in cfg.
func Labels(cfg config.Config) models.Labels {
	return models.Labels{
		Prompt:          cfg.PromptLabel,
		Target:          cfg.TargetLabel,
		Transliteration: cfg.TransliterationLabel,
		TargetRTL:       cfg.TargetRTL,
	}
}

// DeckOptions turns cfg into service options. A non-zero SHUFFLE_SEED
// makes shuffles repeatable.
func DeckOptions(cfg config.Config) []services.DeckOption {
	var opts []services.DeckOption
	if cfg.ShuffleSeed != 0 {
		seed := uint64(cfg.ShuffleSeed)
		opts = append(opts, services.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return opts
}
