package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-rules/internal/builder"
	"github.com/KirkDiggler/rpg-rules/internal/clients/srd"
	"github.com/KirkDiggler/rpg-rules/internal/config"
	"github.com/KirkDiggler/rpg-rules/internal/engine"
	"github.com/KirkDiggler/rpg-rules/internal/events"
	"github.com/KirkDiggler/rpg-rules/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-rules/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-rules/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-rules/internal/redis"
	"github.com/KirkDiggler/rpg-rules/internal/repositories/campaign"
	characterrepo "github.com/KirkDiggler/rpg-rules/internal/repositories/character"
	"github.com/KirkDiggler/rpg-rules/internal/rules"
	characterservice "github.com/KirkDiggler/rpg-rules/internal/services/character"
)

// dependencies is everything the handler needs, plus the stores to close
type dependencies struct {
	CharacterService characterservice.Service
	Roster           campaign.Roster

	closers []func() error
}

// Close releases store connections in reverse order of opening
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config) (_ *dependencies, err error) {
	deps := &dependencies{}
	defer func() {
		if err != nil {
			deps.Close()
		}
	}()

	tables, err := loadRules(cfg.RulesFile)
	if err != nil {
		return nil, err
	}

	repo, roster, err := openStores(ctx, cfg, deps)
	if err != nil {
		return nil, err
	}
	deps.Roster = roster

	ruleEngine, err := engine.New(&engine.Config{Rules: tables})
	if err != nil {
		return nil, fmt.Errorf("failed to create rule engine: %w", err)
	}

	characterBuilder, err := builder.New(&builder.Config{
		Roller: dice.DefaultRoller,
		Rules:  tables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character builder: %w", err)
	}

	bus := rpgevents.NewBus()
	if _, err := events.SubscribeAuditLog(bus); err != nil {
		return nil, err
	}
	publisher, err := events.NewPublisher(bus)
	if err != nil {
		return nil, err
	}

	catalog, err := srd.New(&srd.Config{
		BaseURL:  cfg.SRDBaseURL,
		CacheTTL: cfg.SRDCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spell catalog: %w", err)
	}

	orchestrator, err := character.New(&character.Config{
		CharacterRepo:     repo,
		Engine:            ruleEngine,
		Builder:           characterBuilder,
		IDGenerator:       idgen.NewUUID("char"),
		Clock:             clock.New(),
		Publisher:         publisher,
		ExportIDGenerator: idgen.NewPrefixed("export"),
		SpellCatalog:      catalog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}
	deps.CharacterService = orchestrator

	return deps, nil
}

func loadRules(path string) (*rules.Tables, error) {
	if path == "" {
		return rules.Default()
	}

	tables, err := rules.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded rule tables", "path", path)
	return tables, nil
}

// openStores opens the configured character store. The roster lives in
// Redis whenever a Redis address is configured and in memory otherwise.
func openStores(ctx context.Context, cfg *config.Config, deps *dependencies) (characterrepo.Repository, campaign.Roster, error) {
	var client redisclient.Client
	if cfg.RedisAddr != "" {
		c, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, err
		}
		if err := c.Ping(ctx).Err(); err != nil {
			_ = c.Close() // nolint:errcheck // already failing
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		deps.closers = append(deps.closers, c.Close)
		client = c
	}

	var roster campaign.Roster = campaign.NewMemory()
	if client != nil {
		redisRoster, err := campaign.NewRedis(&campaign.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		roster = redisRoster
	}

	switch cfg.Storage {
	case config.StorageRedis:
		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		return repo, roster, nil
	case config.StorageSQLite:
		repo, err := characterrepo.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		deps.closers = append(deps.closers, repo.Close)
		return repo, roster, nil
	default:
		return characterrepo.NewMemory(), roster, nil
	}
}
