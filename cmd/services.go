package cmd

import (
	"fmt"

	"github.com/abhisek/attune/internal/alignment"
	"github.com/abhisek/attune/internal/config"
	"github.com/abhisek/attune/internal/journey"
	"github.com/abhisek/attune/internal/observability"
	"github.com/abhisek/attune/internal/store"
	"github.com/spf13/cobra"
)

// services bundles the opened store and the two engines for a command run.
type services struct {
	store   *store.Store
	journey *journey.Service
	align   *alignment.Service
}

// openServices opens the store, loads persisted state and wires the engines.
// Load errors degrade to fresh state; they never abort the command.
func openServices(cmd *cobra.Command) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	observability.Init(observability.ParseLevel(cfg.LogLevel))
	log := observability.Logger()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	ctx := cmd.Context()
	repo := st.StateRepo()

	journeyData, err := repo.LoadJourney(ctx)
	if err != nil {
		log.Warn("journey state unavailable, starting fresh", "err", err)
	}
	alignData, err := repo.LoadAlignment(ctx)
	if err != nil {
		log.Warn("alignment state unavailable, starting fresh", "err", err)
	}

	return &services{
		store:   st,
		journey: journey.NewService(journeyData, repo, log),
		align:   alignment.NewService(alignData, repo, st.ActivityLog(), log),
	}, nil
}

func (s *services) Close() error {
	return s.store.Close()
}
