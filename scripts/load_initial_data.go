package main

import (
	"context"
	"flag"
	"log"
	"time"

	"knockout-tournament-backend/internal/config"
	"knockout-tournament-backend/internal/database/models"
	apperrors "knockout-tournament-backend/internal/errors"
	"knockout-tournament-backend/internal/repository"
	"knockout-tournament-backend/internal/tournament"
)

func main() {
	rosterPath := flag.String("roster", "scripts/data/roster.yaml", "roster YAML file to seed")
	force := flag.Bool("force", false, "overwrite an existing tournament")
	flag.Parse()

	log.Println("🚀 Loading initial roster from", *rosterPath)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Connect to the state store with retry (for dockerized store startup)
	repo, closeStore, err := connectWithRetry(ctx, cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to state store: %v", err)
	}
	defer closeStore()

	teams, err := tournament.LoadRosterFile(*rosterPath)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	created, err := seed(ctx, repo, cfg.StateKey, teams, *force)
	if err != nil {
		log.Fatalf("Failed to seed tournament: %v", err)
	}
	if !created {
		log.Printf("⚠️  Tournament %q already exists, use -force to overwrite", cfg.StateKey)
		return
	}

	log.Printf("📋 Teams: %d loaded into %q", len(teams), cfg.StateKey)
	log.Println("✅ Initial roster loaded successfully!")
}

// connectWithRetry attempts to open the state store with retries to wait for its readiness.
func connectWithRetry(ctx context.Context, cfg *config.Config, maxAttempts int, delay time.Duration) (repository.StateRepositoryInterface, func() error, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		repo, closeFn, err := repository.OpenStateRepository(ctx, cfg)
		if err == nil {
			return repo, closeFn, nil
		}
		lastErr = err
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("State store not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, nil, lastErr
}

// seed writes a not-started tournament with the given roster unless one is already stored.
func seed(ctx context.Context, repo repository.StateRepositoryInterface, key string, teams []tournament.Team, force bool) (bool, error) {
	if !force {
		_, err := repo.Get(ctx, key)
		if err == nil {
			return false, nil
		}
		if !apperrors.IsNotFound(err) {
			return false, err
		}
	}

	state := tournament.NewState(teams)
	payload, err := tournament.Marshal(state)
	if err != nil {
		return false, err
	}

	return true, repo.Save(ctx, &models.StateSnapshot{
		Key:     key,
		Payload: string(payload),
		Version: state.Version,
	})
}
