package repository

import (
	"context"
	"fmt"

	"knockout-tournament-backend/internal/config"
	"knockout-tournament-backend/internal/database"
)

// OpenStateRepository connects to the store selected by STORE_DRIVER. The returned
// close function releases the underlying connection.
func OpenStateRepository(ctx context.Context, cfg *config.Config) (StateRepositoryInterface, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := database.InitializeSQLite(cfg.SQLitePath, nil)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return NewStateRepository(db), sqlDB.Close, nil

	case config.StoreDriverPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return NewStateRepository(db), sqlDB.Close, nil

	case config.StoreDriverRedis:
		client, err := database.InitializeRedis(ctx, database.RedisOptions{
			URL:      cfg.RedisURL,
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStateRepository(client), client.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
