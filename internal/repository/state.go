package repository

import (
	"context"
	"errors"
	"fmt"

	"knockout-tournament-backend/internal/database/models"
	apperrors "knockout-tournament-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository stores state snapshots in a SQL table through GORM
type StateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Get retrieves the snapshot stored under key
func (r *StateRepository) Get(ctx context.Context, key string) (*models.StateSnapshot, error) {
	var snapshot models.StateSnapshot
	err := r.db.WithContext(ctx).First(&snapshot, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStateNotFound
		}
		return nil, fmt.Errorf("get state %q: %w", key, err)
	}
	return &snapshot, nil
}

// Save inserts the snapshot or overwrites the one stored under the same key
func (r *StateRepository) Save(ctx context.Context, snapshot *models.StateSnapshot) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "version", "revision", "updated_at"}),
	}).Create(snapshot).Error
	if err != nil {
		return fmt.Errorf("save state %q: %w", snapshot.Key, err)
	}
	return nil
}

// Delete removes the snapshot stored under key; deleting a missing key is not an error
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	err := r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.StateSnapshot{}).Error
	if err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// Ping checks the underlying database connection
func (r *StateRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
