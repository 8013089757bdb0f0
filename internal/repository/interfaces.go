package repository

import (
	"context"

	"knockout-tournament-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StateRepositoryInterface defines the key-value operations used to persist the tournament state
type StateRepositoryInterface interface {
	// Get returns apperrors.ErrStateNotFound when nothing is stored under key
	Get(ctx context.Context, key string) (*models.StateSnapshot, error)
	Save(ctx context.Context, snapshot *models.StateSnapshot) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
