package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TournamentServiceInterface defines the interface for bracket and result operations
type TournamentServiceInterface interface {
	GetState(ctx context.Context) (*StateResponse, error)
	GenerateBracket(ctx context.Context) (*StateResponse, error)
	SetScore(ctx context.Context, matchID string, req *SetScoreRequest) (*MatchResponse, error)
	ConfirmResult(ctx context.Context, matchID string) (*ConfirmResultResponse, error)
	Reset(ctx context.Context) (*StateResponse, error)
	Export(ctx context.Context) (*ExportResponse, error)
	Import(ctx context.Context, data []byte) (*StateResponse, error)
	ArchiveSnapshot(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

// TeamServiceInterface defines the interface for roster management
type TeamServiceInterface interface {
	ListTeams(ctx context.Context) ([]TeamResponse, error)
	GetTeam(ctx context.Context, id string) (*TeamResponse, error)
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	UpdateTeam(ctx context.Context, id string, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(ctx context.Context, id string) error
	AddPlayer(ctx context.Context, teamID string, req *AddPlayerRequest) (*PlayerResponse, error)
	RemovePlayer(ctx context.Context, teamID, playerID string) error
}
