package service

import (
	"context"

	apperrors "knockout-tournament-backend/internal/errors"
	"knockout-tournament-backend/internal/logger"
	"knockout-tournament-backend/internal/tournament"
)

// ListTeams returns the roster in order
func (s *TournamentService) ListTeams(ctx context.Context) ([]TeamResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teams := make([]TeamResponse, 0, len(s.state.Teams))
	for _, t := range s.state.Teams {
		teams = append(teams, toTeamResponse(t))
	}
	return teams, nil
}

// GetTeam returns one team by id
func (s *TournamentService) GetTeam(ctx context.Context, id string) (*TeamResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.state.FindTeam(id)
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	resp := toTeamResponse(team)
	return &resp, nil
}

// CreateTeam adds a team to the roster before the tournament starts
func (s *TournamentService) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	players := make([]tournament.Player, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, tournament.Player{Name: p.Name, Number: p.Number, Position: p.Position})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, team, err := s.state.AddTeam(req.Name, req.Logo, players)
	if err != nil {
		return nil, err
	}
	s.commit(ctx, next)
	logger.WithContext(ctx).WithField("team_id", team.ID).Info("Team created")

	resp := toTeamResponse(team)
	return &resp, nil
}

// UpdateTeam edits a team's name and/or logo
func (s *TournamentService) UpdateTeam(ctx context.Context, id string, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, team, err := s.state.UpdateTeam(id, req.Name, req.Logo)
	if err != nil {
		return nil, err
	}
	s.commit(ctx, next)

	resp := toTeamResponse(team)
	return &resp, nil
}

// DeleteTeam removes a team from the roster before the tournament starts
func (s *TournamentService) DeleteTeam(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.RemoveTeam(id)
	if err != nil {
		return err
	}
	s.commit(ctx, next)
	logger.WithContext(ctx).WithField("team_id", id).Info("Team deleted")
	return nil
}

// AddPlayer adds a player to a team
func (s *TournamentService) AddPlayer(ctx context.Context, teamID string, req *AddPlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, player, err := s.state.AddPlayer(teamID, tournament.Player{
		Name:     req.Name,
		Number:   req.Number,
		Position: req.Position,
	})
	if err != nil {
		return nil, err
	}
	s.commit(ctx, next)

	resp := toPlayerResponse(player)
	return &resp, nil
}

// RemovePlayer removes a player from a team
func (s *TournamentService) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.RemovePlayer(teamID, playerID)
	if err != nil {
		return err
	}
	s.commit(ctx, next)
	return nil
}
