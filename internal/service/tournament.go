package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"knockout-tournament-backend/internal/archive"
	"knockout-tournament-backend/internal/database/models"
	apperrors "knockout-tournament-backend/internal/errors"
	"knockout-tournament-backend/internal/logger"
	"knockout-tournament-backend/internal/metrics"
	"knockout-tournament-backend/internal/notify"
	"knockout-tournament-backend/internal/repository"
	"knockout-tournament-backend/internal/tournament"

	"github.com/go-playground/validator/v10"
)

const notifyTimeout = 10 * time.Second

// Options carries the optional collaborators of TournamentService
type Options struct {
	// StateKey is the key the state document is persisted under
	StateKey string
	// DefaultRoster produces the roster used on first start, on load failure and on reset
	DefaultRoster func() []tournament.Team
	Shuffle       tournament.Shuffler
	Metrics       *metrics.Metrics
	Notifier      notify.Notifier
	// Archiver is nil when snapshots are not archived
	Archiver archive.Archiver
	Now      func() time.Time
}

// TournamentService owns the tournament state. Every intent runs under one lock,
// and each successful transition is persisted before the lock is released.
type TournamentService struct {
	mu    sync.Mutex
	state tournament.State

	repo      repository.StateRepositoryInterface
	validator *validator.Validate

	stateKey      string
	defaultRoster func() []tournament.Team
	shuffle       tournament.Shuffler
	metrics       *metrics.Metrics
	notifier      notify.Notifier
	archiver      archive.Archiver
	now           func() time.Time
}

// NewTournamentService creates a new tournament service seeded with the default roster.
// Call Load to restore the persisted state.
func NewTournamentService(repo repository.StateRepositoryInterface, validator *validator.Validate, opts Options) *TournamentService {
	if opts.StateKey == "" {
		opts.StateKey = "tournamentState"
	}
	if opts.DefaultRoster == nil {
		opts.DefaultRoster = tournament.DefaultRoster
	}
	if opts.Shuffle == nil {
		opts.Shuffle = tournament.FisherYates(nil)
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &TournamentService{
		state:         tournament.NewState(opts.DefaultRoster()),
		repo:          repo,
		validator:     validator,
		stateKey:      opts.StateKey,
		defaultRoster: opts.DefaultRoster,
		shuffle:       opts.Shuffle,
		metrics:       opts.Metrics,
		notifier:      opts.Notifier,
		archiver:      opts.Archiver,
		now:           opts.Now,
	}
}

// Load restores the persisted state. An absent, unreadable or invalid document
// leaves the default roster with no matches in place.
func (s *TournamentService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.WithContext(ctx).WithField("state_key", s.stateKey)

	snapshot, err := s.repo.Get(ctx, s.stateKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrStateNotFound) {
			log.Info("No persisted tournament state, starting with the default roster")
		} else {
			s.metrics.PersistenceFailed("load")
			log.WithError(err).Warn("Failed to read persisted tournament state, starting with the default roster")
		}
		s.state = tournament.NewState(s.defaultRoster())
		return
	}

	state, err := tournament.Unmarshal([]byte(snapshot.Payload))
	if err != nil {
		s.metrics.PersistenceFailed("decode")
		log.WithError(err).Warn("Persisted tournament state is invalid, starting with the default roster")
		s.state = tournament.NewState(s.defaultRoster())
		return
	}

	s.state = state
	log.WithFields(map[string]interface{}{
		"teams":   len(state.Teams),
		"matches": len(state.Matches),
		"started": state.TournamentStarted,
	}).Info("Restored persisted tournament state")
}

// GetState returns the current tournament
func (s *TournamentService) GetState(ctx context.Context) (*StateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toStateResponse(s.state), nil
}

// GenerateBracket shuffles the roster into the seven-team bracket and starts the tournament
func (s *TournamentService) GenerateBracket(ctx context.Context) (*StateResponse, error) {
	s.mu.Lock()
	next, err := s.state.GenerateBracket(s.shuffle)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.commit(ctx, next)
	resp := toStateResponse(next)
	event := bracketEvent(next)
	s.mu.Unlock()

	s.metrics.BracketGenerated()
	logger.WithContext(ctx).WithField("bye_team_id", derefString(resp.ByeTeamID)).Info("Bracket generated")
	s.announce(ctx, event)
	return resp, nil
}

// SetScore records a score for one slot of a match
func (s *TournamentService) SetScore(ctx context.Context, matchID string, req *SetScoreRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, match, err := s.state.SetScore(matchID, tournament.Slot(req.Slot), tournament.CoerceScore(req.Value))
	if err != nil {
		return nil, err
	}
	s.commit(ctx, next)
	s.metrics.ScoreEntered()

	resp := toMatchResponse(match)
	return &resp, nil
}

// ConfirmResult freezes a match, decides its winner and advances the winner to the next match
func (s *TournamentService) ConfirmResult(ctx context.Context, matchID string) (*ConfirmResultResponse, error) {
	s.mu.Lock()
	next, outcome, err := s.state.ConfirmResult(matchID)
	if err != nil {
		s.mu.Unlock()
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			s.metrics.ConfirmRejected(conflict.Kind)
		}
		return nil, err
	}
	s.commit(ctx, next)
	event := resultEvent(next, outcome)
	s.mu.Unlock()

	s.metrics.ResultConfirmed(strconv.Itoa(int(outcome.Match.Round)))

	resp := &ConfirmResultResponse{
		Match:      toMatchResponse(outcome.Match),
		ChampionID: outcome.ChampionID,
	}
	if outcome.NextMatch != nil {
		nextMatch := toMatchResponse(*outcome.NextMatch)
		resp.NextMatch = &nextMatch
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"match_id":  outcome.Match.ID,
		"winner_id": derefString(outcome.Match.WinnerID),
	})
	if outcome.ChampionID != nil {
		log.Info("Final confirmed, champion crowned")
	} else {
		log.WithField("next_match_id", derefString(outcome.Match.NextMatchID)).Info("Result confirmed")
	}

	s.announce(ctx, event)
	return resp, nil
}

// Reset restores the default roster with no matches and clears the persisted state
func (s *TournamentService) Reset(ctx context.Context) (*StateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = tournament.NewState(s.defaultRoster())
	if err := s.repo.Delete(ctx, s.stateKey); err != nil {
		s.metrics.PersistenceFailed("delete")
		logger.WithContext(ctx).WithError(err).Error("Failed to clear persisted tournament state")
	}
	s.metrics.Reset()
	logger.WithContext(ctx).Info("Tournament reset")

	return toStateResponse(s.state), nil
}

// Export renders the current state as a downloadable document
func (s *TournamentService) Export(ctx context.Context) (*ExportResponse, error) {
	s.mu.Lock()
	state := s.state.Clone()
	s.mu.Unlock()

	name, body, err := tournament.Export(state, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to export tournament: %w", err)
	}
	return &ExportResponse{Filename: name, Body: body}, nil
}

// Import replaces the fields present in the document; a malformed document leaves the state unchanged
func (s *TournamentService) Import(ctx context.Context, data []byte) (*StateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := tournament.ApplyImport(s.state, data)
	if err != nil {
		s.metrics.Imported(false)
		logger.WithContext(ctx).WithError(err).Warn("Rejected tournament import")
		return nil, err
	}
	s.commit(ctx, next)
	s.metrics.Imported(true)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"teams":   len(next.Teams),
		"matches": len(next.Matches),
	}).Info("Tournament imported")

	return toStateResponse(next), nil
}

// ArchiveSnapshot uploads the current export document and returns its location
func (s *TournamentService) ArchiveSnapshot(ctx context.Context) (string, error) {
	if s.archiver == nil {
		return "", apperrors.NewValidationError("archive", "snapshot archiving is not configured")
	}

	export, err := s.Export(ctx)
	if err != nil {
		return "", err
	}

	location, err := s.archiver.Archive(ctx, export.Body, s.now())
	if err != nil {
		s.metrics.PersistenceFailed("archive")
		return "", fmt.Errorf("failed to archive snapshot: %w", err)
	}
	logger.WithContext(ctx).WithField("location", location).Info("Tournament snapshot archived")
	return location, nil
}

// Ping checks the state store
func (s *TournamentService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// commit installs next as the current state and persists it. Must be called with s.mu held.
// A failed save is logged and counted; the in-memory state stays authoritative.
func (s *TournamentService) commit(ctx context.Context, next tournament.State) {
	s.state = next

	payload, err := tournament.Marshal(next)
	if err != nil {
		s.metrics.PersistenceFailed("encode")
		logger.WithContext(ctx).WithError(err).Error("Failed to encode tournament state")
		return
	}

	snapshot := &models.StateSnapshot{
		Key:     s.stateKey,
		Payload: string(payload),
		Version: next.Version,
	}
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.metrics.PersistenceFailed("save")
		logger.WithContext(ctx).WithError(err).Error("Failed to persist tournament state")
	}
}

// announce delivers an event without letting a slow or failing channel affect the intent
func (s *TournamentService) announce(ctx context.Context, event *notify.Event) {
	if event == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, *event); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("event", string(event.Kind)).Warn("Failed to send tournament notification")
	}
}

func bracketEvent(state tournament.State) *notify.Event {
	event := &notify.Event{Kind: notify.EventBracketGenerated}
	for _, m := range state.Matches {
		if m.Round != tournament.RoundQuarterfinal {
			continue
		}
		event.Pairings = append(event.Pairings, teamName(state, m.Team1ID)+" vs "+teamName(state, m.Team2ID))
	}
	if bye, ok := tournament.ByeTeam(state.Matches); ok {
		event.ByeName = teamName(state, &bye)
	}
	return event
}

func resultEvent(state tournament.State, outcome tournament.Outcome) *notify.Event {
	m := outcome.Match
	if m.WinnerID == nil || m.Team1ID == nil || m.Team2ID == nil || m.Score1 == nil || m.Score2 == nil {
		return nil
	}

	event := &notify.Event{
		Kind:    notify.EventResultConfirmed,
		MatchID: m.ID,
		Round:   int(m.Round),
	}
	if outcome.ChampionID != nil {
		event.Kind = notify.EventChampionCrowned
	}

	if *m.WinnerID == *m.Team1ID {
		event.WinnerName, event.LoserName = teamName(state, m.Team1ID), teamName(state, m.Team2ID)
		event.WinnerScore, event.LoserScore = *m.Score1, *m.Score2
	} else {
		event.WinnerName, event.LoserName = teamName(state, m.Team2ID), teamName(state, m.Team1ID)
		event.WinnerScore, event.LoserScore = *m.Score2, *m.Score1
	}
	return event
}

// teamName falls back to the id for teams no longer on the roster
func teamName(state tournament.State, id *string) string {
	if id == nil {
		return "TBD"
	}
	if team, ok := state.FindTeam(*id); ok {
		return team.Name
	}
	return *id
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// validationError converts validator output into the application's ValidationError
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("request", err.Error())
}
