package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"knockout-tournament-backend/internal/database/models"
	apperrors "knockout-tournament-backend/internal/errors"
	"knockout-tournament-backend/internal/metrics"
	"knockout-tournament-backend/internal/mocks"
	"knockout-tournament-backend/internal/notify"
	"knockout-tournament-backend/internal/service"
	"knockout-tournament-backend/internal/tournament"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const stateKey = "tournamentState"

func lettersRoster() []tournament.Team {
	teams := make([]tournament.Team, 0, tournament.RosterSize)
	for _, id := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		teams = append(teams, tournament.Team{ID: id, Name: "Team " + id, Players: []tournament.Player{}})
	}
	return teams
}

// TournamentServiceTestSuite defines the test suite for TournamentService
type TournamentServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockStateRepositoryInterface
	mockNotifier *mocks.MockNotifier
	mockArchiver *mocks.MockArchiver
	metrics      *metrics.Metrics
	service      *service.TournamentService
	ctx          context.Context
	now          time.Time
	saved        []tournament.State
}

// SetupTest sets up the test suite
func (suite *TournamentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockStateRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.mockArchiver = mocks.NewMockArchiver(suite.ctrl)
	suite.metrics = metrics.New()
	suite.ctx = context.Background()
	suite.now = time.Date(2026, time.March, 5, 18, 0, 0, 0, time.UTC)
	suite.saved = nil

	suite.service = service.NewTournamentService(suite.mockRepo, validator.New(), service.Options{
		StateKey:      stateKey,
		DefaultRoster: lettersRoster,
		Shuffle:       func([]string) {},
		Metrics:       suite.metrics,
		Notifier:      suite.mockNotifier,
		Archiver:      suite.mockArchiver,
		Now:           func() time.Time { return suite.now },
	})
}

// TearDownTest cleans up after each test
func (suite *TournamentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectSaves records every persisted document so tests can inspect what was written
func (suite *TournamentServiceTestSuite) expectSaves() {
	suite.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshot *models.StateSnapshot) error {
			suite.Equal(stateKey, snapshot.Key)
			suite.Equal(tournament.StateVersion, snapshot.Version)
			state, err := tournament.Unmarshal([]byte(snapshot.Payload))
			suite.Require().NoError(err)
			suite.saved = append(suite.saved, state)
			return nil
		}).AnyTimes()
}

func (suite *TournamentServiceTestSuite) lastSaved() tournament.State {
	suite.Require().NotEmpty(suite.saved, "nothing was persisted")
	return suite.saved[len(suite.saved)-1]
}

func (suite *TournamentServiceTestSuite) start() {
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	_, err := suite.service.GenerateBracket(suite.ctx)
	suite.Require().NoError(err)
}

func (suite *TournamentServiceTestSuite) score(matchID string, s1, s2 interface{}) {
	_, err := suite.service.SetScore(suite.ctx, matchID, &service.SetScoreRequest{Slot: 1, Value: s1})
	suite.Require().NoError(err)
	_, err = suite.service.SetScore(suite.ctx, matchID, &service.SetScoreRequest{Slot: 2, Value: s2})
	suite.Require().NoError(err)
}

// TestLoadWithoutPersistedState tests that a missing document leaves the default roster
func (suite *TournamentServiceTestSuite) TestLoadWithoutPersistedState() {
	suite.mockRepo.EXPECT().Get(gomock.Any(), stateKey).Return(nil, apperrors.ErrStateNotFound)

	suite.service.Load(suite.ctx)

	state, err := suite.service.GetState(suite.ctx)
	suite.NoError(err)
	suite.Len(state.Teams, tournament.RosterSize)
	suite.Empty(state.Matches)
	suite.False(state.TournamentStarted)
	suite.Equal(0.0, testutil.ToFloat64(suite.metrics.PersistenceFailures.WithLabelValues("load")))
}

// TestLoadRestoresPersistedState tests restoring a started tournament
func (suite *TournamentServiceTestSuite) TestLoadRestoresPersistedState() {
	started, err := tournament.NewState(lettersRoster()).GenerateBracket(func([]string) {})
	suite.Require().NoError(err)
	payload, err := tournament.Marshal(started)
	suite.Require().NoError(err)

	suite.mockRepo.EXPECT().Get(gomock.Any(), stateKey).Return(&models.StateSnapshot{Key: stateKey, Payload: string(payload), Version: 1}, nil)

	suite.service.Load(suite.ctx)

	state, err := suite.service.GetState(suite.ctx)
	suite.NoError(err)
	suite.True(state.TournamentStarted)
	suite.Len(state.Matches, 6)
	suite.Require().NotNil(state.ByeTeamID)
	suite.Equal("G", *state.ByeTeamID)
	suite.Nil(state.ChampionID)
}

// TestLoadFallsBackToDefaults tests corrupt documents and store failures
func (suite *TournamentServiceTestSuite) TestLoadFallsBackToDefaults() {
	testCases := []struct {
		name     string
		snapshot *models.StateSnapshot
		err      error
		counter  string
	}{
		{"corrupt payload", &models.StateSnapshot{Key: stateKey, Payload: `{"teams": [`}, nil, "decode"},
		{"invalid bracket", &models.StateSnapshot{Key: stateKey, Payload: `{"teams": [], "matches": [], "tournamentStarted": true}`}, nil, "decode"},
		{"store unavailable", nil, errors.New("connection refused"), "load"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockRepo.EXPECT().Get(gomock.Any(), stateKey).Return(tc.snapshot, tc.err)
			before := testutil.ToFloat64(suite.metrics.PersistenceFailures.WithLabelValues(tc.counter))

			suite.service.Load(suite.ctx)

			state, err := suite.service.GetState(suite.ctx)
			suite.NoError(err)
			suite.Len(state.Teams, tournament.RosterSize)
			suite.Equal("A", state.Teams[0].ID)
			suite.Empty(state.Matches)
			suite.False(state.TournamentStarted)
			suite.Equal(before+1, testutil.ToFloat64(suite.metrics.PersistenceFailures.WithLabelValues(tc.counter)))
		})
	}
}

// TestGenerateBracket tests generation, persistence and the announcement
func (suite *TournamentServiceTestSuite) TestGenerateBracket() {
	suite.expectSaves()
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event notify.Event) error {
			suite.Equal(notify.EventBracketGenerated, event.Kind)
			suite.Equal([]string{"Team A vs Team B", "Team C vs Team D", "Team E vs Team F"}, event.Pairings)
			suite.Equal("Team G", event.ByeName)
			return nil
		})

	state, err := suite.service.GenerateBracket(suite.ctx)
	suite.Require().NoError(err)
	suite.True(state.TournamentStarted)
	suite.Len(state.Matches, 6)
	suite.Equal("ready", state.Matches[0].Status)
	suite.Equal("empty", state.Matches[3].Status)

	suite.True(suite.lastSaved().TournamentStarted)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.BracketsGenerated))

	_, err = suite.service.GenerateBracket(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrTournamentAlreadyStarted)
	suite.Len(suite.saved, 1)
}

// TestGenerateBracketRequiresSevenTeams tests that a short roster is rejected and nothing is persisted
func (suite *TournamentServiceTestSuite) TestGenerateBracketRequiresSevenTeams() {
	suite.expectSaves()
	suite.Require().NoError(suite.service.DeleteTeam(suite.ctx, "G"))

	state, err := suite.service.GenerateBracket(suite.ctx)
	suite.Nil(state)
	suite.ErrorIs(err, apperrors.ErrInvalidRosterSize)
	suite.Len(suite.saved, 1)
}

// TestSetScore tests score entry, coercion and request validation
func (suite *TournamentServiceTestSuite) TestSetScore() {
	suite.expectSaves()
	suite.start()

	match, err := suite.service.SetScore(suite.ctx, tournament.MatchQuarterfinal1, &service.SetScoreRequest{Slot: 1, Value: 3.9})
	suite.Require().NoError(err)
	suite.Equal(3, *match.Score1)
	suite.Equal(0, *match.Score2)
	suite.Equal("scored", match.Status)

	match, err = suite.service.SetScore(suite.ctx, tournament.MatchQuarterfinal1, &service.SetScoreRequest{Slot: 2, Value: "abc"})
	suite.Require().NoError(err)
	suite.Equal(0, *match.Score2)

	match, err = suite.service.SetScore(suite.ctx, tournament.MatchQuarterfinal1, &service.SetScoreRequest{Slot: 2, Value: -4})
	suite.Require().NoError(err)
	suite.Equal(0, *match.Score2)

	saves := len(suite.saved)
	_, err = suite.service.SetScore(suite.ctx, tournament.MatchQuarterfinal1, &service.SetScoreRequest{Slot: 3, Value: 1})
	suite.True(apperrors.IsValidation(err))
	_, err = suite.service.SetScore(suite.ctx, "qf9", &service.SetScoreRequest{Slot: 1, Value: 1})
	suite.ErrorIs(err, apperrors.ErrMatchNotFound)
	_, err = suite.service.SetScore(suite.ctx, tournament.MatchSemifinal1, &service.SetScoreRequest{Slot: 1, Value: 1})
	suite.ErrorIs(err, apperrors.ErrSlotNotAssigned)
	suite.Len(suite.saved, saves)

	qf1, ok := suite.lastSaved().FindMatch(tournament.MatchQuarterfinal1)
	suite.Require().True(ok)
	suite.Equal(3, *qf1.Score1)
	suite.Equal(3.0, testutil.ToFloat64(suite.metrics.ScoresEntered))
}

// TestPersistenceFailureDoesNotFailIntent tests that a failed save is counted but the edit stands
func (suite *TournamentServiceTestSuite) TestPersistenceFailureDoesNotFailIntent() {
	suite.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).AnyTimes()
	suite.start()

	match, err := suite.service.SetScore(suite.ctx, tournament.MatchQuarterfinal1, &service.SetScoreRequest{Slot: 1, Value: 2})
	suite.Require().NoError(err)
	suite.Equal(2, *match.Score1)

	state, err := suite.service.GetState(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(2, *state.Matches[0].Score1)
	suite.Equal(2.0, testutil.ToFloat64(suite.metrics.PersistenceFailures.WithLabelValues("save")))
}

// TestConfirmResult tests ties, incomplete scores and propagation
func (suite *TournamentServiceTestSuite) TestConfirmResult() {
	suite.expectSaves()
	suite.start()

	// fresh quarterfinals start at 0-0
	_, err := suite.service.ConfirmResult(suite.ctx, tournament.MatchQuarterfinal1)
	suite.ErrorIs(err, apperrors.ErrTiedScore)

	suite.score(tournament.MatchQuarterfinal1, 1, 1)
	_, err = suite.service.ConfirmResult(suite.ctx, tournament.MatchQuarterfinal1)
	suite.ErrorIs(err, apperrors.ErrTiedScore)
	suite.Equal(2.0, testutil.ToFloat64(suite.metrics.ConfirmRejections.WithLabelValues("TiedScore")))

	_, err = suite.service.ConfirmResult(suite.ctx, tournament.MatchSemifinal1)
	suite.ErrorIs(err, apperrors.ErrMatchNotReady)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.ConfirmRejections.WithLabelValues("MatchNotReady")))

	suite.score(tournament.MatchQuarterfinal1, 2, 1)
	result, err := suite.service.ConfirmResult(suite.ctx, tournament.MatchQuarterfinal1)
	suite.Require().NoError(err)
	suite.Equal("A", *result.Match.WinnerID)
	suite.Equal("confirmed", result.Match.Status)
	suite.Require().NotNil(result.NextMatch)
	suite.Equal(tournament.MatchSemifinal1, result.NextMatch.ID)
	suite.Equal("A", *result.NextMatch.Team1ID)
	suite.Nil(result.ChampionID)

	sf1, ok := suite.lastSaved().FindMatch(tournament.MatchSemifinal1)
	suite.Require().True(ok)
	suite.Equal("A", *sf1.Team1ID)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.ResultsConfirmed.WithLabelValues("1")))

	_, err = suite.service.ConfirmResult(suite.ctx, tournament.MatchQuarterfinal1)
	suite.ErrorIs(err, apperrors.ErrMatchFrozen)
}

// TestFullTournamentAnnouncesChampion tests the complete run through to the final
func (suite *TournamentServiceTestSuite) TestFullTournamentAnnouncesChampion() {
	suite.expectSaves()
	var events []notify.Event
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event notify.Event) error {
			events = append(events, event)
			return errors.New("telegram unavailable")
		}).Times(7)

	_, err := suite.service.GenerateBracket(suite.ctx)
	suite.Require().NoError(err)

	for _, step := range []struct {
		id     string
		s1, s2 int
	}{
		{tournament.MatchQuarterfinal1, 2, 1},
		{tournament.MatchQuarterfinal2, 0, 3},
		{tournament.MatchQuarterfinal3, 2, 1},
		{tournament.MatchSemifinal1, 1, 0},
		{tournament.MatchSemifinal2, 0, 2},
	} {
		suite.score(step.id, step.s1, step.s2)
		_, err := suite.service.ConfirmResult(suite.ctx, step.id)
		suite.Require().NoError(err)
	}

	suite.score(tournament.MatchFinal, 3, 2)
	result, err := suite.service.ConfirmResult(suite.ctx, tournament.MatchFinal)
	suite.Require().NoError(err)
	suite.Require().NotNil(result.ChampionID)
	suite.Equal("A", *result.ChampionID)
	suite.Nil(result.NextMatch)

	state, err := suite.service.GetState(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(state.ChampionID)
	suite.Equal("A", *state.ChampionID)

	last := events[len(events)-1]
	suite.Equal(notify.EventChampionCrowned, last.Kind)
	suite.Equal("Team A", last.WinnerName)
	suite.Equal("Team G", last.LoserName)
	suite.Equal(3, last.WinnerScore)
	suite.Equal(2, last.LoserScore)

	qf2 := events[2]
	suite.Equal(notify.EventResultConfirmed, qf2.Kind)
	suite.Equal("Team D", qf2.WinnerName)
	suite.Equal(3, qf2.WinnerScore)
}

// TestReset tests that reset restores defaults and clears the persisted document
func (suite *TournamentServiceTestSuite) TestReset() {
	suite.expectSaves()
	suite.start()
	suite.mockRepo.EXPECT().Delete(gomock.Any(), stateKey).Return(nil)

	state, err := suite.service.Reset(suite.ctx)
	suite.Require().NoError(err)
	suite.False(state.TournamentStarted)
	suite.Empty(state.Matches)
	suite.Len(state.Teams, tournament.RosterSize)
	suite.Nil(state.ByeTeamID)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.Resets))

	suite.mockRepo.EXPECT().Delete(gomock.Any(), stateKey).Return(errors.New("timeout"))
	_, err = suite.service.Reset(suite.ctx)
	suite.NoError(err)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.PersistenceFailures.WithLabelValues("delete")))
}

// TestExport tests the export file name and body
func (suite *TournamentServiceTestSuite) TestExport() {
	export, err := suite.service.Export(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("tournament-2026-03-05.json", export.Filename)

	var doc map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(export.Body, &doc))
	suite.Contains(doc, "teams")
	suite.Contains(doc, "matches")
	suite.Contains(doc, "tournamentStarted")
}

// TestImport tests partial replacement and rejection of malformed documents
func (suite *TournamentServiceTestSuite) TestImport() {
	suite.expectSaves()

	_, err := suite.service.Import(suite.ctx, []byte(`{"teams": "nope"}`))
	suite.ErrorIs(err, apperrors.ErrMalformedImport)
	suite.Empty(suite.saved)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.Imports.WithLabelValues("rejected")))

	state, err := suite.service.Import(suite.ctx, []byte(`{"teams": [{"id": "Z", "name": "Zulu", "players": []}]}`))
	suite.Require().NoError(err)
	suite.Len(state.Teams, 1)
	suite.Equal("Zulu", state.Teams[0].Name)
	suite.False(state.TournamentStarted)
	suite.Len(suite.lastSaved().Teams, 1)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.Imports.WithLabelValues("accepted")))
}

// TestArchiveSnapshot tests uploading the export document
func (suite *TournamentServiceTestSuite) TestArchiveSnapshot() {
	export, err := suite.service.Export(suite.ctx)
	suite.Require().NoError(err)

	suite.mockArchiver.EXPECT().Archive(gomock.Any(), export.Body, suite.now).Return("s3://cup/key.json", nil)
	location, err := suite.service.ArchiveSnapshot(suite.ctx)
	suite.NoError(err)
	suite.Equal("s3://cup/key.json", location)

	suite.mockArchiver.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("access denied"))
	_, err = suite.service.ArchiveSnapshot(suite.ctx)
	suite.ErrorContains(err, "access denied")
}

// TestArchiveSnapshotNotConfigured tests the service without an archiver
func (suite *TournamentServiceTestSuite) TestArchiveSnapshotNotConfigured() {
	svc := service.NewTournamentService(suite.mockRepo, validator.New(), service.Options{})

	_, err := svc.ArchiveSnapshot(suite.ctx)
	suite.True(apperrors.IsValidation(err))
}

// TestPing tests the store health check
func (suite *TournamentServiceTestSuite) TestPing() {
	suite.mockRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("down"))
	suite.Error(suite.service.Ping(suite.ctx))
}

func TestTournamentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TournamentServiceTestSuite))
}
