package service_test

import (
	"context"
	"testing"

	"knockout-tournament-backend/internal/database/models"
	apperrors "knockout-tournament-backend/internal/errors"
	"knockout-tournament-backend/internal/mocks"
	"knockout-tournament-backend/internal/service"
	"knockout-tournament-backend/internal/tournament"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamServiceTestSuite defines the test suite for roster management
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockStateRepositoryInterface
	service  *service.TournamentService
	ctx      context.Context
	saves    int
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockStateRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()
	suite.saves = 0

	suite.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *models.StateSnapshot) error {
			suite.saves++
			return nil
		}).AnyTimes()

	suite.service = service.NewTournamentService(suite.mockRepo, validator.New(), service.Options{
		DefaultRoster: lettersRoster,
		Shuffle:       func([]string) {},
	})
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListAndGetTeams tests reading the roster
func (suite *TeamServiceTestSuite) TestListAndGetTeams() {
	teams, err := suite.service.ListTeams(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(teams, tournament.RosterSize)
	suite.Equal("A", teams[0].ID)
	suite.NotNil(teams[0].Players)

	team, err := suite.service.GetTeam(suite.ctx, "C")
	suite.Require().NoError(err)
	suite.Equal("Team C", team.Name)

	_, err = suite.service.GetTeam(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.Equal(0, suite.saves)
}

// TestCreateTeam tests creating a team with players
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	suite.Require().NoError(suite.service.DeleteTeam(suite.ctx, "G"))

	team, err := suite.service.CreateTeam(suite.ctx, &service.CreateTeamRequest{
		Name: "Harbor Kings",
		Logo: "https://example.com/kings.png",
		Players: []service.AddPlayerRequest{
			{Name: "Mia Lopez", Number: 7, Position: "Forward"},
		},
	})
	suite.Require().NoError(err)
	suite.NotEmpty(team.ID)
	suite.Equal("Harbor Kings", team.Name)
	suite.Require().Len(team.Players, 1)
	suite.NotEmpty(team.Players[0].ID)
	suite.Equal(2, suite.saves)

	teams, err := suite.service.ListTeams(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(teams, tournament.RosterSize)
}

// TestCreateTeamValidation tests request validation
func (suite *TeamServiceTestSuite) TestCreateTeamValidation() {
	testCases := []struct {
		name    string
		request *service.CreateTeamRequest
	}{
		{"missing name", &service.CreateTeamRequest{}},
		{"name too long", &service.CreateTeamRequest{Name: string(make([]byte, 101))}},
		{"invalid player", &service.CreateTeamRequest{Name: "Kings", Players: []service.AddPlayerRequest{{Name: "", Number: 1}}}},
		{"negative number", &service.CreateTeamRequest{Name: "Kings", Players: []service.AddPlayerRequest{{Name: "Mia", Number: -1}}}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.CreateTeam(suite.ctx, tc.request)
			suite.True(apperrors.IsValidation(err))
		})
	}

	_, err := suite.service.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: "   "})
	suite.True(apperrors.IsValidation(err))
	suite.Equal(0, suite.saves)
}

// TestUpdateTeam tests editing name and logo, including after the tournament starts
func (suite *TeamServiceTestSuite) TestUpdateTeam() {
	name := "Alpha Wolves"
	team, err := suite.service.UpdateTeam(suite.ctx, "A", &service.UpdateTeamRequest{Name: &name})
	suite.Require().NoError(err)
	suite.Equal("Alpha Wolves", team.Name)

	_, err = suite.service.GenerateBracket(suite.ctx)
	suite.Require().NoError(err)

	logo := "https://example.com/wolves.png"
	team, err = suite.service.UpdateTeam(suite.ctx, "A", &service.UpdateTeamRequest{Logo: &logo})
	suite.Require().NoError(err)
	suite.Equal("Alpha Wolves", team.Name)
	suite.Equal(logo, team.Logo)

	empty := ""
	_, err = suite.service.UpdateTeam(suite.ctx, "A", &service.UpdateTeamRequest{Name: &empty})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.UpdateTeam(suite.ctx, "missing", &service.UpdateTeamRequest{Name: &name})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestRosterIsLockedOnceStarted tests that teams cannot be added or removed after generation
func (suite *TeamServiceTestSuite) TestRosterIsLockedOnceStarted() {
	_, err := suite.service.GenerateBracket(suite.ctx)
	suite.Require().NoError(err)

	_, err = suite.service.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: "Late Comers"})
	suite.ErrorIs(err, apperrors.ErrTournamentAlreadyStarted)

	err = suite.service.DeleteTeam(suite.ctx, "A")
	suite.ErrorIs(err, apperrors.ErrTournamentAlreadyStarted)
	suite.True(apperrors.IsConflict(err))
}

// TestPlayers tests adding and removing players
func (suite *TeamServiceTestSuite) TestPlayers() {
	player, err := suite.service.AddPlayer(suite.ctx, "B", &service.AddPlayerRequest{Name: " Bo ", Number: 11, Position: "Guard"})
	suite.Require().NoError(err)
	suite.NotEmpty(player.ID)
	suite.Equal("Bo", player.Name)

	team, err := suite.service.GetTeam(suite.ctx, "B")
	suite.Require().NoError(err)
	suite.Len(team.Players, 1)

	_, err = suite.service.AddPlayer(suite.ctx, "B", &service.AddPlayerRequest{Name: "Al", Number: 1000})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.AddPlayer(suite.ctx, "missing", &service.AddPlayerRequest{Name: "Al"})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	suite.Require().NoError(suite.service.RemovePlayer(suite.ctx, "B", player.ID))
	err = suite.service.RemovePlayer(suite.ctx, "B", player.ID)
	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)
	suite.Equal(2, suite.saves)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
