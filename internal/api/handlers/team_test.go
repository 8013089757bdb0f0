package handlers_test

import (
	"net/http"
	"testing"

	"knockout-tournament-backend/internal/api/handlers"
	apperrors "knockout-tournament-backend/internal/errors"
	"knockout-tournament-backend/internal/mocks"
	"knockout-tournament-backend/internal/service"
	"knockout-tournament-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.GET("", suite.handler.ListTeams)
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/players", suite.handler.AddPlayer)
		teams.DELETE("/:id/players/:playerId", suite.handler.RemovePlayer)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListTeams tests listing the roster
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.mockService.EXPECT().ListTeams(gomock.Any()).Return([]service.TeamResponse{
		{ID: "A", Name: "Alpha", Players: []service.PlayerResponse{}},
		{ID: "B", Name: "Bravo", Players: []service.PlayerResponse{}},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams", nil)

	var response []service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
	suite.Equal("Bravo", response[1].Name)
}

// TestGetTeam tests fetching one team and the not found mapping
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.mockService.EXPECT().GetTeam(gomock.Any(), "A").Return(&service.TeamResponse{ID: "A", Name: "Alpha"}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/A", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, nil)

	suite.mockService.EXPECT().GetTeam(gomock.Any(), "nope").Return(nil, apperrors.ErrTeamNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/nope", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

// TestCreateTeam tests creating a team
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.mockService.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req *service.CreateTeamRequest) (*service.TeamResponse, error) {
			suite.Equal("Harbor Kings", req.Name)
			suite.Require().Len(req.Players, 1)
			suite.Equal(7, req.Players[0].Number)
			return &service.TeamResponse{ID: "new-id", Name: req.Name}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
		"name":    "Harbor Kings",
		"players": []map[string]interface{}{{"name": "Mia", "number": 7}},
	})
	var response service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("new-id", response.ID)

	suite.mockService.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTournamentAlreadyStarted)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "Late"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already started")

	recorder = suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/teams", []byte("invalid json"), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

// TestUpdateTeam tests partial updates
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.mockService.EXPECT().UpdateTeam(gomock.Any(), "A", gomock.Any()).DoAndReturn(
		func(_ interface{}, _ string, req *service.UpdateTeamRequest) (*service.TeamResponse, error) {
			suite.Nil(req.Name)
			suite.Require().NotNil(req.Logo)
			return &service.TeamResponse{ID: "A", Name: "Alpha", Logo: *req.Logo}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/A", map[string]interface{}{"logo": "https://example.com/a.png"})
	var response service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("https://example.com/a.png", response.Logo)

	suite.mockService.EXPECT().UpdateTeam(gomock.Any(), "A", gomock.Any()).Return(nil, apperrors.NewValidationError("name", "team name is required"))
	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/A", map[string]interface{}{"name": " "})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "team name is required")
}

// TestDeleteTeam tests deleting a team
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.mockService.EXPECT().DeleteTeam(gomock.Any(), "A").Return(nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/A", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	suite.mockService.EXPECT().DeleteTeam(gomock.Any(), "A").Return(apperrors.ErrTournamentAlreadyStarted)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/A", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already started")
}

// TestPlayers tests adding and removing players
func (suite *TeamHandlerTestSuite) TestPlayers() {
	suite.mockService.EXPECT().AddPlayer(gomock.Any(), "A", gomock.Any()).Return(&service.PlayerResponse{ID: "p1", Name: "Mia", Number: 7}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/A/players", map[string]interface{}{"name": "Mia", "number": 7})
	var player service.PlayerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &player)
	suite.Equal("p1", player.ID)

	suite.mockService.EXPECT().RemovePlayer(gomock.Any(), "A", "p1").Return(nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/A/players/p1", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	suite.mockService.EXPECT().RemovePlayer(gomock.Any(), "A", "p1").Return(apperrors.ErrPlayerNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/A/players/p1", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "player not found")
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
