package testutils

import (
	"fmt"

	"knockout-tournament-backend/internal/tournament"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	seq int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique id and name
func (f *TeamFactory) Create() tournament.Team {
	f.seq++
	return tournament.Team{
		ID:      uuid.NewString(),
		Name:    fmt.Sprintf("Test Team %d", f.seq),
		Logo:    "",
		Players: []tournament.Player{},
	}
}

// WithName creates a test Team with a custom name
func (f *TeamFactory) WithName(name string) tournament.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithPlayers creates a test Team with the given number of players
func (f *TeamFactory) WithPlayers(n int) tournament.Team {
	team := f.Create()
	for i := 1; i <= n; i++ {
		team.Players = append(team.Players, tournament.Player{
			ID:       uuid.NewString(),
			Name:     fmt.Sprintf("Player %d", i),
			Number:   i,
			Position: "Forward",
		})
	}
	return team
}

// Roster creates n test teams
func (f *TeamFactory) Roster(n int) []tournament.Team {
	teams := make([]tournament.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, f.Create())
	}
	return teams
}

// StateFactory provides methods to create test tournament states
type StateFactory struct {
	Teams *TeamFactory
}

// NewStateFactory creates a new StateFactory
func NewStateFactory(teams *TeamFactory) *StateFactory {
	return &StateFactory{Teams: teams}
}

// NotStarted creates a state with a full roster and no bracket
func (f *StateFactory) NotStarted() tournament.State {
	return tournament.NewState(f.Teams.Roster(tournament.RosterSize))
}

// Started creates a state with a generated bracket in roster order
func (f *StateFactory) Started() tournament.State {
	state, err := f.NotStarted().GenerateBracket(func([]string) {})
	if err != nil {
		panic(fmt.Sprintf("generate test bracket: %v", err))
	}
	return state
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Team  *TeamFactory
	State *StateFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	teams := NewTeamFactory()
	return &FactorySet{
		Team:  teams,
		State: NewStateFactory(teams),
	}
}
