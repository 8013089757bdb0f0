package tournament

import (
	"fmt"
	"strings"

	apperrors "knockout-tournament-backend/internal/errors"
)

// State is the whole tournament: roster, bracket and the started flag.
type State struct {
	Version           int     `json:"version"`
	Teams             []Team  `json:"teams"`
	Matches           []Match `json:"matches"`
	TournamentStarted bool    `json:"tournamentStarted"`
}

// NewState returns a not-started state over the given roster.
func NewState(teams []Team) State {
	if teams == nil {
		teams = []Team{}
	}
	return State{
		Version: StateVersion,
		Teams:   cloneTeams(teams),
		Matches: []Match{},
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	c.Teams = cloneTeams(s.Teams)
	c.Matches = cloneMatches(s.Matches)
	if c.Teams == nil {
		c.Teams = []Team{}
	}
	if c.Matches == nil {
		c.Matches = []Match{}
	}
	return c
}

// GenerateBracket seeds the bracket and marks the tournament started. It can
// run once per tournament.
func (s State) GenerateBracket(shuffle Shuffler) (State, error) {
	if s.TournamentStarted {
		return s, apperrors.ErrTournamentAlreadyStarted
	}
	matches, err := BuildBracket(s.Teams, shuffle)
	if err != nil {
		return s, err
	}
	next := s.Clone()
	next.Matches = matches
	next.TournamentStarted = true
	return next, nil
}

// SetScore records a score for one slot of a match.
func (s State) SetScore(matchID string, slot Slot, value int) (State, Match, error) {
	matches, m, err := SetScore(s.Matches, matchID, slot, value)
	if err != nil {
		return s, Match{}, err
	}
	next := s.Clone()
	next.Matches = matches
	return next, m, nil
}

// ConfirmResult freezes a match and propagates its winner.
func (s State) ConfirmResult(matchID string) (State, Outcome, error) {
	matches, outcome, err := ConfirmResult(s.Matches, matchID)
	if err != nil {
		return s, Outcome{}, err
	}
	next := s.Clone()
	next.Matches = matches
	return next, outcome, nil
}

// Champion returns the winner of the final once confirmed.
func (s State) Champion() (string, bool) {
	return Champion(s.Matches)
}

// FindMatch looks a match up by id.
func (s State) FindMatch(id string) (Match, bool) {
	if i := indexOf(s.Matches, id); i >= 0 {
		return s.Matches[i].clone(), true
	}
	return Match{}, false
}

// FindTeam looks a team up by id.
func (s State) FindTeam(id string) (Team, bool) {
	if i := indexOfTeam(s.Teams, id); i >= 0 {
		return s.Teams[i].clone(), true
	}
	return Team{}, false
}

// AddTeam appends a team to the roster. Not allowed once started.
func (s State) AddTeam(name, logo string, players []Player) (State, Team, error) {
	if s.TournamentStarted {
		return s, Team{}, apperrors.ErrTournamentAlreadyStarted
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return s, Team{}, apperrors.NewValidationError("name", "team name is required")
	}
	team := Team{ID: NewID(), Name: name, Logo: strings.TrimSpace(logo), Players: []Player{}}
	for _, p := range players {
		p.ID = NewID()
		team.Players = append(team.Players, p)
	}
	next := s.Clone()
	next.Teams = append(next.Teams, team)
	return next, team.clone(), nil
}

// UpdateTeam edits the name and/or logo of a team. Nil fields are left as is.
func (s State) UpdateTeam(id string, name, logo *string) (State, Team, error) {
	next := s.Clone()
	i := indexOfTeam(next.Teams, id)
	if i < 0 {
		return s, Team{}, apperrors.ErrTeamNotFound
	}
	t := &next.Teams[i]
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return s, Team{}, apperrors.NewValidationError("name", "team name is required")
		}
		t.Name = trimmed
	}
	if logo != nil {
		t.Logo = strings.TrimSpace(*logo)
	}
	return next, t.clone(), nil
}

// RemoveTeam deletes a team from the roster. Not allowed once started.
func (s State) RemoveTeam(id string) (State, error) {
	if s.TournamentStarted {
		return s, apperrors.ErrTournamentAlreadyStarted
	}
	i := indexOfTeam(s.Teams, id)
	if i < 0 {
		return s, apperrors.ErrTeamNotFound
	}
	next := s.Clone()
	next.Teams = append(next.Teams[:i], next.Teams[i+1:]...)
	return next, nil
}

// AddPlayer adds a player to a team, generating its id.
func (s State) AddPlayer(teamID string, p Player) (State, Player, error) {
	next := s.Clone()
	i := indexOfTeam(next.Teams, teamID)
	if i < 0 {
		return s, Player{}, apperrors.ErrTeamNotFound
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return s, Player{}, apperrors.NewValidationError("name", "player name is required")
	}
	if p.Number < 0 {
		return s, Player{}, apperrors.NewValidationError("number", "jersey number must not be negative")
	}
	p.ID = NewID()
	p.Position = strings.TrimSpace(p.Position)
	next.Teams[i].Players = append(next.Teams[i].Players, p)
	return next, p, nil
}

// RemovePlayer deletes a player from its team.
func (s State) RemovePlayer(teamID, playerID string) (State, error) {
	next := s.Clone()
	i := indexOfTeam(next.Teams, teamID)
	if i < 0 {
		return s, apperrors.ErrTeamNotFound
	}
	players := next.Teams[i].Players
	for j := range players {
		if players[j].ID == playerID {
			next.Teams[i].Players = append(players[:j], players[j+1:]...)
			return next, nil
		}
	}
	return s, apperrors.ErrPlayerNotFound
}

// Validate checks the state-level invariants: a started tournament has a
// well-formed bracket over teams on its roster, a not-started one has none.
func (s State) Validate() error {
	if s.TournamentStarted {
		if err := ValidateBracket(s.Matches); err != nil {
			return fmt.Errorf("invalid bracket: %w", err)
		}
		roster := make(map[string]bool, len(s.Teams))
		for _, t := range s.Teams {
			roster[t.ID] = true
		}
		for _, m := range s.Matches {
			for _, id := range []*string{m.Team1ID, m.Team2ID, m.WinnerID} {
				if id != nil && !roster[*id] {
					return fmt.Errorf("match %q references team %q which is not on the roster", m.ID, *id)
				}
			}
		}
		return nil
	}
	if len(s.Matches) != 0 {
		return fmt.Errorf("matches exist but the tournament is not started")
	}
	return nil
}
