package tournament

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// NewID generates team and player identifiers.
var NewID = uuid.NewString

var defaultTeamNames = []string{
	"Red Lions",
	"Blue Sharks",
	"Green Hornets",
	"Golden Eagles",
	"Black Panthers",
	"Silver Wolves",
	"White Tigers",
}

// DefaultRoster returns a fresh 7-team roster with newly generated ids.
func DefaultRoster() []Team {
	teams := make([]Team, len(defaultTeamNames))
	for i, name := range defaultTeamNames {
		teams[i] = Team{ID: NewID(), Name: name, Players: []Player{}}
	}
	return teams
}

// RosterFactory returns a roster source that hands out a copy of teams with
// freshly generated team and player ids on every call, so a reset never
// brings back ids from an earlier tournament.
func RosterFactory(teams []Team) func() []Team {
	template := cloneTeams(teams)
	return func() []Team {
		out := cloneTeams(template)
		for i := range out {
			out[i].ID = NewID()
			for j := range out[i].Players {
				out[i].Players[j].ID = NewID()
			}
		}
		return out
	}
}

// RosterFile is the YAML layout accepted by LoadRosterFile.
type RosterFile struct {
	Teams []Team `yaml:"teams"`
}

// LoadRosterFile reads a roster from a YAML file. Teams and players without
// an id get one generated.
func LoadRosterFile(path string) ([]Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes a YAML roster document.
func ParseRoster(data []byte) ([]Team, error) {
	var file RosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(file.Teams) == 0 {
		return nil, fmt.Errorf("parse roster: no teams defined")
	}

	seen := make(map[string]struct{}, len(file.Teams))
	for i := range file.Teams {
		t := &file.Teams[i]
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			return nil, fmt.Errorf("parse roster: team %d has no name", i+1)
		}
		if t.ID == "" {
			t.ID = NewID()
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("parse roster: duplicate team id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.Players == nil {
			t.Players = []Player{}
		}
		for j := range t.Players {
			if t.Players[j].ID == "" {
				t.Players[j].ID = NewID()
			}
		}
	}
	return file.Teams, nil
}

func indexOfTeam(teams []Team, id string) int {
	for i := range teams {
		if teams[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTeams(teams []Team) []Team {
	if teams == nil {
		return nil
	}
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = t.clone()
	}
	return out
}
