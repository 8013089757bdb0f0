// Package tournament holds the bracket state machine for a 7-team single
// elimination tournament: seeding, score entry and winner propagation over an
// explicit, versioned State value. Every transition returns a new State and
// leaves its receiver untouched.
package tournament

// StateVersion is written into every serialized State.
const StateVersion = 1

// RosterSize is the only team count the bracket supports.
const RosterSize = 7

// Round ranks a match inside the bracket.
type Round int

const (
	RoundQuarterfinal Round = 1
	RoundSemifinal    Round = 2
	RoundFinal        Round = 3
)

// Slot is one of the two team positions of a match.
type Slot int

const (
	SlotFirst  Slot = 1
	SlotSecond Slot = 2
)

// IsValid checks if the Slot is one of the two team positions
func (s Slot) IsValid() bool {
	return s == SlotFirst || s == SlotSecond
}

// Match identifiers are fixed by the bracket topology.
const (
	MatchQuarterfinal1 = "qf1"
	MatchQuarterfinal2 = "qf2"
	MatchQuarterfinal3 = "qf3"
	MatchSemifinal1    = "sf1"
	MatchSemifinal2    = "sf2"
	MatchFinal         = "final"
)

// MatchStatus is derived from a match's slots, scores and winner.
type MatchStatus string

const (
	MatchStatusEmpty     MatchStatus = "empty"
	MatchStatusReady     MatchStatus = "ready"
	MatchStatusScored    MatchStatus = "scored"
	MatchStatusConfirmed MatchStatus = "confirmed"
)

// Player belongs to exactly one Team.
type Player struct {
	ID       string `json:"id" yaml:"id,omitempty" validate:"required"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Number   int    `json:"number" yaml:"number" validate:"min=0"`
	Position string `json:"position" yaml:"position"`
}

// Team is opaque to the bracket: only ID is consumed by seeding and propagation.
type Team struct {
	ID      string   `json:"id" yaml:"id,omitempty" validate:"required"`
	Name    string   `json:"name" yaml:"name" validate:"required"`
	Logo    string   `json:"logo,omitempty" yaml:"logo,omitempty"`
	Players []Player `json:"players" yaml:"players,omitempty" validate:"dive"`
}

// Match is a node of the bracket graph.
type Match struct {
	ID              string  `json:"id" validate:"required"`
	Round           Round   `json:"round" validate:"oneof=1 2 3"`
	Team1ID         *string `json:"team1Id"`
	Team2ID         *string `json:"team2Id"`
	Score1          *int    `json:"score1"`
	Score2          *int    `json:"score2"`
	WinnerID        *string `json:"winnerId"`
	NextMatchID     *string `json:"nextMatchId"`
	SlotInNextMatch Slot    `json:"slotInNextMatch,omitempty" validate:"oneof=0 1 2"`
}

// IsFrozen reports whether the match result has been confirmed.
func (m Match) IsFrozen() bool {
	return m.WinnerID != nil
}

// TeamIn returns the team assigned to slot, or nil.
func (m Match) TeamIn(slot Slot) *string {
	if slot == SlotSecond {
		return m.Team2ID
	}
	return m.Team1ID
}

// HasBothTeams reports whether both slots are filled.
func (m Match) HasBothTeams() bool {
	return m.Team1ID != nil && m.Team2ID != nil
}

// Status derives the per-match state machine position.
// A match with two teams counts as scored once either score is positive.
func (m Match) Status() MatchStatus {
	switch {
	case m.IsFrozen():
		return MatchStatusConfirmed
	case !m.HasBothTeams():
		return MatchStatusEmpty
	case positive(m.Score1) || positive(m.Score2):
		return MatchStatusScored
	default:
		return MatchStatusReady
	}
}

func (m Match) clone() Match {
	c := m
	c.Team1ID = cloneString(m.Team1ID)
	c.Team2ID = cloneString(m.Team2ID)
	c.Score1 = cloneInt(m.Score1)
	c.Score2 = cloneInt(m.Score2)
	c.WinnerID = cloneString(m.WinnerID)
	c.NextMatchID = cloneString(m.NextMatchID)
	return c
}

func (t Team) clone() Team {
	c := t
	c.Players = make([]Player, len(t.Players))
	copy(c.Players, t.Players)
	return c
}

func positive(v *int) bool {
	return v != nil && *v > 0
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func stringPtr(v string) *string { return &v }
func intPtr(v int) *int          { return &v }
