package tournament

import (
	"math"
	"strconv"
	"strings"

	apperrors "knockout-tournament-backend/internal/errors"

	"github.com/spf13/cast"
)

// Outcome is the result of confirming one match.
type Outcome struct {
	Match      Match   `json:"match"`
	NextMatch  *Match  `json:"nextMatch,omitempty"`
	ChampionID *string `json:"championId,omitempty"`
}

// CoerceScore maps raw score input to a non-negative integer. Numbers are
// truncated, numeric strings parsed, and anything else becomes 0.
func CoerceScore(value any) int {
	var n int
	switch v := value.(type) {
	case nil, bool:
		return 0
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		n = clampInt(parsed)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		n = clampInt(v)
	default:
		var err error
		n, err = cast.ToIntE(v)
		if err != nil {
			return 0
		}
	}
	if n < 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return n
}

func clampInt(f float64) int {
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < 0 {
		return 0
	}
	return int(f)
}

// SetScore records value for slot of the given match. The match must be
// unfrozen and the slot must hold a team. Other matches are not touched.
func SetScore(matches []Match, matchID string, slot Slot, value int) ([]Match, Match, error) {
	if !slot.IsValid() {
		return nil, Match{}, apperrors.NewValidationError("slot", "slot must be 1 or 2")
	}
	if value < 0 {
		value = 0
	}

	out := cloneMatches(matches)
	i := indexOf(out, matchID)
	if i < 0 {
		return nil, Match{}, apperrors.ErrMatchNotFound
	}
	m := &out[i]
	if m.IsFrozen() {
		return nil, Match{}, apperrors.ErrMatchFrozen
	}
	if m.TeamIn(slot) == nil {
		return nil, Match{}, apperrors.ErrSlotNotAssigned
	}

	if slot == SlotFirst {
		m.Score1 = intPtr(value)
	} else {
		m.Score2 = intPtr(value)
	}
	return out, m.clone(), nil
}

// ConfirmResult freezes a match with its strict winner and writes that winner
// into the designated slot of the successor, whose scores reset to 0/0 and
// winner to null. Any scoring already entered on the successor is discarded.
// A frozen successor is never overwritten. Confirming the final yields the
// champion.
func ConfirmResult(matches []Match, matchID string) ([]Match, Outcome, error) {
	out := cloneMatches(matches)
	i := indexOf(out, matchID)
	if i < 0 {
		return nil, Outcome{}, apperrors.ErrMatchNotFound
	}
	m := &out[i]

	switch {
	case m.IsFrozen():
		return nil, Outcome{}, apperrors.ErrMatchFrozen
	case !m.HasBothTeams():
		return nil, Outcome{}, apperrors.ErrMatchNotReady
	case m.Score1 == nil || m.Score2 == nil:
		return nil, Outcome{}, apperrors.ErrIncompleteScore
	case *m.Score1 == *m.Score2:
		return nil, Outcome{}, apperrors.ErrTiedScore
	}

	winner := *m.Team2ID
	if *m.Score1 > *m.Score2 {
		winner = *m.Team1ID
	}
	m.WinnerID = stringPtr(winner)

	outcome := Outcome{Match: m.clone()}
	if m.NextMatchID == nil {
		outcome.ChampionID = stringPtr(winner)
		return out, outcome, nil
	}

	j := indexOf(out, *m.NextMatchID)
	if j < 0 {
		return nil, Outcome{}, apperrors.ErrMatchNotFound
	}
	next := &out[j]
	if next.IsFrozen() {
		return nil, Outcome{}, apperrors.ErrMatchFrozen
	}
	if m.SlotInNextMatch == SlotSecond {
		next.Team2ID = stringPtr(winner)
	} else {
		next.Team1ID = stringPtr(winner)
	}
	next.Score1 = intPtr(0)
	next.Score2 = intPtr(0)
	next.WinnerID = nil

	nextCopy := next.clone()
	outcome.NextMatch = &nextCopy
	return out, outcome, nil
}

// Champion returns the winner of the final once it is confirmed.
func Champion(matches []Match) (string, bool) {
	for _, m := range matches {
		if m.Round == RoundFinal && m.NextMatchID == nil && m.WinnerID != nil {
			return *m.WinnerID, true
		}
	}
	return "", false
}

func indexOf(matches []Match, id string) int {
	for i := range matches {
		if matches[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneMatches(matches []Match) []Match {
	if matches == nil {
		return nil
	}
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = m.clone()
	}
	return out
}
