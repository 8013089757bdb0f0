package tournament

import (
	"fmt"
	"math/rand/v2"

	apperrors "knockout-tournament-backend/internal/errors"
)

// Shuffler permutes team ids in place.
type Shuffler func(ids []string)

// FisherYates returns a uniform Shuffler drawing from r, or from the global
// source when r is nil.
func FisherYates(r *rand.Rand) Shuffler {
	return func(ids []string) {
		swap := func(i, j int) { ids[i], ids[j] = ids[j], ids[i] }
		if r == nil {
			rand.Shuffle(len(ids), swap)
			return
		}
		r.Shuffle(len(ids), swap)
	}
}

// edge describes where a match's winner goes.
type edge struct {
	next string
	slot Slot
}

// topology is the fixed 7-team bracket: three quarterfinals, two semifinals
// (sf2 holds the bye in its second slot) and the final.
var topology = []struct {
	id    string
	round Round
	to    *edge
}{
	{MatchQuarterfinal1, RoundQuarterfinal, &edge{MatchSemifinal1, SlotFirst}},
	{MatchQuarterfinal2, RoundQuarterfinal, &edge{MatchSemifinal1, SlotSecond}},
	{MatchQuarterfinal3, RoundQuarterfinal, &edge{MatchSemifinal2, SlotFirst}},
	{MatchSemifinal1, RoundSemifinal, &edge{MatchFinal, SlotFirst}},
	{MatchSemifinal2, RoundSemifinal, &edge{MatchFinal, SlotSecond}},
	{MatchFinal, RoundFinal, nil},
}

// BuildBracket seeds the 6-match bracket from exactly 7 teams. Shuffled
// positions 0-5 are paired into the quarterfinals and position 6 receives the
// bye straight into the second slot of sf2.
func BuildBracket(teams []Team, shuffle Shuffler) ([]Match, error) {
	if len(teams) != RosterSize {
		return nil, apperrors.NewInvalidRosterSizeError(len(teams))
	}
	if shuffle == nil {
		shuffle = FisherYates(nil)
	}

	ids := make([]string, len(teams))
	seen := make(map[string]struct{}, len(teams))
	for i, t := range teams {
		if t.ID == "" {
			return nil, apperrors.NewValidationError("teams", fmt.Sprintf("team at position %d has no id", i))
		}
		if _, dup := seen[t.ID]; dup {
			return nil, apperrors.NewValidationError("teams", fmt.Sprintf("duplicate team id %q", t.ID))
		}
		seen[t.ID] = struct{}{}
		ids[i] = t.ID
	}
	shuffle(ids)

	matches := make([]Match, 0, len(topology))
	for _, node := range topology {
		m := Match{ID: node.id, Round: node.round}
		if node.to != nil {
			m.NextMatchID = stringPtr(node.to.next)
			m.SlotInNextMatch = node.to.slot
		}
		matches = append(matches, m)
	}

	for i := 0; i < 3; i++ {
		qf := &matches[i]
		qf.Team1ID = stringPtr(ids[2*i])
		qf.Team2ID = stringPtr(ids[2*i+1])
		qf.Score1 = intPtr(0)
		qf.Score2 = intPtr(0)
	}
	matches[4].Team2ID = stringPtr(ids[6])

	return matches, nil
}

// ByeTeam returns the team seeded directly into the second round, if any.
func ByeTeam(matches []Match) (string, bool) {
	fed := make(map[string]map[Slot]bool)
	for _, m := range matches {
		if m.Round == RoundQuarterfinal && m.NextMatchID != nil {
			if fed[*m.NextMatchID] == nil {
				fed[*m.NextMatchID] = make(map[Slot]bool)
			}
			fed[*m.NextMatchID][m.SlotInNextMatch] = true
		}
	}
	for _, m := range matches {
		if m.Round != RoundSemifinal {
			continue
		}
		for _, slot := range []Slot{SlotFirst, SlotSecond} {
			if id := m.TeamIn(slot); id != nil && !fed[m.ID][slot] {
				return *id, true
			}
		}
	}
	return "", false
}

// ValidateBracket checks the invariants of a generated bracket: six matches
// split 3/2/1 by round, resolvable successor pointers that each feed one
// distinct slot of the following round, winners that play in their own match,
// and confirmed results that agree with the slots they feed.
func ValidateBracket(matches []Match) error {
	if len(matches) != len(topology) {
		return fmt.Errorf("bracket must have %d matches, got %d", len(topology), len(matches))
	}

	byID := make(map[string]Match, len(matches))
	perRound := make(map[Round]int)
	for _, m := range matches {
		if m.ID == "" {
			return fmt.Errorf("match without id")
		}
		if _, dup := byID[m.ID]; dup {
			return fmt.Errorf("duplicate match id %q", m.ID)
		}
		byID[m.ID] = m
		perRound[m.Round]++
	}
	if perRound[RoundQuarterfinal] != 3 || perRound[RoundSemifinal] != 2 || perRound[RoundFinal] != 1 {
		return fmt.Errorf("bracket must have 3 quarterfinals, 2 semifinals and 1 final")
	}

	targets := make(map[string]bool)
	for _, m := range matches {
		if m.WinnerID != nil {
			if !sameID(m.WinnerID, m.Team1ID) && !sameID(m.WinnerID, m.Team2ID) {
				return fmt.Errorf("match %q winner is not one of its teams", m.ID)
			}
		}
		if m.Score1 != nil && *m.Score1 < 0 || m.Score2 != nil && *m.Score2 < 0 {
			return fmt.Errorf("match %q has a negative score", m.ID)
		}
		if m.Round == RoundFinal {
			if m.NextMatchID != nil {
				return fmt.Errorf("final %q must not have a successor", m.ID)
			}
			continue
		}
		if m.NextMatchID == nil {
			return fmt.Errorf("match %q has no successor", m.ID)
		}
		next, ok := byID[*m.NextMatchID]
		if !ok {
			return fmt.Errorf("match %q points to unknown match %q", m.ID, *m.NextMatchID)
		}
		if next.Round != m.Round+1 {
			return fmt.Errorf("match %q must feed a match of the following round", m.ID)
		}
		if !m.SlotInNextMatch.IsValid() {
			return fmt.Errorf("match %q has an invalid successor slot", m.ID)
		}
		key := fmt.Sprintf("%s/%d", next.ID, m.SlotInNextMatch)
		if targets[key] {
			return fmt.Errorf("two matches feed slot %d of %q", m.SlotInNextMatch, next.ID)
		}
		targets[key] = true
	}
	return checkProgress(matches)
}

// checkProgress checks that confirmed results agree with the slots they feed:
// every slot without a feeder (quarterfinals and the bye) holds a distinct
// team, a fed slot holds exactly its feeder's winner, and a match is frozen
// only after all of its feeders are.
func checkProgress(matches []Match) error {
	feeders := make(map[string]map[Slot]Match)
	for _, m := range matches {
		if m.NextMatchID == nil {
			continue
		}
		if feeders[*m.NextMatchID] == nil {
			feeders[*m.NextMatchID] = make(map[Slot]Match)
		}
		feeders[*m.NextMatchID][m.SlotInNextMatch] = m
	}

	seeded := make(map[string]bool)
	for _, m := range matches {
		for _, slot := range []Slot{SlotFirst, SlotSecond} {
			team := m.TeamIn(slot)
			feeder, fed := feeders[m.ID][slot]
			switch {
			case !fed:
				if team == nil {
					return fmt.Errorf("match %q slot %d has neither a team nor a feeder", m.ID, slot)
				}
				if seeded[*team] {
					return fmt.Errorf("team %q is seeded twice", *team)
				}
				seeded[*team] = true
			case feeder.WinnerID == nil:
				if team != nil {
					return fmt.Errorf("match %q slot %d holds a team before %q is confirmed", m.ID, slot, feeder.ID)
				}
				if m.WinnerID != nil {
					return fmt.Errorf("match %q is confirmed before %q", m.ID, feeder.ID)
				}
			default:
				if !sameID(team, feeder.WinnerID) {
					return fmt.Errorf("winner of %q is missing from slot %d of %q", feeder.ID, slot, m.ID)
				}
			}
		}
	}
	if len(seeded) != RosterSize {
		return fmt.Errorf("bracket must seed %d teams, got %d", RosterSize, len(seeded))
	}
	return nil
}

func sameID(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
