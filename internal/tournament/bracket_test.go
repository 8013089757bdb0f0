package tournament

import (
	"math/rand/v2"
	"testing"

	apperrors "knockout-tournament-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noShuffle([]string) {}

func lettersRoster() []Team {
	teams := make([]Team, 0, RosterSize)
	for _, id := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		teams = append(teams, Team{ID: id, Name: "Team " + id, Players: []Player{}})
	}
	return teams
}

func rosterOfSize(n int) []Team {
	teams := make([]Team, n)
	for i := range teams {
		teams[i] = Team{ID: NewID(), Name: "team"}
	}
	return teams
}

func TestBuildBracketRejectsInvalidRosterSize(t *testing.T) {
	for n := 0; n <= 10; n++ {
		if n == RosterSize {
			continue
		}
		matches, err := BuildBracket(rosterOfSize(n), noShuffle)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRosterSize, "size %d", n)
		assert.Nil(t, matches, "size %d", n)
	}
}

func TestBuildBracketRejectsDuplicateOrMissingIDs(t *testing.T) {
	teams := lettersRoster()
	teams[3].ID = "A"
	_, err := BuildBracket(teams, noShuffle)
	assert.True(t, apperrors.IsValidation(err))

	teams = lettersRoster()
	teams[0].ID = ""
	_, err = BuildBracket(teams, noShuffle)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBuildBracketStructure(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	teams := lettersRoster()

	matches, err := BuildBracket(teams, FisherYates(r))
	require.NoError(t, err)
	require.Len(t, matches, 6)
	require.NoError(t, ValidateBracket(matches))

	perRound := map[Round]int{}
	for _, m := range matches {
		perRound[m.Round]++
	}
	assert.Equal(t, 3, perRound[RoundQuarterfinal])
	assert.Equal(t, 2, perRound[RoundSemifinal])
	assert.Equal(t, 1, perRound[RoundFinal])

	placed := map[string]int{}
	for _, m := range matches[:3] {
		require.True(t, m.HasBothTeams())
		assert.Equal(t, 0, *m.Score1)
		assert.Equal(t, 0, *m.Score2)
		assert.Nil(t, m.WinnerID)
		placed[*m.Team1ID]++
		placed[*m.Team2ID]++
	}

	bye, ok := ByeTeam(matches)
	require.True(t, ok)
	assert.NotContains(t, placed, bye)
	placed[bye]++
	for _, team := range teams {
		assert.Equal(t, 1, placed[team.ID], "team %s", team.ID)
	}

	sf1, sf2, final := matches[3], matches[4], matches[5]
	assert.Nil(t, sf1.Team1ID)
	assert.Nil(t, sf1.Team2ID)
	assert.Nil(t, sf1.Score1)
	assert.Nil(t, sf2.Team1ID)
	require.NotNil(t, sf2.Team2ID)
	assert.Equal(t, bye, *sf2.Team2ID)
	assert.Nil(t, sf2.Score1)
	assert.Nil(t, final.Team1ID)
	assert.Nil(t, final.Team2ID)
	assert.Nil(t, final.NextMatchID)
	assert.Equal(t, MatchStatusEmpty, final.Status())
}

func TestBuildBracketWiring(t *testing.T) {
	matches, err := BuildBracket(lettersRoster(), noShuffle)
	require.NoError(t, err)

	expected := []struct {
		id    string
		t1    string
		t2    string
		next  string
		slot  Slot
		round Round
	}{
		{MatchQuarterfinal1, "A", "B", MatchSemifinal1, SlotFirst, RoundQuarterfinal},
		{MatchQuarterfinal2, "C", "D", MatchSemifinal1, SlotSecond, RoundQuarterfinal},
		{MatchQuarterfinal3, "E", "F", MatchSemifinal2, SlotFirst, RoundQuarterfinal},
		{MatchSemifinal1, "", "", MatchFinal, SlotFirst, RoundSemifinal},
		{MatchSemifinal2, "", "G", MatchFinal, SlotSecond, RoundSemifinal},
	}
	for i, e := range expected {
		m := matches[i]
		assert.Equal(t, e.id, m.ID)
		assert.Equal(t, e.round, m.Round)
		require.NotNil(t, m.NextMatchID)
		assert.Equal(t, e.next, *m.NextMatchID)
		assert.Equal(t, e.slot, m.SlotInNextMatch)
		if e.t1 != "" {
			assert.Equal(t, e.t1, *m.Team1ID)
		}
		if e.t2 != "" {
			assert.Equal(t, e.t2, *m.Team2ID)
		}
	}
}

func TestBuildBracketDoesNotReorderInput(t *testing.T) {
	teams := lettersRoster()
	_, err := BuildBracket(teams, FisherYates(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)
	assert.Equal(t, lettersRoster(), teams)
}

func TestFisherYatesGivesEveryTeamTheBye(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1024))
	shuffle := FisherYates(r)
	byes := map[string]int{}
	for i := 0; i < 2000; i++ {
		matches, err := BuildBracket(lettersRoster(), shuffle)
		require.NoError(t, err)
		bye, ok := ByeTeam(matches)
		require.True(t, ok)
		byes[bye]++
	}
	assert.Len(t, byes, RosterSize)
	for id, n := range byes {
		// uniform expectation is ~286 per team
		assert.Greater(t, n, 150, "team %s", id)
	}
}

func TestValidateBracketDetectsBrokenGraphs(t *testing.T) {
	base, err := BuildBracket(lettersRoster(), noShuffle)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		mutate func(ms []Match) []Match
	}{
		{"missing match", func(ms []Match) []Match { return ms[:5] }},
		{"dangling successor", func(ms []Match) []Match { ms[0].NextMatchID = stringPtr("nope"); return ms }},
		{"winner outside match", func(ms []Match) []Match { ms[0].WinnerID = stringPtr("G"); return ms }},
		{"two feeders on one slot", func(ms []Match) []Match { ms[1].SlotInNextMatch = SlotFirst; return ms }},
		{"final with successor", func(ms []Match) []Match { ms[5].NextMatchID = stringPtr(MatchSemifinal1); return ms }},
		{"backwards edge", func(ms []Match) []Match { ms[3].NextMatchID = stringPtr(MatchQuarterfinal1); return ms }},
		{"duplicate id", func(ms []Match) []Match { ms[2].ID = MatchQuarterfinal1; return ms }},
		{"round skipped", func(ms []Match) []Match { ms[2].NextMatchID = stringPtr(MatchFinal); return ms }},
		{"empty seed slot", func(ms []Match) []Match { ms[0].Team1ID = nil; return ms }},
		{"team ahead of feeder", func(ms []Match) []Match { ms[3].Team1ID = stringPtr("A"); return ms }},
		{"winner frozen before feeders", func(ms []Match) []Match {
			ms[4].Score1, ms[4].Score2 = intPtr(0), intPtr(2)
			ms[4].WinnerID = stringPtr("G")
			return ms
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateBracket(tc.mutate(cloneMatches(base))))
		})
	}
}
