package service

import (
	"knockout-tournament-backend/internal/tournament"
)

// SetScoreRequest represents a score edit for one slot of a match.
// Value is coerced permissively: anything that is not a non-negative number counts as 0.
type SetScoreRequest struct {
	Slot  int         `json:"slot" validate:"required,oneof=1 2"`
	Value interface{} `json:"value"`
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name    string             `json:"name" validate:"required,min=1,max=100"`
	Logo    string             `json:"logo,omitempty"`
	Players []AddPlayerRequest `json:"players,omitempty" validate:"dive"`
}

// UpdateTeamRequest represents the request to update a team; omitted fields are left unchanged
type UpdateTeamRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Logo *string `json:"logo,omitempty"`
}

// AddPlayerRequest represents the request to add a player to a team
type AddPlayerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Number   int    `json:"number" validate:"min=0,max=999"`
	Position string `json:"position,omitempty" validate:"max=50"`
}

// PlayerResponse represents a player
type PlayerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
}

// TeamResponse represents a team with its players
type TeamResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Logo    string           `json:"logo"`
	Players []PlayerResponse `json:"players"`
}

// MatchResponse represents a bracket match with its derived status
type MatchResponse struct {
	ID              string  `json:"id"`
	Round           int     `json:"round"`
	Team1ID         *string `json:"team1Id"`
	Team2ID         *string `json:"team2Id"`
	Score1          *int    `json:"score1"`
	Score2          *int    `json:"score2"`
	WinnerID        *string `json:"winnerId"`
	NextMatchID     *string `json:"nextMatchId"`
	SlotInNextMatch int     `json:"slotInNextMatch,omitempty"`
	Status          string  `json:"status"`
}

// StateResponse represents the whole tournament
type StateResponse struct {
	Teams             []TeamResponse  `json:"teams"`
	Matches           []MatchResponse `json:"matches"`
	TournamentStarted bool            `json:"tournamentStarted"`
	ByeTeamID         *string         `json:"byeTeamId"`
	ChampionID        *string         `json:"championId"`
}

// ConfirmResultResponse represents the outcome of confirming a match
type ConfirmResultResponse struct {
	Match      MatchResponse  `json:"match"`
	NextMatch  *MatchResponse `json:"nextMatch,omitempty"`
	ChampionID *string        `json:"championId"`
}

// ExportResponse is a downloadable export document
type ExportResponse struct {
	Filename string
	Body     []byte
}

func toPlayerResponse(p tournament.Player) PlayerResponse {
	return PlayerResponse{
		ID:       p.ID,
		Name:     p.Name,
		Number:   p.Number,
		Position: p.Position,
	}
}

func toTeamResponse(t tournament.Team) TeamResponse {
	players := make([]PlayerResponse, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, toPlayerResponse(p))
	}
	return TeamResponse{
		ID:      t.ID,
		Name:    t.Name,
		Logo:    t.Logo,
		Players: players,
	}
}

func toMatchResponse(m tournament.Match) MatchResponse {
	return MatchResponse{
		ID:              m.ID,
		Round:           int(m.Round),
		Team1ID:         m.Team1ID,
		Team2ID:         m.Team2ID,
		Score1:          m.Score1,
		Score2:          m.Score2,
		WinnerID:        m.WinnerID,
		NextMatchID:     m.NextMatchID,
		SlotInNextMatch: int(m.SlotInNextMatch),
		Status:          string(m.Status()),
	}
}

func toStateResponse(s tournament.State) *StateResponse {
	resp := &StateResponse{
		Teams:             make([]TeamResponse, 0, len(s.Teams)),
		Matches:           make([]MatchResponse, 0, len(s.Matches)),
		TournamentStarted: s.TournamentStarted,
	}
	for _, t := range s.Teams {
		resp.Teams = append(resp.Teams, toTeamResponse(t))
	}
	for _, m := range s.Matches {
		resp.Matches = append(resp.Matches, toMatchResponse(m))
	}
	if bye, ok := tournament.ByeTeam(s.Matches); ok {
		resp.ByeTeamID = &bye
	}
	if champion, ok := s.Champion(); ok {
		resp.ChampionID = &champion
	}
	return resp
}
