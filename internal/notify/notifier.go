// Package notify announces tournament progress to external channels.
package notify

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/notifier_mocks.go -package=mocks

// EventKind identifies what happened in the tournament
type EventKind string

const (
	EventBracketGenerated EventKind = "bracket_generated"
	EventResultConfirmed  EventKind = "result_confirmed"
	EventChampionCrowned  EventKind = "champion_crowned"
)

// Event carries the team names and scores needed to describe a tournament change
type Event struct {
	Kind        EventKind
	MatchID     string
	Round       int
	WinnerName  string
	LoserName   string
	WinnerScore int
	LoserScore  int
	// Pairings lists the opening matches as "Team A vs Team B"; ByeName is the team sitting out
	Pairings []string
	ByeName  string
}

// Notifier delivers tournament events
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Nop discards every event
type Nop struct{}

func (Nop) Notify(context.Context, Event) error { return nil }

var roundNames = map[int]string{
	1: "Quarterfinal",
	2: "Semifinal",
	3: "Final",
}

// Format renders an event as a short plain text message
func Format(event Event) string {
	switch event.Kind {
	case EventBracketGenerated:
		var b strings.Builder
		b.WriteString("Bracket is set!")
		for _, p := range event.Pairings {
			b.WriteString("\n")
			b.WriteString(p)
		}
		if event.ByeName != "" {
			fmt.Fprintf(&b, "\nBye: %s", event.ByeName)
		}
		return b.String()
	case EventResultConfirmed:
		round, ok := roundNames[event.Round]
		if !ok {
			round = "Match"
		}
		return fmt.Sprintf("%s %s: %s beat %s %d-%d",
			round, event.MatchID, event.WinnerName, event.LoserName, event.WinnerScore, event.LoserScore)
	case EventChampionCrowned:
		return fmt.Sprintf("%s are the champions! Final: %d-%d over %s",
			event.WinnerName, event.WinnerScore, event.LoserScore, event.LoserName)
	default:
		return string(event.Kind)
	}
}
