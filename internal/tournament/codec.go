package tournament

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	apperrors "knockout-tournament-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Document is the export/import shape: the state without its version.
type Document struct {
	Teams             []Team  `json:"teams"`
	Matches           []Match `json:"matches"`
	TournamentStarted bool    `json:"tournamentStarted"`
}

// importDocument tells absent fields apart from present ones.
type importDocument struct {
	Teams             *[]Team  `json:"teams"`
	Matches           *[]Match `json:"matches"`
	TournamentStarted *bool    `json:"tournamentStarted"`
}

// Marshal serializes the full state for persistence.
func Marshal(s State) ([]byte, error) {
	s = s.Clone()
	s.Version = StateVersion
	return json.Marshal(s)
}

// Unmarshal restores a persisted state. Unknown versions, bad shapes and
// broken brackets are rejected.
func Unmarshal(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	if s.Version != 0 && s.Version != StateVersion {
		return State{}, fmt.Errorf("unsupported state version %d", s.Version)
	}
	s.Version = StateVersion
	if err := checkShape(s.Teams, s.Matches); err != nil {
		return State{}, err
	}
	s = s.Clone()
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// Export builds the downloadable document and its dated file name.
func Export(s State, now time.Time) (string, []byte, error) {
	s = s.Clone()
	doc := Document{
		Teams:             s.Teams,
		Matches:           s.Matches,
		TournamentStarted: s.TournamentStarted,
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("encode export: %w", err)
	}
	return ExportFilename(now), body, nil
}

// ExportFilename names an export after the given date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("tournament-%s.json", now.Format("2006-01-02"))
}

// ApplyImport replaces each field present in data and keeps the others. The
// receiver is returned unchanged alongside ErrMalformedImport when the
// document is not valid JSON, has the wrong shape, or yields an inconsistent
// tournament.
func ApplyImport(s State, data []byte) (State, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return s, apperrors.NewMalformedImportError("document must be a JSON object")
	}

	var doc importDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return s, apperrors.NewMalformedImportError(err.Error())
	}

	next := s.Clone()
	if doc.Teams != nil {
		next.Teams = *doc.Teams
	}
	if doc.Matches != nil {
		next.Matches = *doc.Matches
	}
	if doc.TournamentStarted != nil {
		next.TournamentStarted = *doc.TournamentStarted
	}
	next = next.Clone()

	if err := checkShape(next.Teams, next.Matches); err != nil {
		return s, apperrors.NewMalformedImportError(err.Error())
	}
	if err := next.Validate(); err != nil {
		return s, apperrors.NewMalformedImportError(err.Error())
	}
	return next, nil
}

func checkShape(teams []Team, matches []Match) error {
	seen := make(map[string]struct{}, len(teams))
	for i := range teams {
		if err := validate.Struct(teams[i]); err != nil {
			return fmt.Errorf("team %d: %w", i, err)
		}
		if _, dup := seen[teams[i].ID]; dup {
			return fmt.Errorf("duplicate team id %q", teams[i].ID)
		}
		seen[teams[i].ID] = struct{}{}
	}
	for i := range matches {
		if err := validate.Struct(matches[i]); err != nil {
			return fmt.Errorf("match %d: %w", i, err)
		}
	}
	return nil
}
