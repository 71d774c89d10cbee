package models

import "time"

// Match types.
const (
	MatchTypeLeague     = "league"
	MatchTypeFriendly   = "friendly"
	MatchTypeTournament = "tournament"
	MatchTypeTraining   = "training"
)

// MatchDay represents a match event. MatchDate is unique: at most one match
// day exists per calendar date.
type MatchDay struct {
	ID        int64     `json:"id"`
	MatchDate time.Time `json:"match_date"`
	Opponent  *string   `json:"opponent,omitempty"`
	Venue     *string   `json:"venue,omitempty"`
	MatchType string    `json:"match_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidMatchType reports whether the type is one of the closed enum values.
func IsValidMatchType(t string) bool {
	switch t {
	case MatchTypeLeague, MatchTypeFriendly, MatchTypeTournament, MatchTypeTraining:
		return true
	}
	return false
}
