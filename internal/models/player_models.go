package models

import "time"

// Default fee amounts, in whole currency units (UGX).
const (
	DefaultAnnualFee  = 150000.0
	DefaultMonthlyFee = 10000.0
	DefaultPitchFee   = 5000.0
)

// Player represents a team member and the fees they are obligated to pay.
// MatchDay is the optional day of the week the player is assigned to.
type Player struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	AnnualFee   float64   `json:"annual_fee"`
	MonthlyFee  float64   `json:"monthly_fee"`
	PitchFee    float64   `json:"pitch_fee"`
	MatchDay    *string   `json:"match_day,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
