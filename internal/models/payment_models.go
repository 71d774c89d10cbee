package models

import "time"

// Payment types.
const (
	PaymentTypeAnnual   = "annual"
	PaymentTypeMonthly  = "monthly"
	PaymentTypePitch    = "pitch"
	PaymentTypeMatchday = "matchday"
)

// Payment records money received from a player. PaymentDate attributes the
// payment to a period; CreatedAt is only when it was recorded. PlayerName is
// a snapshot taken at creation so reports survive later player renames.
// MatchDayID is the explicit link for matchday-type payments; older records
// without it are associated to a match day by calendar date only.
type Payment struct {
	ID          int64     `json:"id"`
	PlayerID    int64     `json:"player_id"`
	PlayerName  string    `json:"player_name"`
	PaymentType string    `json:"payment_type"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	MatchDayID  *int64    `json:"match_day_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsValidPaymentType reports whether the type is one of the closed enum values.
func IsValidPaymentType(t string) bool {
	switch t {
	case PaymentTypeAnnual, PaymentTypeMonthly, PaymentTypePitch, PaymentTypeMatchday:
		return true
	}
	return false
}
