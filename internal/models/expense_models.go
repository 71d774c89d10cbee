package models

import "time"

// Expense categories.
const (
	ExpenseCategoryPitchHire    = "pitch_hire"
	ExpenseCategoryEquipment    = "equipment"
	ExpenseCategoryTransport    = "transport"
	ExpenseCategoryRefreshments = "refreshments"
	ExpenseCategoryReferee      = "referee"
	ExpenseCategoryMedical      = "medical"
	ExpenseCategoryOther        = "other"
)

// Expense records money spent by the team, independent of any player.
// MatchDayID links the expense to a match day when it was incurred for one.
type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	ExpenseDate time.Time `json:"expense_date"`
	MatchDayID  *int64    `json:"match_day_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsValidExpenseCategory reports whether the category is one of the closed enum values.
func IsValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseCategoryPitchHire, ExpenseCategoryEquipment, ExpenseCategoryTransport,
		ExpenseCategoryRefreshments, ExpenseCategoryReferee, ExpenseCategoryMedical,
		ExpenseCategoryOther:
		return true
	}
	return false
}
