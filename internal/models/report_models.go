package models

import "time"

// Monthly dues statuses.
const (
	DuesStatusPaid    = "Paid"
	DuesStatusPartial = "Partial"
	DuesStatusUnpaid  = "Unpaid"
)

// Pitch fee statuses.
const (
	PitchStatusComplete = "Complete"
	PitchStatusPartial  = "Partial"
	PitchStatusUnpaid   = "Unpaid"
)

// Upcoming payment statuses.
const (
	UpcomingStatusDueSoon = "due_soon"
	UpcomingStatusOverdue = "overdue"
)

// MonthlyReportRow is one player's dues position for a given month.
type MonthlyReportRow struct {
	PlayerID        int64      `json:"player_id"`
	PlayerName      string     `json:"player_name"`
	ExpectedAmount  float64    `json:"expected_amount"`
	AmountPaid      float64    `json:"amount_paid"`
	Balance         float64    `json:"balance"`
	Status          string     `json:"status"`
	LastPaymentDate *time.Time `json:"last_payment_date,omitempty"`
}

// MonthlyReportSummary aggregates the entire (unpaginated) monthly result set.
type MonthlyReportSummary struct {
	TotalPlayers  int     `json:"total_players"`
	TotalExpected float64 `json:"total_expected"`
	TotalPaid     float64 `json:"total_paid"`
	TotalBalance  float64 `json:"total_balance"`
	PaidCount     int     `json:"paid_count"`
	PartialCount  int     `json:"partial_count"`
	UnpaidCount   int     `json:"unpaid_count"`
}

// MonthlyReport is the monthly dues report payload.
type MonthlyReport struct {
	Month   int                  `json:"month"`
	Year    int                  `json:"year"`
	Rows    []MonthlyReportRow   `json:"rows"`
	Summary MonthlyReportSummary `json:"summary"`
}

// PitchReportRow is one player's pitch-fee position for an optional date range.
type PitchReportRow struct {
	PlayerID       int64       `json:"player_id"`
	PlayerName     string      `json:"player_name"`
	ExpectedAmount float64     `json:"expected_amount"`
	AmountPaid     float64     `json:"amount_paid"`
	Balance        float64     `json:"balance"`
	Status         string      `json:"status"`
	PaymentDates   []time.Time `json:"payment_dates"`
}

// PitchReport is the pitch-fee report payload. Summary mirrors the monthly
// report's shape, with Complete counted in PaidCount.
type PitchReport struct {
	StartDate *time.Time           `json:"start_date,omitempty"`
	EndDate   *time.Time           `json:"end_date,omitempty"`
	Rows      []PitchReportRow     `json:"rows"`
	Summary   MonthlyReportSummary `json:"summary"`
}

// ExpenseBreakdownItem is a category subtotal within a match-day report.
type ExpenseBreakdownItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// PaymentBreakdownItem is one collected payment within a match-day report.
type PaymentBreakdownItem struct {
	PlayerName string  `json:"player_name"`
	Amount     float64 `json:"amount"`
}

// MatchDayReport is the settlement of a single match day.
type MatchDayReport struct {
	MatchDay         MatchDay               `json:"match_day"`
	TotalExpenses    float64                `json:"total_expenses"`
	TotalPayments    float64                `json:"total_payments"`
	NetBalance       float64                `json:"net_balance"`
	ExpenseBreakdown []ExpenseBreakdownItem `json:"expense_breakdown"`
	PaymentBreakdown []PaymentBreakdownItem `json:"payment_breakdown"`
}

// MatchDayReportList is the paginated listing-mode payload.
type MatchDayReportList struct {
	Reports      []MatchDayReport `json:"reports"`
	TotalRecords int              `json:"total_records"`
	HasMore      bool             `json:"has_more"`
}

// UpcomingPayment flags a player whose monthly obligations have fallen
// behind the fiscal-year schedule.
type UpcomingPayment struct {
	PlayerID      int64  `json:"player_id"`
	PlayerName    string `json:"player_name"`
	ExpectedCount int    `json:"expected_count"`
	PaidCount     int    `json:"paid_count"`
	MissedMonths  int    `json:"missed_months"`
	Status        string `json:"status"`
	OverdueDays   int    `json:"overdue_days"`
}

// PaymentSummary is the grand-total view over all payments by type.
type PaymentSummary struct {
	ByType       map[string]float64 `json:"by_type"`
	GrandTotal   float64            `json:"grand_total"`
	PaymentCount int                `json:"payment_count"`
}
