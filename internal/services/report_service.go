package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
)

// ReportService computes the dues and settlement reports. Collections are
// fetched wholesale and reduced in memory; the reduction itself lives in
// the Build* functions so the policy is testable without a database.
type ReportService interface {
	GetMonthlyReport(month, year, limit, offset int) (*models.MonthlyReport, error)
	GetPitchReport(startDate, endDate string, limit, offset int) (*models.PitchReport, error)
	GetMatchDayReport(matchDayID int64) (*models.MatchDayReport, error)
	ListMatchDayReports(startDate, endDate string, limit, offset int) (*models.MatchDayReportList, error)
}

type reportService struct {
	playerRepo   repositories.PlayerRepository
	paymentRepo  repositories.PaymentRepository
	expenseRepo  repositories.ExpenseRepository
	matchDayRepo repositories.MatchDayRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	playerRepo repositories.PlayerRepository,
	paymentRepo repositories.PaymentRepository,
	expenseRepo repositories.ExpenseRepository,
	matchDayRepo repositories.MatchDayRepository,
) ReportService {
	return &reportService{
		playerRepo:   playerRepo,
		paymentRepo:  paymentRepo,
		expenseRepo:  expenseRepo,
		matchDayRepo: matchDayRepo,
	}
}

func paymentTypeFilter(t string) repositories.PaymentFilter {
	return repositories.PaymentFilter{PaymentType: &t}
}

// GetMonthlyReport computes per-player monthly dues for the given month and
// year, defaulting to the current calendar month.
func (s *reportService) GetMonthlyReport(month, year, limit, offset int) (*models.MonthlyReport, error) {
	now := time.Now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}

	players, err := s.playerRepo.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load players for monthly report: %w", err)
	}
	payments, err := s.paymentRepo.GetAllPayments(paymentTypeFilter(models.PaymentTypeMonthly))
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for monthly report: %w", err)
	}

	report := BuildMonthlyReport(players, payments, month, year)
	report.Rows = paginateMonthlyRows(report.Rows, limit, offset)
	return report, nil
}

// BuildMonthlyReport reduces the full roster and monthly-type payments into
// the unpaginated monthly dues report. The summary always covers the entire
// result set.
func BuildMonthlyReport(players []models.Player, payments []models.Payment, month, year int) *models.MonthlyReport {
	rows := make([]models.MonthlyReportRow, 0, len(players))
	summary := models.MonthlyReportSummary{TotalPlayers: len(players)}

	for _, player := range players {
		row := models.MonthlyReportRow{
			PlayerID:       player.ID,
			PlayerName:     player.FullName,
			ExpectedAmount: player.MonthlyFee,
		}
		for _, p := range payments {
			if p.PlayerID != player.ID || p.PaymentType != models.PaymentTypeMonthly {
				continue
			}
			if int(p.PaymentDate.Month()) != month || p.PaymentDate.Year() != year {
				continue
			}
			row.AmountPaid += p.Amount
			if row.LastPaymentDate == nil || p.PaymentDate.After(*row.LastPaymentDate) {
				d := p.PaymentDate
				row.LastPaymentDate = &d
			}
		}
		row.Balance = row.ExpectedAmount - row.AmountPaid
		row.Status = duesStatus(row.AmountPaid, row.ExpectedAmount, row.Balance)

		switch row.Status {
		case models.DuesStatusPaid:
			summary.PaidCount++
		case models.DuesStatusPartial:
			summary.PartialCount++
		default:
			summary.UnpaidCount++
		}
		summary.TotalExpected += row.ExpectedAmount
		summary.TotalPaid += row.AmountPaid
		summary.TotalBalance += row.Balance

		rows = append(rows, row)
	}

	// Most owed first.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Balance > rows[j].Balance })

	return &models.MonthlyReport{Month: month, Year: year, Rows: rows, Summary: summary}
}

func duesStatus(paid, expected, balance float64) string {
	switch {
	case balance <= 0:
		return models.DuesStatusPaid
	case paid > 0 && paid < expected:
		return models.DuesStatusPartial
	default:
		return models.DuesStatusUnpaid
	}
}

func paginateMonthlyRows(rows []models.MonthlyReportRow, limit, offset int) []models.MonthlyReportRow {
	if offset >= len(rows) {
		return []models.MonthlyReportRow{}
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

// GetPitchReport computes per-player pitch-fee completion for an optional
// inclusive [start, end] payment-date range.
func (s *reportService) GetPitchReport(startDate, endDate string, limit, offset int) (*models.PitchReport, error) {
	start, err := ParseOptionalDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseOptionalDate(endDate)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load players for pitch report: %w", err)
	}
	payments, err := s.paymentRepo.GetAllPayments(paymentTypeFilter(models.PaymentTypePitch))
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for pitch report: %w", err)
	}

	report := BuildPitchReport(players, payments, start, end)
	report.Rows = paginatePitchRows(report.Rows, limit, offset)
	return report, nil
}

// BuildPitchReport reduces the roster and pitch-type payments into the
// unpaginated pitch-fee report. The date range is inclusive on both ends
// and compares calendar dates only.
func BuildPitchReport(players []models.Player, payments []models.Payment, start, end *time.Time) *models.PitchReport {
	rows := make([]models.PitchReportRow, 0, len(players))
	summary := models.MonthlyReportSummary{TotalPlayers: len(players)}

	for _, player := range players {
		row := models.PitchReportRow{
			PlayerID:       player.ID,
			PlayerName:     player.FullName,
			ExpectedAmount: player.PitchFee,
			PaymentDates:   []time.Time{},
		}
		for _, p := range payments {
			if p.PlayerID != player.ID || p.PaymentType != models.PaymentTypePitch {
				continue
			}
			if !dateWithinRange(p.PaymentDate, start, end) {
				continue
			}
			row.AmountPaid += p.Amount
			row.PaymentDates = append(row.PaymentDates, p.PaymentDate)
		}
		sort.Slice(row.PaymentDates, func(i, j int) bool { return row.PaymentDates[i].Before(row.PaymentDates[j]) })

		row.Balance = row.ExpectedAmount - row.AmountPaid
		row.Status = pitchStatus(row.AmountPaid, row.ExpectedAmount, row.Balance)

		switch row.Status {
		case models.PitchStatusComplete:
			summary.PaidCount++
		case models.PitchStatusPartial:
			summary.PartialCount++
		default:
			summary.UnpaidCount++
		}
		summary.TotalExpected += row.ExpectedAmount
		summary.TotalPaid += row.AmountPaid
		summary.TotalBalance += row.Balance

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Balance > rows[j].Balance })

	return &models.PitchReport{StartDate: start, EndDate: end, Rows: rows, Summary: summary}
}

func pitchStatus(paid, expected, balance float64) string {
	switch {
	case balance <= 0:
		return models.PitchStatusComplete
	case paid > 0 && paid < expected:
		return models.PitchStatusPartial
	default:
		return models.PitchStatusUnpaid
	}
}

// dateWithinRange checks inclusive calendar-date bounds; nil bounds are open.
func dateWithinRange(d time.Time, start, end *time.Time) bool {
	day := d.Format(DateLayout)
	if start != nil && day < start.Format(DateLayout) {
		return false
	}
	if end != nil && day > end.Format(DateLayout) {
		return false
	}
	return true
}

func paginatePitchRows(rows []models.PitchReportRow, limit, offset int) []models.PitchReportRow {
	if offset >= len(rows) {
		return []models.PitchReportRow{}
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

// GetMatchDayReport computes the settlement of a single match day.
func (s *reportService) GetMatchDayReport(matchDayID int64) (*models.MatchDayReport, error) {
	matchDay, err := s.matchDayRepo.GetMatchDayByID(matchDayID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMatchDayNotFound
		}
		return nil, fmt.Errorf("failed to load match day for report: %w", err)
	}

	expenses, err := s.expenseRepo.GetExpensesByMatchDay(matchDayID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for match day report: %w", err)
	}
	payments, err := s.paymentRepo.GetAllPayments(paymentTypeFilter(models.PaymentTypeMatchday))
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for match day report: %w", err)
	}

	report := BuildMatchDayReport(*matchDay, expenses, payments)
	return &report, nil
}

// BuildMatchDayReport settles one match day. A matchday-type payment belongs
// to the match when it carries the explicit match_day_id link, or, for
// records without a link, when it is dated on the same calendar day as the
// match.
func BuildMatchDayReport(matchDay models.MatchDay, expenses []models.Expense, payments []models.Payment) models.MatchDayReport {
	report := models.MatchDayReport{
		MatchDay:         matchDay,
		ExpenseBreakdown: []models.ExpenseBreakdownItem{},
		PaymentBreakdown: []models.PaymentBreakdownItem{},
	}

	byCategory := map[string]float64{}
	for _, e := range expenses {
		if e.MatchDayID == nil || *e.MatchDayID != matchDay.ID {
			continue
		}
		report.TotalExpenses += e.Amount
		byCategory[e.Category] += e.Amount
	}
	for category, amount := range byCategory {
		report.ExpenseBreakdown = append(report.ExpenseBreakdown, models.ExpenseBreakdownItem{Category: category, Amount: amount})
	}
	sort.Slice(report.ExpenseBreakdown, func(i, j int) bool {
		return report.ExpenseBreakdown[i].Category < report.ExpenseBreakdown[j].Category
	})

	for _, p := range payments {
		if p.PaymentType != models.PaymentTypeMatchday {
			continue
		}
		linked := p.MatchDayID != nil && *p.MatchDayID == matchDay.ID
		legacy := p.MatchDayID == nil && sameCalendarDay(p.PaymentDate, matchDay.MatchDate)
		if !linked && !legacy {
			continue
		}
		report.TotalPayments += p.Amount
		report.PaymentBreakdown = append(report.PaymentBreakdown, models.PaymentBreakdownItem{
			PlayerName: p.PlayerName,
			Amount:     p.Amount,
		})
	}

	report.NetBalance = report.TotalPayments - report.TotalExpenses
	return report
}

// ListMatchDayReports computes the settlement for every match day in an
// optional date range, newest first, paginated.
func (s *reportService) ListMatchDayReports(startDate, endDate string, limit, offset int) (*models.MatchDayReportList, error) {
	start, err := ParseOptionalDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseOptionalDate(endDate)
	if err != nil {
		return nil, err
	}

	matchDays, err := s.matchDayRepo.GetAllMatchDays(repositories.MatchDayFilter{StartDate: start, EndDate: end})
	if err != nil {
		return nil, fmt.Errorf("failed to load match days for report: %w", err)
	}
	expenses, err := s.expenseRepo.GetAllExpenses(repositories.ExpenseFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for match day reports: %w", err)
	}
	payments, err := s.paymentRepo.GetAllPayments(paymentTypeFilter(models.PaymentTypeMatchday))
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for match day reports: %w", err)
	}

	reports := make([]models.MatchDayReport, 0, len(matchDays))
	for _, md := range matchDays {
		reports = append(reports, BuildMatchDayReport(md, expenses, payments))
	}

	total := len(reports)
	if offset >= total {
		reports = []models.MatchDayReport{}
	} else {
		endIdx := offset + limit
		if limit <= 0 || endIdx > total {
			endIdx = total
		}
		reports = reports[offset:endIdx]
	}

	return &models.MatchDayReportList{
		Reports:      reports,
		TotalRecords: total,
		HasMore:      offset+len(reports) < total,
	}, nil
}
