package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
)

// DefaultUpcomingLimit caps the upcoming-payments list when the caller
// supplies no limit.
const DefaultUpcomingLimit = 10

// approxDaysPerMonth is the average Gregorian month length used to count
// elapsed months within the fiscal year.
const approxDaysPerMonth = 30.44

// StatisticsService computes cross-entity payment statistics.
type StatisticsService interface {
	GetUpcomingPayments(limit int) ([]models.UpcomingPayment, error)
	GetPaymentSummary() (*models.PaymentSummary, error)
}

type statisticsService struct {
	playerRepo  repositories.PlayerRepository
	paymentRepo repositories.PaymentRepository
	now         func() time.Time
}

// NewStatisticsService creates a new instance of StatisticsService.
func NewStatisticsService(playerRepo repositories.PlayerRepository, paymentRepo repositories.PaymentRepository) StatisticsService {
	return &statisticsService{
		playerRepo:  playerRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// FiscalYearStart returns July 1 of the fiscal year containing now: months
// before July belong to the window that began the prior calendar year.
func FiscalYearStart(now time.Time) time.Time {
	year := now.Year()
	if now.Month() < time.July {
		year--
	}
	return time.Date(year, time.July, 1, 0, 0, 0, 0, now.Location())
}

// GetUpcomingPayments lists players behind on monthly dues for the current
// fiscal year, most overdue first.
func (s *statisticsService) GetUpcomingPayments(limit int) ([]models.UpcomingPayment, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	players, err := s.playerRepo.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load players for upcoming payments: %w", err)
	}
	payments, err := s.paymentRepo.GetAllPayments(repositories.PaymentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for upcoming payments: %w", err)
	}

	return ComputeUpcomingPayments(players, payments, s.now(), limit), nil
}

// ComputeUpcomingPayments applies the fiscal-year dues policy. A player with
// an annual payment dated on or after the fiscal-year start has discharged
// the whole year and is never listed. Otherwise the count of monthly
// payments since the fiscal-year start is compared against the number of
// months elapsed plus one: one missing payment is due soon, more than one
// is overdue.
func ComputeUpcomingPayments(players []models.Player, payments []models.Payment, now time.Time, limit int) []models.UpcomingPayment {
	fiscalStart := FiscalYearStart(now)
	monthsElapsed := int(now.Sub(fiscalStart).Hours() / (24 * approxDaysPerMonth))
	expectedCount := monthsElapsed + 1

	result := []models.UpcomingPayment{}
	for _, player := range players {
		annualPaid := false
		monthlyCount := 0
		for _, p := range payments {
			if p.PlayerID != player.ID || p.PaymentDate.Before(fiscalStart) {
				continue
			}
			switch p.PaymentType {
			case models.PaymentTypeAnnual:
				annualPaid = true
			case models.PaymentTypeMonthly:
				monthlyCount++
			}
		}
		if annualPaid {
			continue
		}

		missedMonths := expectedCount - monthlyCount
		if missedMonths < 1 {
			continue
		}

		status := models.UpcomingStatusOverdue
		if missedMonths == 1 {
			status = models.UpcomingStatusDueSoon
		}
		result = append(result, models.UpcomingPayment{
			PlayerID:      player.ID,
			PlayerName:    player.FullName,
			ExpectedCount: expectedCount,
			PaidCount:     monthlyCount,
			MissedMonths:  missedMonths,
			Status:        status,
			OverdueDays:   missedMonths * 30,
		})
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].OverdueDays > result[j].OverdueDays })
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// GetPaymentSummary totals all payments by type in a single pass.
func (s *statisticsService) GetPaymentSummary() (*models.PaymentSummary, error) {
	payments, err := s.paymentRepo.GetAllPayments(repositories.PaymentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for summary: %w", err)
	}
	return ComputePaymentSummary(payments), nil
}

// ComputePaymentSummary reduces all payments to per-type totals, a grand
// total, and a count.
func ComputePaymentSummary(payments []models.Payment) *models.PaymentSummary {
	summary := &models.PaymentSummary{
		ByType: map[string]float64{
			models.PaymentTypeAnnual:   0,
			models.PaymentTypeMonthly:  0,
			models.PaymentTypePitch:    0,
			models.PaymentTypeMatchday: 0,
		},
	}
	for _, p := range payments {
		summary.ByType[p.PaymentType] += p.Amount
		summary.GrandTotal += p.Amount
		summary.PaymentCount++
	}
	return summary
}
