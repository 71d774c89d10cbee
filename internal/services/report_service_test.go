package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
)

func testPlayer(id int64, name string, monthlyFee, pitchFee float64) models.Player {
	return models.Player{
		ID:         id,
		FullName:   name,
		MonthlyFee: monthlyFee,
		PitchFee:   pitchFee,
	}
}

func monthlyPayment(playerID int64, amount float64, date string) models.Payment {
	return models.Payment{
		PlayerID:    playerID,
		PaymentType: models.PaymentTypeMonthly,
		Amount:      amount,
		PaymentDate: mustDate(date),
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	players := []models.Player{
		testPlayer(1, "Okello James", 10000, 5000),
		testPlayer(2, "Mugisha Brian", 10000, 5000),
		testPlayer(3, "Ssemakula Denis", 10000, 5000),
		testPlayer(4, "Wasswa Ivan", 10000, 5000),
	}

	t.Run("no payments leaves every player unpaid", func(t *testing.T) {
		report := BuildMonthlyReport(players, nil, 3, 2025)

		assert.Equal(t, 3, report.Month)
		assert.Equal(t, 2025, report.Year)
		require.Len(t, report.Rows, 4)
		for _, row := range report.Rows {
			assert.Equal(t, models.DuesStatusUnpaid, row.Status)
			assert.Equal(t, 10000.0, row.Balance)
			assert.Nil(t, row.LastPaymentDate)
		}
		assert.Equal(t, 4, report.Summary.UnpaidCount)
		assert.Equal(t, 0, report.Summary.PaidCount)
		assert.Equal(t, 40000.0, report.Summary.TotalExpected)
	})

	t.Run("exact and over payments are paid, partial is partial", func(t *testing.T) {
		payments := []models.Payment{
			monthlyPayment(1, 10000, "2025-03-05"),
			monthlyPayment(2, 12000, "2025-03-10"),
			monthlyPayment(3, 4000, "2025-03-12"),
			monthlyPayment(3, 4000, "2025-03-20"),
		}
		report := BuildMonthlyReport(players, payments, 3, 2025)

		byPlayer := map[int64]models.MonthlyReportRow{}
		for _, row := range report.Rows {
			byPlayer[row.PlayerID] = row
		}

		assert.Equal(t, models.DuesStatusPaid, byPlayer[1].Status)
		assert.Equal(t, 0.0, byPlayer[1].Balance)

		assert.Equal(t, models.DuesStatusPaid, byPlayer[2].Status)
		assert.Equal(t, -2000.0, byPlayer[2].Balance)

		// Two partial payments accumulate but do not reach the fee.
		assert.Equal(t, models.DuesStatusPartial, byPlayer[3].Status)
		assert.Equal(t, 8000.0, byPlayer[3].AmountPaid)
		assert.Equal(t, 2000.0, byPlayer[3].Balance)
		require.NotNil(t, byPlayer[3].LastPaymentDate)
		assert.Equal(t, mustDate("2025-03-20"), *byPlayer[3].LastPaymentDate)

		assert.Equal(t, models.DuesStatusUnpaid, byPlayer[4].Status)

		assert.Equal(t, 2, report.Summary.PaidCount)
		assert.Equal(t, 1, report.Summary.PartialCount)
		assert.Equal(t, 1, report.Summary.UnpaidCount)
		assert.Equal(t, report.Summary.TotalPlayers,
			report.Summary.PaidCount+report.Summary.PartialCount+report.Summary.UnpaidCount)
	})

	t.Run("rows sorted by balance descending", func(t *testing.T) {
		payments := []models.Payment{
			monthlyPayment(1, 10000, "2025-03-05"),
			monthlyPayment(2, 4000, "2025-03-05"),
		}
		report := BuildMonthlyReport(players, payments, 3, 2025)

		for i := 1; i < len(report.Rows); i++ {
			assert.GreaterOrEqual(t, report.Rows[i-1].Balance, report.Rows[i].Balance)
		}
	})

	t.Run("payments outside the month are excluded", func(t *testing.T) {
		payments := []models.Payment{
			monthlyPayment(1, 10000, "2025-02-28"),
			monthlyPayment(1, 10000, "2024-03-05"),
		}
		report := BuildMonthlyReport(players, payments, 3, 2025)

		for _, row := range report.Rows {
			assert.Equal(t, models.DuesStatusUnpaid, row.Status)
		}
	})

	t.Run("non-monthly payment types are ignored", func(t *testing.T) {
		payments := []models.Payment{
			{PlayerID: 1, PaymentType: models.PaymentTypePitch, Amount: 10000, PaymentDate: mustDate("2025-03-05")},
		}
		report := BuildMonthlyReport(players, payments, 3, 2025)

		for _, row := range report.Rows {
			assert.Equal(t, models.DuesStatusUnpaid, row.Status)
		}
	})
}

func TestBuildPitchReport(t *testing.T) {
	players := []models.Player{
		testPlayer(1, "Okello James", 10000, 5000),
		testPlayer(2, "Mugisha Brian", 10000, 5000),
	}
	pitchPayment := func(playerID int64, amount float64, date string) models.Payment {
		return models.Payment{
			PlayerID:    playerID,
			PaymentType: models.PaymentTypePitch,
			Amount:      amount,
			PaymentDate: mustDate(date),
		}
	}

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		payments := []models.Payment{
			pitchPayment(1, 2500, "2025-01-01"),
			pitchPayment(1, 2500, "2025-01-31"),
			pitchPayment(2, 5000, "2025-02-01"),
		}
		start := mustDate("2025-01-01")
		end := mustDate("2025-01-31")
		report := BuildPitchReport(players, payments, &start, &end)

		byPlayer := map[int64]models.PitchReportRow{}
		for _, row := range report.Rows {
			byPlayer[row.PlayerID] = row
		}

		// Both boundary payments count; the February one does not.
		assert.Equal(t, 5000.0, byPlayer[1].AmountPaid)
		assert.Equal(t, models.PitchStatusComplete, byPlayer[1].Status)
		assert.Equal(t, 0.0, byPlayer[2].AmountPaid)
		assert.Equal(t, models.PitchStatusUnpaid, byPlayer[2].Status)
	})

	t.Run("open range includes everything", func(t *testing.T) {
		payments := []models.Payment{
			pitchPayment(1, 3000, "2024-06-15"),
			pitchPayment(1, 1000, "2026-01-01"),
		}
		report := BuildPitchReport(players, payments, nil, nil)

		byPlayer := map[int64]models.PitchReportRow{}
		for _, row := range report.Rows {
			byPlayer[row.PlayerID] = row
		}
		assert.Equal(t, 4000.0, byPlayer[1].AmountPaid)
		assert.Equal(t, models.PitchStatusPartial, byPlayer[1].Status)
	})

	t.Run("payment dates returned ascending", func(t *testing.T) {
		payments := []models.Payment{
			pitchPayment(1, 1000, "2025-03-20"),
			pitchPayment(1, 1000, "2025-03-05"),
			pitchPayment(1, 1000, "2025-03-12"),
		}
		report := BuildPitchReport(players, payments, nil, nil)

		var row models.PitchReportRow
		for _, r := range report.Rows {
			if r.PlayerID == 1 {
				row = r
			}
		}
		require.Len(t, row.PaymentDates, 3)
		for i := 1; i < len(row.PaymentDates); i++ {
			assert.True(t, row.PaymentDates[i-1].Before(row.PaymentDates[i]))
		}
	})
}

func TestBuildMatchDayReport(t *testing.T) {
	matchDayID := int64(7)
	otherID := int64(8)
	matchDay := models.MatchDay{
		ID:        matchDayID,
		MatchDate: mustDate("2025-04-12"),
		MatchType: models.MatchTypeLeague,
	}

	expenses := []models.Expense{
		{ID: 1, Category: models.ExpenseCategoryPitchHire, Amount: 50000, MatchDayID: &matchDayID},
		{ID: 2, Category: models.ExpenseCategoryReferee, Amount: 20000, MatchDayID: &matchDayID},
		{ID: 3, Category: models.ExpenseCategoryPitchHire, Amount: 30000, MatchDayID: &matchDayID},
		{ID: 4, Category: models.ExpenseCategoryTransport, Amount: 99999, MatchDayID: &otherID},
	}
	payments := []models.Payment{
		{PlayerID: 1, PlayerName: "Okello James", PaymentType: models.PaymentTypeMatchday, Amount: 40000, PaymentDate: mustDate("2025-04-12"), MatchDayID: &matchDayID},
		// Unlinked record dated on the match day still counts.
		{PlayerID: 2, PlayerName: "Mugisha Brian", PaymentType: models.PaymentTypeMatchday, Amount: 50000, PaymentDate: mustDate("2025-04-12")},
		// Linked to another match, excluded even though the date matches.
		{PlayerID: 3, PlayerName: "Ssemakula Denis", PaymentType: models.PaymentTypeMatchday, Amount: 11111, PaymentDate: mustDate("2025-04-12"), MatchDayID: &otherID},
		// Unlinked and dated elsewhere, excluded.
		{PlayerID: 4, PlayerName: "Wasswa Ivan", PaymentType: models.PaymentTypeMatchday, Amount: 22222, PaymentDate: mustDate("2025-04-13")},
		// Wrong type, excluded.
		{PlayerID: 5, PlayerName: "Kato Moses", PaymentType: models.PaymentTypeMonthly, Amount: 33333, PaymentDate: mustDate("2025-04-12")},
	}

	report := BuildMatchDayReport(matchDay, expenses, payments)

	assert.Equal(t, 100000.0, report.TotalExpenses)
	assert.Equal(t, 90000.0, report.TotalPayments)
	assert.Equal(t, -10000.0, report.NetBalance)

	require.Len(t, report.ExpenseBreakdown, 2)
	assert.Equal(t, models.ExpenseCategoryPitchHire, report.ExpenseBreakdown[0].Category)
	assert.Equal(t, 80000.0, report.ExpenseBreakdown[0].Amount)
	assert.Equal(t, models.ExpenseCategoryReferee, report.ExpenseBreakdown[1].Category)
	assert.Equal(t, 20000.0, report.ExpenseBreakdown[1].Amount)

	var breakdownTotal float64
	for _, item := range report.ExpenseBreakdown {
		breakdownTotal += item.Amount
	}
	assert.Equal(t, report.TotalExpenses, breakdownTotal)

	require.Len(t, report.PaymentBreakdown, 2)
	names := []string{report.PaymentBreakdown[0].PlayerName, report.PaymentBreakdown[1].PlayerName}
	assert.Contains(t, names, "Okello James")
	assert.Contains(t, names, "Mugisha Brian")
}

func TestGetMonthlyReportEndToEnd(t *testing.T) {
	playerRepo := newFakePlayerRepo()
	paymentRepo := newFakePaymentRepo()
	expenseRepo := newFakeExpenseRepo()
	matchDayRepo := newFakeMatchDayRepo()

	p := testPlayer(0, "Okello James", 10000, 5000)
	id, err := playerRepo.CreatePlayer(&p)
	require.NoError(t, err)

	_, err = paymentRepo.CreatePayment(&models.Payment{
		PlayerID: id, PaymentType: models.PaymentTypeMonthly, Amount: 4000, PaymentDate: mustDate("2025-03-03"),
	})
	require.NoError(t, err)
	_, err = paymentRepo.CreatePayment(&models.Payment{
		PlayerID: id, PaymentType: models.PaymentTypeMonthly, Amount: 4000, PaymentDate: mustDate("2025-03-17"),
	})
	require.NoError(t, err)

	svc := NewReportService(playerRepo, paymentRepo, expenseRepo, matchDayRepo)
	report, err := svc.GetMonthlyReport(3, 2025, 20, 0)
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, 8000.0, row.AmountPaid)
	assert.Equal(t, 2000.0, row.Balance)
	assert.Equal(t, models.DuesStatusPartial, row.Status)
}

func TestGetMatchDayReportNotFound(t *testing.T) {
	svc := NewReportService(newFakePlayerRepo(), newFakePaymentRepo(), newFakeExpenseRepo(), newFakeMatchDayRepo())

	_, err := svc.GetMatchDayReport(42)
	assert.True(t, errors.Is(err, ErrMatchDayNotFound))
}

func TestListMatchDayReports(t *testing.T) {
	playerRepo := newFakePlayerRepo()
	paymentRepo := newFakePaymentRepo()
	expenseRepo := newFakeExpenseRepo()
	matchDayRepo := newFakeMatchDayRepo()

	var ids []int64
	for _, date := range []string{"2025-04-05", "2025-04-12", "2025-04-19"} {
		md := models.MatchDay{MatchDate: mustDate(date), MatchType: models.MatchTypeLeague}
		id, err := matchDayRepo.CreateMatchDay(&md)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	_, err := expenseRepo.CreateExpense(&models.Expense{
		Category: models.ExpenseCategoryPitchHire, Amount: 50000, ExpenseDate: mustDate("2025-04-12"), MatchDayID: &ids[1],
	})
	require.NoError(t, err)
	_, err = paymentRepo.CreatePayment(&models.Payment{
		PlayerID: 1, PlayerName: "Okello James", PaymentType: models.PaymentTypeMatchday,
		Amount: 70000, PaymentDate: mustDate("2025-04-12"), MatchDayID: &ids[1],
	})
	require.NoError(t, err)

	svc := NewReportService(playerRepo, paymentRepo, expenseRepo, matchDayRepo)

	t.Run("computes settlement per match day", func(t *testing.T) {
		list, err := svc.ListMatchDayReports("", "", 20, 0)
		require.NoError(t, err)

		assert.Equal(t, 3, list.TotalRecords)
		assert.False(t, list.HasMore)
		require.Len(t, list.Reports, 3)

		var settled models.MatchDayReport
		for _, r := range list.Reports {
			if r.MatchDay.ID == ids[1] {
				settled = r
			}
		}
		assert.Equal(t, 50000.0, settled.TotalExpenses)
		assert.Equal(t, 70000.0, settled.TotalPayments)
		assert.Equal(t, 20000.0, settled.NetBalance)
	})

	t.Run("paginates and reports has_more", func(t *testing.T) {
		list, err := svc.ListMatchDayReports("", "", 2, 0)
		require.NoError(t, err)

		assert.Equal(t, 3, list.TotalRecords)
		assert.Len(t, list.Reports, 2)
		assert.True(t, list.HasMore)

		last, err := svc.ListMatchDayReports("", "", 2, 2)
		require.NoError(t, err)
		assert.Len(t, last.Reports, 1)
		assert.False(t, last.HasMore)
	})

	t.Run("date range narrows the listing", func(t *testing.T) {
		list, err := svc.ListMatchDayReports("2025-04-10", "2025-04-15", 20, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, list.TotalRecords)
		require.Len(t, list.Reports, 1)
		assert.Equal(t, ids[1], list.Reports[0].MatchDay.ID)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := svc.ListMatchDayReports("12/04/2025", "", 20, 0)
		assert.True(t, errors.Is(err, ErrDateFormat))
	})
}

func TestDateWithinRange(t *testing.T) {
	start := mustDate("2025-01-10")
	end := mustDate("2025-01-20")

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"before start", mustDate("2025-01-09"), false},
		{"on start", mustDate("2025-01-10"), true},
		{"inside", mustDate("2025-01-15"), true},
		{"on end", mustDate("2025-01-20"), true},
		{"after end", mustDate("2025-01-21"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dateWithinRange(tc.date, &start, &end))
		})
	}
}
