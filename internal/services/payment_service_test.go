package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
)

func newPaymentServiceFixture(t *testing.T) (PaymentService, *fakePlayerRepo, *fakeMatchDayRepo) {
	t.Helper()
	playerRepo := newFakePlayerRepo()
	matchDayRepo := newFakeMatchDayRepo()
	return NewPaymentService(newFakePaymentRepo(), playerRepo, matchDayRepo), playerRepo, matchDayRepo
}

func TestCreatePayment(t *testing.T) {
	t.Run("snapshots the player name", func(t *testing.T) {
		svc, playerRepo, _ := newPaymentServiceFixture(t)
		p := testPlayer(0, "Okello James", 10000, 5000)
		playerID, err := playerRepo.CreatePlayer(&p)
		require.NoError(t, err)

		payment, err := svc.CreatePayment(CreatePaymentRequest{
			PlayerID:    playerID,
			PaymentType: models.PaymentTypeMonthly,
			Amount:      10000,
			PaymentDate: "2025-03-05",
		})
		require.NoError(t, err)

		assert.Equal(t, "Okello James", payment.PlayerName)
		assert.Equal(t, mustDate("2025-03-05"), payment.PaymentDate)
		assert.Nil(t, payment.MatchDayID)
	})

	t.Run("rejects an unknown player", func(t *testing.T) {
		svc, _, _ := newPaymentServiceFixture(t)

		_, err := svc.CreatePayment(CreatePaymentRequest{
			PlayerID:    77,
			PaymentType: models.PaymentTypeMonthly,
			Amount:      10000,
			PaymentDate: "2025-03-05",
		})
		assert.True(t, errors.Is(err, ErrPlayerNotFound))
	})

	t.Run("rejects an unknown payment type", func(t *testing.T) {
		svc, playerRepo, _ := newPaymentServiceFixture(t)
		p := testPlayer(0, "Okello James", 10000, 5000)
		playerID, err := playerRepo.CreatePlayer(&p)
		require.NoError(t, err)

		_, err = svc.CreatePayment(CreatePaymentRequest{
			PlayerID:    playerID,
			PaymentType: "weekly",
			Amount:      10000,
			PaymentDate: "2025-03-05",
		})
		assert.True(t, errors.Is(err, ErrPaymentValidation))
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		svc, _, _ := newPaymentServiceFixture(t)

		_, err := svc.CreatePayment(CreatePaymentRequest{
			PlayerID:    1,
			PaymentType: models.PaymentTypeMonthly,
			Amount:      0,
			PaymentDate: "2025-03-05",
		})
		assert.True(t, errors.Is(err, ErrPaymentValidation))
	})

	t.Run("validates the linked match day exists", func(t *testing.T) {
		svc, playerRepo, matchDayRepo := newPaymentServiceFixture(t)
		p := testPlayer(0, "Okello James", 10000, 5000)
		playerID, err := playerRepo.CreatePlayer(&p)
		require.NoError(t, err)

		missing := int64(42)
		_, err = svc.CreatePayment(CreatePaymentRequest{
			PlayerID:    playerID,
			PaymentType: models.PaymentTypeMatchday,
			Amount:      5000,
			PaymentDate: "2025-04-12",
			MatchDayID:  &missing,
		})
		assert.True(t, errors.Is(err, ErrMatchDayNotFound))

		md := models.MatchDay{MatchDate: mustDate("2025-04-12"), MatchType: models.MatchTypeLeague}
		matchDayID, err := matchDayRepo.CreateMatchDay(&md)
		require.NoError(t, err)

		payment, err := svc.CreatePayment(CreatePaymentRequest{
			PlayerID:    playerID,
			PaymentType: models.PaymentTypeMatchday,
			Amount:      5000,
			PaymentDate: "2025-04-12",
			MatchDayID:  &matchDayID,
		})
		require.NoError(t, err)
		require.NotNil(t, payment.MatchDayID)
		assert.Equal(t, matchDayID, *payment.MatchDayID)
	})
}

func TestGetPayments(t *testing.T) {
	svc, playerRepo, _ := newPaymentServiceFixture(t)
	p := testPlayer(0, "Okello James", 10000, 5000)
	playerID, err := playerRepo.CreatePlayer(&p)
	require.NoError(t, err)

	for _, c := range []struct {
		paymentType string
		date        string
	}{
		{models.PaymentTypeMonthly, "2025-03-05"},
		{models.PaymentTypeMonthly, "2025-04-05"},
		{models.PaymentTypePitch, "2025-03-08"},
	} {
		_, err := svc.CreatePayment(CreatePaymentRequest{
			PlayerID:    playerID,
			PaymentType: c.paymentType,
			Amount:      5000,
			PaymentDate: c.date,
		})
		require.NoError(t, err)
	}

	t.Run("filters by type", func(t *testing.T) {
		payments, total, err := svc.GetPayments(PaymentListFilter{PaymentType: models.PaymentTypeMonthly}, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, payments, 2)
	})

	t.Run("filters by date range", func(t *testing.T) {
		payments, total, err := svc.GetPayments(PaymentListFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"}, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, payments, 2)
	})

	t.Run("rejects an invalid filter type", func(t *testing.T) {
		_, _, err := svc.GetPayments(PaymentListFilter{PaymentType: "weekly"}, 20, 0)
		assert.True(t, errors.Is(err, ErrPaymentValidation))
	})

	t.Run("rejects a malformed filter date", func(t *testing.T) {
		_, _, err := svc.GetPayments(PaymentListFilter{StartDate: "03-01-2025"}, 20, 0)
		assert.True(t, errors.Is(err, ErrDateFormat))
	})
}

func TestUpdatePayment(t *testing.T) {
	svc, playerRepo, _ := newPaymentServiceFixture(t)
	p := testPlayer(0, "Okello James", 10000, 5000)
	playerID, err := playerRepo.CreatePlayer(&p)
	require.NoError(t, err)

	created, err := svc.CreatePayment(CreatePaymentRequest{
		PlayerID:    playerID,
		PaymentType: models.PaymentTypeMonthly,
		Amount:      5000,
		PaymentDate: "2025-03-05",
	})
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		amount := 7500.0
		updated, err := svc.UpdatePayment(created.ID, UpdatePaymentRequest{Amount: &amount})
		require.NoError(t, err)

		assert.Equal(t, 7500.0, updated.Amount)
		assert.Equal(t, models.PaymentTypeMonthly, updated.PaymentType)
		assert.Equal(t, "Okello James", updated.PlayerName)
	})

	t.Run("unknown payment maps to not found", func(t *testing.T) {
		amount := 7500.0
		_, err := svc.UpdatePayment(999, UpdatePaymentRequest{Amount: &amount})
		assert.True(t, errors.Is(err, ErrPaymentNotFound))
	})
}

func TestDeletePaymentNotFound(t *testing.T) {
	svc, _, _ := newPaymentServiceFixture(t)

	err := svc.DeletePayment(999)
	assert.True(t, errors.Is(err, ErrPaymentNotFound))
}
