package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatiadventure/household-server/internal/models"
)

func TestMonthlyTotals(t *testing.T) {
	expenses := []models.Expense{
		{Date: "2024-01-05", Description: "Food", AmountCents: 1000},
		{Date: "2024-01-20", Description: "Transport", AmountCents: 550},
		{Date: "2024-02-01", Description: "Food", AmountCents: 2000},
	}

	totals := monthlyTotals(expenses)

	require.Len(t, totals, 2)
	assert.Equal(t, models.MonthTotal{Month: "2024-01", Cents: 1550}, totals[0])
	assert.Equal(t, models.MonthTotal{Month: "2024-02", Cents: 2000}, totals[1])
}

func TestMonthlyTotalsSkipsBadDates(t *testing.T) {
	expenses := []models.Expense{
		{Date: "not-a-date", Description: "Food", AmountCents: 9999},
		{Date: "2024-03-15", Description: "Food", AmountCents: 100},
	}

	totals := monthlyTotals(expenses)

	require.Len(t, totals, 1)
	assert.Equal(t, "2024-03", totals[0].Month)
	assert.Equal(t, int64(100), totals[0].Cents)
}

func TestMonthlyTotalsEmpty(t *testing.T) {
	assert.Empty(t, monthlyTotals(nil))
}

func TestYearlyByCategory(t *testing.T) {
	expenses := []models.Expense{
		{Date: "2025-04-01", Description: "Food", AmountCents: 1200},
		{Date: "2025-06-10", Description: "Bills", AmountCents: 3000},
		{Date: "2025-07-02", Description: "Bills", AmountCents: 500},
		{Date: "2024-12-31", Description: "Food", AmountCents: 9900},
	}

	totals := yearlyByCategory(expenses, 2025)

	require.Len(t, totals, 2)
	assert.Equal(t, models.CategoryTotal{Description: "Bills", Cents: 3500}, totals[0])
	assert.Equal(t, models.CategoryTotal{Description: "Food", Cents: 1200}, totals[1],
		"last year's spending must not leak into this year's report")
}

func TestYearlyByCategoryEmpty(t *testing.T) {
	assert.Empty(t, yearlyByCategory(nil, 2025))
}
