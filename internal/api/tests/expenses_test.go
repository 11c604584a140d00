package api_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatiadventure/household-server/internal/api/testutils"
)

func TestAddExpense(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)
	ctx := context.Background()

	// Test case 1: Adding an expense with a dot amount
	w := testutils.PerformForm(testCtx.Router, http.MethodPost, "/add_expense", url.Values{
		"date":        {"2026-01-05"},
		"description": {"Food"},
		"amount":      {"10.00"},
		"spender":     {"Anna"},
	}, testCtx.SessionCookie)

	assert.Equal(t, http.StatusFound, w.Code)

	expenses, err := testCtx.Repository.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, int64(1000), expenses[0].AmountCents)
	assert.Equal(t, "2026-01-05", expenses[0].Date)
	assert.Equal(t, "Anna", expenses[0].Spender)

	// Test case 2: Comma decimal separator is accepted
	w = testutils.PerformForm(testCtx.Router, http.MethodPost, "/add_expense", url.Values{
		"date":        {"2026-01-20"},
		"description": {"Food"},
		"amount":      {"5,50"},
		"spender":     {"Anna"},
	}, testCtx.SessionCookie)

	assert.Equal(t, http.StatusFound, w.Code)

	expenses, err = testCtx.Repository.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	var centsSeen []int64
	for _, e := range expenses {
		centsSeen = append(centsSeen, e.AmountCents)
	}
	assert.Contains(t, centsSeen, int64(550))
}

func TestAddExpenseValidation(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)
	ctx := context.Background()

	cases := []url.Values{
		// bad date
		{"date": {"05/01/2026"}, "description": {"Food"}, "amount": {"10"}, "spender": {"Anna"}},
		// bad amount
		{"date": {"2026-01-05"}, "description": {"Food"}, "amount": {"ten"}, "spender": {"Anna"}},
		// negative amount
		{"date": {"2026-01-05"}, "description": {"Food"}, "amount": {"-5"}, "spender": {"Anna"}},
		// missing spender
		{"date": {"2026-01-05"}, "description": {"Food"}, "amount": {"10"}, "spender": {"  "}},
	}

	for _, form := range cases {
		w := testutils.PerformForm(testCtx.Router, http.MethodPost, "/add_expense", form, testCtx.SessionCookie)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	}

	expenses, err := testCtx.Repository.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses, "invalid expenses must never be recorded")
}

func TestRemoveExpense(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)
	ctx := context.Background()

	testutils.PerformForm(testCtx.Router, http.MethodPost, "/add_expense", url.Values{
		"date":        {"2026-02-01"},
		"description": {"Bills"},
		"amount":      {"20"},
		"spender":     {"Marco"},
	}, testCtx.SessionCookie)

	expenses, err := testCtx.Repository.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)

	w := testutils.PerformForm(testCtx.Router, http.MethodGet,
		"/remove_expense/"+itemID(expenses[0].ID), nil, testCtx.SessionCookie)
	assert.Equal(t, http.StatusFound, w.Code)

	expenses, err = testCtx.Repository.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	// Removing again is a silent no-op
	w = testutils.PerformForm(testCtx.Router, http.MethodGet, "/remove_expense/12345", nil, testCtx.SessionCookie)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestExpenseReportOnHome(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	for _, e := range []url.Values{
		{"date": {"2026-01-05"}, "description": {"Food"}, "amount": {"10.00"}, "spender": {"Anna"}},
		{"date": {"2026-01-20"}, "description": {"Food"}, "amount": {"5.50"}, "spender": {"Anna"}},
		{"date": {"2026-02-01"}, "description": {"Bills"}, "amount": {"20.00"}, "spender": {"Marco"}},
	} {
		w := testutils.PerformForm(testCtx.Router, http.MethodPost, "/add_expense", e, testCtx.SessionCookie)
		require.Equal(t, http.StatusFound, w.Code)
	}

	w := testutils.PerformForm(testCtx.Router, http.MethodGet, "/", nil, testCtx.SessionCookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "2026-01")
	assert.Contains(t, body, "15.50", "January total should sum both Food expenses")
	assert.Contains(t, body, "2026-02")
	assert.Contains(t, body, "20.00")
}
