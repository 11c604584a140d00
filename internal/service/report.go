package service

import (
	"sort"
	"time"

	"github.com/tatiadventure/household-server/internal/models"
)

// Expense report aggregation. Both views are folded from the raw rows on
// every request; amounts are summed as integer cents so totals stay exact
// no matter how many small entries accumulate.

// monthlyTotals groups all expenses by the YYYY-MM of their date and sums
// the amounts. Buckets are returned sorted by month ascending. Rows whose
// date no longer parses are skipped rather than failing the whole report.
func monthlyTotals(expenses []models.Expense) []models.MonthTotal {
	byMonth := make(map[string]int64)
	for _, e := range expenses {
		t, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			continue
		}
		byMonth[t.Format("2006-01")] += e.AmountCents
	}

	totals := make([]models.MonthTotal, 0, len(byMonth))
	for month, cents := range byMonth {
		totals = append(totals, models.MonthTotal{Month: month, Cents: cents})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month < totals[j].Month
	})

	return totals
}

// yearlyByCategory sums the expenses of the given calendar year grouped by
// category description, sorted by description ascending. Expenses from other
// years are excluded.
func yearlyByCategory(expenses []models.Expense, year int) []models.CategoryTotal {
	byCategory := make(map[string]int64)
	for _, e := range expenses {
		t, err := time.Parse(dateLayout, e.Date)
		if err != nil || t.Year() != year {
			continue
		}
		byCategory[e.Description] += e.AmountCents
	}

	totals := make([]models.CategoryTotal, 0, len(byCategory))
	for description, cents := range byCategory {
		totals = append(totals, models.CategoryTotal{Description: description, Cents: cents})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Description < totals[j].Description
	})

	return totals
}
