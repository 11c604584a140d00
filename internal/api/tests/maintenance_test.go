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

func TestMaintenanceLog(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)
	ctx := context.Background()

	// Test case 1: Recording a maintenance entry
	w := testutils.PerformForm(testCtx.Router, http.MethodPost, "/add_maintenance", url.Values{
		"maintenance_date": {"2026-03-10"},
		"description":      {"Chain swap"},
	}, testCtx.SessionCookie)

	assert.Equal(t, http.StatusFound, w.Code)

	records, err := testCtx.Repository.ListMaintenances(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-03-10", records[0].Date)
	assert.Equal(t, "Chain swap", records[0].Description)

	// Test case 2: A bad date is rejected
	w = testutils.PerformForm(testCtx.Router, http.MethodPost, "/add_maintenance", url.Values{
		"maintenance_date": {"soon"},
		"description":      {"Brake pads"},
	}, testCtx.SessionCookie)

	assert.Equal(t, http.StatusFound, w.Code)

	records, err = testCtx.Repository.ListMaintenances(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// Test case 3: Removing the entry
	w = testutils.PerformForm(testCtx.Router, http.MethodGet,
		"/remove_maintenance/"+itemID(records[0].ID), nil, testCtx.SessionCookie)
	assert.Equal(t, http.StatusFound, w.Code)

	records, err = testCtx.Repository.ListMaintenances(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMaintenanceTypesSortedAndDeduplicated(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)
	ctx := context.Background()

	for _, d := range []string{"Wheels", "Brakes", "Chain", "Brakes"} {
		w := testutils.PerformForm(testCtx.Router, http.MethodPost, "/add_maintenance_type", url.Values{
			"description": {d},
		}, testCtx.SessionCookie)
		assert.Equal(t, http.StatusFound, w.Code)
	}

	types, err := testCtx.Repository.ListMaintenanceTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 3, "the duplicate must be silently skipped")
	assert.Equal(t, "Brakes", types[0].Description)
	assert.Equal(t, "Chain", types[1].Description)
	assert.Equal(t, "Wheels", types[2].Description)
}
