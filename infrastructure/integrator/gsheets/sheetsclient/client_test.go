package sheetsclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpulse/follower-report-api/internal/config"
)

func TestFetchRange_RefusesWithoutCredentials(t *testing.T) {
	client := NewClient(&config.Config{})

	sheet, err := client.FetchRange(context.Background(), "Employees")

	require.Error(t, err)
	assert.Nil(t, sheet)

	var missing *config.MissingEnvError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Vars, "GOOGLE_SHEET_ID")
}

func TestRawSheetFromValues(t *testing.T) {
	sheet := rawSheetFromValues([][]interface{}{
		{"First name", "January"},
		{"Ann", float64(120)},
		{"Bob", nil},
	})

	assert.Equal(t, []string{"First name", "January"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []string{"Ann", "120"}, sheet.Rows[0])
	assert.Equal(t, []string{"Bob", ""}, sheet.Rows[1])
}

func TestRawSheetFromValues_Empty(t *testing.T) {
	sheet := rawSheetFromValues(nil)

	assert.Empty(t, sheet.Headers)
	assert.Empty(t, sheet.Rows)
}

func TestCellStrings_NumericPrecision(t *testing.T) {
	cells := cellStrings([]interface{}{float64(1234), 12.5, true})

	assert.Equal(t, []string{"1234", "12.5", "true"}, cells)
}
