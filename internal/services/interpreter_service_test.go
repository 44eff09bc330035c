package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/catalog"
)

func TestExtractPreferencesEmptyQuery(t *testing.T) {
	svc := NewInterpreterService()

	got := svc.ExtractPreferences("")

	assert.Nil(t, got.Destination)
	assert.Nil(t, got.Duration)
	assert.Nil(t, got.Budget)
	assert.Nil(t, got.Interests)
	assert.Nil(t, got.GroupSize)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.SpecificRequests)
}

func TestExtractPreferencesFullQuery(t *testing.T) {
	svc := NewInterpreterService()

	got := svc.ExtractPreferences("Plan a luxury 5-day trip to Paris for 2 people in december 2030, focus on museums and fine dining")

	require.NotNil(t, got.Destination)
	assert.Equal(t, "Paris", *got.Destination)

	require.NotNil(t, got.Duration)
	assert.Equal(t, 5, *got.Duration)

	require.NotNil(t, got.Budget)
	assert.Equal(t, catalog.TierLuxury, *got.Budget)

	require.NotNil(t, got.GroupSize)
	assert.Equal(t, 2, *got.GroupSize)

	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2030-12-01", *got.StartDate)

	assert.Contains(t, got.Interests, "culture")
	assert.Contains(t, got.Interests, "dining")

	assert.Equal(t, []string{"museums", "fine dining"}, got.SpecificRequests)
}

func TestExtractDestinationClosedWorld(t *testing.T) {
	svc := NewInterpreterService()

	got := svc.ExtractPreferences("3 days in tokyo please")
	require.NotNil(t, got.Destination)
	assert.Equal(t, "Tokyo", *got.Destination)
	require.NotNil(t, got.Duration)
	assert.Equal(t, 3, *got.Duration)

	got = svc.ExtractPreferences("a week in Wakanda")
	assert.Nil(t, got.Destination)
}

func TestExtractBudgetSynonyms(t *testing.T) {
	svc := NewInterpreterService()

	tests := []struct {
		query string
		want  catalog.BudgetTier
	}{
		{"cheap getaway to Goa", catalog.TierBudgetFriendly},
		{"budget-friendly trip to Rome", catalog.TierBudgetFriendly},
		{"mid-range stay in Bali", catalog.TierMidRange},
		{"moderate budget for Bangkok", catalog.TierMidRange},
		{"high-end holiday in Rome", catalog.TierLuxury},
		{"luxury escape", catalog.TierLuxury},
	}

	for _, tt := range tests {
		got := svc.ExtractPreferences(tt.query)
		require.NotNil(t, got.Budget, "query %q", tt.query)
		assert.Equal(t, tt.want, *got.Budget, "query %q", tt.query)
	}

	got := svc.ExtractPreferences("a trip somewhere nice")
	assert.Nil(t, got.Budget)
}

func TestExtractStartDateDefaultsCurrentYear(t *testing.T) {
	svc := NewInterpreterService()

	got := svc.ExtractPreferences("visiting Rome in september")
	require.NotNil(t, got.StartDate)
	assert.Equal(t, fmt.Sprintf("%04d-09-01", time.Now().Year()), *got.StartDate)
}

func TestExtractSpecificRequestsSplitting(t *testing.T) {
	svc := NewInterpreterService()

	got := svc.ExtractPreferences("trip to Bali, interested in surfing and street food and temples")
	assert.Equal(t, []string{"surfing", "street food", "temples"}, got.SpecificRequests)
}

func TestExtractPreferencesDeterministic(t *testing.T) {
	svc := NewInterpreterService()

	query := "luxury 4-day trip to Rome for 3 people with art and history"
	first := svc.ExtractPreferences(query)
	second := svc.ExtractPreferences(query)
	assert.Equal(t, first, second)
}
