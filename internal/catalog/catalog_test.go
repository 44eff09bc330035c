package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	cat := Default()

	seen := make(map[string]bool)
	all := append(cat.All(), cat.Generic()...)
	require.NotEmpty(t, all)

	for _, a := range all {
		assert.NotEmpty(t, a.ID, "activity without id: %q", a.Name)
		assert.False(t, seen[a.ID], "duplicate activity id %q", a.ID)
		seen[a.ID] = true

		assert.NotEmpty(t, a.Name, "activity %s has no name", a.ID)
		assert.True(t, a.Category.Valid(), "activity %s has invalid category %q", a.ID, a.Category)
		assert.True(t, a.TimeSlot.Valid(), "activity %s has invalid time slot %q", a.ID, a.TimeSlot)
		assert.GreaterOrEqual(t, a.EstimatedCost, 0.0, "activity %s has negative cost", a.ID)
	}
}

func TestGenericPoolNeverEmpty(t *testing.T) {
	cat := Default()
	assert.NotEmpty(t, cat.Generic())
}

func TestDestinationKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tokyo", "tokyo"},
		{"  Paris  ", "paris"},
		{"Tokyo, Japan", "tokyo"},
		{"New York, NY, USA", "new york"},
		{"GOA", "goa"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DestinationKey(tt.in))
	}
}

func TestForDestination(t *testing.T) {
	cat := Default()

	for _, key := range cat.Destinations() {
		acts, ok := cat.ForDestination(key)
		require.True(t, ok, "declared destination %q not resolvable", key)
		assert.NotEmpty(t, acts)
		for _, a := range acts {
			assert.Equal(t, key, a.Destination)
		}
	}

	_, ok := cat.ForDestination("atlantis")
	assert.False(t, ok)
}

func TestBudgetTierCostBands(t *testing.T) {
	lo, hi := TierBudgetFriendly.CostBand()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 40.0, hi)

	lo, hi = TierMidRange.CostBand()
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 80.0, hi)

	lo, hi = TierLuxury.CostBand()
	assert.Equal(t, 50.0, lo)
	assert.Equal(t, 200.0, hi)

	// unrecognized tiers behave as mid-range
	lo, hi = BudgetTier("whatever").CostBand()
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 80.0, hi)
}

func TestTravelStyleDensity(t *testing.T) {
	assert.Equal(t, 2, StyleRelaxed.ActivitiesPerDay())
	assert.Equal(t, 3, StyleModerate.ActivitiesPerDay())
	assert.Equal(t, 4, StylePacked.ActivitiesPerDay())
	assert.Equal(t, 3, TravelStyle("unknown").ActivitiesPerDay())
}
