package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/catalog"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

type stubPlanClient struct {
	calls int
	json  string
	err   error
}

func (s *stubPlanClient) GeneratePlanJSON(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.json, nil
}

func newTestPlanner(client utils.PlanClientInterface, seed int64) *PlannerService {
	return &PlannerService{
		catalog:    catalog.Default(),
		planClient: client,
		planCache:  gocache.New(time.Minute, time.Minute),
		rng:        rand.New(rand.NewSource(seed)),
		now: func() time.Time {
			return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

func tokyoRequest() request_models.PlanRequest {
	return request_models.PlanRequest{
		Destination: "Tokyo",
		Duration:    3,
		Budget:      catalog.TierMidRange,
		TravelStyle: catalog.StyleModerate,
		GroupSize:   2,
		StartDate:   "2026-05-04",
	}
}

func TestSynthesizeItineraryShape(t *testing.T) {
	svc := newTestPlanner(nil, 1)

	plan, err := svc.SynthesizeItinerary(tokyoRequest())
	require.NoError(t, err)
	require.Len(t, plan.Days, 3)
	assert.Equal(t, "Tokyo", plan.Destination)
	assert.Equal(t, 3, plan.Duration)

	start, err := time.Parse("2006-01-02", "2026-05-04")
	require.NoError(t, err)

	seen := make(map[string]bool)
	var tripCost float64
	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.Day)
		assert.Equal(t, start.AddDate(0, 0, i).Format(dayDateFormat), day.Date)
		assert.NotEmpty(t, day.Activities)
		assert.LessOrEqual(t, len(day.Activities), 3)

		var dayCost float64
		for _, a := range day.Activities {
			assert.False(t, seen[a.ID], "activity %s scheduled twice", a.ID)
			seen[a.ID] = true
			dayCost += a.EstimatedCost
		}
		assert.InDelta(t, dayCost, day.TotalCost, 0.001)
		tripCost += dayCost
	}

	assert.InDelta(t, tripCost*2, plan.TotalBudget, 0.001)
	assert.NotEmpty(t, plan.Days[0].Notes)
	assert.NotEmpty(t, plan.Days[len(plan.Days)-1].Notes)
}

func TestSynthesizeRelaxedStyleCapsDailyActivities(t *testing.T) {
	svc := newTestPlanner(nil, 2)

	req := tokyoRequest()
	req.TravelStyle = catalog.StyleRelaxed

	plan, err := svc.SynthesizeItinerary(req)
	require.NoError(t, err)
	for _, day := range plan.Days {
		assert.LessOrEqual(t, len(day.Activities), 2)
	}
}

func TestSynthesizeRespectsBudgetBand(t *testing.T) {
	svc := newTestPlanner(nil, 3)

	req := tokyoRequest()
	req.Budget = catalog.TierBudgetFriendly

	plan, err := svc.SynthesizeItinerary(req)
	require.NoError(t, err)
	for _, day := range plan.Days {
		for _, a := range day.Activities {
			assert.LessOrEqual(t, a.EstimatedCost, 40.0, "activity %s exceeds the budget band", a.ID)
		}
	}
}

func TestSynthesizeInterestFiltering(t *testing.T) {
	svc := newTestPlanner(nil, 4)

	req := tokyoRequest()
	req.Interests = []string{"culture"}

	plan, err := svc.SynthesizeItinerary(req)
	require.NoError(t, err)
	for _, day := range plan.Days {
		for _, a := range day.Activities {
			assert.Greater(t, interestMatchCount(a, req.Interests), 0,
				"activity %s does not match any requested interest", a.ID)
		}
	}
}

func TestSynthesizeSpecificRequestsEligibility(t *testing.T) {
	svc := newTestPlanner(nil, 12)

	req := tokyoRequest()
	req.SpecificRequests = "sushi, shopping"
	clauses := []string{"sushi", "shopping"}

	plan, err := svc.SynthesizeItinerary(req)
	require.NoError(t, err)

	scheduled := 0
	for _, day := range plan.Days {
		for _, a := range day.Activities {
			scheduled++
			assert.True(t, matchesAnyClause(a, clauses),
				"activity %s matches no requested clause", a.ID)
		}
	}
	assert.Greater(t, scheduled, 0)
}

func TestSynthesizeCultureRelaxedTokyoProperties(t *testing.T) {
	svc := newTestPlanner(nil, 13)

	req := request_models.PlanRequest{
		Destination: "Tokyo",
		Duration:    3,
		Budget:      catalog.TierMidRange,
		TravelStyle: catalog.StyleRelaxed,
		GroupSize:   2,
		Interests:   []string{"culture"},
	}

	plan, err := svc.SynthesizeItinerary(req)
	require.NoError(t, err)
	require.Len(t, plan.Days, 3)

	var tripCost float64
	for _, day := range plan.Days {
		assert.LessOrEqual(t, len(day.Activities), 2)
		for _, a := range day.Activities {
			assert.GreaterOrEqual(t, a.EstimatedCost, 10.0)
			assert.LessOrEqual(t, a.EstimatedCost, 80.0)
			assert.Greater(t, interestMatchCount(a, req.Interests), 0)
			tripCost += a.EstimatedCost
		}
	}
	assert.InDelta(t, tripCost*2, plan.TotalBudget, 0.001)
}

func TestSynthesizeDestinationOutranksGenericPadding(t *testing.T) {
	svc := newTestPlanner(nil, 14)

	// Mid-range Tokyo has six eligible destination entries; a 3x3 plan leaves
	// one ranked slot over, which must come out of the generic padding.
	plan, err := svc.SynthesizeItinerary(tokyoRequest())
	require.NoError(t, err)

	scheduled := make(map[string]bool)
	for _, day := range plan.Days {
		for _, a := range day.Activities {
			scheduled[a.ID] = true
		}
	}

	for _, id := range []string{"tokyo-02", "tokyo-03", "tokyo-05", "tokyo-07", "tokyo-08", "tokyo-10"} {
		assert.True(t, scheduled[id], "eligible destination activity %s displaced by generic padding", id)
	}
}

func TestSynthesizeUnknownDestinationUsesGenericPool(t *testing.T) {
	svc := newTestPlanner(nil, 5)

	req := tokyoRequest()
	req.Destination = "Atlantis"
	req.Duration = 2

	plan, err := svc.SynthesizeItinerary(req)
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", plan.Destination)
	for _, day := range plan.Days {
		require.NotEmpty(t, day.Activities)
		for _, a := range day.Activities {
			assert.True(t, strings.HasPrefix(a.ID, "generic-"), "expected generic activity, got %s", a.ID)
		}
	}
}

func TestSynthesizeDeterministicForSameSeed(t *testing.T) {
	first, err := newTestPlanner(nil, 42).SynthesizeItinerary(tokyoRequest())
	require.NoError(t, err)
	second, err := newTestPlanner(nil, 42).SynthesizeItinerary(tokyoRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSynthesizeRejectsMalformedInput(t *testing.T) {
	svc := newTestPlanner(nil, 6)

	req := tokyoRequest()
	req.Destination = "   "
	_, err := svc.SynthesizeItinerary(req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = tokyoRequest()
	req.Duration = 0
	_, err = svc.SynthesizeItinerary(req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = tokyoRequest()
	req.GroupSize = 0
	_, err = svc.SynthesizeItinerary(req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateItineraryFallsBackOnProviderError(t *testing.T) {
	client := &stubPlanClient{err: errors.New("provider down")}
	svc := newTestPlanner(client, 7)

	plan, err := svc.GenerateItinerary(context.Background(), tokyoRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Len(t, plan.Days, 3)
}

func TestGenerateItineraryFallsBackOnGarbageResponse(t *testing.T) {
	client := &stubPlanClient{json: "certainly! here is your trip"}
	svc := newTestPlanner(client, 8)

	plan, err := svc.GenerateItinerary(context.Background(), tokyoRequest())
	require.NoError(t, err)
	assert.Len(t, plan.Days, 3)
}

func TestGenerateItineraryUsesProviderAndCaches(t *testing.T) {
	client := &stubPlanClient{json: `{
		"destination": "Tokyo",
		"duration": 1,
		"totalBudget": 999999,
		"days": [
			{
				"day": 9,
				"activities": [
					{"name": "Sushi Breakfast", "estimatedCost": 30, "category": "dining", "timeSlot": "morning"},
					{"name": "Mystery Walk", "estimatedCost": 10, "category": "nonsense", "timeSlot": "later"}
				]
			}
		]
	}`}
	svc := newTestPlanner(client, 9)

	req := tokyoRequest()
	plan, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, 1, plan.Days[0].Day, "day numbers are renumbered contiguously")
	assert.NotEmpty(t, plan.Days[0].Date)

	// provider totals are never trusted
	assert.InDelta(t, 40.0*float64(req.GroupSize), plan.TotalBudget, 0.001)

	acts := plan.Days[0].Activities
	require.Len(t, acts, 2)
	assert.Equal(t, catalog.CategoryDining, acts[0].Category)
	assert.Equal(t, catalog.CategorySightseeing, acts[1].Category, "unknown categories default")
	assert.Equal(t, catalog.SlotAfternoon, acts[1].TimeSlot, "unknown slots default")
	assert.NotEmpty(t, acts[0].ID)

	_, err = svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls, "second generation should be served from cache")
}

func TestNormalizeAIPlanRejectsEmptyDays(t *testing.T) {
	svc := newTestPlanner(nil, 10)

	_, err := svc.normalizeAIPlan(`{"destination": "Tokyo", "days": []}`, tokyoRequest())
	assert.Error(t, err)

	_, err = svc.normalizeAIPlan(`not json at all`, tokyoRequest())
	assert.Error(t, err)
}

func TestNormalizeAIPlanClampsNegativeCosts(t *testing.T) {
	svc := newTestPlanner(nil, 11)

	plan, err := svc.normalizeAIPlan(`{"days": [{"day": 1, "activities": [{"name": "Oops", "estimatedCost": -50}]}]}`, tokyoRequest())
	require.NoError(t, err)
	assert.Equal(t, 0.0, plan.Days[0].Activities[0].EstimatedCost)
	assert.Equal(t, 0.0, plan.TotalBudget)
	assert.Equal(t, "Tokyo", plan.Destination, "destination falls back to the request")
}

func TestPlanRequestFromExtractedDefaults(t *testing.T) {
	req := PlanRequestFromExtracted(response_models.ExtractedPreferences{})

	assert.Equal(t, 3, req.Duration)
	assert.Equal(t, catalog.TierMidRange, req.Budget)
	assert.Equal(t, catalog.StyleModerate, req.TravelStyle)
	assert.Equal(t, 2, req.GroupSize)
	assert.Equal(t, "hotel", req.Accommodation)
}

func TestPlanRequestFromExtractedOverrides(t *testing.T) {
	dest := "Rome"
	duration := 6
	tier := catalog.TierLuxury
	group := 4
	start := "2026-09-01"

	req := PlanRequestFromExtracted(response_models.ExtractedPreferences{
		Destination:      &dest,
		Duration:         &duration,
		Budget:           &tier,
		Interests:        []string{"culture"},
		GroupSize:        &group,
		StartDate:        &start,
		SpecificRequests: []string{"pasta", "ruins"},
	})

	assert.Equal(t, "Rome", req.Destination)
	assert.Equal(t, 6, req.Duration)
	assert.Equal(t, catalog.TierLuxury, req.Budget)
	assert.Equal(t, []string{"culture"}, req.Interests)
	assert.Equal(t, 4, req.GroupSize)
	assert.Equal(t, "2026-09-01", req.StartDate)
	assert.Equal(t, "pasta, ruins", req.SpecificRequests)
}
