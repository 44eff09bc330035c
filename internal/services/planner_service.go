package services

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"tripforge/internal/catalog"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

const dayDateFormat = "Monday, January 2, 2006"

type PlannerServiceInterface interface {
	// GenerateItinerary produces a plan via the configured AI provider when
	// one is present, falling back to the catalog synthesizer on any provider
	// failure. With no provider it is the synthesizer.
	GenerateItinerary(ctx context.Context, prefs request_models.PlanRequest) (*response_models.Itinerary, error)

	// SynthesizeItinerary builds a plan from the static catalog only.
	SynthesizeItinerary(prefs request_models.PlanRequest) (*response_models.Itinerary, error)
}

type PlannerService struct {
	catalog    *catalog.Catalog
	planClient utils.PlanClientInterface
	planCache  *gocache.Cache

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewPlannerService wires the synthesizer and the optional AI provider.
// planClient may be nil (mock-only mode). The random source is injectable so
// tests can pin the tie-break shuffle.
func NewPlannerService(cat *catalog.Catalog, planClient utils.PlanClientInterface, rng *rand.Rand) PlannerServiceInterface {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlannerService{
		catalog:    cat,
		planClient: planClient,
		planCache:  gocache.New(time.Hour, 2*time.Hour),
		rng:        rng,
		now:        time.Now,
	}
}

func (s *PlannerService) GenerateItinerary(ctx context.Context, prefs request_models.PlanRequest) (*response_models.Itinerary, error) {
	if err := validatePlanRequest(&prefs); err != nil {
		return nil, err
	}

	if s.planClient == nil {
		return s.SynthesizeItinerary(prefs)
	}

	cacheKey := planCacheKey(prefs)
	if cached, found := s.planCache.Get(cacheKey); found {
		log.Printf("Plan cache hit for %s", prefs.Destination)
		return cached.(*response_models.Itinerary), nil
	}

	rawJSON, err := s.planClient.GeneratePlanJSON(ctx, buildItineraryPrompt(prefs))
	if err != nil {
		log.Printf("AI provider error, falling back to catalog synthesizer: %v", err)
		return s.SynthesizeItinerary(prefs)
	}

	plan, err := s.normalizeAIPlan(rawJSON, prefs)
	if err != nil {
		log.Printf("AI response rejected, falling back to catalog synthesizer: %v", err)
		return s.SynthesizeItinerary(prefs)
	}

	s.planCache.Set(cacheKey, plan, gocache.DefaultExpiration)
	return plan, nil
}

// SynthesizeItinerary selects and arranges catalog activities into a
// multi-day plan: destination pool (generic fallback when unknown),
// eligibility by interests, budget band and specific requests, shuffle-then-
// rank prioritization, slot-ordered daily assembly capped at the travel-style
// target, and budget aggregation over the scheduled activities. Filtered
// generic activities pad the ranked tail when a known destination's pool runs
// short, so destination entries always outrank the padding and exhausted days
// only shrink once both supplies are spent.
func (s *PlannerService) SynthesizeItinerary(prefs request_models.PlanRequest) (*response_models.Itinerary, error) {
	if err := validatePlanRequest(&prefs); err != nil {
		return nil, err
	}

	pool, known := s.catalog.ForDestination(catalog.DestinationKey(prefs.Destination))
	if !known || len(pool) == 0 {
		pool = s.catalog.Generic()
	}

	eligible := filterEligible(pool, prefs)
	if len(eligible) == 0 {
		// Destination supply cannot satisfy the filters; the generic pool
		// bypasses them so there is always something to schedule.
		eligible = s.catalog.Generic()
	}

	// Destination picks come first; filtered generic extras pad the tail so
	// small catalogs do not leave later days empty.
	ranked := s.prioritize(eligible, prefs.Interests)
	inRanked := make(map[string]bool, len(ranked))
	for _, a := range ranked {
		inRanked[a.ID] = true
	}
	var extras []catalog.Activity
	for _, g := range filterEligible(s.catalog.Generic(), prefs) {
		if !inRanked[g.ID] {
			extras = append(extras, g)
		}
	}
	ranked = append(ranked, s.prioritize(extras, prefs.Interests)...)

	start := s.startDate(prefs.StartDate)
	target := prefs.TravelStyle.ActivitiesPerDay()
	used := make(map[string]bool, len(ranked))

	days := make([]response_models.DayPlan, 0, prefs.Duration)
	var tripCost float64

	for day := 1; day <= prefs.Duration; day++ {
		var activities []catalog.Activity

		// Slot pass: one pick per preferred time slot, in slot order.
		for _, slot := range catalog.Slots() {
			if len(activities) >= target {
				break
			}
			for _, a := range ranked {
				if used[a.ID] || a.TimeSlot != slot {
					continue
				}
				used[a.ID] = true
				activities = append(activities, a)
				break
			}
		}

		// Fill pass: top up to the target in priority order, any slot.
		for _, a := range ranked {
			if len(activities) >= target {
				break
			}
			if used[a.ID] {
				continue
			}
			used[a.ID] = true
			activities = append(activities, a)
		}

		var dayCost float64
		for _, a := range activities {
			dayCost += a.EstimatedCost
		}
		tripCost += dayCost

		days = append(days, response_models.DayPlan{
			Day:        day,
			Date:       start.AddDate(0, 0, day-1).Format(dayDateFormat),
			Activities: activities,
			Notes:      dayNotes(day, prefs),
			TotalCost:  dayCost,
		})
	}

	return &response_models.Itinerary{
		Destination: prefs.Destination,
		Duration:    prefs.Duration,
		TotalBudget: tripCost * float64(prefs.GroupSize),
		Days:        days,
		Preferences: prefs,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	}, nil
}

// validatePlanRequest rejects malformed preferences and fills the defaulted
// enum fields.
func validatePlanRequest(prefs *request_models.PlanRequest) error {
	prefs.Destination = strings.TrimSpace(prefs.Destination)
	if prefs.Destination == "" {
		return utils.ErrInvalidInput
	}
	if prefs.Duration < 1 {
		return utils.ErrInvalidInput
	}
	if prefs.GroupSize < 1 {
		return utils.ErrInvalidInput
	}
	if !prefs.Budget.Valid() {
		prefs.Budget = catalog.TierMidRange
	}
	if !prefs.TravelStyle.Valid() {
		prefs.TravelStyle = catalog.StyleModerate
	}
	return nil
}

// filterEligible applies the three eligibility rules: interest match (or no
// interests at all), budget cost band, and specific-request clause match.
func filterEligible(pool []catalog.Activity, prefs request_models.PlanRequest) []catalog.Activity {
	minCost, maxCost := prefs.Budget.CostBand()
	clauses := requestClauses(prefs.SpecificRequests)

	var eligible []catalog.Activity
	for _, a := range pool {
		if len(prefs.Interests) > 0 && interestMatchCount(a, prefs.Interests) == 0 {
			continue
		}
		if a.EstimatedCost < minCost || a.EstimatedCost > maxCost {
			continue
		}
		if len(clauses) > 0 && !matchesAnyClause(a, clauses) {
			continue
		}
		eligible = append(eligible, a)
	}
	return eligible
}

// interestMatchCount counts how many interests hit the activity's tags or
// category, substring match in either direction, case-insensitive.
func interestMatchCount(a catalog.Activity, interests []string) int {
	category := strings.ToLower(string(a.Category))

	count := 0
	for _, interest := range interests {
		in := strings.ToLower(strings.TrimSpace(interest))
		if in == "" {
			continue
		}
		if strings.Contains(category, in) || strings.Contains(in, category) {
			count++
			continue
		}
		for _, tag := range a.Tags {
			t := strings.ToLower(tag)
			if strings.Contains(t, in) || strings.Contains(in, t) {
				count++
				break
			}
		}
	}
	return count
}

func requestClauses(requests string) []string {
	var clauses []string
	for _, clause := range strings.Split(strings.ToLower(requests), ",") {
		clause = strings.TrimSpace(clause)
		if clause != "" {
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

func matchesAnyClause(a catalog.Activity, clauses []string) bool {
	haystack := strings.ToLower(a.Name + " " + a.Description + " " + strings.Join(a.Tags, " "))
	for _, clause := range clauses {
		if strings.Contains(haystack, clause) {
			return true
		}
	}
	return false
}

// prioritize orders eligible activities by descending interest-match count.
// Ties are broken by a shuffle so repeated generations of the same
// preferences vary; the shuffle source is the injected rng.
func (s *PlannerService) prioritize(eligible []catalog.Activity, interests []string) []catalog.Activity {
	ranked := make([]catalog.Activity, len(eligible))
	copy(ranked, eligible)

	s.mu.Lock()
	s.rng.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	s.mu.Unlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return interestMatchCount(ranked[i], interests) > interestMatchCount(ranked[j], interests)
	})
	return ranked
}

func (s *PlannerService) startDate(startDate string) time.Time {
	if startDate != "" {
		if t, err := time.Parse("2006-01-02", startDate); err == nil {
			return t
		}
	}
	return s.now()
}

func dayNotes(day int, prefs request_models.PlanRequest) string {
	if day == 1 {
		return fmt.Sprintf("Welcome to %s! A %s pace leaves time to settle in and explore your accommodation area.",
			prefs.Destination, prefs.TravelStyle)
	}
	if day == prefs.Duration && prefs.Duration > 1 {
		return fmt.Sprintf("Last day in %s. Keep the schedule light and leave room for the journey home.",
			prefs.Destination)
	}
	return ""
}

func planCacheKey(prefs request_models.PlanRequest) string {
	raw, _ := json.Marshal(prefs)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%x", sum)[:16]
}

// aiPlanPayload is the strict response contract expected from a provider.
type aiPlanPayload struct {
	Destination    string                         `json:"destination"`
	Duration       int                            `json:"duration"`
	TotalBudget    float64                        `json:"totalBudget"`
	WeatherSummary string                         `json:"weatherSummary"`
	TravelTips     []string                       `json:"travelTips"`
	EmergencyInfo  *response_models.EmergencyInfo `json:"emergencyInfo"`
	Days           []aiDayPayload                 `json:"days"`
}

type aiDayPayload struct {
	Day        int                `json:"day"`
	Date       string             `json:"date"`
	Activities []catalog.Activity `json:"activities"`
	Notes      string             `json:"notes"`
	TravelTips []string           `json:"travelTips"`
}

// normalizeAIPlan validates and defaults every optional field of an untrusted
// provider response. Day numbers are renumbered contiguously and the total
// budget is always recomputed from activity costs times group size; an
// AI-supplied total is never trusted.
func (s *PlannerService) normalizeAIPlan(rawJSON string, prefs request_models.PlanRequest) (*response_models.Itinerary, error) {
	var payload aiPlanPayload
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(rawJSON)), &payload); err != nil {
		return nil, fmt.Errorf("invalid plan JSON: %w", err)
	}
	if len(payload.Days) == 0 {
		return nil, fmt.Errorf("plan contains no days")
	}

	destination := payload.Destination
	if destination == "" {
		destination = prefs.Destination
	}

	start := s.startDate(prefs.StartDate)

	days := make([]response_models.DayPlan, 0, len(payload.Days))
	var tripCost float64

	for i, rawDay := range payload.Days {
		date := rawDay.Date
		if date == "" {
			date = start.AddDate(0, 0, i).Format(dayDateFormat)
		}

		activities := make([]catalog.Activity, 0, len(rawDay.Activities))
		var dayCost float64
		for j, a := range rawDay.Activities {
			activities = append(activities, normalizeActivity(a, i+1, j+1))
			dayCost += activities[j].EstimatedCost
		}
		tripCost += dayCost

		days = append(days, response_models.DayPlan{
			Day:        i + 1,
			Date:       date,
			Activities: activities,
			Notes:      rawDay.Notes,
			TravelTips: rawDay.TravelTips,
			TotalCost:  dayCost,
		})
	}

	return &response_models.Itinerary{
		Destination:    destination,
		Duration:       len(days),
		TotalBudget:    tripCost * float64(prefs.GroupSize),
		WeatherSummary: payload.WeatherSummary,
		TravelTips:     payload.TravelTips,
		EmergencyInfo:  payload.EmergencyInfo,
		Days:           days,
		Preferences:    prefs,
		CreatedAt:      s.now().UTC().Format(time.RFC3339),
	}, nil
}

func normalizeActivity(a catalog.Activity, day, position int) catalog.Activity {
	if a.ID == "" {
		a.ID = fmt.Sprintf("day%d-activity%d", day, position)
	}
	if a.Name == "" {
		a.Name = "Planned activity"
	}
	if !a.Category.Valid() {
		a.Category = catalog.CategorySightseeing
	}
	if !a.TimeSlot.Valid() {
		a.TimeSlot = catalog.SlotAfternoon
	}
	if a.EstimatedCost < 0 {
		a.EstimatedCost = 0
	}
	return a
}

// buildItineraryPrompt renders the structured request plus the exact JSON
// response contract the normalizer expects.
func buildItineraryPrompt(prefs request_models.PlanRequest) string {
	var b strings.Builder

	b.WriteString("Create a detailed travel itinerary for the following requirements:\n\n")
	fmt.Fprintf(&b, "Destination: %s\n", prefs.Destination)
	fmt.Fprintf(&b, "Duration: %d days\n", prefs.Duration)
	fmt.Fprintf(&b, "Budget: %s\n", prefs.Budget)
	fmt.Fprintf(&b, "Group Size: %d people\n", prefs.GroupSize)
	fmt.Fprintf(&b, "Travel Style: %s\n", prefs.TravelStyle)
	if len(prefs.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(prefs.Interests, ", "))
	}
	if prefs.Accommodation != "" {
		fmt.Fprintf(&b, "Accommodation: %s\n", prefs.Accommodation)
	}
	if prefs.StartDate != "" {
		fmt.Fprintf(&b, "Start Date: %s\n", prefs.StartDate)
	}
	if prefs.SpecificRequests != "" {
		fmt.Fprintf(&b, "Special Requests: %s\n", prefs.SpecificRequests)
	}

	b.WriteString("\nInclude day-by-day activities with realistic per-person costs in USD, ")
	b.WriteString("local dining, cultural attractions, travel tips, and emergency information. ")
	fmt.Fprintf(&b, "Generate exactly %d days.\n\n", prefs.Duration)

	b.WriteString("Return ONLY valid JSON in this exact format:\n")
	b.WriteString(`{
  "destination": "city name",
  "duration": number_of_days,
  "totalBudget": estimated_total_cost,
  "weatherSummary": "general weather overview for the period",
  "travelTips": ["tip1", "tip2"],
  "emergencyInfo": {
    "contacts": ["emergency_number"],
    "hospitals": ["hospital"],
    "embassies": ["embassy"]
  },
  "days": [
    {
      "day": 1,
      "date": "formatted date",
      "activities": [
        {
          "id": "unique_id",
          "name": "activity name",
          "description": "detailed description",
          "duration": "time duration",
          "category": "culture|adventure|dining|relaxation|sightseeing|shopping|nature",
          "estimatedCost": cost_per_person,
          "location": "specific location",
          "timeSlot": "morning|afternoon|evening"
        }
      ],
      "notes": "daily notes",
      "travelTips": ["daily tip"]
    }
  ]
}`)

	return b.String()
}

// PlanRequestFromExtracted fills the chat-path defaults around an interpreted
// fragment: 3 days, mid-range, moderate pace, 2 people, hotel.
func PlanRequestFromExtracted(extracted response_models.ExtractedPreferences) request_models.PlanRequest {
	prefs := request_models.PlanRequest{
		Duration:      3,
		Budget:        catalog.TierMidRange,
		TravelStyle:   catalog.StyleModerate,
		GroupSize:     2,
		Accommodation: "hotel",
	}
	if extracted.Destination != nil {
		prefs.Destination = *extracted.Destination
	}
	if extracted.Duration != nil {
		prefs.Duration = *extracted.Duration
	}
	if extracted.Budget != nil {
		prefs.Budget = *extracted.Budget
	}
	if len(extracted.Interests) > 0 {
		prefs.Interests = extracted.Interests
	}
	if extracted.GroupSize != nil {
		prefs.GroupSize = *extracted.GroupSize
	}
	if extracted.StartDate != nil {
		prefs.StartDate = *extracted.StartDate
	}
	if len(extracted.SpecificRequests) > 0 {
		prefs.SpecificRequests = strings.Join(extracted.SpecificRequests, ", ")
	}
	return prefs
}
