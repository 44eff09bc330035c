package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripforge/internal/catalog"
	"tripforge/internal/models/response_models"
)

type InterpreterServiceInterface interface {
	ExtractPreferences(query string) response_models.ExtractedPreferences
}

// InterpreterService turns a free-text trip description into a best-effort
// structured preference fragment using keyword and pattern matching. Each
// extractor independently no-ops on non-match; the whole function is pure and
// deterministic for a given input.
type InterpreterService struct{}

func NewInterpreterService() InterpreterServiceInterface {
	return &InterpreterService{}
}

// knownDestinations is a closed-world list, not a geocoder. First match wins.
var knownDestinations = []string{
	"Tokyo",
	"Paris",
	"Bali",
	"Rome",
	"New York",
	"Goa",
	"Manali",
	"London",
	"Barcelona",
	"Bangkok",
	"Antarctica",
}

// interestTriggers maps interest categories to trigger keywords, in category
// declaration order. A query may hit zero, one, or many categories.
var interestTriggers = []struct {
	category string
	keywords []string
}{
	{"culture", []string{"culture", "cultural", "museum", "history", "historical", "temple", "art", "heritage"}},
	{"adventure", []string{"adventure", "hiking", "trek", "climbing", "outdoor", "cycling"}},
	{"dining", []string{"food", "dining", "cuisine", "restaurant", "culinary", "foodie"}},
	{"relaxation", []string{"relax", "spa", "unwind", "peaceful", "romantic"}},
	{"sightseeing", []string{"sightseeing", "landmark", "sights", "viewpoint", "iconic"}},
	{"shopping", []string{"shopping", "market", "mall", "souvenir"}},
	{"nature", []string{"nature", "park", "garden", "mountain", "lake", "wildlife"}},
	{"beach", []string{"beach", "island", "snorkel", "swimming"}},
	{"nightlife", []string{"nightlife", "bar", "club", "party"}},
}

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var (
	durationPattern  = regexp.MustCompile(`(\d+)\s*-?\s*days?\b`)
	groupPattern     = regexp.MustCompile(`(\d+)\s*(?:people|persons?|adults?|kids?)\b`)
	startDatePattern = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\b(?:\s+(\d{4}))?`)
)

func (s *InterpreterService) ExtractPreferences(query string) response_models.ExtractedPreferences {
	lower := strings.ToLower(query)

	out := response_models.ExtractedPreferences{}
	out.Destination = extractDestination(lower)
	out.Duration = extractDuration(lower)
	out.Budget = extractBudget(lower)
	out.Interests = extractInterests(lower)
	out.GroupSize = extractGroupSize(lower)
	out.StartDate = extractStartDate(lower)
	out.SpecificRequests = extractSpecificRequests(lower)
	return out
}

func extractDestination(lower string) *string {
	for _, dest := range knownDestinations {
		if strings.Contains(lower, strings.ToLower(dest)) {
			d := dest
			return &d
		}
	}
	return nil
}

func extractDuration(lower string) *int {
	m := durationPattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return nil
	}
	return &n
}

func extractBudget(lower string) *catalog.BudgetTier {
	tiers := []struct {
		tier     catalog.BudgetTier
		keywords []string
	}{
		{catalog.TierBudgetFriendly, []string{"cheap", "budget-friendly", "budget friendly"}},
		{catalog.TierMidRange, []string{"moderate budget", "mid-range", "mid range", "midrange"}},
		{catalog.TierLuxury, []string{"luxury", "high-end", "high end"}},
	}
	for _, t := range tiers {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				tier := t.tier
				return &tier
			}
		}
	}
	return nil
}

func extractInterests(lower string) []string {
	var interests []string
	for _, trigger := range interestTriggers {
		for _, kw := range trigger.keywords {
			if strings.Contains(lower, kw) {
				interests = append(interests, trigger.category)
				break
			}
		}
	}
	return interests
}

func extractGroupSize(lower string) *int {
	m := groupPattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return nil
	}
	return &n
}

// extractStartDate resolves a month mention to the first day of that month.
// A missing year defaults to the current year; no future-date validation.
func extractStartDate(lower string) *string {
	m := startDatePattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}

	month, ok := monthsByName[m[1]]
	if !ok {
		return nil
	}

	year := time.Now().Year()
	if m[2] != "" {
		if y, err := strconv.Atoi(m[2]); err == nil {
			year = y
		}
	}

	date := fmt.Sprintf("%04d-%02d-01", year, int(month))
	return &date
}

// extractSpecificRequests takes the text after the earliest trigger phrase to
// end of string, split on "and" and commas, with empty segments discarded.
func extractSpecificRequests(lower string) []string {
	triggers := []string{"interested in ", "focus on ", "with ", "including "}

	best := -1
	bestLen := 0
	for _, trigger := range triggers {
		if idx := strings.Index(lower, trigger); idx >= 0 {
			if best == -1 || idx < best {
				best = idx
				bestLen = len(trigger)
			}
		}
	}
	if best == -1 {
		return nil
	}

	rest := lower[best+bestLen:]
	rest = strings.ReplaceAll(rest, " and ", ",")

	var requests []string
	for _, segment := range strings.Split(rest, ",") {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			requests = append(requests, segment)
		}
	}
	if len(requests) == 0 {
		return nil
	}
	return requests
}
