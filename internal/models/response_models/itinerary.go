package response_models

import (
	"tripforge/internal/catalog"
	"tripforge/internal/models/request_models"
)

// Itinerary is the full multi-day output plan. TotalBudget is always derived
// from the scheduled activity costs, never taken from input or from an AI
// response.
type Itinerary struct {
	ID             string                     `json:"id,omitempty"`
	Destination    string                     `json:"destination"`
	Duration       int                        `json:"duration"`
	TotalBudget    float64                    `json:"totalBudget"`
	WeatherSummary string                     `json:"weatherSummary,omitempty"`
	TravelTips     []string                   `json:"travelTips,omitempty"`
	EmergencyInfo  *EmergencyInfo             `json:"emergencyInfo,omitempty"`
	Days           []DayPlan                  `json:"days"`
	Preferences    request_models.PlanRequest `json:"preferences"`
	IsShared       bool                       `json:"isShared,omitempty"`
	CreatedAt      string                     `json:"createdAt"`
}

// DayPlan is one calendar day of scheduled activities plus metadata.
type DayPlan struct {
	Day        int                `json:"day"`
	Date       string             `json:"date"`
	Activities []catalog.Activity `json:"activities"`
	Notes      string             `json:"notes,omitempty"`
	TravelTips []string           `json:"travelTips,omitempty"`
	TotalCost  float64            `json:"totalCost"`
}

type EmergencyInfo struct {
	Contacts  []string `json:"contacts,omitempty"`
	Hospitals []string `json:"hospitals,omitempty"`
	Embassies []string `json:"embassies,omitempty"`
}

// ExtractedPreferences is the interpreter's best-effort fragment. A nil field
// means the extractor found nothing; it is never an error.
type ExtractedPreferences struct {
	Destination      *string             `json:"destination,omitempty"`
	Duration         *int                `json:"duration,omitempty"`
	Budget           *catalog.BudgetTier `json:"budget,omitempty"`
	Interests        []string            `json:"interests,omitempty"`
	GroupSize        *int                `json:"groupSize,omitempty"`
	StartDate        *string             `json:"startDate,omitempty"` // YYYY-MM-DD
	SpecificRequests []string            `json:"specificRequests,omitempty"`
}

// ChatPlanResponse pairs the interpreted fragment with the generated plan.
// Itinerary is nil when no destination could be inferred from the query.
type ChatPlanResponse struct {
	Query     string               `json:"query"`
	Extracted ExtractedPreferences `json:"extracted"`
	Itinerary *Itinerary           `json:"itinerary,omitempty"`
}

// SavedItinerarySummary is the list-view projection of a persisted itinerary.
type SavedItinerarySummary struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	Duration    int     `json:"duration"`
	TotalBudget float64 `json:"totalBudget"`
	IsShared    bool    `json:"isShared"`
	CreatedAt   string  `json:"createdAt"`
}
