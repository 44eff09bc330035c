package request_models

import "tripforge/internal/catalog"

// PlanRequest is the structured preference record supplied by the planning
// form, or assembled from an interpreted chat query.
type PlanRequest struct {
	Destination      string              `json:"destination" binding:"required"`
	Duration         int                 `json:"duration" binding:"required"`
	Budget           catalog.BudgetTier  `json:"budget"`
	Interests        []string            `json:"interests"`
	TravelStyle      catalog.TravelStyle `json:"travelStyle"`
	GroupSize        int                 `json:"groupSize"`
	Accommodation    string              `json:"accommodation"`
	StartDate        string              `json:"startDate,omitempty"` // YYYY-MM-DD
	SpecificRequests string              `json:"specificRequests,omitempty"`
}

// ChatPlanRequest carries a free-text trip description.
type ChatPlanRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
