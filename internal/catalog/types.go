package catalog

// Category classifies a catalog activity. The base set mirrors the planning
// form; nightlife/wellness/beach only occur on destination-specific entries.
type Category string

const (
	CategoryCulture     Category = "culture"
	CategoryAdventure   Category = "adventure"
	CategoryDining      Category = "dining"
	CategoryRelaxation  Category = "relaxation"
	CategorySightseeing Category = "sightseeing"
	CategoryShopping    Category = "shopping"
	CategoryNature      Category = "nature"
	CategoryNightlife   Category = "nightlife"
	CategoryWellness    Category = "wellness"
	CategoryBeach       Category = "beach"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCulture, CategoryAdventure, CategoryDining, CategoryRelaxation,
		CategorySightseeing, CategoryShopping, CategoryNature,
		CategoryNightlife, CategoryWellness, CategoryBeach:
		return true
	}
	return false
}

// TimeSlot is the preferred part of day for an activity.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// Slots returns the time slots in scheduling order.
func Slots() [3]TimeSlot {
	return [3]TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}
}

func (s TimeSlot) Valid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// BudgetTier drives the per-activity cost eligibility band. Bands overlap on
// purpose so a mid-range priced activity can still serve a luxury search.
type BudgetTier string

const (
	TierBudgetFriendly BudgetTier = "budget-friendly"
	TierMidRange       BudgetTier = "mid-range"
	TierLuxury         BudgetTier = "luxury"
)

func (b BudgetTier) Valid() bool {
	switch b {
	case TierBudgetFriendly, TierMidRange, TierLuxury:
		return true
	}
	return false
}

// CostBand returns the inclusive per-person cost band for the tier.
// Unknown tiers get the mid-range band.
func (b BudgetTier) CostBand() (min, max float64) {
	switch b {
	case TierBudgetFriendly:
		return 0, 40
	case TierLuxury:
		return 50, 200
	default:
		return 10, 80
	}
}

// TravelStyle maps to a target activity count per day.
type TravelStyle string

const (
	StyleRelaxed  TravelStyle = "relaxed"
	StyleModerate TravelStyle = "moderate"
	StylePacked   TravelStyle = "packed"
)

func (t TravelStyle) Valid() bool {
	switch t {
	case StyleRelaxed, StyleModerate, StylePacked:
		return true
	}
	return false
}

// ActivitiesPerDay returns the daily scheduling target. Unknown styles behave
// like moderate.
func (t TravelStyle) ActivitiesPerDay() int {
	switch t {
	case StyleRelaxed:
		return 2
	case StylePacked:
		return 4
	default:
		return 3
	}
}

// Activity is a single bookable catalog entry. The catalog is read-only
// reference data; activities are copied into itineraries, never mutated.
type Activity struct {
	ID            string   `json:"id"`
	Destination   string   `json:"-"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Duration      string   `json:"duration"`
	Category      Category `json:"category"`
	Tags          []string `json:"tags,omitempty"`
	EstimatedCost float64  `json:"estimatedCost"`
	Location      string   `json:"location"`
	TimeSlot      TimeSlot `json:"timeSlot"`
}
