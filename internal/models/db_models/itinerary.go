package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Itinerary is a saved plan. The embedding is a local hash vector over the
// destination and interests, used only for related-itinerary lookups.
type Itinerary struct {
	BaseModel
	AccountID      uuid.UUID `gorm:"type:uuid;index"`
	Destination    string
	Duration       int
	TotalBudget    float64
	BudgetTier     string
	TravelStyle    string
	GroupSize      int
	Accommodation  string
	Interests      pq.StringArray `gorm:"type:text[]"`
	StartDate      string
	Requests       string
	WeatherSummary string
	TravelTips     pq.StringArray  `gorm:"type:text[]"`
	IsShared       bool            `gorm:"index"`
	Embedding      pgvector.Vector `gorm:"type:vector(256)"`

	Days []ItineraryDay `gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	DayNumber   int
	Date        string
	Notes       string
	TravelTips  pq.StringArray `gorm:"type:text[]"`

	Activities []ItineraryActivity `gorm:"foreignKey:ItineraryDayID;constraint:OnDelete:CASCADE"`
}

// ItineraryActivity denormalizes the catalog entry (or AI activity) that was
// scheduled, so a saved plan survives catalog changes.
type ItineraryActivity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"type:uuid;index"`
	ActivityID     string
	Name           string
	Description    string
	DurationLabel  string
	Category       string
	Tags           pq.StringArray `gorm:"type:text[]"`
	EstimatedCost  float64
	Location       string
	TimeSlot       string
	Position       int
}
