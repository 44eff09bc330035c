package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripforge/internal/catalog"
	"tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

const relatedLimit = 5

type ItineraryServiceInterface interface {
	SaveItinerary(ctx context.Context, accountId uuid.UUID, plan *response_models.Itinerary) (string, error)
	ListItineraries(ctx context.Context, accountId string, page int, pageSize int) ([]response_models.SavedItinerarySummary, error)
	GetItinerary(ctx context.Context, accountId string, itineraryId string) (*response_models.Itinerary, error)
	DeleteItinerary(ctx context.Context, accountId string, itineraryId string) error
	SetShared(ctx context.Context, accountId string, itineraryId string, shared bool) error
	GetSharedItinerary(ctx context.Context, itineraryId string) (*response_models.Itinerary, error)
	FindRelated(ctx context.Context, accountId string, itineraryId string) ([]response_models.SavedItinerarySummary, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, accountId uuid.UUID, plan *response_models.Itinerary) (string, error) {
	if plan == nil || plan.Destination == "" || len(plan.Days) == 0 {
		return "", utils.ErrInvalidInput
	}

	record := toItineraryRecord(accountId, plan)
	if err := s.itineraryRepo.Insert(ctx, record); err != nil {
		return "", utils.ErrDatabaseError
	}

	return record.ID.String(), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, accountId string, page int, pageSize int) ([]response_models.SavedItinerarySummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	records, err := s.itineraryRepo.GetListByAccountId(ctx, accountId, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.SavedItinerarySummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, toItinerarySummary(record))
	}
	return summaries, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, accountId string, itineraryId string) (*response_models.Itinerary, error) {
	record, err := s.ownedItinerary(ctx, accountId, itineraryId)
	if err != nil {
		return nil, err
	}
	return toItineraryResponse(record), nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, accountId string, itineraryId string) error {
	if _, err := s.ownedItinerary(ctx, accountId, itineraryId); err != nil {
		return err
	}
	if err := s.itineraryRepo.DeleteById(ctx, itineraryId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) SetShared(ctx context.Context, accountId string, itineraryId string, shared bool) error {
	if _, err := s.ownedItinerary(ctx, accountId, itineraryId); err != nil {
		return err
	}
	if err := s.itineraryRepo.SetShared(ctx, itineraryId, shared); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// GetSharedItinerary is the only read path that skips the ownership check. It
// returns not-found for both missing and unshared plans so the endpoint does
// not leak which private ids exist.
func (s *ItineraryService) GetSharedItinerary(ctx context.Context, itineraryId string) (*response_models.Itinerary, error) {
	if _, err := uuid.Parse(itineraryId); err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	record, err := s.itineraryRepo.GetSharedById(ctx, itineraryId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return toItineraryResponse(record), nil
}

func (s *ItineraryService) FindRelated(ctx context.Context, accountId string, itineraryId string) ([]response_models.SavedItinerarySummary, error) {
	record, err := s.ownedItinerary(ctx, accountId, itineraryId)
	if err != nil {
		return nil, err
	}

	nearest, err := s.itineraryRepo.FindNearest(ctx, record.Embedding, itineraryId, relatedLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.SavedItinerarySummary, 0, len(nearest))
	for _, neighbor := range nearest {
		summaries = append(summaries, toItinerarySummary(neighbor))
	}
	return summaries, nil
}

func (s *ItineraryService) ownedItinerary(ctx context.Context, accountId string, itineraryId string) (*db_models.Itinerary, error) {
	if _, err := uuid.Parse(itineraryId); err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	record, err := s.itineraryRepo.GetDetailsById(ctx, itineraryId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if record.AccountID.String() != accountId {
		return nil, utils.ErrForbidden
	}
	return record, nil
}

// toItineraryRecord flattens a generated plan into the persisted shape. The
// embedding is a local hash vector over destination plus interests so related
// lookups work without calling an external embedding model.
func toItineraryRecord(accountId uuid.UUID, plan *response_models.Itinerary) *db_models.Itinerary {
	prefs := plan.Preferences

	record := &db_models.Itinerary{
		AccountID:      accountId,
		Destination:    plan.Destination,
		Duration:       plan.Duration,
		TotalBudget:    plan.TotalBudget,
		BudgetTier:     string(prefs.Budget),
		TravelStyle:    string(prefs.TravelStyle),
		GroupSize:      prefs.GroupSize,
		Accommodation:  prefs.Accommodation,
		Interests:      prefs.Interests,
		StartDate:      prefs.StartDate,
		Requests:       prefs.SpecificRequests,
		WeatherSummary: plan.WeatherSummary,
		TravelTips:     plan.TravelTips,
		Embedding:      utils.TextToVector(plan.Destination + " " + strings.Join(prefs.Interests, " ")),
	}

	for _, day := range plan.Days {
		dayRecord := db_models.ItineraryDay{
			DayNumber:  day.Day,
			Date:       day.Date,
			Notes:      day.Notes,
			TravelTips: day.TravelTips,
		}
		for position, activity := range day.Activities {
			dayRecord.Activities = append(dayRecord.Activities, db_models.ItineraryActivity{
				ActivityID:    activity.ID,
				Name:          activity.Name,
				Description:   activity.Description,
				DurationLabel: activity.Duration,
				Category:      string(activity.Category),
				Tags:          activity.Tags,
				EstimatedCost: activity.EstimatedCost,
				Location:      activity.Location,
				TimeSlot:      string(activity.TimeSlot),
				Position:      position,
			})
		}
		record.Days = append(record.Days, dayRecord)
	}

	return record
}

func toItineraryResponse(record *db_models.Itinerary) *response_models.Itinerary {
	plan := &response_models.Itinerary{
		ID:             record.ID.String(),
		Destination:    record.Destination,
		Duration:       record.Duration,
		TotalBudget:    record.TotalBudget,
		WeatherSummary: record.WeatherSummary,
		TravelTips:     record.TravelTips,
		IsShared:       record.IsShared,
		CreatedAt:      time.Unix(record.CreatedAt, 0).UTC().Format(time.RFC3339),
		Preferences: request_models.PlanRequest{
			Destination:      record.Destination,
			Duration:         record.Duration,
			Budget:           catalog.BudgetTier(record.BudgetTier),
			Interests:        record.Interests,
			TravelStyle:      catalog.TravelStyle(record.TravelStyle),
			GroupSize:        record.GroupSize,
			Accommodation:    record.Accommodation,
			StartDate:        record.StartDate,
			SpecificRequests: record.Requests,
		},
	}

	for _, dayRecord := range record.Days {
		day := response_models.DayPlan{
			Day:        dayRecord.DayNumber,
			Date:       dayRecord.Date,
			Notes:      dayRecord.Notes,
			TravelTips: dayRecord.TravelTips,
		}
		for _, act := range dayRecord.Activities {
			day.Activities = append(day.Activities, catalog.Activity{
				ID:            act.ActivityID,
				Name:          act.Name,
				Description:   act.Description,
				Duration:      act.DurationLabel,
				Category:      catalog.Category(act.Category),
				Tags:          act.Tags,
				EstimatedCost: act.EstimatedCost,
				Location:      act.Location,
				TimeSlot:      catalog.TimeSlot(act.TimeSlot),
			})
			day.TotalCost += act.EstimatedCost
		}
		plan.Days = append(plan.Days, day)
	}

	return plan
}

func toItinerarySummary(record db_models.Itinerary) response_models.SavedItinerarySummary {
	return response_models.SavedItinerarySummary{
		ID:          record.ID.String(),
		Destination: record.Destination,
		Duration:    record.Duration,
		TotalBudget: record.TotalBudget,
		IsShared:    record.IsShared,
		CreatedAt:   time.Unix(record.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}
