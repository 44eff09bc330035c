package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"tripforge/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	GetListByAccountId(ctx context.Context, accountId string, page int, pageSize int) ([]db_models.Itinerary, error)
	GetDetailsById(ctx context.Context, itineraryId string) (*db_models.Itinerary, error)
	GetSharedById(ctx context.Context, itineraryId string) (*db_models.Itinerary, error)
	SetShared(ctx context.Context, itineraryId string, shared bool) error
	DeleteById(ctx context.Context, itineraryId string) error
	FindNearest(ctx context.Context, embedding pgvector.Vector, excludeId string, limit int) ([]db_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	// Days and activities ride along through the association cascade.
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) GetListByAccountId(ctx context.Context, accountId string, page int, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}

	return itineraries, nil
}

func (r *itineraryRepository) GetDetailsById(ctx context.Context, itineraryId string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryId).
		Preload("Days", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) GetSharedById(ctx context.Context, itineraryId string) (*db_models.Itinerary, error) {
	itinerary, err := r.GetDetailsById(ctx, itineraryId)
	if err != nil || itinerary == nil {
		return nil, err
	}
	if !itinerary.IsShared {
		return nil, nil
	}
	return itinerary, nil
}

func (r *itineraryRepository) SetShared(ctx context.Context, itineraryId string, shared bool) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("id = ?", itineraryId).
		Update("is_shared", shared)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itineraryRepository) DeleteById(ctx context.Context, itineraryId string) error {
	// Soft delete; day and activity rows keep their parent reference.
	res := r.db.WithContext(ctx).
		Where("id = ?", itineraryId).
		Delete(&db_models.Itinerary{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itineraryRepository) FindNearest(ctx context.Context, embedding pgvector.Vector, excludeId string, limit int) ([]db_models.Itinerary, error) {
	if limit <= 0 {
		limit = 5
	}

	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT *
			FROM itineraries
			WHERE deleted_at IS NULL
			  AND is_shared = TRUE
			  AND id::text <> $1
			ORDER BY embedding <=> $2
			LIMIT $3
		`, excludeId, embedding, limit).
		Scan(&itineraries).Error

	if err != nil {
		return nil, err
	}

	return itineraries, nil
}
