package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/types"
)

type EventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, event *types.Event) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Event, error)
	List(ctx context.Context, tx *gorm.DB, includeDrafts bool, limit int) ([]*types.Event, error)
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	return &eventRepo{db: db, log: baseLog.With("repo", "EventRepo")}
}

func (r *eventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.Event) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var event types.Event
	if err := transaction.WithContext(ctx).
		Preload("Keywords").
		First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context, tx *gorm.DB, includeDrafts bool, limit int) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if limit <= 0 {
		limit = 100
	}
	q := transaction.WithContext(ctx).Order("start_time")
	if !includeDrafts {
		q = q.Where("publication_status = ?", types.PublicationStatusPublic)
	}
	var results []*types.Event
	if err := q.Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
