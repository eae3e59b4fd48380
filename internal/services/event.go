package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/repos"
	"github.com/kaupunki/events-backend/internal/types"
)

// FieldError is a validation failure attributable to a single input field.
// Handlers surface it as a 400 keyed by Field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type EventInput struct {
	NameFi *string `json:"name_fi"`
	NameSv *string `json:"name_sv"`
	NameEn *string `json:"name_en"`

	DescriptionFi *string `json:"description_fi"`
	DescriptionSv *string `json:"description_sv"`
	DescriptionEn *string `json:"description_en"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	PublicationStatus string `json:"publication_status"`

	Location *string  `json:"location"`
	Keywords []string `json:"keywords"`
}

type EventService interface {
	Create(ctx context.Context, input EventInput, publisherID string) (*types.Event, error)
	GetByID(ctx context.Context, id string, includeDrafts bool) (*types.Event, error)
	List(ctx context.Context, includeDrafts bool, limit int) ([]*types.Event, error)
}

type eventService struct {
	db       *gorm.DB
	log      *logger.Logger
	events   repos.EventRepo
	keywords repos.KeywordRepo
}

func NewEventService(db *gorm.DB, log *logger.Logger, events repos.EventRepo, keywords repos.KeywordRepo) EventService {
	return &eventService{
		db:       db,
		log:      log.With("service", "EventService"),
		events:   events,
		keywords: keywords,
	}
}

// Create validates and stores a new event. Published events require a name,
// a location and at least one keyword; drafts only require a name.
func (s *eventService) Create(ctx context.Context, input EventInput, publisherID string) (*types.Event, error) {
	status := input.PublicationStatus
	if status == "" {
		status = types.PublicationStatusPublic
	}
	if status != types.PublicationStatusDraft && status != types.PublicationStatusPublic {
		return nil, &FieldError{Field: "publication_status", Message: "must be draft or public"}
	}

	event := &types.Event{
		NameFi:            input.NameFi,
		NameSv:            input.NameSv,
		NameEn:            input.NameEn,
		DescriptionFi:     input.DescriptionFi,
		DescriptionSv:     input.DescriptionSv,
		DescriptionEn:     input.DescriptionEn,
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		PublicationStatus: status,
		LocationID:        input.Location,
	}

	if !event.HasName() {
		return nil, &FieldError{Field: "name", Message: "a name is required in at least one language"}
	}
	if input.StartTime != nil && input.EndTime != nil && input.EndTime.Before(*input.StartTime) {
		return nil, &FieldError{Field: "end_time", Message: "end time cannot be before start time"}
	}
	if status == types.PublicationStatusPublic {
		if input.Location == nil || *input.Location == "" {
			return nil, &FieldError{Field: "location", Message: "a location is required to publish an event"}
		}
		if len(input.Keywords) == 0 {
			return nil, &FieldError{Field: "keywords", Message: "at least one keyword is required to publish an event"}
		}
	}

	if len(input.Keywords) > 0 {
		kws, err := s.keywords.GetByIDs(ctx, nil, input.Keywords)
		if err != nil {
			return nil, fmt.Errorf("resolve keywords: %w", err)
		}
		if len(kws) != len(uniqueStrings(input.Keywords)) {
			return nil, &FieldError{Field: "keywords", Message: "unknown keyword reference"}
		}
		event.Keywords = kws
	}

	now := time.Now()
	event.ID = "org:" + uuid.New().String()
	event.DataSourceID = "org"
	event.PublisherID = publisherID
	event.CreatedTime = now
	event.LastModifiedTime = now

	if err := s.events.Create(ctx, nil, event); err != nil {
		s.log.Error("Failed to create event", "error", err)
		return nil, err
	}
	return event, nil
}

// GetByID hides drafts from unauthenticated callers: a draft looked up
// without includeDrafts behaves exactly like a missing row.
func (s *eventService) GetByID(ctx context.Context, id string, includeDrafts bool) (*types.Event, error) {
	event, err := s.events.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if event.PublicationStatus == types.PublicationStatusDraft && !includeDrafts {
		return nil, gorm.ErrRecordNotFound
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, includeDrafts bool, limit int) ([]*types.Event, error) {
	return s.events.List(ctx, nil, includeDrafts, limit)
}

// AsFieldError unwraps a FieldError if err is one.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func uniqueStrings(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
