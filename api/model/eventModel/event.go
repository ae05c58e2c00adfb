package eventmodel

import (
	"errors"
	"log/slog"

	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(body payload.CreateEventPayload) (*model.Event, error) {
	event := &model.Event{
		ID:       uuid.New().String(),
		OrgID:    body.OrgID,
		Name:     body.Name,
		Location: body.Location,
		StartsAt: body.StartsAt,
		EndsAt:   body.EndsAt,
	}

	if err := r.db.Create(event).Error; err != nil {
		slog.Error("Event Create failed", "error", err, "org_id", body.OrgID)
		return nil, err
	}

	return event, nil
}

func (r *EventRepository) GetById(eventId string) (*model.Event, error) {
	event := new(model.Event)
	err := r.db.Where("id = ?", eventId).First(event).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Event GetById failed", "error", err, "event_id", eventId)
		return nil, err
	}

	return event, nil
}

func (r *EventRepository) GetByIds(eventIds []string) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.Where("id IN ?", eventIds).Find(&events).Error

	if err != nil {
		slog.Error("Event GetByIds failed", "error", err, "count", len(eventIds))
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) GetByOrg(orgId string) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.Where("org_id = ?", orgId).Order("starts_at desc").Find(&events).Error

	if err != nil {
		slog.Error("Event GetByOrg failed", "error", err, "org_id", orgId)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) Update(eventId string, body payload.UpdateEventPayload) (*model.Event, error) {
	event, err := r.GetById(eventId)
	if err != nil || event == nil {
		return nil, err
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Location != "" {
		updates["location"] = body.Location
	}
	if !body.StartsAt.IsZero() {
		updates["starts_at"] = body.StartsAt
	}
	if !body.EndsAt.IsZero() {
		updates["ends_at"] = body.EndsAt
	}

	if len(updates) > 0 {
		if err := r.db.Model(event).Updates(updates).Error; err != nil {
			slog.Error("Event Update failed", "error", err, "event_id", eventId)
			return nil, err
		}
	}

	return event, nil
}

func (r *EventRepository) Delete(eventId string) (*model.Event, error) {
	event, err := r.GetById(eventId)
	if err != nil || event == nil {
		return nil, err
	}

	if err := r.db.Delete(event).Error; err != nil {
		slog.Error("Event Delete failed", "error", err, "event_id", eventId)
		return nil, err
	}

	return event, nil
}
