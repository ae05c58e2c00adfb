package event_controller

import (
	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
)

// EventController handles event-related HTTP requests
type EventController struct {
	eventRepo eventmodel.IEventRepository
	orgRepo   orgmodel.IOrgRepository
}

// NewEventController creates a new event controller with injected dependencies
func NewEventController(eventRepo eventmodel.IEventRepository, orgRepo orgmodel.IOrgRepository) *EventController {
	return &EventController{
		eventRepo: eventRepo,
		orgRepo:   orgRepo,
	}
}
