package eventmodel

import (
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
)

// IEventRepository defines the interface for event repository operations
type IEventRepository interface {
	Create(body payload.CreateEventPayload) (*model.Event, error)
	GetById(eventId string) (*model.Event, error)
	GetByIds(eventIds []string) ([]*model.Event, error)
	GetByOrg(orgId string) ([]*model.Event, error)
	Update(eventId string, body payload.UpdateEventPayload) (*model.Event, error)
	Delete(eventId string) (*model.Event, error)
}

var _ IEventRepository = (*EventRepository)(nil)

// MockEventRepository is a mock implementation for testing
type MockEventRepository struct {
	CreateFunc   func(body payload.CreateEventPayload) (*model.Event, error)
	GetByIdFunc  func(eventId string) (*model.Event, error)
	GetByIdsFunc func(eventIds []string) ([]*model.Event, error)
	GetByOrgFunc func(orgId string) ([]*model.Event, error)
	UpdateFunc   func(eventId string, body payload.UpdateEventPayload) (*model.Event, error)
	DeleteFunc   func(eventId string) (*model.Event, error)
}

var _ IEventRepository = (*MockEventRepository)(nil)

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) Create(body payload.CreateEventPayload) (*model.Event, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(body)
	}
	return nil, nil
}

func (m *MockEventRepository) GetById(eventId string) (*model.Event, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(eventId)
	}
	return nil, nil
}

func (m *MockEventRepository) GetByIds(eventIds []string) ([]*model.Event, error) {
	if m.GetByIdsFunc != nil {
		return m.GetByIdsFunc(eventIds)
	}
	return nil, nil
}

func (m *MockEventRepository) GetByOrg(orgId string) ([]*model.Event, error) {
	if m.GetByOrgFunc != nil {
		return m.GetByOrgFunc(orgId)
	}
	return nil, nil
}

func (m *MockEventRepository) Update(eventId string, body payload.UpdateEventPayload) (*model.Event, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(eventId, body)
	}
	return nil, nil
}

func (m *MockEventRepository) Delete(eventId string) (*model.Event, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(eventId)
	}
	return nil, nil
}
