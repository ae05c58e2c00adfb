package participantmodel

// IParticipantRepository defines the interface for participant repository operations
type IParticipantRepository interface {
	Add(eventId string, participants []map[string]any) ([]*CombinedParticipant, error)
	GetByEvent(eventId string) ([]*CombinedParticipant, error)
	GetByIds(ids []string) ([]*CombinedParticipant, []string, error)
	GetById(participantId string) (*CombinedParticipant, error)
	Edit(participantId string, data map[string]any) (*CombinedParticipant, error)
	Delete(participantId string) (*CombinedParticipant, error)
	SetEmailStatus(participantId string, status string) error
	MarkCheckedIn(participantId string) error
}

var _ IParticipantRepository = (*ParticipantRepository)(nil)

// MockParticipantRepository is a mock implementation for testing
type MockParticipantRepository struct {
	AddFunc            func(eventId string, participants []map[string]any) ([]*CombinedParticipant, error)
	GetByEventFunc     func(eventId string) ([]*CombinedParticipant, error)
	GetByIdsFunc       func(ids []string) ([]*CombinedParticipant, []string, error)
	GetByIdFunc        func(participantId string) (*CombinedParticipant, error)
	EditFunc           func(participantId string, data map[string]any) (*CombinedParticipant, error)
	DeleteFunc         func(participantId string) (*CombinedParticipant, error)
	SetEmailStatusFunc func(participantId string, status string) error
	MarkCheckedInFunc  func(participantId string) error
}

var _ IParticipantRepository = (*MockParticipantRepository)(nil)

func NewMockParticipantRepository() *MockParticipantRepository {
	return &MockParticipantRepository{}
}

func (m *MockParticipantRepository) Add(eventId string, participants []map[string]any) ([]*CombinedParticipant, error) {
	if m.AddFunc != nil {
		return m.AddFunc(eventId, participants)
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetByEvent(eventId string) ([]*CombinedParticipant, error) {
	if m.GetByEventFunc != nil {
		return m.GetByEventFunc(eventId)
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetByIds(ids []string) ([]*CombinedParticipant, []string, error) {
	if m.GetByIdsFunc != nil {
		return m.GetByIdsFunc(ids)
	}
	return nil, nil, nil
}

func (m *MockParticipantRepository) GetById(participantId string) (*CombinedParticipant, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(participantId)
	}
	return nil, nil
}

func (m *MockParticipantRepository) Edit(participantId string, data map[string]any) (*CombinedParticipant, error) {
	if m.EditFunc != nil {
		return m.EditFunc(participantId, data)
	}
	return nil, nil
}

func (m *MockParticipantRepository) Delete(participantId string) (*CombinedParticipant, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(participantId)
	}
	return nil, nil
}

func (m *MockParticipantRepository) SetEmailStatus(participantId string, status string) error {
	if m.SetEmailStatusFunc != nil {
		return m.SetEmailStatusFunc(participantId, status)
	}
	return nil
}

func (m *MockParticipantRepository) MarkCheckedIn(participantId string) error {
	if m.MarkCheckedInFunc != nil {
		return m.MarkCheckedInFunc(participantId)
	}
	return nil
}
