package partnermodel

// IPartnerRepository defines the interface for partner repository operations
type IPartnerRepository interface {
	Add(eventId string, partners []map[string]any) ([]*CombinedPartner, error)
	GetByEvent(eventId string) ([]*CombinedPartner, error)
	GetByIds(ids []string) ([]*CombinedPartner, []string, error)
	GetById(partnerId string) (*CombinedPartner, error)
	Edit(partnerId string, data map[string]any) (*CombinedPartner, error)
	Delete(partnerId string) (*CombinedPartner, error)
}

var _ IPartnerRepository = (*PartnerRepository)(nil)

// MockPartnerRepository is a mock implementation for testing
type MockPartnerRepository struct {
	AddFunc        func(eventId string, partners []map[string]any) ([]*CombinedPartner, error)
	GetByEventFunc func(eventId string) ([]*CombinedPartner, error)
	GetByIdsFunc   func(ids []string) ([]*CombinedPartner, []string, error)
	GetByIdFunc    func(partnerId string) (*CombinedPartner, error)
	EditFunc       func(partnerId string, data map[string]any) (*CombinedPartner, error)
	DeleteFunc     func(partnerId string) (*CombinedPartner, error)
}

var _ IPartnerRepository = (*MockPartnerRepository)(nil)

func NewMockPartnerRepository() *MockPartnerRepository {
	return &MockPartnerRepository{}
}

func (m *MockPartnerRepository) Add(eventId string, partners []map[string]any) ([]*CombinedPartner, error) {
	if m.AddFunc != nil {
		return m.AddFunc(eventId, partners)
	}
	return nil, nil
}

func (m *MockPartnerRepository) GetByEvent(eventId string) ([]*CombinedPartner, error) {
	if m.GetByEventFunc != nil {
		return m.GetByEventFunc(eventId)
	}
	return nil, nil
}

func (m *MockPartnerRepository) GetByIds(ids []string) ([]*CombinedPartner, []string, error) {
	if m.GetByIdsFunc != nil {
		return m.GetByIdsFunc(ids)
	}
	return nil, nil, nil
}

func (m *MockPartnerRepository) GetById(partnerId string) (*CombinedPartner, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(partnerId)
	}
	return nil, nil
}

func (m *MockPartnerRepository) Edit(partnerId string, data map[string]any) (*CombinedPartner, error) {
	if m.EditFunc != nil {
		return m.EditFunc(partnerId, data)
	}
	return nil, nil
}

func (m *MockPartnerRepository) Delete(partnerId string) (*CombinedPartner, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(partnerId)
	}
	return nil, nil
}
