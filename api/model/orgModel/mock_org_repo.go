package orgmodel

import "github.com/eventflow-app/eventflow-api/type/shared/model"

// IOrgRepository defines the interface for organization repository operations
type IOrgRepository interface {
	Create(name string, ownerUserId string) (*model.Organization, error)
	IsMember(userId string, orgId string) (bool, error)
	GetOrgIdsByUser(userId string) ([]string, error)
}

// Ensure OrgRepository implements IOrgRepository
var _ IOrgRepository = (*OrgRepository)(nil)

// MockOrgRepository is a mock implementation for testing
type MockOrgRepository struct {
	CreateFunc          func(name string, ownerUserId string) (*model.Organization, error)
	IsMemberFunc        func(userId string, orgId string) (bool, error)
	GetOrgIdsByUserFunc func(userId string) ([]string, error)
}

var _ IOrgRepository = (*MockOrgRepository)(nil)

func NewMockOrgRepository() *MockOrgRepository {
	return &MockOrgRepository{}
}

func (m *MockOrgRepository) Create(name string, ownerUserId string) (*model.Organization, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(name, ownerUserId)
	}
	return nil, nil
}

func (m *MockOrgRepository) IsMember(userId string, orgId string) (bool, error) {
	if m.IsMemberFunc != nil {
		return m.IsMemberFunc(userId, orgId)
	}
	return false, nil
}

func (m *MockOrgRepository) GetOrgIdsByUser(userId string) ([]string, error) {
	if m.GetOrgIdsByUserFunc != nil {
		return m.GetOrgIdsByUserFunc(userId)
	}
	return nil, nil
}
