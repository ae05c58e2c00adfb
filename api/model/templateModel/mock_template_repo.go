package templatemodel

import (
	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
)

// ITemplateRepository defines the interface for template repository operations
type ITemplateRepository interface {
	Create(body payload.CreateTemplatePayload) (*TemplateWithDesign, error)
	GetById(templateId string) (*TemplateWithDesign, error)
	GetByOrg(orgId string) ([]*model.TemplateMeta, error)
	Update(templateId string, body payload.UpdateTemplatePayload) (*TemplateWithDesign, error)
	Delete(templateId string) (*model.TemplateMeta, error)
}

var _ ITemplateRepository = (*TemplateRepository)(nil)

// MockTemplateRepository is a mock implementation for testing
type MockTemplateRepository struct {
	CreateFunc   func(body payload.CreateTemplatePayload) (*TemplateWithDesign, error)
	GetByIdFunc  func(templateId string) (*TemplateWithDesign, error)
	GetByOrgFunc func(orgId string) ([]*model.TemplateMeta, error)
	UpdateFunc   func(templateId string, body payload.UpdateTemplatePayload) (*TemplateWithDesign, error)
	DeleteFunc   func(templateId string) (*model.TemplateMeta, error)
}

var _ ITemplateRepository = (*MockTemplateRepository)(nil)

func NewMockTemplateRepository() *MockTemplateRepository {
	return &MockTemplateRepository{}
}

func (m *MockTemplateRepository) Create(body payload.CreateTemplatePayload) (*TemplateWithDesign, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(body)
	}
	return nil, nil
}

func (m *MockTemplateRepository) GetById(templateId string) (*TemplateWithDesign, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(templateId)
	}
	return nil, nil
}

func (m *MockTemplateRepository) GetByOrg(orgId string) ([]*model.TemplateMeta, error) {
	if m.GetByOrgFunc != nil {
		return m.GetByOrgFunc(orgId)
	}
	return nil, nil
}

func (m *MockTemplateRepository) Update(templateId string, body payload.UpdateTemplatePayload) (*TemplateWithDesign, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(templateId, body)
	}
	return nil, nil
}

func (m *MockTemplateRepository) Delete(templateId string) (*model.TemplateMeta, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(templateId)
	}
	return nil, nil
}
