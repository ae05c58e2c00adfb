package template_controller

import (
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	templatemodel "github.com/eventflow-app/eventflow-api/api/model/templateModel"
	"github.com/eventflow-app/eventflow-api/internal/render"
)

// TemplateController handles template-related HTTP requests
type TemplateController struct {
	templateRepo templatemodel.ITemplateRepository
	orgRepo      orgmodel.IOrgRepository
	generator    *render.Generator
}

// NewTemplateController creates a new template controller with injected dependencies
func NewTemplateController(
	templateRepo templatemodel.ITemplateRepository,
	orgRepo orgmodel.IOrgRepository,
	generator *render.Generator,
) *TemplateController {
	return &TemplateController{
		templateRepo: templateRepo,
		orgRepo:      orgRepo,
		generator:    generator,
	}
}
