package org_controller

import (
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
)

// OrgController handles organization-related HTTP requests
type OrgController struct {
	orgRepo orgmodel.IOrgRepository
}

// NewOrgController creates a new organization controller with injected dependencies
func NewOrgController(orgRepo orgmodel.IOrgRepository) *OrgController {
	return &OrgController{orgRepo: orgRepo}
}
