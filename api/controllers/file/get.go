package file_controller

import (
	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// GetByOrg lists an organization's stored assets.
func (ctrl *FileController) GetByOrg(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	orgId := c.Params("orgId")
	if orgId == "" {
		return response.SendFailed(c, "Organization ID is required")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, orgId)
	if memberErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	assets, err := ctrl.assetRepo.GetByOrg(orgId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query assets")
	}

	return response.SendSuccess(c, "Assets retrieved", assets)
}
