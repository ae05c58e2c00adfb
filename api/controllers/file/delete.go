package file_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *FileController) Delete(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	assetId := c.Params("assetId")
	if assetId == "" {
		return response.SendFailed(c, "Asset ID is required")
	}

	asset, err := ctrl.assetRepo.GetById(assetId)
	if err != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query asset")
	}
	if asset == nil {
		return response.SendNotFound(c, "Asset not found")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, asset.OrgID)
	if memberErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		return response.SendForbidden(c, "You are not a member of this organization")
	}

	// Remove the object first; an orphaned row is recoverable, an orphaned
	// object is invisible.
	if storageErr := util.DeleteFileByURL(c.UserContext(), *common.Config.BucketAsset, asset.URL); storageErr != nil {
		slog.Warn("File Delete storage removal failed", "error", storageErr, "asset_id", assetId, "url", asset.URL)
	}

	deleted, deleteErr := ctrl.assetRepo.Delete(assetId)
	if deleteErr != nil {
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to delete asset")
	}

	slog.Info("File Delete successful", "asset_id", assetId, "user_id", userId)
	return response.SendSuccess(c, "Asset deleted", deleted)
}
