package file_controller

import (
	"fmt"
	"log/slog"

	"github.com/eventflow-app/eventflow-api/api/middleware"
	assetmodel "github.com/eventflow-app/eventflow-api/api/model/assetModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FileController handles media asset uploads and downloads backed by
// object storage.
type FileController struct {
	assetRepo *assetmodel.AssetRepository
	orgRepo   orgmodel.IOrgRepository
}

func NewFileController(assetRepo *assetmodel.AssetRepository, orgRepo orgmodel.IOrgRepository) *FileController {
	return &FileController{
		assetRepo: assetRepo,
		orgRepo:   orgRepo,
	}
}

// Upload stores a multipart file in the asset bucket and records it for the
// organization. Template backgrounds and logos come in through here.
func (ctrl *FileController) Upload(c *fiber.Ctx) error {
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

	fileHeader, fileErr := c.FormFile("file")
	if fileErr != nil {
		return response.SendFailed(c, "A file field is required")
	}

	objectName := fmt.Sprintf("%s/%s_%s", orgId, uuid.New().String(), fileHeader.Filename)
	url, uploadErr := util.UploadFile(c.UserContext(), *common.Config.BucketAsset, objectName, fileHeader)
	if uploadErr != nil {
		slog.Error("File Upload storage failed", "error", uploadErr, "org_id", orgId, "object", objectName)
		return response.SendError(c, "Failed to store file")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	asset, createErr := ctrl.assetRepo.Create(orgId, fileHeader.Filename, url, contentType)
	if createErr != nil {
		slog.Error("File Upload asset record failed", "error", createErr, "org_id", orgId, "url", url)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to record asset")
	}

	slog.Info("File Upload successful", "asset_id", asset.ID, "org_id", orgId, "user_id", userId)
	return response.SendSuccess(c, "File uploaded", asset)
}
