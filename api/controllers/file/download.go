package file_controller

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Download streams an object straight from storage. The route is public so
// stored backgrounds and logos can be referenced from img tags and template
// designs without a session.
func (ctrl *FileController) Download(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	objectName := c.Params("*")
	if bucket == "" || objectName == "" {
		return response.SendFailed(c, "Bucket and object name are required")
	}

	object, err := util.DownloadFile(c.UserContext(), bucket, objectName)
	if err != nil {
		slog.Warn("File Download failed", "error", err, "bucket", bucket, "object", objectName)
		return response.SendNotFound(c, "File not found")
	}

	stat, statErr := object.Stat()
	if statErr != nil {
		slog.Warn("File Download stat failed", "error", statErr, "bucket", bucket, "object", objectName)
		return response.SendNotFound(c, "File not found")
	}

	if stat.ContentType != "" {
		c.Set(fiber.HeaderContentType, stat.ContentType)
	}
	return c.SendStream(object, int(stat.Size))
}
