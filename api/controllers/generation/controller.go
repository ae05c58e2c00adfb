package generation_controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	participantmodel "github.com/eventflow-app/eventflow-api/api/model/participantModel"
	partnermodel "github.com/eventflow-app/eventflow-api/api/model/partnerModel"
	templatemodel "github.com/eventflow-app/eventflow-api/api/model/templateModel"
	"github.com/eventflow-app/eventflow-api/common"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/eventflow-app/eventflow-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// FailedCountHeader reports how many entities in a partial batch could not
// be rendered.
const FailedCountHeader = "X-Generation-Failed-Count"

// GenerationController drives the badge image pipeline: template lookup,
// authorization, batch rendering and response framing.
type GenerationController struct {
	templateRepo    templatemodel.ITemplateRepository
	orgRepo         orgmodel.IOrgRepository
	eventRepo       eventmodel.IEventRepository
	participantRepo participantmodel.IParticipantRepository
	partnerRepo     partnermodel.IPartnerRepository
	generator       *render.Generator
}

// NewGenerationController creates a new generation controller with injected dependencies
func NewGenerationController(
	templateRepo templatemodel.ITemplateRepository,
	orgRepo orgmodel.IOrgRepository,
	eventRepo eventmodel.IEventRepository,
	participantRepo participantmodel.IParticipantRepository,
	partnerRepo partnermodel.IPartnerRepository,
	generator *render.Generator,
) *GenerationController {
	return &GenerationController{
		templateRepo:    templateRepo,
		orgRepo:         orgRepo,
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		partnerRepo:     partnerRepo,
		generator:       generator,
	}
}

// loadTemplate fetches the template, checks the caller's membership in its
// organization and parses the stored design. A non-nil last return value is
// the response already sent to the client.
func (ctrl *GenerationController) loadTemplate(c *fiber.Ctx, userId string, templateId string) (*templatemodel.TemplateWithDesign, *render.Template, error) {
	template, err := ctrl.templateRepo.GetById(templateId)
	if err != nil {
		slog.Error("Generation template lookup failed", "error", err, "template_id", templateId)
		return nil, nil, response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query template")
	}
	if template == nil {
		slog.Warn("Generation requested for non-existent template", "template_id", templateId, "user_id", userId)
		return nil, nil, response.SendNotFound(c, "Template not found")
	}

	isMember, memberErr := ctrl.orgRepo.IsMember(userId, template.OrgID)
	if memberErr != nil {
		slog.Error("Generation membership check failed", "error", memberErr, "user_id", userId, "org_id", template.OrgID)
		return nil, nil, response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to verify organization membership")
	}
	if !isMember {
		slog.Warn("Generation attempt by non-member", "user_id", userId, "template_id", templateId, "org_id", template.OrgID)
		return nil, nil, response.SendForbidden(c, "You are not a member of this organization")
	}

	tpl, parseErr := render.ParseTemplate(template.Design)
	if parseErr != nil {
		slog.Error("Generation design parsing failed", "error", parseErr, "template_id", templateId)
		return nil, nil, response.SendErrorWithCode(c, response.CodeGenerationFailed, "Stored design is not renderable")
	}
	tpl.ID = template.ID
	tpl.Name = template.Name

	return template, tpl, nil
}

// checkEventScope verifies that every referenced event belongs to the
// template's organization. Entities from another organization's events must
// not be rendered with this template.
func (ctrl *GenerationController) checkEventScope(c *fiber.Ctx, eventIds []string, orgId string) error {
	if len(eventIds) == 0 {
		return nil
	}

	events, err := ctrl.eventRepo.GetByIds(eventIds)
	if err != nil {
		slog.Error("Generation event scope lookup failed", "error", err, "org_id", orgId)
		return response.SendErrorWithCode(c, response.CodeDatabaseError, "Failed to query events")
	}

	found := map[string]string{}
	for _, event := range events {
		found[event.ID] = event.OrgID
	}

	for _, eventId := range eventIds {
		eventOrg, ok := found[eventId]
		if !ok || eventOrg != orgId {
			slog.Warn("Generation entity outside template organization", "event_id", eventId, "org_id", orgId)
			return response.SendForbidden(c, "Entity does not belong to the template's organization")
		}
	}

	return nil
}

// respond frames the rendering outcome. Exactly one successful render
// returns the PNG directly; two or more return a ZIP of the successes. The
// failed count always travels in a header. A batch with no successes at all
// is an error.
func (ctrl *GenerationController) respond(c *fiber.Ctx, results []render.Result, templateName string) error {
	var succeeded []render.Result
	failed := 0
	for _, result := range results {
		if result.Success {
			succeeded = append(succeeded, result)
		} else {
			failed++
		}
	}

	if len(succeeded) == 0 {
		slog.Error("Generation produced no images", "template", templateName, "requested", len(results))
		return c.Status(fiber.StatusInternalServerError).JSON(
			response.ErrorWithCode(response.CodeGenerationFailed, "All image generations failed", results),
		)
	}

	if len(succeeded) == 1 {
		result := succeeded[0]
		c.Set(fiber.HeaderContentType, "image/png")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
		c.Set(FailedCountHeader, fmt.Sprintf("%d", failed))
		return c.Send(result.Buffer)
	}

	entries := make([]render.ZipEntry, 0, len(succeeded))
	for _, result := range succeeded {
		entries = append(entries, render.ZipEntry{FileName: result.FileName, Data: result.Buffer})
	}

	archive, zipErr := render.CreateZip(entries)
	if zipErr != nil {
		slog.Error("Generation archive packaging failed", "error", zipErr, "template", templateName)
		return response.SendErrorWithCode(c, response.CodeGenerationFailed, "Failed to package generated images")
	}

	zipName := render.ZipFilename(templateName, time.Now())
	ctrl.archiveUpload(zipName, archive)

	slog.Info("Generation batch completed",
		"template", templateName,
		"requested", len(results),
		"succeeded", len(succeeded),
		"failed", failed)

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", zipName))
	c.Set(FailedCountHeader, fmt.Sprintf("%d", failed))
	return c.Send(archive)
}

// archiveUpload keeps a copy of the ZIP in object storage for later
// download. Best effort: a storage failure never fails the request that
// already has the bytes in hand.
func (ctrl *GenerationController) archiveUpload(zipName string, archive []byte) {
	if common.Config == nil || common.Config.BucketArchive == nil || common.MinIOClient == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	url, err := util.UploadBytes(ctx, *common.Config.BucketArchive, zipName, archive, "application/zip")
	if err != nil {
		slog.Warn("Generation archive upload failed", "error", err, "object", zipName)
		return
	}
	slog.Info("Generation archive stored", "url", url)
}
