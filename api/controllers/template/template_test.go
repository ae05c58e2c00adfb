package template_controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	template_controller "github.com/eventflow-app/eventflow-api/api/controllers/template"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	templatemodel "github.com/eventflow-app/eventflow-api/api/model/templateModel"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

func setupTemplateApp(templateRepo *templatemodel.MockTemplateRepository, orgRepo *orgmodel.MockOrgRepository) *fiber.App {
	generator := render.NewGenerator(render.NewRenderer(render.NewFontRegistry("")))
	ctrl := template_controller.NewTemplateController(templateRepo, orgRepo, generator)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "user-1")
		return c.Next()
	})
	app.Get("/template/:templateId", ctrl.GetById)
	app.Post("/template", ctrl.Create)
	app.Post("/template/preview/:templateId", ctrl.Preview)
	return app
}

func memberOfOrg1() *orgmodel.MockOrgRepository {
	repo := orgmodel.NewMockOrgRepository()
	repo.IsMemberFunc = func(userId, orgId string) (bool, error) {
		return orgId == "org-1", nil
	}
	return repo
}

func storedTemplate(design string) *templatemodel.MockTemplateRepository {
	repo := templatemodel.NewMockTemplateRepository()
	repo.GetByIdFunc = func(templateId string) (*templatemodel.TemplateWithDesign, error) {
		if templateId != "tpl-1" {
			return nil, nil
		}
		return &templatemodel.TemplateWithDesign{
			TemplateMeta: model.TemplateMeta{ID: "tpl-1", OrgID: "org-1", Name: "Badge"},
			Design:       json.RawMessage(design),
		}, nil
	}
	return repo
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 30000)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return resp, data
}

func TestTemplateController_GetById(t *testing.T) {
	design := `{"width":20,"height":20,"elements":[]}`

	t.Run("found for member", func(t *testing.T) {
		app := setupTemplateApp(storedTemplate(design), memberOfOrg1())
		resp, body := doRequest(t, app, "GET", "/template/tpl-1", "")

		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("Expected 200, got %d (body %s)", resp.StatusCode, body)
		}
		var envelope map[string]any
		if err := json.Unmarshal(body, &envelope); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if envelope["success"] != true {
			t.Errorf("Expected success=true, got %v", envelope["success"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		app := setupTemplateApp(storedTemplate(design), memberOfOrg1())
		resp, _ := doRequest(t, app, "GET", "/template/tpl-unknown", "")
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("Expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("forbidden for non-member", func(t *testing.T) {
		orgRepo := orgmodel.NewMockOrgRepository()
		orgRepo.IsMemberFunc = func(userId, orgId string) (bool, error) { return false, nil }
		app := setupTemplateApp(storedTemplate(design), orgRepo)
		resp, _ := doRequest(t, app, "GET", "/template/tpl-1", "")
		if resp.StatusCode != fiber.StatusForbidden {
			t.Errorf("Expected 403, got %d", resp.StatusCode)
		}
	})
}

func TestTemplateController_CreateRejectsUnrenderableDesign(t *testing.T) {
	app := setupTemplateApp(templatemodel.NewMockTemplateRepository(), memberOfOrg1())

	resp, body := doRequest(t, app, "POST", "/template",
		`{"orgId":"org-1","name":"Bad","design":{"width":0,"height":0}}`)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("Expected 400, got %d (body %s)", resp.StatusCode, body)
	}
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if envelope["code"] != "INVALID_REQUEST" {
		t.Errorf("Expected INVALID_REQUEST, got %v", envelope["code"])
	}
}

func TestTemplateController_PreviewReturnsPNG(t *testing.T) {
	design := `{"width":24,"height":24,"backgroundColor":"#ffffff","elements":[{"type":"text","x":2,"y":2,"content":"{{name}}","fontSize":8}]}`
	app := setupTemplateApp(storedTemplate(design), memberOfOrg1())

	resp, body := doRequest(t, app, "POST", "/template/preview/tpl-1", `{"data":{"name":"Sample"}}`)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d (body %s)", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if !bytes.HasPrefix(body, []byte("\x89PNG")) {
		t.Error("Expected body to be a PNG image")
	}
}
