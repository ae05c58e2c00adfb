package generation_controller_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"image"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	generation_controller "github.com/eventflow-app/eventflow-api/api/controllers/generation"
	eventmodel "github.com/eventflow-app/eventflow-api/api/model/eventModel"
	orgmodel "github.com/eventflow-app/eventflow-api/api/model/orgModel"
	participantmodel "github.com/eventflow-app/eventflow-api/api/model/participantModel"
	partnermodel "github.com/eventflow-app/eventflow-api/api/model/partnerModel"
	templatemodel "github.com/eventflow-app/eventflow-api/api/model/templateModel"
	"github.com/eventflow-app/eventflow-api/internal/render"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

const validDesign = `{
	"width": 24,
	"height": 24,
	"backgroundColor": "#ffffff",
	"elements": [
		{"type": "text", "x": 2, "y": 2, "content": "{{name}}", "fontSize": 8}
	]
}`

// imageDesign forces one renderer.Load call per entity so tests can fail
// individual entities through an injected loader.
const imageDesign = `{
	"width": 24,
	"height": 24,
	"backgroundColor": "#ffffff",
	"elements": [
		{"type": "image", "x": 0, "y": 0, "width": 8, "height": 8, "src": "https://assets.example/logo.png"},
		{"type": "text", "x": 2, "y": 12, "content": "{{name}}", "fontSize": 8}
	]
}`

type mockSet struct {
	template    *templatemodel.MockTemplateRepository
	org         *orgmodel.MockOrgRepository
	event       *eventmodel.MockEventRepository
	participant *participantmodel.MockParticipantRepository
	partner     *partnermodel.MockPartnerRepository
}

// happyMocks returns mocks wired for one org, one event and two resolvable
// participants. Cases override individual funcs to force each failure leg.
func happyMocks() *mockSet {
	m := &mockSet{
		template:    templatemodel.NewMockTemplateRepository(),
		org:         orgmodel.NewMockOrgRepository(),
		event:       eventmodel.NewMockEventRepository(),
		participant: participantmodel.NewMockParticipantRepository(),
		partner:     partnermodel.NewMockPartnerRepository(),
	}

	m.template.GetByIdFunc = func(templateId string) (*templatemodel.TemplateWithDesign, error) {
		if templateId != "tpl-1" {
			return nil, nil
		}
		return &templatemodel.TemplateWithDesign{
			TemplateMeta: model.TemplateMeta{ID: "tpl-1", OrgID: "org-1", Name: "Badge"},
			Design:       json.RawMessage(validDesign),
		}, nil
	}

	m.org.IsMemberFunc = func(userId string, orgId string) (bool, error) {
		return userId == "user-1" && orgId == "org-1", nil
	}

	m.event.GetByIdsFunc = func(eventIds []string) ([]*model.Event, error) {
		return []*model.Event{{ID: "event-1", OrgID: "org-1"}}, nil
	}

	m.participant.GetByIdsFunc = func(ids []string) ([]*participantmodel.CombinedParticipant, []string, error) {
		known := map[string]string{"p-1": "Alice", "p-2": "Bob"}
		var found []*participantmodel.CombinedParticipant
		var missing []string
		for _, id := range ids {
			name, ok := known[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			found = append(found, &participantmodel.CombinedParticipant{
				ID:          id,
				EventID:     "event-1",
				DynamicData: map[string]any{"name": name},
			})
		}
		return found, missing, nil
	}

	return m
}

func setupApp(m *mockSet, authenticated bool) *fiber.App {
	renderer := render.NewRenderer(render.NewFontRegistry(""))
	return setupAppWithRenderer(m, renderer, authenticated)
}

func setupAppWithRenderer(m *mockSet, renderer *render.Renderer, authenticated bool) *fiber.App {
	ctrl := generation_controller.NewGenerationController(
		m.template, m.org, m.event, m.participant, m.partner, render.NewGenerator(renderer),
	)

	app := fiber.New()
	if authenticated {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("user_id", "user-1")
			return c.Next()
		})
	}
	app.Post("/generate-images", ctrl.GenerateImages)
	app.Post("/generate-images/partners", ctrl.GeneratePartnerImages)
	return app
}

// useDesign swaps the stored design of tpl-1.
func useDesign(m *mockSet, design string) {
	m.template.GetByIdFunc = func(templateId string) (*templatemodel.TemplateWithDesign, error) {
		return &templatemodel.TemplateWithDesign{
			TemplateMeta: model.TemplateMeta{ID: "tpl-1", OrgID: "org-1", Name: "Badge"},
			Design:       json.RawMessage(design),
		}, nil
	}
}

// panickyLoader builds a renderer whose image loader panics for the listed
// call numbers (1-based) and otherwise returns a decoded stub image.
func panickyLoader(failCalls ...int) *render.Renderer {
	failing := map[int]bool{}
	for _, call := range failCalls {
		failing[call] = true
	}
	calls := 0
	return &render.Renderer{
		Fonts: render.NewFontRegistry(""),
		Load: func(ctx context.Context, source string) (image.Image, error) {
			calls++
			if failing[calls] {
				panic("decoder exploded")
			}
			return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
		},
	}
}

func postJSON(app *fiber.App, path string, body string) (*http.Response, []byte, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 30000)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, data, nil
}

func TestGenerateImages_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		requestBody   string
		setup         func(m *mockSet)
		wantStatus    int
		wantCode      string
		checkBody     func(t *testing.T, body []byte)
	}{
		{
			name:          "unauthenticated request",
			authenticated: false,
			requestBody:   `{"participantIds":["p-1"],"templateId":"tpl-1"}`,
			wantStatus:    fiber.StatusUnauthorized,
			wantCode:      "UNAUTHORIZED",
		},
		{
			name:          "malformed body",
			authenticated: true,
			requestBody:   `{not json`,
			wantStatus:    fiber.StatusBadRequest,
			wantCode:      "INVALID_REQUEST",
		},
		{
			name:          "empty participant list",
			authenticated: true,
			requestBody:   `{"participantIds":[],"templateId":"tpl-1"}`,
			wantStatus:    fiber.StatusBadRequest,
			wantCode:      "INVALID_REQUEST",
		},
		{
			name:          "missing template id",
			authenticated: true,
			requestBody:   `{"participantIds":["p-1"]}`,
			wantStatus:    fiber.StatusBadRequest,
			wantCode:      "INVALID_REQUEST",
		},
		{
			name:          "template not found",
			authenticated: true,
			requestBody:   `{"participantIds":["p-1"],"templateId":"tpl-unknown"}`,
			wantStatus:    fiber.StatusNotFound,
			wantCode:      "NOT_FOUND",
		},
		{
			name:          "caller outside template organization",
			authenticated: true,
			requestBody:   `{"participantIds":["p-1"],"templateId":"tpl-1"}`,
			setup: func(m *mockSet) {
				m.org.IsMemberFunc = func(userId, orgId string) (bool, error) { return false, nil }
			},
			wantStatus: fiber.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:          "membership query failure",
			authenticated: true,
			requestBody:   `{"participantIds":["p-1"],"templateId":"tpl-1"}`,
			setup: func(m *mockSet) {
				m.org.IsMemberFunc = func(userId, orgId string) (bool, error) {
					return false, fiber.ErrServiceUnavailable
				}
			},
			wantStatus: fiber.StatusInternalServerError,
			wantCode:   "DATABASE_ERROR",
		},
		{
			name:          "unknown participants reported",
			authenticated: true,
			requestBody:   `{"participantIds":["p-1","ghost-1","ghost-2"],"templateId":"tpl-1"}`,
			wantStatus:    fiber.StatusNotFound,
			wantCode:      "NOT_FOUND",
			checkBody: func(t *testing.T, body []byte) {
				var envelope map[string]any
				if err := json.Unmarshal(body, &envelope); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				data, ok := envelope["data"].(map[string]any)
				if !ok {
					t.Fatal("Expected data object with missing ids")
				}
				missing, ok := data["missing_ids"].([]any)
				if !ok || len(missing) != 2 {
					t.Errorf("Expected 2 missing ids, got %v", data["missing_ids"])
				}
			},
		},
		{
			name:          "participant event outside template organization",
			authenticated: true,
			requestBody:   `{"participantIds":["p-1"],"templateId":"tpl-1"}`,
			setup: func(m *mockSet) {
				m.event.GetByIdsFunc = func(eventIds []string) ([]*model.Event, error) {
					return []*model.Event{{ID: "event-1", OrgID: "org-other"}}, nil
				}
			},
			wantStatus: fiber.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:          "stored design unrenderable",
			authenticated: true,
			requestBody:   `{"participantIds":["p-1"],"templateId":"tpl-1"}`,
			setup: func(m *mockSet) {
				m.template.GetByIdFunc = func(templateId string) (*templatemodel.TemplateWithDesign, error) {
					return &templatemodel.TemplateWithDesign{
						TemplateMeta: model.TemplateMeta{ID: "tpl-1", OrgID: "org-1", Name: "Badge"},
						Design:       json.RawMessage(`{"width":0,"height":0}`),
					}, nil
				}
			},
			wantStatus: fiber.StatusInternalServerError,
			wantCode:   "GENERATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := happyMocks()
			if tt.setup != nil {
				tt.setup(mocks)
			}
			app := setupApp(mocks, tt.authenticated)

			resp, body, err := postJSON(app, "/generate-images", tt.requestBody)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("Expected status %d, got %d (body %s)", tt.wantStatus, resp.StatusCode, body)
			}

			var envelope map[string]any
			if err := json.Unmarshal(body, &envelope); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if envelope["success"] != false {
				t.Errorf("Expected success=false, got %v", envelope["success"])
			}
			if tt.wantCode != "" && envelope["code"] != tt.wantCode {
				t.Errorf("Expected code=%s, got %v", tt.wantCode, envelope["code"])
			}

			if tt.checkBody != nil {
				tt.checkBody(t, body)
			}
		})
	}
}

func TestGenerateImages_SingleParticipantReturnsPNG(t *testing.T) {
	app := setupApp(happyMocks(), true)

	resp, body, err := postJSON(app, "/generate-images", `{"participantIds":["p-1"],"templateId":"tpl-1"}`)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected Content-Type image/png, got %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "alice_badge.png") {
		t.Errorf("Expected attachment filename in disposition, got %q", cd)
	}
	if !bytes.HasPrefix(body, []byte("\x89PNG")) {
		t.Error("Expected body to be a PNG image")
	}
}

func TestGenerateImages_BatchReturnsZip(t *testing.T) {
	app := setupApp(happyMocks(), true)

	resp, body, err := postJSON(app, "/generate-images", `{"participantIds":["p-1","p-2"],"templateId":"tpl-1"}`)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/zip" {
		t.Errorf("Expected Content-Type application/zip, got %q", ct)
	}
	if failed := resp.Header.Get(generation_controller.FailedCountHeader); failed != "0" {
		t.Errorf("Expected failed count header 0, got %q", failed)
	}

	reader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("Response is not a readable ZIP: %v", err)
	}
	if len(reader.File) != 2 {
		t.Fatalf("Expected 2 archive entries, got %d", len(reader.File))
	}
	wantNames := map[string]bool{"alice_badge.png": true, "bob_badge.png": true}
	for _, file := range reader.File {
		if !wantNames[file.Name] {
			t.Errorf("Unexpected archive entry %q", file.Name)
		}
	}
}

func TestGenerateImages_PartialBatchWithOneSuccessReturnsPNG(t *testing.T) {
	mocks := happyMocks()
	useDesign(mocks, imageDesign)
	// First entity's image decode blows up; the second renders fine. One
	// success means a direct PNG, not a one-entry archive.
	app := setupAppWithRenderer(mocks, panickyLoader(1), true)

	resp, body, err := postJSON(app, "/generate-images", `{"participantIds":["p-1","p-2"],"templateId":"tpl-1"}`)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected Content-Type image/png, got %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "bob_badge.png") {
		t.Errorf("Expected surviving entity's filename, got %q", cd)
	}
	if failed := resp.Header.Get(generation_controller.FailedCountHeader); failed != "1" {
		t.Errorf("Expected failed count header 1, got %q", failed)
	}
	if !bytes.HasPrefix(body, []byte("\x89PNG")) {
		t.Error("Expected body to be a PNG image")
	}
}

func TestGenerateImages_PartialBatchZipReportsFailedCount(t *testing.T) {
	mocks := happyMocks()
	useDesign(mocks, imageDesign)
	mocks.participant.GetByIdsFunc = func(ids []string) ([]*participantmodel.CombinedParticipant, []string, error) {
		names := map[string]string{"p-1": "Alice", "p-2": "Bob", "p-3": "Carol"}
		var found []*participantmodel.CombinedParticipant
		for _, id := range ids {
			found = append(found, &participantmodel.CombinedParticipant{
				ID:          id,
				EventID:     "event-1",
				DynamicData: map[string]any{"name": names[id]},
			})
		}
		return found, nil, nil
	}
	app := setupAppWithRenderer(mocks, panickyLoader(2), true)

	resp, body, err := postJSON(app, "/generate-images", `{"participantIds":["p-1","p-2","p-3"],"templateId":"tpl-1"}`)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/zip" {
		t.Errorf("Expected Content-Type application/zip, got %q", ct)
	}
	if failed := resp.Header.Get(generation_controller.FailedCountHeader); failed != "1" {
		t.Errorf("Expected failed count header 1, got %q", failed)
	}

	reader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("Response is not a readable ZIP: %v", err)
	}
	wantNames := map[string]bool{"alice_badge.png": true, "carol_badge.png": true}
	if len(reader.File) != 2 {
		t.Fatalf("Expected 2 archive entries, got %d", len(reader.File))
	}
	for _, file := range reader.File {
		if !wantNames[file.Name] {
			t.Errorf("Unexpected archive entry %q", file.Name)
		}
	}
}

func TestGenerateImages_AllFailedReturnsError(t *testing.T) {
	mocks := happyMocks()
	useDesign(mocks, imageDesign)
	app := setupAppWithRenderer(mocks, panickyLoader(1, 2), true)

	resp, body, err := postJSON(app, "/generate-images", `{"participantIds":["p-1","p-2"],"templateId":"tpl-1"}`)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d (body %s)", resp.StatusCode, body)
	}

	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if envelope["success"] != false {
		t.Errorf("Expected success=false, got %v", envelope["success"])
	}
	if envelope["code"] != "GENERATION_FAILED" {
		t.Errorf("Expected code=GENERATION_FAILED, got %v", envelope["code"])
	}
	results, ok := envelope["data"].([]any)
	if !ok || len(results) != 2 {
		t.Errorf("Expected per-entity results for both failures, got %v", envelope["data"])
	}
}

func TestGeneratePartnerImages_UsesPartnerSource(t *testing.T) {
	mocks := happyMocks()
	mocks.partner.GetByIdsFunc = func(ids []string) ([]*partnermodel.CombinedPartner, []string, error) {
		return []*partnermodel.CombinedPartner{
			{ID: "pt-1", EventID: "event-1", DynamicData: map[string]any{"companyName": "Initech"}},
		}, nil, nil
	}
	app := setupApp(mocks, true)

	resp, body, err := postJSON(app, "/generate-images/partners", `{"partnerIds":["pt-1"],"templateId":"tpl-1"}`)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", resp.StatusCode, body)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "initech_badge.png") {
		t.Errorf("Expected company-derived filename, got %q", cd)
	}
}

func TestGeneratePartnerImages_MissingPartners(t *testing.T) {
	mocks := happyMocks()
	mocks.partner.GetByIdsFunc = func(ids []string) ([]*partnermodel.CombinedPartner, []string, error) {
		return nil, ids, nil
	}
	app := setupApp(mocks, true)

	resp, body, err := postJSON(app, "/generate-images/partners", `{"partnerIds":["ghost"],"templateId":"tpl-1"}`)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("Expected status 404, got %d (body %s)", resp.StatusCode, body)
	}
}
