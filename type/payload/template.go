package payload

import "encoding/json"

type CreateTemplatePayload struct {
	OrgID   string          `json:"orgId" validate:"required"`
	EventID string          `json:"eventId"`
	Name    string          `json:"name" validate:"required"`
	Design  json.RawMessage `json:"design" validate:"required"`
}

type UpdateTemplatePayload struct {
	Name   string          `json:"name"`
	Design json.RawMessage `json:"design"`
}

type PreviewTemplatePayload struct {
	Data map[string]any `json:"data"`
}
