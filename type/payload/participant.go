package payload

type AddParticipantsPayload struct {
	Participants []map[string]any `json:"participants" validate:"required,min=1"`
}

type EditParticipantPayload struct {
	Data map[string]any `json:"data" validate:"required"`
}

type AddPartnersPayload struct {
	Partners []map[string]any `json:"partners" validate:"required,min=1"`
}

type EditPartnerPayload struct {
	Data map[string]any `json:"data" validate:"required"`
}
