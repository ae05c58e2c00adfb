package payload

type GenerateImagesPayload struct {
	ParticipantIds []string `json:"participantIds" validate:"required,min=1"`
	TemplateId     string   `json:"templateId" validate:"required"`
}

type GeneratePartnerImagesPayload struct {
	PartnerIds []string `json:"partnerIds" validate:"required,min=1"`
	TemplateId string   `json:"templateId" validate:"required"`
}

type MailBadgePayload struct {
	TemplateId string `json:"templateId" validate:"required"`
}
