package payload

type CreateOrgPayload struct {
	Name string `json:"name" validate:"required"`
}
