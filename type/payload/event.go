package payload

import "time"

type CreateEventPayload struct {
	OrgID    string    `json:"orgId" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

type UpdateEventPayload struct {
	Name     string    `json:"name"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}
