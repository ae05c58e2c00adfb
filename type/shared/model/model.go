// Package model holds the relational schema. Dynamic documents (template
// designs, participant and partner field maps) live in MongoDB keyed by the
// same IDs; these rows carry indexes, ownership and status only.
package model

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Organization struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member links a user to an organization. Membership is the authorization
// oracle: every template and entity lookup is checked against it.
type Member struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrgID     string    `gorm:"index;not null" json:"org_id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Role      string    `gorm:"default:member" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrgID     string    `gorm:"index;not null" json:"org_id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TemplateMeta indexes a visual template; the design document itself is a
// Mongo document with the same ID.
type TemplateMeta struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrgID     string    `gorm:"index;not null" json:"org_id"`
	EventID   string    `gorm:"index" json:"event_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Participant struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	EventID     string    `gorm:"index;not null" json:"event_id"`
	EmailStatus string    `gorm:"default:pending" json:"email_status"`
	CheckedIn   bool      `gorm:"default:false" json:"checked_in"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Partner struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	EventID   string    `gorm:"index;not null" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Asset records a media file uploaded to object storage, typically a
// template background or logo.
type Asset struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrgID       string    `gorm:"index;not null" json:"org_id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
