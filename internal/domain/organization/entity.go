package organization

import (
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
)

type Organization struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Address   *string                 `json:"address,omitempty"`
	Timing    attendance.TimingConfig `json:"timing"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

type Branch struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Address        *string   `json:"address,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Department struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Shift struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	StartTime      string    `json:"startTime"` // "HH:MM"
	EndTime        string    `json:"endTime"`   // "HH:MM"
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CustomFieldKind is the input type a custom field renders as.
type CustomFieldKind string

const (
	FieldText   CustomFieldKind = "TEXT"
	FieldNumber CustomFieldKind = "NUMBER"
	FieldDate   CustomFieldKind = "DATE"
	FieldSelect CustomFieldKind = "SELECT"
)

type CustomField struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	Name           string          `json:"name"`
	Kind           CustomFieldKind `json:"kind"`
	Required       bool            `json:"required"`
	Options        []string        `json:"options,omitempty"` // SELECT only
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
