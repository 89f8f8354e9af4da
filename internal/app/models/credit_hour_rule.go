package models

import "github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"

// CreditHourRule bounds the registrable credit units for a session semester.
// min <= max is expected but owned by the backend, not re-checked here.
type CreditHourRule struct {
	ID          int64            `json:"id"`
	Session     *AcademicSession `json:"session,omitempty"`
	Semester    enums.Semester   `json:"semester"`
	MinHours    int              `json:"minHours"`
	MaxHours    int              `json:"maxHours"`
	CreatedDate string           `json:"createdDate,omitempty"`
}
