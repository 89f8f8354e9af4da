package dto

import "github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"

// CreateSessionRequest represents academic session creation data
type CreateSessionRequest struct {
	IntakeSession string `json:"intakeSession" validate:"required"`
	IntakeYear    int    `json:"intakeYear" validate:"required,gt=0"`
	IsCurrent     bool   `json:"isCurrent"`
}

// UpdateSessionRequest represents academic session update data
type UpdateSessionRequest = CreateSessionRequest

// CreateCreditHourRuleRequest represents credit-hour rule creation data.
// min <= max is not validated client-side; the backend owns that invariant.
type CreateCreditHourRuleRequest struct {
	SessionID int64          `json:"sessionId" validate:"required"`
	Semester  enums.Semester `json:"semester" validate:"required,oneof=FIRST SECOND"`
	MinHours  int            `json:"minHours" validate:"required,gt=0"`
	MaxHours  int            `json:"maxHours" validate:"required,gt=0"`
}

// UpdateCreditHourRuleRequest represents credit-hour rule update data
type UpdateCreditHourRuleRequest = CreateCreditHourRuleRequest
