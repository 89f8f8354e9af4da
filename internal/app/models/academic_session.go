package models

// AcademicSession represents an enrollment intake cycle, e.g. "2025/2026".
// At most one session should be current; the backend enforces that.
type AcademicSession struct {
	ID            int64  `json:"id"`
	IntakeSession string `json:"intakeSession"`
	IntakeYear    int    `json:"intakeYear"`
	IsCurrent     bool   `json:"isCurrent"`
	CreatedDate   string `json:"createdDate,omitempty"`
}
