package dto

// CreateProgramRequest represents program creation data
type CreateProgramRequest struct {
	ProgramName   string `json:"programName" validate:"required"`
	DurationYears int    `json:"durationYears" validate:"required,gt=0"`
	DepartmentID  int64  `json:"departmentId" validate:"required"`
}

// UpdateProgramRequest represents program update data
type UpdateProgramRequest = CreateProgramRequest
