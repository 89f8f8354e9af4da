package dto

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	FacultyName string `json:"facultyName" validate:"required"`
	FacultyCode string `json:"facultyCode" validate:"required,uppercase"`
	Institution string `json:"institution" validate:"required"`
}

// UpdateFacultyRequest represents faculty update data
type UpdateFacultyRequest = CreateFacultyRequest
