package dto

import "github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"

// CreateCourseRequest represents course creation data. CourseCode, CourseTitle
// and DepartmentID are the mandatory set; the code format and numbering-band
// rules live in the form layer, not in tags.
type CreateCourseRequest struct {
	CourseCode      string             `json:"courseCode" validate:"required"`
	CourseTitle     string             `json:"courseTitle" validate:"required"`
	CreditUnit      int                `json:"creditUnit" validate:"omitempty,gt=0"`
	Status          enums.CourseStatus `json:"status" validate:"omitempty,oneof=CORE ELECTIVE"`
	Semester        enums.Semester     `json:"semester" validate:"omitempty,oneof=FIRST SECOND"`
	Level           string             `json:"level"`
	CourseCategory  string             `json:"courseCategory"`
	DepartmentID    int64              `json:"departmentId" validate:"required"`
	PrerequisiteIDs []int64            `json:"prerequisiteIds"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest = CreateCourseRequest
