package models

import "github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"

// Course represents a course in the curriculum. Prerequisites are
// self-referential; the backend owns cycle prevention across the full
// graph, the client only rejects a course naming itself.
type Course struct {
	ID             int64              `json:"id"`
	CourseCode     string             `json:"courseCode"`
	CourseTitle    string             `json:"courseTitle"`
	CreditUnit     int                `json:"creditUnit"`
	Status         enums.CourseStatus `json:"status"`
	Semester       enums.Semester     `json:"semester"`
	Level          string             `json:"level"`
	CourseCategory string             `json:"courseCategory"`
	Department     *Department        `json:"department,omitempty"`
	Prerequisites  []Course           `json:"prerequisites,omitempty"`
	CreatedDate    string             `json:"createdDate,omitempty"`
}
