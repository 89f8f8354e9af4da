package models

// Department represents an academic department. Programs and courses
// reference departments by id.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"deptName"`
	Code        string `json:"deptCode"`
	CreatedDate string `json:"createdDate,omitempty"`
}
