package models

// Faculty represents a faculty of the institution
type Faculty struct {
	ID          int64  `json:"id"`
	Name        string `json:"facultyName"`
	Code        string `json:"facultyCode"`
	Institution string `json:"institution"`
	CreatedDate string `json:"createdDate,omitempty"`
}
