package models

// Program represents a degree program offered by a department
type Program struct {
	ID            int64       `json:"id"`
	Name          string      `json:"programName"`
	DurationYears int         `json:"durationYears"`
	Department    *Department `json:"department,omitempty"`
	CreatedDate   string      `json:"createdDate,omitempty"`
}
