package models

// RowIssue is one per-row diagnostic from a bulk import
type RowIssue struct {
	RowNumber int    `json:"rowNumber"`
	Message   string `json:"message"`
}

// UploadReport is the reconciliation outcome of one bulk import. A non-zero
// Failed count is a normal outcome, not a request-level error. The report is
// ephemeral: produced by one upload call, discarded when dismissed.
type UploadReport struct {
	Processed int        `json:"processed"`
	Saved     int        `json:"saved"`
	Skipped   int        `json:"skipped"`
	Failed    int        `json:"failed"`
	Errors    []RowIssue `json:"errors"`
}
