package bulk

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
)

// Render writes a reconciliation report as a terminal summary. An empty
// issue list renders an explicit "no errors" line rather than nothing.
func Render(w io.Writer, report *models.UploadReport) {
	fmt.Fprintf(w, "Upload summary: processed %d, saved %d, skipped %d, failed %d\n",
		report.Processed, report.Saved, report.Skipped, report.Failed)

	if len(report.Errors) == 0 {
		fmt.Fprintln(w, "No errors or duplicates.")
		return
	}

	fmt.Fprintln(w, "Row issues:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tMESSAGE")
	for _, issue := range report.Errors {
		fmt.Fprintf(tw, "%d\t%s\n", issue.RowNumber, issue.Message)
	}
	tw.Flush()
}
