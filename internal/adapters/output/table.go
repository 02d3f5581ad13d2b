// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"profilex/internal/core/domain"
)

// OutputTable imprime el reporte de ejecucion como tabla legible en
// terminal.
func OutputTable(w io.Writer, report *domain.RunReport) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	// Header con informacion del run
	fmt.Fprintf(tw, "\n=== Integration Run Report ===\n")
	fmt.Fprintf(tw, "Run ID:\t%s\n", report.ID)
	fmt.Fprintf(tw, "Duration:\t%s\n", report.Metadata.Duration)
	fmt.Fprintf(tw, "Eligible:\t%d\n", report.Metadata.Eligible)
	fmt.Fprintf(tw, "Skipped:\t%d disabled, %d unknown\n\n",
		report.Metadata.SkippedDisabled,
		report.Metadata.SkippedUnknown,
	)

	if len(report.Results) > 0 {
		fmt.Fprintln(tw, "PLATFORM\tSTATUS\tDURATION\tMESSAGE")
		fmt.Fprintln(tw, "--------\t------\t--------\t-------")

		for _, res := range report.Results {
			status := "FAIL"
			if res.Success {
				status = "OK"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				res.Platform,
				status,
				res.Duration.Round(time.Millisecond),
				res.Message,
			)
		}
	} else {
		fmt.Fprintln(tw, "No integrations executed.")
	}

	fmt.Fprintf(tw, "\nSummary:\t%s\n", report.Summary())

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}
