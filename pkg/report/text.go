package report

import (
	"fmt"
	"io"
)

// WriteText writes human-readable output to w.
func (r *Report) WriteText(w io.Writer) {
	for _, m := range r.Messages {
		fmt.Fprintln(w, m.String())
	}
	if len(r.Messages) == 0 {
		fmt.Fprintln(w, "No problems detected.")
		return
	}
	fmt.Fprintf(w, "Check finished. Errors: %d, Warnings: %d, Usages: %d, Fatal: %d\n",
		r.ErrorCount(), r.WarningCount(), r.UsageCount(), r.FatalCount())
}
