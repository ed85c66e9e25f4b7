// Package progress renders the periodic scan-progress line the CLI
// prints to stderr while a dump is being processed, grounded on
// wikipa/main.go's scanDump \r-prefixed progress reporting, restyled
// with github.com/charmbracelet/lipgloss instead of bare fmt.Fprintf.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Step is how many scanned pages trigger one progress line.
const Step = 10000

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Reporter prints a single overwritten stderr line describing scan
// progress, and a final summary line once the scan completes.
type Reporter struct {
	out   io.Writer
	start time.Time
}

// New returns a Reporter writing to out, starting its elapsed-time clock
// now.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out, start: time.Now()}
}

// Report prints an in-progress line. Callers typically call this every
// Step pages scanned.
func (r *Reporter) Report(scanned, kept int) {
	fmt.Fprintf(r.out, "\r%s %s pages scanned, %s kept",
		labelStyle.Render("scanning..."),
		countStyle.Render(fmt.Sprint(scanned)),
		countStyle.Render(fmt.Sprint(kept)))
}

// Done prints the final summary line, including elapsed time, and
// terminates the progress line with a newline.
func (r *Reporter) Done(scanned, kept int) {
	fmt.Fprintf(r.out, "\r%s %s pages scanned, %s kept, elapsed %.3fs\n",
		labelStyle.Render("finished."),
		countStyle.Render(fmt.Sprint(scanned)),
		countStyle.Render(fmt.Sprint(kept)),
		time.Since(r.start).Seconds())
}
