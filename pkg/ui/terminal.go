package ui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"wallgrab/pkg/cli"
	"wallgrab/pkg/runner"
)

var (
	cyan    = lipgloss.Color("#00FFFF")
	green   = lipgloss.Color("#39FF14")
	yellow  = lipgloss.Color("#FFFF00")
	red     = lipgloss.Color("#FF3131")
	magenta = lipgloss.Color("#FF00FF")
	dim     = lipgloss.Color("#B0B0B0")
)

type palette struct {
	banner  lipgloss.Style
	page    lipgloss.Style
	counter lipgloss.Style
	file    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// newPalette builds styles for w. Writers that are not terminals get plain text.
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		banner:  r.NewStyle().Foreground(cyan).Bold(true),
		page:    r.NewStyle().Foreground(magenta),
		counter: r.NewStyle().Foreground(yellow),
		file:    r.NewStyle().Foreground(dim),
		success: r.NewStyle().Foreground(green).Bold(true),
		failure: r.NewStyle().Foreground(red),
		muted:   r.NewStyle().Foreground(dim),
	}
}

// Console prints run progress. Progress goes to out, fatal errors to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
	styles palette
	errSty palette

	tracker *Tracker
}

// NewConsole creates a console writing to the given streams
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out:     out,
		errOut:  errOut,
		styles:  newPalette(out),
		errSty:  newPalette(errOut),
		tracker: NewTracker(),
	}
}

// Start prints the run banner
func (c *Console) Start(r cli.PageRange) {
	c.tracker.Reset()
	fmt.Fprintf(c.out, "%s\n\n", c.styles.banner.Render(
		fmt.Sprintf("🔍 Fetching wallpapers from page %d to %d...", r.Start, r.End)))
}

// PageFound prints the number of cards on a listing page
func (c *Console) PageFound(page, count int) {
	fmt.Fprintf(c.out, "%s\n", c.styles.page.Render(
		fmt.Sprintf("📄 Page %d: %d wallpapers found", page, count)))
}

// ItemSaved prints one written file
func (c *Console) ItemSaved(index, total int, fileName string) {
	fmt.Fprintf(c.out, "%s %s\n",
		c.styles.counter.Render(fmt.Sprintf("[%d/%d]", index, total)),
		c.styles.file.Render(fileName))
}

// PageFailed prints a listing page that could not be processed
func (c *Console) PageFailed(page int, err error) {
	fmt.Fprintf(c.out, "%s\n", c.styles.failure.Render(
		fmt.Sprintf("❌ Page %d failed: %v", page, err)))
}

// Finish prints the closing line and the outcome breakdown
func (c *Console) Finish(result *runner.RunResult) {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.success.Render(
		fmt.Sprintf("🎉 Done! %d wallpapers saved in %q.", result.Total, result.OutputDir)))

	summary := fmt.Sprintf("%d downloaded, %d without a 1920x1080 link, %d failed",
		result.Downloaded, result.Skipped(), result.Failed())
	if failed := result.FailedPages(); len(failed) > 0 {
		summary += fmt.Sprintf(", %d page(s) failed %v", len(failed), failed)
	}
	summary += fmt.Sprintf(" in %s", c.tracker.Elapsed().Round(time.Millisecond))
	fmt.Fprintf(c.out, "%s\n", c.styles.muted.Render(summary))
}

// Error prints a fatal error to errOut
func (c *Console) Error(err error) {
	msg := err.Error()
	if errors.Is(err, cli.ErrInvalidRange) {
		msg = cli.InvalidRangeMessage
	}
	fmt.Fprintf(c.errOut, "%s\n", c.errSty.failure.Render("❌ "+msg))
}

// Usage prints the help text
func (c *Console) Usage() {
	fmt.Fprint(c.out, Usage)
}
