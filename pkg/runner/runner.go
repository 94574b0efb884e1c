// Package runner drives the page scraper across an inclusive page range.
package runner

import (
	"context"

	"wallgrab/pkg/cli"
	"wallgrab/pkg/logger"
	"wallgrab/pkg/pacer"
	"wallgrab/pkg/scraper"
)

// PageScraper processes one listing page
type PageScraper interface {
	ScrapePage(ctx context.Context, page int) (*scraper.PageResult, error)
}

// Reporter receives run-level progress
type Reporter interface {
	Start(r cli.PageRange)
	PageFailed(page int, err error)
	Finish(result *RunResult)
}

// PageOutcome is what happened to one page of the range
type PageOutcome struct {
	Page   int
	Result *scraper.PageResult
	Err    error
}

// RunResult accumulates the outcome of a whole run
type RunResult struct {
	Range     cli.PageRange
	OutputDir string
	// Total counts wallpapers discovered on listing pages, including ones
	// that were skipped or failed.
	Total int
	// Downloaded counts images actually written.
	Downloaded int
	Pages      []PageOutcome
}

// FailedPages returns the page numbers whose listing could not be processed
func (r *RunResult) FailedPages() []int {
	var pages []int
	for _, p := range r.Pages {
		if p.Err != nil {
			pages = append(pages, p.Page)
		}
	}
	return pages
}

// Skipped returns the number of items that had no download link
func (r *RunResult) Skipped() int {
	n := 0
	for _, p := range r.Pages {
		if p.Result != nil {
			n += p.Result.Skipped()
		}
	}
	return n
}

// Failed returns the number of items that hit an error
func (r *RunResult) Failed() int {
	n := 0
	for _, p := range r.Pages {
		if p.Result != nil {
			n += p.Result.Failed()
		}
	}
	return n
}

// Runner walks a page range one page at a time
type Runner struct {
	scraper   PageScraper
	pacer     pacer.Pacer
	reporter  Reporter
	outputDir string
	logger    logger.Logger
}

// New creates a Runner. A nil reporter or logger discards output.
func New(s PageScraper, p pacer.Pacer, reporter Reporter, outputDir string, log logger.Logger) *Runner {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Runner{
		scraper:   s,
		pacer:     p,
		reporter:  reporter,
		outputDir: outputDir,
		logger:    log,
	}
}

// Run scrapes every page of r in ascending order. A failing page is reported
// and the run moves on. The pacer runs between pages, never after the last.
// An error is returned only if ctx ends during a pause.
func (rn *Runner) Run(ctx context.Context, r cli.PageRange) (*RunResult, error) {
	result := &RunResult{
		Range:     r,
		OutputDir: rn.outputDir,
	}

	rn.reporter.Start(r)
	rn.logger.InfoWithFields("Run started", map[string]interface{}{
		"start":      r.Start,
		"end":        r.End,
		"output_dir": rn.outputDir,
	})

	// Walk lazily and stop on equality so ranges ending at math.MaxInt terminate
	for page := r.Start; !r.Empty(); page++ {
		pageResult, err := rn.scraper.ScrapePage(ctx, page)
		result.Pages = append(result.Pages, PageOutcome{Page: page, Result: pageResult, Err: err})

		if err != nil {
			rn.logger.WithError(err).WithField("page", page).Warn("Page failed")
			rn.reporter.PageFailed(page, err)
		} else {
			result.Total += pageResult.Found
			result.Downloaded += pageResult.Downloaded()
		}

		if r.IsLast(page) {
			break
		}
		if err := rn.pacer.Wait(ctx); err != nil {
			return result, err
		}
	}

	rn.logger.InfoWithFields("Run finished", map[string]interface{}{
		"total":        result.Total,
		"downloaded":   result.Downloaded,
		"failed_pages": len(result.FailedPages()),
	})
	rn.reporter.Finish(result)

	return result, nil
}

type nopReporter struct{}

func (nopReporter) Start(r cli.PageRange)          {}
func (nopReporter) PageFailed(page int, err error) {}
func (nopReporter) Finish(result *RunResult)       {}
