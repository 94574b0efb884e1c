package runner

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wallgrab/pkg/cli"
	"wallgrab/pkg/errors"
	"wallgrab/pkg/logger"
	"wallgrab/pkg/pacer"
	"wallgrab/pkg/scraper"
)

// fakeScraper serves canned page results and records the call order
type fakeScraper struct {
	events *[]string
	pages  map[int]*scraper.PageResult
	fail   map[int]error
}

func (f *fakeScraper) ScrapePage(ctx context.Context, page int) (*scraper.PageResult, error) {
	*f.events = append(*f.events, fmt.Sprintf("scrape:%d", page))
	if err, ok := f.fail[page]; ok {
		return nil, err
	}
	if r, ok := f.pages[page]; ok {
		return r, nil
	}
	return &scraper.PageResult{Page: page, Items: []scraper.ItemResult{}}, nil
}

type eventPacer struct {
	events *[]string
}

func (p eventPacer) Wait(ctx context.Context) error {
	*p.events = append(*p.events, "pause")
	return nil
}

type recordingReporter struct {
	started  []cli.PageRange
	failed   []int
	finished *RunResult
}

func (r *recordingReporter) Start(rng cli.PageRange)        { r.started = append(r.started, rng) }
func (r *recordingReporter) PageFailed(page int, err error) { r.failed = append(r.failed, page) }
func (r *recordingReporter) Finish(result *RunResult)       { r.finished = result }

func items(outcomes ...scraper.Outcome) []scraper.ItemResult {
	out := make([]scraper.ItemResult, len(outcomes))
	for i, o := range outcomes {
		out[i] = scraper.ItemResult{Index: i + 1, Outcome: o}
	}
	return out
}

func TestRunVisitsPagesInOrderWithPausesBetween(t *testing.T) {
	var events []string
	s := &fakeScraper{events: &events}

	r := New(s, eventPacer{events: &events}, nil, "downloads", logger.NewNopLogger())
	_, err := r.Run(context.Background(), cli.PageRange{Start: 2, End: 4})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"scrape:2", "pause",
		"scrape:3", "pause",
		"scrape:4",
	}, events)
}

func TestRunSinglePageDoesNotPause(t *testing.T) {
	var events []string
	rec := &pacer.Recorder{}

	r := New(&fakeScraper{events: &events}, rec, nil, "downloads", nil)
	_, err := r.Run(context.Background(), cli.PageRange{Start: 1, End: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"scrape:1"}, events)
	assert.Equal(t, 0, rec.Calls)
}

func TestRunPauseCount(t *testing.T) {
	var events []string
	rec := &pacer.Recorder{}

	r := New(&fakeScraper{events: &events}, rec, nil, "downloads", nil)
	_, err := r.Run(context.Background(), cli.PageRange{Start: 1, End: 5})
	require.NoError(t, err)

	assert.Equal(t, 4, rec.Calls)
}

func TestRunContinuesAfterFailedPage(t *testing.T) {
	var events []string
	s := &fakeScraper{
		events: &events,
		pages: map[int]*scraper.PageResult{
			1: {Page: 1, Found: 3, Items: items(scraper.OutcomeDownloaded, scraper.OutcomeNoLink, scraper.OutcomeDownloaded)},
			3: {Page: 3, Found: 2, Items: items(scraper.OutcomeFailed, scraper.OutcomeDownloaded)},
		},
		fail: map[int]error{
			2: errors.NewHTTPError(502, "https://wallpaperswide.com/page/2"),
		},
	}
	rec := &pacer.Recorder{}
	reporter := &recordingReporter{}

	r := New(s, rec, reporter, "/tmp/walls", logger.NewNopLogger())
	result, err := r.Run(context.Background(), cli.PageRange{Start: 1, End: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"scrape:1", "scrape:2", "scrape:3"}, events)
	assert.Equal(t, 2, rec.Calls, "a failed page is still followed by a pause")

	assert.Equal(t, 5, result.Total, "total counts discovered items")
	assert.Equal(t, 3, result.Downloaded)
	assert.Equal(t, 1, result.Skipped())
	assert.Equal(t, 1, result.Failed())
	assert.Equal(t, []int{2}, result.FailedPages())
	assert.Equal(t, "/tmp/walls", result.OutputDir)
	require.Len(t, result.Pages, 3)
	assert.EqualError(t, result.Pages[1].Err, "HTTP 502")

	assert.Equal(t, []cli.PageRange{{Start: 1, End: 3}}, reporter.started)
	assert.Equal(t, []int{2}, reporter.failed)
	assert.Same(t, result, reporter.finished)
}

func TestRunAllPagesFail(t *testing.T) {
	var events []string
	boom := errors.New(errors.ErrorTypeNetwork, "connection refused", nil)
	s := &fakeScraper{events: &events, fail: map[int]error{1: boom, 2: boom}}
	reporter := &recordingReporter{}

	r := New(s, &pacer.Recorder{}, reporter, "downloads", nil)
	result, err := r.Run(context.Background(), cli.PageRange{Start: 1, End: 2})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.Downloaded)
	assert.Equal(t, []int{1, 2}, reporter.failed)
	assert.NotNil(t, reporter.finished, "the summary is still reported")
}

func TestRunStopsWhenContextEndsDuringPause(t *testing.T) {
	var events []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reporter := &recordingReporter{}
	r := New(&fakeScraper{events: &events}, pacer.NewFixed(0), reporter, "downloads", nil)
	result, err := r.Run(ctx, cli.PageRange{Start: 1, End: 3})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"scrape:1"}, events)
	assert.Len(t, result.Pages, 1)
	assert.Nil(t, reporter.finished)
}

func TestRunRangeAtIntegerLimits(t *testing.T) {
	tests := []struct {
		name string
		rng  cli.PageRange
		want []string
	}{
		{
			name: "ends at max int",
			rng:  cli.PageRange{Start: math.MaxInt - 2, End: math.MaxInt},
			want: []string{
				fmt.Sprintf("scrape:%d", math.MaxInt-2),
				fmt.Sprintf("scrape:%d", math.MaxInt-1),
				fmt.Sprintf("scrape:%d", math.MaxInt),
			},
		},
		{
			name: "starts at min int",
			rng:  cli.PageRange{Start: math.MinInt, End: math.MinInt + 1},
			want: []string{
				fmt.Sprintf("scrape:%d", math.MinInt),
				fmt.Sprintf("scrape:%d", math.MinInt+1),
			},
		},
		{
			name: "empty",
			rng:  cli.PageRange{Start: 3, End: 2},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []string
			rec := &pacer.Recorder{}

			result, err := New(&fakeScraper{events: &events}, rec, nil, "downloads", nil).
				Run(context.Background(), tt.rng)
			require.NoError(t, err)

			assert.Equal(t, tt.want, events)
			assert.Len(t, result.Pages, len(tt.want))
		})
	}
}

func TestRunHugeRangeDoesNotPreallocate(t *testing.T) {
	var events []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(&fakeScraper{events: &events}, pacer.NewFixed(time.Hour), nil, "downloads", nil)

	var result *RunResult
	var err error
	require.NotPanics(t, func() {
		result, err = r.Run(ctx, cli.PageRange{Start: 1, End: math.MaxInt})
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"scrape:1"}, events)
	assert.Len(t, result.Pages, 1)
}

func TestRunLogsPageFailures(t *testing.T) {
	var events []string
	log := logger.NewTestLogger()
	s := &fakeScraper{events: &events, fail: map[int]error{1: errors.NewHTTPError(404, "x")}}

	r := New(s, &pacer.Recorder{}, nil, "downloads", log)
	_, err := r.Run(context.Background(), cli.PageRange{Start: 1, End: 1})
	require.NoError(t, err)

	warnings := log.GetMessagesByLevel("WARN")
	require.Len(t, warnings, 1)
	assert.Equal(t, "Page failed", warnings[0].Message)
	assert.Equal(t, 1, warnings[0].Fields["page"])
	assert.EqualError(t, warnings[0].Error, "HTTP 404")
	assert.True(t, log.HasMessage("Run finished"))
}
