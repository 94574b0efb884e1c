package main

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wallgrab/internal/sitemock"
	"wallgrab/pkg/cli"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configFile = ""
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// isolate points every config source at a scratch location
func isolate(t *testing.T, site *sitemock.Site) string {
	t.Helper()

	outDir := filepath.Join(t.TempDir(), "downloads")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WALLGRAB_BASE_URL", site.URL())
	t.Setenv("WALLGRAB_OUTPUT_DIR", outDir)
	t.Setenv("WALLGRAB_PAGE_DELAY", "0s")
	t.Setenv("WALLGRAB_LOG_LEVEL", "warn")
	return outDir
}

func TestInvalidRangeFailsBeforeAnyRequest(t *testing.T) {
	site := sitemock.New()
	defer site.Close()
	outDir := isolate(t, site)

	_, _, err := execute(t, "--start", "5", "--end", "2")

	require.ErrorIs(t, err, cli.ErrInvalidRange)
	assert.Equal(t, 0, site.TotalRequests())
	assert.NoDirExists(t, outDir)
}

func TestHelpPrintsUsage(t *testing.T) {
	site := sitemock.New()
	defer site.Close()
	isolate(t, site)

	for _, args := range [][]string{
		{"--help"},
		{"-h"},
		{"--start", "9", "--end", "1", "--help"},
	} {
		out, _, err := execute(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.Contains(t, out, "USAGE:")
		assert.Contains(t, out, "--start <number>")
	}
	assert.Equal(t, 0, site.TotalRequests())
}

func TestScrapeRange(t *testing.T) {
	site := sitemock.New()
	defer site.Close()
	outDir := isolate(t, site)

	site.SetPage(1,
		sitemock.Card{Slug: "aurora", Image: "aurora-1920x1080.jpg"},
		sitemock.Card{Slug: "dunes"},
	)
	site.FailPath("/page/2", http.StatusInternalServerError)
	site.SetPage(3, sitemock.Card{Slug: "glacier", Image: "glacier-1920x1080.jpg"})

	out, _, err := execute(t, "--start", "1", "--end", "3")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"🔍 Fetching wallpapers from page 1 to 3...",
		"",
		"📄 Page 1: 2 wallpapers found",
		"[1/2] aurora-1920x1080.jpg",
		"❌ Page 2 failed: HTTP 500",
		"📄 Page 3: 1 wallpapers found",
		"[1/1] glacier-1920x1080.jpg",
		"",
		`🎉 Done! 3 wallpapers saved in "` + outDir + `".`,
	}, strings.Split(out, "\n")[:9])
	assert.Contains(t, out, "2 downloaded, 1 without a 1920x1080 link, 0 failed, 1 page(s) failed [2]")

	for _, name := range []string{"aurora-1920x1080.jpg", "glacier-1920x1080.jpg"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		assert.Equal(t, sitemock.ImageBody(name), data)
	}
	assert.Equal(t, []string{"/", "/page/2", "/page/3"}, listingRequests(site.Requests()))
}

func TestScrapeItemFailureKeepsStderrQuiet(t *testing.T) {
	site := sitemock.New()
	defer site.Close()
	isolate(t, site)
	t.Setenv("WALLGRAB_LOG_LEVEL", "")

	broken := sitemock.Card{Slug: "broken", Image: "broken-1920x1080.jpg"}
	gone := sitemock.Card{Slug: "gone", Image: "gone-1920x1080.jpg"}
	site.SetPage(1, broken, gone, sitemock.Card{Slug: "fine", Image: "fine-1920x1080.jpg"})
	site.FailPath(sitemock.DetailPath(broken), http.StatusServiceUnavailable)
	site.FailPath(sitemock.ImagePath(gone.Image), http.StatusBadGateway)

	out, errOut, err := execute(t)
	require.NoError(t, err)

	assert.Empty(t, errOut, "item failures are not reported at the default log level")
	assert.Contains(t, out, "[3/3] fine-1920x1080.jpg")
	assert.Contains(t, out, "1 downloaded, 0 without a 1920x1080 link, 2 failed")
}

func TestScrapeFlagsOverrideEnvironment(t *testing.T) {
	site := sitemock.New()
	defer site.Close()
	isolate(t, site)
	t.Setenv("WALLGRAB_BASE_URL", "http://127.0.0.1:1")
	t.Setenv("WALLGRAB_PAGE_DELAY", "1h")
	envDir := os.Getenv("WALLGRAB_OUTPUT_DIR")

	site.SetPage(1, sitemock.Card{Slug: "aurora", Image: "aurora-1920x1080.jpg"})
	site.SetPage(2, sitemock.Card{Slug: "glacier", Image: "glacier-1920x1080.jpg"})
	flagDir := filepath.Join(t.TempDir(), "walls")

	out, _, err := execute(t,
		"--end", "2",
		"--base-url", site.URL(),
		"--output", flagDir,
		"--page-delay", "0",
	)
	require.NoError(t, err)

	assert.Contains(t, out, `saved in "`+flagDir+`"`)
	assert.FileExists(t, filepath.Join(flagDir, "aurora-1920x1080.jpg"))
	assert.FileExists(t, filepath.Join(flagDir, "glacier-1920x1080.jpg"))
	assert.NoDirExists(t, envDir)
}

func TestScrapeRejectsBadPageDelay(t *testing.T) {
	site := sitemock.New()
	defer site.Close()
	isolate(t, site)

	_, _, err := execute(t, "--page-delay", "later")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid page delay")
	assert.Equal(t, 0, site.TotalRequests())
}

func TestScrapeDefaultsToFirstPage(t *testing.T) {
	site := sitemock.New()
	defer site.Close()
	isolate(t, site)
	site.SetPage(1)

	out, _, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "from page 1 to 1")
	assert.Contains(t, out, "📄 Page 1: 0 wallpapers found")
	assert.Equal(t, []string{"/"}, site.Requests())
}

func TestScrapeLogLevelFlag(t *testing.T) {
	site := sitemock.New()
	defer site.Close()
	isolate(t, site)
	site.SetPage(1)

	_, errOut, err := execute(t, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "wallgrab starting")

	_, _, err = execute(t, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Equal(t, 1, site.TotalRequests(), "a bad log level stops before scraping")
}

func TestConfigInitValidateShow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "wallgrab.yaml")

	out, _, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file created: "+path)
	assert.FileExists(t, path)

	_, _, err = execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, _, err = execute(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Page delay: 2s")

	out, _, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "base_url: https://wallpaperswide.com")
	assert.Contains(t, out, "directory: downloads")
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crawl:\n  page_delay: -1s\n"), 0644))

	_, _, err := execute(t, "config", "validate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page delay cannot be negative")
}

func listingRequests(paths []string) []string {
	var listings []string
	for _, p := range paths {
		if p == "/" || strings.HasPrefix(p, "/page/") {
			listings = append(listings, p)
		}
	}
	return listings
}
