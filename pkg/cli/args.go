package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidRange is returned when the start page is after the end page
var ErrInvalidRange = errors.New("invalid range: start cannot be greater than end")

// InvalidRangeMessage is the sentence shown to the user for ErrInvalidRange
const InvalidRangeMessage = "Invalid range: start cannot be greater than end."

// PageRange is an inclusive range of listing pages
type PageRange struct {
	Start int
	End   int
}

// Empty reports whether the range holds no pages
func (r PageRange) Empty() bool {
	return r.End < r.Start
}

// IsLast reports whether page is the final page of the range
func (r PageRange) IsLast(page int) bool {
	return page >= r.End
}

func (r PageRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Options is the result of resolving the raw argument list
type Options struct {
	Range      PageRange
	Help       bool
	ConfigPath string
	LogLevel   string
	BaseURL    string
	OutputDir  string
	// PageDelay is nil unless --page-delay was given
	PageDelay *time.Duration
}

// ConfigFlags returns the options that override configuration, keyed the way
// config.MergeCommandLineFlags expects. Unset options are left out.
func (o *Options) ConfigFlags() map[string]interface{} {
	flags := make(map[string]interface{})
	if o.LogLevel != "" {
		flags["log-level"] = o.LogLevel
	}
	if o.BaseURL != "" {
		flags["base-url"] = o.BaseURL
	}
	if o.OutputDir != "" {
		flags["output"] = o.OutputDir
	}
	if o.PageDelay != nil {
		flags["page-delay"] = *o.PageDelay
	}
	return flags
}

// Resolve turns the raw argument list into validated Options.
// A help token short-circuits everything else. Missing or malformed page
// numbers fall back to their defaults instead of failing.
func Resolve(args []string) (*Options, error) {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return &Options{Help: true}, nil
		}
	}

	opts := &Options{
		ConfigPath: valueAfter(args, "--config"),
		LogLevel:   valueAfter(args, "--log-level"),
		BaseURL:    valueAfter(args, "--base-url"),
		OutputDir:  valueAfter(args, "--output"),
	}

	if indexOf(args, "--page-delay") != -1 {
		delay, err := parseDelay(valueAfter(args, "--page-delay"))
		if err != nil {
			return opts, err
		}
		opts.PageDelay = &delay
	}

	start := 1
	if indexOf(args, "--start") != -1 {
		if n, ok := parseLeadingInt(valueAfter(args, "--start")); ok && n != 0 {
			start = n
		}
	}

	end := start
	if indexOf(args, "--end") != -1 {
		if n, ok := parseLeadingInt(valueAfter(args, "--end")); ok && n != 0 {
			end = n
		}
	}

	opts.Range = PageRange{Start: start, End: end}
	if start > end {
		return opts, ErrInvalidRange
	}

	return opts, nil
}

func indexOf(args []string, flag string) int {
	for i, arg := range args {
		if arg == flag {
			return i
		}
	}
	return -1
}

// valueAfter returns the token following the first occurrence of flag
func valueAfter(args []string, flag string) string {
	i := indexOf(args, flag)
	if i == -1 || i+1 >= len(args) {
		return ""
	}
	return args[i+1]
}

// parseDelay accepts a Go duration ("1.5s") or a bare number of milliseconds ("2000")
func parseDelay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.Atoi(s); err == nil {
		s = strconv.Itoa(ms) + "ms"
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid page delay %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid page delay %q: cannot be negative", s)
	}
	return d, nil
}

// parseLeadingInt parses an optional sign followed by leading decimal digits,
// ignoring anything after them ("3abc" is 3).
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
