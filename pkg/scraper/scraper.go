package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"wallgrab/pkg/config"
	"wallgrab/pkg/errors"
	"wallgrab/pkg/extractor"
	"wallgrab/pkg/fetcher"
	"wallgrab/pkg/logger"
	"wallgrab/pkg/storage"
)

// Scraper downloads the wallpapers of one listing page at a time
type Scraper struct {
	fetcher  Fetcher
	store    Store
	base     *url.URL
	reporter Reporter
	logger   logger.Logger
}

// New creates a Scraper using the configured site and HTTP settings
func New(cfg *config.Config, store Store, reporter Reporter) (*Scraper, error) {
	log := logger.GetLogger()

	client := fetcher.NewClient(cfg.HTTP.Timeout, log)
	if cfg.Site.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.Site.UserAgent)
	}

	return NewWithFetcher(client, store, cfg.BaseURL(), reporter, log)
}

// NewWithFetcher creates a Scraper around an existing Fetcher
func NewWithFetcher(f Fetcher, store Store, baseURL string, reporter Reporter, log logger.Logger) (*Scraper, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.New(errors.ErrorTypeInvalidInput, fmt.Sprintf("invalid base URL %q", baseURL), err)
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Scraper{
		fetcher:  f,
		store:    store,
		base:     base,
		reporter: reporter,
		logger:   log,
	}, nil
}

// ListingURL returns the gallery URL for page. Page 1 is the site root.
func (s *Scraper) ListingURL(page int) string {
	if page == 1 {
		return s.base.String() + "/"
	}
	return fmt.Sprintf("%s/page/%d", s.base.String(), page)
}

// absolute resolves a site-relative link against the site origin
func (s *Scraper) absolute(link string) (string, error) {
	ref, err := url.Parse(link)
	if err != nil {
		return "", errors.New(errors.ErrorTypeParsing, fmt.Sprintf("invalid link %q", link), err)
	}
	return s.base.ResolveReference(ref).String(), nil
}

// Count scrapes page and returns the number of wallpapers listed on it
func (s *Scraper) Count(ctx context.Context, page int) (int, error) {
	result, err := s.ScrapePage(ctx, page)
	if err != nil {
		return 0, err
	}
	return result.Found, nil
}

// ScrapePage fetches one listing page and downloads every wallpaper it can resolve.
// Only a failure to fetch or parse the listing itself is returned as an error;
// per-item problems are recorded on the returned PageResult.
func (s *Scraper) ScrapePage(ctx context.Context, page int) (*PageResult, error) {
	listingURL := s.ListingURL(page)
	log := s.logger.WithField("page", page)

	body, err := s.fetcher.FetchText(ctx, listingURL)
	if err != nil {
		return nil, err
	}

	items, err := extractor.ParseListing(body)
	if err != nil {
		return nil, err
	}

	result := &PageResult{
		Page:  page,
		URL:   listingURL,
		Found: len(items),
		Items: make([]ItemResult, 0, len(items)),
	}

	s.reporter.PageFound(page, len(items))
	if len(items) == 0 {
		return result, nil
	}

	for i, item := range items {
		itemResult := s.processItem(ctx, i+1, len(items), item)
		result.Items = append(result.Items, itemResult)
		logger.LogItem(log, page, itemResult.Index, itemResult.Outcome.String(), itemResult.Err)
	}

	logger.LogPageSummary(s.logger, page, result.Found, result.Downloaded(), result.Skipped(), result.Failed())
	return result, nil
}

// processItem resolves and downloads one wallpaper. It never returns an error;
// failures are reported through the result's Outcome.
func (s *Scraper) processItem(ctx context.Context, index, total int, item extractor.ListingItem) ItemResult {
	result := ItemResult{Index: index}

	fail := func(err error) ItemResult {
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	if item.DetailLink == "" {
		return fail(errors.New(errors.ErrorTypeParsing, "listing card has no detail link", nil))
	}

	detailURL, err := s.absolute(item.DetailLink)
	if err != nil {
		return fail(err)
	}
	result.DetailURL = detailURL

	detail, err := s.fetcher.FetchText(ctx, detailURL)
	if err != nil {
		return fail(err)
	}

	href, ok, err := extractor.ParseDetail(detail)
	if err != nil {
		return fail(err)
	}
	if !ok {
		result.Outcome = OutcomeNoLink
		return result
	}

	imageURL, err := s.absolute(href)
	if err != nil {
		return fail(err)
	}
	result.Target = &DownloadTarget{
		ImageURL: imageURL,
		FileName: storage.FileNameFromLink(href),
	}

	data, err := s.fetcher.FetchBinary(ctx, imageURL)
	if err != nil {
		return fail(err)
	}

	path, err := s.store.Save(result.Target.FileName, data)
	if err != nil {
		return fail(err)
	}

	result.Path = path
	result.Outcome = OutcomeDownloaded
	s.reporter.ItemSaved(index, total, result.Target.FileName)
	return result
}
