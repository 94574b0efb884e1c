package scraper

import "context"

// Fetcher defines the HTTP operations the scraper needs
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
	FetchBinary(ctx context.Context, url string) ([]byte, error)
}

// Store persists downloaded images
type Store interface {
	Save(fileName string, data []byte) (string, error)
}

// Reporter receives user-facing progress for a listing page
type Reporter interface {
	PageFound(page, count int)
	ItemSaved(index, total int, fileName string)
}

type nopReporter struct{}

func (nopReporter) PageFound(page, count int)                   {}
func (nopReporter) ItemSaved(index, total int, fileName string) {}
