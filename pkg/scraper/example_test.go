package scraper_test

import (
	"context"
	"fmt"
	"os"

	"wallgrab/internal/sitemock"
	"wallgrab/pkg/fetcher"
	"wallgrab/pkg/logger"
	"wallgrab/pkg/scraper"
	"wallgrab/pkg/storage"
)

func ExampleScraper_ScrapePage() {
	site := sitemock.New()
	defer site.Close()
	site.SetPage(1,
		sitemock.Card{Slug: "city-skyline", Image: "city-skyline-1920x1080.jpg"},
		sitemock.Card{Slug: "forest-mist"},
	)

	dir, err := os.MkdirTemp("", "wallgrab-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	store, err := storage.NewManager(dir)
	if err != nil {
		fmt.Println(err)
		return
	}

	client := fetcher.NewClient(0, logger.NewNopLogger())
	s, err := scraper.NewWithFetcher(client, store, site.URL(), nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	result, err := s.ScrapePage(context.Background(), 1)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, item := range result.Items {
		fmt.Printf("%d %s\n", item.Index, item.Outcome)
	}
	fmt.Printf("found %d, downloaded %d\n", result.Found, result.Downloaded())
	// Output:
	// 1 downloaded
	// 2 no_link
	// found 2, downloaded 1
}
