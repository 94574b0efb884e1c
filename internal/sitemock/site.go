// Package sitemock serves a fake wallpaper gallery over httptest for tests.
package sitemock

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// Card is one wallpaper entry on a listing page
type Card struct {
	// Slug names the detail page: /<slug>-wallpapers.html
	Slug string
	// Image is the file offered at 1920x1080 on the detail page.
	// Empty means the detail page only offers other resolutions.
	Image string
	// NoLink renders the card without an anchor
	NoLink bool
}

// Site is a fake gallery with listing pages, detail pages and images
type Site struct {
	server *httptest.Server

	mu       sync.Mutex
	pages    map[int][]Card
	statuses map[string]int
	hits     map[string]int
	requests []string
}

// New starts the fake site. Call Close when done.
func New() *Site {
	s := &Site{
		pages:    make(map[int][]Card),
		statuses: make(map[string]int),
		hits:     make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleListing)
	mux.HandleFunc("/page/", s.handleListing)
	mux.HandleFunc("/download/", s.handleImage)

	s.server = httptest.NewServer(s.track(mux))
	return s
}

// URL returns the site origin
func (s *Site) URL() string {
	return s.server.URL
}

// Close shuts the server down
func (s *Site) Close() {
	s.server.Close()
}

// SetPage defines the cards shown on listing page n
func (s *Site) SetPage(n int, cards ...Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[n] = cards
}

// FailPath makes every request for path answer with status
func (s *Site) FailPath(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[path] = status
}

// Hits returns how many requests were made for path
func (s *Site) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// HitsWithPrefix returns how many requests were made under prefix
func (s *Site) HitsWithPrefix(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for path, count := range s.hits {
		if strings.HasPrefix(path, prefix) {
			n += count
		}
	}
	return n
}

// TotalRequests returns the number of requests served
func (s *Site) TotalRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Requests returns the request paths in arrival order
func (s *Site) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// ImageBody returns the bytes served for an image name
func ImageBody(name string) []byte {
	return []byte("JPEG:" + name)
}

// DetailPath returns the detail page path for a card
func DetailPath(c Card) string {
	return "/" + c.Slug + "-wallpapers.html"
}

// ImagePath returns the download path for an image name
func ImagePath(name string) string {
	return "/download/" + name
}

// track records each request and applies injected failures
func (s *Site) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		s.requests = append(s.requests, r.URL.Path)
		status, fail := s.statuses[r.URL.Path]
		s.mu.Unlock()

		if fail {
			w.WriteHeader(status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Site) handleListing(w http.ResponseWriter, r *http.Request) {
	var page int
	switch {
	case r.URL.Path == "/":
		page = 1
	case strings.HasPrefix(r.URL.Path, "/page/"):
		n, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/page/"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		page = n
	case strings.HasSuffix(r.URL.Path, "-wallpapers.html"):
		s.handleDetail(w, r)
		return
	default:
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	cards, ok := s.pages[page]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>Wallpapers</title></head><body><ul class=\"wallpapers\">\n")
	for _, c := range cards {
		if c.NoLink {
			fmt.Fprintf(&b, "<li class=\"wall\"><span>%s</span></li>\n", html.EscapeString(c.Slug))
			continue
		}
		fmt.Fprintf(&b, "<li class=\"wall\"><div class=\"thumb\"><a href=\"%s\" title=\"%s\"><img src=\"/thumbs/%s.jpg\"></a></div></li>\n",
			DetailPath(c), html.EscapeString(c.Slug), html.EscapeString(c.Slug))
	}
	b.WriteString("</ul><div class=\"pagination\"><a href=\"/page/2\">Next</a></div></body></html>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(b.String()))
}

func (s *Site) handleDetail(w http.ResponseWriter, r *http.Request) {
	card, ok := s.findCard(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><body><div class=\"wallpaper-resolutions\">\n")
	fmt.Fprintf(&b, "<a target=\"_self\" href=\"/download/%s-wallpaper-1280x720.jpg\">1280x720</a>\n", card.Slug)
	if card.Image != "" {
		fmt.Fprintf(&b, "<a target=\"_self\" href=\"%s\">1920x1080</a>\n", ImagePath(card.Image))
	}
	fmt.Fprintf(&b, "<a target=\"_self\" href=\"/download/%s-wallpaper-2560x1440.jpg\">2560x1440</a>\n", card.Slug)
	b.WriteString("</div></body></html>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(b.String()))
}

func (s *Site) handleImage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/download/")
	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(ImageBody(name))
}

func (s *Site) findCard(path string) (Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cards := range s.pages {
		for _, c := range cards {
			if !c.NoLink && DetailPath(c) == path {
				return c, true
			}
		}
	}
	return Card{}, false
}
