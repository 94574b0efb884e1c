// Package extractor pulls wallpaper links out of listing and detail pages.
package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"wallgrab/pkg/errors"
)

// Resolution is the size suffix a direct-download link must end with
const Resolution = "1920x1080.jpg"

// Field extracts one attribute from the first element matching Selector
type Field struct {
	Selector string
	Attr     string
}

// ListSchema selects every Container and extracts Link from each
type ListSchema struct {
	Container string
	Link      Field
}

// ListingSchema describes the wallpaper cards on a listing page
var ListingSchema = ListSchema{
	Container: ".wall",
	Link:      Field{Selector: "a", Attr: "href"},
}

// DetailSchema describes the direct-download anchor on a detail page
var DetailSchema = Field{
	Selector: "a[target='_self'][href$='" + Resolution + "']",
	Attr:     "href",
}

// ListingItem is one wallpaper card found on a listing page
type ListingItem struct {
	// DetailLink is the card's relative detail-page URL. Empty when the card has no link.
	DetailLink string
}

// ParseListing extracts the wallpaper cards of a listing page in document order
func ParseListing(body string) ([]ListingItem, error) {
	doc, err := parse(body)
	if err != nil {
		return nil, err
	}

	items := make([]ListingItem, 0)
	doc.Find(ListingSchema.Container).Each(func(_ int, card *goquery.Selection) {
		link, _ := ListingSchema.Link.extract(card)
		items = append(items, ListingItem{DetailLink: link})
	})

	return items, nil
}

// ParseDetail returns the direct-download href of a detail page.
// ok is false when the page has no such link, which is not an error.
func ParseDetail(body string) (href string, ok bool, err error) {
	doc, err := parse(body)
	if err != nil {
		return "", false, err
	}

	href, ok = DetailSchema.extract(doc.Selection)
	return href, ok, nil
}

func (f Field) extract(scope *goquery.Selection) (string, bool) {
	value, exists := scope.Find(f.Selector).First().Attr(f.Attr)
	if !exists {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func parse(body string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, errors.New(errors.ErrorTypeParsing, "failed to parse HTML", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}
