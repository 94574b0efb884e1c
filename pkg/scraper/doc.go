// Package scraper downloads the wallpapers listed on one gallery page.
//
// For a page the Scraper:
//   - fetches the listing (the site root for page 1, /page/<n> otherwise)
//   - extracts the wallpaper cards in document order
//   - for each card fetches the detail page and looks for the 1920x1080 link
//   - downloads that image and hands it to the Store under its last path segment
//
// Items are processed one at a time. Every item ends in an ItemResult whose
// Outcome tells a missing link (OutcomeNoLink) apart from a fetch, parse or
// write error (OutcomeFailed); neither stops the page. Only a failure to
// fetch or parse the listing itself is returned as an error.
//
// PageResult.Found is the number of cards on the listing, which is what the
// run totals add up, whether or not every card produced a file.
package scraper
