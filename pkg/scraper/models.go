package scraper

// Outcome classifies what happened to one listing item
type Outcome int

const (
	// OutcomeDownloaded means the image was fetched and written
	OutcomeDownloaded Outcome = iota
	// OutcomeNoLink means the detail page had no matching download link
	OutcomeNoLink
	// OutcomeFailed means a fetch, parse or write error stopped the item
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDownloaded:
		return "downloaded"
	case OutcomeNoLink:
		return "no_link"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DownloadTarget is the resolved image for one item
type DownloadTarget struct {
	ImageURL string
	FileName string
}

// ItemResult is the outcome of processing one listing item
type ItemResult struct {
	Index     int
	DetailURL string
	Target    *DownloadTarget
	Outcome   Outcome
	Path      string
	Err       error
}

// PageResult summarises one listing page
type PageResult struct {
	Page  int
	URL   string
	Found int
	Items []ItemResult
}

func (p *PageResult) count(outcome Outcome) int {
	n := 0
	for _, item := range p.Items {
		if item.Outcome == outcome {
			n++
		}
	}
	return n
}

// Downloaded returns the number of images written for this page
func (p *PageResult) Downloaded() int { return p.count(OutcomeDownloaded) }

// Skipped returns the number of items without a download link
func (p *PageResult) Skipped() int { return p.count(OutcomeNoLink) }

// Failed returns the number of items that hit an error
func (p *PageResult) Failed() int { return p.count(OutcomeFailed) }
