package scraper

import "time"

// CanonicalCompany is the data source's resolved identity for a company,
// as opposed to the free-text name a user supplies.
type CanonicalCompany struct {
	Name      string
	DetailURL string
}

// Snapshot is one point-in-time extraction result for a company. Every
// numeric field is independently optional; partial results are normal,
// not an error.
type Snapshot struct {
	CompanyName string
	Price       *float64
	High        *float64
	Low         *float64
	MarketCap   string
	ROE         string
	ROCE        string
	Description string
	ExtractedAt time.Time
}

// Success reports whether the snapshot is usable downstream. Only the
// price matters here; the evaluation pipeline depends on nothing else.
func (s *Snapshot) Success() bool {
	return s.Price != nil
}
