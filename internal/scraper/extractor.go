package scraper

import (
	"regexp"
	"strings"
	"time"

	"stock-alert-engine/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

// Plausibility bounds for the fallback price scan. Incidental numbers on
// the page (item counts, percentages, years) fall outside this window.
const (
	minPlausiblePrice = 0.5
	maxPlausiblePrice = 1_000_000
)

// descMinLength rejects boilerplate placeholders that some pages ship in
// the about section.
const descMinLength = 40

var numberTokenRe = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)

// priceStrategy is one attempt at locating the current price. Strategies
// are tried in order until one reports ok.
type priceStrategy struct {
	name string
	fn   func(doc *goquery.Document) (float64, bool)
}

// Extractor parses a fetched document into a Snapshot. The page layout is
// not a stable contract, so every field runs through its own fallback
// chain and degrades to absent instead of failing the whole extraction.
type Extractor struct {
	logger        *logger.Logger
	priceChain    []priceStrategy
	descSelectors []string
}

// NewExtractor creates an Extractor with the default strategy chains.
func NewExtractor(log *logger.Logger) *Extractor {
	e := &Extractor{
		logger: log,
		descSelectors: []string{
			"div.company-profile div.about p",
			"div.company-profile p",
			"section#top div.company-info p",
		},
	}
	e.priceChain = []priceStrategy{
		{name: "ratios_row", fn: e.priceFromRatios},
		{name: "plausible_scan", fn: e.priceFromScan},
	}
	return e
}

// Extract builds a snapshot from the document. No single missing field
// aborts extraction; the snapshot reports Success only when a price was
// resolved.
func (e *Extractor) Extract(doc *goquery.Document, companyName string) *Snapshot {
	snapshot := &Snapshot{
		CompanyName: companyName,
		ExtractedAt: time.Now(),
	}

	for _, strategy := range e.priceChain {
		if value, ok := strategy.fn(doc); ok {
			snapshot.Price = &value
			e.logger.Debug("Extracted price",
				logger.StringField("strategy", strategy.name),
				logger.Float64Field("price", value),
				logger.StringField("company", companyName),
			)
			break
		}
	}

	snapshot.High, snapshot.Low = e.extractHighLow(doc)

	snapshot.MarketCap = e.ratioDisplayValue(doc, func(label string) bool {
		return strings.Contains(label, "market cap")
	})
	snapshot.ROE = e.ratioDisplayValue(doc, func(label string) bool {
		return label == "roe" || strings.Contains(label, "return on equity")
	})
	snapshot.ROCE = e.ratioDisplayValue(doc, func(label string) bool {
		return label == "roce" || strings.Contains(label, "return on capital")
	})

	snapshot.Description = e.extractDescription(doc)

	if !snapshot.Success() {
		e.logger.Warn("No price found in document", logger.StringField("company", companyName))
	}

	return snapshot
}

// eachRatioRow walks the labeled rows of the ratios section.
func (e *Extractor) eachRatioRow(doc *goquery.Document, visit func(label, value string) bool) {
	doc.Find("#top-ratios li, ul.ratios li").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		label := strings.TrimSpace(row.Find(".name").Text())
		if label == "" {
			return true
		}
		value := strings.TrimSpace(row.Find(".value").Text())
		if value == "" {
			value = strings.TrimSpace(row.Find(".number").Text())
		}
		return visit(strings.ToLower(label), value)
	})
}

// ratioDisplayValue returns the raw display string of the first ratios
// row whose label matches. Raw on purpose: values like "₹ 1,529 Cr." or
// "12.5 %" carry units that a consumer wants and a float would lose.
func (e *Extractor) ratioDisplayValue(doc *goquery.Document, match func(label string) bool) string {
	var found string
	e.eachRatioRow(doc, func(label, value string) bool {
		if match(label) {
			found = value
			return false
		}
		return true
	})
	return found
}

func (e *Extractor) priceFromRatios(doc *goquery.Document) (float64, bool) {
	display := e.ratioDisplayValue(doc, func(label string) bool {
		return label == "current price"
	})
	if display == "" {
		return 0, false
	}
	value, err := ParseNumber(display)
	if err != nil {
		return 0, false
	}
	return value, true
}

// priceFromScan is the last-resort strategy: scan every numeric-looking
// token on the page and accept the first one inside the plausible price
// window.
func (e *Extractor) priceFromScan(doc *goquery.Document) (float64, bool) {
	var price float64
	found := false
	for _, token := range numberTokenRe.FindAllString(doc.Text(), -1) {
		value, err := ParseNumber(token)
		if err != nil {
			continue
		}
		if value > minPlausiblePrice && value < maxPlausiblePrice {
			price = value
			found = true
			break
		}
	}
	return price, found
}

// extractHighLow reads the 52-week high/low row and splits it on the
// slash separator. Missing or malformed rows yield both absent.
func (e *Extractor) extractHighLow(doc *goquery.Document) (*float64, *float64) {
	display := e.ratioDisplayValue(doc, func(label string) bool {
		return strings.Contains(label, "high") && strings.Contains(label, "low")
	})
	if display == "" {
		return nil, nil
	}

	parts := strings.SplitN(display, "/", 2)
	if len(parts) != 2 {
		return nil, nil
	}

	high, errHigh := ParseNumber(parts[0])
	low, errLow := ParseNumber(parts[1])
	if errHigh != nil || errLow != nil {
		return nil, nil
	}
	return &high, &low
}

// extractDescription tries the structural selectors in order, then falls
// back to the paragraph following an "about" heading.
func (e *Extractor) extractDescription(doc *goquery.Document) string {
	for _, selector := range e.descSelectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if len(text) >= descMinLength {
			return text
		}
	}

	var fallback string
	doc.Find("h2, h3").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(heading.Text()), "about") {
			return true
		}
		text := strings.TrimSpace(heading.NextFiltered("p").Text())
		if len(text) >= descMinLength {
			fallback = text
			return false
		}
		return true
	})
	return fallback
}
