package scraper

import (
	"context"
	"fmt"
	"net/http"

	"stock-alert-engine/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves the raw detail document for a resolved company.
// Every call is a fresh fetch; the system needs current data and any
// freshness caching belongs to outer layers.
type Fetcher struct {
	session *Session
	logger  *logger.Logger
}

// NewFetcher creates a Fetcher on top of an existing session.
func NewFetcher(session *Session, log *logger.Logger) *Fetcher {
	return &Fetcher{session: session, logger: log}
}

// Fetch performs one GET against the detail address and parses the body.
// Transport failures carry the same taxonomy as the resolver.
func (f *Fetcher) Fetch(ctx context.Context, address string) (*goquery.Document, error) {
	req, err := f.session.NewRequest(ctx, http.MethodGet, address)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Referer", f.session.BaseURL()+"/")

	resp, err := f.session.Do(req)
	if err != nil {
		return nil, classifyTransportError(address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Kind: TransportHTTPStatus, URL: address, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document from %s: %w", address, err)
	}

	f.logger.DebugContext(ctx, "Fetched detail page", logger.StringField("url", address))
	return doc, nil
}
