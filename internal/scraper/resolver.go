package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"stock-alert-engine/pkg/logger"
)

// Resolver turns a free-text company name into the data source's
// canonical identity using the site's search endpoint.
type Resolver struct {
	session    *Session
	searchPath string
	logger     *logger.Logger
}

// NewResolver creates a Resolver on top of an existing session.
func NewResolver(session *Session, searchPath string, log *logger.Logger) *Resolver {
	return &Resolver{
		session:    session,
		searchPath: searchPath,
		logger:     log,
	}
}

type searchResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Resolve issues a search request with the raw query and takes the first
// result as authoritative. An empty result list yields a NotFoundError
// carrying the query; network failures yield a TransportError.
func (r *Resolver) Resolve(ctx context.Context, query string) (*CanonicalCompany, error) {
	searchURL := fmt.Sprintf("%s%s?q=%s", r.session.BaseURL(), r.searchPath, url.QueryEscape(query))

	req, err := r.session.NewRequest(ctx, http.MethodGet, searchURL)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := r.session.Do(req)
	if err != nil {
		return nil, classifyTransportError(searchURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Kind: TransportHTTPStatus, URL: searchURL, StatusCode: resp.StatusCode}
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if len(results) == 0 {
		return nil, &NotFoundError{Query: query}
	}

	first := results[0]
	r.logger.DebugContext(ctx, "Resolved company",
		logger.StringField("query", query),
		logger.StringField("resolved_name", first.Name),
		logger.StringField("url", first.URL),
	)

	detailURL := first.URL
	if !strings.HasPrefix(detailURL, "http") {
		detailURL = r.session.BaseURL() + detailURL
	}

	return &CanonicalCompany{Name: first.Name, DetailURL: detailURL}, nil
}
