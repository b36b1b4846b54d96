package scraper

import (
	"context"
	"time"

	"stock-alert-engine/pkg/config"
	"stock-alert-engine/pkg/logger"

	"golang.org/x/time/rate"
)

// Scraper is the extraction pipeline behind one facade: resolve a
// company name, fetch its detail page, extract a snapshot. A shared
// limiter keeps batch lookups polite toward the data source.
type Scraper struct {
	logger    *logger.Logger
	session   *Session
	resolver  *Resolver
	fetcher   *Fetcher
	extractor *Extractor
	limiter   *rate.Limiter
}

// NewScraper wires the pipeline from scraper configuration.
func NewScraper(cfg *config.Scraper, log *logger.Logger) (*Scraper, error) {
	session, err := NewSession(cfg, log)
	if err != nil {
		return nil, err
	}

	maxPerMinute := cfg.MaxRequestPerMinute
	if maxPerMinute <= 0 {
		maxPerMinute = 20
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxPerMinute)), 1)

	return &Scraper{
		logger:    log,
		session:   session,
		resolver:  NewResolver(session, cfg.SearchPath, log),
		fetcher:   NewFetcher(session, log),
		extractor: NewExtractor(log),
		limiter:   limiter,
	}, nil
}

// Snapshot resolves a free-text company name and extracts the current
// snapshot for it. NotFound and transport failures propagate typed so
// the caller can tell them apart; a fetched page with no price comes
// back as a snapshot with Success()==false, not as an error.
func (s *Scraper) Snapshot(ctx context.Context, companyName string) (*Snapshot, error) {
	s.session.Open(ctx)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	company, err := s.resolver.Resolve(ctx, companyName)
	if err != nil {
		return nil, err
	}

	doc, err := s.fetcher.Fetch(ctx, company.DetailURL)
	if err != nil {
		return nil, err
	}

	return s.extractor.Extract(doc, company.Name), nil
}
