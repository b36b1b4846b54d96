package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"stock-alert-engine/pkg/config"
	"stock-alert-engine/pkg/logger"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Session owns the single HTTP client shared by all requests against the
// data source: one cookie jar, one connection pool, one set of browser
// headers.
type Session struct {
	client    *http.Client
	baseURL   string
	userAgent string
	logger    *logger.Logger

	warmUpOnce sync.Once
}

// NewSession builds the shared HTTP client from scraper configuration.
func NewSession(cfg *config.Scraper, log *logger.Logger) (*Session, error) {
	timeout := 30 * time.Second
	if cfg.RequestTimeout != "" {
		parsed, err := time.ParseDuration(cfg.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid request_timeout: %w", err)
		}
		timeout = parsed
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Session{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		baseURL:   cfg.BaseURL,
		userAgent: userAgent,
		logger:    log,
	}, nil
}

// Open primes the session cookies with a single request to the site root.
// A warm-up failure is logged and swallowed: some endpoints answer fine
// without primed cookies, so returning an unprimed session beats failing.
// Safe to call more than once; only the first call performs the request.
func (s *Session) Open(ctx context.Context) {
	s.warmUpOnce.Do(func() {
		req, err := s.NewRequest(ctx, http.MethodGet, s.baseURL)
		if err != nil {
			s.logger.Warn("Failed to create session warm-up request", logger.ErrorField(err))
			return
		}

		resp, err := s.client.Do(req)
		if err != nil {
			s.logger.Warn("Session warm-up request failed", logger.ErrorField(err), logger.StringField("url", s.baseURL))
			return
		}
		defer resp.Body.Close()

		s.logger.Debug("Session warmed up", logger.IntField("status", resp.StatusCode), logger.IntField("cookies", len(resp.Cookies())))
	})
}

// NewRequest creates a request carrying the browser headers the data
// source expects.
func (s *Session) NewRequest(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	return req, nil
}

// Do executes a request on the shared client.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	return s.client.Do(req)
}

// BaseURL returns the configured site root.
func (s *Session) BaseURL() string {
	return s.baseURL
}
