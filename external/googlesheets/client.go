package googlesheets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/platform/metrics"
	"github.com/riskibarqy/music-league/internal/platform/resilience"
	"github.com/riskibarqy/music-league/internal/usecase"
)

const (
	defaultBaseURL  = "https://docs.google.com"
	maxResponseSize = 8 << 20
)

var errSheetTransient = crerr.New("sheet transient failure")

// Markers Google returns in error bodies when the document or tab cannot be
// resolved.
var notFoundMarkers = []string{
	"gid must be a number",
	"Invalid sheet ID",
	"Worksheet not found",
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads league tabs from a shared Google Sheet through the gviz CSV
// export.
type Client struct {
	tabRepository

	httpClient *http.Client
	baseURL    string
	retry      resilience.RetryPolicy
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.Group[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	retry := resilience.DefaultRetryPolicy()
	retry.MaxRetries = max(cfg.MaxRetries, 0)
	if cfg.RetryBaseDelay > 0 {
		retry.BaseDelay = cfg.RetryBaseDelay
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		retry:      retry,
		logger:     logging.OrDefault(cfg.Logger).Named("googlesheets"),
		breaker:    resilience.NewCircuitBreaker("googlesheets", cfg.CircuitBreaker),
	}
	c.tabRepository = tabRepository{source: "google", fetcher: c, metrics: cfg.Metrics}
	return c
}

// TabURL is the CSV export URL of one tab.
func (c *Client) TabURL(sheetID, tab string) string {
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		c.baseURL, url.PathEscape(sheetID), url.QueryEscape(tab))
}

func (c *Client) fetchTab(ctx context.Context, sheetID, tab string) (table, error) {
	sheetID = strings.TrimSpace(sheetID)
	if sheetID == "" {
		return table{}, fmt.Errorf("%w: sheet id is required", usecase.ErrInvalidInput)
	}

	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "sheet circuit breaker rejected request", "tab", tab, "state", c.breaker.State())
		return table{}, fmt.Errorf("%w: sheet source is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	fullURL := c.TabURL(sheetID, tab)
	// shared by every caller reading this tab; bounded by the http client timeout
	requestCtx := context.WithoutCancel(ctx)
	var body []byte
	var err error
	select {
	case res := <-c.flight.DoChan(fullURL, func() ([]byte, error) {
		raw, reqErr := c.executeRequest(requestCtx, tab, fullURL)
		c.breaker.Record(reqErr, isSheetCircuitFailure)
		return raw, reqErr
	}):
		body, err = res.Val, res.Err
	case <-ctx.Done():
		return table{}, ctx.Err()
	}
	if err != nil {
		if crerr.Is(err, errSheetTransient) {
			return table{}, fmt.Errorf("%w: fetch %s tab: %w", usecase.ErrDependencyUnavailable, tab, err)
		}
		return table{}, err
	}

	if looksEmptyOrHTML(body) {
		return table{}, fmt.Errorf("%w: no data found or invalid CSV format in %s tab; ensure the tab exists and the sheet is shared with anyone who has the link",
			usecase.ErrNotFound, tab)
	}

	return readCSV(tab, bytes.NewReader(body))
}

func (c *Client) executeRequest(ctx context.Context, tab, fullURL string) ([]byte, error) {
	var raw []byte
	err := resilience.Retry(ctx, c.retry, isSheetTransient, func(ctx context.Context, attempt int) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "text/csv")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return crerr.Mark(crerr.Wrap(err, "send request"), errSheetTransient)
		}
		defer resp.Body.Close()

		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)
		if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseSize)); err != nil {
			return crerr.Mark(crerr.Wrap(err, "read response body"), errSheetTransient)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			raw = append([]byte(nil), buf.B...)
			return nil
		}

		c.logger.WarnContext(ctx, "sheet tab request failed",
			"tab", tab,
			"status", resp.StatusCode,
			"attempt", attempt,
		)
		return statusError(tab, resp.StatusCode, buf.String())
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func statusError(tab string, status int, body string) error {
	for _, marker := range notFoundMarkers {
		if strings.Contains(body, marker) {
			return fmt.Errorf("%w: invalid sheet tab %q or sheet not shared correctly (status %d)", usecase.ErrNotFound, tab, status)
		}
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: sheet tab %q (status %d)", usecase.ErrNotFound, tab, status)
	}
	if isRetryableStatus(status) {
		return crerr.Mark(crerr.Newf("sheet status=%d body=%s", status, abbreviate(body)), errSheetTransient)
	}
	return crerr.Newf("sheet status=%d body=%s", status, abbreviate(body))
}

func looksEmptyOrHTML(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return true
	}
	return bytes.Contains(bytes.ToLower(trimmed), []byte("<html"))
}

func isRetryableStatus(status int) bool {
	return status == http.StatusRequestTimeout || status == http.StatusTooManyRequests || status >= 500
}

func isSheetTransient(err error) bool {
	return crerr.Is(err, errSheetTransient)
}

// Only transport and 5xx style failures trip the breaker; a missing tab says
// nothing about Google's health.
func isSheetCircuitFailure(err error) bool {
	return isSheetTransient(err)
}

func abbreviate(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 256 {
		return body[:256] + "..."
	}
	return body
}
