package spotify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/music-league/internal/domain/track"
	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/platform/metrics"
	"github.com/riskibarqy/music-league/internal/platform/resilience"
)

const (
	tokenPath       = "/api/spotify/get_access_token"
	songDataPath    = "/api/spotify/fetch_song_data"
	maxResponseSize = 1 << 20
)

var (
	errSpotifyTransient = crerr.New("spotify transient failure")
	errUnauthorized     = crerr.New("spotify token rejected")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	RateLimit      float64
	Burst          int
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client looks up track metadata through the song-data backend. Lookups are
// best effort: every failure is logged and reported as "no data".
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *logging.Logger
	metrics    *metrics.Recorder
	breaker    *resilience.CircuitBreaker
	tokens     *tokenCache
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
		httpClient.Timeout = 5 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		limiter:    rate.NewLimiter(limit, max(cfg.Burst, 1)),
		logger:     logging.OrDefault(cfg.Logger).Named("spotify"),
		metrics:    cfg.Metrics,
		breaker:    resilience.NewCircuitBreaker("spotify", cfg.CircuitBreaker),
	}
	c.tokens = newTokenCache(c.fetchToken)
	return c
}

type songDataResponse struct {
	Error                   string   `json:"error"`
	ImageURL                string   `json:"image_url"`
	Tempo                   *float64 `json:"tempo"`
	TimeSignature           *float64 `json:"time_signature"`
	TempoConfidence         *float64 `json:"tempo_confidence"`
	TimeSignatureConfidence *float64 `json:"time_signature_confidence"`
	Danceability            *float64 `json:"danceability"`
	Energy                  *float64 `json:"energy"`
	Valence                 *float64 `json:"valence"`
	Loudness                *float64 `json:"loudness"`
	Genres                  []string `json:"genres"`
}

// FetchTrack returns metadata for a track. The bool is false when the
// backend has no data or could not be reached.
func (c *Client) FetchTrack(ctx context.Context, artist, title, album string) (track.Features, bool) {
	query := url.Values{}
	query.Set("artist", firstArtist(artist))
	query.Set("title", strings.TrimSpace(title))
	query.Set("album", strings.TrimSpace(album))

	if err := c.breaker.Allow(); err != nil {
		c.metrics.IncEnrichment(metrics.EnrichmentSkipped)
		return track.Features{}, false
	}

	payload, err := c.fetchSongData(ctx, query)
	c.breaker.Record(err, isSpotifyCircuitFailure)
	if err != nil {
		c.metrics.IncEnrichment(metrics.EnrichmentError)
		c.logger.WarnContext(ctx, "track lookup failed", "title", title, "artist", artist, "error", err)
		return track.Features{}, false
	}
	if payload.Error != "" {
		c.metrics.IncEnrichment(metrics.EnrichmentNotFound)
		c.logger.DebugContext(ctx, "track lookup returned no data", "title", title, "artist", artist, "reason", payload.Error)
		return track.Features{}, false
	}

	c.metrics.IncEnrichment(metrics.EnrichmentHit)
	return track.Features{
		ImageURL:                payload.ImageURL,
		Tempo:                   payload.Tempo,
		TempoConfidence:         payload.TempoConfidence,
		TimeSignature:           payload.TimeSignature,
		TimeSignatureConfidence: payload.TimeSignatureConfidence,
		Danceability:            payload.Danceability,
		Energy:                  payload.Energy,
		Valence:                 payload.Valence,
		Loudness:                payload.Loudness,
		Genres:                  payload.Genres,
	}, true
}

// fetchSongData retries once with a fresh token when the backend rejects
// the cached one.
func (c *Client) fetchSongData(ctx context.Context, query url.Values) (songDataResponse, error) {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		return songDataResponse{}, crerr.Wrap(err, "obtain access token")
	}

	payload, err := c.requestSongData(ctx, query, token)
	if !crerr.Is(err, errUnauthorized) {
		return payload, err
	}

	c.logger.InfoContext(ctx, "access token rejected, refreshing")
	c.tokens.Invalidate(token)
	token, err = c.tokens.Get(ctx)
	if err != nil {
		return songDataResponse{}, crerr.Wrap(err, "refresh access token")
	}
	return c.requestSongData(ctx, query, token)
}

func (c *Client) requestSongData(ctx context.Context, query url.Values, token string) (songDataResponse, error) {
	params := url.Values{}
	for key, values := range query {
		params[key] = values
	}
	params.Set("access_token", token)

	var payload songDataResponse
	status, err := c.getJSON(ctx, c.baseURL+songDataPath+"?"+params.Encode(), &payload)
	if err != nil {
		return songDataResponse{}, err
	}
	if status == http.StatusUnauthorized {
		return songDataResponse{}, errUnauthorized
	}
	return payload, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if _, err := c.getJSON(ctx, c.baseURL+tokenPath, &payload); err != nil {
		return "", err
	}
	if strings.TrimSpace(payload.AccessToken) == "" {
		return "", crerr.New("no access_token in token response")
	}
	return payload.AccessToken, nil
}

// getJSON decodes 2xx bodies into target. A 401 is returned as a status with
// no error so callers can decide whether to refresh.
func (c *Client) getJSON(ctx context.Context, fullURL string, target any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, crerr.Wrap(err, "wait for rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, crerr.Mark(crerr.Wrap(err, "send request"), errSpotifyTransient)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseSize)); err != nil {
		return resp.StatusCode, crerr.Mark(crerr.Wrap(err, "read response body"), errSpotifyTransient)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return resp.StatusCode, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		statusErr := fmt.Errorf("backend status=%d", resp.StatusCode)
		if isRetryableStatus(resp.StatusCode) {
			return resp.StatusCode, crerr.Mark(statusErr, errSpotifyTransient)
		}
		return resp.StatusCode, statusErr
	}

	if err := sonic.Unmarshal(buf.B, target); err != nil {
		return resp.StatusCode, crerr.Wrap(err, "decode backend payload")
	}
	return resp.StatusCode, nil
}

func firstArtist(artist string) string {
	first, _, _ := strings.Cut(artist, ",")
	return strings.TrimSpace(first)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusRequestTimeout || status == http.StatusTooManyRequests || status >= 500
}

func isSpotifyCircuitFailure(err error) bool {
	return crerr.Is(err, errSpotifyTransient)
}
