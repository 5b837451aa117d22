package googlesheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/music-league/internal/platform/resilience"
	"github.com/riskibarqy/music-league/internal/usecase"
)

func serveTestdata(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/spreadsheets/d/sheet-1/gviz/tq") || r.URL.Query().Get("tqx") != "out:csv" {
			http.NotFound(w, r)
			return
		}
		raw, err := os.ReadFile(filepath.Join("testdata", r.URL.Query().Get("sheet")+".csv"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("<html>Worksheet not found</html>"))
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write(raw)
	}
}

func newTestClient(baseURL string, retries int) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		MaxRetries:     retries,
		RetryBaseDelay: time.Millisecond,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1},
	})
}

func TestClient_ReadsAllTabs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(serveTestdata(t))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	ctx := context.Background()

	rounds, err := client.ListRounds(ctx, "sheet-1")
	if err != nil {
		t.Fatalf("list rounds: %v", err)
	}
	if len(rounds) != 4 || rounds[0].ID != "round_id_1" || rounds[1].PlaylistURL != "https://open.spotify.com/playlist/1gnfQ3WfIY6jVem6WhYWgO" {
		t.Fatalf("unexpected rounds: %+v", rounds)
	}

	competitors, err := client.ListCompetitors(ctx, "sheet-1")
	if err != nil {
		t.Fatalf("list competitors: %v", err)
	}
	if len(competitors) != 4 || competitors[3].Name != "Spleen" {
		t.Fatalf("unexpected competitors: %+v", competitors)
	}

	submissions, err := client.ListSubmissions(ctx, "sheet-1")
	if err != nil {
		t.Fatalf("list submissions: %v", err)
	}
	if len(submissions) != 5 || submissions[2].Artist != "Night Verses" || submissions[2].VisibleToVoters != "No" {
		t.Fatalf("unexpected submissions: %+v", submissions)
	}

	votes, err := client.ListVotes(ctx, "sheet-1")
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(votes) != 6 || votes[0].PointsAssigned != 3 || votes[5].Comment != "" {
		t.Fatalf("unexpected votes: %+v", votes)
	}
}

func TestClient_MissingTabIsNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid sheet ID"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 2).ListRounds(context.Background(), "sheet-1")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "rounds") {
		t.Fatalf("expected error to name the tab, got %v", err)
	}
}

func TestClient_HTMLBodyIsRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<!DOCTYPE html><HTML><body>Sign in</body></HTML>"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 0).ListVotes(context.Background(), "sheet-1")
	if !errors.Is(err, usecase.ErrNotFound) || !strings.Contains(err.Error(), "no data found or invalid CSV format") {
		t.Fatalf("expected invalid csv error, got %v", err)
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ID,Name\nc1,Ana\n"))
	}))
	defer srv.Close()

	competitors, err := newTestClient(srv.URL, 2).ListCompetitors(context.Background(), "sheet-1")
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if len(competitors) != 1 || calls.Load() != 3 {
		t.Fatalf("unexpected result: competitors=%v calls=%d", competitors, calls.Load())
	}
}

func TestClient_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	for i := 0; i < 2; i++ {
		_, err := client.ListRounds(context.Background(), "sheet-1")
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected dependency unavailable, got %v", i, err)
		}
	}

	_, err := client.ListRounds(context.Background(), "sheet-1")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected breaker rejection, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected breaker to short-circuit third call, got %d calls", calls.Load())
	}
}

func TestClient_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	var calls atomic.Int32
	data := serveTestdata(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		started <- struct{}{}
		<-release
		data(w, r)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.ListRounds(firstCtx, "sheet-1")
		firstErr <- err
	}()
	<-started

	secondDone := make(chan struct{})
	var rounds int
	var secondErr error
	go func() {
		defer close(secondDone)
		items, err := client.ListRounds(context.Background(), "sheet-1")
		rounds, secondErr = len(items), err
	}()

	cancelFirst()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled for the cancelled caller, got %v", err)
	}

	close(release)
	<-secondDone
	if secondErr != nil || rounds != 4 {
		t.Fatalf("expected shared fetch to succeed, got rounds=%d err=%v", rounds, secondErr)
	}
}

func TestClient_RequiresSheetID(t *testing.T) {
	t.Parallel()

	_, err := newTestClient("http://127.0.0.1:0", 0).ListRounds(context.Background(), " ")
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestClient_TabURL(t *testing.T) {
	t.Parallel()

	got := newTestClient("https://docs.google.com/", 0).TabURL("abc", "votes")
	want := "https://docs.google.com/spreadsheets/d/abc/gviz/tq?tqx=out:csv&sheet=votes"
	if got != want {
		t.Fatalf("unexpected tab url: %s", got)
	}
}
