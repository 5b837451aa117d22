package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SHEET_SOURCE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env, got %q", cfg.AppEnv)
	}
	if cfg.SheetSource != SheetSourceGoogle {
		t.Fatalf("expected google source, got %q", cfg.SheetSource)
	}
	if cfg.SheetBaseURL != "https://docs.google.com" {
		t.Fatalf("unexpected sheet base url %q", cfg.SheetBaseURL)
	}
	if cfg.SnapshotCacheTTL != time.Minute {
		t.Fatalf("unexpected cache ttl %s", cfg.SnapshotCacheTTL)
	}
	if !cfg.SheetCircuit.Enabled || cfg.SheetCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected sheet circuit config %+v", cfg.SheetCircuit)
	}
	if cfg.EnrichmentEnabled {
		t.Fatalf("expected enrichment to be off by default")
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_SheetSourceValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("SHEET_SOURCE", "ftp")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown SHEET_SOURCE")
		}
	})

	t.Run("xlsx requires path", func(t *testing.T) {
		t.Setenv("SHEET_SOURCE", "XLSX")
		t.Setenv("SHEET_XLSX_PATH", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when SHEET_XLSX_PATH is empty")
		}
	})

	t.Run("xlsx with path", func(t *testing.T) {
		t.Setenv("SHEET_SOURCE", "xlsx")
		t.Setenv("SHEET_XLSX_PATH", "/tmp/league.xlsx")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SheetSource != SheetSourceXLSX || cfg.SheetXLSXPath != "/tmp/league.xlsx" {
			t.Fatalf("unexpected sheet config: %q %q", cfg.SheetSource, cfg.SheetXLSXPath)
		}
	})
}

func TestLoad_EnrichmentRequiresBaseURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ENRICHMENT_ENABLED", "true")
	t.Setenv("ENRICHMENT_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ENRICHMENT_ENABLED=true without ENRICHMENT_BASE_URL")
	}
}

func TestLoad_EnrichmentParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ENRICHMENT_ENABLED", "true")
	t.Setenv("ENRICHMENT_BASE_URL", "https://tracks.example.com/")
	t.Setenv("ENRICHMENT_RATE_LIMIT", "2.5")
	t.Setenv("ENRICHMENT_WORKERS", "8")
	t.Setenv("ENRICHMENT_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.EnrichmentBaseURL != "https://tracks.example.com" {
		t.Fatalf("expected trailing slash to be trimmed, got %q", cfg.EnrichmentBaseURL)
	}
	if cfg.EnrichmentRateLimit != 2.5 || cfg.EnrichmentWorkers != 8 {
		t.Fatalf("unexpected enrichment config: %+v", cfg)
	}
	if cfg.EnrichmentCircuit.FailureThreshold != 3 {
		t.Fatalf("unexpected circuit threshold %d", cfg.EnrichmentCircuit.FailureThreshold)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad duration", key: "SHEET_TIMEOUT", value: "soon"},
		{name: "non-positive duration", key: "SNAPSHOT_CACHE_TTL", value: "0s"},
		{name: "negative retries", key: "SHEET_MAX_RETRIES", value: "-1"},
		{name: "bad bool", key: "METRICS_ENABLED", value: "maybe"},
		{name: "zero rate", key: "ENRICHMENT_RATE_LIMIT", value: "0"},
		{name: "zero workers", key: "ENRICHMENT_WORKERS", value: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn %q", cfg.UptraceDSN)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example , ,https://b.example")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected split result: %v", got)
	}
}
