package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	SheetSourceGoogle = "google"
	SheetSourceLocal  = "local"
	SheetSourceXLSX   = "xlsx"
	SheetSourceMemory = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	SheetSource          string
	SheetDefaultID       string
	SheetBaseURL         string
	SheetLocalDir        string
	SheetXLSXPath        string
	SheetTimeout         time.Duration
	SheetMaxRetries      int
	SheetCircuit         resilience.CircuitBreakerConfig
	SnapshotCacheTTL     time.Duration
	SnapshotCacheEnabled bool

	EnrichmentEnabled   bool
	EnrichmentBaseURL   string
	EnrichmentTimeout   time.Duration
	EnrichmentRateLimit float64
	EnrichmentBurst     int
	EnrichmentWorkers   int
	EnrichmentCircuit   resilience.CircuitBreakerConfig

	MetricsEnabled bool
	PprofEnabled   bool
	PprofAddr      string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// envReader parses typed env values and keeps the first failure so Load can
// read every key before reporting.
type envReader struct {
	err error
}

func (r *envReader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

func (r *envReader) bool(key string, fallback bool) bool {
	raw := getEnv(key, strconv.FormatBool(fallback))
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		r.fail("parse %s: %w", key, err)
		return fallback
	}
	return value
}

func (r *envReader) int(key string, fallback, min int) int {
	value, err := getEnvAsInt(key, fallback)
	if err != nil {
		r.fail("parse %s: %w", key, err)
		return fallback
	}
	if value < min {
		r.fail("%s must be >= %d", key, min)
	}
	return value
}

func (r *envReader) float(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.fail("parse %s: %w", key, err)
		return fallback
	}
	if value <= 0 {
		r.fail("%s must be > 0", key)
	}
	return value
}

func (r *envReader) duration(key, fallback string) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		r.fail("parse %s: %w", key, err)
		return 0
	}
	if value <= 0 {
		r.fail("%s must be > 0", key)
	}
	return value
}

func (r *envReader) circuit(prefix string) resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          r.bool(prefix+"_CIRCUIT_ENABLED", true),
		FailureThreshold: r.int(prefix+"_CIRCUIT_FAILURE_COUNT", 5, 1),
		OpenTimeout:      r.duration(prefix+"_CIRCUIT_OPEN_TIMEOUT", "15s"),
		HalfOpenMaxReq:   r.int(prefix+"_CIRCUIT_HALF_OPEN_MAX_REQ", 2, 1),
	}
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}
	sheetSource, err := parseSheetSource(getEnv("SHEET_SOURCE", SheetSourceGoogle))
	if err != nil {
		return Config{}, err
	}

	var env envReader
	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "music-league-api"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:        env.duration("HTTP_READ_TIMEOUT", "10s"),
		WriteTimeout:       env.duration("HTTP_WRITE_TIMEOUT", "30s"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),

		SheetSource:          sheetSource,
		SheetDefaultID:       strings.TrimSpace(getEnv("SHEET_DEFAULT_ID", "")),
		SheetBaseURL:         strings.TrimRight(strings.TrimSpace(getEnv("SHEET_BASE_URL", "https://docs.google.com")), "/"),
		SheetLocalDir:        strings.TrimSpace(getEnv("SHEET_LOCAL_DIR", "./data")),
		SheetXLSXPath:        strings.TrimSpace(getEnv("SHEET_XLSX_PATH", "")),
		SheetTimeout:         env.duration("SHEET_TIMEOUT", "15s"),
		SheetMaxRetries:      env.int("SHEET_MAX_RETRIES", 2, 0),
		SheetCircuit:         env.circuit("SHEET"),
		SnapshotCacheEnabled: env.bool("SNAPSHOT_CACHE_ENABLED", true),
		SnapshotCacheTTL:     env.duration("SNAPSHOT_CACHE_TTL", "60s"),

		EnrichmentEnabled:   env.bool("ENRICHMENT_ENABLED", false),
		EnrichmentBaseURL:   strings.TrimRight(strings.TrimSpace(getEnv("ENRICHMENT_BASE_URL", "")), "/"),
		EnrichmentTimeout:   env.duration("ENRICHMENT_TIMEOUT", "5s"),
		EnrichmentRateLimit: env.float("ENRICHMENT_RATE_LIMIT", 5),
		EnrichmentBurst:     env.int("ENRICHMENT_BURST", 5, 1),
		EnrichmentWorkers:   env.int("ENRICHMENT_WORKERS", 4, 1),
		EnrichmentCircuit:   env.circuit("ENRICHMENT"),

		MetricsEnabled: env.bool("METRICS_ENABLED", true),
		PprofEnabled:   env.bool("PPROF_ENABLED", false),
		PprofAddr:      strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),

		UptraceEnabled: env.bool("UPTRACE_ENABLED", false),
		UptraceDSN:     strings.TrimSpace(getEnv("UPTRACE_DSN", "")),

		PyroscopeEnabled:           env.bool("PYROSCOPE_ENABLED", false),
		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        env.duration("PYROSCOPE_UPLOAD_RATE", "15s"),
	}
	if env.err != nil {
		return Config{}, env.err
	}

	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	switch c.SheetSource {
	case SheetSourceLocal:
		if c.SheetLocalDir == "" {
			return fmt.Errorf("SHEET_LOCAL_DIR is required when SHEET_SOURCE=local")
		}
	case SheetSourceXLSX:
		if c.SheetXLSXPath == "" {
			return fmt.Errorf("SHEET_XLSX_PATH is required when SHEET_SOURCE=xlsx")
		}
	}
	if c.EnrichmentEnabled && c.EnrichmentBaseURL == "" {
		return fmt.Errorf("ENRICHMENT_BASE_URL is required when ENRICHMENT_ENABLED=true")
	}
	if c.PprofEnabled && c.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.PyroscopeEnabled {
		if c.PyroscopeServerAddress == "" {
			return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if c.PyroscopeAppName == "" {
			return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseSheetSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case SheetSourceGoogle, SheetSourceLocal, SheetSourceXLSX, SheetSourceMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid SHEET_SOURCE %q: valid values are %s, %s, %s, %s",
			v, SheetSourceGoogle, SheetSourceLocal, SheetSourceXLSX, SheetSourceMemory)
	}
}
