package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ukpkickball/roster/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	LogoStoreFilesystem = "fs"
	LogoStoreS3         = "s3"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	DBURL              string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	OperatorToken      string

	GameWeekday     time.Weekday
	DefaultTeamName string

	LogoStore         string
	LogoDir           string
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3KeyPrefix       string

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	operatorToken := strings.TrimSpace(getEnv("OPERATOR_TOKEN", ""))
	if appEnv == EnvProd && operatorToken == "" {
		return Config{}, fmt.Errorf("OPERATOR_TOKEN is required in prod")
	}

	gameWeekday, err := parseWeekday(getEnv("GAME_WEEKDAY", "thursday"))
	if err != nil {
		return Config{}, err
	}

	logoStore := strings.ToLower(strings.TrimSpace(getEnv("LOGO_STORE", LogoStoreFilesystem)))
	switch logoStore {
	case LogoStoreFilesystem, LogoStoreS3:
	default:
		return Config{}, fmt.Errorf("invalid LOGO_STORE %q: valid values are %s, %s", logoStore, LogoStoreFilesystem, LogoStoreS3)
	}

	s3Bucket := strings.TrimSpace(getEnv("LOGO_S3_BUCKET", ""))
	if logoStore == LogoStoreS3 && s3Bucket == "" {
		return Config{}, fmt.Errorf("LOGO_S3_BUCKET is required when LOGO_STORE=s3")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	return Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "kickball-roster"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DBURL:              dbURL,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		OperatorToken:      operatorToken,
		GameWeekday:        gameWeekday,
		DefaultTeamName:    getEnv("DEFAULT_TEAM_NAME", "Unsolicited Kick Pics"),
		LogoStore:          logoStore,
		LogoDir:            getEnv("LOGO_DIR", "./data/logos"),
		S3Bucket:           s3Bucket,
		S3Region:           getEnv("LOGO_S3_REGION", "auto"),
		S3Endpoint:         strings.TrimSpace(getEnv("LOGO_S3_ENDPOINT", "")),
		S3AccessKeyID:      strings.TrimSpace(getEnv("LOGO_S3_ACCESS_KEY_ID", "")),
		S3SecretAccessKey:  strings.TrimSpace(getEnv("LOGO_S3_SECRET_ACCESS_KEY", "")),
		S3KeyPrefix:        strings.TrimSpace(getEnv("LOGO_S3_KEY_PREFIX", "logos")),
		PprofEnabled:       pprofEnabled,
		PprofAddr:          pprofAddr,
		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
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

func parseWeekday(v string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return 0, fmt.Errorf("invalid GAME_WEEKDAY %q", v)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
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
