package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAddr        = ":8080"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultBatchLimit  = 50
	defaultAuditBuffer = 0
	// defaultAuditCapacity caps retained audit events.
	defaultAuditCapacity = 10000
)

// Server captures process level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string
	// OverlaysFile is an optional YAML overlay policy file.
	OverlaysFile string
	// AuditBuffer > 0 makes audit delivery asynchronous with that buffer size.
	AuditBuffer int
	// AuditCapacity is the most audit events kept in memory before the
	// oldest are evicted.
	AuditCapacity int
	BatchLimit    int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:         envOr("DOCCHECK_ADDR", defaultAddr),
		LogLevel:     strings.ToLower(envOr("DOCCHECK_LOG_LEVEL", defaultLogLevel)),
		LogFormat:    strings.ToLower(envOr("DOCCHECK_LOG_FORMAT", defaultLogFormat)),
		OverlaysFile: os.Getenv("DOCCHECK_OVERLAYS_FILE"),
	}

	var err error
	if cfg.AuditBuffer, err = envInt("DOCCHECK_AUDIT_BUFFER", defaultAuditBuffer); err != nil {
		return Server{}, err
	}
	if cfg.AuditCapacity, err = envInt("DOCCHECK_AUDIT_CAPACITY", defaultAuditCapacity); err != nil {
		return Server{}, err
	}
	if cfg.BatchLimit, err = envInt("DOCCHECK_BATCH_LIMIT", defaultBatchLimit); err != nil {
		return Server{}, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the process cannot start with.
func (s Server) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("DOCCHECK_ADDR must not be empty")
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("DOCCHECK_LOG_FORMAT must be text or json, got %q", s.LogFormat)
	}
	if s.AuditBuffer < 0 {
		return fmt.Errorf("DOCCHECK_AUDIT_BUFFER must not be negative, got %d", s.AuditBuffer)
	}
	if s.AuditCapacity < 1 {
		return fmt.Errorf("DOCCHECK_AUDIT_CAPACITY must be at least 1, got %d", s.AuditCapacity)
	}
	if s.BatchLimit < 1 {
		return fmt.Errorf("DOCCHECK_BATCH_LIMIT must be at least 1, got %d", s.BatchLimit)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
