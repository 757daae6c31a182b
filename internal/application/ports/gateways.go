package ports

import (
	"context"
	"io"

	"kilometers.ai/mcpspaces/internal/core/catalogue"
	"kilometers.ai/mcpspaces/internal/core/transform"
)

// ConfigWriter defines the interface for persisting a generated configuration
type ConfigWriter interface {
	// WriteConfig serializes the server set to path, replacing any existing
	// file, and returns the number of bytes written
	WriteConfig(ctx context.Context, servers *transform.ServerSet, path string) (int64, error)
}

// SummaryPrinter defines the interface for human-readable catalogue listings
type SummaryPrinter interface {
	// PrintSummary writes one block per entry, in the given order
	PrintSummary(w io.Writer, entries []catalogue.Entry) error
}

// SummaryFormat names a SummaryPrinter implementation
type SummaryFormat string

const (
	SummaryFormatText SummaryFormat = "text"
	SummaryFormatYAML SummaryFormat = "yaml"
)

// LoggingGateway defines the interface for logging operations
type LoggingGateway interface {
	// Log logs a message with the specified level
	Log(level LogLevel, message string, fields map[string]interface{})

	// LogError logs an error
	LogError(err error, message string, fields map[string]interface{})

	// SetLogLevel sets the logging level
	SetLogLevel(level LogLevel)

	// GetLogLevel returns the current logging level
	GetLogLevel() LogLevel
}

// LogLevel defines the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
