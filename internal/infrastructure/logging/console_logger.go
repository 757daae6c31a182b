package logging

import (
	"io"
	"sort"

	"github.com/hashicorp/go-hclog"

	"kilometers.ai/mcpspaces/internal/application/ports"
)

// ConsoleLogger implements ports.LoggingGateway on top of hclog. Output
// must not be stdout, which carries the summary and the banner.
type ConsoleLogger struct {
	logger hclog.Logger
	level  ports.LogLevel
}

// NewConsoleLogger creates a new console logger at the given level
func NewConsoleLogger(output io.Writer, level ports.LogLevel) *ConsoleLogger {
	return &ConsoleLogger{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "mcp-spaces",
			Level:  toHCLogLevel(level),
			Output: output,
		}),
		level: level,
	}
}

// Log logs a message with the specified level
func (l *ConsoleLogger) Log(level ports.LogLevel, message string, fields map[string]interface{}) {
	l.logger.Log(toHCLogLevel(level), message, flatten(fields)...)
}

// LogError logs an error
func (l *ConsoleLogger) LogError(err error, message string, fields map[string]interface{}) {
	args := append([]interface{}{"error", err}, flatten(fields)...)
	l.logger.Error(message, args...)
}

// SetLogLevel sets the logging level
func (l *ConsoleLogger) SetLogLevel(level ports.LogLevel) {
	l.level = level
	l.logger.SetLevel(toHCLogLevel(level))
}

// GetLogLevel returns the current logging level
func (l *ConsoleLogger) GetLogLevel() ports.LogLevel {
	return l.level
}

func toHCLogLevel(level ports.LogLevel) hclog.Level {
	switch level {
	case ports.LogLevelDebug:
		return hclog.Debug
	case ports.LogLevelInfo:
		return hclog.Info
	case ports.LogLevelError:
		return hclog.Error
	default:
		return hclog.Warn
	}
}

// flatten turns fields into hclog key/value pairs, sorted by key
func flatten(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}

var _ ports.LoggingGateway = (*ConsoleLogger)(nil)
