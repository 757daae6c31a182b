package commands

import (
	"fmt"
	"time"
)

// Command defines the base interface for all commands
type Command interface {
	// Validate validates the command parameters
	Validate() error

	// GetType returns the command type
	GetType() string
}

// CommandResult represents the result of a command execution
type CommandResult struct {
	Success       bool                   `json:"success"`
	Message       string                 `json:"message"`
	Data          interface{}            `json:"data,omitempty"`
	Warnings      []string               `json:"warnings,omitempty"`
	ExecutionTime time.Duration          `json:"execution_time"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// NewSuccessResult creates a successful command result
func NewSuccessResult(message string, data interface{}) *CommandResult {
	return &CommandResult{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// AddWarning adds a warning to the command result
func (r *CommandResult) AddWarning(warning string) {
	r.Warnings = append(r.Warnings, warning)
}

// SetMetadata adds metadata to the command result
func (r *CommandResult) SetMetadata(key string, value interface{}) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]interface{})
	}
	r.Metadata[key] = value
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBaseCommand creates a new base command
func NewBaseCommand(commandType string) BaseCommand {
	return BaseCommand{
		Type:      commandType,
		CreatedAt: time.Now(),
	}
}

// GetType returns the command type
func (c BaseCommand) GetType() string {
	return c.Type
}

// CommandError represents a command-specific error
type CommandError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Common command error codes
const (
	ErrCodeValidation = "VALIDATION_ERROR"
)

// NewValidationError creates a validation error
func NewValidationError(message string) CommandError {
	return CommandError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}
