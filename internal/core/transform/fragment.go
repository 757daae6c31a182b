package transform

import (
	"errors"
	"fmt"
	"strings"

	"kilometers.ai/mcpspaces/internal/core/catalogue"
)

// Fragment is one entry's rendered client configuration.
// Implementations: URLFragment and CommandFragment.
type Fragment interface {
	isFragment()
}

// URLFragment configures a remote server reached over HTTP or a websocket
type URLFragment struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// CommandFragment configures a local server spawned as a subprocess
type CommandFragment struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

func (URLFragment) isFragment()     {}
func (CommandFragment) isFragment() {}

var (
	// ErrUnsupportedTransport is matched by every *UnsupportedTransportError
	ErrUnsupportedTransport = errors.New("unsupported transport")
	// ErrEmptyCommand is matched by every *EmptyCommandError
	ErrEmptyCommand = errors.New("empty command")
)

// UnsupportedTransportError is returned for an entry whose transport has
// no rendering
type UnsupportedTransportError struct {
	EntryID   string
	Transport string
}

func (e *UnsupportedTransportError) Error() string {
	return fmt.Sprintf("unsupported transport '%s' for %s", e.Transport, e.EntryID)
}

func (e *UnsupportedTransportError) Is(target error) bool {
	return target == ErrUnsupportedTransport
}

// EmptyCommandError is returned for a command entry without a command line
type EmptyCommandError struct {
	EntryID string
}

func (e *EmptyCommandError) Error() string {
	return fmt.Sprintf("empty command line for %s", e.EntryID)
}

func (e *EmptyCommandError) Is(target error) bool {
	return target == ErrEmptyCommand
}

// Render converts a catalogue entry into its configuration fragment
func Render(entry catalogue.Entry) (Fragment, error) {
	switch entry.Transport() {
	case catalogue.TransportHTTP, catalogue.TransportWebSocket:
		return URLFragment{
			Type: entry.Transport().String(),
			URL:  entry.Entrypoint(),
		}, nil
	case catalogue.TransportCommand:
		fields := strings.Fields(entry.Entrypoint())
		if len(fields) == 0 {
			return nil, &EmptyCommandError{EntryID: entry.ID().Value()}
		}
		return CommandFragment{
			Command: fields[0],
			Args:    append([]string{}, fields[1:]...),
		}, nil
	default:
		return nil, &UnsupportedTransportError{
			EntryID:   entry.ID().Value(),
			Transport: entry.Transport().String(),
		}
	}
}
