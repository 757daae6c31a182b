package catalogue

import (
	"fmt"
)

// Transport represents the connection mechanism used to reach an entry
type Transport string

const (
	// TransportHTTP is a direct HTTP request/response endpoint
	TransportHTTP Transport = "http"
	// TransportWebSocket is a persistent socket stream endpoint
	TransportWebSocket Transport = "ws"
	// TransportCommand spawns a local subprocess speaking stdio
	TransportCommand Transport = "command"
)

// Transports returns every transport kind the renderer understands
func Transports() []Transport {
	return []Transport{TransportHTTP, TransportWebSocket, TransportCommand}
}

// Valid reports whether the transport is one of the known kinds
func (t Transport) Valid() bool {
	switch t {
	case TransportHTTP, TransportWebSocket, TransportCommand:
		return true
	default:
		return false
	}
}

// String returns the string representation of Transport
func (t Transport) String() string {
	return string(t)
}

// EntryID is the Space identifier of a catalogue entry, e.g. "owner/space"
type EntryID struct {
	value string
}

// NewEntryID creates an EntryID with validation
func NewEntryID(value string) (EntryID, error) {
	if value == "" {
		return EntryID{}, fmt.Errorf("entry ID cannot be empty")
	}
	return EntryID{value: value}, nil
}

// Value returns the string value of the EntryID
func (e EntryID) Value() string {
	return e.value
}

// String implements the Stringer interface
func (e EntryID) String() string {
	return e.value
}

// Entry describes one remote endpoint and how to reach it.
// Entries are values; nothing mutates them after construction.
type Entry struct {
	id          EntryID
	displayName string
	transport   Transport
	entrypoint  string
	description string
}

// NewEntry creates an Entry. The transport is not checked here so that
// entries declaring a kind the renderer does not know can still be built
// and rejected at render time.
func NewEntry(id, displayName string, transport Transport, entrypoint, description string) (Entry, error) {
	entryID, err := NewEntryID(id)
	if err != nil {
		return Entry{}, err
	}
	if displayName == "" {
		return Entry{}, fmt.Errorf("display name cannot be empty for %s", id)
	}
	return Entry{
		id:          entryID,
		displayName: displayName,
		transport:   transport,
		entrypoint:  entrypoint,
		description: description,
	}, nil
}

// MustEntry is like NewEntry but panics on error. Used for compiled-in data.
func MustEntry(id, displayName string, transport Transport, entrypoint, description string) Entry {
	e, err := NewEntry(id, displayName, transport, entrypoint, description)
	if err != nil {
		panic(err)
	}
	return e
}

// ID returns the Space identifier
func (e Entry) ID() EntryID {
	return e.id
}

// DisplayName returns the name used as the configuration key
func (e Entry) DisplayName() string {
	return e.displayName
}

// Transport returns the transport kind
func (e Entry) Transport() Transport {
	return e.transport
}

// Entrypoint returns the URL or command line
func (e Entry) Entrypoint() string {
	return e.entrypoint
}

// Description returns the free-text description
func (e Entry) Description() string {
	return e.description
}
