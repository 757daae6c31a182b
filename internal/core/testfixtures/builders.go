package testfixtures

import (
	"fmt"
	"strings"

	"pgregory.net/rapid"

	"kilometers.ai/mcpspaces/internal/core/catalogue"
)

// EntryBuilder provides a builder pattern for creating test entries
type EntryBuilder struct {
	id          string
	displayName string
	transport   catalogue.Transport
	entrypoint  string
	description string
}

// NewEntryBuilder creates a new EntryBuilder with sensible defaults
func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		id:          "example/space",
		displayName: "example",
		transport:   catalogue.TransportHTTP,
		entrypoint:  "https://example.hf.space/mcp",
		description: "Example space used in tests",
	}
}

// WithID sets the Space identifier
func (b *EntryBuilder) WithID(id string) *EntryBuilder {
	b.id = id
	return b
}

// WithDisplayName sets the display name
func (b *EntryBuilder) WithDisplayName(name string) *EntryBuilder {
	b.displayName = name
	return b
}

// WithTransport sets the transport kind
func (b *EntryBuilder) WithTransport(transport catalogue.Transport) *EntryBuilder {
	b.transport = transport
	return b
}

// WithEntrypoint sets the URL or command line
func (b *EntryBuilder) WithEntrypoint(entrypoint string) *EntryBuilder {
	b.entrypoint = entrypoint
	return b
}

// WithDescription sets the description
func (b *EntryBuilder) WithDescription(description string) *EntryBuilder {
	b.description = description
	return b
}

// AsCommand configures a local-process entry
func (b *EntryBuilder) AsCommand(commandLine string) *EntryBuilder {
	b.transport = catalogue.TransportCommand
	b.entrypoint = commandLine
	return b
}

// AsWebSocket configures a socket-stream entry
func (b *EntryBuilder) AsWebSocket(url string) *EntryBuilder {
	b.transport = catalogue.TransportWebSocket
	b.entrypoint = url
	return b
}

// Build creates the Entry, panicking on invalid input
func (b *EntryBuilder) Build() catalogue.Entry {
	return catalogue.MustEntry(b.id, b.displayName, b.transport, b.entrypoint, b.description)
}

// Common test scenarios

// CreateHTTPEntry creates a direct-HTTP entry
func CreateHTTPEntry(name, url string) catalogue.Entry {
	return NewEntryBuilder().
		WithID("test/" + name).
		WithDisplayName(name).
		WithEntrypoint(url).
		Build()
}

// CreateCommandEntry creates a local-process entry
func CreateCommandEntry(name, commandLine string) catalogue.Entry {
	return NewEntryBuilder().
		WithID("test/" + name).
		WithDisplayName(name).
		AsCommand(commandLine).
		Build()
}

// CreateCatalogue creates a catalogue of n HTTP entries named space-0..space-n-1
func CreateCatalogue(n int) *catalogue.Catalogue {
	entries := make([]catalogue.Entry, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("space-%d", i)
		entries = append(entries, CreateHTTPEntry(name, fmt.Sprintf("https://%s.hf.space/mcp", name)))
	}
	return catalogue.New(entries...)
}

// Property-based generators

// EntryGen draws entries with any of the known transports
func EntryGen() *rapid.Generator[catalogue.Entry] {
	return rapid.Custom(func(t *rapid.T) catalogue.Entry {
		name := rapid.StringMatching(`[a-z][a-z0-9-]{0,15}`).Draw(t, "name")
		transport := rapid.SampledFrom(catalogue.Transports()).Draw(t, "transport")

		var entrypoint string
		if transport == catalogue.TransportCommand {
			words := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9@/._-]{1,12}`), 1, 6).Draw(t, "words")
			entrypoint = strings.Join(words, " ")
		} else {
			scheme := "https"
			if transport == catalogue.TransportWebSocket {
				scheme = "wss"
			}
			entrypoint = fmt.Sprintf("%s://%s.hf.space/mcp", scheme, name)
		}

		return NewEntryBuilder().
			WithID("gen/" + name).
			WithDisplayName(name).
			WithTransport(transport).
			WithEntrypoint(entrypoint).
			Build()
	})
}
