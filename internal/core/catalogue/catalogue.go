package catalogue

import (
	"sort"
)

// Catalogue is an ordered, read-only list of entries
type Catalogue struct {
	entries []Entry
}

// New creates a catalogue holding the given entries in order
func New(entries ...Entry) *Catalogue {
	return &Catalogue{entries: append([]Entry(nil), entries...)}
}

// Default returns the catalogue compiled into the binary
func Default() *Catalogue {
	return New(builtinEntries...)
}

var builtinEntries = []Entry{
	MustEntry(
		"modelcontextprotocol/Everything",
		"everything",
		TransportCommand,
		"npx -y @modelcontextprotocol/server-everything stdio",
		"Comprehensive protocol exerciser with echo, add, resources, prompts, and"+
			" sampling support. Useful for validating MCP client implementations.",
	),
	MustEntry(
		"meta-llama/llama-3-8b-instruct",
		"llama-3-8b-chat",
		TransportHTTP,
		"https://llama-3-8b-instruct.hf.space/mcp",
		"Community LLaMA 3 chat interface. HTTP transport exposes inference"+
			" endpoints suitable for natural language tooling.",
	),
	MustEntry(
		"stabilityai/stable-diffusion",
		"stable-diffusion",
		TransportHTTP,
		"https://stabilityai-stable-diffusion.hf.space/mcp",
		"Image generation pipeline mirroring the Stable Diffusion demo space.",
	),
	MustEntry(
		"microsoft/phi-3-vision",
		"phi-3-vision",
		TransportHTTP,
		"https://microsoft-phi-3-vision.hf.space/mcp",
		"Vision-language toolchain exposing the Phi-3 multimodal experience via"+
			" MCP compatible HTTP endpoints.",
	),
}

// Entries returns a copy of all entries in catalogue order
func (c *Catalogue) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len returns the number of entries
func (c *Catalogue) Len() int {
	return len(c.entries)
}

// Lookup finds an entry by display name. When several entries share a
// display name the last one wins.
func (c *Catalogue) Lookup(displayName string) (Entry, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].displayName == displayName {
			return c.entries[i], true
		}
	}
	return Entry{}, false
}

// Names returns the distinct display names, sorted
func (c *Catalogue) Names() []string {
	seen := make(map[string]bool, len(c.entries))
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		if seen[e.displayName] {
			continue
		}
		seen[e.displayName] = true
		names = append(names, e.displayName)
	}
	sort.Strings(names)
	return names
}
