package transform

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"kilometers.ai/mcpspaces/internal/core/catalogue"
)

// ServerSet is the merged configuration mapping, keyed by display name and
// ordered by first insertion
type ServerSet struct {
	servers *orderedmap.OrderedMap[string, Fragment]
}

// NewServerSet creates an empty ServerSet
func NewServerSet() *ServerSet {
	return &ServerSet{servers: orderedmap.New[string, Fragment]()}
}

// Build renders the entries and merges them in order. A repeated display
// name overwrites the earlier fragment but keeps its original position.
func Build(entries []catalogue.Entry) (*ServerSet, error) {
	set := NewServerSet()
	for _, entry := range entries {
		fragment, err := Render(entry)
		if err != nil {
			return nil, err
		}
		set.Set(entry.DisplayName(), fragment)
	}
	return set, nil
}

// Set stores a fragment under name, reporting whether it replaced one
func (s *ServerSet) Set(name string, fragment Fragment) (replaced bool) {
	_, replaced = s.servers.Set(name, fragment)
	return replaced
}

// Get returns the fragment stored under name
func (s *ServerSet) Get(name string) (Fragment, bool) {
	return s.servers.Get(name)
}

// Len returns the number of servers
func (s *ServerSet) Len() int {
	return s.servers.Len()
}

// Names returns the server names in order
func (s *ServerSet) Names() []string {
	names := make([]string, 0, s.servers.Len())
	for pair := s.servers.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Each calls fn for every server in order
func (s *ServerSet) Each(fn func(name string, fragment Fragment)) {
	for pair := s.servers.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON implements json.Marshaler, keeping insertion order. Keys and
// values are written without HTML escaping, so URLs keep a literal '&'.
func (s *ServerSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := s.servers.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := encodeUnescaped(&buf, pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeUnescaped(&buf, pair.Value); err != nil {
			return nil, fmt.Errorf("failed to encode server %q: %w", pair.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeUnescaped appends v to buf as compact JSON with HTML escaping off
func encodeUnescaped(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

// wireFragment is the union of every fragment shape as it appears on disk
type wireFragment struct {
	Type    string    `json:"type,omitempty"`
	URL     string    `json:"url,omitempty"`
	Command string    `json:"command,omitempty"`
	Args    *[]string `json:"args,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler, keeping document order
func (s *ServerSet) UnmarshalJSON(data []byte) error {
	raw := orderedmap.New[string, json.RawMessage]()
	if err := raw.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("failed to parse servers: %w", err)
	}

	servers := orderedmap.New[string, Fragment]()
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		var wire wireFragment
		if err := json.Unmarshal(pair.Value, &wire); err != nil {
			return fmt.Errorf("failed to parse server %q: %w", pair.Key, err)
		}
		fragment, err := wire.fragment()
		if err != nil {
			return fmt.Errorf("server %q: %w", pair.Key, err)
		}
		servers.Set(pair.Key, fragment)
	}
	s.servers = servers
	return nil
}

func (w wireFragment) fragment() (Fragment, error) {
	switch {
	case w.Command != "":
		args := []string{}
		if w.Args != nil {
			args = append(args, *w.Args...)
		}
		return CommandFragment{Command: w.Command, Args: args}, nil
	case w.Type == string(catalogue.TransportHTTP), w.Type == string(catalogue.TransportWebSocket):
		return URLFragment{Type: w.Type, URL: w.URL}, nil
	case w.Type != "":
		return nil, &UnsupportedTransportError{EntryID: "configuration", Transport: w.Type}
	default:
		return nil, fmt.Errorf("server has neither a command nor a type")
	}
}
