package transform

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the top-level shape of the generated file
type Document struct {
	Servers *ServerSet `json:"servers"`
}

// EncodeDocument writes {"servers": set} as two-space indented JSON
func EncodeDocument(w io.Writer, set *ServerSet) error {
	if set == nil {
		set = NewServerSet()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Document{Servers: set}); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return nil
}

// DecodeDocument parses a document produced by EncodeDocument
func DecodeDocument(r io.Reader) (*ServerSet, error) {
	doc := Document{Servers: NewServerSet()}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if doc.Servers == nil {
		return NewServerSet(), nil
	}
	return doc.Servers, nil
}
