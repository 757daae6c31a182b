package catalogue

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSelection is matched by every *UnknownSelectionError
var ErrUnknownSelection = errors.New("unknown selection")

// UnknownSelectionError reports requested display names that are not in
// the catalogue
type UnknownSelectionError struct {
	Unknown []string // in request order
	Valid   []string // sorted
}

// Error implements the error interface
func (e *UnknownSelectionError) Error() string {
	return fmt.Sprintf("unknown space(s): %s. Valid options: %s",
		strings.Join(e.Unknown, ", "), strings.Join(e.Valid, ", "))
}

// Is lets errors.Is match ErrUnknownSelection
func (e *UnknownSelectionError) Is(target error) bool {
	return target == ErrUnknownSelection
}

// Select resolves requested display names against the catalogue.
//
// An empty request selects the whole catalogue in catalogue order.
// Otherwise one entry is returned per requested name, in request order,
// repeats included. If any name is unknown nothing is selected and the
// error names every unmatched entry.
func (c *Catalogue) Select(names []string) ([]Entry, error) {
	if len(names) == 0 {
		return c.Entries(), nil
	}

	selected := make([]Entry, 0, len(names))
	var unknown []string
	for _, name := range names {
		entry, ok := c.Lookup(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		selected = append(selected, entry)
	}

	if len(unknown) > 0 {
		return nil, &UnknownSelectionError{Unknown: unknown, Valid: c.Names()}
	}
	return selected, nil
}
