package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"kilometers.ai/mcpspaces/internal/application/ports"
	"kilometers.ai/mcpspaces/internal/core/catalogue"
)

const summaryHeading = "Registered Hugging Face Spaces with MCP support:"

// TextPrinter prints the human-readable catalogue summary. Styling is
// dropped automatically when w is not a terminal.
type TextPrinter struct{}

// NewTextPrinter creates a new text printer
func NewTextPrinter() *TextPrinter {
	return &TextPrinter{}
}

// PrintSummary writes one block per entry in the given order
func (p *TextPrinter) PrintSummary(w io.Writer, entries []catalogue.Entry) error {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true)
	name := r.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	label := r.NewStyle().Foreground(lipgloss.Color("245"))

	if _, err := fmt.Fprintf(w, "%s\n\n", heading.Render(summaryHeading)); err != nil {
		return err
	}

	for _, e := range entries {
		rows := [][2]string{
			{"Space ID    :", e.ID().Value()},
			{"Transport   :", e.Transport().String()},
			{"Entrypoint  :", e.Entrypoint()},
			{"Description :", e.Description()},
		}

		if _, err := fmt.Fprintf(w, "- %s\n", name.Render(e.DisplayName())); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "  %s %s\n", label.Render(row[0]), row[1]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

var _ ports.SummaryPrinter = (*TextPrinter)(nil)
