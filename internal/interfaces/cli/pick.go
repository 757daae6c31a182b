package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"kilometers.ai/mcpspaces/internal/core/catalogue"
)

// errNothingPicked is returned when the picker is confirmed with no selection
var errNothingPicked = errors.New("no spaces selected")

// NewPickCommand creates the interactive pick command
func NewPickCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose spaces interactively, then write the configuration",
		Long: `Open a terminal picker over the registered spaces. Toggle entries with
space, confirm with enter, and the configuration for the chosen spaces is
written to --output.

Keys:
  up/k, down/j   move
  space          toggle the current space
  a              toggle all
  enter          write the configuration
  q, esc         cancel`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newPickerModel(container.GenerationService.Entries(cmd.Context()))

			program := tea.NewProgram(model,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
			)
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("picker failed: %w", err)
			}

			picked := final.(pickerModel)
			if picked.cancelled {
				fmt.Fprintln(cmd.OutOrStdout(), "No configuration written.")
				return nil
			}

			names := picked.Selected()
			if len(names) == 0 {
				return errNothingPicked
			}
			return runGenerate(cmd, container, names)
		},
	}
}

// pickerModel holds the state of the multi-select picker
type pickerModel struct {
	entries   []catalogue.Entry
	cursor    int
	selected  map[int]bool
	confirmed bool
	cancelled bool
}

func newPickerModel(entries []catalogue.Entry) pickerModel {
	return pickerModel{
		entries:  entries,
		selected: make(map[int]bool),
	}
}

// Selected returns the chosen display names in catalogue order
func (m pickerModel) Selected() []string {
	names := make([]string, 0, len(m.selected))
	for i, entry := range m.entries {
		if m.selected[i] {
			names = append(names, entry.DisplayName())
		}
	}
	return names
}

// Init implements the Bubble Tea init method
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit

	case "enter":
		m.confirmed = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case " ":
		if len(m.entries) > 0 {
			m.toggle(m.cursor)
		}

	case "a":
		all := len(m.selected) == len(m.entries)
		m.selected = make(map[int]bool)
		if !all {
			for i := range m.entries {
				m.selected[i] = true
			}
		}
	}

	return m, nil
}

// toggle copies the selection so earlier model values stay unchanged
func (m *pickerModel) toggle(i int) {
	next := make(map[int]bool, len(m.selected)+1)
	for k, v := range m.selected {
		next[k] = v
	}
	if next[i] {
		delete(next, i)
	} else {
		next[i] = true
	}
	m.selected = next
}

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	pickerCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pickerDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements the Bubble Tea view method
func (m pickerModel) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Select Hugging Face Spaces for your MCP configuration"))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = pickerCursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.selected[i] {
			check = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", cursor, check, entry.DisplayName(),
			pickerDimStyle.Render(fmt.Sprintf("(%s, %s)", entry.Transport(), entry.ID())))
	}

	b.WriteString("\n")
	b.WriteString(pickerDimStyle.Render(fmt.Sprintf("%d selected • space toggle • a all • enter write • q cancel", len(m.selected))))
	b.WriteString("\n")
	return b.String()
}
