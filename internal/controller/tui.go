package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedGlyph = "›"
)

// TUI implements UI for terminals. Reports are printed like SimpleUI does;
// checkpoint selection is interactive.
type TUI struct {
	*SimpleUI
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		input:    cmd.InOrStdin(),
		output:   cmd.OutOrStdout(),
	}
}

// SelectCheckpoint shows a picker and returns the id of the chosen checkpoint.
func (t *TUI) SelectCheckpoint(ctx context.Context, checkpoints []m.Checkpoint) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(checkpoints) == 0 {
		return "", ErrNoSelection
	}

	model := newCheckpointPickerModel(checkpoints)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("checkpoint picker: %w", err)
	}

	picked, ok := final.(checkpointPickerModel)
	if !ok || picked.chosen == "" {
		return "", ErrNoSelection
	}

	return picked.chosen, nil
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "restore")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
}

func (k pickerKeyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Choose, k.Quit}
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}

	return strings.Join(parts, " | ")
}

// checkpointPickerModel lists checkpoints newest first and lets the user pick one.
type checkpointPickerModel struct {
	checkpoints []m.Checkpoint
	cursor      int
	offset      int
	height      int
	width       int
	chosen      string
	quitting    bool
}

func newCheckpointPickerModel(checkpoints []m.Checkpoint) checkpointPickerModel {
	return checkpointPickerModel{checkpoints: checkpoints}
}

func (pm checkpointPickerModel) Init() tea.Cmd {
	return nil
}

func (pm checkpointPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm.scrolled(), nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm checkpointPickerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(pm.checkpoints) - 1

	switch {
	case key.Matches(msg, pickerKeys.Quit):
		pm.quitting = true
		return pm, tea.Quit

	case key.Matches(msg, pickerKeys.Choose):
		if last >= 0 {
			pm.chosen = pm.checkpoints[pm.cursor].ID
		}

		return pm, tea.Quit

	case key.Matches(msg, pickerKeys.Up):
		if pm.cursor > 0 {
			pm.cursor--
		}

	case key.Matches(msg, pickerKeys.Down):
		if pm.cursor < last {
			pm.cursor++
		}

	case key.Matches(msg, pickerKeys.Top):
		pm.cursor = 0

	case key.Matches(msg, pickerKeys.Bottom):
		pm.cursor = max(last, 0)
	}

	return pm.scrolled(), nil
}

// itemsPerPage calculates how many checkpoints fit on screen.
func (pm checkpointPickerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	// title, blank line, blank line, help
	available := pm.height - 4
	if available < 1 {
		return 1
	}

	return available
}

// scrolled keeps the cursor inside the visible window.
func (pm checkpointPickerModel) scrolled() checkpointPickerModel {
	perPage := pm.itemsPerPage()

	if pm.cursor < pm.offset {
		pm.offset = pm.cursor
	}

	if pm.cursor >= pm.offset+perPage {
		pm.offset = pm.cursor - perPage + 1
	}

	return pm
}

func (pm checkpointPickerModel) View() string {
	if pm.quitting || pm.chosen != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Select a checkpoint to restore"))
	b.WriteString("\n\n")

	end := min(pm.offset+pm.itemsPerPage(), len(pm.checkpoints))

	for i := pm.offset; i < end; i++ {
		cp := pm.checkpoints[i]
		line := fmt.Sprintf("%s  %s  %d file(s)  %s", cp.ID, cp.Date, cp.FilesCount, describeOptions(cp.Options))

		if i == pm.cursor {
			b.WriteString(cursorStyle.Render(selectedGlyph + " " + line))
		} else {
			b.WriteString("  " + dimStyle.Render(line))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(pickerKeys.help()))
	b.WriteString("\n")

	return b.String()
}
