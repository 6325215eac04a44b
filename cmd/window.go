package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/services"
	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

// windowCmd opens the interactive converter
var windowCmd = &cobra.Command{
	Use:     "window",
	Aliases: []string{"ui"},
	Short:   "Open the interactive converter (alias: ui)",
	Long: `Open a small form with the input and output folders and a convert button.

Keyboard Shortcuts:
  Tab / ↓      Next field
  Shift+Tab / ↑ Previous field
  Enter        Convert (on the button) / next field
  Ctrl+S       Convert from any field
  Esc / Ctrl+C Quit

The folders are remembered between runs. The window does not accept a second
conversion while one is running.`,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	// Load the last-used paths, the way the window restores them when it opens
	prefs, err := preferencesService.Load(ctx)
	if err != nil {
		appLogger.Warn("using default paths", "err", err)
	}

	m := newWindowModel(ctx, prefs, convertService.Execute)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running window: %w", err)
	}
	return nil
}

// convertFunc runs one conversion pass
type convertFunc func(ctx context.Context, req services.ConvertRequest) (*services.ConvertResponse, error)

type windowField int

const (
	fieldInput windowField = iota
	fieldOutput
	fieldConvert
	fieldCount
)

type conversionDoneMsg struct {
	resp *services.ConvertResponse
	err  error
}

type windowKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Enter   key.Binding
	Convert key.Binding
	Quit    key.Binding
}

func (k windowKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Convert, k.Quit}
}

func (k windowKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Enter, k.Convert, k.Quit}}
}

var windowKeys = windowKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Convert: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "convert"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

type windowModel struct {
	ctx     context.Context
	convert convertFunc
	inputs  []textinput.Model
	focus   windowField
	running bool
	result  *services.ConvertResponse
	err     error
	help    help.Model
	keys    windowKeyMap
	width   int
}

func newWindowModel(ctx context.Context, prefs domain.Preferences, convert convertFunc) windowModel {
	labels := []string{"Input Folder Path:  ", "Output Folder Path: "}
	values := []string{prefs.InputPath, prefs.OutputPath}

	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = labels[i]
		ti.CharLimit = 512
		ti.Width = 60
		ti.SetValue(values[i])
		inputs[i] = ti
	}
	inputs[fieldInput].Focus()

	return windowModel{
		ctx:     ctx,
		convert: convert,
		inputs:  inputs,
		focus:   fieldInput,
		help:    help.New(),
		keys:    windowKeys,
	}
}

func (m windowModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m windowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case conversionDoneMsg:
		m.running = false
		m.result = msg.resp
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Convert):
			return m.trigger()
		case key.Matches(msg, m.keys.Next):
			return m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case key.Matches(msg, m.keys.Enter):
			if m.focus == fieldConvert {
				return m.trigger()
			}
			return m.setFocus(m.focus + 1)
		}
	}

	if m.focus == fieldConvert {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves focus to field, focusing or blurring the text inputs
func (m windowModel) setFocus(field windowField) (tea.Model, tea.Cmd) {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if windowField(i) == field {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

// request builds the conversion request from the fields
func (m windowModel) request() services.ConvertRequest {
	return services.ConvertRequest{
		InputDir:  strings.TrimSpace(m.inputs[fieldInput].Value()),
		OutputDir: strings.TrimSpace(m.inputs[fieldOutput].Value()),
	}
}

// trigger starts a pass unless one is already running
func (m windowModel) trigger() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	m.running = true
	m.result = nil
	m.err = nil

	ctx, convert, req := m.ctx, m.convert, m.request()
	return m, func() tea.Msg {
		resp, err := convert(ctx, req)
		return conversionDoneMsg{resp: resp, err: err}
	}
}

var (
	windowInfoStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorInfo).
			Padding(0, 1)
	windowButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Border(lipgloss.NormalBorder())
)

func (m windowModel) View() string {
	var b strings.Builder

	b.WriteString(ui.StyleHeader.Render("Select Folders for Conversion"))
	b.WriteString("\n\n")

	info := "Select a folder with textures to convert and a folder to save the materials to. " +
		"The texture file names should end with " + suffixList() + " to be recognized."
	width := 70
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}
	b.WriteString(windowInfoStyle.Width(width).Render(ui.IconInfo + " " + info))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := windowButtonStyle
	if m.focus == fieldConvert {
		button = button.BorderForeground(ui.ColorPrimary).Foreground(ui.ColorPrimary).Bold(true)
	} else {
		button = button.BorderForeground(ui.ColorMuted)
	}
	b.WriteString(button.Render("Convert Textures to Materials"))
	b.WriteString("\n\n")

	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// statusView summarises the running or finished pass
func (m windowModel) statusView() string {
	if m.running {
		return ui.FormatInfo("Converting...") + "\n"
	}

	var b strings.Builder
	if m.result != nil && m.result.Grouping != nil {
		g := m.result.Grouping
		b.WriteString(ui.FormatInfo(fmt.Sprintf("%d textures, %d groups, %d skipped",
			g.Files, len(g.Groups), len(g.Skipped))))
		b.WriteString("\n")
	}
	for _, created := range m.result.Created() {
		b.WriteString(ui.FormatMaterial("Material created at " + created.Path))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(ui.FormatError(describeError(m.err)))
		b.WriteString("\n")
	} else if m.result != nil {
		b.WriteString(ui.FormatSuccess(fmt.Sprintf("Created %d materials", len(m.result.Created()))))
		b.WriteString("\n")
	}
	return b.String()
}
