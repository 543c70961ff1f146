// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     playground
// Description: Interactive TUI for trying timestamp templates and compact
//              number formatting
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package playground

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	fconfig "github.com/msto63/humanfmt/foundation/core/config"
	"github.com/msto63/humanfmt/foundation/utils/mathx"
	"github.com/msto63/humanfmt/foundation/utils/timex"
	"github.com/msto63/humanfmt/pkg/core/logging"
)

// Field identifies one of the input fields
type Field int

const (
	FieldTimestamp Field = iota
	FieldTemplate
	FieldNumberA
	FieldNumberB
	fieldCount
)

var fieldLabels = [fieldCount]string{"Timestamp", "Format", "Number A", "Number B"}

// Config configures the playground
type Config struct {
	Converter *timex.Converter

	// Initial field values
	Timestamp string
	Format    string
	NumberA   string
	NumberB   string

	// ConfigPath is watched for changes when set; Reload rebuilds the
	// converter after a change.
	ConfigPath string
	Reload     func() (*timex.Converter, error)

	Logger *logging.Logger
}

// Evaluation is everything the view shows for the current inputs
type Evaluation struct {
	Plan         string
	Result       string
	TimestampErr error

	NumberA    string
	NumberB    string
	Difference string
	NumberErr  error
}

// Model is the playground state
type Model struct {
	inputs    [fieldCount]textinput.Model
	focus     Field
	converter *timex.Converter
	reload    func() (*timex.Converter, error)
	changes   chan struct{}
	status    string
	logger    *logging.Logger
	width     int
	height    int
}

// NewModel creates a playground model
func NewModel(cfg Config) Model {
	converter := cfg.Converter
	if converter == nil {
		converter = timex.NewConverter()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Wrap(nil, "playground")
	}

	values := [fieldCount]string{cfg.Timestamp, cfg.Format, cfg.NumberA, cfg.NumberB}
	placeholders := [fieldCount]string{
		"2024-01-15T10:30:45.123456-08:00",
		"YYYY-MM-DDTHH:MI:SS.nnnnnnnnnZ",
		"1234567890",
		"1234000000",
	}

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 128
		input.Width = 48
		input.SetValue(values[i])
		inputs[i] = input
	}
	inputs[FieldTimestamp].Focus()

	return Model{
		inputs:    inputs,
		focus:     FieldTimestamp,
		converter: converter,
		reload:    cfg.Reload,
		logger:    logger,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down", "enter":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case configChangedMsg:
		return m, tea.Batch(reloadConverter(m.reload), waitForChange(m.changes))

	case configReloadedMsg:
		if msg.err != nil {
			m.status = "config reload failed: " + msg.err.Error()
			m.logger.Warn("config reload failed", "error", msg.err)
			return m, nil
		}
		m.converter = msg.converter
		m.status = "config reloaded"
		m.logger.Info("config reloaded", "presets", len(msg.converter.Presets()))
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// Focused returns the focused field
func (m Model) Focused() Field {
	return m.focus
}

// Value returns the current text of a field
func (m Model) Value(f Field) string {
	return m.inputs[f].Value()
}

// SetValue replaces the text of a field
func (m *Model) SetValue(f Field, value string) {
	m.inputs[f].SetValue(value)
}

// Status returns the last status line
func (m Model) Status() string {
	return m.status
}

func (m *Model) setFocus(f Field) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = f
	m.inputs[f].Focus()
}

// Evaluate converts the timestamp and formats the numbers for the current inputs
func (m Model) Evaluate() Evaluation {
	var ev Evaluation

	format := strings.TrimSpace(m.Value(FieldTemplate))
	if format != "" {
		if m.converter.IsNamed(format) {
			ev.Plan = fmt.Sprintf("named format %q", format)
		} else {
			ev.Plan = m.converter.Plan(format).String()
		}
	}

	if ts := strings.TrimSpace(m.Value(FieldTimestamp)); ts != "" && format != "" {
		ev.Result, ev.TimestampErr = m.converter.Convert(ts, format)
	}

	a, b := strings.TrimSpace(m.Value(FieldNumberA)), strings.TrimSpace(m.Value(FieldNumberB))
	var x1, x2 float64
	var err error
	if a != "" {
		if x1, err = mathx.ParseNumber(a); err != nil {
			ev.NumberErr = err
			return ev
		}
		ev.NumberA, _ = mathx.FormatNumber(x1)
	}
	if b != "" {
		if x2, err = mathx.ParseNumber(b); err != nil {
			ev.NumberErr = err
			return ev
		}
		ev.NumberB, _ = mathx.FormatNumber(x2)
	}
	if a != "" && b != "" {
		ev.Difference = mathx.FormatDifference(x1, x2)
	}

	return ev
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render("humanfmt playground"))
	b.WriteString("  ")
	b.WriteString(SubHeaderStyle.Render("timestamps and compact numbers"))
	b.WriteString("\n\n")

	var fields []string
	for i := range m.inputs {
		label := LabelStyle.Render(fieldLabels[i])
		if Field(i) == m.focus {
			label = FocusedLabelStyle.Render(fieldLabels[i])
		}
		fields = append(fields, label+m.inputs[i].View())
	}
	b.WriteString(FocusedPanelStyle.Render(strings.Join(fields, "\n")))
	b.WriteString("\n")

	ev := m.Evaluate()
	var lines []string

	if ev.Plan != "" {
		lines = append(lines, resultLine("Plan", PlanStyle.Render(ev.Plan)))
	}
	switch {
	case ev.TimestampErr != nil:
		lines = append(lines, resultLine("Result", ErrorStyle.Render(ev.TimestampErr.Error())))
	case ev.Result != "":
		lines = append(lines, resultLine("Result", ResultStyle.Render(ev.Result)))
	}

	if ev.NumberErr != nil {
		lines = append(lines, resultLine("Numbers", ErrorStyle.Render(ev.NumberErr.Error())))
	} else {
		if ev.NumberA != "" {
			lines = append(lines, resultLine("A", ResultStyle.Render(ev.NumberA)))
		}
		if ev.NumberB != "" {
			lines = append(lines, resultLine("B", ResultStyle.Render(ev.NumberB)))
		}
		if ev.Difference != "" {
			lines = append(lines, resultLine("Difference", DifferenceStyle.Render(ev.Difference)))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, HelpStyle.Render("type a timestamp and a format"))
	}
	b.WriteString(PanelStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render("tab/shift+tab: next/previous field • esc: quit"))

	return b.String()
}

func resultLine(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, ResultLabelStyle.Render(label), value)
}

// waitForChange blocks until the config watcher signals a change
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

func reloadConverter(reload func() (*timex.Converter, error)) tea.Cmd {
	return func() tea.Msg {
		if reload == nil {
			return nil
		}
		converter, err := reload()
		return configReloadedMsg{converter: converter, err: err}
	}
}

// Run starts the playground TUI. When cfg.ConfigPath is set the file is
// watched and presets are reloaded after every change.
func Run(cfg Config) error {
	m := NewModel(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.ConfigPath != "" && cfg.Reload != nil {
		changes := make(chan struct{}, 1)
		err := fconfig.Watch(ctx, cfg.ConfigPath, func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		if err != nil {
			m.logger.Warn("config watch disabled", "path", cfg.ConfigPath, "error", err)
		} else {
			m.changes = changes
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
