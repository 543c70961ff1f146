package playground

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/humanfmt/foundation/utils/timex"
)

func newTestModel() Model {
	return NewModel(Config{
		Converter: timex.NewConverter(timex.WithPreset("date", "YYYY-MM-DD")),
		Timestamp: "2024-01-15T10:30:45.123456-08:00",
		Format:    "YYYY-MM-DD HH:MI:SS",
		NumberA:   "1234567890",
		NumberB:   "1234000000",
	})
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	if m.Focused() != FieldTimestamp {
		t.Errorf("Focused() = %v, want FieldTimestamp", m.Focused())
	}
	if m.Value(FieldNumberA) != "1234567890" {
		t.Errorf("Value(FieldNumberA) = %q", m.Value(FieldNumberA))
	}

	empty := NewModel(Config{})
	if empty.converter == nil {
		t.Error("NewModel() should fall back to a default converter")
	}
}

func TestFocusCycling(t *testing.T) {
	m := newTestModel()

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != FieldTemplate {
		t.Errorf("after tab Focused() = %v, want FieldTemplate", m.Focused())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focused() != FieldNumberB {
		t.Errorf("after wrap-around Focused() = %v, want FieldNumberB", m.Focused())
	}

	for i := 0; i < int(fieldCount); i++ {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.Focused() != FieldNumberB {
		t.Errorf("full cycle should return to FieldNumberB, got %v", m.Focused())
	}
}

func TestTypingGoesToFocusedField(t *testing.T) {
	m := NewModel(Config{})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("YYYY")})

	if m.Value(FieldTemplate) != "YYYY" {
		t.Errorf("Value(FieldTemplate) = %q, want %q", m.Value(FieldTemplate), "YYYY")
	}
	if m.Value(FieldTimestamp) != "" {
		t.Errorf("Value(FieldTimestamp) = %q, want empty", m.Value(FieldTimestamp))
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := update(newTestModel(), tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v should return a command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v should quit", key)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		timestamp  string
		format     string
		a, b       string
		wantResult string
		wantPlan   string
		wantDiff   string
		wantTSErr  bool
		wantNumErr bool
	}{
		{
			name:       "template",
			timestamp:  "2024-01-15T10:30:45.123456-08:00",
			format:     "YYYY-MM-DD HH:MI:SS",
			a:          "1234567890",
			b:          "1234000000",
			wantResult: "2024-01-15 10:30:45",
			wantPlan:   "(plain)",
			wantDiff:   "0.00B",
		},
		{
			name:       "preset",
			timestamp:  "2024-01-15T10:30:45+00:00",
			format:     "date",
			wantResult: "2024-01-15",
			wantPlan:   `"YYYY-MM-DD"`,
		},
		{
			name:       "named format",
			timestamp:  "2024-01-15T10:30:45+00:00",
			format:     "epoch_sec",
			wantResult: "1705314645",
			wantPlan:   "named format",
		},
		{
			name:      "bad timestamp",
			timestamp: "yesterday",
			format:    "YYYY",
			wantTSErr: true,
		},
		{
			name:       "bad number",
			a:          "12abc",
			wantNumErr: true,
		},
		{
			name:     "grouped numbers",
			a:        "5,000,000,000",
			b:        "4_500_000_000",
			wantDiff: "0.50B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(Config{
				Converter: timex.NewConverter(timex.WithPreset("date", "YYYY-MM-DD")),
				Timestamp: tt.timestamp,
				Format:    tt.format,
				NumberA:   tt.a,
				NumberB:   tt.b,
			})
			ev := m.Evaluate()

			if ev.Result != tt.wantResult {
				t.Errorf("Result = %q, want %q", ev.Result, tt.wantResult)
			}
			if !strings.Contains(ev.Plan, tt.wantPlan) {
				t.Errorf("Plan = %q, want it to contain %q", ev.Plan, tt.wantPlan)
			}
			if ev.Difference != tt.wantDiff {
				t.Errorf("Difference = %q, want %q", ev.Difference, tt.wantDiff)
			}
			if (ev.TimestampErr != nil) != tt.wantTSErr {
				t.Errorf("TimestampErr = %v, wantErr %v", ev.TimestampErr, tt.wantTSErr)
			}
			if (ev.NumberErr != nil) != tt.wantNumErr {
				t.Errorf("NumberErr = %v, wantErr %v", ev.NumberErr, tt.wantNumErr)
			}
		})
	}
}

func TestView(t *testing.T) {
	view := newTestModel().View()

	for _, want := range []string{"humanfmt playground", "Timestamp", "2024-01-15 10:30:45", "1.23B", "0.00B"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m := newTestModel()
	m.SetValue(FieldTimestamp, "not a time")
	if !strings.Contains(m.View(), "could not parse timestamp") {
		t.Error("View() should show the parse error")
	}
}

func TestConfigReload(t *testing.T) {
	m := newTestModel()
	m.SetValue(FieldTemplate, "short")

	reloaded := timex.NewConverter(timex.WithPreset("short", "DD.MM."))
	m, _ = update(m, configReloadedMsg{converter: reloaded})

	if m.Status() != "config reloaded" {
		t.Errorf("Status() = %q", m.Status())
	}
	if got := m.Evaluate().Result; got != "15.01." {
		t.Errorf("Result after reload = %q, want %q", got, "15.01.")
	}

	m, _ = update(m, configReloadedMsg{err: errors.New("broken toml")})
	if !strings.Contains(m.Status(), "broken toml") {
		t.Errorf("Status() = %q, want the reload error", m.Status())
	}
	if got := m.Evaluate().Result; got != "15.01." {
		t.Errorf("failed reload should keep the previous converter, got %q", got)
	}
}

func TestReloadConverterCommand(t *testing.T) {
	called := false
	cmd := reloadConverter(func() (*timex.Converter, error) {
		called = true
		return timex.NewConverter(), nil
	})

	msg, ok := cmd().(configReloadedMsg)
	if !ok || !called {
		t.Fatalf("reloadConverter() = %T, want configReloadedMsg", msg)
	}
	if msg.converter == nil || msg.err != nil {
		t.Errorf("unexpected reload result %+v", msg)
	}

	if reloadConverter(nil)() != nil {
		t.Error("reloadConverter(nil) should produce no message")
	}
}

func TestWaitForChange(t *testing.T) {
	changes := make(chan struct{}, 1)
	changes <- struct{}{}

	if _, ok := waitForChange(changes)().(configChangedMsg); !ok {
		t.Error("waitForChange() should report a change")
	}

	close(changes)
	if waitForChange(changes)() != nil {
		t.Error("waitForChange() on a closed channel should produce no message")
	}
}
