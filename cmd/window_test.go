package cmd

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/services"
)

type recordingConvert struct {
	calls []services.ConvertRequest
	resp  *services.ConvertResponse
	err   error
}

func (r *recordingConvert) run(ctx context.Context, req services.ConvertRequest) (*services.ConvertResponse, error) {
	r.calls = append(r.calls, req)
	return r.resp, r.err
}

func newTestWindow(conv *recordingConvert) windowModel {
	prefs := domain.Preferences{InputPath: "Assets/Textures", OutputPath: "Assets/Materials"}
	return newWindowModel(context.Background(), prefs, conv.run)
}

func sendKey(t *testing.T, m windowModel, msg tea.KeyMsg) (windowModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(windowModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return wm, cmd
}

// TestWindowModelInitialization checks the fields start from the stored preferences
func TestWindowModelInitialization(t *testing.T) {
	m := newTestWindow(&recordingConvert{})

	if m.focus != fieldInput {
		t.Errorf("Expected focus on input field, got %v", m.focus)
	}
	if got := m.inputs[fieldInput].Value(); got != "Assets/Textures" {
		t.Errorf("Expected input path Assets/Textures, got %q", got)
	}
	if got := m.inputs[fieldOutput].Value(); got != "Assets/Materials" {
		t.Errorf("Expected output path Assets/Materials, got %q", got)
	}
	if m.running {
		t.Error("Expected no conversion running initially")
	}
}

// TestWindowFocusCycle checks tab and shift+tab wrap around the three fields
func TestWindowFocusCycle(t *testing.T) {
	m := newTestWindow(&recordingConvert{})

	tests := []struct {
		msg  tea.KeyMsg
		want windowField
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, fieldOutput},
		{tea.KeyMsg{Type: tea.KeyTab}, fieldConvert},
		{tea.KeyMsg{Type: tea.KeyTab}, fieldInput},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, fieldConvert},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, fieldOutput},
	}

	for i, tt := range tests {
		m, _ = sendKey(t, m, tt.msg)
		if m.focus != tt.want {
			t.Fatalf("step %d: expected focus %v, got %v", i, tt.want, m.focus)
		}
		if m.focus != fieldConvert && !m.inputs[m.focus].Focused() {
			t.Errorf("step %d: text input not focused", i)
		}
	}
}

// TestWindowTyping checks keystrokes reach the focused field only
func TestWindowTyping(t *testing.T) {
	m := newTestWindow(&recordingConvert{})

	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/Rocks")})

	if got := m.inputs[fieldInput].Value(); got != "Assets/Textures/Rocks" {
		t.Errorf("Expected typed text appended, got %q", got)
	}
	if got := m.inputs[fieldOutput].Value(); got != "Assets/Materials" {
		t.Errorf("Output field changed to %q", got)
	}
}

// TestWindowConvertButton checks enter on the button runs one pass with the field values
func TestWindowConvertButton(t *testing.T) {
	conv := &recordingConvert{resp: &services.ConvertResponse{
		Grouping: &services.GroupResponse{Groups: domain.TextureSet{}, Files: 2},
		Assembly: &services.AssembleResponse{Created: []domain.CreatedMaterial{
			{Key: "Rock", Path: "Assets/Materials/Rock.mat"},
		}},
	}}
	m := newTestWindow(conv)

	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.running {
		t.Fatal("Expected conversion to be running")
	}
	if cmd == nil {
		t.Fatal("Expected a command to run the conversion")
	}
	if !strings.Contains(m.View(), "Converting") {
		t.Error("Expected running status in view")
	}

	// A second trigger while running is ignored
	m, again := sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if again != nil {
		t.Error("Expected no second conversion while running")
	}

	msg := cmd()
	done, ok := msg.(conversionDoneMsg)
	if !ok {
		t.Fatalf("Expected conversionDoneMsg, got %T", msg)
	}
	if len(conv.calls) != 1 {
		t.Fatalf("Expected 1 conversion, got %d", len(conv.calls))
	}
	if conv.calls[0].InputDir != "Assets/Textures" || conv.calls[0].OutputDir != "Assets/Materials" {
		t.Errorf("Unexpected request: %+v", conv.calls[0])
	}

	next, _ := m.Update(done)
	m = next.(windowModel)
	if m.running {
		t.Error("Expected conversion to be finished")
	}
	view := m.View()
	if !strings.Contains(view, "Material created at Assets/Materials/Rock.mat") {
		t.Errorf("Expected created material in view:\n%s", view)
	}
	if !strings.Contains(view, "Created 1 materials") {
		t.Errorf("Expected summary in view:\n%s", view)
	}
}

// TestWindowConvertError checks a failed pass shows the error
func TestWindowConvertError(t *testing.T) {
	m := newTestWindow(&recordingConvert{})

	next, _ := m.Update(conversionDoneMsg{err: domain.ErrNotFound})
	m = next.(windowModel)

	if !strings.Contains(m.View(), "Folder not found") {
		t.Errorf("Expected error in view:\n%s", m.View())
	}
}

// TestWindowEnterOnFieldAdvances checks enter in a text field moves focus on
func TestWindowEnterOnFieldAdvances(t *testing.T) {
	conv := &recordingConvert{}
	m := newTestWindow(conv)

	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.focus != fieldOutput {
		t.Errorf("Expected focus on output field, got %v", m.focus)
	}
	if m.running {
		t.Error("Enter in a text field must not convert")
	}
	if len(conv.calls) != 0 {
		t.Error("Expected no conversion")
	}
}

// TestWindowQuit checks esc quits
func TestWindowQuit(t *testing.T) {
	m := newTestWindow(&recordingConvert{})

	_, cmd := sendKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

// TestWindowInfoBox checks the info box lists the recognised suffixes
func TestWindowInfoBox(t *testing.T) {
	view := newTestWindow(&recordingConvert{}).View()
	for _, suffix := range domain.Suffixes() {
		if !strings.Contains(view, suffix) {
			t.Errorf("Expected suffix %s in view", suffix)
		}
	}
}
