package lampboard

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/varalys/maschine/internal/settings"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(settings.Default())
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func typeRunes(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func TestUpdate_TypingEnciphers(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(m, "aa")
	m = typeRunes(m, "A-A")

	if m.Input() != "AAAA" {
		t.Errorf("expected input AAAA, got %q", m.Input())
	}
	if m.Output() != "BVNW" {
		t.Errorf("expected output BVNW, got %q", m.Output())
	}
	if m.Lit() != 'W' {
		t.Errorf("expected lamp W lit, got %q", m.Lit())
	}
	if m.machine.Windows() != "EAA" {
		t.Errorf("expected windows EAA, got %q", m.machine.Windows())
	}
}

func TestUpdate_IgnoresNonASCII(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(m, "ü")
	if m.Output() != "" || m.machine.Rotor(0).Steps() != 0 {
		t.Errorf("non-ASCII key must not step rotors")
	}
}

func TestUpdate_Reset(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(m, "AAAA")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)
	if m.Output() != "" || m.Lit() != 0 {
		t.Errorf("expected cleared state after reset")
	}
	m = typeRunes(m, "AAAA")
	if m.Output() != "BVNW" {
		t.Errorf("expected machine back at start, got %q", m.Output())
	}
}

func TestUpdate_Copy(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	m = typeRunes(m, "ABCDEFGHI")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(Model)
	if copied != "BLBC CQNJ Z" {
		t.Errorf("unexpected clipboard content %q", copied)
	}
	if !strings.Contains(m.status, "copied") {
		t.Errorf("expected copy status, got %q", m.status)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(Model)
	if !strings.Contains(m.status, "no clipboard") {
		t.Errorf("expected copy failure status, got %q", m.status)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}

func TestView_Rendering(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(m, "AAAA")
	out := m.View()
	for _, want := range []string{"maschine", "Rotors: I II III", "BVNW", "AAAA", "Q", "esc: quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
