package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(p Palette, s string) Palette {
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return p
}

func TestPaletteListsEveryHint(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p = typeInto(p, "qu")

	view := p.View()
	for _, h := range paletteHints {
		if !strings.Contains(view, h) {
			t.Fatalf("expected hint %q in view:\n%s", h, view)
		}
	}
}

func TestPaletteSubmitTrimsInput(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p = typeInto(p, "  task Buy milk ")

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() || cmd == nil {
		t.Fatal("expected enter to close the palette with a command")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "task Buy milk" {
		t.Fatalf("unexpected submit message %#v", cmd())
	}
	if p.View() != "" {
		t.Fatal("expected hidden palette to render nothing")
	}
}

func TestPaletteEscCancels(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() || cmd == nil {
		t.Fatal("expected esc to close the palette")
	}
	if _, ok := cmd().(PaletteCancelMsg); !ok {
		t.Fatal("expected cancel message")
	}
}
