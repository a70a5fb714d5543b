package tui

import (
	"errors"
	"strings"
	"testing"

	"imginfo/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelTransitionsToDoneOnMetadata(t *testing.T) {
	model := NewModel(Config{Path: "/photos/a.jpg"})

	updated, _ := model.Update(MetadataReadyMsg{Meta: domain.Metadata{
		SizeBytes: 128,
		Width:     4,
		Height:    4,
		ColorType: domain.ColorRGB,
	}})
	m := updated.(Model)

	if m.Phase != PhaseDone {
		t.Fatalf("expected PhaseDone, got %d", m.Phase)
	}
	view := m.View()
	if !strings.Contains(view, "128 bytes") {
		t.Fatalf("expected size in view, got %q", view)
	}
	if !strings.Contains(view, "not available") {
		t.Fatalf("expected camera fallback in view, got %q", view)
	}
}

func TestModelTransitionsToErrorOnFailure(t *testing.T) {
	model := NewModel(Config{Path: "/photos/a.jpg"})

	updated, _ := model.Update(ErrorMsg{Err: errors.New("boom")})
	m := updated.(Model)

	if m.Phase != PhaseError {
		t.Fatalf("expected PhaseError, got %d", m.Phase)
	}
	if !strings.Contains(m.View(), "Extraction failed") {
		t.Fatalf("expected generic failure message in view")
	}
}

func TestModelQuitsOnQ(t *testing.T) {
	model := NewModel(Config{Path: "/photos/a.jpg"})

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m := updated.(Model)

	if !m.Quitting {
		t.Fatalf("expected quitting state")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
