package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", got)
	}

	// Out of bounds is silently ignored on write and blank on read
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '█', ColorCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 1) = %+v, expected cyan block", cell)
	}

	// Clear resets both rune and color
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(1, 1) = %+v, expected blank default", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText misplaced: row = %q", s.Row(1))
	}

	// Clipped at the right edge without panicking
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Errorf("DrawText clipping failed: row = %q", s.Row(0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(2, 2, 'x', ColorRed)

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 2)
	if cell.Rune != 'x' || cell.Color != ColorRed {
		t.Errorf("Resize lost content: GetCell(2, 2) = %+v", cell)
	}

	// Shrinking clips without panicking
	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("after shrink, Get(2, 2) = %q, expected 'x'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "ab  " {
		t.Errorf("first line = %q, expected %q", lines[0], "ab  ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Errorf("box corners wrong: row = %q", s.Row(1))
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("box corners wrong: row = %q", s.Row(4))
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges wrong")
	}
}
