package screen

import (
	"testing"

	"termdoc/ansi"
)

func setChar(t *testing.T, b *Buffer, x, y int, ch rune) {
	t.Helper()
	r := ch
	if err := b.Set(x, y, &r, nil, nil, 0); err != nil {
		t.Fatalf("Set(%d,%d,%q): %v", x, y, ch, err)
	}
}

func TestEmptyDocumentFullCompile(t *testing.T) {
	b := NewBuffer(4, 3)
	got := b.Compile(nil)
	want := "\x1b[1;1H    \n    \n    "
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOutOfBounds(t *testing.T) {
	b := NewBuffer(2, 2)
	if _, err := b.Get(5, 0); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	r := 'x'
	if err := b.Set(0, 5, &r, nil, nil, 0); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestDifferentialSingleCellChange(t *testing.T) {
	a := NewBuffer(5, 1)
	b := NewBuffer(5, 1)
	setChar(t, b, 2, 0, 'Z')

	got := b.Compile(a)
	want := "\x1b[1;3HZ"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDifferentialShortRun(t *testing.T) {
	a := NewBuffer(10, 1)
	b := NewBuffer(10, 1)
	setChar(t, b, 0, 0, 'Z')
	setChar(t, b, 3, 0, 'Y')

	got := b.Compile(a)
	want := "\x1b[1;1HZ  Y"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDifferentialDimensionChangeForcesFullFrame(t *testing.T) {
	a := NewBuffer(5, 5)
	b := NewBuffer(6, 5)
	setChar(t, b, 0, 0, 'Z')

	want := "\x1b[1;1HZ     \n      \n      \n      \n      "
	got := b.Compile(a)
	if got != want {
		t.Fatalf("dimension mismatch should force full frame: got %q want %q", got, want)
	}
}

func TestStyleContextEmitsFgOnce(t *testing.T) {
	buf := NewBuffer(2, 1)
	r1, r2 := 'a', 'b'
	red := ansi.Fg(ansi.ColorRed, false)
	if err := buf.Set(0, 0, &r1, &red, nil, 0); err != nil {
		t.Fatal(err)
	}
	if err := buf.Set(1, 0, &r2, &red, nil, 0); err != nil {
		t.Fatal(err)
	}

	got := buf.Compile(nil)
	want := "\x1b[1;1H" + red + "ab"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestZIndexMergeRules(t *testing.T) {
	b := NewBuffer(1, 1)
	ch := 'a'
	fg := ansi.Fg(ansi.ColorRed, false)
	if err := b.Set(0, 0, &ch, &fg, nil, 5); err != nil {
		t.Fatal(err)
	}

	// Lower z-index write should not clobber an existing fg.
	ch2 := 'b'
	fg2 := ansi.Fg(ansi.ColorBlue, false)
	if err := b.Set(0, 0, &ch2, &fg2, nil, 0); err != nil {
		t.Fatal(err)
	}
	cell, _ := b.Get(0, 0)
	if cell.Fg != fg {
		t.Fatalf("lower z-index write should not override existing fg, got %q want %q", cell.Fg, fg)
	}
	// The char is kept too: the existing char ('a') is non-space, so the
	// low-z write does not override it.
	if cell.Char != 'a' {
		t.Fatalf("lower z-index write should not override a non-space char, got %q", cell.Char)
	}

	// Higher or equal z-index always overwrites.
	ch3 := 'c'
	if err := b.Set(0, 0, &ch3, &fg2, nil, 5); err != nil {
		t.Fatal(err)
	}
	cell, _ = b.Get(0, 0)
	if cell.Char != 'c' || cell.Fg != fg2 {
		t.Fatalf("equal z-index write should overwrite, got %+v", cell)
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	b := NewBuffer(4, 4)
	setChar(t, b, 0, 0, 'x')
	b.Resize(2, 2)
	if b.Width != 2 || b.Height != 2 {
		t.Fatalf("expected resized dims 2x2, got %dx%d", b.Width, b.Height)
	}
	cell, _ := b.Get(0, 0)
	if cell.Char != 'x' {
		t.Fatalf("expected resize to preserve overlapping content")
	}
}
