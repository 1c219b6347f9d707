package tty

import (
	"io"
	"os"
	"testing"
)

func TestIsTerminalFalseForPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminal(r) {
		t.Fatalf("expected a pipe to not report as a terminal")
	}
}

func TestEnterLeaveAlternateScreenSequence(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	EnterAlternateScreen(w)
	LeaveAlternateScreen(w)
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	want := "\x1b[?1049h\x1b[?25l\x1b[?25h\x1b[?1049l"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRestoreNilStateIsNoop(t *testing.T) {
	if err := Restore(os.Stdin, nil); err != nil {
		t.Fatalf("expected nil state restore to be a no-op, got %v", err)
	}
}
