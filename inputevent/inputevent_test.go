package inputevent

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"termdoc/document"
)

func collect(t *testing.T, p *Parser, n int) []document.Event {
	t.Helper()
	var events []document.Event
	for i := 0; i < n; i++ {
		select {
		case e, ok := <-p.Events():
			if !ok {
				t.Fatalf("events channel closed early, got %d of %d", len(events), n)
			}
			events = append(events, e)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i+1)
		}
	}
	return events
}

func TestDrawRegularCharacter(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("a"))
	p := Start(r)
	events := collect(t, p, 1)
	if events[0].Kind != "draw" || events[0].Args[0].(rune) != 'a' {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestLinefeedAndTabAndBackspace(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\r\t\x7f"))
	p := Start(r)
	events := collect(t, p, 3)
	want := []string{"linefeed", "tab", "backspace"}
	for i, k := range want {
		if events[i].Kind != k {
			t.Fatalf("event %d: got %q, want %q", i, events[i].Kind, k)
		}
	}
}

func TestArrowKeysViaCSI(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1b[A\x1b[B\x1b[C\x1b[D"))
	p := Start(r)
	events := collect(t, p, 4)
	want := []string{"cursor_up", "cursor_down", "cursor_forward", "cursor_back"}
	for i, k := range want {
		if events[i].Kind != k {
			t.Fatalf("event %d: got %q, want %q", i, events[i].Kind, k)
		}
	}
}

func TestFunctionKeyViaSS3(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1bOP"))
	p := Start(r)
	events := collect(t, p, 1)
	if events[0].Kind != "function_key" || events[0].Args[0].(int) != 1 {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestDeleteViaTildeSequence(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1b[3~"))
	p := Start(r)
	events := collect(t, p, 1)
	if events[0].Kind != "delete" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestBareEscapeAfterTimeout(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1b"))
	p := Start(r)
	events := collect(t, p, 1)
	if events[0].Kind != "escape" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestControlCharacterMapsToLetter(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(string(byte(0x18))))
	p := Start(r)
	events := collect(t, p, 1)
	if events[0].Kind != "control" || events[0].Args[0].(rune) != 'x' {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestInterruptByte(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(string(byte(0x03))))
	p := Start(r)
	events := collect(t, p, 1)
	if events[0].Kind != "interrupt" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestEOFClosesEventsChannel(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("a"))
	p := Start(r)
	collect(t, p, 1)
	select {
	case _, ok := <-p.Events():
		if ok {
			t.Fatalf("expected channel closed after EOF")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for channel close")
	}
}
