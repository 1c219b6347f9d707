// Package shell owns the document, the renderer, and the terminal
// lifecycle around them: raw-mode setup/teardown, the alternate screen,
// and the SIGWINCH/SIGCONT handling the reference System class wires
// up in setup_signal. It gives the otherwise-library-only engine a
// runnable top: same role as NewScreen/Close in the reference screen.go,
// generalized from a fixed Cell buffer to document.Document +
// render.Renderer.
package shell

import (
	"bufio"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"termdoc/config"
	"termdoc/document"
	"termdoc/render"
	"termdoc/tty"
)

// Shell wires a Document to a terminal: it owns the write side (stdout,
// raw mode, alternate screen) and reacts to the document's own update
// hook by re-rendering once per hook call.
type Shell struct {
	Doc      *document.Document
	Renderer render.Renderer
	Config   config.Config

	out      *bufio.Writer
	oldState *tty.State

	resizeCh chan os.Signal
	contCh   chan os.Signal
	done     chan struct{}

	closeOnce sync.Once
	mu        sync.Mutex

	pendingRender bool
	flushing      bool
}

// New creates a Shell sized to the current terminal, attaches raw mode
// and the alternate screen, and wires the resize/continue signal
// handlers. Callers must call Close when done.
func New(cfg config.Config) (*Shell, error) {
	w, h, err := tty.Size(os.Stdout)
	if err != nil {
		w, h = 80, 24
	}

	doc := document.New(w, h)

	sh := &Shell{
		Doc:    doc,
		Config: cfg,
		out:    bufio.NewWriterSize(os.Stdout, 64*1024),
		done:   make(chan struct{}),
	}

	if state, err := tty.Enable(os.Stdin); err == nil {
		sh.oldState = state
	}

	tty.EnterAlternateScreen(os.Stdout)

	doc.SetUpdateHook(sh.updateHook)

	sh.resizeCh = make(chan os.Signal, 1)
	signal.Notify(sh.resizeCh, syscall.SIGWINCH)
	sh.contCh = make(chan os.Signal, 1)
	signal.Notify(sh.contCh, syscall.SIGCONT)
	go sh.signalLoop()

	return sh, nil
}

// updateHook is the Document's single mutation callback. Each call
// renders immediately; a call that arrives while a flush is marked in
// progress only records a pending render, which flushImpl runs as one
// follow-up differential render when the current one finishes.
func (sh *Shell) updateHook(origin *document.Node) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.flushing {
		sh.pendingRender = true
		return
	}
	sh.flushImpl(true)
}

// Flush forces a render outside of the update-hook path — used for the
// first paint, for forced full repaints, and after a resize.
func (sh *Shell) Flush(differential bool) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.flushImpl(differential)
}

func (sh *Shell) flushImpl(differential bool) {
	sh.flushing = true
	defer func() { sh.flushing = false }()

	for {
		cmds := sh.Renderer.Render(sh.Doc, sh.Config.Tabstop, differential)
		sh.out.WriteString(cmds)
		sh.out.Flush()

		if !sh.pendingRender {
			return
		}
		sh.pendingRender = false
		differential = true
	}
}

func (sh *Shell) signalLoop() {
	for {
		select {
		case <-sh.done:
			return
		case <-sh.resizeCh:
			sh.handleResize()
		case <-sh.contCh:
			sh.handleContinue()
		}
	}
}

// handleResize mirrors System.rescale: update the document's
// dimensions, dispatch a "resize" event so listeners can react, and
// force a full (non-differential) repaint since the terminal cleared
// its own notion of the screen.
func (sh *Shell) handleResize() {
	w, h, err := tty.Size(os.Stdout)
	if err != nil {
		return
	}
	sh.Doc.SetDimensions(w, h)
	sh.Doc.Event(document.Event{Kind: "resize", Args: []interface{}{w, h}})
	sh.Flush(false)
}

// handleContinue mirrors System.restore: a SIGCONT after suspend means
// another process may have reset the terminal mode and repainted over
// our alternate screen, so put stdin back into raw mode, re-enter the
// alternate screen, and force a full repaint. The state saved by New
// is kept for Close to restore.
func (sh *Shell) handleContinue() {
	if state, err := tty.Enable(os.Stdin); err == nil && sh.oldState == nil {
		sh.oldState = state
	}
	tty.EnterAlternateScreen(os.Stdout)
	sh.handleResize()
}

// Close restores the terminal: leaves the alternate screen, restores
// raw mode, and stops the signal listeners. Safe to call more than
// once; only the first call has effect.
func (sh *Shell) Close() {
	sh.closeOnce.Do(func() {
		signal.Stop(sh.resizeCh)
		signal.Stop(sh.contCh)
		close(sh.done)

		tty.LeaveAlternateScreen(os.Stdout)
		sh.out.Flush()

		if sh.oldState != nil {
			tty.Restore(os.Stdin, sh.oldState)
		}
	})
}
