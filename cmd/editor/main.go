// Command editor is a minimal line editor exercising the full engine:
// shell lifecycle, inputevent parsing, and direct document mutation
// from keystrokes. Its structure (gutter/editor/modeline blocks, the
// "current text node" insertion cursor, scroll-driven gutter
// relabeling) is ported from the reference View/TestView classes in
// main.py, rewritten against document.Node instead of in-place Python
// attribute mutation.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"termdoc/ansi"
	"termdoc/config"
	"termdoc/document"
	"termdoc/inputevent"
	"termdoc/shell"
)

type view struct {
	doc     *document.Document
	block   *document.Node
	gutter  *document.Node
	editor  *document.Node
	bottom  *document.Node
	current *document.Node
	scroll  int
}

func newView(doc *document.Document) *view {
	v := &view{doc: doc, scroll: 1}

	v.block = document.NewBlock()
	v.gutter = document.NewBlock()
	v.editor = document.NewBlock()
	v.bottom = document.NewBlock()

	v.block.Attach(v.gutter, -1)
	v.block.Attach(v.editor, -1)
	v.block.Attach(v.bottom, -1)

	v.editor.SetMargins(6, 0, 0, 1)
	v.gutter.SetMargins(0, 0, 0, 1)

	v.bottom.SetAbsolute(true)
	one := 1
	v.bottom.SetHeight(&one)
	v.bottom.SetPosition(0, doc.Height)
	v.bottom.Attach(document.NewText("    termdoc editor — ^C to quit"), -1)

	doc.Attach(v.block)

	v.current = document.NewText("")
	v.editor.Attach(v.current, -1)

	v.updateGutter(v.scroll)
	return v
}

func (v *view) updateGutter(start int) {
	digits := len(strconv.Itoa(v.doc.Height+1+start)) + 1
	width := digits + 1
	v.gutter.SetWidth(&width)
	left := digits + 2
	v.editor.SetMargins(left, 0, 0, 1)

	for _, c := range append([]*document.Node{}, v.gutter.Children()...) {
		v.gutter.Detach(c)
	}

	style := document.NewStyle()
	white, black := ansi.ColorWhite, ansi.ColorBlack
	style.SetBgColor(&white)
	style.SetColor(&black)
	for i := 0; i < v.doc.Height; i++ {
		label := fmt.Sprintf("%*d ", digits, start+i)
		style.Attach(document.NewText(label), -1)
		style.Attach(document.NewNewline(), -1)
	}
	v.gutter.Attach(style, -1)
}

func (v *view) updateModeline(text string) {
	for _, c := range append([]*document.Node{}, v.bottom.Children()...) {
		v.bottom.Detach(c)
	}
	v.bottom.Attach(document.NewText(text), -1)
}

func (v *view) handle(e document.Event) {
	switch e.Kind {
	case "draw":
		r := e.Args[0].(rune)
		v.current.SetContent(v.current.Content() + string(r))
		if r == ' ' {
			v.current = document.NewText("")
			v.editor.Attach(v.current, -1)
		}
	case "backspace":
		if v.current.Content() == "" {
			v.editor.Detach(v.current)
			v.popCurrent()
		} else {
			v.current.SetContent(v.current.Content()[:len(v.current.Content())-1])
		}
	case "linefeed":
		v.editor.Attach(document.NewNewline(), -1)
		v.current = document.NewText("")
		v.editor.Attach(v.current, -1)
	case "tab":
		v.editor.Attach(document.NewTab(), -1)
		v.current = document.NewText("")
		v.editor.Attach(v.current, -1)
	case "cursor_down":
		v.scroll++
		v.updateGutter(v.scroll)
	case "cursor_up":
		v.scroll--
		if v.scroll < 1 {
			v.scroll = 1
		}
		v.updateGutter(v.scroll)
	case "resize":
		v.bottom.SetPosition(0, v.doc.Height)
		v.updateGutter(v.scroll)
		v.updateModeline("    Resizing...")
	}
}

func (v *view) popCurrent() {
	for {
		kids := v.editor.Children()
		if len(kids) == 0 {
			v.current = document.NewText("")
			v.editor.Attach(v.current, -1)
			return
		}
		last := kids[len(kids)-1]
		if last.Kind() == document.KindText {
			v.current = last
			return
		}
		v.editor.Detach(last)
	}
}

func main() {
	cfg := config.Load()
	sh, err := shell.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "editor:", err)
		os.Exit(1)
	}
	defer sh.Close()

	v := newView(sh.Doc)
	sh.Doc.AttachEvent(v.handle)
	sh.Flush(false)

	parser := inputevent.Start(bufio.NewReader(os.Stdin))
	for e := range parser.Events() {
		switch {
		case e.Kind == "interrupt":
			return
		case e.Kind == "function_key":
			if n, ok := e.Args[0].(int); ok && n == cfg.ForceRedrawKey {
				sh.Flush(false)
			}
		}
		sh.Doc.Event(e)
	}
}
