// Command dashboard is a reactive-menu demo: selection state is a
// plain int guarded by rebuild calls after every key that changes it,
// so the sidebar and content panes stay in sync with the highlighted
// item. The menu/content split and the Up/Down/Enter/q key handling
// mirror a typical flexbox sidebar-plus-content layout, but built here
// as plain document.Blocks with fixed widths and margins since
// document.Node has no Flex/Fixed sizing of its own.
package main

import (
	"bufio"
	"fmt"
	"os"

	"termdoc/ansi"
	"termdoc/config"
	"termdoc/document"
	"termdoc/inputevent"
	"termdoc/shell"
)

var menuItems = []string{"Dashboard", "Settings", "Logs", "Exit"}

func main() {
	cfg := config.Load()
	sh, err := shell.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dashboard:", err)
		os.Exit(1)
	}
	defer sh.Close()

	root := document.NewBlock()
	sidebar := document.NewBlock()
	sidebarWidth := 20
	sidebar.SetWidth(&sidebarWidth)
	sidebar.SetMargins(0, 1, 0, 0)

	content := document.NewBlock()
	content.SetMargins(sidebarWidth, 0, 0, 0)

	root.Attach(sidebar, -1)
	root.Attach(content, -1)
	sh.Doc.Attach(root)

	selected := 0
	rebuildSidebar(sidebar, selected)
	rebuildContent(content, selected)

	sh.Flush(false)

	parser := inputevent.Start(bufio.NewReader(os.Stdin))
	for e := range parser.Events() {
		switch e.Kind {
		case "interrupt":
			return
		case "cursor_up":
			if selected > 0 {
				selected--
				rebuildSidebar(sidebar, selected)
				rebuildContent(content, selected)
			}
		case "cursor_down":
			if selected < len(menuItems)-1 {
				selected++
				rebuildSidebar(sidebar, selected)
				rebuildContent(content, selected)
			}
		case "linefeed":
			if menuItems[selected] == "Exit" {
				return
			}
		case "draw":
			if r, ok := e.Args[0].(rune); ok && r == 'q' {
				return
			}
		case "function_key":
			if n, ok := e.Args[0].(int); ok && n == cfg.ForceRedrawKey {
				sh.Flush(false)
			}
		}
	}
}

func clearChildren(n *document.Node) {
	for _, c := range append([]*document.Node{}, n.Children()...) {
		n.Detach(c)
	}
}

func rebuildSidebar(sidebar *document.Node, selectedIdx int) {
	clearChildren(sidebar)

	header := document.NewStyle()
	header.SetBright(true)
	header.Attach(document.NewText("MENU"), -1)
	sidebar.Attach(header, -1)
	sidebar.Attach(document.NewNewline(), -1)
	sidebar.Attach(document.NewText("-------"), -1)
	sidebar.Attach(document.NewNewline(), -1)

	for i, item := range menuItems {
		label := "  " + item
		if i == selectedIdx {
			label = "> " + item
			style := document.NewStyle()
			cyan := ansi.ColorCyan
			style.SetColor(&cyan)
			style.Attach(document.NewText(label), -1)
			sidebar.Attach(style, -1)
		} else {
			sidebar.Attach(document.NewText(label), -1)
		}
		sidebar.Attach(document.NewNewline(), -1)
	}
}

func rebuildContent(content *document.Node, selectedIdx int) {
	clearChildren(content)

	item := menuItems[selectedIdx]
	title := document.NewStyle()
	title.SetBright(true)
	title.Attach(document.NewText("# "+item), -1)
	content.Attach(title, -1)
	content.Attach(document.NewNewline(), -1)
	content.Attach(document.NewNewline(), -1)
	content.Attach(document.NewText("Welcome to the admin panel."), -1)
	content.Attach(document.NewNewline(), -1)
	content.Attach(document.NewNewline(), -1)
	content.Attach(document.NewText("Stat 1: 100%    Stat 2: OK"), -1)
	content.Attach(document.NewNewline(), -1)
}
