// Command markdown renders a markdown document to the terminal using
// the engine's own document tree, renderer, and screen compiler
// instead of printing the parsed tree directly — the same job the
// reference CLI did, retargeted at markup/render/screen. Usage mirrors
// the reference tool: an argument is treated as literal markdown text,
// otherwise stdin is read until EOF.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"termdoc/document"
	"termdoc/markup"
	"termdoc/render"
	"termdoc/tty"
)

func main() {
	input, err := readInput()
	if err != nil {
		fmt.Fprintln(os.Stderr, "markdown:", err)
		os.Exit(1)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "Usage: markdown <text> or pipe markdown on stdin")
		os.Exit(1)
	}

	width, height, err := tty.Size(os.Stdout)
	if err != nil || width == 0 {
		width, height = 80, 1000
	}

	doc := document.New(width, height)
	doc.Attach(markup.Parse(input))

	var r render.Renderer
	fmt.Print(r.Render(doc, 4, false))
	fmt.Println()
}

func readInput() (string, error) {
	if len(os.Args) > 1 {
		return strings.Join(os.Args[1:], " "), nil
	}

	info, err := os.Stdin.Stat()
	if err != nil || (info.Mode()&os.ModeCharDevice) != 0 {
		return "", nil
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
