// Package ansi produces ECMA-48/ANSI escape sequences. It is a stateless
// set of pure functions and constants — no cursor position, no color
// state, no failure modes.
package ansi

import "strconv"

// Color names the 9 palette slots the engine understands. "default" maps
// to SGR index 9, matching Terminal.colors in the reference renderer.
type Color string

const (
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
	ColorDefault Color = "default"
)

var colorIndex = map[Color]int{
	ColorBlack:   0,
	ColorRed:     1,
	ColorGreen:   2,
	ColorYellow:  3,
	ColorBlue:    4,
	ColorMagenta: 5,
	ColorCyan:    6,
	ColorWhite:   7,
	ColorDefault: 9,
}

// Fixed escape sequences with no parameters.
const (
	FgDefault    = "\x1b[39m"
	BgDefault    = "\x1b[49m"
	CursorHide   = "\x1b[?25l"
	CursorShow   = "\x1b[?25h"
	AlternateOn  = "\x1b[?1049h"
	AlternateOff = "\x1b[?1049l"
	Clear        = "\x1b[2J"
)

// Reset returns the SGR sequence that clears all attributes.
func Reset() string {
	return sgr(0)
}

func sgr(n int) string {
	var b []byte
	b = append(b, '\x1b', '[')
	b = strconv.AppendInt(b, int64(n), 10)
	b = append(b, 'm')
	return string(b)
}

// Fg returns the SGR sequence selecting the given foreground color.
// bright selects the 90-97 range instead of 30-37.
func Fg(color Color, bright bool) string {
	base := 30
	if bright {
		base = 90
	}
	return sgr(base + colorIndex[color])
}

// Bg returns the SGR sequence selecting the given background color.
// bright selects the 100-107 range instead of 40-47.
func Bg(color Color, bright bool) string {
	base := 40
	if bright {
		base = 100
	}
	return sgr(base + colorIndex[color])
}

// Move returns the cursor-position escape for 1-based row y, column x.
func Move(y, x int) string {
	var b []byte
	b = append(b, '\x1b', '[')
	b = strconv.AppendInt(b, int64(y), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(x), 10)
	b = append(b, 'H')
	return string(b)
}
