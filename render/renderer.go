// Package render walks a document.Document tree and writes styled
// cells into a screen.Buffer, then compiles that buffer against the
// previous frame. The box/cursor/style stack algorithm is ported
// directly from the reference Renderer.render; see DESIGN.md for the
// exact grounding.
package render

import (
	"termdoc/ansi"
	"termdoc/document"
	"termdoc/screen"
)

// box is one entry of the box stack: the usable dimensions and
// absolute-coordinate offset of the current container.
type box struct {
	h, w, x, y int
}

// cursor is one entry of the cursor stack: the local write position
// inside the current container.
type cursor struct {
	x, y int
}

// styleCtx is one entry of the style stack: the effective fg/bg SGR
// codes inherited by text written in the current context.
type styleCtx struct {
	fg, bg string
}

// Renderer holds the previous frame so Render can compile a
// differential update. The zero value is ready to use.
type Renderer struct {
	previous *screen.Buffer
}

// Render walks doc's body and returns the ANSI command string to bring
// the terminal from the previously rendered frame (if any, and if
// differential is true) to the new one. It always replaces the stored
// previous frame with the new one, win or lose.
func (r *Renderer) Render(doc *document.Document, tabstop int, differential bool) string {
	buf := screen.NewBuffer(doc.Width, doc.Height)

	w := walker{
		buf:     buf,
		tabstop: tabstop,
		boxes:   []box{{h: doc.Height, w: doc.Width, x: 0, y: 0}},
		cursors: []cursor{{0, 0}},
		styles:  []styleCtx{{fg: "", bg: ""}},
	}

	if doc.Body() != nil {
		w.dispatch(doc.Body())
	}

	var out string
	if differential {
		out = buf.Compile(r.previous)
	} else {
		out = buf.Compile(nil)
	}
	r.previous = buf
	return out
}

// walker carries the three stacks through one Render pass.
type walker struct {
	buf     *screen.Buffer
	tabstop int
	boxes   []box
	cursors []cursor
	styles  []styleCtx
}

func (w *walker) curBox() box        { return w.boxes[len(w.boxes)-1] }
func (w *walker) curCursor() cursor  { return w.cursors[len(w.cursors)-1] }
func (w *walker) setCursor(c cursor) { w.cursors[len(w.cursors)-1] = c }
func (w *walker) curStyle() styleCtx { return w.styles[len(w.styles)-1] }

// dispatch is the exhaustive switch over Kind that replaces the
// reference's duck-typed `selector` closure. An unrecognized kind
// falls through to walkChildren, matching the source's fallback.
func (w *walker) dispatch(n *document.Node) {
	switch n.Kind() {
	case document.KindBlock:
		w.block(n)
	case document.KindText:
		w.text(n)
	case document.KindNewline:
		w.newline(n)
	case document.KindTab:
		w.tab(n)
	case document.KindStyle:
		w.style(n)
	case document.KindStyleOverride:
		w.styleOverride(n)
	default:
		w.walkChildren(n)
	}
}

func (w *walker) walkChildren(n *document.Node) {
	for _, c := range n.Children() {
		w.dispatch(c)
	}
}

func (w *walker) block(n *document.Node) {
	cur := w.curBox()
	cx, cy := w.curCursor().x, w.curCursor().y

	innerH := cur.h
	if h := n.Height(); h != nil {
		innerH = *h
	}
	innerW := cur.w
	if wd := n.Width(); wd != nil {
		innerW = *wd
	}

	var x, y int
	if n.Absolute() {
		x, y = n.PosX(), n.PosY()
	} else {
		x, y = cur.x+cx, cur.y+cy
	}

	left, right, top, bottom := n.Margins()
	x += left
	y += top
	innerW -= left + right
	innerH -= top + bottom
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	w.boxes = append(w.boxes, box{h: innerH, w: innerW, x: x, y: y})
	w.cursors = append(w.cursors, cursor{0, 0})

	w.walkChildren(n)

	w.boxes = w.boxes[:len(w.boxes)-1]
	w.cursors = w.cursors[:len(w.cursors)-1]
}

func (w *walker) text(n *document.Node) {
	cur := w.curBox()
	c := w.curCursor()
	cx, cy := c.x, c.y
	st := w.curStyle()

	var fg, bg *string
	if st.fg != "" {
		fg = &st.fg
	}
	if st.bg != "" {
		bg = &st.bg
	}

	for _, r := range n.Content() {
		if cy >= cur.h || cur.w <= 0 {
			break
		}
		ch := r
		w.buf.Set(cur.x+cx, cur.y+cy, &ch, fg, bg, 0)
		if cx == cur.w-1 {
			cx = 0
			cy++
		} else {
			cx++
		}
	}
	w.setCursor(cursor{cx, cy})
}

func (w *walker) newline(n *document.Node) {
	c := w.curCursor()
	w.setCursor(cursor{0, c.y + 1})
}

func (w *walker) tab(n *document.Node) {
	cur := w.curBox()
	c := w.curCursor()
	cx, cy := c.x, c.y

	diff := w.tabstop - (cx % w.tabstop)
	if cx+diff > cur.w {
		cy++
		cx = diff
	} else {
		cx += diff
	}
	w.setCursor(cursor{cx, cy})
}

func (w *walker) style(n *document.Node) {
	fg, bg := "", ""
	if c := n.Color(); c != nil {
		fg = ansi.Fg(*c, n.Bright())
	}
	if c := n.BgColor(); c != nil {
		bg = ansi.Bg(*c, n.BgBright())
	}
	w.styles = append(w.styles, styleCtx{fg: fg, bg: bg})
	w.walkChildren(n)
	w.styles = w.styles[:len(w.styles)-1]
}

func (w *walker) styleOverride(n *document.Node) {
	cur := w.curBox()
	var x, y int
	if n.Absolute() {
		x, y = n.PosX(), n.PosY()
	} else {
		left, top, _, _ := marginsLT(n)
		x, y = cur.x+left, cur.y+top
	}

	existing, err := w.buf.Get(x, y)
	if err != nil {
		return
	}

	var fg, bg *string
	if c := n.Color(); c != nil {
		s := ansi.Fg(*c, n.Bright())
		fg = &s
	}
	if c := n.BgColor(); c != nil {
		s := ansi.Bg(*c, n.BgBright())
		bg = &s
	}
	w.buf.Set(x, y, nil, fg, bg, existing.Z+10)
}

// marginsLT returns (marginLeft, marginTop, marginRight, marginBottom)
// reordered for styleOverride's x/y computation convenience.
func marginsLT(n *document.Node) (left, top, right, bottom int) {
	l, r, t, b := n.Margins()
	return l, t, r, b
}
