// Package document implements the retained-mode node tree: a mutable
// tree of styled visual nodes with update notifications. See the
// sibling package `render` for the tree walker that turns this tree
// into cells, and `screen` for the cell grid itself.
package document

import (
	"errors"

	"termdoc/ansi"
)

// Kind tags which variant a Node is. The source implementation used a
// duck-typed `type` string; Go gets an enum and an exhaustive switch.
type Kind int

const (
	KindBlock Kind = iota
	KindText
	KindNewline
	KindTab
	KindStyle
	KindStyleOverride
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindText:
		return "text"
	case KindNewline:
		return "newline"
	case KindTab:
		return "tab"
	case KindStyle:
		return "style"
	case KindStyleOverride:
		return "style-override"
	default:
		return "unknown"
	}
}

// Sentinel errors for tree misuse. These are programmer errors — the
// caller decides whether to log-and-continue or abort, rather than the
// tree panicking on its own.
var (
	ErrLeaf             = errors.New("document: node kind does not accept children")
	ErrAlreadyAttached  = errors.New("document: node is already attached to a parent")
	ErrNotChild         = errors.New("document: node is not a child of this parent")
	ErrIndexOutOfRange  = errors.New("document: index out of range")
	ErrWrongKind        = errors.New("document: attribute does not apply to this node kind")
)

func isLeaf(k Kind) bool {
	switch k {
	case KindText, KindNewline, KindTab:
		return true
	default:
		return false
	}
}

// Node is a single element of the document tree. All variants share
// this struct; Kind selects which fields are meaningful, mirroring the
// "tagged sum" translation suggested for ownership-strict languages.
type Node struct {
	kind Kind

	parent *Node     // weak, non-owning back-link
	owner  *Document // propagated down from the owning Document, if any
	children []*Node

	id *string

	absolute                                     bool
	posX, posY                                   int
	width, height                                *int
	marginLeft, marginRight, marginTop, marginBottom int

	// Text
	content string

	// Style / StyleOverride
	color, bgColor   *ansi.Color
	bright, bgBright bool
}

func newNode(k Kind) *Node {
	return &Node{kind: k}
}

// NewBlock creates a detached container node.
func NewBlock() *Node { return newNode(KindBlock) }

// NewText creates a detached leaf node holding content.
func NewText(content string) *Node {
	n := newNode(KindText)
	n.content = content
	return n
}

// NewNewline creates a detached leaf line-break node.
func NewNewline() *Node { return newNode(KindNewline) }

// NewTab creates a detached leaf tab-stop node.
func NewTab() *Node { return newNode(KindTab) }

// NewStyle creates a detached style-context node.
func NewStyle() *Node { return newNode(KindStyle) }

// NewStyleOverride creates a detached point-overlay style node.
func NewStyleOverride() *Node { return newNode(KindStyleOverride) }

// Kind reports which variant this node is.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the non-owning back-link, or nil if detached or root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in order. The slice is owned by
// the node; callers must not mutate it directly.
func (n *Node) Children() []*Node { return n.children }

// Top walks parent links to the topmost Node (the one with a nil
// parent — typically a Document's Body).
func (n *Node) Top() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// ID returns the node's optional identifier, and whether one is set.
func (n *Node) ID() (string, bool) {
	if n.id == nil {
		return "", false
	}
	return *n.id, true
}

// SetID sets the node's identifier. IDs are metadata for GetByID
// lookups only; they do not affect rendering, so this does not notify.
func (n *Node) SetID(id string) {
	n.id = &id
}

// Absolute reports whether this node is positioned absolutely within
// its container rather than flowing after the cursor.
func (n *Node) Absolute() bool { return n.absolute }

// SetAbsolute toggles absolute positioning and notifies.
func (n *Node) SetAbsolute(v bool) {
	n.absolute = v
	n.notify()
}

// PosX, PosY return the absolute-position coordinates (meaningful only
// when Absolute() is true).
func (n *Node) PosX() int { return n.posX }
func (n *Node) PosY() int { return n.posY }

// SetPosition sets PosX/PosY together as a single mutation.
func (n *Node) SetPosition(x, y int) {
	n.posX, n.posY = x, y
	n.notify()
}

// Width, Height return the explicit size constraint, or nil to inherit
// the container's size.
func (n *Node) Width() *int  { return n.width }
func (n *Node) Height() *int { return n.height }

// SetWidth sets an explicit width, or nil to inherit.
func (n *Node) SetWidth(w *int) {
	n.width = w
	n.notify()
}

// SetHeight sets an explicit height, or nil to inherit.
func (n *Node) SetHeight(h *int) {
	n.height = h
	n.notify()
}

// Margins returns the four margin values in cell units.
func (n *Node) Margins() (left, right, top, bottom int) {
	return n.marginLeft, n.marginRight, n.marginTop, n.marginBottom
}

// SetMargins sets all four margins as a single mutation. Negative
// values are clamped to 0 — a deliberate tightening over the source,
// which left negative margins to propagate into downstream geometry.
func (n *Node) SetMargins(left, right, top, bottom int) {
	n.marginLeft = clampNonNegative(left)
	n.marginRight = clampNonNegative(right)
	n.marginTop = clampNonNegative(top)
	n.marginBottom = clampNonNegative(bottom)
	n.notify()
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Content returns the text content (KindText only).
func (n *Node) Content() string { return n.content }

// SetContent replaces the text content. Only valid on KindText nodes.
func (n *Node) SetContent(content string) error {
	if n.kind != KindText {
		return ErrWrongKind
	}
	n.content = content
	n.notify()
	return nil
}

// Color, BgColor return the style's foreground/background color, if
// set (KindStyle or KindStyleOverride only).
func (n *Node) Color() *ansi.Color   { return n.color }
func (n *Node) BgColor() *ansi.Color { return n.bgColor }
func (n *Node) Bright() bool         { return n.bright }
func (n *Node) BgBright() bool       { return n.bgBright }

// SetColor sets the foreground color (nil clears it).
func (n *Node) SetColor(c *ansi.Color) error {
	if n.kind != KindStyle && n.kind != KindStyleOverride {
		return ErrWrongKind
	}
	n.color = c
	n.notify()
	return nil
}

// SetBgColor sets the background color (nil clears it).
func (n *Node) SetBgColor(c *ansi.Color) error {
	if n.kind != KindStyle && n.kind != KindStyleOverride {
		return ErrWrongKind
	}
	n.bgColor = c
	n.notify()
	return nil
}

// SetBright sets the foreground-bright flag.
func (n *Node) SetBright(v bool) error {
	if n.kind != KindStyle && n.kind != KindStyleOverride {
		return ErrWrongKind
	}
	n.bright = v
	n.notify()
	return nil
}

// SetBgBright sets the background-bright flag.
func (n *Node) SetBgBright(v bool) error {
	if n.kind != KindStyle && n.kind != KindStyleOverride {
		return ErrWrongKind
	}
	n.bgBright = v
	n.notify()
	return nil
}

// notify invokes the owning Document's update hook exactly once, if
// both an owner and a hook are registered.
func (n *Node) notify() {
	if n.owner != nil {
		n.owner.fireUpdateHook(n)
	}
}

// propagateOwner stamps owner (which may be nil, clearing ownership) on
// n and its whole subtree. This is how a Node "becomes" part of a
// Document's tree without Document itself being a Node: the owner
// handle is threaded explicitly down each subtree at attach time.
func propagateOwner(n *Node, owner *Document) {
	n.owner = owner
	for _, c := range n.children {
		propagateOwner(c, owner)
	}
}

// Attach inserts child as a child of n at index (or at the end if
// index < 0). It notifies once. Leaf kinds reject this with ErrLeaf;
// an already-attached child is rejected with ErrAlreadyAttached.
func (n *Node) Attach(child *Node, index int) error {
	if err := n.attachOne(child, index, true); err != nil {
		return err
	}
	return nil
}

// AttachAll inserts each child of children starting at index (or the
// end), in order, and notifies exactly once at the end — not once per
// item.
func (n *Node) AttachAll(children []*Node, index int) error {
	idx := index
	for _, c := range children {
		if err := n.attachOne(c, idx, false); err != nil {
			return err
		}
		if idx >= 0 {
			idx++
		}
	}
	n.notify()
	return nil
}

func (n *Node) attachOne(child *Node, index int, notify bool) error {
	if isLeaf(n.kind) {
		return ErrLeaf
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	child.parent = n
	if index < 0 {
		n.children = append(n.children, child)
	} else {
		if index > len(n.children) {
			index = len(n.children)
		}
		n.children = append(n.children, nil)
		copy(n.children[index+1:], n.children[index:])
		n.children[index] = child
	}
	propagateOwner(child, n.owner)
	if notify {
		n.notify()
	}
	return nil
}

// Detach removes child from n's children, if present, and notifies
// once. Returns ErrNotChild if child's parent is not n.
func (n *Node) Detach(child *Node) error {
	if err := n.detachOne(child, true); err != nil {
		return err
	}
	return nil
}

// DetachAt removes the child at index (negative counts from the end)
// and notifies once.
func (n *Node) DetachAt(index int) error {
	child, err := n.childAt(index)
	if err != nil {
		return err
	}
	return n.detachOne(child, true)
}

// DetachAll removes each of children, in order, and notifies exactly
// once at the end.
func (n *Node) DetachAll(children []*Node) error {
	for _, c := range children {
		if err := n.detachOne(c, false); err != nil {
			return err
		}
	}
	n.notify()
	return nil
}

func (n *Node) childAt(index int) (*Node, error) {
	i := index
	if i < 0 {
		i += len(n.children)
	}
	if i < 0 || i >= len(n.children) {
		return nil, ErrIndexOutOfRange
	}
	return n.children[i], nil
}

func (n *Node) detachOne(child *Node, notify bool) error {
	if isLeaf(n.kind) {
		return ErrLeaf
	}
	if child.parent != n {
		return ErrNotChild
	}
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
	propagateOwner(child, nil)
	if notify {
		n.notify()
	}
	return nil
}
