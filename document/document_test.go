package document

import "testing"

func TestUpdateHookFiresOnMutation(t *testing.T) {
	doc := New(80, 24)
	body := NewBlock()
	doc.Attach(body)

	var origin *Node
	doc.SetUpdateHook(func(n *Node) { origin = n })

	child := NewText("hi")
	body.Attach(child, -1)
	if origin != body {
		t.Fatalf("expected update hook to fire with the parent the child was attached to")
	}

	origin = nil
	child.SetContent("bye")
	if origin != child {
		t.Fatalf("expected update hook to fire on content mutation")
	}
}

func TestGetByIDShallowOnly(t *testing.T) {
	doc := New(10, 10)
	root := NewBlock()
	doc.Attach(root)

	direct := NewBlock()
	direct.SetID("direct")
	root.Attach(direct, -1)

	grandchild := NewText("nested")
	grandchild.SetID("nested")
	direct.Attach(grandchild, -1)

	if got := doc.GetByID("direct"); got != direct {
		t.Fatalf("expected to find direct child by id")
	}
	if got := doc.GetByID("nested"); got != nil {
		t.Fatalf("expected shallow GetByID to miss grandchild, got %v", got)
	}
}

func TestEventDispatchOrder(t *testing.T) {
	doc := New(10, 10)
	var order []int
	doc.AttachEvent(func(Event) { order = append(order, 1) })
	doc.AttachEvent(func(Event) { order = append(order, 2) })
	doc.AttachEvent(func(Event) { order = append(order, 3) })

	doc.Event(Event{Kind: "resize"})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected listeners fired in registration order, got %v", order)
	}
}

func TestDetachEventRemovesListener(t *testing.T) {
	doc := New(10, 10)
	calls := 0
	h := doc.AttachEvent(func(Event) { calls++ })
	doc.DetachEvent(h)
	doc.Event(Event{Kind: "draw"})
	if calls != 0 {
		t.Fatalf("expected detached listener to not fire, got %d calls", calls)
	}
}

func TestAttachReplacesExistingBody(t *testing.T) {
	doc := New(10, 10)
	first := NewBlock()
	second := NewBlock()

	doc.Attach(first)
	doc.Attach(second)

	if doc.Body() != second {
		t.Fatalf("expected Attach to replace the existing body")
	}
}

func TestOwnerPropagatesIntoSubtree(t *testing.T) {
	doc := New(10, 10)
	root := NewBlock()
	child := NewBlock()
	grandchild := NewText("x")
	child.Attach(grandchild, -1)
	root.Attach(child, -1)

	calls := 0
	doc.SetUpdateHook(func(*Node) { calls++ })
	doc.Attach(root)

	grandchild.SetContent("y")
	if calls != 1 {
		t.Fatalf("expected owner propagated into pre-existing subtree, got %d calls", calls)
	}
}
