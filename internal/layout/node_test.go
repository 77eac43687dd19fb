package layout

import (
	"errors"
	"strings"
	"testing"
)

func namedChildren(n *Node) string {
	names := make([]string, len(n.children))
	for i, c := range n.children {
		names[i] = c.Name()
	}
	return strings.Join(names, ",")
}

func newParent(t *testing.T, names ...string) *Node {
	t.Helper()
	parent := NewNode(Column(DefaultFlexStyle()))
	parent.SetName("parent")
	for _, name := range names {
		mustAdd(t, parent, newLeaf(name, 1, 1))
	}
	return parent
}

func TestNode_InsertChild(t *testing.T) {
	type tc struct {
		index   int
		want    string
		wantErr error
	}

	tests := map[string]tc{
		"front":        {index: 0, want: "x,a,b,c"},
		"middle":       {index: 2, want: "a,b,x,c"},
		"end":          {index: 3, want: "a,b,c,x"},
		"negative":     {index: -1, want: "a,b,c", wantErr: ErrIndexOutOfRange},
		"past the end": {index: 4, want: "a,b,c", wantErr: ErrIndexOutOfRange},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newParent(t, "a", "b", "c")
			child := newLeaf("x", 1, 1)

			err := parent.InsertChild(tt.index, child)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("InsertChild() error = %v, want %v", err, tt.wantErr)
			}
			if got := namedChildren(parent); got != tt.want {
				t.Errorf("children = %s, want %s", got, tt.want)
			}
			if tt.wantErr == nil && child.Parent() != parent {
				t.Error("child.Parent() is not the parent")
			}
		})
	}
}

func TestNode_InsertAttachedOrCycle(t *testing.T) {
	parent := newParent(t, "a")
	other := newParent(t)
	child := parent.Children()[0]

	if err := other.AddChild(child); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("AddChild(attached) error = %v, want ErrAlreadyAttached", err)
	}

	grand := NewNode(Wrap())
	mustAdd(t, grand, parent)
	if err := child.AddChild(grand); !errors.Is(err, ErrCycle) {
		t.Errorf("AddChild(ancestor) error = %v, want ErrCycle", err)
	}
	if err := grand.AddChild(grand); !errors.Is(err, ErrCycle) {
		t.Errorf("AddChild(self) error = %v, want ErrCycle", err)
	}
}

func TestNode_RemoveChildren(t *testing.T) {
	type tc struct {
		index   int
		count   int
		want    string
		wantErr error
	}

	tests := map[string]tc{
		"first":       {index: 0, count: 1, want: "b,c,d"},
		"middle pair": {index: 1, count: 2, want: "a,d"},
		"all":         {index: 0, count: 4, want: ""},
		"none":        {index: 2, count: 0, want: "a,b,c,d"},
		"too many":    {index: 3, count: 2, want: "a,b,c,d", wantErr: ErrIndexOutOfRange},
		"negative":    {index: -1, count: 1, want: "a,b,c,d", wantErr: ErrIndexOutOfRange},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newParent(t, "a", "b", "c", "d")
			before := append([]*Node(nil), parent.Children()...)

			err := parent.RemoveChildren(tt.index, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RemoveChildren() error = %v, want %v", err, tt.wantErr)
			}
			if got := namedChildren(parent); got != tt.want {
				t.Errorf("children = %s, want %s", got, tt.want)
			}
			if tt.wantErr != nil {
				return
			}
			for _, c := range before[tt.index : tt.index+tt.count] {
				if c.Parent() != nil {
					t.Errorf("%s.Parent() = %s, want nil", c, c.Parent())
				}
			}
		})
	}
}

func TestNode_RemoveChild(t *testing.T) {
	parent := newParent(t, "a", "b", "c")
	b := parent.Children()[1]

	if !parent.RemoveChild(b) {
		t.Fatal("RemoveChild(b) = false, want true")
	}
	if parent.RemoveChild(b) {
		t.Error("RemoveChild(b) twice = true, want false")
	}
	if got := namedChildren(parent); got != "a,c" {
		t.Errorf("children = %s, want a,c", got)
	}

	// A removed node can be attached elsewhere
	if err := newParent(t).AddChild(b); err != nil {
		t.Errorf("AddChild(removed) error = %v", err)
	}
}

func TestNode_MoveChildren(t *testing.T) {
	type tc struct {
		from, to, count int
		want            string
		wantErr         error
	}

	tests := map[string]tc{
		"forward one":        {from: 0, to: 3, count: 1, want: "b,c,a,d,e"},
		"backward pair":      {from: 3, to: 1, count: 2, want: "a,d,e,b,c"},
		"to the end":         {from: 0, to: 5, count: 2, want: "c,d,e,a,b"},
		"to the front":       {from: 4, to: 0, count: 1, want: "e,a,b,c,d"},
		"onto itself":        {from: 1, to: 1, count: 2, want: "a,b,c,d,e"},
		"just past itself":   {from: 1, to: 3, count: 2, want: "a,b,c,d,e"},
		"inside moved range": {from: 1, to: 2, count: 2, want: "a,b,c,d,e", wantErr: ErrIndexOutOfRange},
		"range too long":     {from: 4, to: 0, count: 2, want: "a,b,c,d,e", wantErr: ErrIndexOutOfRange},
		"target past end":    {from: 0, to: 6, count: 1, want: "a,b,c,d,e", wantErr: ErrIndexOutOfRange},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newParent(t, "a", "b", "c", "d", "e")

			err := parent.MoveChildren(tt.from, tt.to, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MoveChildren() error = %v, want %v", err, tt.wantErr)
			}
			if got := namedChildren(parent); got != tt.want {
				t.Errorf("children = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNode_MarkDirtyPropagates(t *testing.T) {
	leaf := newLeaf("leaf", 10, 10)
	mid := mustAdd(t, NewNode(Wrap()), leaf)
	root := mustAdd(t, NewNode(Wrap()), mid)
	sibling := newLeaf("sibling", 5, 5)
	mustAdd(t, root, sibling)

	mustLayout(t, root, Loose(100, 100))
	for _, n := range []*Node{root, mid, leaf} {
		if n.IsDirty() {
			t.Fatalf("%s.IsDirty() = true after layout", n)
		}
	}

	leaf.SetModifiers(Padding(EdgeAll(Dp(1))))

	for _, n := range []*Node{root, mid, leaf} {
		if !n.IsDirty() {
			t.Errorf("%s.IsDirty() = false, want true", n)
		}
	}
}

func TestNode_MarkDirtyWalksPastDirtyAncestor(t *testing.T) {
	leaf := newLeaf("leaf", 10, 10)
	mid := mustAdd(t, NewNode(Wrap()), leaf)
	root := mustAdd(t, NewNode(Wrap()), mid)
	mustLayout(t, root, Loose(100, 100))

	mid.dirty = true
	leaf.MarkDirty()

	if !root.IsDirty() {
		t.Error("root.IsDirty() = false with a dirty node in between, want true")
	}
}

func TestNode_MutationsMarkDirty(t *testing.T) {
	type tc struct {
		mutate func(n *Node)
	}

	tests := map[string]tc{
		"strategy":    {mutate: func(n *Node) { n.SetStrategy(Wrap()) }},
		"modifiers":   {mutate: func(n *Node) { n.SetModifiers(Width(Dp(3))) }},
		"parent data": {mutate: func(n *Node) { n.SetParentData(ChildData{}) }},
		"z-index":     {mutate: func(n *Node) { n.SetZIndex(2) }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			leaf := newLeaf("leaf", 10, 10)
			root := mustAdd(t, NewNode(Wrap()), leaf)
			mustLayout(t, root, Loose(100, 100))

			tt.mutate(leaf)

			if !root.IsDirty() {
				t.Error("root.IsDirty() = false, want true")
			}
		})
	}
}

func TestNode_String(t *testing.T) {
	type tc struct {
		node *Node
		want string
	}

	unnamed := NewNode(Wrap())
	bare := NewNode(Strategy{})

	tests := map[string]tc{
		"named":         {node: newLeaf("title", 1, 1), want: "title"},
		"strategy name": {node: unnamed, want: "Wrap"},
		"fallback":      {node: bare, want: "node"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
