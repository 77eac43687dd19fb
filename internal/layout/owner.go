package layout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grindlemire/boxlayout/internal/debug"
)

// DefaultMaxDepth bounds measurement recursion when no limit is configured.
const DefaultMaxDepth = 1024

// PassStats counts the work done by the last layout pass.
type PassStats struct {
	Measured         int // measure function invocations
	CacheHits        int // measurements answered from the cache
	Remeasured       int // nodes measured more than once in the pass
	IntrinsicQueries int // intrinsic queries made against nodes
	Placed           int // nodes placed
}

// Owner runs layout passes over a tree. Passes on one owner are
// serialized; separate owners may run concurrently.
type Owner struct {
	mu        sync.Mutex
	root      *Node
	density   Density
	maxDepth  int
	strict    bool
	log       *zap.Logger
	iteration uint64
	stats     PassStats
}

// Option configures an Owner.
type Option func(*Owner)

// WithDensity sets the dp to px conversion used by every pass.
func WithDensity(d Density) Option {
	return func(o *Owner) { o.density = d }
}

// WithLogger sets the logger passes trace to.
func WithLogger(log *zap.Logger) Option {
	return func(o *Owner) { o.log = log }
}

// WithMaxDepth bounds measurement recursion depth.
func WithMaxDepth(depth int) Option {
	return func(o *Owner) { o.maxDepth = depth }
}

// WithStrict makes negative intrinsic query arguments abort the pass
// instead of being clamped to zero.
func WithStrict(strict bool) Option {
	return func(o *Owner) { o.strict = strict }
}

// NewOwner creates an owner for the tree rooted at root.
func NewOwner(root *Node, opts ...Option) (*Owner, error) {
	if root == nil {
		return nil, errors.New("root node is nil")
	}
	if root.parent != nil {
		return nil, fmt.Errorf("%w: root %s is a child of %s", ErrAlreadyAttached, root, root.parent)
	}
	o := &Owner{
		root:     root,
		density:  DefaultDensity,
		maxDepth: DefaultMaxDepth,
		log:      debug.Logger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.density.Validate(); err != nil {
		return nil, err
	}
	if o.maxDepth < 1 {
		return nil, fmt.Errorf("max depth %d must be positive", o.maxDepth)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return o, nil
}

// Root returns the root node.
func (o *Owner) Root() *Node {
	return o.root
}

// Density returns the density used by passes.
func (o *Owner) Density() Density {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.density
}

// SetDensity changes the density and invalidates every cached measurement.
func (o *Owner) SetDensity(d Density) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if d != o.density {
		o.density = d
		o.root.invalidate()
	}
	return nil
}

// Stats returns the counters of the last pass.
func (o *Owner) Stats() PassStats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stats
}

// Layout measures the tree under c and places the root at (0, 0).
//
// A strategy that breaks the measurement contract aborts the pass: the
// error is returned as a *ContractError and the whole tree is marked dirty
// so that no partial result is reused.
func (o *Owner) Layout(c Constraints) (err error) {
	if err := c.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.iteration++
	stats := PassStats{}
	p := &pass{
		id:        uuid.NewString(),
		iteration: o.iteration,
		density:   o.density,
		maxDepth:  o.maxDepth,
		strict:    o.strict,
		stats:     &stats,
	}
	p.log = o.log.With(zap.String("pass", p.id))
	start := time.Now()

	defer func() {
		o.stats = stats
		r := recover()
		if r == nil {
			return
		}
		ce, ok := r.(*ContractError)
		if !ok {
			panic(r)
		}
		o.root.invalidate()
		p.log.Error("layout pass aborted", zap.Error(ce))
		err = ce
	}()

	p.log.Debug("layout pass started",
		zap.Stringer("root", o.root),
		zap.Stringer("constraints", c))

	p.measure(o.root, c)
	o.root.place(p, Position{})

	p.log.Debug("layout pass finished",
		zap.Stringer("size", o.root.size),
		zap.Int("measured", stats.Measured),
		zap.Int("cache_hits", stats.CacheHits),
		zap.Int("remeasured", stats.Remeasured),
		zap.Int("intrinsic_queries", stats.IntrinsicQueries),
		zap.Int("placed", stats.Placed),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Walk visits placed nodes in paint order: a parent before its children,
// siblings by z-index and then placement order.
func (o *Owner) Walk(fn func(n *Node, depth int)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.walk(fn)
}

func (o *Owner) walk(fn func(n *Node, depth int)) {
	if !o.root.placed {
		return
	}
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		fn(n, depth)
		for _, child := range n.paintOrder {
			if child.parent == n && child.placed {
				visit(child, depth+1)
			}
		}
	}
	visit(o.root, 0)
}

// Paint invokes the draw callback of every placed node in paint order.
func (o *Owner) Paint() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.walk(func(n *Node, _ int) {
		if n.draw != nil {
			n.draw(n, n.BoundsInRoot())
		}
	})
}

// HitTest returns the topmost placed node whose bounds contain (x, y), or
// nil if none does. Each node is clipped to the bounds of its ancestors.
func (o *Owner) HitTest(x, y Px) *Node {
	o.mu.Lock()
	defer o.mu.Unlock()
	var (
		hit   *Node
		clips []Rect
	)
	o.walk(func(n *Node, depth int) {
		visible := n.BoundsInRoot()
		if depth > 0 {
			visible = visible.Intersect(clips[depth-1])
		}
		clips = append(clips[:depth], visible)
		if visible.Contains(x, y) {
			hit = n
		}
	})
	return hit
}
