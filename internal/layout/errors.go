package layout

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConstraints = errors.New("invalid constraints")
	ErrUnitMismatch       = errors.New("length unit mismatch")
	ErrIndexOutOfRange    = errors.New("child index out of range")
	ErrAlreadyAttached    = errors.New("node already has a parent")
	ErrCycle              = errors.New("node cannot become its own descendant")
	ErrInvalidModifier    = errors.New("invalid modifier")

	// Contract violations. These abort the pass and are reported by
	// Owner.Layout wrapped in a *ContractError.
	ErrLayoutNotCalled    = errors.New("measure function returned without calling Layout")
	ErrLayoutCalledTwice  = errors.New("Layout called more than once")
	ErrNoStrategy         = errors.New("node has no measure function")
	ErrMaxDepth           = errors.New("maximum layout depth exceeded")
	ErrIntrinsicArgument  = errors.New("negative intrinsic query argument")
	ErrInfiniteSize       = errors.New("measured size must be finite")
	ErrForeignPlaceable   = errors.New("placeable does not belong to a child of this node")
	ErrPlacedTwice        = errors.New("child placed more than once")
	ErrStalePlaceable     = errors.New("placeable superseded by a later measurement")
	ErrPlacementOutOfPass = errors.New("place called outside a placement block")
)

// ContractError reports a violated layout contract: a strategy that broke
// the measurement protocol or a tree that cannot be laid out.
type ContractError struct {
	Op   string // operation that detected the violation
	Node string // node the operation ran on
	Err  error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("layout: %s on %s: %v", e.Op, e.Node, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// violation aborts the running pass. Owner.Layout recovers the panic and
// returns the error.
func violation(op string, n *Node, err error) {
	panic(&ContractError{Op: op, Node: n.String(), Err: err})
}
