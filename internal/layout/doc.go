// Package layout implements a constraint-propagating layout engine.
//
// A tree of [Node] values is measured top-down: a parent hands each child a
// [Constraints] envelope and the child answers with a [Placeable] (its size
// plus any alignment lines it publishes). Once every size is resolved, a
// second walk places children at parent-relative offsets. Parents may ask a
// child how big it could be through the four intrinsic queries on
// [IntrinsicMeasurable] without committing to a real measurement.
//
// A node's behavior is a [Strategy]: five function values (the main measure
// function and the four intrinsic functions). Built-in strategies cover
// row/column flex layout ([Flex]), stacking ([Stack]), alignment ([Box],
// [Wrap]), intrinsic sizing ([IntrinsicWidth], [IntrinsicHeight]) and
// alignment-line offsets ([AlignmentLineOffset]). A chain of [Modifier]
// values wraps a node to rewrite constraints, sizes, positions, alignment
// lines and parent data.
//
// The main entry point is [Owner.Layout], which runs one measure and place
// pass over the tree rooted at the owner's root node.
package layout
