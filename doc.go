// Package boxlayout lays out trees of rectangular nodes.
//
// Users import this single package for the public API: nodes and their
// strategies, modifiers, constraints and units, alignment lines, and the
// Owner that runs a measure and place pass. The implementation lives in
// internal/layout; the types here are aliases of it.
package boxlayout
