// Package debug provides optional file-based debug logging.
//
// When the BOXLAYOUT_DEBUG environment variable is set to a file path,
// layout passes that were not given a logger trace to that file.
// Otherwise, logging is a no-op.
package debug
