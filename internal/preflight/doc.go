// Package preflight provides readiness checks for the filesystem paths and
// catalog state that hashmill depends on.
//
// The CLI "hashmill doctor" command runs RunAll and renders one line per
// check. Each check is gated by its config toggle -- disabled features are
// skipped.
package preflight
