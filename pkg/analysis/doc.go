// Package analysis runs the one-shot prompt against a model and renders the
// answer.
//
// A [Runner] makes exactly one [modeladapter.Completer] call per Run and writes
// nothing to its output until that call has succeeded. Failures are returned
// unchanged in kind; there is no retry.
package analysis
