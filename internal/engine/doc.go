// Package engine provides the structural queries a stepping simulator runs
// against the concurrent graph: handshake port lookup, signal-level checks,
// destination-cell discovery for data-race analysis between concurrently
// active groups, and control-emptiness checks used to elide vacuous
// scheduling work.
//
// Everything here is read-only over the graph and safe to call concurrently
// with an active simulation step thanks to the per-node lock discipline of
// package ir.
package engine
