// Package ir provides the concurrent intermediate representation for a
// guarded-dataflow hardware control program.
//
// The graph is built once per component by the translator and is immutable in
// topology afterwards. Every node that may be referenced from more than one
// place (Port, Cell, Group, CombGroup) carries its own reader/writer lock so
// that a stepping simulator and inspection tooling can read the graph
// concurrently. No global lock exists: unrelated nodes never coordinate.
//
// Ownership rules:
//   - Cells and Groups exclusively own their Ports.
//   - A Port holds a weak, non-owning back-reference to its parent; the
//     owning Component's collections are the authoritative liveness root.
//   - Non-leaf control nodes own their children outright; Enable, Invoke,
//     If and While hold shared references to entities owned elsewhere.
package ir
