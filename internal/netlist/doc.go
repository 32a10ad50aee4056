// Package netlist loads a small textual description of a component netlist
// and builds the corresponding compiler-internal graph (package cir).
//
// The description exists so that tests and the inspection CLI can stand up
// source graphs without the full frontend: it lists cells with prototypes
// and ports, groups with guarded assignments, and a control tree. YAML and
// CUE files are both accepted; both decode into the same Spec structs.
package netlist
