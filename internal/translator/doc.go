// Package translator converts the compiler-internal IR (package cir) into
// the concurrent graph (package ir).
//
// Translation is a structure-preserving, identity-preserving graph
// homomorphism, not a tree copy: two source references to the same underlying
// cell, port, group or comb group always map to the same destination handle.
// The mapping is keyed by source pointer identity and lives for exactly one
// TranslationMap; a second session with equal content but different addresses
// produces distinct handles.
//
// The source Port→parent and parent→Port edges are two directions of one
// relationship, so translating either side needs the other. Owners are
// inserted into the table before their ports are recursed into, and ports
// re-check the table after resolving their parent; the mutual dependency
// therefore terminates and the destination back-reference is weak.
package translator
