// Package cir holds the compiler-internal representation the translator
// consumes: a single-owner, pointer-linked graph produced by the frontend.
//
// Node addresses are stable for the duration of one translation session and
// serve as the identity keys of the translation table. The package shares the
// leaf vocabulary of package ir (names, attributes, directions, prototypes,
// comparison operators) but none of its concurrency machinery: the frontend
// owns this graph single-threaded, parents point at children with plain
// pointers, and children point back at parents the same way.
//
// cir also models the source-only constructs the concurrent graph refuses to
// represent: static groups and the static and repeat control tags. The
// translator reports these as unsupported rather than misinterpreting them.
package cir
