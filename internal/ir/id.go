package ir

import "golang.org/x/text/unicode/norm"

// Id is the name of an entity in the graph: a cell, port, group, component
// or attribute. Construction normalizes the string to NFC so that lookups on
// user-provided names compare consistently regardless of how the source text
// encoded them.
type Id string

// NewId creates an Id from a raw string, applying NFC normalization.
func NewId(s string) Id {
	if norm.NFC.IsNormalString(s) {
		return Id(s)
	}
	return Id(norm.NFC.String(s))
}

func (i Id) String() string {
	return string(i)
}

// Well-known hole names every well-formed Group exposes.
const (
	GoHole   Id = "go"
	DoneHole Id = "done"
)
