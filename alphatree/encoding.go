package alphatree

import (
	jsoniter "github.com/json-iterator/go"
)

var dumpAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// dump is the persisted array layout: the same flat arrays the Arena
// keeps internally, serialised verbatim so a tree can be round-tripped
// or inspected without walking it.
type dump struct {
	LeafCount   int       `json:"leaf_count"`
	CompCount   int       `json:"comp_count"`
	Parent      []uint32  `json:"parent"`
	LeafLevel   []float64 `json:"leaf_level"`
	CompLevel   []float64 `json:"comp_level"`
	ChildOffset []uint32  `json:"child_offset,omitempty"`
	Children    []uint32  `json:"children,omitempty"`
}

// MarshalJSON encodes the tree as its flat arrays — counts, parent,
// levels, and the CSR child list when built. Everything is an integer
// index or a level value, so the payload is enough to reconstruct the
// whole hierarchy.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return dumpAPI.Marshal(dump{
		LeafCount:   t.leafCount,
		CompCount:   t.CompCount(),
		Parent:      t.parent,
		LeafLevel:   t.leafLevel,
		CompLevel:   t.compLevel,
		ChildOffset: t.childOffset,
		Children:    t.children,
	})
}

// Dump returns the same payload MarshalJSON produces, pre-indented for
// human inspection — handy in tests and debugging sessions.
func (t *Tree) Dump() ([]byte, error) {
	return dumpAPI.MarshalIndent(dump{
		LeafCount:   t.leafCount,
		CompCount:   t.CompCount(),
		Parent:      t.parent,
		LeafLevel:   t.leafLevel,
		CompLevel:   t.compLevel,
		ChildOffset: t.childOffset,
		Children:    t.children,
	}, "", "  ")
}
