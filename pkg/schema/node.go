// Package schema holds the JSON-Schema fragment representation produced by
// the generator: an insertion-ordered key/value tree plus the set of types
// the fragment referenced but did not inline.
package schema

import (
	"bytes"

	"github.com/cubahno/oasgen/pkg/typesystem"
	json "github.com/goccy/go-json"
	"github.com/mohae/deepcopy"
)

// Node is a JSON-Schema fragment under construction. Keys keep insertion
// order so that two identical builds marshal byte-identically. Values are
// bools, numbers, strings, nested *Node values or []any slices.
//
// A Node also accumulates its reference set: every type it rendered as a
// $ref instead of inlining, deduplicated by canonical key in first-seen
// order. Ownership of the set transfers to the caller, which unions it
// upward through MergeRefs.
type Node struct {
	keys   []string
	values map[string]any

	refKeys []string
	refs    map[string]typesystem.TypeDescriptor
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{values: map[string]any{}}
}

// Set stores a value under key, appending the key on first use and keeping
// its original position on overwrite.
func (n *Node) Set(key string, value any) {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (any, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Has reports whether key is present.
func (n *Node) Has(key string) bool {
	_, ok := n.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Len returns the number of keys.
func (n *Node) Len() int {
	return len(n.keys)
}

// AddRef records a referenced-but-not-inlined type. It returns false when
// the type was already recorded: a type appears in the reference set at most
// once no matter how many times the traversal reaches it.
func (n *Node) AddRef(t typesystem.TypeDescriptor) bool {
	key := t.Key()
	if _, ok := n.refs[key]; ok {
		return false
	}
	if n.refs == nil {
		n.refs = map[string]typesystem.TypeDescriptor{}
	}
	n.refs[key] = t
	n.refKeys = append(n.refKeys, key)
	return true
}

// Refs returns the reference set in first-seen order.
func (n *Node) Refs() []typesystem.TypeDescriptor {
	out := make([]typesystem.TypeDescriptor, 0, len(n.refKeys))
	for _, key := range n.refKeys {
		out = append(out, n.refs[key])
	}
	return out
}

// HasRef reports whether the type is already in the reference set.
func (n *Node) HasRef(t typesystem.TypeDescriptor) bool {
	_, ok := n.refs[t.Key()]
	return ok
}

// MergeRefs unions another node's reference set into this one.
func (n *Node) MergeRefs(other *Node) {
	if other == nil {
		return
	}
	for _, key := range other.refKeys {
		n.AddRef(other.refs[key])
	}
}

// Clone returns a deep copy of the node, including its reference set.
func (n *Node) Clone() *Node {
	c := NewNode()
	for _, key := range n.keys {
		c.Set(key, cloneValue(n.values[key]))
	}
	for _, key := range n.refKeys {
		c.AddRef(n.refs[key])
	}
	return c
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Node:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return deepcopy.Copy(v)
	}
}

// MarshalJSON renders the node as a JSON object with keys in insertion
// order. The reference set is bookkeeping and is not serialized.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(n.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns the JSON rendering, or an empty string on encoding errors.
func (n *Node) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}
