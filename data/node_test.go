/*
 * Copyright 2018-present Open Networking Foundation

 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at

 * http://www.apache.org/licenses/LICENSE-2.0

 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package data

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerWithSharesSiblings(t *testing.T) {
	left := NewContainer(Name("left"), NewLeaf(Name("x"), 1))
	right := NewContainer(Name("right"), NewLeaf(Name("y"), 2))
	parent := NewContainer(Name("parent"), left, right)

	updated := parent.With(NewContainer(Name("left"), NewLeaf(Name("x"), 42)))

	// the untouched sibling keeps its reference in the copy
	sibling, ok := updated.Child(ID("right"))
	require.True(t, ok)
	assert.Same(t, right, sibling)

	// the original is unchanged
	orig, ok := parent.Child(ID("left"))
	require.True(t, ok)
	assert.Same(t, left, orig)

	repl, ok := updated.Child(ID("left"))
	require.True(t, ok)
	leaf, ok := repl.(DataContainerNode).Child(ID("x"))
	require.True(t, ok)
	assert.Equal(t, 42, leaf.(ValueNode).Value())
}

func TestContainerWithout(t *testing.T) {
	parent := NewContainer(Name("parent"),
		NewLeaf(Name("a"), 1),
		NewLeaf(Name("b"), 2))

	shrunk := parent.Without(ID("a"))
	assert.Equal(t, 1, shrunk.Size())
	assert.Equal(t, 2, parent.Size())
	_, ok := shrunk.Child(ID("a"))
	assert.False(t, ok)
}

func TestMapEntrySynthesizesKeyLeaves(t *testing.T) {
	entry := NewMapEntry(Name("interface"),
		map[QName]interface{}{Name("name"): "eth0"},
		NewLeaf(Name("mtu"), 1500))

	keyLeaf, ok := entry.Child(ID("name"))
	require.True(t, ok)
	assert.Equal(t, "eth0", keyLeaf.(ValueNode).Value())

	mtu, ok := entry.Child(ID("mtu"))
	require.True(t, ok)
	assert.Equal(t, 1500, mtu.(ValueNode).Value())
}

func TestMapNodeEntryLookup(t *testing.T) {
	e0 := NewMapEntry(Name("interface"), map[QName]interface{}{Name("name"): "eth0"})
	e1 := NewMapEntry(Name("interface"), map[QName]interface{}{Name("name"): "eth1"})
	m := NewMap(Name("interface"), e0, e1)

	found, ok := m.Child(NewNodeWithKeys(Name("interface"), map[QName]interface{}{Name("name"): "eth1"}))
	require.True(t, ok)
	assert.Same(t, e1, found)

	_, ok = m.Child(NewNodeWithKeys(Name("interface"), map[QName]interface{}{Name("name"): "eth9"}))
	assert.False(t, ok)
}

func TestOrderedMapPreservesOrder(t *testing.T) {
	entries := []*MapEntryNode{
		NewMapEntry(Name("rule"), map[QName]interface{}{Name("seq"): 30}),
		NewMapEntry(Name("rule"), map[QName]interface{}{Name("seq"): 10}),
		NewMapEntry(Name("rule"), map[QName]interface{}{Name("seq"): 20}),
	}
	om := NewOrderedMap(Name("rule"), entries...)

	var seen []interface{}
	om.Each(func(n NormalizedNode) bool {
		leaf, _ := n.(DataContainerNode).Child(ID("seq"))
		seen = append(seen, leaf.(ValueNode).Value())
		return true
	})
	assert.Equal(t, []interface{}{30, 10, 20}, seen)

	// updates keep insertion order and do not disturb the original
	extended := om.With(NewMapEntry(Name("rule"), map[QName]interface{}{Name("seq"): 40}))
	assert.Equal(t, 4, extended.Size())
	assert.Equal(t, 3, om.Size())
}

func TestLeafSet(t *testing.T) {
	ls := NewLeafSetOf(Name("dns"), "10.0.0.1", "10.0.0.2")
	assert.Equal(t, 2, ls.Size())

	_, ok := ls.Child(NewNodeWithValue(Name("dns"), "10.0.0.1"))
	assert.True(t, ok)
	_, ok = ls.Child(NewNodeWithValue(Name("dns"), "10.9.9.9"))
	assert.False(t, ok)
}

func TestMapRejectsForeignChildren(t *testing.T) {
	m := NewMap(Name("interface"))
	assert.Panics(t, func() {
		m.With(NewLeaf(Name("oops"), 1))
	})
}

func TestExportAndEqual(t *testing.T) {
	tree := NewContainer(Name("data"),
		NewContainer(Name("a"),
			NewLeaf(Name("b"), 1)),
		NewLeafSetOf(Name("dns"), "10.0.0.1"))

	exported := Export(tree)
	expected := map[string]interface{}{
		"a": map[string]interface{}{
			"b": 1,
		},
		"dns": map[string]interface{}{
			"dns[.=10.0.0.1]": "10.0.0.1",
		},
	}
	if diff := cmp.Diff(expected, exported); diff != "" {
		t.Errorf("unexpected export (-want +got):\n%s", diff)
	}

	same := NewContainer(Name("data"),
		NewLeafSetOf(Name("dns"), "10.0.0.1"),
		NewContainer(Name("a"), NewLeaf(Name("b"), 1)))
	assert.True(t, Equal(tree, same))

	different := NewContainer(Name("data"),
		NewContainer(Name("a"), NewLeaf(Name("b"), 2)),
		NewLeafSetOf(Name("dns"), "10.0.0.1"))
	assert.False(t, Equal(tree, different))
	assert.False(t, Equal(tree, nil))
	assert.True(t, Equal(nil, nil))
}
