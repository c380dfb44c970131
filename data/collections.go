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
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// orderedStore keeps children in insertion order.  The backing linked hashmap
// is mutable, so every update clones it; the entries themselves are shared.
// User-ordered nodes are expected to be small relative to the keyed maps.
type orderedStore struct {
	m *linkedhashmap.Map
}

func emptyOrdered() orderedStore {
	return orderedStore{m: linkedhashmap.New()}
}

func orderedOf(nodes []NormalizedNode) orderedStore {
	s := emptyOrdered()
	for _, n := range nodes {
		s.m.Put(n.Identifier().String(), n)
	}
	return s
}

func (s orderedStore) clone() orderedStore {
	out := emptyOrdered()
	it := s.m.Iterator()
	for it.Next() {
		out.m.Put(it.Key(), it.Value())
	}
	return out
}

func (s orderedStore) with(child NormalizedNode) orderedStore {
	out := s.clone()
	out.m.Put(child.Identifier().String(), child)
	return out
}

func (s orderedStore) without(id PathArgument) orderedStore {
	out := s.clone()
	out.m.Remove(id.String())
	return out
}

func (s orderedStore) get(id PathArgument) (NormalizedNode, bool) {
	v, ok := s.m.Get(id.String())
	if !ok {
		return nil, false
	}
	return v.(NormalizedNode), true
}

func (s orderedStore) size() int {
	return s.m.Size()
}

func (s orderedStore) each(fn func(NormalizedNode) bool) {
	it := s.m.Iterator()
	for it.Next() {
		if !fn(it.Value().(NormalizedNode)) {
			return
		}
	}
}

// MapNode is an unordered keyed list; its children are MapEntryNodes
type MapNode struct {
	id      NodeID
	entries childStore
}

// NewMap creates an unordered keyed list
func NewMap(name QName, entries ...*MapEntryNode) *MapNode {
	s := emptyChildren()
	for _, e := range entries {
		s = s.with(e)
	}
	return &MapNode{id: NewNodeID(name), entries: s}
}

func (n *MapNode) Identifier() PathArgument { return n.id }

func (n *MapNode) Child(id PathArgument) (NormalizedNode, bool) {
	return n.entries.get(id)
}

func (n *MapNode) Size() int { return n.entries.size() }

func (n *MapNode) Each(fn func(NormalizedNode) bool) { n.entries.each(fn) }

func (n *MapNode) With(child NormalizedNode) DataContainerNode {
	if _, ok := child.(*MapEntryNode); !ok {
		panic(fmt.Sprintf("map %s cannot hold %T", n.id.String(), child))
	}
	return &MapNode{id: n.id, entries: n.entries.with(child)}
}

func (n *MapNode) Without(id PathArgument) DataContainerNode {
	return &MapNode{id: n.id, entries: n.entries.without(id)}
}

func (n *MapNode) String() string {
	return fmt.Sprintf("map{%s, %d entries}", n.id.String(), n.Size())
}

// OrderedMapNode is a user-ordered keyed list
type OrderedMapNode struct {
	id      NodeID
	entries orderedStore
}

// NewOrderedMap creates a user-ordered keyed list; entry order is preserved
func NewOrderedMap(name QName, entries ...*MapEntryNode) *OrderedMapNode {
	nodes := make([]NormalizedNode, len(entries))
	for i, e := range entries {
		nodes[i] = e
	}
	return &OrderedMapNode{id: NewNodeID(name), entries: orderedOf(nodes)}
}

func (n *OrderedMapNode) Identifier() PathArgument { return n.id }

func (n *OrderedMapNode) Child(id PathArgument) (NormalizedNode, bool) {
	return n.entries.get(id)
}

func (n *OrderedMapNode) Size() int { return n.entries.size() }

func (n *OrderedMapNode) Each(fn func(NormalizedNode) bool) { n.entries.each(fn) }

func (n *OrderedMapNode) With(child NormalizedNode) DataContainerNode {
	if _, ok := child.(*MapEntryNode); !ok {
		panic(fmt.Sprintf("ordered map %s cannot hold %T", n.id.String(), child))
	}
	return &OrderedMapNode{id: n.id, entries: n.entries.with(child)}
}

func (n *OrderedMapNode) Without(id PathArgument) DataContainerNode {
	return &OrderedMapNode{id: n.id, entries: n.entries.without(id)}
}

func (n *OrderedMapNode) String() string {
	return fmt.Sprintf("ordered-map{%s, %d entries}", n.id.String(), n.Size())
}

// LeafSetNode is an unordered leaf-list; its children are LeafSetEntryNodes
type LeafSetNode struct {
	id      NodeID
	entries childStore
}

// NewLeafSet creates an unordered leaf-list
func NewLeafSet(name QName, entries ...*LeafSetEntryNode) *LeafSetNode {
	s := emptyChildren()
	for _, e := range entries {
		s = s.with(e)
	}
	return &LeafSetNode{id: NewNodeID(name), entries: s}
}

// NewLeafSetOf creates an unordered leaf-list from plain values
func NewLeafSetOf(name QName, values ...interface{}) *LeafSetNode {
	entries := make([]*LeafSetEntryNode, len(values))
	for i, v := range values {
		entries[i] = NewLeafSetEntry(name, v)
	}
	return NewLeafSet(name, entries...)
}

func (n *LeafSetNode) Identifier() PathArgument { return n.id }

func (n *LeafSetNode) Child(id PathArgument) (NormalizedNode, bool) {
	return n.entries.get(id)
}

func (n *LeafSetNode) Size() int { return n.entries.size() }

func (n *LeafSetNode) Each(fn func(NormalizedNode) bool) { n.entries.each(fn) }

func (n *LeafSetNode) With(child NormalizedNode) DataContainerNode {
	if _, ok := child.(*LeafSetEntryNode); !ok {
		panic(fmt.Sprintf("leaf-set %s cannot hold %T", n.id.String(), child))
	}
	return &LeafSetNode{id: n.id, entries: n.entries.with(child)}
}

func (n *LeafSetNode) Without(id PathArgument) DataContainerNode {
	return &LeafSetNode{id: n.id, entries: n.entries.without(id)}
}

func (n *LeafSetNode) String() string {
	return fmt.Sprintf("leaf-set{%s, %d entries}", n.id.String(), n.Size())
}

// OrderedLeafSetNode is a user-ordered leaf-list
type OrderedLeafSetNode struct {
	id      NodeID
	entries orderedStore
}

// NewOrderedLeafSet creates a user-ordered leaf-list; entry order is preserved
func NewOrderedLeafSet(name QName, entries ...*LeafSetEntryNode) *OrderedLeafSetNode {
	nodes := make([]NormalizedNode, len(entries))
	for i, e := range entries {
		nodes[i] = e
	}
	return &OrderedLeafSetNode{id: NewNodeID(name), entries: orderedOf(nodes)}
}

func (n *OrderedLeafSetNode) Identifier() PathArgument { return n.id }

func (n *OrderedLeafSetNode) Child(id PathArgument) (NormalizedNode, bool) {
	return n.entries.get(id)
}

func (n *OrderedLeafSetNode) Size() int { return n.entries.size() }

func (n *OrderedLeafSetNode) Each(fn func(NormalizedNode) bool) { n.entries.each(fn) }

func (n *OrderedLeafSetNode) With(child NormalizedNode) DataContainerNode {
	if _, ok := child.(*LeafSetEntryNode); !ok {
		panic(fmt.Sprintf("ordered leaf-set %s cannot hold %T", n.id.String(), child))
	}
	return &OrderedLeafSetNode{id: n.id, entries: n.entries.with(child)}
}

func (n *OrderedLeafSetNode) Without(id PathArgument) DataContainerNode {
	return &OrderedLeafSetNode{id: n.id, entries: n.entries.without(id)}
}

func (n *OrderedLeafSetNode) String() string {
	return fmt.Sprintf("ordered-leaf-set{%s, %d entries}", n.id.String(), n.Size())
}
