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

	"jsouthworth.net/go/immutable/hashmap"
)

// childStore keeps children in a persistent hashmap keyed by the canonical
// string form of the child identifier.  Updates return a structurally shared
// copy, which is what makes tree-wide copy-on-write cheap.
type childStore struct {
	m *hashmap.Map
}

func emptyChildren() childStore {
	return childStore{m: hashmap.Empty()}
}

func childrenOf(nodes []NormalizedNode) childStore {
	s := emptyChildren()
	for _, n := range nodes {
		s = s.with(n)
	}
	return s
}

func (s childStore) with(child NormalizedNode) childStore {
	return childStore{m: s.m.Assoc(child.Identifier().String(), child)}
}

func (s childStore) without(id PathArgument) childStore {
	return childStore{m: s.m.Delete(id.String())}
}

func (s childStore) get(id PathArgument) (NormalizedNode, bool) {
	v, ok := s.m.Find(id.String())
	if !ok {
		return nil, false
	}
	return v.(NormalizedNode), true
}

func (s childStore) size() int {
	return s.m.Length()
}

func (s childStore) each(fn func(NormalizedNode) bool) {
	s.m.Range(func(e hashmap.Entry) bool {
		return fn(e.Value().(NormalizedNode))
	})
}

// ContainerNode is an interior node with named children
type ContainerNode struct {
	id       NodeID
	children childStore
}

// NewContainer creates a container with the given children
func NewContainer(name QName, children ...NormalizedNode) *ContainerNode {
	return &ContainerNode{id: NewNodeID(name), children: childrenOf(children)}
}

func (n *ContainerNode) Identifier() PathArgument { return n.id }

func (n *ContainerNode) Child(id PathArgument) (NormalizedNode, bool) {
	return n.children.get(id)
}

func (n *ContainerNode) Size() int { return n.children.size() }

func (n *ContainerNode) Each(fn func(NormalizedNode) bool) { n.children.each(fn) }

func (n *ContainerNode) With(child NormalizedNode) DataContainerNode {
	return &ContainerNode{id: n.id, children: n.children.with(child)}
}

func (n *ContainerNode) Without(id PathArgument) DataContainerNode {
	return &ContainerNode{id: n.id, children: n.children.without(id)}
}

func (n *ContainerNode) String() string {
	return fmt.Sprintf("container{%s, %d children}", n.id.String(), n.Size())
}

// MapEntryNode is one entry of a keyed list.  The entry's key values appear
// both in its identifier and as leaf children.
type MapEntryNode struct {
	id       NodeWithKeys
	children childStore
}

// NewMapEntry creates a list entry.  Key leaves missing from the supplied
// children are synthesized from the key predicates so the invariant between
// identifier and content holds by construction.
func NewMapEntry(name QName, keys map[QName]interface{}, children ...NormalizedNode) *MapEntryNode {
	id := NewNodeWithKeys(name, keys)
	store := childrenOf(children)
	for _, kv := range id.Keys() {
		keyID := NewNodeID(kv.Key)
		if _, ok := store.get(keyID); !ok {
			store = store.with(NewLeaf(kv.Key, kv.Value))
		}
	}
	return &MapEntryNode{id: id, children: store}
}

func (n *MapEntryNode) Identifier() PathArgument { return n.id }

// EntryID returns the typed map entry identifier
func (n *MapEntryNode) EntryID() NodeWithKeys { return n.id }

func (n *MapEntryNode) Child(id PathArgument) (NormalizedNode, bool) {
	return n.children.get(id)
}

func (n *MapEntryNode) Size() int { return n.children.size() }

func (n *MapEntryNode) Each(fn func(NormalizedNode) bool) { n.children.each(fn) }

func (n *MapEntryNode) With(child NormalizedNode) DataContainerNode {
	return &MapEntryNode{id: n.id, children: n.children.with(child)}
}

func (n *MapEntryNode) Without(id PathArgument) DataContainerNode {
	return &MapEntryNode{id: n.id, children: n.children.without(id)}
}

func (n *MapEntryNode) String() string {
	return fmt.Sprintf("map-entry{%s, %d children}", n.id.String(), n.Size())
}

// ChoiceNode holds the children of the currently active case of a choice
type ChoiceNode struct {
	id       NodeID
	children childStore
}

// NewChoice creates a choice node
func NewChoice(name QName, children ...NormalizedNode) *ChoiceNode {
	return &ChoiceNode{id: NewNodeID(name), children: childrenOf(children)}
}

func (n *ChoiceNode) Identifier() PathArgument { return n.id }

func (n *ChoiceNode) Child(id PathArgument) (NormalizedNode, bool) {
	return n.children.get(id)
}

func (n *ChoiceNode) Size() int { return n.children.size() }

func (n *ChoiceNode) Each(fn func(NormalizedNode) bool) { n.children.each(fn) }

func (n *ChoiceNode) With(child NormalizedNode) DataContainerNode {
	return &ChoiceNode{id: n.id, children: n.children.with(child)}
}

func (n *ChoiceNode) Without(id PathArgument) DataContainerNode {
	return &ChoiceNode{id: n.id, children: n.children.without(id)}
}

func (n *ChoiceNode) String() string {
	return fmt.Sprintf("choice{%s, %d children}", n.id.String(), n.Size())
}

// AugmentationNode groups the children contributed by one augmentation
type AugmentationNode struct {
	id       AugmentationID
	children childStore
}

// NewAugmentation creates an augmentation node
func NewAugmentation(id AugmentationID, children ...NormalizedNode) *AugmentationNode {
	return &AugmentationNode{id: id, children: childrenOf(children)}
}

func (n *AugmentationNode) Identifier() PathArgument { return n.id }

func (n *AugmentationNode) Child(id PathArgument) (NormalizedNode, bool) {
	return n.children.get(id)
}

func (n *AugmentationNode) Size() int { return n.children.size() }

func (n *AugmentationNode) Each(fn func(NormalizedNode) bool) { n.children.each(fn) }

func (n *AugmentationNode) With(child NormalizedNode) DataContainerNode {
	return &AugmentationNode{id: n.id, children: n.children.with(child)}
}

func (n *AugmentationNode) Without(id PathArgument) DataContainerNode {
	return &AugmentationNode{id: n.id, children: n.children.without(id)}
}

func (n *AugmentationNode) String() string {
	return fmt.Sprintf("augmentation{%s, %d children}", n.id.String(), n.Size())
}
