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

// NormalizedNode is a single schema-conformant data node.  Nodes are
// immutable; mutating operations on container kinds return structurally
// shared copies.
//
// The set of node kinds is closed: LeafNode, LeafSetEntryNode,
// ContainerNode, MapEntryNode, MapNode, OrderedMapNode, LeafSetNode,
// OrderedLeafSetNode, ChoiceNode and AugmentationNode.
type NormalizedNode interface {
	// Identifier returns the path argument addressing this node within
	// its parent
	Identifier() PathArgument
}

// ValueNode is a node holding a scalar value: a leaf or a leaf-set entry
type ValueNode interface {
	NormalizedNode
	Value() interface{}
}

// DataContainerNode is a node holding child nodes: containers, map entries,
// maps, leaf-sets, choices and augmentations.  Child identifiers are unique
// within a parent.
type DataContainerNode interface {
	NormalizedNode

	// Child returns the child addressed by the given argument
	Child(id PathArgument) (NormalizedNode, bool)
	// Size returns the number of children
	Size() int
	// Each iterates the children until fn returns false.  Iteration order
	// is only meaningful for the user-ordered kinds.
	Each(fn func(NormalizedNode) bool)
	// With returns a copy of this node with the child added or replaced
	With(child NormalizedNode) DataContainerNode
	// Without returns a copy of this node with the child removed
	Without(id PathArgument) DataContainerNode
}

// Kind discriminates the node variants
type Kind int

const (
	KindLeaf Kind = iota
	KindLeafSetEntry
	KindContainer
	KindMapEntry
	KindMap
	KindOrderedMap
	KindLeafSet
	KindOrderedLeafSet
	KindChoice
	KindAugmentation
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindLeafSetEntry:
		return "leaf-set-entry"
	case KindContainer:
		return "container"
	case KindMapEntry:
		return "map-entry"
	case KindMap:
		return "map"
	case KindOrderedMap:
		return "ordered-map"
	case KindLeafSet:
		return "leaf-set"
	case KindOrderedLeafSet:
		return "ordered-leaf-set"
	case KindChoice:
		return "choice"
	case KindAugmentation:
		return "augmentation"
	}
	return "unknown"
}

// KindOf returns the variant of the given node
func KindOf(n NormalizedNode) Kind {
	switch n.(type) {
	case *LeafNode:
		return KindLeaf
	case *LeafSetEntryNode:
		return KindLeafSetEntry
	case *ContainerNode:
		return KindContainer
	case *MapEntryNode:
		return KindMapEntry
	case *MapNode:
		return KindMap
	case *OrderedMapNode:
		return KindOrderedMap
	case *LeafSetNode:
		return KindLeafSet
	case *OrderedLeafSetNode:
		return KindOrderedLeafSet
	case *ChoiceNode:
		return KindChoice
	case *AugmentationNode:
		return KindAugmentation
	}
	return KindUnknown
}
