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
package tree

import (
	"jsouthworth.net/go/immutable/hashmap"

	"github.com/rajkumar426/yangtools/data"
)

// Version stamps a TreeNode.  A node's own version changes whenever its data
// is rewritten; its subtree version changes whenever any descendant changes.
// Conflict detection compares versions, never content.
type Version uint64

// TreeNode is one immutable node of the authoritative tree: a data node plus
// child TreeNode references and version stamps.  TreeNodes are never mutated
// after construction; every snapshot that was current when the node was last
// written shares it by reference.
type TreeNode struct {
	data    data.NormalizedNode
	version Version
	subtree Version
	// children mirrors the container children of data; nil for value kinds.
	// Keyed by the canonical identifier string, values are *TreeNode.
	children *hashmap.Map
}

// newTreeNode wraps a data node and all of its descendants at the given
// version.  Used when a subtree enters the tree wholesale, on seeding or
// write.
func newTreeNode(nd data.NormalizedNode, v Version) *TreeNode {
	return wrapReusing(nd, v, nil)
}

// wrapReusing wraps nd at version v, reusing child TreeNodes of prev whose
// data is reference-identical to the corresponding child of nd.  This is what
// keeps a merge from re-stamping subtrees it never touched.
func wrapReusing(nd data.NormalizedNode, v Version, prev *TreeNode) *TreeNode {
	t := &TreeNode{data: nd, version: v, subtree: v}
	container, ok := nd.(data.DataContainerNode)
	if !ok {
		return t
	}
	children := hashmap.Empty()
	container.Each(func(c data.NormalizedNode) bool {
		var old *TreeNode
		if prev != nil {
			if o, ok := prev.Child(c.Identifier()); ok {
				old = o
			}
		}
		if old != nil && old.data == c {
			children = children.Assoc(c.Identifier().String(), old)
			return true
		}
		children = children.Assoc(c.Identifier().String(), wrapReusing(c, v, old))
		return true
	})
	t.children = children
	// A container's own value is nothing but its children, so rewrapping
	// keeps the previous version; only the subtree version advances.
	if prev != nil {
		t.version = prev.version
	}
	return t
}

// Data returns the data node this tree node holds
func (t *TreeNode) Data() data.NormalizedNode {
	return t.data
}

// Version returns the version at which this node's own data was last written
func (t *TreeNode) Version() Version {
	return t.version
}

// SubtreeVersion returns the version at which anything below this node last
// changed
func (t *TreeNode) SubtreeVersion() Version {
	return t.subtree
}

// Child returns the child tree node addressed by the given argument
func (t *TreeNode) Child(id data.PathArgument) (*TreeNode, bool) {
	if t.children == nil {
		return nil, false
	}
	v, ok := t.children.Find(id.String())
	if !ok {
		return nil, false
	}
	return v.(*TreeNode), true
}

// lookup walks the given path steps below t
func (t *TreeNode) lookup(args []data.PathArgument) (*TreeNode, bool) {
	cur := t
	for _, a := range args {
		next, ok := cur.Child(a)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
