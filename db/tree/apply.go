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
	"github.com/rajkumar426/yangtools/data"
)

// applyNode produces the tree node resulting from applying a sealed overlay
// to original at version v.  Untouched subtrees come back by reference; only
// the spine from the root to each change allocates.  A nil result is the
// tombstone: the parent rebuild drops the child.
func applyNode(original *TreeNode, mod *modifiedNode, v Version) *TreeNode {
	switch mod.op {
	case opNone:
		return original

	case opDelete:
		return nil

	case opWrite:
		// sealing folded child overlays into the written value
		return newTreeNode(mod.value, v)

	case opTouch:
		if original == nil {
			// invariant violation, callers check applicability first
			return nil
		}
		return applyChildren(original, mod, v)

	case opMerge:
		var baseData data.NormalizedNode
		if original != nil {
			baseData = original.Data()
		}
		merged := mergeNodes(baseData, mod.value)
		node := original
		if original == nil || merged != baseData {
			node = wrapReusing(merged, v, original)
		}
		return applyChildren(node, mod, v)
	}
	return original
}

// applyChildren rebuilds only the children that carry overlays, reusing the
// references of every untouched sibling.  The node's own version is kept;
// the subtree version advances when anything below changed.
func applyChildren(node *TreeNode, mod *modifiedNode, v Version) *TreeNode {
	if len(mod.children) == 0 {
		return node
	}
	container, ok := node.data.(data.DataContainerNode)
	if !ok {
		return node
	}
	d := container
	children := node.children
	changed := node.subtree == v
	for _, cm := range mod.orderedChildren() {
		var orig *TreeNode
		if o, ok := node.Child(cm.id); ok {
			orig = o
		}
		newChild := applyNode(orig, cm, v)
		if newChild == orig {
			continue
		}
		changed = true
		if newChild == nil {
			d = d.Without(cm.id)
			children = children.Delete(cm.id.String())
		} else {
			d = d.With(newChild.Data())
			children = children.Assoc(cm.id.String(), newChild)
		}
	}
	if !changed {
		return node
	}
	return &TreeNode{data: d, version: node.version, subtree: v, children: children}
}

// checkApplicable walks a sealed overlay against the tree's current state and
// reports the first staged operation whose base assumption no longer holds.
// The walk compares version stamps, never content: equal subtree versions
// short-circuit whole branches.
func checkApplicable(current *TreeNode, mod *modifiedNode, path data.InstanceIdentifier) error {
	switch mod.op {
	case opNone:
		return nil

	case opWrite, opDelete:
		if mod.original == nil {
			if current != nil {
				// created concurrently
				return newConflict(path)
			}
			return nil
		}
		if current == nil {
			// deleted concurrently
			return newConflict(path)
		}
		if current.subtree != mod.original.subtree {
			return newConflict(path)
		}
		return nil

	case opTouch, opMerge:
		existedAtBase := mod.original != nil
		existsNow := current != nil
		if existedAtBase != existsNow {
			return newConflict(path)
		}
		if existedAtBase && current.subtree == mod.original.subtree {
			// nothing below changed since the base snapshot
			return nil
		}
		if existedAtBase && mod.op == opMerge && mod.value != nil {
			if _, ok := mod.value.(data.DataContainerNode); !ok {
				// a merged value node was itself touched concurrently
				return newConflict(path)
			}
		}
		for _, cm := range mod.orderedChildren() {
			var cc *TreeNode
			if current != nil {
				if c, ok := current.Child(cm.id); ok {
					cc = c
				}
			}
			if err := checkApplicable(cc, cm, path.Child(cm.id)); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}
