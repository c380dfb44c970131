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

// modifiedNode is the mutable overlay recording one pending operation over a
// TreeNode.  A modified node is owned by exactly one Modification and is
// never shared across transactions.  Child overlays exist only for children
// that were themselves touched.
type modifiedNode struct {
	id data.PathArgument
	op operation
	// original is the tree node this overlay shadows, captured from the
	// base snapshot when the overlay was created; nil when the path did
	// not exist at the base.
	original *TreeNode
	// value is the staged payload for write and merge
	value    data.NormalizedNode
	children map[string]*modifiedNode
	// order records child overlay creation order; folding and application
	// follow it so user-ordered kinds keep their entry order
	order  []string
	sealed bool
}

func newModifiedNode(id data.PathArgument, original *TreeNode) *modifiedNode {
	return &modifiedNode{id: id, op: opNone, original: original}
}

func (m *modifiedNode) child(id data.PathArgument) (*modifiedNode, bool) {
	c, ok := m.children[id.String()]
	return c, ok
}

// ensureChild returns the overlay for the given child, creating it on first
// touch.  Returns false when this node is staged for deletion: nothing below
// a tombstone can be edited until the path itself is rewritten.
func (m *modifiedNode) ensureChild(id data.PathArgument) (*modifiedNode, bool) {
	if m.op == opDelete {
		return nil, false
	}
	if c, ok := m.children[id.String()]; ok {
		return c, true
	}
	var original *TreeNode
	if m.original != nil {
		if o, ok := m.original.Child(id); ok {
			original = o
		}
	}
	c := newModifiedNode(id, original)
	if m.children == nil {
		m.children = make(map[string]*modifiedNode)
	}
	m.children[id.String()] = c
	m.order = append(m.order, id.String())
	if m.op == opNone {
		m.op = opTouch
	}
	return c, true
}

// orderedChildren returns the child overlays in creation order, skipping
// entries pruned at seal
func (m *modifiedNode) orderedChildren() []*modifiedNode {
	out := make([]*modifiedNode, 0, len(m.children))
	for _, key := range m.order {
		if c, ok := m.children[key]; ok {
			out = append(out, c)
		}
	}
	return out
}

// childrenBaseOn returns the data this node's child overlays resolve
// against, given the pre-overlay value of the node itself: the inherited
// base for none/touch, the staged payload for write, the folded result for
// merge, absence for a tombstone.
func (m *modifiedNode) childrenBaseOn(base data.NormalizedNode) data.NormalizedNode {
	switch m.op {
	case opWrite:
		return m.value
	case opMerge:
		return mergeNodes(base, m.value)
	case opDelete:
		return nil
	}
	return base
}

// childOf looks a child up in a plain data node
func childOf(v data.NormalizedNode, id data.PathArgument) data.NormalizedNode {
	container, ok := v.(data.DataContainerNode)
	if !ok {
		return nil
	}
	c, ok := container.Child(id)
	if !ok {
		return nil
	}
	return c
}

// applyWrite stages a write.  Any previously staged operation at or below
// this path is superseded.
func (m *modifiedNode) applyWrite(v data.NormalizedNode) {
	m.op = opWrite
	m.value = v
	m.children = nil
	m.order = nil
}

// applyDelete stages a delete, discarding staged descendants
func (m *modifiedNode) applyDelete() {
	m.op = opDelete
	m.value = nil
	m.children = nil
	m.order = nil
}

// applyMerge stages a merge, composing with whatever is already staged here.
// Container payloads are decomposed child by child so that edits staged
// earlier in the transaction compose in the order they were issued.
func (m *modifiedNode) applyMerge(v data.NormalizedNode) {
	if m.op == opDelete {
		// merge-after-delete resurrects the path as a plain write
		m.applyWrite(v)
		return
	}

	container, isContainer := v.(data.DataContainerNode)
	if !isContainer {
		switch m.op {
		case opNone, opTouch:
			m.op = opMerge
			m.value = v
		case opWrite, opMerge:
			m.value = mergeNodes(m.value, v)
		}
		return
	}

	switch m.op {
	case opNone, opTouch:
		m.op = opMerge
		m.value = emptyLike(container)
	case opWrite, opMerge:
		m.value = mergeNodes(m.value, emptyLike(container))
	}
	container.Each(func(c data.NormalizedNode) bool {
		child, ok := m.ensureChild(c.Identifier())
		if !ok {
			// cannot happen: this node is not a tombstone here
			return true
		}
		child.applyMerge(c)
		return true
	})
}

// materialize computes the effective value of this node under the staged
// operations: the base data with the operation and any child overlays folded
// in.  The second return is false when the node resolves to absence.
func (m *modifiedNode) materialize() (data.NormalizedNode, bool) {
	var base data.NormalizedNode
	if m.original != nil {
		base = m.original.Data()
	}
	return m.materializeAgainst(base)
}

// materializeAgainst computes the effective value given the pre-overlay value
// this node resolves against.  For overlays nested below a staged write or
// merge the base comes from the parent's payload rather than from the
// snapshot, which is why it is threaded explicitly.
func (m *modifiedNode) materializeAgainst(base data.NormalizedNode) (data.NormalizedNode, bool) {
	switch m.op {
	case opNone:
		return base, base != nil
	case opTouch:
		v := m.foldChildren(base)
		return v, v != nil
	case opDelete:
		return nil, false
	case opWrite:
		return m.foldChildren(m.value), true
	case opMerge:
		v := m.foldChildren(mergeNodes(base, m.value))
		return v, v != nil
	}
	return nil, false
}

// foldChildren applies this node's child overlays on top of d
func (m *modifiedNode) foldChildren(d data.NormalizedNode) data.NormalizedNode {
	if d == nil || len(m.children) == 0 {
		return d
	}
	container, ok := d.(data.DataContainerNode)
	if !ok {
		return d
	}
	out := container
	for _, cm := range m.orderedChildren() {
		var childBase data.NormalizedNode
		if c, ok := out.Child(cm.id); ok {
			childBase = c
		}
		v, present := cm.materializeAgainst(childBase)
		if present {
			out = out.With(v)
		} else if childBase != nil {
			out = out.Without(cm.id)
		}
	}
	return out
}

// seal normalizes the overlay into its canonical delta form and makes it
// read-only: child overlays that net out to nothing are dropped, a touch
// without surviving children degenerates to none, a write folds its child
// overlays into the written value, and deleting a node absent from the
// effective base is no change at all.
//
// base is the pre-overlay value this node resolves against, threaded from the
// parent exactly as in materializeAgainst: below a staged write or merge it is
// the staged payload, not the snapshot.  Normalizing against m.original instead
// would flip a delete of a payload-only child to none and resurrect the child
// when the write folds.
func (m *modifiedNode) seal(base data.NormalizedNode) {
	effective := m.childrenBaseOn(base)
	for key, c := range m.children {
		c.seal(childOf(effective, c.id))
		if c.op == opNone && len(c.children) == 0 {
			delete(m.children, key)
		}
	}
	switch m.op {
	case opTouch:
		if len(m.children) == 0 {
			m.op = opNone
		}
	case opWrite:
		v, _ := m.materializeAgainst(base)
		m.value = v
		m.children = nil
		m.order = nil
	case opMerge:
		// a merge that nets out to the effective base is no change at all
		if base != nil {
			if v, ok := m.materializeAgainst(base); ok && v == base {
				m.op = opNone
				m.value = nil
				m.children = nil
				m.order = nil
			}
		}
	case opDelete:
		if base == nil {
			m.op = opNone
		}
	}
	m.sealed = true
}

// emptyLike builds a childless node of the same kind and identity as v
func emptyLike(v data.DataContainerNode) data.DataContainerNode {
	switch t := v.(type) {
	case *data.ContainerNode:
		return data.NewContainer(t.Identifier().Name())
	case *data.MapEntryNode:
		keys := make(map[data.QName]interface{})
		for _, kv := range t.EntryID().Keys() {
			keys[kv.Key] = kv.Value
		}
		return data.NewMapEntry(t.Identifier().Name(), keys)
	case *data.MapNode:
		return data.NewMap(t.Identifier().Name())
	case *data.OrderedMapNode:
		return data.NewOrderedMap(t.Identifier().Name())
	case *data.LeafSetNode:
		return data.NewLeafSet(t.Identifier().Name())
	case *data.OrderedLeafSetNode:
		return data.NewOrderedLeafSet(t.Identifier().Name())
	case *data.ChoiceNode:
		return data.NewChoice(t.Identifier().Name())
	case *data.AugmentationNode:
		return data.NewAugmentation(t.Identifier().(data.AugmentationID))
	}
	return v
}
