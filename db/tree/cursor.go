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
	"github.com/rajkumar426/yangtools/common/log"
	"github.com/rajkumar426/yangtools/data"
)

// cursorFrame is one step of the cursor's position: the overlay at that step
// and the pre-overlay value it resolves against
type cursorFrame struct {
	mod  *modifiedNode
	base data.NormalizedNode
}

// Cursor is a stateful path-relative view over a Modification, for bulk edits
// of nearby paths without restating absolute paths or re-walking from the
// root.  While a cursor is open it holds an exclusive lease: direct edits on
// the owning Modification are rejected until Close.
//
// Cursor operations address children of the current position.
type Cursor struct {
	owner *Modification
	// frames holds the path from the root overlay to the current
	// position; the first anchorDepth frames are the anchor and Exit
	// never pops below them.
	frames      []cursorFrame
	anchorDepth int
	closed      bool
}

// OpenCursor returns a cursor anchored at path.  The anchor must resolve in
// the staged-or-base view, and only one cursor may be open on a Modification
// at a time.
func (m *Modification) OpenCursor(path data.InstanceIdentifier) (*Cursor, error) {
	if m.cursor != nil {
		return nil, newIllegalState("modification %s already has an open cursor", m.txid)
	}
	if m.state != stateOpen {
		return nil, newIllegalState("modification %s is %s", m.txid, m.state)
	}
	if _, ok, _ := m.Read(path); !ok {
		return nil, newPathNotFound(path)
	}

	frames := []cursorFrame{{mod: m.root, base: m.baseRootData()}}
	cur := m.root
	curBase := m.baseRootData()
	for _, a := range path.Args() {
		childBase := childOf(cur.childrenBaseOn(curBase), a)
		next, ok := cur.ensureChild(a)
		if !ok {
			return nil, newPathNotFound(path)
		}
		frames = append(frames, cursorFrame{mod: next, base: childBase})
		cur, curBase = next, childBase
	}

	c := &Cursor{owner: m, frames: frames, anchorDepth: len(frames)}
	m.cursor = c
	log.Debugw("cursor-opened", log.Fields{"txid": m.txid, "anchor": path.String()})
	return c, nil
}

func (c *Cursor) guard() error {
	if c.closed {
		return newIllegalState("cursor on modification %s is closed", c.owner.txid)
	}
	if c.owner.state != stateOpen {
		return newIllegalState("modification %s is %s", c.owner.txid, c.owner.state)
	}
	return nil
}

func (c *Cursor) top() cursorFrame {
	return c.frames[len(c.frames)-1]
}

// Enter pushes the given path steps, moving the cursor deeper.  Each step
// must exist in the staged-or-base view, so new subtrees are written first
// and entered after.  On error the cursor stays at the last step it entered
// successfully.
func (c *Cursor) Enter(args ...data.PathArgument) error {
	if err := c.guard(); err != nil {
		return err
	}
	for _, a := range args {
		top := c.top()
		childBase := childOf(top.mod.childrenBaseOn(top.base), a)
		present := childBase != nil
		if cm, ok := top.mod.child(a); ok {
			_, present = cm.materializeAgainst(childBase)
		}
		if !present {
			return newPathNotFound(data.Path(a))
		}
		next, ok := top.mod.ensureChild(a)
		if !ok {
			return newPathNotFound(data.Path(a))
		}
		c.frames = append(c.frames, cursorFrame{mod: next, base: childBase})
	}
	return nil
}

// Exit pops one step.  At the anchor, Exit is a no-op: the cursor never
// climbs above the path it was opened at.
func (c *Cursor) Exit() {
	if len(c.frames) > c.anchorDepth {
		c.frames = c.frames[:len(c.frames)-1]
	}
}

// Write stages a write of the given child of the current position, exactly
// as the equivalent Modification-level call at the absolute path would
func (c *Cursor) Write(id data.PathArgument, node data.NormalizedNode) error {
	if err := c.guard(); err != nil {
		return err
	}
	if !data.ArgEqual(id, node.Identifier()) {
		return newIllegalState("node identifier %s does not match argument %s",
			node.Identifier().String(), id.String())
	}
	child, ok := c.top().mod.ensureChild(id)
	if !ok {
		return newPathNotFound(data.Path(id))
	}
	child.applyWrite(node)
	return nil
}

// Merge stages a merge into the given child of the current position
func (c *Cursor) Merge(id data.PathArgument, node data.NormalizedNode) error {
	if err := c.guard(); err != nil {
		return err
	}
	if !data.ArgEqual(id, node.Identifier()) {
		return newIllegalState("node identifier %s does not match argument %s",
			node.Identifier().String(), id.String())
	}
	child, ok := c.top().mod.ensureChild(id)
	if !ok {
		return newPathNotFound(data.Path(id))
	}
	child.applyMerge(node)
	return nil
}

// Delete stages removal of the given child of the current position
func (c *Cursor) Delete(id data.PathArgument) error {
	if err := c.guard(); err != nil {
		return err
	}
	child, ok := c.top().mod.ensureChild(id)
	if !ok {
		return newPathNotFound(data.Path(id))
	}
	child.applyDelete()
	return nil
}

// Close releases the cursor's lease on the Modification.  The cursor's
// frames are the same overlay instances the Modification owns, so closing is
// purely a state transition; afterwards direct edits and a new cursor are
// allowed again.
func (c *Cursor) Close() error {
	if c.closed {
		return newIllegalState("cursor on modification %s is already closed", c.owner.txid)
	}
	c.closed = true
	c.owner.cursor = nil
	log.Debugw("cursor-closed", log.Fields{"txid": c.owner.txid})
	return nil
}
