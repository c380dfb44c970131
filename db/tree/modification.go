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
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rajkumar426/yangtools/common/log"
	"github.com/rajkumar426/yangtools/data"
)

const (
	stateOpen      = "open"
	stateSealed    = "sealed"
	stateCommitted = "committed"
	stateAborted   = "aborted"
)

// Modification is a transaction builder: a private overlay of staged edits on
// top of one base snapshot.  Edits never touch the shared tree until the
// sealed Modification passes Prepare and the Candidate commits; discarding a
// Modification at any point has no effect on the tree.
//
// A Modification is owned by a single goroutine and is not safe for
// concurrent use.
type Modification struct {
	txid     string
	snapshot *Snapshot
	root     *modifiedNode
	state    string
	cursor   *Cursor
}

func makeTxID() string {
	txidBin, _ := uuid.New().MarshalBinary()
	return hex.EncodeToString(txidBin)[:12]
}

func newModification(snapshot *Snapshot) *Modification {
	m := &Modification{
		txid:     makeTxID(),
		snapshot: snapshot,
		root:     newModifiedNode(snapshot.root.Data().Identifier(), snapshot.root),
		state:    stateOpen,
	}
	log.Debugw("new-modification", log.Fields{"txid": m.txid, "base-version": snapshot.version})
	return m
}

// TxID returns the transaction id of this modification, used in logs
func (m *Modification) TxID() string {
	return m.txid
}

// BaseVersion returns the tree version this modification was opened against
func (m *Modification) BaseVersion() Version {
	return m.snapshot.version
}

func (m *Modification) guardEdit() error {
	if m.cursor != nil {
		return newIllegalState("modification %s has an open cursor", m.txid)
	}
	if m.state != stateOpen {
		return newIllegalState("modification %s is %s", m.txid, m.state)
	}
	return nil
}

func (m *Modification) baseRootData() data.NormalizedNode {
	return m.snapshot.root.Data()
}

// resolveForEdit walks the staged overlay down to path, creating overlays
// along the way.  Intermediate steps must exist in the staged-or-base view;
// the final step need not, so a write can create it and a delete of an absent
// node stays a no-op.
func (m *Modification) resolveForEdit(path data.InstanceIdentifier) (*modifiedNode, error) {
	cur := m.root
	curBase := m.baseRootData()
	args := path.Args()
	for i, a := range args {
		childBase := childOf(cur.childrenBaseOn(curBase), a)
		if i < len(args)-1 {
			present := childBase != nil
			if cm, ok := cur.child(a); ok {
				_, present = cm.materializeAgainst(childBase)
			}
			if !present {
				return nil, newPathNotFound(data.Path(args[:i+1]...))
			}
		}
		next, ok := cur.ensureChild(a)
		if !ok {
			// an ancestor is staged for deletion
			return nil, newPathNotFound(path)
		}
		cur = next
		curBase = childBase
	}
	return cur, nil
}

func checkIdentity(path data.InstanceIdentifier, node data.NormalizedNode) error {
	if path.IsRoot() {
		return nil
	}
	if !data.ArgEqual(path.Last(), node.Identifier()) {
		return newIllegalState("node identifier %s does not match path step %s",
			node.Identifier().String(), path.Last().String())
	}
	return nil
}

// Write stages a replacement of the node at path.  Previously staged
// operations at or below path are superseded.  A root write replaces the
// whole dataset and must supply a container of the same identity as the
// current root.
func (m *Modification) Write(path data.InstanceIdentifier, node data.NormalizedNode) error {
	if err := m.guardEdit(); err != nil {
		return err
	}
	if err := checkIdentity(path, node); err != nil {
		return err
	}
	if path.IsRoot() {
		if err := m.checkRootReplacement(node); err != nil {
			return err
		}
	}
	target, err := m.resolveForEdit(path)
	if err != nil {
		return err
	}
	target.applyWrite(node)
	return nil
}

// Merge stages a merge of node into the value at path, composing with
// whatever this transaction already staged there
func (m *Modification) Merge(path data.InstanceIdentifier, node data.NormalizedNode) error {
	if err := m.guardEdit(); err != nil {
		return err
	}
	if err := checkIdentity(path, node); err != nil {
		return err
	}
	if path.IsRoot() {
		if err := m.checkRootReplacement(node); err != nil {
			return err
		}
	}
	target, err := m.resolveForEdit(path)
	if err != nil {
		return err
	}
	target.applyMerge(node)
	return nil
}

// Delete stages removal of the subtree at path, discarding any staged
// descendant operations.  Deleting the root is not permitted; the dataset
// root container always exists.
func (m *Modification) Delete(path data.InstanceIdentifier) error {
	if err := m.guardEdit(); err != nil {
		return err
	}
	if path.IsRoot() {
		return newIllegalState("cannot delete the dataset root")
	}
	target, err := m.resolveForEdit(path)
	if err != nil {
		return err
	}
	target.applyDelete()
	return nil
}

// checkRootReplacement keeps the dataset rooted at a container of stable
// identity.  Root replacement is first-class but rare; see DESIGN.md.
func (m *Modification) checkRootReplacement(node data.NormalizedNode) error {
	if _, ok := node.(data.DataContainerNode); !ok {
		return errors.Errorf("root replacement requires a container, got %T", node)
	}
	if !data.ArgEqual(node.Identifier(), m.baseRootData().Identifier()) {
		return errors.Errorf("root replacement must keep identifier %s",
			m.baseRootData().Identifier().String())
	}
	return nil
}

// Read returns the effective value at path under the staged edits, falling
// back to the base snapshot where nothing is staged.  Reading is permitted on
// a sealed modification but not while a cursor is open.
func (m *Modification) Read(path data.InstanceIdentifier) (data.NormalizedNode, bool, error) {
	if m.cursor != nil {
		return nil, false, newIllegalState("modification %s has an open cursor", m.txid)
	}
	v, ok := m.readNode(m.root, m.baseRootData(), path.Args())
	return v, ok, nil
}

func (m *Modification) readNode(cur *modifiedNode, base data.NormalizedNode, args []data.PathArgument) (data.NormalizedNode, bool) {
	if len(args) == 0 {
		return cur.materializeAgainst(base)
	}
	childBase := childOf(cur.childrenBaseOn(base), args[0])
	if cm, ok := cur.child(args[0]); ok {
		return m.readNode(cm, childBase, args[1:])
	}
	if childBase == nil {
		return nil, false
	}
	// no overlay below this point, walk plain data
	v := childBase
	for _, a := range args[1:] {
		if v = childOf(v, a); v == nil {
			return nil, false
		}
	}
	return v, true
}

// Ready seals the modification: the overlay is normalized into its canonical
// delta and no further edits are accepted.  Sealing with an open cursor is a
// programming error.
func (m *Modification) Ready() error {
	if m.cursor != nil {
		return newIllegalState("modification %s has an open cursor", m.txid)
	}
	if m.state != stateOpen {
		return newIllegalState("modification %s is %s", m.txid, m.state)
	}
	m.root.seal(m.baseRootData())
	m.state = stateSealed
	log.Debugw("modification-sealed", log.Fields{"txid": m.txid, "root-op": m.root.op.String()})
	return nil
}

// Abort discards the modification.  Aborting is always safe: staged state
// never touched the shared tree.
func (m *Modification) Abort() error {
	if m.state == stateCommitted {
		return newIllegalState("modification %s is committed", m.txid)
	}
	if m.cursor != nil {
		m.cursor.closed = true
		m.cursor = nil
	}
	m.state = stateAborted
	log.Debugw("modification-aborted", log.Fields{"txid": m.txid})
	return nil
}
