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

// Package tree implements the transactional in-memory data tree: an
// immutable versioned node graph with structural sharing, a mutable overlay
// for staging transactions, path-scoped cursors for bulk edits and an
// optimistic-concurrency commit protocol.
package tree

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/rajkumar426/yangtools/common/log"
	"github.com/rajkumar426/yangtools/data"
	"github.com/rajkumar426/yangtools/schema"
)

// DataTree is the process-wide root holder.  Reads take snapshots and never
// block; the commit path is serialized so at most one prepare+commit pair
// mutates the root reference at a time.
type DataTree struct {
	mutex   sync.RWMutex
	root    *TreeNode
	version Version
	schema  schema.Context
}

// NewDataTree creates a tree seeded with the given dataset root, validated by
// the given schema context.  A nil initial root seeds an empty container
// named "data"; a nil context validates permissively.
func NewDataTree(initial data.NormalizedNode, schemaCtx schema.Context) (*DataTree, error) {
	if initial == nil {
		initial = data.NewContainer(data.Name("data"))
	}
	if _, ok := initial.(data.DataContainerNode); !ok {
		return nil, errors.Errorf("dataset root must be a container kind, got %T", initial)
	}
	if schemaCtx == nil {
		schemaCtx = schema.Permissive()
	}
	dt := &DataTree{
		root:   newTreeNode(initial, 0),
		schema: schemaCtx,
	}
	log.Infow("data-tree-created", log.Fields{"root": initial.Identifier().String()})
	return dt, nil
}

// Snapshot is an immutable reference to the tree's state as of a point in
// time, unaffected by later commits
type Snapshot struct {
	tree    *DataTree
	root    *TreeNode
	version Version
}

// Snapshot returns the current state of the tree.  Snapshots are cheap: a
// reference to an already-immutable root.
func (dt *DataTree) Snapshot() *Snapshot {
	dt.mutex.RLock()
	defer dt.mutex.RUnlock()
	GetStats().IncSnapshotCount()
	return &Snapshot{tree: dt, root: dt.root, version: dt.version}
}

// Version returns the version of the snapshot
func (s *Snapshot) Version() Version {
	return s.version
}

// Root returns the dataset root as of the snapshot
func (s *Snapshot) Root() data.NormalizedNode {
	return s.root.Data()
}

// Read returns the node at path as of the snapshot
func (s *Snapshot) Read(path data.InstanceIdentifier) (data.NormalizedNode, bool) {
	n, ok := s.root.lookup(path.Args())
	if !ok {
		return nil, false
	}
	return n.Data(), true
}

// NewModification opens a transaction builder over the snapshot.  Any number
// of modifications may be opened from one snapshot and prepared concurrently;
// conflicts surface at Prepare time.
func (s *Snapshot) NewModification() *Modification {
	return newModification(s)
}

// Version returns the tree's current version
func (dt *DataTree) Version() Version {
	dt.mutex.RLock()
	defer dt.mutex.RUnlock()
	return dt.version
}

// Validate checks the sealed delta against the schema context: every written
// or merged path has its effective value validated.  Validate mutates
// nothing and may be called any number of times.
func (dt *DataTree) Validate(ctx context.Context, m *Modification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.state != stateSealed {
		return newIllegalState("modification %s is %s, validate requires sealed", m.txid, m.state)
	}
	if err := dt.validateNode(data.RootPath(), m.root); err != nil {
		GetStats().IncValidationFailureCount()
		log.Debugw("validation-failed", log.Fields{"txid": m.txid, "error": err.Error()})
		return err
	}
	return nil
}

func (dt *DataTree) validateNode(path data.InstanceIdentifier, mod *modifiedNode) error {
	switch mod.op {
	case opNone, opDelete:
		return nil
	case opWrite, opMerge:
		if v, ok := mod.materialize(); ok {
			if err := dt.schema.Validate(path, v); err != nil {
				return newValidationError(path, err)
			}
		}
	}
	for _, cm := range mod.orderedChildren() {
		if err := dt.validateNode(path.Child(cm.id), cm); err != nil {
			return err
		}
	}
	return nil
}

// Prepare runs the optimistic concurrency check for a sealed modification
// and, if every touched path is still unchanged from the modification's base
// snapshot, computes the candidate root.  A ConflictError means the caller
// must re-snapshot, re-stage the affected edits and prepare again.
func (dt *DataTree) Prepare(ctx context.Context, m *Modification) (*Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.state != stateSealed {
		return nil, newIllegalState("modification %s is %s, prepare requires sealed", m.txid, m.state)
	}
	start := time.Now()

	dt.mutex.RLock()
	currentRoot := dt.root
	currentVersion := dt.version
	dt.mutex.RUnlock()

	if err := checkApplicable(currentRoot, m.root, data.RootPath()); err != nil {
		GetStats().IncConflictCount()
		log.Debugw("prepare-conflict", log.Fields{
			"txid":         m.txid,
			"base-version": m.snapshot.version,
			"tree-version": currentVersion,
			"error":        err.Error(),
		})
		return nil, err
	}

	newVersion := currentVersion + 1
	newRoot := applyNode(currentRoot, m.root, newVersion)
	if newRoot == nil {
		return nil, errors.Errorf("modification %s deleted the dataset root", m.txid)
	}
	GetStats().AddToPrepareTime(time.Since(start).Seconds())

	return &Candidate{
		mod:        m,
		preparedOn: currentRoot,
		root:       newRoot,
		version:    newVersion,
		state:      candidatePrepared,
	}, nil
}

// Commit atomically installs a prepared candidate, replacing the root and
// advancing the version.  Once Prepare succeeded the only way Commit fails is
// a different candidate having committed in between; the caller then prepares
// again.
func (dt *DataTree) Commit(ctx context.Context, c *Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.state != candidatePrepared {
		return newIllegalState("candidate %s is %s", c.mod.txid, c.state)
	}

	dt.mutex.Lock()
	if dt.root != c.preparedOn {
		dt.mutex.Unlock()
		GetStats().IncConflictCount()
		log.Debugw("commit-raced", log.Fields{"txid": c.mod.txid, "candidate-version": c.version})
		return newConflict(data.RootPath())
	}
	dt.root = c.root
	dt.version = c.version
	dt.mutex.Unlock()

	c.state = candidateCommitted
	c.mod.state = stateCommitted
	GetStats().IncCommitCount()
	log.Infow("committed", log.Fields{"txid": c.mod.txid, "version": c.version})
	return nil
}
