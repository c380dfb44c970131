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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajkumar426/yangtools/data"
)

// newTestTree seeds a tree holding {a: {b: 1}, d: 4}
func newTestTree(t *testing.T) *DataTree {
	root := data.NewContainer(data.Name("data"),
		data.NewContainer(data.Name("a"),
			data.NewLeaf(data.Name("b"), 1)),
		data.NewLeaf(data.Name("d"), 4))
	dt, err := NewDataTree(root, nil)
	require.NoError(t, err)
	return dt
}

func TestWriteAndRead(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	err := m.Write(data.Path(data.ID("a"), data.ID("c")), data.NewLeaf(data.Name("c"), 2))
	require.NoError(t, err)

	v, ok, err := m.Read(data.Path(data.ID("a"), data.ID("c")))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, v.(data.ValueNode).Value())

	// untouched paths fall through to the base snapshot
	v, ok, err = m.Read(data.Path(data.ID("a"), data.ID("b")))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, v.(data.ValueNode).Value())

	_, ok, err = m.Read(data.Path(data.ID("a"), data.ID("zzz")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteSupersedesEarlierEdits(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Merge(data.Path(data.ID("a"), data.ID("x")), data.NewLeaf(data.Name("x"), 10)))
	require.NoError(t, m.Write(data.Path(data.ID("a")),
		data.NewContainer(data.Name("a"), data.NewLeaf(data.Name("y"), 20))))

	_, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("x")))
	assert.False(t, ok)
	_, ok, _ = m.Read(data.Path(data.ID("a"), data.ID("b")))
	assert.False(t, ok)
	v, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("y")))
	require.True(t, ok)
	assert.Equal(t, 20, v.(data.ValueNode).Value())
}

func TestMergeComposesWithStagedWrite(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Write(data.Path(data.ID("a")),
		data.NewContainer(data.Name("a"), data.NewLeaf(data.Name("y"), 20))))
	require.NoError(t, m.Merge(data.Path(data.ID("a")),
		data.NewContainer(data.Name("a"), data.NewLeaf(data.Name("z"), 30))))

	// the merge lands on the staged replacement, not on the base value
	_, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("b")))
	assert.False(t, ok)
	v, ok, _ := m.Read(data.Path(data.ID("a")))
	require.True(t, ok)
	assert.True(t, data.Equal(v, data.NewContainer(data.Name("a"),
		data.NewLeaf(data.Name("y"), 20),
		data.NewLeaf(data.Name("z"), 30))))
}

func TestMergeIsIdempotent(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	payload := data.NewContainer(data.Name("a"),
		data.NewLeaf(data.Name("b"), 1),
		data.NewLeaf(data.Name("c"), 2))
	require.NoError(t, m.Merge(data.Path(data.ID("a")), payload))
	once, ok, _ := m.Read(data.Path(data.ID("a")))
	require.True(t, ok)

	require.NoError(t, m.Merge(data.Path(data.ID("a")), payload))
	twice, ok, _ := m.Read(data.Path(data.ID("a")))
	require.True(t, ok)

	assert.True(t, data.Equal(once, twice))
}

func TestMergeLeafOverwrites(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Merge(data.Path(data.ID("a"), data.ID("b")), data.NewLeaf(data.Name("b"), 5)))
	v, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("b")))
	require.True(t, ok)
	assert.Equal(t, 5, v.(data.ValueNode).Value())
}

func TestDeleteDominatesDescendants(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Merge(data.Path(data.ID("a"), data.ID("c")), data.NewLeaf(data.Name("c"), 2)))
	require.NoError(t, m.Delete(data.Path(data.ID("a"))))

	_, ok, _ := m.Read(data.Path(data.ID("a")))
	assert.False(t, ok)
	_, ok, _ = m.Read(data.Path(data.ID("a"), data.ID("b")))
	assert.False(t, ok)
	_, ok, _ = m.Read(data.Path(data.ID("a"), data.ID("c")))
	assert.False(t, ok)

	// editing strictly below a staged delete requires rewriting the path first
	err := m.Write(data.Path(data.ID("a"), data.ID("b")), data.NewLeaf(data.Name("b"), 9))
	require.Error(t, err)
	assert.True(t, IsPathNotFound(err))
}

func TestMergeAfterDeleteResurrects(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Delete(data.Path(data.ID("a"))))
	require.NoError(t, m.Merge(data.Path(data.ID("a")),
		data.NewContainer(data.Name("a"), data.NewLeaf(data.Name("c"), 2))))

	// the merge behaves as a write of its payload: base children stay gone
	_, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("b")))
	assert.False(t, ok)
	v, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("c")))
	require.True(t, ok)
	assert.Equal(t, 2, v.(data.ValueNode).Value())
}

func TestWriteThenDeleteNetsDelete(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Write(data.Path(data.ID("a")),
		data.NewContainer(data.Name("a"), data.NewLeaf(data.Name("y"), 20))))
	require.NoError(t, m.Delete(data.Path(data.ID("a"))))
	require.NoError(t, m.Ready())

	cm, ok := m.root.child(data.ID("a"))
	require.True(t, ok)
	assert.Equal(t, opDelete, cm.op)
}

func TestDeleteBelowStagedWrite(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Write(data.Path(data.ID("a")),
		data.NewContainer(data.Name("a"),
			data.NewLeaf(data.Name("y"), 20),
			data.NewLeaf(data.Name("z"), 30))))
	require.NoError(t, m.Delete(data.Path(data.ID("a"), data.ID("y"))))

	_, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("y")))
	assert.False(t, ok)

	// sealing must not change what the modification means: the delete of a
	// payload-only child survives normalization
	require.NoError(t, m.Ready())
	_, ok, _ = m.Read(data.Path(data.ID("a"), data.ID("y")))
	assert.False(t, ok)
	v, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("z")))
	require.True(t, ok)
	assert.Equal(t, 30, v.(data.ValueNode).Value())

	ctx := context.Background()
	c, err := dt.Prepare(ctx, m)
	require.NoError(t, err)
	require.NoError(t, dt.Commit(ctx, c))

	after := dt.Snapshot()
	_, ok = after.Read(data.Path(data.ID("a"), data.ID("y")))
	assert.False(t, ok)
	vv, ok := after.Read(data.Path(data.ID("a"), data.ID("z")))
	require.True(t, ok)
	assert.Equal(t, 30, vv.(data.ValueNode).Value())
}

func TestDeleteBelowStagedMerge(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Merge(data.Path(data.ID("a")),
		data.NewContainer(data.Name("a"),
			data.NewLeaf(data.Name("y"), 20),
			data.NewLeaf(data.Name("z"), 30))))
	require.NoError(t, m.Delete(data.Path(data.ID("a"), data.ID("y"))))
	require.NoError(t, m.Ready())

	_, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("y")))
	assert.False(t, ok)
	v, ok, _ := m.Read(data.Path(data.ID("a"), data.ID("z")))
	require.True(t, ok)
	assert.Equal(t, 30, v.(data.ValueNode).Value())
	// base children untouched by the merge survive
	v, ok, _ = m.Read(data.Path(data.ID("a"), data.ID("b")))
	require.True(t, ok)
	assert.Equal(t, 1, v.(data.ValueNode).Value())
}

func TestMergeKeepsOrderedEntries(t *testing.T) {
	entry := func(seq int) *data.MapEntryNode {
		return data.NewMapEntry(data.Name("rule"), map[data.QName]interface{}{data.Name("seq"): seq})
	}
	seqs := func(n data.NormalizedNode) []interface{} {
		var out []interface{}
		n.(data.DataContainerNode).Each(func(e data.NormalizedNode) bool {
			leaf, _ := e.(data.DataContainerNode).Child(data.ID("seq"))
			out = append(out, leaf.(data.ValueNode).Value())
			return true
		})
		return out
	}

	root := data.NewContainer(data.Name("data"),
		data.NewOrderedMap(data.Name("rule"), entry(10), entry(20)))
	dt, err := NewDataTree(root, nil)
	require.NoError(t, err)

	m := dt.Snapshot().NewModification()
	require.NoError(t, m.Merge(data.Path(data.ID("rule")),
		data.NewOrderedMap(data.Name("rule"),
			entry(30), entry(40), entry(50), entry(60), entry(70), entry(80))))
	require.NoError(t, m.Ready())

	// merged entries append after the base entries, in payload order
	want := []interface{}{10, 20, 30, 40, 50, 60, 70, 80}
	v, ok, _ := m.Read(data.Path(data.ID("rule")))
	require.True(t, ok)
	assert.Equal(t, want, seqs(v))

	ctx := context.Background()
	c, err := dt.Prepare(ctx, m)
	require.NoError(t, err)
	require.NoError(t, dt.Commit(ctx, c))
	committed, ok := dt.Snapshot().Read(data.Path(data.ID("rule")))
	require.True(t, ok)
	assert.Equal(t, want, seqs(committed))
}

func TestDeleteOfAbsentSealsToNoop(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Delete(data.Path(data.ID("a"), data.ID("zzz"))))
	require.NoError(t, m.Ready())
	assert.Equal(t, opNone, m.root.op)
}

func TestMissingIntermediateParent(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	err := m.Write(data.Path(data.ID("x"), data.ID("y")), data.NewLeaf(data.Name("y"), 1))
	require.Error(t, err)
	assert.True(t, IsPathNotFound(err))

	// the final step itself may be absent: that is what write creates
	err = m.Write(data.Path(data.ID("x")),
		data.NewContainer(data.Name("x"), data.NewLeaf(data.Name("y"), 1)))
	require.NoError(t, err)
	err = m.Write(data.Path(data.ID("x"), data.ID("y")), data.NewLeaf(data.Name("y"), 2))
	require.NoError(t, err)
}

func TestIdentityMismatchRejected(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	err := m.Write(data.Path(data.ID("a"), data.ID("c")), data.NewLeaf(data.Name("oops"), 2))
	require.Error(t, err)
	assert.True(t, IsIllegalState(err))
	err = m.Merge(data.Path(data.ID("a"), data.ID("c")), data.NewLeaf(data.Name("oops"), 2))
	require.Error(t, err)
	assert.True(t, IsIllegalState(err))
}

func TestSealedRejectsEdits(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	require.NoError(t, m.Write(data.Path(data.ID("a"), data.ID("c")), data.NewLeaf(data.Name("c"), 2)))
	require.NoError(t, m.Ready())

	err := m.Write(data.Path(data.ID("a"), data.ID("c")), data.NewLeaf(data.Name("c"), 3))
	require.Error(t, err)
	assert.True(t, IsIllegalState(err))
	assert.True(t, IsIllegalState(m.Delete(data.Path(data.ID("a")))))
	assert.True(t, IsIllegalState(m.Ready()))

	// reading a sealed modification is fine
	v, ok, err := m.Read(data.Path(data.ID("a"), data.ID("c")))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, v.(data.ValueNode).Value())
}

func TestRootReplacement(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	// a leaf cannot become the dataset root
	err := m.Write(data.RootPath(), data.NewLeaf(data.Name("data"), 1))
	require.Error(t, err)

	// neither can a container of a different identity
	err = m.Write(data.RootPath(), data.NewContainer(data.Name("other")))
	require.Error(t, err)

	require.NoError(t, m.Write(data.RootPath(),
		data.NewContainer(data.Name("data"), data.NewLeaf(data.Name("fresh"), 1))))
	_, ok, _ := m.Read(data.Path(data.ID("a")))
	assert.False(t, ok)
	v, ok, _ := m.Read(data.Path(data.ID("fresh")))
	require.True(t, ok)
	assert.Equal(t, 1, v.(data.ValueNode).Value())
}

func TestRootDeleteForbidden(t *testing.T) {
	dt := newTestTree(t)
	m := dt.Snapshot().NewModification()

	err := m.Delete(data.RootPath())
	require.Error(t, err)
	assert.True(t, IsIllegalState(err))
}

func TestAbort(t *testing.T) {
	dt := newTestTree(t)
	snap := dt.Snapshot()
	m := snap.NewModification()

	require.NoError(t, m.Write(data.Path(data.ID("a"), data.ID("c")), data.NewLeaf(data.Name("c"), 2)))
	require.NoError(t, m.Abort())
	assert.True(t, IsIllegalState(m.Write(data.Path(data.ID("d")), data.NewLeaf(data.Name("d"), 5))))

	// nothing leaked into the shared tree
	_, ok := snap.Read(data.Path(data.ID("a"), data.ID("c")))
	assert.False(t, ok)
	assert.Equal(t, Version(0), dt.Version())
}

func TestTxIDsAreUnique(t *testing.T) {
	snap := newTestTree(t).Snapshot()
	m1 := snap.NewModification()
	m2 := snap.NewModification()
	assert.NotEqual(t, m1.TxID(), m2.TxID())
	assert.Equal(t, Version(0), m1.BaseVersion())
}
