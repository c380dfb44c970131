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

// Package schema defines the capability the data tree consumes to validate
// staged changes.  Schema-language parsing and model construction live
// elsewhere; the tree only ever asks two questions: what kind of node is
// expected at a path, and is a candidate value structurally valid there.
package schema

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rajkumar426/yangtools/data"
)

// Context answers structural questions about tree locations.  Implementations
// must be safe for concurrent use; the tree calls into the context from the
// commit path of any number of transactions.
type Context interface {
	// KindAt returns the node kind expected at the given path
	KindAt(path data.InstanceIdentifier) (data.Kind, error)
	// Validate checks a candidate value at the given path: kind
	// conformance, mandatory children, list key presence and consistency,
	// leaf value constraints
	Validate(path data.InstanceIdentifier, node data.NormalizedNode) error
}

type permissive struct{}

// Permissive returns a context that accepts any structurally well-formed
// value.  The kind reported for every path is derived from nothing, so KindAt
// returns KindUnknown without error.
func Permissive() Context {
	return permissive{}
}

func (permissive) KindAt(path data.InstanceIdentifier) (data.Kind, error) {
	return data.KindUnknown, nil
}

func (permissive) Validate(path data.InstanceIdentifier, node data.NormalizedNode) error {
	return nil
}

// Def describes one schema node for DefContext
type Def struct {
	Kind data.Kind
	// Keys lists the key leaves of a map entry, in any order
	Keys []data.QName
	// Mandatory lists children that must be present in a container kind
	Mandatory []data.QName
	// Check validates a leaf value, may be nil
	Check func(value interface{}) error
}

// DefContext is a map-backed Context built from explicit node definitions.
// Definitions are keyed by the path of qualified names with list-entry and
// leaf-list-entry predicates stripped, so one definition covers every entry
// of a list.  Paths without a definition validate permissively, which keeps
// partial schemas usable.
type DefContext struct {
	defs map[string]Def
}

// NewDefContext creates an empty definition-backed context
func NewDefContext() *DefContext {
	return &DefContext{defs: make(map[string]Def)}
}

// Define registers the definition for the node at the given path
func (c *DefContext) Define(path data.InstanceIdentifier, def Def) *DefContext {
	c.defs[schemaKey(path)] = def
	return c
}

func schemaKey(path data.InstanceIdentifier) string {
	var b strings.Builder
	for _, arg := range path.Args() {
		switch t := arg.(type) {
		case data.AugmentationID:
			b.WriteByte('/')
			b.WriteString(t.String())
		default:
			b.WriteByte('/')
			b.WriteString(arg.Name().String())
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

func (c *DefContext) KindAt(path data.InstanceIdentifier) (data.Kind, error) {
	if def, ok := c.defs[schemaKey(path)]; ok {
		return def.Kind, nil
	}
	return data.KindUnknown, nil
}

func (c *DefContext) Validate(path data.InstanceIdentifier, node data.NormalizedNode) error {
	def, ok := c.defs[schemaKey(path)]
	if !ok {
		return nil
	}

	actual := data.KindOf(node)
	if def.Kind != data.KindUnknown && !kindMatches(def.Kind, path, actual) {
		return errors.Errorf("node %s is %s, schema expects %s", path.String(), actual, def.Kind)
	}

	if entry, ok := node.(*data.MapEntryNode); ok {
		if err := checkEntryKeys(path, entry, def.Keys); err != nil {
			return err
		}
	}

	if container, ok := node.(data.DataContainerNode); ok {
		for _, m := range def.Mandatory {
			if _, ok := container.Child(data.NewNodeID(m)); !ok {
				return errors.Errorf("mandatory child %s missing under %s", m.String(), path.String())
			}
		}
	}

	if def.Check != nil {
		leaf, ok := node.(data.ValueNode)
		if !ok {
			return errors.Errorf("node %s has no value to check", path.String())
		}
		if err := def.Check(leaf.Value()); err != nil {
			return errors.Wrapf(err, "value of %s rejected", path.String())
		}
	}

	return nil
}

// kindMatches accepts an entry node where the path carries entry predicates
// and the definition names the enclosing list kind.
func kindMatches(expected data.Kind, path data.InstanceIdentifier, actual data.Kind) bool {
	if expected == actual {
		return true
	}
	switch path.Last().(type) {
	case data.NodeWithKeys:
		return actual == data.KindMapEntry &&
			(expected == data.KindMap || expected == data.KindOrderedMap)
	case data.NodeWithValue:
		return actual == data.KindLeafSetEntry &&
			(expected == data.KindLeafSet || expected == data.KindOrderedLeafSet)
	}
	return false
}

func checkEntryKeys(path data.InstanceIdentifier, entry *data.MapEntryNode, keys []data.QName) error {
	for _, k := range keys {
		predicate, ok := entry.EntryID().KeyValue(k)
		if !ok {
			return errors.Errorf("entry %s lacks key predicate %s", path.String(), k.String())
		}
		child, ok := entry.Child(data.NewNodeID(k))
		if !ok {
			return errors.Errorf("entry %s lacks key leaf %s", path.String(), k.String())
		}
		leaf, ok := child.(data.ValueNode)
		if !ok {
			return errors.Errorf("key %s of entry %s is not a leaf", k.String(), path.String())
		}
		if fmt.Sprintf("%v", leaf.Value()) != fmt.Sprintf("%v", predicate) {
			return errors.Errorf("key %s of entry %s disagrees with its identifier", k.String(), path.String())
		}
	}
	return nil
}
