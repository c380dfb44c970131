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
	"sort"
	"strings"
)

// PathArgument identifies one step of a tree path.  The set of implementations
// is closed: NodeID, NodeWithKeys, NodeWithValue and AugmentationID.
//
// Two PathArguments are equal iff their canonical String forms are equal; the
// canonical form includes the qualified name and, for map entries, the full
// sorted key-predicate set.
type PathArgument interface {
	Name() QName
	String() string

	pathArgument()
}

// ArgEqual reports whether two path arguments address the same child
func ArgEqual(a PathArgument, b PathArgument) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// NodeID addresses a plain child by qualified name: containers, leaves,
// lists as a whole, choices.
type NodeID struct {
	name QName
}

// NewNodeID creates a plain child identifier
func NewNodeID(name QName) NodeID {
	return NodeID{name: name}
}

// ID is shorthand for NewNodeID(Name(localName))
func ID(localName string) NodeID {
	return NodeID{name: Name(localName)}
}

func (n NodeID) Name() QName    { return n.name }
func (n NodeID) String() string { return n.name.String() }
func (n NodeID) pathArgument()  {}

// KeyValue is a single key predicate of a map entry identifier
type KeyValue struct {
	Key   QName
	Value interface{}
}

// NodeWithKeys addresses one entry of a keyed list by its key predicates
type NodeWithKeys struct {
	name QName
	keys []KeyValue
}

// NewNodeWithKeys creates a map entry identifier.  The predicate set is
// copied and kept sorted by key name so that equal predicate sets always
// produce the same canonical form.
func NewNodeWithKeys(name QName, keys map[QName]interface{}) NodeWithKeys {
	kvs := make([]KeyValue, 0, len(keys))
	for k, v := range keys {
		kvs = append(kvs, KeyValue{Key: k, Value: v})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key.Compare(kvs[j].Key) < 0 })
	return NodeWithKeys{name: name, keys: kvs}
}

func (n NodeWithKeys) Name() QName { return n.name }

// Keys returns the key predicates in canonical order
func (n NodeWithKeys) Keys() []KeyValue {
	out := make([]KeyValue, len(n.keys))
	copy(out, n.keys)
	return out
}

// KeyValue returns the predicate value for the given key name
func (n NodeWithKeys) KeyValue(key QName) (interface{}, bool) {
	for _, kv := range n.keys {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

func (n NodeWithKeys) String() string {
	var b strings.Builder
	b.WriteString(n.name.String())
	for _, kv := range n.keys {
		fmt.Fprintf(&b, "[%s=%v]", kv.Key.String(), kv.Value)
	}
	return b.String()
}

func (n NodeWithKeys) pathArgument() {}

// NodeWithValue addresses one entry of a leaf-list by its value
type NodeWithValue struct {
	name  QName
	value interface{}
}

// NewNodeWithValue creates a leaf-list entry identifier
func NewNodeWithValue(name QName, value interface{}) NodeWithValue {
	return NodeWithValue{name: name, value: value}
}

func (n NodeWithValue) Name() QName        { return n.name }
func (n NodeWithValue) Value() interface{} { return n.value }

func (n NodeWithValue) String() string {
	return fmt.Sprintf("%s[.=%v]", n.name.String(), n.value)
}

func (n NodeWithValue) pathArgument() {}

// AugmentationID is the positional marker of an augmentation: it is identified
// by the set of child names the augmentation contributes rather than by a name
// of its own.
type AugmentationID struct {
	children []QName
}

// NewAugmentationID creates an augmentation identifier from the set of
// contributed child names.  The set is copied and sorted.
func NewAugmentationID(children []QName) AugmentationID {
	names := make([]QName, len(children))
	copy(names, children)
	sort.Slice(names, func(i, j int) bool { return names[i].Compare(names[j]) < 0 })
	return AugmentationID{children: names}
}

// Name returns the zero QName; augmentations have no qualified name of their own
func (n AugmentationID) Name() QName { return QName{} }

// Children returns the contributed child names in canonical order
func (n AugmentationID) Children() []QName {
	out := make([]QName, len(n.children))
	copy(out, n.children)
	return out
}

func (n AugmentationID) String() string {
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.String()
	}
	return "augmentation(" + strings.Join(parts, ",") + ")"
}

func (n AugmentationID) pathArgument() {}

// InstanceIdentifier is an absolute location in the tree: an ordered sequence
// of PathArguments.  The empty sequence addresses the root.  Identifiers are
// immutable; Child and Parent return derived identifiers.
type InstanceIdentifier struct {
	args []PathArgument
}

// RootPath returns the identifier of the tree root
func RootPath() InstanceIdentifier {
	return InstanceIdentifier{}
}

// Path builds an identifier from the given arguments
func Path(args ...PathArgument) InstanceIdentifier {
	return InstanceIdentifier{args: args}
}

// IsRoot reports whether the identifier addresses the root
func (p InstanceIdentifier) IsRoot() bool {
	return len(p.args) == 0
}

// Len returns the number of path steps
func (p InstanceIdentifier) Len() int {
	return len(p.args)
}

// Args returns the path steps in order.  The returned slice must not be
// modified.
func (p InstanceIdentifier) Args() []PathArgument {
	return p.args
}

// Last returns the final step, or nil for the root
func (p InstanceIdentifier) Last() PathArgument {
	if len(p.args) == 0 {
		return nil
	}
	return p.args[len(p.args)-1]
}

// Parent returns the identifier with the final step removed
func (p InstanceIdentifier) Parent() InstanceIdentifier {
	if len(p.args) == 0 {
		return p
	}
	return InstanceIdentifier{args: p.args[:len(p.args)-1]}
}

// Child returns the identifier extended by one step
func (p InstanceIdentifier) Child(arg PathArgument) InstanceIdentifier {
	args := make([]PathArgument, len(p.args)+1)
	copy(args, p.args)
	args[len(p.args)] = arg
	return InstanceIdentifier{args: args}
}

func (p InstanceIdentifier) String() string {
	if len(p.args) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, a := range p.args {
		b.WriteByte('/')
		b.WriteString(a.String())
	}
	return b.String()
}
