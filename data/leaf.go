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

import "fmt"

// LeafNode holds a single scalar value
type LeafNode struct {
	id    NodeID
	value interface{}
}

// NewLeaf creates a leaf node
func NewLeaf(name QName, value interface{}) *LeafNode {
	return &LeafNode{id: NewNodeID(name), value: value}
}

func (n *LeafNode) Identifier() PathArgument { return n.id }
func (n *LeafNode) Value() interface{}       { return n.value }

func (n *LeafNode) String() string {
	return fmt.Sprintf("leaf{%s=%v}", n.id.String(), n.value)
}

// LeafSetEntryNode is a single entry of a leaf-list.  Its value also appears
// in its identifier.
type LeafSetEntryNode struct {
	id NodeWithValue
}

// NewLeafSetEntry creates a leaf-list entry
func NewLeafSetEntry(name QName, value interface{}) *LeafSetEntryNode {
	return &LeafSetEntryNode{id: NewNodeWithValue(name, value)}
}

func (n *LeafSetEntryNode) Identifier() PathArgument { return n.id }
func (n *LeafSetEntryNode) Value() interface{}       { return n.id.Value() }

func (n *LeafSetEntryNode) String() string {
	return fmt.Sprintf("leaf-set-entry{%s}", n.id.String())
}
