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

// operation tags the pending change recorded by a modified node
type operation uint8

const (
	// opNone records no change at this node or below
	opNone operation = iota
	// opTouch records no change at this node but changes below it
	opTouch
	// opWrite replaces the node and everything below it
	opWrite
	// opMerge folds new data into the existing node
	opMerge
	// opDelete removes the node and everything below it
	opDelete
)

func (o operation) String() string {
	switch o {
	case opNone:
		return "none"
	case opTouch:
		return "touch"
	case opWrite:
		return "write"
	case opMerge:
		return "merge"
	case opDelete:
		return "delete"
	}
	return "invalid"
}
