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

import "github.com/rajkumar426/yangtools/data"

// mergeNodes folds add into base.  Container kinds of the same variant merge
// child by child: children absent from base are taken from add, children
// present in both recurse.  Everything else degenerates to a write of add.
// base children untouched by add keep their reference, so structural sharing
// survives the merge.
func mergeNodes(base data.NormalizedNode, add data.NormalizedNode) data.NormalizedNode {
	if base == nil {
		return add
	}
	baseContainer, baseOk := base.(data.DataContainerNode)
	addContainer, addOk := add.(data.DataContainerNode)
	if !baseOk || !addOk || data.KindOf(base) != data.KindOf(add) {
		// value kinds: keep the original reference when nothing changes
		if data.Equal(base, add) {
			return base
		}
		return add
	}

	out := baseContainer
	changed := false
	addContainer.Each(func(c data.NormalizedNode) bool {
		existing, ok := out.Child(c.Identifier())
		if !ok {
			out = out.With(c)
			changed = true
			return true
		}
		merged := mergeNodes(existing, c)
		if merged != existing {
			out = out.With(merged)
			changed = true
		}
		return true
	})
	if !changed {
		return base
	}
	return out
}
