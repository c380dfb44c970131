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

import "reflect"

// Export converts a node into plain Go values: scalar kinds become their
// value, unordered container kinds become a map keyed by the canonical child
// identifier, user-ordered kinds become a slice in entry order.  Mostly used
// for diagnostics and test comparison.
func Export(n NormalizedNode) interface{} {
	switch t := n.(type) {
	case ValueNode:
		return t.Value()
	case *OrderedMapNode:
		return exportOrdered(t)
	case *OrderedLeafSetNode:
		return exportOrdered(t)
	case DataContainerNode:
		out := make(map[string]interface{}, t.Size())
		t.Each(func(c NormalizedNode) bool {
			out[c.Identifier().String()] = Export(c)
			return true
		})
		return out
	}
	return nil
}

func exportOrdered(n DataContainerNode) []interface{} {
	out := make([]interface{}, 0, n.Size())
	n.Each(func(c NormalizedNode) bool {
		out = append(out, Export(c))
		return true
	})
	return out
}

// Equal reports whether two nodes have the same identifier, kind and content
func Equal(a NormalizedNode, b NormalizedNode) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if KindOf(a) != KindOf(b) || !ArgEqual(a.Identifier(), b.Identifier()) {
		return false
	}
	return reflect.DeepEqual(Export(a), Export(b))
}
