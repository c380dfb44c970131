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

import "strings"

// QName is a namespace-qualified name of a data node.  The zero value is not a
// valid QName.  QNames are plain values and compare with ==.
type QName struct {
	Namespace string
	LocalName string
}

// NewQName creates a QName in the given namespace
func NewQName(namespace string, localName string) QName {
	return QName{Namespace: namespace, LocalName: localName}
}

// Name creates a QName without a namespace, mostly useful in tests and
// for synthetic nodes such as the dataset root
func Name(localName string) QName {
	return QName{LocalName: localName}
}

// IsZero reports whether the QName is the zero value
func (q QName) IsZero() bool {
	return q.Namespace == "" && q.LocalName == ""
}

// Compare orders QNames by namespace first, local name second
func (q QName) Compare(other QName) int {
	if c := strings.Compare(q.Namespace, other.Namespace); c != 0 {
		return c
	}
	return strings.Compare(q.LocalName, other.LocalName)
}

func (q QName) String() string {
	if q.Namespace == "" {
		return q.LocalName
	}
	return q.Namespace + ":" + q.LocalName
}
