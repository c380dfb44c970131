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

const (
	candidatePrepared  = "prepared"
	candidateCommitted = "committed"
)

// Candidate is a conflict-checked diff ready for atomic application: the
// sealed delta together with the root it was prepared against and the root it
// will install.  Candidates are immutable once produced; Commit only flips
// their state.
type Candidate struct {
	mod *Modification
	// preparedOn is the tree root current at Prepare time; Commit refuses
	// the candidate if another commit replaced it since
	preparedOn *TreeNode
	root       *TreeNode
	version    Version
	state      string
}

// TxID returns the transaction id of the underlying modification
func (c *Candidate) TxID() string {
	return c.mod.txid
}

// Version returns the tree version this candidate installs
func (c *Candidate) Version() Version {
	return c.version
}

// Root returns the dataset root the tree will hold once the candidate
// commits
func (c *Candidate) Root() data.NormalizedNode {
	return c.root.Data()
}
