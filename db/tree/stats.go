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
	"sync"

	"github.com/rajkumar426/yangtools/common/log"
)

// stats aggregates transaction counters across every DataTree in the
// process, mostly useful while profiling commit throughput
type stats struct {
	mutex                  sync.Mutex
	SnapshotCount          int
	CommitCount            int
	ConflictCount          int
	ValidationFailureCount int
	PrepareTime            float64
	PrepareCount           int
}

var statsInstance *stats
var statsOnce sync.Once

func GetStats() *stats {
	statsOnce.Do(func() {
		statsInstance = &stats{}
	})
	return statsInstance
}

func (s *stats) IncSnapshotCount() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.SnapshotCount++
}

func (s *stats) IncCommitCount() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.CommitCount++
}

func (s *stats) IncConflictCount() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.ConflictCount++
}

func (s *stats) IncValidationFailureCount() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.ValidationFailureCount++
}

func (s *stats) AddToPrepareTime(period float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.PrepareTime += period
	s.PrepareCount++
}

func (s *stats) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.SnapshotCount = 0
	s.CommitCount = 0
	s.ConflictCount = 0
	s.ValidationFailureCount = 0
	s.PrepareTime = 0
	s.PrepareCount = 0
}

func (s *stats) Report() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	log.Infof("[ Transaction Stats ]")
	log.Infof("Snapshots : %d", s.SnapshotCount)
	log.Infof("Commits : %d", s.CommitCount)
	log.Infof("Conflicts : %d", s.ConflictCount)
	log.Infof("Validation Failures : %d", s.ValidationFailureCount)
	if s.PrepareCount > 0 {
		log.Infof("Avg Prepare Time : %f", s.PrepareTime/float64(s.PrepareCount))
	}
}
