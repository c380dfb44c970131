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
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rajkumar426/yangtools/data"
)

// IllegalStateError reports a programming error: an operation invoked in a
// transaction state that forbids it.  Callers must not retry.
type IllegalStateError struct {
	Reason string
}

func (e *IllegalStateError) Error() string {
	return "illegal state: " + e.Reason
}

func newIllegalState(format string, args ...interface{}) error {
	return errors.WithStack(&IllegalStateError{Reason: fmt.Sprintf(format, args...)})
}

// IsIllegalState reports whether err is an IllegalStateError
func IsIllegalState(err error) bool {
	var e *IllegalStateError
	return stderrors.As(err, &e)
}

// PathNotFoundError reports that a path did not resolve to an existing node
type PathNotFoundError struct {
	Path data.InstanceIdentifier
}

func (e *PathNotFoundError) Error() string {
	return "path not found: " + e.Path.String()
}

func newPathNotFound(path data.InstanceIdentifier) error {
	return errors.WithStack(&PathNotFoundError{Path: path})
}

// IsPathNotFound reports whether err is a PathNotFoundError
func IsPathNotFound(err error) bool {
	var e *PathNotFoundError
	return stderrors.As(err, &e)
}

// ValidationError reports a schema constraint violated by a sealed delta.
// The transaction must be discarded or amended and resealed.
type ValidationError struct {
	Path   data.InstanceIdentifier
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed at %s: %s", e.Path.String(), e.Reason)
}

func newValidationError(path data.InstanceIdentifier, cause error) error {
	return errors.WithStack(&ValidationError{Path: path, Reason: cause.Error()})
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var e *ValidationError
	return stderrors.As(err, &e)
}

// ConflictError reports that the optimistic concurrency check failed: a
// concurrent commit touched a path this transaction also touched.  The caller
// must re-snapshot, re-stage the affected edits and retry; nothing is merged
// on its behalf.
type ConflictError struct {
	Path data.InstanceIdentifier
}

func (e *ConflictError) Error() string {
	return "conflicting modification at " + e.Path.String()
}

func newConflict(path data.InstanceIdentifier) error {
	return errors.WithStack(&ConflictError{Path: path})
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var e *ConflictError
	return stderrors.As(err, &e)
}
