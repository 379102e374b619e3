// Copyright 2023 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
)

// General-purpose sentinel errors. Callers should wrap one of these with
// fmt.Errorf("...: %w", ErrXXX) and compare with Is(err, ErrXXX).
var (
	ErrExist         = stderrors.New("already exists")
	ErrNotExist      = stderrors.New("does not exist")
	ErrInvalid       = stderrors.New("invalid")
	ErrNotAuthorized = stderrors.New("not authorized")
	ErrInternal      = stderrors.New("internal error")
	ErrDataLoss      = stderrors.New("data loss")
	ErrExhausted     = stderrors.New("exhausted")
	ErrUnimplemented = stderrors.New("unimplemented")
	ErrConflict      = stderrors.New("conflict")
	ErrCanceled      = stderrors.New("canceled")
	ErrCommunication = stderrors.New("communication error")
	ErrClosed        = stderrors.New("closed")

	// ErrArgumentNull is returned when a required iterable, predicate,
	// comparator, converter, or action argument is absent.
	ErrArgumentNull = stderrors.New("argument must not be nil")
	// ErrArgumentOutOfRange is returned when a single index or count argument
	// falls outside the range the receiver accepts.
	ErrArgumentOutOfRange = stderrors.New("argument out of range")
	// ErrArgumentRange is returned when the combination of an index and a
	// count does not fit within the current size, distinct from a single
	// out-of-range argument.
	ErrArgumentRange = stderrors.New("index and count do not fit within size")
	// ErrNotSupported is returned when a write operation is invoked against
	// a read-only view.
	ErrNotSupported = stderrors.New("operation not supported")
	// ErrInvalidOperation is returned when an enumerator is accessed before
	// its first advance, after exhaustion, or asked to reset.
	ErrInvalidOperation = stderrors.New("invalid operation")
	// ErrOutOfMemory is returned when the underlying allocator refuses to
	// grow a segment or the segment table.
	ErrOutOfMemory = stderrors.New("out of memory")
)

// jsonErrorMarker delimits a JSON-encoded payload embedded inside an error
// message by EmbedObject. It is chosen to be vanishingly unlikely to occur
// in a hand-written error message.
const jsonErrorMarker = "\x00json\x00"

// Is reports whether err or any error it wraps matches target. It is a thin
// alias over the standard library so call sites in this module don't need to
// import both "errors" and this package under an alias.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// EmbedObject wraps err so that obj travels along with it, JSON-encoded, and
// can later be recovered with ExtractObject. It panics if obj or err is nil,
// or if err already carries an embedded object.
func EmbedObject(obj any, err error) error {
	if err == nil {
		panic("errors.EmbedObject: err must not be nil")
	}
	if obj == nil {
		panic("errors.EmbedObject: obj must not be nil")
	}
	if strings.Contains(err.Error(), jsonErrorMarker) {
		panic("errors.EmbedObject: err already carries an embedded object")
	}
	data, mErr := json.Marshal(obj)
	if mErr != nil {
		panic(fmt.Sprintf("errors.EmbedObject: could not marshal object: %v", mErr))
	}
	return fmt.Errorf("%w%s%s%s", err, jsonErrorMarker, data, jsonErrorMarker)
}

// ExtractObject recovers a value embedded by EmbedObject into ptr. It returns
// false if err is nil, carries no embedded object, or the embedded payload
// does not unmarshal into the type behind ptr.
func ExtractObject(err error, ptr any) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	start := strings.Index(msg, jsonErrorMarker)
	if start < 0 {
		return false
	}
	rest := msg[start+len(jsonErrorMarker):]
	end := strings.Index(rest, jsonErrorMarker)
	if end < 0 {
		return false
	}
	payload := rest[:end]
	return json.Unmarshal([]byte(payload), ptr) == nil
}
