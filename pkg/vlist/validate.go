// Copyright 2024 The Solaris Authors
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
package vlist

import (
	"fmt"

	"github.com/vlistgo/vlist/golibs/errors"
)

// rangeCoords is embedded into validation errors via errors.EmbedObject so a
// caller can recover the offending index/count with errors.ExtractObject
// instead of parsing the message.
type rangeCoords struct {
	Index int
	Count int
}

// validateGetIndex requires 0 <= index < size (getters, remove-at: only "<"
// is allowed).
func validateGetIndex(index, size int) error {
	if index < 0 || index >= size {
		return errors.EmbedObject(rangeCoords{Index: index, Count: size},
			fmt.Errorf("index %d out of range for size %d: %w", index, size, errors.ErrArgumentOutOfRange))
	}
	return nil
}

// validateInsertIndex requires 0 <= index <= size (insert allows index to
// equal size, appending at the end).
func validateInsertIndex(index, size int) error {
	if index < 0 || index > size {
		return errors.EmbedObject(rangeCoords{Index: index, Count: size},
			fmt.Errorf("insert index %d out of range for size %d: %w", index, size, errors.ErrArgumentOutOfRange))
	}
	return nil
}

// validateRange requires index and count to be non-negative and their
// combination to fit within size — a distinct failure from a single
// out-of-range index or count.
func validateRange(index, count, size int) error {
	if index < 0 {
		return errors.EmbedObject(rangeCoords{Index: index, Count: count},
			fmt.Errorf("negative index %d: %w", index, errors.ErrArgumentOutOfRange))
	}
	if count < 0 {
		return errors.EmbedObject(rangeCoords{Index: index, Count: count},
			fmt.Errorf("negative count %d: %w", count, errors.ErrArgumentOutOfRange))
	}
	if index+count > size {
		return errors.EmbedObject(rangeCoords{Index: index, Count: count},
			fmt.Errorf("range [%d, %d) does not fit within size %d: %w", index, index+count, size, errors.ErrArgumentRange))
	}
	return nil
}

// outOfRangeErr builds an ArgumentOutOfRange error embedding the offending
// (index, count) pair, for validations that don't fit validateGetIndex or
// validateRange's specific shapes (e.g. a capacity below the current count).
func outOfRangeErr(index, count int, format string, args ...any) error {
	return errors.EmbedObject(rangeCoords{Index: index, Count: count},
		fmt.Errorf(format+": %w", append(args, errors.ErrArgumentOutOfRange)...))
}

// argumentNull builds the ArgumentNull error for a missing predicate,
// comparator, converter or action. Callers compare function-typed arguments
// to nil directly (an any-typed nil check is unreliable for typed nil
// funcs) and only call this to build the error.
func argumentNull(name string) error {
	return fmt.Errorf("%s must not be nil: %w", name, errors.ErrArgumentNull)
}
