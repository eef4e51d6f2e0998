// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reduce

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySlice       = errors.New("cannot reduce an empty slice")
	ErrContainsNaN      = errors.New("slice contains NaN values")
	ErrTooFewValues     = errors.New("not enough values to reduce")
	ErrLengthMismatch   = errors.New("vectors must have equal length")
	ErrUnknownReduction = errors.New("unknown reduction")
	ErrUnknownAxis      = errors.New("unknown axis")
)

// SliceError reports a reduction failure for a single row or column; other
// slices are unaffected by the failure
type SliceError struct {
	Label string
	Err   error
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("cannot reduce slice %s: %v", e.Label, e.Err)
}

func (e *SliceError) Unwrap() error {
	return e.Err
}
