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

package data

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTable = errors.New("table has no header row")
	ErrNoColumns  = errors.New("table has no numeric columns")
	ErrFieldCount = errors.New("wrong number of fields")
	ErrNotNumeric = errors.New("non-numeric value in numeric column")
)

// RowError records why a single row could not be loaded. Row is the 1-based
// physical line the row starts on, counting blank lines, with the header
// normally on line 1.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
