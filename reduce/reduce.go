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

// Package reduce applies pure summary functions independently to each row or
// column of a dataframe, preserving the slice's label in the result. A failed
// slice is recorded and does not abort the remaining slices.
package reduce

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tabfold/tabfold/dataframe"
)

// Axis selects whether a reduction runs over columns or rows
type Axis int

const (
	Columns Axis = iota
	Rows
)

func (a Axis) String() string {
	switch a {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis converts a user supplied axis name to an Axis
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "columns", "cols", "col":
		return Columns, nil
	case "rows", "row":
		return Rows, nil
	}
	return Columns, fmt.Errorf("%w: %s", ErrUnknownAxis, s)
}

// Func reduces a slice of values to a fixed-size tuple of summary values.
// Scalar reductions return a 1-element tuple.
type Func func(vals []float64) ([]float64, error)

// Reduction is a named reduction function. Stats names the tuple fields the
// function produces, e.g. ["median"] or ["min", "lower-hinge", ...]
type Reduction struct {
	Name  string
	Stats []string
	Fn    Func
}

// Apply runs the reduction independently over each slice of df along the
// requested axis. Each slice keeps its identity in the result: column names
// for Columns, row labels for Rows. A slice the function cannot reduce is
// recorded in Result.Errs and its vals are left nil; remaining slices still run.
func Apply(df *dataframe.DataFrame, axis Axis, r Reduction) *Result {
	if r.Fn == nil {
		log.Panic().Str("Reduction", r.Name).Msg("reduction function is nil")
	}

	res := &Result{
		Axis:  axis,
		Name:  r.Name,
		Stats: r.Stats,
		Errs:  map[string]error{},
	}

	switch axis {
	case Columns:
		res.Labels = make([]string, len(df.ColNames))
		copy(res.Labels, df.ColNames)
		res.Vals = make([][]float64, len(df.ColNames))

		for idx, colName := range df.ColNames {
			vals, err := r.Fn(df.Vals[idx])
			if err != nil {
				res.Errs[colName] = &SliceError{Label: colName, Err: err}
				continue
			}
			res.Vals[idx] = vals
		}
	case Rows:
		res.Labels = make([]string, len(df.Index))
		copy(res.Labels, df.Index)
		res.Vals = make([][]float64, len(df.Index))

		for idx, label := range df.Index {
			vals, err := r.Fn(df.Row(idx))
			if err != nil {
				res.Errs[label] = &SliceError{Label: label, Err: err}
				continue
			}
			res.Vals[idx] = vals
		}
	default:
		log.Panic().Str("Axis", axis.String()).Msg("unknown axis passed to apply")
	}

	return res
}
