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

// Package filter selects dataframe rows with boolean expressions over the
// row's column values, e.g. `CA > 12500 && NY < 9000`.
package filter

import (
	"errors"
	"fmt"

	"github.com/Knetic/govaluate"
	"github.com/tabfold/tabfold/dataframe"
)

var ErrNotBoolean = errors.New("expression does not evaluate to a boolean")

// Filter is a compiled row selection expression
type Filter struct {
	expr      string
	evaluator *govaluate.EvaluableExpression
}

// New compiles the boolean expression expr. Column names are the variables
// available to the expression; the usual comparison operators
// (==, !=, <, <=, >, >=) and boolean connectives (&&, ||, !) apply.
func New(expr string) (*Filter, error) {
	evaluator, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("could not parse expression %q: %w", expr, err)
	}

	return &Filter{
		expr:      expr,
		evaluator: evaluator,
	}, nil
}

// Expr returns the source expression the filter was compiled from
func (f *Filter) Expr() string {
	return f.expr
}

// Keep evaluates the filter against a single row's values
func (f *Filter) Keep(vars map[string]float64) (bool, error) {
	datum := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		datum[k] = v
	}

	res, err := f.evaluator.Evaluate(datum)
	if err != nil {
		return false, fmt.Errorf("could not evaluate expression %q: %w", f.expr, err)
	}

	keep, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression %q yields %T", ErrNotBoolean, f.expr, res)
	}

	return keep, nil
}

// Rows returns a new dataframe containing only the rows of df the filter
// keeps. An evaluation failure names the offending row label.
func Rows(df *dataframe.DataFrame, f *Filter) (*dataframe.DataFrame, error) {
	res := &dataframe.DataFrame{
		ColNames: df.ColNames,
		Index:    []string{},
		Vals:     make([][]float64, len(df.ColNames)),
	}
	for colIdx := range res.Vals {
		res.Vals[colIdx] = []float64{}
	}

	vars := make(map[string]float64, len(df.ColNames))
	for idx, label := range df.Index {
		for colIdx, colName := range df.ColNames {
			vars[colName] = df.Vals[colIdx][idx]
		}

		keep, err := f.Keep(vars)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", label, err)
		}
		if !keep {
			continue
		}

		res.Index = append(res.Index, label)
		for colIdx := range df.ColNames {
			res.Vals[colIdx] = append(res.Vals[colIdx], df.Vals[colIdx][idx])
		}
	}

	return res, nil
}
