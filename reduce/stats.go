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
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// checkSlice rejects slices no reduction can produce a meaningful value for.
// NaN is how the dataframe marks missing values, so a slice containing NaN is
// an error rather than a silent NaN result.
func checkSlice(vals []float64) error {
	if len(vals) == 0 {
		return ErrEmptySlice
	}
	if floats.HasNaN(vals) {
		return ErrContainsNaN
	}
	return nil
}

// scalar builds a Reduction from a function returning a single summary value
func scalar(name string, fn func(vals []float64) (float64, error)) Reduction {
	return Reduction{
		Name:  name,
		Stats: []string{name},
		Fn: func(vals []float64) ([]float64, error) {
			if err := checkSlice(vals); err != nil {
				return nil, err
			}
			v, err := fn(vals)
			if err != nil {
				return nil, err
			}
			return []float64{v}, nil
		},
	}
}

// Sum reduces a slice to the sum of its values
func Sum() Reduction {
	return scalar("sum", func(vals []float64) (float64, error) {
		return floats.Sum(vals), nil
	})
}

// Mean reduces a slice to its arithmetic mean
func Mean() Reduction {
	return scalar("mean", func(vals []float64) (float64, error) {
		return stat.Mean(vals, nil), nil
	})
}

// Median reduces a slice to its median; the mean of the two middle values
// when the slice has an even number of elements
func Median() Reduction {
	return scalar("median", func(vals []float64) (float64, error) {
		return median(sortedCopy(vals)), nil
	})
}

// Min reduces a slice to its smallest value
func Min() Reduction {
	return scalar("min", func(vals []float64) (float64, error) {
		return floats.Min(vals), nil
	})
}

// Max reduces a slice to its largest value
func Max() Reduction {
	return scalar("max", func(vals []float64) (float64, error) {
		return floats.Max(vals), nil
	})
}

// StdDev reduces a slice to its sample standard deviation; requires at least
// two values
func StdDev() Reduction {
	return scalar("stdev", func(vals []float64) (float64, error) {
		if len(vals) < 2 {
			return 0, fmt.Errorf("%w: stdev needs at least 2 values", ErrTooFewValues)
		}
		return stat.StdDev(vals, nil), nil
	})
}

// FiveNum reduces a slice to Tukey's five-number summary: minimum, lower
// hinge, median, upper hinge and maximum
func FiveNum() Reduction {
	return Reduction{
		Name:  "fivenum",
		Stats: []string{"min", "lower-hinge", "median", "upper-hinge", "max"},
		Fn: func(vals []float64) ([]float64, error) {
			if err := checkSlice(vals); err != nil {
				return nil, err
			}

			sorted := sortedCopy(vals)
			n := float64(len(sorted))
			n4 := math.Floor((n+3)/2) / 2
			depths := []float64{1, n4, (n + 1) / 2, n + 1 - n4, n}

			res := make([]float64, len(depths))
			for idx, d := range depths {
				lo := sorted[int(math.Floor(d))-1]
				hi := sorted[int(math.Ceil(d))-1]
				res[idx] = 0.5 * (lo + hi)
			}
			return res, nil
		},
	}
}

// SumAcross sums the aligned vectors position-wise; all vectors must have the
// same length
func SumAcross(vecs ...[]float64) ([]float64, error) {
	if len(vecs) == 0 {
		return nil, ErrEmptySlice
	}

	res := make([]float64, len(vecs[0]))
	copy(res, vecs[0])
	for _, vec := range vecs[1:] {
		if len(vec) != len(res) {
			return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(res), len(vec))
		}
		floats.Add(res, vec)
	}
	return res, nil
}

// Lookup returns the named built-in reduction
func Lookup(name string) (Reduction, error) {
	switch name {
	case "sum":
		return Sum(), nil
	case "mean":
		return Mean(), nil
	case "median":
		return Median(), nil
	case "min":
		return Min(), nil
	case "max":
		return Max(), nil
	case "stdev":
		return StdDev(), nil
	case "fivenum":
		return FiveNum(), nil
	}
	return Reduction{}, fmt.Errorf("%w: %s", ErrUnknownReduction, name)
}

// Names lists the built-in reductions accepted by Lookup
func Names() []string {
	return []string{"fivenum", "max", "mean", "median", "min", "stdev", "sum"}
}

func sortedCopy(vals []float64) []float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	return sorted
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return 0.5 * (sorted[n/2-1] + sorted[n/2])
}
