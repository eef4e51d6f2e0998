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

package reduce_test

import (
	"errors"
	"math"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tabfold/tabfold/dataframe"
	"github.com/tabfold/tabfold/reduce"
)

var _ = Describe("Built-in reductions", func() {
	DescribeTable("scalar reductions",
		func(name string, vals []float64, expected float64) {
			r, err := reduce.Lookup(name)
			Expect(err).To(BeNil())
			res, err := r.Fn(vals)
			Expect(err).To(BeNil())
			Expect(res).To(HaveLen(1))
			Expect(res[0]).To(BeNumerically("~", expected, 1e-9))
		},
		Entry("sum", "sum", []float64{1, 2, 3, 4}, 10.0),
		Entry("mean", "mean", []float64{1, 2, 3, 4}, 2.5),
		Entry("median of odd length", "median", []float64{5, 1, 3}, 3.0),
		Entry("median of even length", "median", []float64{4, 1, 3, 2}, 2.5),
		Entry("median of two", "median", []float64{1, 2}, 1.5),
		Entry("min", "min", []float64{3, 1, 2}, 1.0),
		Entry("max", "max", []float64{3, 1, 2}, 3.0),
		Entry("stdev", "stdev", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 2.13808993529939),
	)

	DescribeTable("reductions of an empty slice fail",
		func(name string) {
			r, err := reduce.Lookup(name)
			Expect(err).To(BeNil())
			_, err = r.Fn([]float64{})
			Expect(errors.Is(err, reduce.ErrEmptySlice)).To(BeTrue())
		},
		Entry("sum", "sum"),
		Entry("mean", "mean"),
		Entry("median", "median"),
		Entry("min", "min"),
		Entry("max", "max"),
		Entry("stdev", "stdev"),
		Entry("fivenum", "fivenum"),
	)

	It("rejects slices containing NaN", func() {
		r, _ := reduce.Lookup("median")
		_, err := r.Fn([]float64{1, math.NaN(), 3})
		Expect(errors.Is(err, reduce.ErrContainsNaN)).To(BeTrue())
	})

	It("rejects stdev of a single value", func() {
		r, _ := reduce.Lookup("stdev")
		_, err := r.Fn([]float64{1})
		Expect(errors.Is(err, reduce.ErrTooFewValues)).To(BeTrue())
	})

	Describe("fivenum", func() {
		DescribeTable("matches Tukey's hinges",
			func(vals []float64, expected []float64) {
				res, err := reduce.FiveNum().Fn(vals)
				Expect(err).To(BeNil())
				Expect(res).To(HaveLen(5))
				for idx := range expected {
					Expect(res[idx]).To(BeNumerically("~", expected[idx], 1e-9))
				}
			},
			Entry("odd length", []float64{5, 4, 3, 2, 1}, []float64{1, 2, 3, 4, 5}),
			Entry("even length", []float64{4, 3, 2, 1}, []float64{1, 1.5, 2.5, 3.5, 4}),
			Entry("single value", []float64{7}, []float64{7, 7, 7, 7, 7}),
			Entry("six values", []float64{1, 2, 3, 4, 5, 6}, []float64{1, 2, 3.5, 5, 6}),
		)

		It("names each stat in the tuple", func() {
			Expect(reduce.FiveNum().Stats).To(Equal([]string{"min", "lower-hinge", "median", "upper-hinge", "max"}))
		})
	})
})

var _ = Describe("SumAcross", func() {
	It("sums aligned vectors position-wise", func() {
		vecs := make([][]float64, 4)
		for ii := range vecs {
			vecs[ii] = make([]float64, 10)
			for jj := range vecs[ii] {
				vecs[ii][jj] = float64(ii*10 + jj + 1)
			}
		}

		res, err := reduce.SumAcross(vecs...)
		Expect(err).To(BeNil())
		Expect(res[0]).To(BeNumerically("==", 64)) // 1+11+21+31
		Expect(res[1]).To(BeNumerically("==", 68)) // 2+12+22+32
		Expect(res[9]).To(BeNumerically("==", 100))
	})

	It("fails on mismatched lengths", func() {
		_, err := reduce.SumAcross([]float64{1, 2}, []float64{1})
		Expect(errors.Is(err, reduce.ErrLengthMismatch)).To(BeTrue())
	})

	It("fails with no vectors", func() {
		_, err := reduce.SumAcross()
		Expect(errors.Is(err, reduce.ErrEmptySlice)).To(BeTrue())
	})
})

var _ = Describe("Cross-check against a hand-written loop", func() {
	var df *dataframe.DataFrame

	BeforeEach(func() {
		df = &dataframe.DataFrame{
			ColNames: []string{"CA", "NY", "TX", "FL"},
			Index:    []string{"Jan90", "Feb90", "Mar90", "Apr90", "May90"},
			Vals: [][]float64{
				{12500.5, 12512.2, 12498.7, 12530.0, 12541.3},
				{8900.25, 8898.1, 8905.6, 8910.0, 8902.4},
				{7400.0, 7395.5, 7410.8, 7420.1, 7415.9},
				{5600.75, 5610.3, 5605.2, 5612.8, 5620.0},
			},
		}
	})

	It("agrees with a per-column loop for the median", func() {
		res := reduce.Apply(df, reduce.Columns, reduce.Median())

		for colIdx, colName := range df.ColNames {
			// naive loop reference
			col := make([]float64, df.Len())
			copy(col, df.Vals[colIdx])
			sort.Float64s(col)
			want := col[len(col)/2]

			Expect(res.Scalars()[colName]).To(BeNumerically("==", want))
		}
	})

	It("agrees with a per-row loop for the sum", func() {
		res := reduce.Apply(df, reduce.Rows, reduce.Sum())

		for rowIdx, label := range df.Index {
			want := 0.0
			for colIdx := range df.ColNames {
				want += df.Vals[colIdx][rowIdx]
			}
			Expect(res.Scalars()[label]).To(BeNumerically("~", want, 1e-9))
		}
	})
})
