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

package dataframe_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tabfold/tabfold/dataframe"
)

var _ = Describe("DataFrame", func() {
	Context("with no values", func() {
		var (
			df *dataframe.DataFrame
		)

		BeforeEach(func() {
			df = &dataframe.DataFrame{}
		})

		It("has zero length", func() {
			Expect(df.Len()).To(Equal(0))
		})

		It("has zero columns", func() {
			Expect(df.ColCount()).To(Equal(0))
		})

		It("has no column names", func() {
			Expect(len(df.ColNames)).To(Equal(0))
		})

		It("does not error on breakout", func() {
			dfMap := df.Breakout()
			Expect(len(dfMap)).To(Equal(0))
		})

		It("does not error on drop", func() {
			df = df.Drop(1)
			Expect(df.Len()).To(Equal(0))
		})

		It("returns an error for a missing column", func() {
			_, err := df.Col("CA")
			Expect(err).To(MatchError(dataframe.ErrColumnNotFound))
		})
	})

	Context("with a single column", func() {
		var (
			df *dataframe.DataFrame
		)

		BeforeEach(func() {
			labels := []string{"Jan90", "Feb90", "Mar90", "Apr90", "May90"}
			df = &dataframe.DataFrame{
				ColNames: []string{"CA"},
				Index:    labels,
				Vals:     [][]float64{{0, 1, 2, 3, 4}},
			}
		})

		It("has length", func() {
			Expect(df.Len()).To(Equal(5))
		})

		It("has 1 column", func() {
			Expect(df.ColCount()).To(Equal(1))
		})

		It("does not error on breakout", func() {
			dfMap := df.Breakout()
			_, ok := dfMap["CA"]
			Expect(ok).To(BeTrue())
		})

		It("can remove all 0s with drop", func() {
			df = df.Drop(0)
			Expect(df.Len()).To(Equal(4))
			Expect(df.Vals[0][0]).To(BeNumerically("==", 1.0))
			Expect(df.Index[0]).To(Equal("Feb90"))
		})

		It("retrieves a column by name", func() {
			col, err := df.Col("CA")
			Expect(err).To(BeNil())
			Expect(col).To(Equal([]float64{0, 1, 2, 3, 4}))
		})

		It("converts the column to a map", func() {
			m := df.AsMap("CA")
			Expect(len(m)).To(Equal(5))
			Expect(m["Mar90"]).To(BeNumerically("==", 2.0))
		})

		It("keeps only the final row with last", func() {
			last := df.Last()
			Expect(last.Len()).To(Equal(1))
			Expect(last.Index[0]).To(Equal("May90"))
			Expect(last.Vals[0][0]).To(BeNumerically("==", 4.0))
		})
	})

	Context("with multiple columns", func() {
		var (
			df *dataframe.DataFrame
		)

		BeforeEach(func() {
			df = &dataframe.DataFrame{
				ColNames: []string{"CA", "NY", "TX"},
				Index:    []string{"Jan90", "Feb90", "Mar90"},
				Vals: [][]float64{
					{1, 2, 3},
					{4, 5, 6},
					{7, 8, 9},
				},
			}
		})

		It("retrieves a row by index", func() {
			Expect(df.Row(1)).To(Equal([]float64{2, 5, 8}))
		})

		It("computes max across each row", func() {
			maxDf := df.Max()
			Expect(maxDf.ColNames).To(Equal([]string{"max"}))
			Expect(maxDf.Vals[0]).To(Equal([]float64{7, 8, 9}))
		})

		It("computes min across each row", func() {
			minDf := df.Min()
			Expect(minDf.Vals[0]).To(Equal([]float64{1, 2, 3}))
		})

		It("finds the column holding the row max with idxmax", func() {
			idxMax := df.IdxMax()
			Expect(idxMax.Vals[0]).To(Equal([]float64{2, 2, 2}))
		})

		It("splits requested columns into a separate dataframe", func() {
			one, two := df.Split("NY")
			Expect(one.ColNames).To(Equal([]string{"NY"}))
			Expect(two.ColNames).To(Equal([]string{"CA", "TX"}))
			Expect(one.Vals[0]).To(Equal([]float64{4, 5, 6}))
		})

		It("copies without aliasing", func() {
			df2 := df.Copy()
			df2.Vals[0][0] = 99
			Expect(df.Vals[0][0]).To(BeNumerically("==", 1.0))
		})

		It("inserts a new column", func() {
			df = df.Insert("FL", []float64{10, 11, 12})
			Expect(df.ColCount()).To(Equal(4))
			col, err := df.Col("FL")
			Expect(err).To(BeNil())
			Expect(col).To(Equal([]float64{10, 11, 12}))
		})

		It("inserts a row with positional values", func() {
			df = df.InsertRow("Apr90", 10, 11, 12)
			Expect(df.Len()).To(Equal(4))
			Expect(df.Index[3]).To(Equal("Apr90"))
			Expect(df.Row(3)).To(Equal([]float64{10, 11, 12}))
		})

		It("inserts a row from a map filling missing columns with NaN", func() {
			df = df.InsertMap("Apr90", map[string]float64{"CA": 10, "TX": 12})
			Expect(df.Len()).To(Equal(4))
			Expect(df.Vals[0][3]).To(BeNumerically("==", 10.0))
			Expect(math.IsNaN(df.Vals[1][3])).To(BeTrue())
			Expect(df.Vals[2][3]).To(BeNumerically("==", 12.0))
		})

		It("updates rows through foreach", func() {
			df.ForEach(func(_ int, label string, vals map[string]float64) map[string]float64 {
				if label == "Feb90" {
					return map[string]float64{"CA": vals["CA"] * 10}
				}
				return nil
			})
			Expect(df.Vals[0]).To(Equal([]float64{1, 20, 3}))
		})

		It("appends rows from another dataframe, filling unknown columns with NaN", func() {
			other := &dataframe.DataFrame{
				ColNames: []string{"CA", "NY"},
				Index:    []string{"Apr90"},
				Vals:     [][]float64{{10}, {11}},
			}
			df = df.Append(other)
			Expect(df.Len()).To(Equal(4))
			Expect(df.Vals[0][3]).To(BeNumerically("==", 10.0))
			Expect(math.IsNaN(df.Vals[2][3])).To(BeTrue())
		})

		It("renders an ascii table", func() {
			tbl := df.Table()
			Expect(tbl).To(ContainSubstring("CA"))
			Expect(tbl).To(ContainSubstring("Jan90"))
			Expect(tbl).To(ContainSubstring("1.0000"))
		})
	})

	Context("when merging a map of dataframes", func() {
		It("combines columns that share labels", func() {
			dfMap := dataframe.Map{
				"one": {
					ColNames: []string{"one"},
					Index:    []string{"a", "b"},
					Vals:     [][]float64{{1, 2}},
				},
				"two": {
					ColNames: []string{"two"},
					Index:    []string{"a", "b"},
					Vals:     [][]float64{{3, 4}},
				},
			}

			df := dfMap.DataFrame()
			Expect(df.Len()).To(Equal(2))
			Expect(df.ColCount()).To(Equal(2))
		})

		It("drops rows containing a value from each dataframe independently", func() {
			dfMap := dataframe.Map{
				"one": {
					ColNames: []string{"one"},
					Index:    []string{"a", "b"},
					Vals:     [][]float64{{0, 2}},
				},
				"two": {
					ColNames: []string{"two"},
					Index:    []string{"a", "b"},
					Vals:     [][]float64{{3, 4}},
				},
			}

			dfMap = dfMap.Drop(0)
			Expect(dfMap["one"].Len()).To(Equal(1))
			Expect(dfMap["one"].Index).To(Equal([]string{"b"}))
			Expect(dfMap["two"].Len()).To(Equal(2))
		})
	})
})
