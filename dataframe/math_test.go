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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tabfold/tabfold/dataframe"
)

var _ = Describe("When doing vectorized math", func() {
	var (
		df *dataframe.DataFrame
	)

	BeforeEach(func() {
		df = &dataframe.DataFrame{
			ColNames: []string{"CA", "NY"},
			Index:    []string{"Jan90", "Feb90", "Mar90"},
			Vals: [][]float64{
				{1, 2, 3},
				{4, 5, 6},
			},
		}
	})

	It("adds a scalar to every value", func() {
		res := df.AddScalar(10)
		Expect(res.Vals[0]).To(Equal([]float64{11, 12, 13}))
		Expect(res.Vals[1]).To(Equal([]float64{14, 15, 16}))

		// original is untouched
		Expect(df.Vals[0]).To(Equal([]float64{1, 2, 3}))
	})

	It("adds a vector to every column", func() {
		res := df.AddVec([]float64{10, 20, 30})
		Expect(res.Vals[0]).To(Equal([]float64{11, 22, 33}))
		Expect(res.Vals[1]).To(Equal([]float64{14, 25, 36}))
	})

	It("multiplies every value by a scalar", func() {
		res := df.MulScalar(2)
		Expect(res.Vals[0]).To(Equal([]float64{2, 4, 6}))
		Expect(res.Vals[1]).To(Equal([]float64{8, 10, 12}))
	})

	It("multiplies matching columns", func() {
		other := &dataframe.DataFrame{
			ColNames: []string{"CA"},
			Index:    df.Index,
			Vals:     [][]float64{{2, 2, 2}},
		}
		res := df.Mul(other)
		Expect(res.Vals[0]).To(Equal([]float64{2, 4, 6}))
		// NY has no match in other and is unchanged
		Expect(res.Vals[1]).To(Equal([]float64{4, 5, 6}))
	})

	It("divides matching columns", func() {
		other := &dataframe.DataFrame{
			ColNames: []string{"NY"},
			Index:    df.Index,
			Vals:     [][]float64{{2, 5, 3}},
		}
		res := df.Div(other)
		Expect(res.Vals[1]).To(Equal([]float64{2, 1, 2}))
	})

	It("counts values matching a predicate per row", func() {
		res := df.Count(func(x float64) bool { return x > 2 })
		Expect(res.ColNames).To(Equal([]string{"count"}))
		Expect(res.Vals[0]).To(Equal([]float64{1, 1, 2}))
	})
})
