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

package dataframe

import (
	"github.com/rs/zerolog/log"
)

// Map is a collection of single-purpose dataframes keyed by name
type Map map[string]*DataFrame

// Drop calls dataframe.Drop on each dataframe in the map
func (dfMap Map) Drop(val float64) Map {
	for _, v := range dfMap {
		v.Drop(val)
	}
	return dfMap
}

// DataFrame converts each item in the map to a column in the dataframe. All dataframes in the
// map must share the same row labels, otherwise panic
func (dfMap Map) DataFrame() *DataFrame {
	df := &DataFrame{}
	first := true
	for _, v := range dfMap {
		if first {
			df.Index = v.Index
			df.ColNames = v.ColNames
			df.Vals = v.Vals
			first = false
		} else {
			if len(df.Index) != len(v.Index) {
				log.Panic().Err(ErrLabelsNotAligned).Int("df1.Len", len(df.Index)).Int("df2.Len", len(v.Index)).Msg("cannot merge into single dataframe")
			}
			for idx, label := range df.Index {
				if v.Index[idx] != label {
					log.Panic().Err(ErrLabelsNotAligned).Str("df1.Label", label).Str("df2.Label", v.Index[idx]).Int("RowIdx", idx).Msg("cannot merge into single dataframe")
				}
			}
			df.ColNames = append(df.ColNames, v.ColNames...)
			df.Vals = append(df.Vals, v.Vals...)
		}
	}

	return df
}
