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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
)

// Result holds one reduction tuple per slice, in the slice order of the
// source dataframe. Vals[idx] is nil when the slice named Labels[idx] failed;
// the failure is recorded in Errs under the same label.
type Result struct {
	Axis   Axis
	Name   string
	Stats  []string
	Labels []string
	Vals   [][]float64
	Errs   map[string]error
}

// Len returns the number of slices the reduction ran over
func (res *Result) Len() int {
	return len(res.Labels)
}

// Scalars converts a single-stat result to a map of label to value; failed
// slices are omitted
func (res *Result) Scalars() map[string]float64 {
	m := make(map[string]float64, len(res.Labels))
	for idx, label := range res.Labels {
		if res.Vals[idx] == nil {
			continue
		}
		m[label] = res.Vals[idx][0]
	}
	return m
}

// Table renders the result as an ASCII formatted table
func (res *Result) Table() string {
	if len(res.Labels) == 0 {
		return "<NO DATA>"
	}

	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader(append([]string{"Slice"}, res.Stats...))
	table.SetBorder(false)

	for idx, label := range res.Labels {
		row := make([]string, 0, len(res.Stats)+1)
		row = append(row, label)
		if res.Vals[idx] == nil {
			for range res.Stats {
				row = append(row, "ERR")
			}
		} else {
			for _, v := range res.Vals[idx] {
				row = append(row, fmt.Sprintf("%.4f", v))
			}
		}
		table.Append(row)
	}

	table.Render()
	return s.String()
}

type resultRecord struct {
	Label string             `json:"label"`
	Stats map[string]float64 `json:"stats,omitempty"`
	Error string             `json:"error,omitempty"`
}

// JSON serializes the result as an array of per-slice records
func (res *Result) JSON() ([]byte, error) {
	records := make([]resultRecord, 0, len(res.Labels))
	for idx, label := range res.Labels {
		rec := resultRecord{Label: label}
		if res.Vals[idx] == nil {
			rec.Error = res.Errs[label].Error()
		} else {
			rec.Stats = make(map[string]float64, len(res.Stats))
			for statIdx, statName := range res.Stats {
				rec.Stats[statName] = res.Vals[idx][statIdx]
			}
		}
		records = append(records, rec)
	}

	return json.Marshal(records)
}

// WriteCSV writes the result as a delimited table with a header row; failed
// slices are written with empty value fields
func (res *Result) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(append([]string{"slice"}, res.Stats...)); err != nil {
		return err
	}

	for idx, label := range res.Labels {
		row := make([]string, 0, len(res.Stats)+1)
		row = append(row, label)
		if res.Vals[idx] == nil {
			for range res.Stats {
				row = append(row, "")
			}
		} else {
			for _, v := range res.Vals[idx] {
				row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
