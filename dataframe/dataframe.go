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
	"fmt"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// Append takes the labels and values from other and appends them to df. If cols do not align, cols in df that are not
// in other are filled with NaN. Columns in other that are not in df are ignored.
func (df *DataFrame) Append(other *DataFrame) *DataFrame {
	// if there is no data in other then do nothing
	if len(other.Index) == 0 {
		return df
	}

	df.Index = append(df.Index, other.Index...)
	colMap := make(map[string]int, len(other.ColNames))

	for colIdx, colName := range other.ColNames {
		colMap[colName] = colIdx
	}

	for colIdx, colName := range df.ColNames {
		if otherColIdx, ok := colMap[colName]; ok {
			// fill with vals from other
			df.Vals[colIdx] = append(df.Vals[colIdx], other.Vals[otherColIdx]...)
		} else {
			// fill with NaN
			for ii := 0; ii < len(other.Index); ii++ {
				df.Vals[colIdx] = append(df.Vals[colIdx], math.NaN())
			}
		}
	}

	return df
}

// AsMap creates a map with the index as the key and the specified column as the value
func (df *DataFrame) AsMap(colName string) map[string]float64 {
	res := make(map[string]float64, df.Len())
	colIdx := df.ColIndex(colName)
	if colIdx == -1 {
		// column does not exist, return empty map
		return res
	}

	for idx, rowKey := range df.Index {
		res[rowKey] = df.Vals[colIdx][idx]
	}

	return res
}

// Breakout takes a dataframe with multiple columns and returns a map of dataframes, one per column
func (df *DataFrame) Breakout() Map {
	dfMap := Map{}
	for idx, col := range df.ColNames {
		dfMap[col] = &DataFrame{
			Index:    df.Index,
			ColNames: []string{col},
			Vals:     [][]float64{df.Vals[idx]},
		}
	}
	return dfMap
}

// Col returns the values of the named column; returns ErrColumnNotFound if the column doesn't exist
func (df *DataFrame) Col(colName string) ([]float64, error) {
	colIdx := df.ColIndex(colName)
	if colIdx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, colName)
	}
	return df.Vals[colIdx], nil
}

// Get index of specified column; returns -1 if column doesn't exist
func (df *DataFrame) ColIndex(colName string) int {
	for idx, val := range df.ColNames {
		if colName == val {
			return idx
		}
	}

	return -1
}

// ColCount returns the number of columns in the dataframe
func (df *DataFrame) ColCount() int {
	return len(df.ColNames)
}

// Copy creates a copy of the dataframe
func (df *DataFrame) Copy() *DataFrame {
	df2 := &DataFrame{
		ColNames: make([]string, len(df.ColNames)),
		Index:    make([]string, len(df.Index)),
		Vals:     make([][]float64, len(df.Vals)),
	}

	copy(df2.ColNames, df.ColNames)
	copy(df2.Index, df.Index)

	for idx := range df2.Vals {
		df2.Vals[idx] = make([]float64, len(df.Vals[idx]))
		copy(df2.Vals[idx], df.Vals[idx])
	}

	return df2
}

// Drop removes rows that contain the value `val` from the dataframe
func (df *DataFrame) Drop(val float64) *DataFrame {
	isNA := math.IsNaN(val)
	newVals := make([][]float64, len(df.Vals))
	newIndex := make([]string, 0, len(df.Index))

	for idx, rowIdx := range df.Index {
		keep := true
		for _, col := range df.Vals {
			rowVal := col[idx]
			keep = keep && !(rowVal == val || (isNA && math.IsNaN(rowVal)))
			if !keep {
				break
			}
		}

		if keep {
			newIndex = append(newIndex, rowIdx)
			for colIdx, col := range df.Vals {
				rowVal := col[idx]
				newVals[colIdx] = append(newVals[colIdx], rowVal)
			}
		}
	}

	df.Vals = newVals
	df.Index = newIndex
	return df
}

// ForEach takes a lambda function of prototype func(rowIdx int, rowLabel string, vals map[string]float64) map[string]float64
// and updates the row with the returned value; if nil is returned then don't update the row, otherwise update row with returned values
func (df *DataFrame) ForEach(lambda func(int, string, map[string]float64) map[string]float64) {
	res := make(map[string]float64, len(df.ColNames))
	colMap := make(map[string]int, len(df.ColNames))
	for idx, colName := range df.ColNames {
		colMap[colName] = idx
	}

	for idx, rowLabel := range df.Index {
		for colIdx, colName := range df.ColNames {
			res[colName] = df.Vals[colIdx][idx]
		}
		ret := lambda(idx, rowLabel, res)
		for colName, val := range ret {
			if colIdx, ok := colMap[colName]; ok {
				df.Vals[colIdx][idx] = val
			}
		}
	}
}

// IdxMax finds the column with the largest value for each row and stores it in a new dataframe with the column name 'idxmax'
func (df *DataFrame) IdxMax() *DataFrame {
	maxVals := make([]float64, 0, len(df.Index))

	for rowIdx := range df.Index {
		max := math.NaN()
		var ind int
		for colIdx := range df.ColNames {
			v := df.Vals[colIdx][rowIdx]
			if math.IsNaN(v) {
				max = math.NaN()
				break
			}
			if v > max || math.IsNaN(max) {
				max = v
				ind = colIdx
			}
		}

		if !math.IsNaN(max) {
			maxVals = append(maxVals, float64(ind))
		} else {
			maxVals = append(maxVals, math.NaN())
		}
	}

	return &DataFrame{
		Index:    df.Index,
		Vals:     [][]float64{maxVals},
		ColNames: []string{"idxmax"},
	}
}

// Insert a new column to the end of the dataframe
func (df *DataFrame) Insert(name string, col []float64) *DataFrame {
	df.ColNames = append(df.ColNames, name)
	df.Vals = append(df.Vals, col)
	return df
}

// InsertRow adds a new row to the dataframe. vals must equal the number of columns, otherwise panic
func (df *DataFrame) InsertRow(label string, vals ...float64) *DataFrame {
	// Check that the number of columns equals the number of vals passed
	if len(vals) != len(df.ColNames) {
		log.Panic().Int("NumValsPassed", len(vals)).Int("NumColumns", len(df.ColNames)).Msg("number of vals passed must equal number of columns")
	}

	df.Index = append(df.Index, label)
	for colIdx := range df.ColNames {
		df.Vals[colIdx] = append(df.Vals[colIdx], vals[colIdx])
	}

	return df
}

// InsertMap adds a new row to the dataframe. All columns must already exist in the dataframe,
// any additional columns in vals are ignored; missing columns are filled with NaN
func (df *DataFrame) InsertMap(label string, vals map[string]float64) *DataFrame {
	df.Index = append(df.Index, label)
	for colIdx, colName := range df.ColNames {
		if val, ok := vals[colName]; ok {
			df.Vals[colIdx] = append(df.Vals[colIdx], val)
		} else {
			df.Vals[colIdx] = append(df.Vals[colIdx], math.NaN())
		}
	}

	return df
}

// Last returns a new dataframe with only the last item of the current dataframe
func (df *DataFrame) Last() *DataFrame {
	if df.Len() == 0 {
		return df
	}

	lastVals := make([][]float64, len(df.ColNames))
	lastRow := len(df.Index) - 1
	for idx, col := range df.Vals {
		lastVals[idx] = []float64{col[lastRow]}
	}

	newDf := &DataFrame{
		ColNames: df.ColNames,
		Index:    []string{df.Index[len(df.Index)-1]},
		Vals:     lastVals,
	}

	return newDf
}

// Len returns the number of rows in the dataframe
func (df *DataFrame) Len() int {
	return len(df.Index)
}

// Max selects the max value for each row and returns a new dataframe
func (df *DataFrame) Max() *DataFrame {
	maxDf := &DataFrame{
		ColNames: []string{"max"},
		Index:    df.Index,
		Vals:     [][]float64{make([]float64, len(df.Index))},
	}

	for rowIdx := range df.Index {
		row := make([]float64, 0, len(df.ColNames))
		for colIdx := range df.ColNames {
			row = append(row, df.Vals[colIdx][rowIdx])
		}
		maxDf.Vals[0][rowIdx] = floats.Max(row)
	}

	return maxDf
}

// Min selects the min value for each row and returns a new dataframe
func (df *DataFrame) Min() *DataFrame {
	minDf := &DataFrame{
		ColNames: []string{"min"},
		Index:    df.Index,
		Vals:     [][]float64{make([]float64, len(df.Index))},
	}

	for rowIdx := range df.Index {
		row := make([]float64, 0, len(df.ColNames))
		for colIdx := range df.ColNames {
			row = append(row, df.Vals[colIdx][rowIdx])
		}
		minDf.Vals[0][rowIdx] = floats.Min(row)
	}

	return minDf
}

// Row returns the values of the row at idx; panics if idx is out of range
func (df *DataFrame) Row(idx int) []float64 {
	if idx < 0 || idx >= df.Len() {
		log.Panic().Int("RowIdx", idx).Int("NumRows", df.Len()).Msg("row index out of range")
	}

	row := make([]float64, 0, len(df.ColNames))
	for colIdx := range df.ColNames {
		row = append(row, df.Vals[colIdx][idx])
	}
	return row
}

// Split the dataframe into 2, with columns being in the first dataframe and
// all remaining columns in the second
func (df *DataFrame) Split(columns ...string) (*DataFrame, *DataFrame) {
	one := &DataFrame{
		Index:    df.Index,
		ColNames: []string{},
		Vals:     [][]float64{},
	}

	two := &DataFrame{
		Index:    df.Index,
		ColNames: []string{},
		Vals:     [][]float64{},
	}

	// convert requested columns to a map for easy lookup
	colMap := make(map[string]bool, len(columns))
	for _, col := range columns {
		colMap[col] = true
	}

	for idx, col := range df.ColNames {
		if _, ok := colMap[col]; ok {
			one.ColNames = append(one.ColNames, col)
			one.Vals = append(one.Vals, df.Vals[idx])
		} else {
			two.ColNames = append(two.ColNames, col)
			two.Vals = append(two.Vals, df.Vals[idx])
		}
	}

	return one, two
}

// Table prints an ASCII formatted table to stdout
func (df *DataFrame) Table() string {
	if len(df.Index) == 0 {
		return "<NO DATA>" // nothing to do as there is no data available in the dataframe
	}

	// construct table header
	tableCols := append([]string{"Index"}, df.ColNames...)

	// initialize table
	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader(tableCols)
	footer := make([]string, len(tableCols))
	footer[0] = "Num Rows"
	footer[1] = fmt.Sprintf("%d", df.Len())
	table.SetFooter(footer)
	table.SetBorder(false) // Set Border to false

	for idx, rowLabel := range df.Index {
		row := make([]string, 0, len(df.Vals)+1)
		row = append(row, rowLabel)

		for _, col := range df.Vals {
			row = append(row, fmt.Sprintf("%.4f", col[idx]))
		}

		table.Append(row)
	}

	table.Render()
	return s.String()
}
