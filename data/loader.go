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

// Package data loads delimited text tables into dataframes. The expected
// layout is a header row followed by data rows where the first field is a
// row label (typically a date) and the remaining fields are numeric.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/tabfold/tabfold/dataframe"
)

// LoadCSV reads the file at path into a dataframe. Malformed rows are dropped
// from the frame and reported in the returned RowError slice; a missing file
// or unreadable header is fatal for the whole load.
func LoadCSV(path string) (*dataframe.DataFrame, []*RowError, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open table: %w", err)
	}
	defer fh.Close()

	return ReadCSV(fh)
}

// ReadCSV reads a delimited table from r into a dataframe
func ReadCSV(r io.Reader) (*dataframe.DataFrame, []*RowError, error) {
	reader := csv.NewReader(r)
	// field count is validated per-row so one short row doesn't fail the load
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyTable
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not read header: %w", err)
	}
	if len(header) < 2 {
		return nil, nil, ErrNoColumns
	}

	colNames := header[1:]
	df := &dataframe.DataFrame{
		ColNames: colNames,
		Index:    []string{},
		Vals:     make([][]float64, len(colNames)),
	}
	for colIdx := range df.Vals {
		df.Vals[colIdx] = []float64{}
	}

	rowErrors := make([]*RowError, 0)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			// the reader reports the physical line itself on parse errors
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			rowErrors = append(rowErrors, &RowError{Row: line, Err: err})
			continue
		}

		// physical line of the row; blank lines the reader skips still count
		line, _ := reader.FieldPos(0)

		if len(record) != len(header) {
			rowErrors = append(rowErrors, &RowError{
				Row: line,
				Err: fmt.Errorf("%w: expected %d got %d", ErrFieldCount, len(header), len(record)),
			})
			continue
		}

		vals := make([]float64, len(colNames))
		ok := true
		for ii, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				rowErrors = append(rowErrors, &RowError{
					Row: line,
					Err: fmt.Errorf("%w: column %s value %q", ErrNotNumeric, colNames[ii], field),
				})
				ok = false
				break
			}
			vals[ii] = v
		}

		if !ok {
			continue
		}

		df.Index = append(df.Index, record[0])
		for colIdx := range colNames {
			df.Vals[colIdx] = append(df.Vals[colIdx], vals[colIdx])
		}
	}

	log.Debug().Int("NumRows", df.Len()).Int("NumCols", df.ColCount()).Int("NumBadRows", len(rowErrors)).Msg("loaded table")
	return df, rowErrors, nil
}
