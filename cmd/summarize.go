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

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tabfold/tabfold/data"
	"github.com/tabfold/tabfold/dataframe"
	"github.com/tabfold/tabfold/filter"
	"github.com/tabfold/tabfold/reduce"
)

var (
	summarizeAxis   string
	summarizeStat   string
	summarizeFilter string
	summarizeFormat string
)

func init() {
	summarizeCmd.Flags().StringVar(&summarizeAxis, "axis", "columns", "Axis to reduce over: columns or rows")
	summarizeCmd.Flags().StringVar(&summarizeStat, "stat", "median", fmt.Sprintf("Summary statistic, one of: %s", strings.Join(reduce.Names(), ", ")))
	summarizeCmd.Flags().StringVar(&summarizeFilter, "filter", "", "Boolean expression selecting rows to include, e.g. 'CA > 12500'")
	summarizeCmd.Flags().StringVar(&summarizeFormat, "format", "table", "Output format: table, json, or csv")
	rootCmd.AddCommand(summarizeCmd)
}

var summarizeCmd = &cobra.Command{
	Use:        "summarize [flags] FILE",
	Short:      "Apply a summary statistic to each row or column of a table",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"FILE"},
	Run: func(_ *cobra.Command, args []string) {
		df := loadTable(args[0])

		if summarizeFilter != "" {
			f, err := filter.New(summarizeFilter)
			if err != nil {
				log.Fatal().Err(err).Str("Expr", summarizeFilter).Msg("could not compile filter expression")
			}

			df, err = filter.Rows(df, f)
			if err != nil {
				log.Fatal().Err(err).Str("Expr", summarizeFilter).Msg("could not filter rows")
			}
			log.Debug().Int("NumRows", df.Len()).Str("Expr", summarizeFilter).Msg("filtered table")
		}

		axis, err := reduce.ParseAxis(summarizeAxis)
		if err != nil {
			log.Fatal().Err(err).Str("Axis", summarizeAxis).Msg("invalid axis")
		}

		red, err := reduce.Lookup(summarizeStat)
		if err != nil {
			log.Fatal().Err(err).Str("Stat", summarizeStat).Msg("invalid statistic")
		}

		res := reduce.Apply(df, axis, red)
		for _, err := range res.Errs {
			log.Error().Err(err).Msg("slice could not be reduced")
		}

		printResult(res)
	},
}

// loadTable reads the table, logging dropped rows; a failed load is fatal
func loadTable(path string) *dataframe.DataFrame {
	df, rowErrs, err := data.LoadCSV(path)
	if err != nil {
		log.Fatal().Err(err).Str("File", path).Msg("could not load table")
	}

	for _, rowErr := range rowErrs {
		log.Warn().Int("Row", rowErr.Row).Err(rowErr.Err).Msg("dropped malformed row")
	}

	return df
}

func printResult(res *reduce.Result) {
	switch summarizeFormat {
	case "table":
		fmt.Println(res.Table())
	case "json":
		body, err := res.JSON()
		if err != nil {
			log.Fatal().Err(err).Msg("could not serialize result")
		}
		fmt.Println(string(body))
	case "csv":
		if err := res.WriteCSV(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("could not write result")
		}
	default:
		log.Fatal().Str("Format", summarizeFormat).Msg("unknown output format")
	}
}
