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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tabfold/tabfold/reduce"
)

func init() {
	rootCmd.AddCommand(describeCmd)
}

var describeCmd = &cobra.Command{
	Use:        "describe [flags] FILE",
	Short:      "Print the five-number summary of every column in a table",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"FILE"},
	Run: func(_ *cobra.Command, args []string) {
		df := loadTable(args[0])

		res := reduce.Apply(df, reduce.Columns, reduce.FiveNum())
		for _, err := range res.Errs {
			log.Error().Err(err).Msg("column could not be summarized")
		}

		fmt.Println(res.Table())
	},
}
