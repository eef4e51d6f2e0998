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

	"github.com/tabfold/tabfold/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Logging configuration
	viper.BindEnv("log.level", "TABFOLD_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.report_caller", "TABFOLD_LOG_REPORT_CALLER")
	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller"))

	viper.BindEnv("log.output", "TABFOLD_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stderr", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	viper.BindEnv("log.pretty", "TABFOLD_LOG_PRETTY")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "Pretty print log output to the console")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
}

var rootCmd = &cobra.Command{
	Use:     "tabfold",
	Version: common.CurrentVersion.String(),
	Short:   "tabfold summarizes labeled numeric tables",
	Long: `Load a delimited table with a label column and numeric observation columns,
apply a summary statistic independently to each row or column, and print the
labeled results.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		common.SetupLogging()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
