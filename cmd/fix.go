// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix [config files | globs...]",
	Short: "Fix missing or incorrect license notices",
	Long:  `Add or update license notices in source files. Same as running with --fix.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, true, args)
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
