// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [config files | globs...]",
	Short: "Check for missing or incorrect license notices",
	Long:  `Scan files and report any missing or incorrect license notices. Files are never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, false, args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
