// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/YakDriver/noticeplop/internal/config"
	"github.com/YakDriver/noticeplop/internal/logger"
	"github.com/YakDriver/noticeplop/internal/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func run(cmd *cobra.Command, fix bool, args []string) error {
	tty := term.IsTerminal(int(os.Stderr.Fd()))

	level := slog.LevelInfo
	switch {
	case viper.GetBool("verbose"):
		level = slog.LevelDebug
	case viper.GetBool("quiet"):
		level = slog.LevelError
	}
	ctx := logger.Put(cmd.Context(), logger.New(cmd.ErrOrStderr(), level, tty))

	mapping, err := config.Load(ctx, config.Options{
		Holder:  viper.GetString("holder"),
		License: viper.GetString("license"),
		Paths:   args,
	})
	if err != nil {
		return err
	}

	var progress io.Writer
	if tty && !viper.GetBool("no-progress") && !viper.GetBool("quiet") {
		progress = cmd.ErrOrStderr()
	}

	report, err := runner.New(runner.Options{
		Fix:      fix,
		Jobs:     viper.GetInt("jobs"),
		Progress: progress,
	}).Run(ctx, mapping.Entries())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !report.OK() {
		for _, msg := range report.Messages() {
			fmt.Fprintln(out, msg)
		}
		return report.Err()
	}

	switch {
	case len(report.Fixed) > 0:
		fmt.Fprintf(out, "✓ Fixed %d of %d files\n", len(report.Fixed), report.Total)
	default:
		fmt.Fprintf(out, "✓ All %d files have correct license notices\n", report.Total)
	}
	return nil
}
