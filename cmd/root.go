// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/YakDriver/noticeplop/internal/runner"
	"github.com/YakDriver/noticeplop/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:     "noticeplop [flags] [config files | globs...]",
	Short:   "Check and fix SPDX license notices",
	Version: version.Version(),
	Long: `noticeplop checks that source files start with a license notice:

  // SPDX-License-Identifier: <license>
  // Copyright (c) <year>[-<year>] <holder>

Arguments are config files (default noticeplop.toml). With --holder and
--license, arguments are glob patterns instead.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, viper.GetBool("fix"), args)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolP("fix", "f", false, "fix license notices in place")

	flags := rootCmd.PersistentFlags()
	flags.StringP("holder", "H", "", "copyright holder, for inline config")
	flags.StringP("license", "L", "", "SPDX license identifier, for inline config")
	flags.IntP("jobs", "j", runner.DefaultJobs, "maximum number of files processed at once")
	flags.BoolP("verbose", "v", false, "log every file")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.Bool("no-progress", false, "do not show a progress bar")
	rootCmd.MarkFlagsRequiredTogether("holder", "license")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate("v{{.Version}}\n")

	_ = viper.BindPFlag("fix", rootCmd.Flags().Lookup("fix"))
	for _, name := range []string{"holder", "license", "jobs", "verbose", "quiet", "no-progress"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func initConfig() {
	viper.SetEnvPrefix("NOTICEPLOP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
