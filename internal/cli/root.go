// Package cli implements the gomlir command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gomlir/gomlir/common"
	"github.com/gomlir/gomlir/report"
)

var (
	cfgPath           string
	quiet             bool
	allowUnregistered bool
)

var rootCmd = &cobra.Command{
	Use:   "gomlir",
	Short: "gomlir is a tool for transforming MLIR modules",
	Long: `gomlir parses, verifies, and optimizes textual MLIR modules.

Pass pipelines are given either inline with --pipeline or as a named profile
from a TOML pipeline file (see the config flag).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		report.SetQuiet(quiet)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", common.PipelineFileName, "path to a TOML pipeline profile file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&allowUnregistered, "allow-unregistered", false, "allow operations of unregistered dialects")
}

// Execute is the main entry point for the `gomlir` CLI utility.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.Fatal("%s", err)
	}
}
