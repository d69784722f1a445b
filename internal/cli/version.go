package cli

import (
	"github.com/spf13/cobra"

	"github.com/gomlir/gomlir/common"
	"github.com/gomlir/gomlir/report"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the gomlir version",
	Run: func(cmd *cobra.Command, args []string) {
		report.PrintInfoMessage("gomlir", "v"+common.GomlirVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
