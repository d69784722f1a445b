package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gomlir/gomlir/report"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <module file>",
	Short: "parse and verify a module",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	module, ctx, err := parseModuleFile(args[0])
	if err != nil {
		return err
	}
	defer ctx.Destroy()
	defer module.Destroy()

	report.BeginPhase("Verifying")
	if !module.AsOperation().Verify() {
		report.EndPhase(false)
		return fmt.Errorf("%s: module failed verification", args[0])
	}
	report.EndPhase(true)

	report.PrintInfoMessage("OK", args[0])
	return nil
}
