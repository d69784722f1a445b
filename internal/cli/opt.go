package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gomlir/gomlir/common"
	"github.com/gomlir/gomlir/mlir"
	"github.com/gomlir/gomlir/report"
)

var (
	optPipeline      string
	optProfile       string
	optOutput        string
	optNoVerify      bool
	optPrintPipeline bool
)

var optCmd = &cobra.Command{
	Use:   "opt <module file>",
	Short: "run a pass pipeline over a module",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpt,
}

func init() {
	optCmd.Flags().StringVarP(&optPipeline, "pipeline", "p", "", "pass pipeline in MLIR textual syntax, eg. \"cse,canonicalize\"")
	optCmd.Flags().StringVar(&optProfile, "profile", "", "name of a pipeline profile from the config file")
	optCmd.Flags().StringVarP(&optOutput, "output", "o", "", "write the transformed module to this file instead of stdout")
	optCmd.Flags().BoolVar(&optNoVerify, "no-verify", false, "disable verification between passes")
	optCmd.Flags().BoolVar(&optPrintPipeline, "print-pipeline", false, "print the resolved pipeline before running it")

	rootCmd.AddCommand(optCmd)
}

func runOpt(cmd *cobra.Command, args []string) error {
	module, ctx, err := parseModuleFile(args[0])
	if err != nil {
		return err
	}
	defer ctx.Destroy()
	defer module.Destroy()

	mlir.RegisterAllPasses()

	pm := mlir.NewPassManager(ctx.ContextRef)
	defer pm.Destroy()

	pm.EnableVerifier(!optNoVerify)

	if err := buildPipeline(pm); err != nil {
		return err
	}

	if optPrintPipeline {
		report.PrintInfoMessage("Pipeline", pm.AsOpPassManager().String())
	}

	report.BeginPhase("Optimizing")
	if err := pm.Run(module); err != nil {
		report.EndPhase(false)
		return err
	}
	report.EndPhase(true)

	return writeModule(module)
}

// buildPipeline resolves the pipeline flags into passes on the manager.
func buildPipeline(pm *mlir.PassManager) error {
	switch {
	case optPipeline != "" && optProfile != "":
		return errors.New("--pipeline and --profile are mutually exclusive")

	case optPipeline != "":
		return pm.AsOpPassManager().ParsePipeline(optPipeline)

	case optProfile != "":
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return err
		}

		profile, ok := cfg.Profile(optProfile)
		if !ok {
			return fmt.Errorf("no pipeline profile named %q in %s", optProfile, cfgPath)
		}

		target := pm.AsOpPassManager()
		if profile.Anchor != "builtin.module" {
			target = pm.NestedUnder(profile.Anchor)
		}

		return target.ParsePipeline(strings.Join(profile.Passes, ","))

	default:
		return errors.New("one of --pipeline or --profile is required")
	}
}

// parseModuleFile reads a textual MLIR file into a fresh context with all
// dialects available.  On success, the caller owns both returned objects.
func parseModuleFile(path string) (*mlir.Module, *mlir.Context, error) {
	if filepath.Ext(path) != common.ModuleFileExt {
		report.PrintWarningMessage("Warning", path+" does not have the "+common.ModuleFileExt+" extension")
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	ctx := mlir.NewContext()
	mlir.RegisterAllUpstreamDialects(ctx.ContextRef)
	ctx.LoadAllAvailableDialects()
	ctx.SetAllowUnregisteredDialects(allowUnregistered)

	report.BeginPhase("Parsing")
	module, err := ctx.ParseModule(string(source))
	if err != nil {
		report.EndPhase(false)
		ctx.Destroy()
		return nil, nil, err
	}
	report.EndPhase(true)

	return module, ctx, nil
}

// writeModule prints the module to the output flag's destination.
func writeModule(module *mlir.Module) error {
	if optOutput == "" || optOutput == "-" {
		return module.Print(os.Stdout)
	}

	f, err := os.Create(optOutput)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := module.Print(f); err != nil {
		return err
	}

	report.PrintInfoMessage("Wrote", optOutput)
	return nil
}
