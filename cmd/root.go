package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/datapipe-dev/vercompat/internal"
	"github.com/datapipe-dev/vercompat/internal/format"
	"github.com/datapipe-dev/vercompat/internal/log"
	"github.com/datapipe-dev/vercompat/vercompat"
	"github.com/datapipe-dev/vercompat/vercompat/presenter"
	"github.com/datapipe-dev/vercompat/vercompat/version"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s DECLARED ACTUAL", internal.ApplicationName),
	Short: "Check two datapipe versions against the compatibility policy",
	Long: format.Tprintf(`Check whether a consumer built against the DECLARED version may safely use the ACTUAL version:
    {{.appName}} 0.7.0 0.7.3     0.x line: minor must match exactly (patch is free)
    {{.appName}} 1.2.3 1.9.0     1.x and beyond: major must match

Exit codes: 0 = compatible, 1 = error, 2 = incompatible.
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDefaultCmd(cmd, args))
	},
}

func init() {
	// output & formatting options (persistent so that verify inherits them)
	flag := "output"
	rootCmd.PersistentFlags().StringP(
		flag, "o", presenter.TablePresenter.String(),
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)
}

func bindRootConfigOptions(flags *pflag.FlagSet) error {
	flag := "output"
	if err := viper.BindPFlag(flag, flags.Lookup(flag)); err != nil {
		return fmt.Errorf("unable to bind flag '%s': %w", flag, err)
	}
	return nil
}

func runDefaultCmd(_ *cobra.Command, args []string) int {
	if appConfig.Dev.ProfileCPU {
		defer profile.Start(profile.CPUProfile).Stop()
	} else if appConfig.Dev.ProfileMem {
		defer profile.Start(profile.MemProfile).Stop()
	}

	declared, err := version.Parse(args[0])
	if err != nil {
		log.Errorf("invalid declared version: %+v", err)
		return 1
	}

	actual, err := version.Parse(args[1])
	if err != nil {
		log.Errorf("invalid actual version: %+v", err)
		return 1
	}

	report := vercompat.Report{vercompat.Evaluate(declared, actual)}

	if code := presentReport(report); code != 0 {
		return code
	}

	if report.HasIncompatibilities() {
		return 2
	}
	return 0
}

func presentReport(report vercompat.Report) int {
	outputOption := viper.GetString("output")

	presenterType := presenter.ParseOption(outputOption)
	if presenterType == presenter.UnknownPresenter {
		log.Errorf("cannot find an output presenter for option: %s", outputOption)
		return 1
	}

	if err := presenter.GetPresenter(presenterType, report).Present(os.Stdout); err != nil {
		log.Errorf("could not format report: %+v", err)
		return 1
	}
	return 0
}
