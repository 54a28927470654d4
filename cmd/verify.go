package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/datapipe-dev/vercompat/internal/log"
	"github.com/datapipe-dev/vercompat/vercompat/pinfile"
)

var verifyCmd = &cobra.Command{
	Use:   "verify PINFILE",
	Short: "Verify every pin in a YAML pin file against the compatibility policy",
	Long: `Verify a YAML pin file, where each entry names a consumer and the declared/actual
version pair to check:

    pins:
      - name: ingest-worker
        declared: 0.7.0
        actual: 0.7.3

Exit codes: 0 = all pins compatible, 1 = error (including malformed versions), 2 = at least one incompatible pin.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runVerifyCmd(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerifyCmd(_ *cobra.Command, args []string) int {
	doc, err := pinfile.Load(afero.NewOsFs(), args[0])
	if err != nil {
		log.Errorf("unable to load pin file: %+v", err)
		return 1
	}

	report, err := doc.Verify()
	if err != nil {
		// malformed versions are a hard rejection, no partial verdict is given
		log.Errorf("unable to verify pin file: %+v", err)
		return 1
	}

	if code := presentReport(report); code != 0 {
		return code
	}

	if report.HasIncompatibilities() {
		return 2
	}
	return 0
}
