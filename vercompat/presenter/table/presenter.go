package table

import (
	"io"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/datapipe-dev/vercompat/vercompat"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	report    vercompat.Report
	withColor bool
}

// NewPresenter is a *Presenter constructor
func NewPresenter(report vercompat.Report) *Presenter {
	return &Presenter{
		report:    report,
		withColor: supportsColor(),
	}
}

// Present creates a human-readable table-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	if len(pres.report) == 0 {
		_, err := io.WriteString(output, "No version pairs to check\n")
		return err
	}

	rows := make([][]string, 0, len(pres.report))
	for _, r := range pres.report {
		rows = append(rows, []string{
			r.Name,
			r.Declared.String(),
			r.Actual.String(),
			r.Regime.String(),
			r.CompatibleRange,
			r.Verdict(),
		})
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Name", "Declared", "Actual", "Regime", "Compatible-Range", "Verdict"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	if pres.withColor {
		for idx, row := range rows {
			verdictColor := tablewriter.Colors{}
			if !pres.report[idx].Compatible {
				verdictColor = tablewriter.Colors{tablewriter.FgRedColor}
			}
			table.Rich(row, []tablewriter.Colors{{}, {}, {}, {}, {}, verdictColor})
		}
	} else {
		table.AppendBulk(rows)
	}

	table.Render()

	return nil
}

func supportsColor() bool {
	return color.IsSupportColor()
}
