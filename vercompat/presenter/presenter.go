package presenter

import (
	"io"

	"github.com/datapipe-dev/vercompat/vercompat"
	"github.com/datapipe-dev/vercompat/vercompat/presenter/json"
	"github.com/datapipe-dev/vercompat/vercompat/presenter/table"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(option Option, report vercompat.Report) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter(report)
	case TablePresenter:
		return table.NewPresenter(report)
	default:
		return nil
	}
}
