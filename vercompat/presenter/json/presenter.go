package json

import (
	"encoding/json"
	"io"

	"github.com/datapipe-dev/vercompat/internal"
	"github.com/datapipe-dev/vercompat/internal/version"
	"github.com/datapipe-dev/vercompat/vercompat"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	report vercompat.Report
}

// NewPresenter creates a new JSON presenter
func NewPresenter(report vercompat.Report) *Presenter {
	return &Presenter{
		report: report,
	}
}

// Present creates a JSON-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	doc := newDocument(pres.report)

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}

type document struct {
	Descriptor descriptor `json:"descriptor"`
	Results    []result   `json:"results"`
}

// descriptor describes what created the document
type descriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type result struct {
	Name            string `json:"name,omitempty"`
	Declared        string `json:"declared"`
	Actual          string `json:"actual"`
	Compatible      bool   `json:"compatible"`
	Regime          string `json:"regime"`
	CompatibleRange string `json:"compatibleRange"`
}

func newDocument(report vercompat.Report) document {
	// keep the results field as an empty list (not null) for an empty report
	results := make([]result, 0, len(report))
	for _, r := range report {
		results = append(results, result{
			Name:            r.Name,
			Declared:        r.Declared.String(),
			Actual:          r.Actual.String(),
			Compatible:      r.Compatible,
			Regime:          r.Regime.String(),
			CompatibleRange: r.CompatibleRange,
		})
	}

	return document{
		Descriptor: descriptor{
			Name:    internal.ApplicationName,
			Version: version.FromBuild().Version,
		},
		Results: results,
	}
}
