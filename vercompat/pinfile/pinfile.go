/*
Package pinfile reads and verifies YAML pin files. The datapipe versioning
policy instructs consumers on the 0.x line to pin exact versions; a pin file
records, per consumer, the version it was built against (declared) and the
version about to be used (actual), so a whole deployment can be checked in one
pass.
*/
package pinfile

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/datapipe-dev/vercompat/internal/log"
	"github.com/datapipe-dev/vercompat/vercompat"
	"github.com/datapipe-dev/vercompat/vercompat/version"
)

// Pin is a single entry of a pin file.
type Pin struct {
	Name     string `yaml:"name"`     // consumer label, shown in reports
	Declared string `yaml:"declared"` // the version the consumer was built against
	Actual   string `yaml:"actual"`   // the version the consumer is about to use
}

// Document is the parsed shape of a pin file.
type Document struct {
	Pins []Pin `yaml:"pins"`
}

// Load reads and decodes the pin file at the given path.
func Load(fs afero.Fs, path string) (Document, error) {
	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return Document{}, fmt.Errorf("unable to read pin file=%q: %w", path, err)
	}

	var doc Document
	if err := yaml.UnmarshalStrict(contents, &doc); err != nil {
		return Document{}, fmt.Errorf("unable to parse pin file=%q: %w", path, err)
	}

	log.Debugf("loaded %d pins from %q", len(doc.Pins), path)

	return doc, nil
}

// Verify evaluates every pin against the compatibility policy. Version parse
// failures across all entries are aggregated into a single error; no partial
// verdict is given for a pin with a malformed version.
func (d Document) Verify() (vercompat.Report, error) {
	var report vercompat.Report
	var errs *multierror.Error

	for idx, pin := range d.Pins {
		declared, declaredErr := version.Parse(pin.Declared)
		if declaredErr != nil {
			errs = multierror.Append(errs, fmt.Errorf("pin %s: declared: %w", pin.label(idx), declaredErr))
		}

		actual, actualErr := version.Parse(pin.Actual)
		if actualErr != nil {
			errs = multierror.Append(errs, fmt.Errorf("pin %s: actual: %w", pin.label(idx), actualErr))
		}

		if declaredErr != nil || actualErr != nil {
			continue
		}

		result := vercompat.Evaluate(declared, actual)
		result.Name = pin.Name
		report = append(report, result)
	}

	return report, errs.ErrorOrNil()
}

func (p Pin) label(idx int) string {
	if p.Name != "" {
		return fmt.Sprintf("%q", p.Name)
	}
	return fmt.Sprintf("#%d", idx)
}
