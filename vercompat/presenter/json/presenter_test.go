package json

import (
	"bytes"
	"flag"
	"testing"

	"github.com/anchore/go-testutils"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datapipe-dev/vercompat/vercompat"
	"github.com/datapipe-dev/vercompat/vercompat/version"
)

var update = flag.Bool("update", false, "update the *.golden files for json presenters")

func TestJSONPresenter(t *testing.T) {
	var buffer bytes.Buffer

	report := vercompat.Report{
		vercompat.Evaluate(version.MustParse("0.3.0"), version.MustParse("0.3.9")),
		vercompat.Evaluate(version.MustParse("1.9.9"), version.MustParse("2.0.0")),
	}
	report[0].Name = "ingest-worker"

	require.NoError(t, NewPresenter(report).Present(&buffer))
	actual := buffer.Bytes()

	if *update {
		testutils.UpdateGoldenFileContents(t, actual)
	}

	var expected = testutils.GetGoldenFileContents(t)

	if !bytes.Equal(expected, actual) {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(expected), string(actual), true)
		t.Errorf("mismatched output:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestDocumentFields(t *testing.T) {
	report := vercompat.Report{
		vercompat.Evaluate(version.MustParse("0.7.0"), version.MustParse("0.6.1")),
	}
	report[0].Name = "legacy-sync"

	doc := newDocument(report)

	assert.Equal(t, "vercompat", doc.Descriptor.Name)
	require.Len(t, doc.Results, 1)
	assert.Equal(t, result{
		Name:            "legacy-sync",
		Declared:        "0.7.0",
		Actual:          "0.6.1",
		Compatible:      false,
		Regime:          "0.x",
		CompatibleRange: ">= 0.7.0, < 0.8.0",
	}, doc.Results[0])
}

func TestPresentEmptyReport(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, NewPresenter(nil).Present(&buffer))

	// results should be an empty list, not null
	assert.Contains(t, buffer.String(), `"results": []`)
}
