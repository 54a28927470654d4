package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		input    string
		expected Option
	}{
		{input: "json", expected: JSONPresenter},
		{input: "JSON", expected: JSONPresenter},
		{input: "table", expected: TablePresenter},
		{input: "Table", expected: TablePresenter},
		{input: "", expected: UnknownPresenter},
		{input: "yaml", expected: UnknownPresenter},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseOption(test.input))
		})
	}
}

func TestGetPresenter(t *testing.T) {
	assert.NotNil(t, GetPresenter(JSONPresenter, nil))
	assert.NotNil(t, GetPresenter(TablePresenter, nil))
	assert.Nil(t, GetPresenter(UnknownPresenter, nil))
}
