package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTprintf(t *testing.T) {
	actual := Tprintf("hello {{.name}}", map[string]interface{}{
		"name": "world",
	})
	assert.Equal(t, "hello world", actual)
}
