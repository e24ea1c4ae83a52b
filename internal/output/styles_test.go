package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNounContainsInput(t *testing.T) {
	assert.Contains(t, Noun("starter"), "starter")
}

func TestDimContainsInput(t *testing.T) {
	assert.Contains(t, Dim("a minimal service"), "a minimal service")
}

func TestCheckNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Check())
}
