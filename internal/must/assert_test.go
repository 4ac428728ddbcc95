package must

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "never") })
	assert.PanicsWithValue(t, "rate must be positive", func() { Assert(false, "rate must be positive") })
}
