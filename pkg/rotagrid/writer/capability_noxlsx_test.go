//go:build noxlsx

package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCapability(t *testing.T) {
	c := DetectCapability()
	assert.False(t, c.Available())

	factory, ok := c.Factory()
	assert.False(t, ok)
	assert.Nil(t, factory)
}
