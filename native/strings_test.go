package native

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkinit"
)

func TestSafeString(t *testing.T) {
	assert.Equal(t, "\x00", safeString(""))
	assert.Equal(t, "VK_EXT_debug_utils\x00", safeString("VK_EXT_debug_utils"))
	assert.Equal(t, "already\x00", safeString("already\x00"))
}

func TestSafeStringsCopies(t *testing.T) {
	in := []string{"a", "b"}
	out := safeStrings(in)

	assert.Equal(t, []string{"a\x00", "b\x00"}, out)
	assert.Equal(t, []string{"a", "b"}, in)
	assert.Nil(t, safeStrings(nil))
}

func TestLoadWithNilProcAddr(t *testing.T) {
	d, err := LoadWith(nil)

	assert.Nil(t, d)
	var loadErr *vkinit.DriverLoadError
	require.True(t, errors.As(err, &loadErr))
}
