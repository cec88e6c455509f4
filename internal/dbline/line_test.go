package dbline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("some text")
	require.NoError(t, err)
	assert.Equal(t, "some text", l.Text())
	assert.Equal(t, "some text", l.String())
}

func TestNewEmpty(t *testing.T) {
	l, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "", l.Text())
}

func TestNewRejectsEmbeddedNewline(t *testing.T) {
	_, err := New("first\nsecond")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed line")
}

func TestNewRejectsEmbeddedCarriageReturn(t *testing.T) {
	_, err := New("first\rsecond")
	require.Error(t, err)
}

func TestMustNewPanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() {
		MustNew("a\nb")
	})
}

func TestMustNewOK(t *testing.T) {
	assert.Equal(t, "ok", MustNew("ok").Text())
}
