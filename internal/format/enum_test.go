package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2-coder/dvmm/internal/domain"
)

type color string
type label string

func TestEnum(t *testing.T) {
	e := NewEnum("color", map[color]label{"r": "red", "g": "green"})

	v, err := e.ToView("color", "r")
	require.NoError(t, err)
	assert.Equal(t, label("red"), v)

	d, err := e.ToDomain("color", "green")
	require.NoError(t, err)
	assert.Equal(t, color("g"), d)

	assert.Equal(t, []color{"g", "r"}, e.Tags())
}

func TestEnum_Unknown(t *testing.T) {
	e := NewEnum("color", map[color]label{"r": "red"})

	_, err := e.ToView("color", "b")
	assert.True(t, domain.IsKind(err, domain.KindShapeMismatch))

	_, err = e.ToDomain("color", "blue")
	assert.True(t, domain.IsKind(err, domain.KindFormatMismatch))
}

func TestNewEnum_PanicsOnDuplicateLabel(t *testing.T) {
	assert.Panics(t, func() {
		NewEnum("color", map[color]label{"r": "red", "R": "red"})
	})
}
