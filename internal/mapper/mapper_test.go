package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2-coder/dvmm/internal/domain"
)

// atoi is a small mapper used to exercise the combinators.
var atoi = Funcs[string, int]{
	Forward: func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, domain.ShapeMismatch("test.atoi", "", err)
		}
		return n, nil
	},
	Inverse: func(n int) (string, error) { return strconv.Itoa(n), nil },
}

var double = Funcs[int, int]{
	Forward: func(n int) (int, error) { return n * 2, nil },
	Inverse: func(n int) (int, error) {
		if n%2 != 0 {
			return 0, domain.FormatMismatch("test.double", "", errors.New("odd"))
		}
		return n / 2, nil
	},
}

func TestSlice_PreservesOrderAndLength(t *testing.T) {
	in := []string{"3", "1", "2"}
	out, err := Slice[string, int](atoi, in)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		want, err := atoi.ToViewModel(in[i])
		require.NoError(t, err)
		assert.Equal(t, want, out[i], "element %d", i)
	}

	back, err := SliceInverse[string, int](atoi, out)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestSlice_NilAndEmpty(t *testing.T) {
	out, err := Slice[string, int](atoi, nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = Slice[string, int](atoi, []string{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	back, err := SliceInverse[string, int](atoi, nil)
	require.NoError(t, err)
	assert.Nil(t, back)
}

func TestSlice_ErrorCarriesIndex(t *testing.T) {
	_, err := Slice[string, int](atoi, []string{"1", "x"})
	require.Error(t, err)

	var oe *domain.OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "[1]", oe.Path)
	assert.Equal(t, "items[1]", WithField("items", err).(*domain.OpError).Path)
}

func TestOptional(t *testing.T) {
	got, err := Optional[string, int](atoi, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := "7"
	got, err = Optional[string, int](atoi, &s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 7, *got)

	back, err := OptionalInverse[string, int](atoi, got)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, "7", *back)

	back, err = OptionalInverse[string, int](atoi, nil)
	require.NoError(t, err)
	assert.Nil(t, back)
}

func TestInvertAndCompose(t *testing.T) {
	inv := Invert[string, int](atoi)
	s, err := inv.ToViewModel(12)
	require.NoError(t, err)
	assert.Equal(t, "12", s)

	both := Compose[string, int, int](atoi, double)
	n, err := both.ToViewModel("21")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	back, err := both.ToDomainModel(42)
	require.NoError(t, err)
	assert.Equal(t, "21", back)

	_, err = both.ToDomainModel(41)
	assert.True(t, domain.IsKind(err, domain.KindFormatMismatch))

	_, err = both.ToViewModel("x")
	assert.True(t, domain.IsKind(err, domain.KindShapeMismatch))
}

func TestRoundTripHelpers(t *testing.T) {
	d, err := RoundTripDomain[string, int](atoi, "99")
	require.NoError(t, err)
	assert.Equal(t, "99", d)

	v, err := RoundTripView[string, int](atoi, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = RoundTripDomain[string, int](atoi, "nope")
	assert.Error(t, err)
}

func TestWithField(t *testing.T) {
	assert.NoError(t, WithField("x", nil))

	plain := WithField("author", errors.New("boom"))
	assert.EqualError(t, plain, "author: boom")

	nested := WithField("author", domain.ShapeMismatch("op", "created_at", errors.New("bad")))
	var oe *domain.OpError
	require.ErrorAs(t, nested, &oe)
	assert.Equal(t, "author.created_at", oe.Path)

	root := WithField("attachment", domain.ShapeMismatch("op", "", errors.New("bad")))
	require.ErrorAs(t, root, &oe)
	assert.Equal(t, "attachment", oe.Path)

	wrapped := WithField("roles", fmt.Errorf("role r7 rejected by policy: %w", domain.ShapeMismatch("op", "name", errors.New("bad"))))
	assert.EqualError(t, wrapped, "roles: role r7 rejected by policy: op: shape_mismatch (path=name): bad")
	assert.ErrorIs(t, wrapped, domain.ErrShapeMismatch)
}
