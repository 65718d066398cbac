package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParsedParser(t *testing.T, args ...string) *Parser {
	t.Helper()
	p := New(append([]string{"prog"}, args...))
	require.NoError(t, p.AddOption("-d", "--double", "Double value", 0.2, false))
	require.NoError(t, p.AddOption("-i", "--int", "An integer value", -1, false))
	require.NoError(t, p.AddOption("-u", "--unsigned", "An unsigned value", 1, false))
	require.NoError(t, p.AddOption("-s", "--string", "A string", "hello", false))
	require.NoError(t, p.AddToggle("-v", "--verbose", "Verbose", false))
	require.NoError(t, p.Parse())
	return p
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("typed conversions", func(t *testing.T) {
		t.Parallel()
		p := newParsedParser(t, "--double", "0.00006456", "--int", "-42", "-u", "17", "-s", "there")

		f, err := Get[float64](p, "--double")
		require.NoError(t, err)
		assert.InDelta(t, 0.00006456, f, 1e-9)

		i, err := Get[int](p, "--int")
		require.NoError(t, err)
		assert.Equal(t, -42, i)

		u, err := Get[uint](p, "--unsigned")
		require.NoError(t, err)
		assert.Equal(t, uint(17), u)

		s, err := Get[string](p, "--string")
		require.NoError(t, err)
		assert.Equal(t, "there", s)

		i64, err := Get[int64](p, "--int")
		require.NoError(t, err)
		assert.Equal(t, int64(-42), i64)

		f32, err := Get[float32](p, "--double")
		require.NoError(t, err)
		assert.InDelta(t, 0.00006456, float64(f32), 1e-6)
	})
	t.Run("scannable fallback", func(t *testing.T) {
		t.Parallel()
		p := New([]string{"prog", "-c", "(3+4i)"})
		require.NoError(t, p.AddOption("-c", "--complex", "A complex number", "", false))
		require.NoError(t, p.Parse())

		c, err := Get[complex128](p, "--complex")
		require.NoError(t, err)
		assert.Equal(t, complex(3, 4), c)
	})
	t.Run("toggle reads as bool or string", func(t *testing.T) {
		t.Parallel()
		p := newParsedParser(t, "--verbose")

		b, err := Get[bool](p, "-v")
		require.NoError(t, err)
		assert.True(t, b)

		s, err := Get[string](p, "--verbose")
		require.NoError(t, err)
		assert.Equal(t, "true", s)
	})
	t.Run("strict bool rejects anything but the literals", func(t *testing.T) {
		t.Parallel()
		p := New([]string{"prog", "--bool-val", "not_a_bool"})
		require.NoError(t, p.AddOption("-b", "--bool-val", "A boolean value", "", false))
		require.NoError(t, p.Parse())

		_, err := Get[bool](p, "--bool-val")
		require.ErrorIs(t, err, ErrBadConversion)
		assert.Contains(t, err.Error(), `"not_a_bool"`)

		// Even strconv-accepted spellings are rejected.
		require.NoError(t, p.SetValue("--bool-val", "1"))
		_, err = Get[bool](p, "--bool-val")
		require.ErrorIs(t, err, ErrBadConversion)
	})
	t.Run("bad integer includes the literal", func(t *testing.T) {
		t.Parallel()
		p := New([]string{"prog", "--int-val", "not_an_int"})
		require.NoError(t, p.AddOption("-i", "--int-val", "An integer value", "", false))
		require.NoError(t, p.Parse())

		_, err := Get[int](p, "--int-val")
		require.ErrorIs(t, err, ErrBadConversion)
		assert.Contains(t, err.Error(), `"not_an_int"`)
	})
	t.Run("empty value does not convert to int", func(t *testing.T) {
		t.Parallel()
		p := New([]string{"prog"})
		require.NoError(t, p.AddOption("-n", "--number", "A number", nil, false))
		require.NoError(t, p.Parse())

		_, err := Get[int](p, "--number")
		require.ErrorIs(t, err, ErrBadConversion)
	})
	t.Run("positional list as string slice", func(t *testing.T) {
		t.Parallel()
		p := New([]string{"prog", "a.txt", "b.txt"})
		require.NoError(t, p.AddPositionalList("-f", "--files", "Files", false))
		require.NoError(t, p.Parse())

		files, err := Get[[]string](p, "--files")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.txt"}, files)

		// The returned slice is a copy.
		files[0] = "x.txt"
		again, err := Get[[]string](p, "--files")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.txt"}, again)
	})
	t.Run("positional list rejects scalar retrieval", func(t *testing.T) {
		t.Parallel()
		p := New([]string{"prog", "a.txt"})
		require.NoError(t, p.AddPositionalList("-f", "--files", "Files", false))
		require.NoError(t, p.Parse())

		_, err := Get[string](p, "--files")
		require.ErrorIs(t, err, ErrBadConversion)
	})
	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		p := newParsedParser(t)

		_, err := Get[string](p, "--non-existent")
		require.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "--non-existent")
	})
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	p := newParsedParser(t, "--int", "7")
	assert.Equal(t, 7, MustGet[int](p, "--int"))
	assert.Panics(t, func() { MustGet[int](p, "--nope") })
	assert.Panics(t, func() { MustGet[int](p, "--string") })
}
