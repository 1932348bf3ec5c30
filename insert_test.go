package strbuild

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertString(t *testing.T) {
	t.Run("matches a reference splice at every valid index", func(t *testing.T) {
		const base = "abcdef"
		const ins = "XY"

		for index := 0; index <= len(base); index++ {
			t.Run(fmt.Sprintf("index %d", index), func(t *testing.T) {
				b, err := New(Config{InitialCapacity: 4})
				require.NoError(t, err)

				require.NoError(t, b.AppendString(base))
				require.NoError(t, b.InsertString(index, ins))

				want := base[:index] + ins + base[index:]
				s, err := b.StringAndDispose(false)
				require.NoError(t, err)
				assert.Equal(t, want, s)
			})
		}
	})

	t.Run("builds ABC from two inserts", func(t *testing.T) {
		b, err := New(Config{})
		require.NoError(t, err)

		require.NoError(t, b.InsertByte(0, 'A'))
		require.NoError(t, b.InsertString(1, "BC"))

		s, err := b.StringAndDispose(false)
		require.NoError(t, err)
		assert.Equal(t, "ABC", s)
	})

	t.Run("empty string is a no-op", func(t *testing.T) {
		b, err := New(Config{})
		require.NoError(t, err)
		defer b.Dispose()

		require.NoError(t, b.AppendString("abc"))
		require.NoError(t, b.InsertString(1, ""))
		assert.Equal(t, 3, b.Len())
	})

	t.Run("insert that forces growth preserves both halves", func(t *testing.T) {
		b, err := New(Config{InitialCapacity: 8})
		require.NoError(t, err)

		require.NoError(t, b.AppendString("headtail"))

		mid := make([]byte, 500)
		for i := range mid {
			mid[i] = 'm'
		}
		require.NoError(t, b.InsertBytes(4, mid))

		s, err := b.StringAndDispose(false)
		require.NoError(t, err)
		require.Len(t, s, 508)
		assert.Equal(t, "head", s[:4])
		assert.Equal(t, "tail", s[504:])
		assert.Equal(t, string(mid), s[4:504])
	})
}

func TestInsertOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative index", -1},
		{"index past length", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(Config{})
			require.NoError(t, err)
			defer b.Dispose()

			require.NoError(t, b.AppendString("abc"))

			assert.ErrorIs(t, b.InsertString(tt.index, "x"), ErrOutOfRange)
			assert.ErrorIs(t, b.InsertByte(tt.index, 'x'), ErrOutOfRange)
			assert.ErrorIs(t, b.InsertBytes(tt.index, []byte("x")), ErrOutOfRange)

			// No partial mutation on a rejected insert.
			s, err := b.String()
			require.NoError(t, err)
			assert.Equal(t, "abc", s)
		})
	}
}

func TestInsertOverlappingShift(t *testing.T) {
	// A long tail shifted by a short distance makes the source and
	// destination regions overlap heavily.
	b, err := New(Config{InitialCapacity: 64})
	require.NoError(t, err)

	require.NoError(t, b.AppendString("0123456789012345678901234567890123456789"))
	require.NoError(t, b.InsertByte(1, '!'))

	s, err := b.StringAndDispose(false)
	require.NoError(t, err)
	assert.Equal(t, "0!123456789012345678901234567890123456789", s)
}
