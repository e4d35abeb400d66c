package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Valid Times", func(t *testing.T) {
		cases := map[string]Minute{
			"00:00": 0,
			"09:00": 540,
			"18:30": 1110,
			"23:59": 1439,
		}
		for in, want := range cases {
			got, err := Parse(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("Invalid Times", func(t *testing.T) {
		for _, in := range []string{
			"",
			"9:00",     // not zero-padded
			"24:00",    // hour out of range
			"12:60",    // minute out of range
			"12:00:00", // seconds not supported
			"6:30 PM",  // 12-hour clock not supported
			"ab:cd",
			" 9:30",
		} {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidTime, in)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		m, err := Parse("07:05")
		require.NoError(t, err)
		assert.Equal(t, "07:05", m.String())
	})
}

func TestOverlap(t *testing.T) {
	mustParse := func(s string) Minute {
		m, err := Parse(s)
		require.NoError(t, err)
		return m
	}

	t.Run("Genuine Overlap", func(t *testing.T) {
		assert.True(t, Overlap(
			mustParse("10:00"), mustParse("12:00"),
			mustParse("11:00"), mustParse("13:00"),
		))
	})

	t.Run("Containment", func(t *testing.T) {
		assert.True(t, Overlap(
			mustParse("09:00"), mustParse("18:00"),
			mustParse("12:00"), mustParse("13:00"),
		))
	})

	t.Run("Touching Ranges Do Not Overlap", func(t *testing.T) {
		assert.False(t, Overlap(
			mustParse("10:00"), mustParse("12:00"),
			mustParse("12:00"), mustParse("14:00"),
		))
	})

	t.Run("Disjoint Ranges", func(t *testing.T) {
		assert.False(t, Overlap(
			mustParse("08:00"), mustParse("09:00"),
			mustParse("15:00"), mustParse("16:00"),
		))
	})
}
