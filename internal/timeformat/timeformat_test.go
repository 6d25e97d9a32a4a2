package timeformat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		v, err := ToDecimal("09:20")
		require.NoError(t, err)
		require.Equal(t, 9.333, v)

		v, err = ToDecimal("08:30")
		require.NoError(t, err)
		require.Equal(t, 8.5, v)

		v, err = ToDecimal("00:00")
		require.NoError(t, err)
		require.Equal(t, 0.0, v)

		v, err = ToDecimal("23:59")
		require.NoError(t, err)
		require.Equal(t, 23.983, v)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "8", "24:00", "12:60", "ab:cd", "-1:30", "1:2:3"} {
			_, err := ToDecimal(s)
			require.ErrorIs(t, err, ErrInvalidFormat, s)
		}
	})
}

func TestToHHMM(t *testing.T) {
	require.Equal(t, "09:20", ToHHMM(9.333))
	require.Equal(t, "08:30", ToHHMM(8.5))
	require.Equal(t, "00:00", ToHHMM(0))
	require.Equal(t, "-", ToHHMM(-1))
	require.Equal(t, "-", ToHHMM(math.NaN()))
	// minute rounding carries into the next hour
	require.Equal(t, "10:00", ToHHMM(9.9999))
}

func TestRoundTripWithinOneMinute(t *testing.T) {
	for x := 0.0; x < 24; x += 0.173 {
		s := ToHHMM(x)
		back, err := ToDecimal(s)
		if err != nil {
			// 23.99x rounds up to 24:00 which is outside the parse range
			require.Equal(t, "24:00", s)
			continue
		}
		require.InDelta(t, x, back, 1.0/60, "x=%v s=%s", x, s)
	}
}

func TestIsValid(t *testing.T) {
	require.True(t, IsValid("08:30"))
	require.True(t, IsValid("8:30"))
	require.True(t, IsValid("23:59"))
	require.False(t, IsValid("24:00"))
	require.False(t, IsValid("12:60"))
	require.False(t, IsValid(""))
	require.False(t, IsValid("0830"))
}

func TestFormatDifference(t *testing.T) {
	require.Equal(t, "01:30", FormatDifference(1.5))
	require.Equal(t, "-01:30", FormatDifference(-1.5))
	require.Equal(t, "00:00", FormatDifference(0))
	require.Equal(t, "-02:00", FormatDifference(-1.9999))
}
