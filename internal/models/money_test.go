package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12.34", 1234},
		{"12,34", 1234},
		{"0", 0},
		{"0.00", 0},
		{"5", 500},
		{"5.5", 550},
		{"5.", 500},
		{".75", 75},
		{" 10.00 ", 1000},
		{"12.344", 1234},
		{"12.345", 1235},
		{"99999.99", 9999999},
		{"92233720368547757.99", 9223372036854775799},
	}

	for _, tc := range cases {
		got, err := ParseAmountCents(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseAmountCentsRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"-1",
		"-0.50",
		"+5",
		"abc",
		"1.2.3",
		"12.3x",
		"1e3",
		"12 34",
		// converting to cents must never wrap around int64
		"92233720368547758",
		"92233720368547758.99",
		"99999999999999999999",
	} {
		_, err := ParseAmountCents(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestParseAmountCentsNeverNegative(t *testing.T) {
	// Amounts at the int64 boundary must be rejected, never wrapped into a
	// negative cents value.
	for _, in := range []string{
		"92233720368547757.99",
		"92233720368547758.07",
		"92233720368547758.99",
	} {
		got, err := ParseAmountCents(in)
		if err == nil {
			assert.GreaterOrEqual(t, got, int64(0), "input %q", in)
		}
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "1.50", FormatCents(150))
	assert.Equal(t, "15.50", FormatCents(1550))
	assert.Equal(t, "1234.00", FormatCents(123400))
}
