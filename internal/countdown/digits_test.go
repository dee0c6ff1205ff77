package countdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDigitKeepsFourCharacters(t *testing.T) {
	d := ZeroDigits
	for _, c := range "1234567890987" {
		d = d.PushDigit(c)
		require.Len(t, d.String(), 4)
	}
	assert.Equal(t, Digits("0987"), d)
}

func TestPushDigitIgnoresNonDigits(t *testing.T) {
	d := Digits("1234")
	assert.Equal(t, d, d.PushDigit('x'))
	assert.Equal(t, d, d.PushDigit(':'))
}

func TestBackspace(t *testing.T) {
	assert.Equal(t, Digits("0123"), Digits("1234").Backspace())
	assert.Equal(t, ZeroDigits, Digits("0001").Backspace())
}

func TestMinuteAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   Digits
		inc  Digits
		dec  Digits
	}{
		{name: "zero", in: "0000", inc: "0100", dec: "0000"},
		{name: "keeps seconds", in: "0545", inc: "0645", dec: "0445"},
		{name: "literal seconds", in: "0195", inc: "0295", dec: "0095"},
		{name: "overflow truncates", in: "9930", inc: "0030", dec: "9830"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inc, tt.in.IncrementMinutes())
			assert.Equal(t, tt.dec, tt.in.DecrementMinutes())
		})
	}
}

func TestDecrementFloorsAtZero(t *testing.T) {
	d := Digits("0042")
	for i := 0; i < 3; i++ {
		d = d.DecrementMinutes()
	}
	assert.Equal(t, 0, d.Minutes())
	assert.Equal(t, 42, d.Seconds())
}

func TestDisplayAndTotals(t *testing.T) {
	d := Digits("0195")
	assert.Equal(t, "01:95", d.Display())
	assert.Equal(t, 155, d.TotalSeconds())
	assert.Equal(t, "00:00", Digits("").Display())
}

func TestFromSeconds(t *testing.T) {
	assert.Equal(t, Digits("0235"), FromSeconds(155))
	assert.Equal(t, Digits("0002"), FromSeconds(2))
	assert.Equal(t, Digits("9959"), FromSeconds(99*60+59))
	// 100:39 does not fit the field
	assert.Equal(t, Digits("0039"), FromSeconds(100*60+39))
	assert.Equal(t, ZeroDigits, FromSeconds(-5))
}

func TestParseDigits(t *testing.T) {
	d, err := ParseDigits("0130")
	require.NoError(t, err)
	assert.Equal(t, 90, d.TotalSeconds())

	for _, bad := range []string{"", "130", "01:30", "01a0", "12345"} {
		_, err := ParseDigits(bad)
		assert.Error(t, err, bad)
	}
}
