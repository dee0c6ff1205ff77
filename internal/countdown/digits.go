package countdown

import (
	"fmt"
	"strconv"
)

// Digits is the fixed-width MMSS duration buffer edited before an analysis starts.
// Minutes occupy the first two characters and seconds the last two; both are read
// literally, so "0195" means 1 minute and 95 seconds.
type Digits string

// ZeroDigits is the initial buffer value.
const ZeroDigits Digits = "0000"

// ParseDigits accepts exactly four ASCII digits.
func ParseDigits(s string) (Digits, error) {
	if len(s) != 4 {
		return ZeroDigits, fmt.Errorf("duration %q: want 4 digits (MMSS)", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ZeroDigits, fmt.Errorf("duration %q: non-digit at position %d", s, i)
		}
	}
	return Digits(s), nil
}

// FromSeconds encodes n seconds canonically as MMSS. Minutes of 100 or more do
// not fit the field and are truncated to the last four characters, the same way
// IncrementMinutes overflows.
func FromSeconds(n int) Digits {
	if n < 0 {
		n = 0
	}
	return fit(pad2(n/60) + pad2(n%60))
}

func (d Digits) String() string { return string(d) }

// Display renders the buffer as MM:SS.
func (d Digits) Display() string {
	s := string(d.normalize())
	return s[:2] + ":" + s[2:]
}

func (d Digits) Minutes() int { return atoi(string(d.normalize())[:2]) }

func (d Digits) Seconds() int { return atoi(string(d.normalize())[2:]) }

// TotalSeconds is minutes*60 + seconds with no rollover applied to seconds.
func (d Digits) TotalSeconds() int { return d.Minutes()*60 + d.Seconds() }

// PushDigit shifts the buffer left and appends c. Anything but '0'..'9' is ignored.
func (d Digits) PushDigit(c rune) Digits {
	if c < '0' || c > '9' {
		return d
	}
	s := string(d.normalize())
	return Digits(s[1:] + string(c))
}

// Backspace shifts the buffer right, prepending a zero.
func (d Digits) Backspace() Digits {
	s := string(d.normalize())
	return Digits("0" + s[:3])
}

func (d Digits) IncrementMinutes() Digits {
	s := string(d.normalize())
	return fit(pad2(d.Minutes()+1) + s[2:])
}

// DecrementMinutes lowers the minutes field, floored at zero.
func (d Digits) DecrementMinutes() Digits {
	s := string(d.normalize())
	m := d.Minutes() - 1
	if m < 0 {
		m = 0
	}
	return fit(pad2(m) + s[2:])
}

// normalize guards against a zero-value or hand-built buffer; anything that is not
// four digits reads as ZeroDigits.
func (d Digits) normalize() Digits {
	if _, err := ParseDigits(string(d)); err != nil {
		return ZeroDigits
	}
	return d
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func fit(s string) Digits {
	if len(s) > 4 {
		s = s[len(s)-4:]
	}
	return Digits(s)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
