package main

import "fmt"

// Apache month abbreviations; the index is the zero-based month number.
// Matching is case-sensitive, so "jan" is not a month.
var months = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// timeBufSize is the render budget for the calendar part of a timestamp.
const timeBufSize = 32

// apacheTime holds the fields scanned from a bracketed Apache datetime,
// e.g. 10/Oct/2000:13:55:36 -0700 (without the brackets).
type apacheTime struct {
	day  int
	mon  int // 0..11
	year int
	hour int
	min  int
	sec  int

	// offset is the zone offset exactly as scanned, in signed HHMM form:
	// "+0300" is 300, "-0500" is -500. It is carried through to the output
	// unchanged and never applied to the clock fields.
	offset int
}

// parseApacheDatetime scans the datetime expression at the start of s and
// returns the parsed value and the number of bytes consumed. The caller is
// responsible for the enclosing brackets.
//
// The grammar is fixed-width: 2-digit day, '/', 3-letter month, '/', 4-digit
// year, ':', 2-digit hour, ':', 2-digit minute, ':', 2-digit second, one or
// more spaces, then a zone offset of at most 5 bytes (optional sign plus
// digits).
func parseApacheDatetime(s []byte) (apacheTime, int, error) {
	var (
		t  apacheTime
		p  int
		ok bool
	)

	if t.day, p, ok = scanDigits(s, p, 2); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	if p, ok = expectByte(s, p, '/'); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	var err error
	if t.mon, p, err = scanMonth(s, p); err != nil {
		return apacheTime{}, 0, err
	}
	if p, ok = expectByte(s, p, '/'); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	if t.year, p, ok = scanDigits(s, p, 4); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	if p, ok = expectByte(s, p, ':'); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	if t.hour, p, ok = scanDigits(s, p, 2); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	if p, ok = expectByte(s, p, ':'); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	if t.min, p, ok = scanDigits(s, p, 2); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	if p, ok = expectByte(s, p, ':'); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	if t.sec, p, ok = scanDigits(s, p, 2); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}

	// At least one space before the zone offset.
	q := p
	for q < len(s) && s[q] == ' ' {
		q++
	}
	if q == p {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}
	p = q

	if t.offset, p, ok = scanOffset(s, p); !ok {
		return apacheTime{}, 0, ErrFailedToParseApacheDatetime
	}

	return t, p, nil
}

// iso renders the timestamp as yyyy-mm-ddTHH:MM:SS±HHMM. This is pure
// formatting of the scanned fields: no calendar normalization and no zone
// conversion. The offset sign is always explicit and its digits are
// zero-padded to width 4.
func (t apacheTime) iso() (string, error) {
	stamp := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		t.year, t.mon+1, t.day, t.hour, t.min, t.sec)
	if len(stamp) >= timeBufSize {
		return "", ErrTimeBufferSizeExceeded
	}
	if t.offset >= 0 {
		return stamp + fmt.Sprintf("+%04d", t.offset), nil
	}
	return stamp + fmt.Sprintf("%05d", t.offset), nil
}

// scanDigits reads exactly n ASCII digits at s[p:].
func scanDigits(s []byte, p, n int) (int, int, bool) {
	if p+n > len(s) {
		return 0, p, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[p+i]
		if c < '0' || c > '9' {
			return 0, p, false
		}
		v = v*10 + int(c-'0')
	}
	return v, p + n, true
}

// scanMonth reads a 3-byte month abbreviation at s[p:] and returns its
// zero-based index. A well-formed 3-byte token that is not a month is a
// distinct failure from running out of input.
func scanMonth(s []byte, p int) (int, int, error) {
	if p+3 > len(s) {
		return 0, p, ErrFailedToParseApacheDatetime
	}
	m := string(s[p : p+3])
	for i, name := range months {
		if name == m {
			return i, p + 3, nil
		}
	}
	return 0, p, ErrFailedToParseMonth
}

// scanOffset reads a zone offset at s[p:]: an optional sign then digits,
// at most 5 bytes in total, at least one digit.
func scanOffset(s []byte, p int) (int, int, bool) {
	width := 5
	neg := false
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		neg = s[p] == '-'
		p++
		width--
	}
	v := 0
	n := 0
	for n < width && p < len(s) && s[p] >= '0' && s[p] <= '9' {
		v = v*10 + int(s[p]-'0')
		p++
		n++
	}
	if n == 0 {
		return 0, p, false
	}
	if neg {
		v = -v
	}
	return v, p, true
}

func expectByte(s []byte, p int, c byte) (int, bool) {
	if p >= len(s) || s[p] != c {
		return p, false
	}
	return p + 1, true
}
