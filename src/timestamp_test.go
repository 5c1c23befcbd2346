package main

import (
	"errors"
	"testing"
)

func TestParseApacheDatetime(t *testing.T) {
	input := []byte("10/Oct/2000:13:55:36 -0700]")

	ts, n, err := parseApacheDatetime(input)
	if err != nil {
		t.Fatalf("parseApacheDatetime returned error: %v", err)
	}
	if n != 26 {
		t.Fatalf("expected 26 bytes consumed, got %d", n)
	}
	if ts.day != 10 || ts.mon != 9 || ts.year != 2000 {
		t.Fatalf("unexpected date fields: %+v", ts)
	}
	if ts.hour != 13 || ts.min != 55 || ts.sec != 36 {
		t.Fatalf("unexpected clock fields: %+v", ts)
	}
	if ts.offset != -700 {
		t.Fatalf("unexpected offset: %d", ts.offset)
	}
}

func TestParseApacheDatetimeMonthTable(t *testing.T) {
	ts, _, err := parseApacheDatetime([]byte("01/Jan/2024:00:00:00 +0000"))
	if err != nil {
		t.Fatalf("Jan: %v", err)
	}
	if ts.mon != 0 {
		t.Fatalf("Jan should be month index 0, got %d", ts.mon)
	}

	ts, _, err = parseApacheDatetime([]byte("31/Dec/2024:23:59:59 +0000"))
	if err != nil {
		t.Fatalf("Dec: %v", err)
	}
	if ts.mon != 11 {
		t.Fatalf("Dec should be month index 11, got %d", ts.mon)
	}
}

func TestParseApacheDatetimeMonthIsCaseSensitive(t *testing.T) {
	_, _, err := parseApacheDatetime([]byte("10/oct/2000:13:55:36 -0700"))
	if !errors.Is(err, ErrFailedToParseMonth) {
		t.Fatalf("expected month parse error, got %v", err)
	}
}

func TestParseApacheDatetimeRejectsBadShapes(t *testing.T) {
	bad := []struct {
		name  string
		input string
	}{
		{"one digit day", "1/Oct/2000:13:55:36 -0700"},
		{"two digit year", "10/Oct/00:13:55:36 -0700"},
		{"wrong separator", "10-Oct-2000:13:55:36 -0700"},
		{"missing seconds", "10/Oct/2000:13:55 -0700"},
		{"no space before offset", "10/Oct/2000:13:55:36-0700"},
		{"offset without digits", "10/Oct/2000:13:55:36 +"},
		{"truncated", "10/Oct/2000:13"},
		{"empty", ""},
	}

	for _, tc := range bad {
		_, _, err := parseApacheDatetime([]byte(tc.input))
		if !errors.Is(err, ErrFailedToParseApacheDatetime) {
			t.Fatalf("%s: expected datetime parse error, got %v", tc.name, err)
		}
	}
}

func TestParseApacheDatetimeOffsetWidth(t *testing.T) {
	// The offset is at most five bytes including the sign; anything past
	// that is left for the caller, which then rejects the stray byte as a
	// line format problem.
	ts, n, err := parseApacheDatetime([]byte("10/Oct/2000:13:55:36 +03000"))
	if err != nil {
		t.Fatalf("parseApacheDatetime returned error: %v", err)
	}
	if ts.offset != 300 {
		t.Fatalf("expected offset 300, got %d", ts.offset)
	}
	if n != 26 {
		t.Fatalf("expected 26 bytes consumed, got %d", n)
	}

	// Without a sign the full five bytes are digits.
	ts, _, err = parseApacheDatetime([]byte("10/Oct/2000:13:55:36 00300"))
	if err != nil {
		t.Fatalf("parseApacheDatetime returned error: %v", err)
	}
	if ts.offset != 300 {
		t.Fatalf("expected offset 300, got %d", ts.offset)
	}
}

func TestISORendering(t *testing.T) {
	cases := []struct {
		name string
		in   apacheTime
		want string
	}{
		{
			name: "positive offset",
			in:   apacheTime{day: 10, mon: 9, year: 2023, hour: 13, min: 55, sec: 36, offset: 300},
			want: "2023-10-10T13:55:36+0300",
		},
		{
			name: "negative offset",
			in:   apacheTime{day: 10, mon: 9, year: 2000, hour: 13, min: 55, sec: 36, offset: -700},
			want: "2000-10-10T13:55:36-0700",
		},
		{
			name: "zero offset keeps forced plus",
			in:   apacheTime{day: 1, mon: 0, year: 2024, hour: 0, min: 0, sec: 0, offset: 0},
			want: "2024-01-01T00:00:00+0000",
		},
		{
			name: "short offsets are zero padded",
			in:   apacheTime{day: 2, mon: 1, year: 1999, hour: 3, min: 4, sec: 5, offset: -5},
			want: "1999-02-03T03:04:05-0005",
		},
		{
			name: "small year is zero padded",
			in:   apacheTime{day: 1, mon: 0, year: 99, hour: 1, min: 2, sec: 3, offset: 0},
			want: "0099-01-01T01:02:03+0000",
		},
	}

	for _, tc := range cases {
		got, err := tc.in.iso()
		if err != nil {
			t.Fatalf("%s: iso returned error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
