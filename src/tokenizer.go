package main

import "bufio"

// fieldScanner walks one log line left to right, copying recognized token
// bytes straight to the output writer. The cursor only moves forward; write
// errors are latched inside the bufio.Writer and surface when the caller
// flushes.
type fieldScanner struct {
	line []byte
	pos  int
	out  *bufio.Writer
}

// ConvertLine parses one Apache common/combined log line and writes the
// corresponding nine tab-separated fields to out. The line must include its
// trailing newline. A blank line (newline only) passes through as a blank
// output line.
func ConvertLine(line []byte, out *bufio.Writer) error {
	if len(line) == 0 || line[0] == '\n' {
		out.WriteByte('\n')
		return nil
	}

	s := &fieldScanner{line: line, out: out}

	// Common Log Format fields.

	s.nonSpaces() // (%h) host
	s.delim()
	s.nonSpaces() // (%l) identity
	s.delim()
	s.nonSpaces() // (%u) user
	s.delim()
	if err := s.timestamp(); err != nil { // (%t) time
		return err
	}
	s.delim()
	if err := s.enclosed('"'); err != nil { // ("%r") request line
		return err
	}
	s.delim()
	s.nonSpaces() // (%s) status code
	s.delim()
	s.nonSpaces() // (%b) bytes sent
	s.delim()

	// Additional fields in the Combined Log Format.

	if err := s.enclosed('"'); err != nil { // ("%{Referrer}i") referrer
		return err
	}
	s.delim()
	if err := s.enclosed('"'); err != nil { // ("%{User-agent}i") user agent
		return err
	}

	// Nothing may follow the last field but the line terminator.
	if s.pos >= len(s.line) || s.line[s.pos] != '\n' {
		return ErrWrongLineFormat
	}
	out.WriteByte('\n')
	return nil
}

// nonSpaces copies a maximal run of non-whitespace bytes to the output.
// The run may be empty.
func (s *fieldScanner) nonSpaces() {
	for s.pos < len(s.line) && !isSpace(s.line[s.pos]) {
		s.out.WriteByte(s.line[s.pos])
		s.pos++
	}
}

// delim skips any whitespace run between two fields and emits the single
// tab separating them in the output.
func (s *fieldScanner) delim() {
	for s.pos < len(s.line) && isSpace(s.line[s.pos]) {
		s.pos++
	}
	s.out.WriteByte('\t')
}

// enclosed copies the bytes between a pair of quote delimiters. There is no
// escape handling: the first closing quote ends the token. A missing opening
// or closing quote rejects the line.
func (s *fieldScanner) enclosed(quote byte) error {
	if s.pos >= len(s.line) || s.line[s.pos] != quote {
		return ErrWrongLineFormat
	}
	s.pos++
	for s.pos < len(s.line) && s.line[s.pos] != quote {
		s.out.WriteByte(s.line[s.pos])
		s.pos++
	}
	if s.pos >= len(s.line) {
		return ErrWrongLineFormat
	}
	s.pos++
	return nil
}

// timestamp consumes "[" datetime "]" and emits the normalized ISO form.
// The brackets belong to the tokenizer; the datetime between them belongs
// to parseApacheDatetime.
func (s *fieldScanner) timestamp() error {
	if s.pos >= len(s.line) || s.line[s.pos] != '[' {
		return ErrWrongLineFormat
	}
	s.pos++

	t, n, err := parseApacheDatetime(s.line[s.pos:])
	if err != nil {
		return err
	}
	s.pos += n

	if s.pos >= len(s.line) || s.line[s.pos] != ']' {
		return ErrWrongLineFormat
	}
	s.pos++

	iso, err := t.iso()
	if err != nil {
		return err
	}
	s.out.WriteString(iso)
	return nil
}

// isSpace reports whether c is in the classic isspace set. Note that the
// line terminator itself counts as whitespace, so a truncated line simply
// runs the cursor to the end of the buffer.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
