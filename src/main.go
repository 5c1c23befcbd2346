package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds one input line, trailing newline included. A line that
// does not fit is rejected rather than split.
const maxLineSize = 4096

// header names the nine output columns, in input order.
const header = "host\tidentity\tuser\ttime\trequest\tstatus\tbytes\treferrer\tagent\n"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// run converts Apache common/combined log lines from r into tab-separated
// records on w. The first failure aborts the whole run; there is no per-line
// recovery. A malformed log points at a broken producer and should not be
// papered over.
func run(args []string, r io.Reader, w io.Writer) error {
	if len(args) > 0 {
		return ErrTooManyArgs
	}

	out := bufio.NewWriter(w)
	out.WriteString(header)
	if err := out.Flush(); err != nil {
		return err
	}

	in := bufio.NewReaderSize(r, maxLineSize)
	for {
		line, err := in.ReadSlice('\n')
		if err != nil {
			switch {
			case errors.Is(err, bufio.ErrBufferFull):
				return ErrLineIsTooLong
			case errors.Is(err, io.EOF) && len(line) > 0:
				// A final line without a newline never satisfies the
				// line contract.
				return ErrLineIsTooLong
			case errors.Is(err, io.EOF):
				return out.Flush()
			default:
				return ErrInputReadError
			}
		}

		if err := ConvertLine(line, out); err != nil {
			return err
		}
		// Flush per record so a consumer on a pipe sees output line by line.
		if err := out.Flush(); err != nil {
			return err
		}
	}
}
