package main

import "errors"

// Every failure is fatal to the whole run. Each kind is a sentinel whose
// message is the stable code string, so the top-level handler can print it
// verbatim after "Error: ".
var (
	ErrTooManyArgs                 = errors.New("ERR_TOO_MANY_ARGS")
	ErrLineIsTooLong               = errors.New("ERR_LINE_IS_TOO_LONG")
	ErrWrongLineFormat             = errors.New("ERR_WRONG_LINE_FORMAT")
	ErrInputReadError              = errors.New("ERR_INPUT_READ_ERROR")
	ErrWrongTimeFormat             = errors.New("ERR_WRONG_TIME_FORMAT")
	ErrTimeBufferSizeExceeded      = errors.New("ERR_TIME_BUFFER_SIZE_EXCEEDED")
	ErrFailedToParseMonth          = errors.New("ERR_FAILED_TO_PARSE_MONTH")
	ErrFailedToParseApacheDatetime = errors.New("ERR_FAILED_TO_PARSE_APACHE_DATETIME")
)
