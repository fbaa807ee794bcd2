package cmderr

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes of the pngme commands.
const (
	// CodeInternal is returned on I/O, configuration and other failures
	// not related to the processed file contents.
	CodeInternal = 1
	// CodeMalformed is returned when the processed file is not a
	// well-formed PNG or a chunk can not be processed as requested.
	CodeMalformed = 2
	// CodeNotFound is returned when requested chunk is missing.
	CodeNotFound = 3
)

// ExitErr specific error for ExitOnErr function that passes the exit code and error caused.
type ExitErr struct {
	Code  int
	Cause error
}

func (x ExitErr) Error() string { return x.Cause.Error() }

func (x ExitErr) Unwrap() error { return x.Cause }

// Code returns exit code for err: ExitErr.Code if err is or wraps ExitErr,
// CodeInternal otherwise. Returns 0 for nil.
func Code(err error) int {
	if err == nil {
		return 0
	}

	var e ExitErr
	if errors.As(err, &e) {
		return e.Code
	}

	return CodeInternal
}

// ExitOnErr writes error to os.Stderr and calls os.Exit with passed exit code or by default 1.
// Does nothing if err is nil.
func ExitOnErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(Code(err))
	}
}
