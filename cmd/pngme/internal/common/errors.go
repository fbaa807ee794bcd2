package common

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/pngme/cmd/internal/cmderr"
	"github.com/nspcc-dev/pngme/pkg/message"
	"github.com/nspcc-dev/pngme/pkg/png"
)

// Errf returns error formatted according to errFmt with args (see
// fmt.Errorf). Errors wrapping malformed data ones are marked with
// cmderr.CodeMalformed and missing chunks with cmderr.CodeNotFound exit codes.
func Errf(errFmt string, args ...any) error {
	err := fmt.Errorf(errFmt, args...)

	switch {
	case errors.Is(err, png.ErrChunkNotFound):
		return cmderr.ExitErr{Code: cmderr.CodeNotFound, Cause: err}
	case errors.Is(err, png.ErrBadSignature),
		errors.Is(err, png.ErrTruncated),
		errors.Is(err, png.ErrCRCMismatch),
		errors.Is(err, png.ErrInvalidChunkType),
		errors.Is(err, png.ErrInvalidUTF8),
		errors.Is(err, message.ErrMessageTooLarge):
		return cmderr.ExitErr{Code: cmderr.CodeMalformed, Cause: err}
	default:
		return err
	}
}
