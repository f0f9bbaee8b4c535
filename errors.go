package vvc

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/deepteams/vvc/internal/residual"
)

var (
	ErrBitstreamExhausted  = errors.New("vvc: bitstream exhausted")
	ErrInvalidBlockSize    = errors.New("vvc: invalid transform block size")
	ErrInvalidLastPosition = errors.New("vvc: last significant position outside coded area")
	ErrBufferTooSmall      = errors.New("vvc: coefficient buffer too small")
	ErrInvalidConfig       = errors.New("vvc: invalid slice configuration")
)

// translate maps an internal residual error to the public sentinel, keeping
// the detail message.
func translate(err error) error {
	if err == nil {
		return nil
	}
	cause := errors.Cause(err)
	var public error
	switch cause {
	case residual.ErrInvalidBlockSize:
		public = ErrInvalidBlockSize
	case residual.ErrInvalidLastPosition:
		public = ErrInvalidLastPosition
	case residual.ErrBufferTooSmall:
		public = ErrBufferTooSmall
	default:
		return err
	}
	detail := strings.TrimSuffix(err.Error(), ": "+cause.Error())
	if detail == cause.Error() {
		return public
	}
	return errors.Wrap(public, detail)
}
