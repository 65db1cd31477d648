package preprocess

import "github.com/pkg/errors"

var (
	// ErrBufferOverflow is returned when more bytes are written than the
	// pixel buffer holds.
	ErrBufferOverflow = errors.New("pixel buffer overflow")

	// ErrImageDecode is returned when the source image can't be read or
	// decoded.
	ErrImageDecode = errors.New("image decode failure")

	// ErrInvalidGeometry is returned for non-positive sizes or an
	// unsupported channel count.
	ErrInvalidGeometry = errors.New("invalid geometry")
)
