package raster

import "errors"

var (
	// ErrInvalidHandle is returned when a draw call names a buffer handle
	// that was never loaded.
	ErrInvalidHandle = errors.New("invalid buffer handle")

	// ErrIndexOutOfRange is returned when an index triple points past the
	// end of the position or color buffer.
	ErrIndexOutOfRange = errors.New("vertex index out of range")

	// ErrInvalidColor is returned for a color channel outside [0, 255].
	ErrInvalidColor = errors.New("color channel out of range")

	// ErrUnsupportedPrimitive is returned for any primitive other than
	// PrimitiveTriangle.
	ErrUnsupportedPrimitive = errors.New("unsupported primitive")

	// ErrZeroW is reported when a vertex lands on w == 0 after the MVP
	// transform, where perspective division is undefined.
	ErrZeroW = errors.New("homogeneous w is zero")

	// ErrInvalidSize is returned for non-positive buffer dimensions.
	ErrInvalidSize = errors.New("invalid buffer size")

	// ErrInvalidDepthRange is returned when near >= far.
	ErrInvalidDepthRange = errors.New("invalid depth range")
)
