package pngmeta

import "errors"

var (
	ErrNotPNG          = errors.New("not png")
	ErrMalformedChunk  = errors.New("malformed chunk")
	ErrTruncatedChain  = errors.New("truncated chunk chain: no IEND")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrPayloadNotFound = errors.New("no embedded payload found")
	// ErrCRC32Mismatch is only ever reported, inject and extract ignore bad checksums.
	ErrCRC32Mismatch = errors.New("crc32 mismatch")
)
