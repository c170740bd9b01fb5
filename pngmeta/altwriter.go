package pngmeta

import (
	"bytes"
	"fmt"
)

// payloadType is the tag of the chunk that carries an injected payload.
var payloadType = TEXT

func checkPayloadSize(n int64) error {
	if n < 0 || n > MaxChunkLength {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrPayloadTooLarge, n, int64(MaxChunkLength))
	}
	return nil
}

// Inject returns a copy of the carrier with payload stored in a tEXt chunk placed right before IEND.
// Every other chunk is copied byte for byte, stale checksums included. Bytes after IEND are dropped.
func Inject(carrier, payload []byte) ([]byte, error) {
	if err := checkPayloadSize(int64(len(payload))); err != nil {
		return nil, err
	}
	chunks, err := ReadChain(carrier)
	if err != nil {
		return nil, err
	}
	iend := chunks[len(chunks)-1]
	var out bytes.Buffer
	out.Grow(iend.Next() + chunkEnvelope + len(payload))
	w, err := NewPNGWriter(&out)
	if err != nil {
		return nil, err
	}
	for _, c := range chunks[:len(chunks)-1] {
		if err := w.WriteRaw(c.Raw(carrier)); err != nil {
			return nil, fmt.Errorf("copy %s chunk at offset %d: %w", c.Type, c.Offset, err)
		}
	}
	if err := w.WriteChunk(payloadType, payload); err != nil {
		return nil, fmt.Errorf("write payload chunk: %w", err)
	}
	if err := w.WriteRaw(iend.Raw(carrier)); err != nil {
		return nil, fmt.Errorf("copy IEND chunk: %w", err)
	}
	return out.Bytes(), nil
}
