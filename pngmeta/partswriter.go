package pngmeta

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

type Writer struct {
	w io.Writer
}

// NewPNGWriter writes the signature and returns a Writer for the chunks that follow.
func NewPNGWriter(w io.Writer) (*Writer, error) {
	if _, err := io.WriteString(w, header); err != nil {
		return nil, err
	}
	return &Writer{w}, nil
}

// WriteChunk frames data as a chunk of type typ with a fresh checksum.
func (w *Writer) WriteChunk(typ ChunkType, data []byte) error {
	if int64(len(data)) > MaxChunkLength {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrPayloadTooLarge, len(data), int64(MaxChunkLength))
	}
	if err := binary.Write(w.w, binary.BigEndian, uint32(len(data))); err != nil {
		return err
	}
	if _, err := w.w.Write(typ[:]); err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	return binary.Write(w.w, binary.BigEndian, chunkChecksum(typ, data))
}

// WriteRaw copies an already framed chunk as is, stored checksum included.
func (w *Writer) WriteRaw(raw []byte) error {
	_, err := w.w.Write(raw)
	return err
}

// EncodeChunk returns the wire form of a chunk: length, type, data, crc.
func EncodeChunk(typ ChunkType, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(chunkEnvelope + len(data))
	w := &Writer{&buf}
	if err := w.WriteChunk(typ, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
