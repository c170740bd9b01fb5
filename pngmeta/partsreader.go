package pngmeta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
)

const (
	header = "\x89PNG\r\n\x1a\n"
	// SignatureSize is the length of the fixed PNG signature.
	SignatureSize = len(header)
	// chunk envelope: length(4) + type(4) + crc(4)
	chunkHeaderSize = 8
	chunkEnvelope   = chunkHeaderSize + 4
	// MaxChunkLength is the largest data length a chunk may declare on write.
	MaxChunkLength = 1 << 31
)

// ChunkType is the 4 byte chunk tag, e.g. IHDR or tEXt.
type ChunkType [4]byte

var (
	IHDR = ChunkType{'I', 'H', 'D', 'R'}
	PLTE = ChunkType{'P', 'L', 'T', 'E'}
	IDAT = ChunkType{'I', 'D', 'A', 'T'}
	IEND = ChunkType{'I', 'E', 'N', 'D'}
	TEXT = ChunkType{'t', 'E', 'X', 't'}
)

func (t ChunkType) String() string {
	return string(t[:])
}

// IsCritical reports whether t is one of the four critical tags. Case bits are not consulted.
func (t ChunkType) IsCritical() bool {
	switch t {
	case IHDR, PLTE, IDAT, IEND:
		return true
	}
	return false
}

// Chunk is a parsed chunk. Data is a view into the buffer it was decoded from.
type Chunk struct {
	Offset int
	Length uint32
	Type   ChunkType
	Data   []byte
	CRC    uint32
}

// Next returns the offset of the chunk that follows c.
func (c Chunk) Next() int {
	return c.Offset + chunkEnvelope + int(c.Length)
}

// Raw returns the on-wire bytes of c inside buf.
func (c Chunk) Raw(buf []byte) []byte {
	return buf[c.Offset:c.Next():c.Next()]
}

// Verify recomputes the checksum over type and data.
func (c Chunk) Verify() bool {
	return chunkChecksum(c.Type, c.Data) == c.CRC
}

// CheckSignature fails with ErrNotPNG unless buf begins with the PNG signature.
func CheckSignature(buf []byte) error {
	if len(buf) < SignatureSize || string(buf[:SignatureSize]) != header {
		return ErrNotPNG
	}
	return nil
}

// DecodeChunk parses the chunk whose length field starts at offset.
func DecodeChunk(buf []byte, offset int) (Chunk, error) {
	if offset < 0 || offset > len(buf) {
		return Chunk{}, fmt.Errorf("%w: offset %d outside buffer of %d bytes",
			ErrMalformedChunk, offset, len(buf))
	}
	if len(buf)-offset < chunkHeaderSize {
		return Chunk{}, fmt.Errorf("%w: short header at offset %d", ErrMalformedChunk, offset)
	}
	length := binary.BigEndian.Uint32(buf[offset : offset+4])
	// int64 keeps the bound check honest on 32 bit platforms
	end := int64(offset) + chunkEnvelope + int64(length)
	if end > int64(len(buf)) {
		return Chunk{}, fmt.Errorf("%w: length %d at offset %d runs past end of buffer (%d bytes)",
			ErrMalformedChunk, length, offset, len(buf))
	}
	var typ ChunkType
	copy(typ[:], buf[offset+4:offset+8])
	dataStart := offset + chunkHeaderSize
	dataEnd := dataStart + int(length)
	return Chunk{
		Offset: offset,
		Length: length,
		Type:   typ,
		Data:   buf[dataStart:dataEnd:dataEnd],
		CRC:    binary.BigEndian.Uint32(buf[dataEnd : dataEnd+4]),
	}, nil
}

// Reader walks a chunk chain one chunk at a time. It is single pass.
type Reader struct {
	buf    []byte
	cursor int
	done   bool
	err    error
}

func NewStepReader(buf []byte) (*Reader, error) {
	if err := CheckSignature(buf); err != nil {
		return nil, err
	}
	return &Reader{buf: buf, cursor: SignatureSize}, nil
}

// Next returns the next chunk. After IEND it returns io.EOF; errors are sticky.
func (r *Reader) Next() (Chunk, error) {
	if r.err != nil {
		return Chunk{}, r.err
	}
	if r.done {
		return Chunk{}, io.EOF
	}
	if r.cursor >= len(r.buf) {
		r.err = fmt.Errorf("%w: reached end of buffer at offset %d", ErrTruncatedChain, r.cursor)
		return Chunk{}, r.err
	}
	c, err := DecodeChunk(r.buf, r.cursor)
	if err != nil {
		r.err = err
		return Chunk{}, err
	}
	r.cursor = c.Next()
	if c.Type == IEND {
		r.done = true
	}
	return c, nil
}

// Walk yields the chain of buf lazily. On failure the error is the final element.
func Walk(buf []byte) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		r, err := NewStepReader(buf)
		if err != nil {
			yield(Chunk{}, err)
			return
		}
		for {
			c, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(c, err) || err != nil {
				return
			}
		}
	}
}

// ReadChain collects the whole chain of buf, or nothing at all on error.
func ReadChain(buf []byte) ([]Chunk, error) {
	var chunks []Chunk
	for c, err := range Walk(buf) {
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}
