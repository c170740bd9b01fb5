package pngmeta

import (
	"hash/crc32"
	"sync"
)

var (
	crcTable     *crc32.Table
	crcTableOnce sync.Once
)

func table() *crc32.Table {
	crcTableOnce.Do(func() {
		crcTable = crc32.MakeTable(crc32.IEEE)
	})
	return crcTable
}

// Checksum returns the CRC-32 (ISO-3309, the one PNG and zlib use) of b.
func Checksum(b []byte) uint32 {
	return crc32.Update(0, table(), b)
}

// UpdateChecksum continues a running checksum, so type and data can be fed separately.
func UpdateChecksum(crc uint32, b []byte) uint32 {
	return crc32.Update(crc, table(), b)
}

func chunkChecksum(typ ChunkType, data []byte) uint32 {
	return UpdateChecksum(Checksum(typ[:]), data)
}
