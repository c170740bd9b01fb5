package pngmeta

import (
	"fmt"

	"pngstash/models"
)

// Inspect reports every chunk of buf. Checksum mismatches are reported, not returned.
func Inspect(buf []byte) (*models.ChainReport, error) {
	report := &models.ChainReport{FileSize: len(buf)}
	i := 0
	for c, err := range Walk(buf) {
		if err != nil {
			return nil, err
		}
		computed := chunkChecksum(c.Type, c.Data)
		cr := models.ChunkReport{
			Index:       i,
			Offset:      c.Offset,
			Type:        c.Type.String(),
			Length:      c.Length,
			Critical:    c.Type.IsCritical(),
			StoredCRC:   c.CRC,
			ComputedCRC: computed,
			Valid:       computed == c.CRC,
		}
		if cr.Valid {
			report.ValidChunks++
		}
		report.Chunks = append(report.Chunks, cr)
		i++
	}
	return report, nil
}

// VerifyChain returns ErrCRC32Mismatch naming the first bad chunk, if any.
// Structural errors are returned as they are.
func VerifyChain(buf []byte) error {
	for c, err := range Walk(buf) {
		if err != nil {
			return err
		}
		if !c.Verify() {
			return fmt.Errorf("%w: %s chunk at offset %d", ErrCRC32Mismatch, c.Type, c.Offset)
		}
	}
	return nil
}
