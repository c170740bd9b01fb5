package models

// ChunkReport is what the reporting side gets to know about a single chunk.
type ChunkReport struct {
	Index       int    `json:"index"`
	Offset      int    `json:"offset"`
	Type        string `json:"type"`
	Length      uint32 `json:"length"`
	Critical    bool   `json:"critical"`
	StoredCRC   uint32 `json:"stored_crc"`
	ComputedCRC uint32 `json:"computed_crc"`
	Valid       bool   `json:"valid"`
}

func (c ChunkReport) Class() string {
	if c.Critical {
		return "CRITICAL"
	}
	return "ANCILLARY"
}

func (c ChunkReport) Status() string {
	if c.Valid {
		return "VALID"
	}
	return "INVALID"
}

type ChainReport struct {
	FileSize    int           `json:"file_size"`
	Chunks      []ChunkReport `json:"chunks"`
	ValidChunks int           `json:"valid_chunks"`
}

func (r *ChainReport) TotalChunks() int {
	return len(r.Chunks)
}

// ValidPercent is the share of chunks with a matching checksum, 0 for an empty chain.
func (r *ChainReport) ValidPercent() float64 {
	if len(r.Chunks) == 0 {
		return 0
	}
	return float64(r.ValidChunks) / float64(len(r.Chunks)) * 100
}

type InjectStats struct {
	CarrierSize int          `json:"carrier_size"`
	PayloadSize int          `json:"payload_size"`
	OutputSize  int          `json:"output_size"`
	Output      *ChainReport `json:"output,omitempty"`
}

// GrowthPercent is how much larger the output is than the carrier.
func (s InjectStats) GrowthPercent() float64 {
	if s.CarrierSize == 0 {
		return 0
	}
	return float64(s.OutputSize)/float64(s.CarrierSize)*100 - 100
}

type ExtractStats struct {
	CarrierSize int `json:"carrier_size"`
	PayloadSize int `json:"payload_size"`
}

// SharePercent is the payload size relative to its carrier.
func (s ExtractStats) SharePercent() float64 {
	if s.CarrierSize == 0 {
		return 0
	}
	return float64(s.PayloadSize) / float64(s.CarrierSize) * 100
}
