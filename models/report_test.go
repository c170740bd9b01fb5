package models

import "testing"

func TestPercentages(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "growth", got: InjectStats{CarrierSize: 200, OutputSize: 250}.GrowthPercent(), want: 25},
		{name: "growth empty carrier", got: InjectStats{OutputSize: 10}.GrowthPercent(), want: 0},
		{name: "share", got: ExtractStats{CarrierSize: 400, PayloadSize: 100}.SharePercent(), want: 25},
		{name: "valid", got: (&ChainReport{Chunks: make([]ChunkReport, 4), ValidChunks: 3}).ValidPercent(), want: 75},
		{name: "valid empty", got: (&ChainReport{}).ValidPercent(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestChunkReportLabels(t *testing.T) {
	c := ChunkReport{Critical: true, Valid: false}
	if c.Class() != "CRITICAL" || c.Status() != "INVALID" {
		t.Errorf("unexpected labels %s %s", c.Class(), c.Status())
	}
	c = ChunkReport{}
	c.Valid = true
	if c.Class() != "ANCILLARY" || c.Status() != "VALID" {
		t.Errorf("unexpected labels %s %s", c.Class(), c.Status())
	}
}
