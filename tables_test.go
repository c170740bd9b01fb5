package main

import (
	"testing"

	"pngstash/models"

	"github.com/gdamore/tcell/v2"
)

func TestMakeChunkTable(t *testing.T) {
	testSetup(t, false)
	report := &models.ChainReport{
		Chunks: []models.ChunkReport{
			{Index: 0, Offset: 8, Type: "IHDR", Length: 13, Critical: true, Valid: true, StoredCRC: 0xdeadbeef},
			{Index: 1, Offset: 33, Type: "tEXt", Length: 5, Valid: true},
			{Index: 2, Offset: 50, Type: "IEND", Critical: true, Valid: false},
		},
		ValidChunks: 2,
	}
	table := makeChunkTable(report)
	if table.GetRowCount() != 4 || table.GetColumnCount() != len(chunkTableHeaders) {
		t.Fatalf("unexpected table size %dx%d", table.GetRowCount(), table.GetColumnCount())
	}
	if got := table.GetCell(1, 5).Text; got != "deadbeef" {
		t.Errorf("crc cell = %q", got)
	}
	if got := table.GetCell(2, 3).Text; got != "ANCILLARY" {
		t.Errorf("class cell = %q", got)
	}
	if got := table.GetCell(3, 6).Text; got != "INVALID" {
		t.Errorf("status cell = %q", got)
	}
	colors := []tcell.Color{criticalColor, ancillaryColor, invalidColor}
	for i, c := range report.Chunks {
		if rowColor(c) != colors[i] {
			t.Errorf("row %d colour %v, want %v", i, rowColor(c), colors[i])
		}
	}
	if _, root := newInspector("x.png", report); root == nil {
		t.Errorf("newInspector() returned no root")
	}
}

func TestThemeFor(t *testing.T) {
	if themeFor("gruvbox") != colorschemes["gruvbox"] {
		t.Errorf("expected gruvbox theme")
	}
	if themeFor("no-such-theme") != colorschemes["default"] {
		t.Errorf("expected fallback to default theme")
	}
}
