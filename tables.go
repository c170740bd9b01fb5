package main

import (
	"fmt"

	"pngstash/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var chunkTableHeaders = []string{"#", "offset", "type", "class", "length", "crc", "status"}

func chunkRow(c models.ChunkReport) []string {
	return []string{
		fmt.Sprint(c.Index),
		fmt.Sprint(c.Offset),
		c.Type,
		c.Class(),
		fmt.Sprint(c.Length),
		fmt.Sprintf("%08x", c.StoredCRC),
		c.Status(),
	}
}

func rowColor(c models.ChunkReport) tcell.Color {
	switch {
	case !c.Valid:
		return invalidColor
	case c.Critical:
		return criticalColor
	default:
		return ancillaryColor
	}
}

func makeChunkTable(report *models.ChainReport) *tview.Table {
	table := tview.NewTable().
		SetBorders(true)
	for c, h := range chunkTableHeaders {
		table.SetCell(0, c,
			tview.NewTableCell(h).
				SetTextColor(tcell.ColorWhite).
				SetAlign(tview.AlignCenter).
				SetSelectable(false))
	}
	for r, chunk := range report.Chunks {
		color := rowColor(chunk)
		for c, text := range chunkRow(chunk) {
			table.SetCell(r+1, c,
				tview.NewTableCell(text).
					SetTextColor(color).
					SetAlign(tview.AlignCenter))
		}
	}
	table.Select(1, 0).SetFixed(1, 0).SetSelectable(true, false)
	return table
}
