package main

import (
	"fmt"

	"pngstash/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = "[yellow]Up/Down[white]: move  [yellow]Esc/q[white]: quit"

func newInspector(fname string, report *models.ChainReport) (*tview.Application, *tview.Flex) {
	tview.Styles = themeFor(cfg.ColorScheme)
	app := tview.NewApplication()
	table := makeChunkTable(report)
	summary := tview.NewTextView().
		SetDynamicColors(true).
		SetText(fmt.Sprintf("[::b]%s[::-]  %d of %d chunks (%.1f%%) are valid\n%s",
			fname, report.ValidChunks, report.TotalChunks(), report.ValidPercent(), helpText))
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(table, 0, 1, true).
		AddItem(summary, 2, 0, false)
	flex.SetBorder(true).SetTitle(" chunks ")
	table.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEsc {
			app.Stop()
		}
	})
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})
	return app, flex
}

// showInspector blocks until the user quits.
func showInspector(fname string, report *models.ChainReport) error {
	app, root := newInspector(fname, report)
	return app.SetRoot(root, true).EnableMouse(true).Run()
}
