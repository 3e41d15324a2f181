package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HistoryPanel lists past calculations, most recent first, and lets the
// user load one back into the form.
type HistoryPanel struct {
	container *fyne.Container
	list      *widget.List
	rows      []string
	selected  int

	loadSelectedHandler func(int)
}

func NewHistoryPanel() *HistoryPanel {
	panel := &HistoryPanel{selected: -1}

	panel.list = widget.NewList(
		func() int {
			return len(panel.rows)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(panel.rows[id])
		},
	)
	panel.list.OnSelected = func(id widget.ListItemID) {
		panel.selected = id
	}
	panel.list.OnUnselected = func(widget.ListItemID) {
		panel.selected = -1
	}

	loadButton := widget.NewButton("Load Selected", func() {
		if panel.loadSelectedHandler != nil && panel.selected >= 0 {
			panel.loadSelectedHandler(panel.selected)
		}
	})

	// fixed-height scroll area so a full 20-entry log does not stretch the window
	scroll := container.NewVScroll(panel.list)
	scroll.SetMinSize(fyne.NewSize(0, 140))

	panel.container = container.NewVBox(
		widget.NewLabelWithStyle("History", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		scroll,
		loadButton,
	)

	return panel
}

func (hp *HistoryPanel) GetContainer() *fyne.Container {
	return hp.container
}

// SetLoadSelectedHandler registers the callback invoked with the selected
// row index when the user clicks Load Selected.
func (hp *HistoryPanel) SetLoadSelectedHandler(handler func(int)) {
	hp.loadSelectedHandler = handler
}

// SetRows replaces the displayed rows and clears the selection, since row
// indices refer to the snapshot they were loaded from.
func (hp *HistoryPanel) SetRows(rows []string) {
	hp.rows = rows
	hp.selected = -1
	hp.list.UnselectAll()
	hp.list.Refresh()
}

func (hp *HistoryPanel) RowCount() int {
	return len(hp.rows)
}

// SelectedIndex returns the highlighted row, or -1 when nothing is selected.
func (hp *HistoryPanel) SelectedIndex() int {
	return hp.selected
}
