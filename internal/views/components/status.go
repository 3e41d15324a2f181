package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	historyLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	historyLabel := widget.NewLabel("History: 0 entries")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		historyLabel,
	)

	return &StatusBar{
		container:    mainContainer,
		statusLabel:  statusLabel,
		historyLabel: historyLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetHistoryCount(count int) {
	sb.historyLabel.SetText(fmt.Sprintf("History: %d entries", count))
}

func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.historyLabel.SetText("History: 0 entries")
}
