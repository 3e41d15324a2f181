package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// placeholder shown before the first calculation; CopyResult treats it as
// "nothing to copy".
const noResultText = "No calculation yet"

// ResultPanel shows the formatted outcome of the last calculation.
type ResultPanel struct {
	container   *fyne.Container
	resultLabel *widget.Label
}

func NewResultPanel() *ResultPanel {
	resultLabel := widget.NewLabel(noResultText)

	return &ResultPanel{
		container: container.NewVBox(
			widget.NewLabelWithStyle("Result", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			resultLabel,
		),
		resultLabel: resultLabel,
	}
}

func (rp *ResultPanel) GetContainer() *fyne.Container {
	return rp.container
}

func (rp *ResultPanel) SetResult(text string) {
	rp.resultLabel.SetText(text)
}

// ResultText returns the current result text, or empty when no calculation
// has happened yet.
func (rp *ResultPanel) ResultText() string {
	if rp.resultLabel.Text == noResultText {
		return ""
	}
	return rp.resultLabel.Text
}

func (rp *ResultPanel) Reset() {
	rp.resultLabel.SetText(noResultText)
}
