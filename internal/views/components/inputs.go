package components

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Tip presets offered as one-click buttons, matching the slider range below.
var tipPresets = []float64{10, 12, 15}

const (
	tipSliderMin = 0
	tipSliderMax = 50
)

// InputsPanel collects everything the user types or drags: bill amount,
// currency symbol, tip percentage (presets, slider, live label), party
// size, and the round-up toggle.
type InputsPanel struct {
	container *fyne.Container

	billEntry     *widget.Entry
	currencyEntry *widget.Entry
	tipSlider     *widget.Slider
	tipLabel      *widget.Label
	peopleEntry   *widget.Entry
	roundCheck    *widget.Check

	tipChangeHandler func(float64)
}

func NewInputsPanel(defaultTip float64) *InputsPanel {
	panel := &InputsPanel{}
	panel.setupWidgets(defaultTip)
	panel.buildLayout()
	return panel
}

func (ip *InputsPanel) setupWidgets(defaultTip float64) {
	ip.billEntry = widget.NewEntry()
	ip.billEntry.SetText("0.00")

	ip.currencyEntry = widget.NewEntry()
	ip.currencyEntry.SetText("$")

	ip.tipSlider = widget.NewSlider(tipSliderMin, tipSliderMax)
	ip.tipSlider.Step = 0.5
	ip.tipSlider.SetValue(defaultTip)

	ip.tipLabel = widget.NewLabel(formatTipLabel(defaultTip))
	// label tracks the slider while dragging
	ip.tipSlider.OnChanged = func(value float64) {
		ip.tipLabel.SetText(formatTipLabel(value))
		if ip.tipChangeHandler != nil {
			ip.tipChangeHandler(value)
		}
	}

	ip.peopleEntry = widget.NewEntry()
	ip.peopleEntry.SetText("1")

	ip.roundCheck = widget.NewCheck("Round up per person", nil)
}

func (ip *InputsPanel) buildLayout() {
	presetButtons := container.NewHBox()
	for _, preset := range tipPresets {
		percent := preset
		button := widget.NewButton(fmt.Sprintf("%.0f%%", percent), func() {
			ip.SetTipPercent(percent)
		})
		presetButtons.Add(button)
	}

	form := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Bill amount:"), ip.currencyEntry, ip.billEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Tip (%):"), nil, presetButtons),
		ip.tipSlider,
		ip.tipLabel,
		container.NewBorder(nil, nil, widget.NewLabel("Split between (# people):"), nil, ip.peopleEntry),
		ip.roundCheck,
	)

	ip.container = form
}

func (ip *InputsPanel) GetContainer() *fyne.Container {
	return ip.container
}

// SetTipChangeHandler registers a callback for slider/preset tip changes.
func (ip *InputsPanel) SetTipChangeHandler(handler func(float64)) {
	ip.tipChangeHandler = handler
}

// Raw form value getters, consumed by the controller on Calculate.

func (ip *InputsPanel) BillText() string {
	return ip.billEntry.Text
}

func (ip *InputsPanel) CurrencySymbol() string {
	return ip.currencyEntry.Text
}

func (ip *InputsPanel) TipPercent() float64 {
	return ip.tipSlider.Value
}

func (ip *InputsPanel) PeopleText() string {
	return ip.peopleEntry.Text
}

func (ip *InputsPanel) RoundUp() bool {
	return ip.roundCheck.Checked
}

// Setters used when recalling a history entry or clearing the form.

func (ip *InputsPanel) SetBillText(text string) {
	ip.billEntry.SetText(text)
}

func (ip *InputsPanel) SetTipPercent(percent float64) {
	ip.tipSlider.SetValue(percent)
	ip.tipLabel.SetText(formatTipLabel(percent))
}

func (ip *InputsPanel) SetPeople(people int) {
	ip.peopleEntry.SetText(strconv.Itoa(people))
}

func (ip *InputsPanel) SetRoundUp(round bool) {
	ip.roundCheck.SetChecked(round)
}

// Reset restores the form defaults. The currency symbol is kept; it is a
// display preference rather than calculation input.
func (ip *InputsPanel) Reset(defaultTip float64) {
	ip.billEntry.SetText("0.00")
	ip.SetTipPercent(defaultTip)
	ip.peopleEntry.SetText("1")
	ip.roundCheck.SetChecked(false)
}

func formatTipLabel(percent float64) string {
	return fmt.Sprintf("Tip: %.1f%%", percent)
}
