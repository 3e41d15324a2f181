package views

import (
	"fmt"

	"tipsplit/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView represents the main application view using MVC pattern
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	inputs        *components.InputsPanel
	results       *components.ResultPanel
	history       *components.HistoryPanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	calculateHandler   func()
	copyResultHandler  func()
	clearHandler       func()
	loadHistoryHandler func(int)
	toggleThemeHandler func()
	showAboutHandler   func()
	tipChangeHandler   func(float64)
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window, defaultTipPercent float64) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(defaultTipPercent)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(defaultTipPercent float64) {
	mv.inputs = components.NewInputsPanel(defaultTipPercent)
	mv.results = components.NewResultPanel()
	mv.history = components.NewHistoryPanel()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	calculateButton := widget.NewButton("Calculate", func() {
		if mv.calculateHandler != nil {
			mv.calculateHandler()
		}
	})
	calculateButton.Importance = widget.HighImportance

	copyButton := widget.NewButton("Copy Result", func() {
		if mv.copyResultHandler != nil {
			mv.copyResultHandler()
		}
	})

	clearButton := widget.NewButton("Clear", func() {
		if mv.clearHandler != nil {
			mv.clearHandler()
		}
	})

	actionButtons := container.NewHBox(calculateButton, copyButton, clearButton)

	themeButton := widget.NewButton("Toggle Theme", func() {
		if mv.toggleThemeHandler != nil {
			mv.toggleThemeHandler()
		}
	})

	aboutButton := widget.NewButton("About", func() {
		if mv.showAboutHandler != nil {
			mv.showAboutHandler()
		}
	})

	bottomButtons := container.NewBorder(nil, nil, themeButton, aboutButton)

	contentArea := container.NewVBox(
		mv.inputs.GetContainer(),
		actionButtons,
		widget.NewSeparator(),
		mv.results.GetContainer(),
		mv.history.GetContainer(),
		bottomButtons,
	)

	mv.mainContainer = container.NewBorder(
		nil,                          // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		contentArea,                 // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.history.SetLoadSelectedHandler(func(index int) {
		if mv.loadHistoryHandler != nil {
			mv.loadHistoryHandler(index)
		}
	})

	mv.inputs.SetTipChangeHandler(func(percent float64) {
		if mv.tipChangeHandler != nil {
			mv.tipChangeHandler(percent)
		}
	})
}

// Event handler setters - called by controller

// SetCalculateHandler sets the handler for calculate requests
func (mv *MainView) SetCalculateHandler(handler func()) {
	mv.calculateHandler = handler
}

// SetCopyResultHandler sets the handler for clipboard copy requests
func (mv *MainView) SetCopyResultHandler(handler func()) {
	mv.copyResultHandler = handler
}

// SetClearHandler sets the handler for clear-form requests
func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

// SetLoadHistoryHandler sets the handler for history recall requests
func (mv *MainView) SetLoadHistoryHandler(handler func(int)) {
	mv.loadHistoryHandler = handler
}

// SetToggleThemeHandler sets the handler for theme toggle requests
func (mv *MainView) SetToggleThemeHandler(handler func()) {
	mv.toggleThemeHandler = handler
}

// SetShowAboutHandler sets the handler for about dialog requests
func (mv *MainView) SetShowAboutHandler(handler func()) {
	mv.showAboutHandler = handler
}

// SetTipChangeHandler sets the handler for live tip slider changes
func (mv *MainView) SetTipChangeHandler(handler func(float64)) {
	mv.tipChangeHandler = handler
}

// Form accessors - called by controller

// BillText returns the raw bill entry text
func (mv *MainView) BillText() string {
	return mv.inputs.BillText()
}

// CurrencySymbol returns the currency entry text
func (mv *MainView) CurrencySymbol() string {
	return mv.inputs.CurrencySymbol()
}

// TipPercent returns the current slider value
func (mv *MainView) TipPercent() float64 {
	return mv.inputs.TipPercent()
}

// PeopleText returns the raw party size entry text
func (mv *MainView) PeopleText() string {
	return mv.inputs.PeopleText()
}

// RoundUp returns the round-up checkbox state
func (mv *MainView) RoundUp() bool {
	return mv.inputs.RoundUp()
}

// UI update methods - called by controller

// SetResult updates the result panel text
func (mv *MainView) SetResult(text string) {
	fyne.Do(func() {
		mv.results.SetResult(text)
	})
}

// ResultText returns the last formatted result, empty before any calculation
func (mv *MainView) ResultText() string {
	return mv.results.ResultText()
}

// SetHistoryRows replaces the history list contents
func (mv *MainView) SetHistoryRows(rows []string) {
	fyne.Do(func() {
		mv.history.SetRows(rows)
		mv.statusBar.SetHistoryCount(len(rows))
	})
}

// PopulateInputs fills bill, tip, and party size from a recalled record.
// The round-up toggle and result display are deliberately left unchanged.
func (mv *MainView) PopulateInputs(billText string, tipPercent float64, people int) {
	fyne.Do(func() {
		mv.inputs.SetBillText(billText)
		mv.inputs.SetTipPercent(tipPercent)
		mv.inputs.SetPeople(people)
	})
}

// ResetForm restores input and result defaults
func (mv *MainView) ResetForm(defaultTipPercent float64) {
	fyne.Do(func() {
		mv.inputs.Reset(defaultTipPercent)
		mv.results.Reset()
		mv.statusBar.SetStatus("Ready")
	})
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// CopyToClipboard places text on the window clipboard
func (mv *MainView) CopyToClipboard(text string) {
	fyne.Do(func() {
		mv.window.Clipboard().SetContent(text)
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(appName, version, description string) {
	fyne.Do(func() {
		content := container.NewVBox(
			widget.NewLabelWithStyle(appName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			widget.NewLabel(fmt.Sprintf("Version: %s", version)),
			widget.NewLabel(description),
		)

		dialog.ShowCustom("About", "Close", content, mv.window)
	})
}

// SetTheme applies a theme to the application
func (mv *MainView) SetTheme(theme fyne.Theme) {
	fyne.Do(func() {
		fyne.CurrentApp().Settings().SetTheme(theme)
		mv.mainContainer.Refresh()
	})
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// Close closes the view
func (mv *MainView) Close() {
	fyne.Do(func() {
		mv.window.Close()
	})
}
