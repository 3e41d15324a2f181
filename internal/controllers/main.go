package controllers

import (
	"fmt"
	"sync"

	"tipsplit/internal/gui/theme"
	"tipsplit/internal/logger"
	"tipsplit/internal/services"
	"tipsplit/internal/views"
)

// MainController orchestrates the application using MVC pattern: it reads
// raw form values from the view, runs them through the calculation service,
// and pushes results, history rows, and dialogs back to the view.
type MainController struct {
	service *services.CalculationService
	logger  logger.Logger

	mainView *views.MainView

	mu                sync.Mutex
	darkMode          bool
	defaultTipPercent float64
}

// NewMainController creates a new main controller
func NewMainController(service *services.CalculationService, defaultTipPercent float64, darkMode bool, log logger.Logger) *MainController {
	return &MainController{
		service:           service,
		logger:            log,
		darkMode:          darkMode,
		defaultTipPercent: defaultTipPercent,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	mc.applyTheme()
	mc.RefreshHistory()
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetCalculateHandler(mc.Calculate)
	mc.mainView.SetCopyResultHandler(mc.CopyResult)
	mc.mainView.SetClearHandler(mc.ClearInputs)
	mc.mainView.SetLoadHistoryHandler(mc.LoadSelectedHistory)
	mc.mainView.SetToggleThemeHandler(mc.ToggleTheme)
	mc.mainView.SetShowAboutHandler(mc.ShowAbout)
}

// Calculate reads the current form values and runs one calculation. A
// validation failure shows the specific error and leaves both the previous
// result and the history untouched.
func (mc *MainController) Calculate() {
	if mc.mainView == nil {
		return
	}

	mc.service.SetCurrencySymbol(mc.mainView.CurrencySymbol())

	outcome, err := mc.service.Calculate(
		mc.mainView.BillText(),
		mc.mainView.TipPercent(),
		mc.mainView.PeopleText(),
		mc.mainView.RoundUp(),
	)
	if err != nil {
		mc.logger.Debug("MainController", "calculation rejected", map[string]interface{}{
			"error": err.Error(),
		})
		mc.mainView.ShowError(err)
		return
	}

	mc.mainView.SetResult(outcome.Text)
	if outcome.Persisted {
		mc.mainView.UpdateStatus("Calculated")
	} else {
		mc.mainView.UpdateStatus("Calculated (history not saved)")
	}
	mc.RefreshHistory()
}

// LoadSelectedHistory repopulates the bill, tip, and party size inputs from
// a stored record. Out-of-range indices are a silent no-op. The round-up
// toggle and the result display keep their current state.
func (mc *MainController) LoadSelectedHistory(index int) {
	rec, ok := mc.service.RecallEntry(index)
	if !ok {
		return
	}

	mc.mainView.PopulateInputs(fmt.Sprintf("%.2f", rec.Bill), rec.TipPercent, rec.People)
	mc.mainView.UpdateStatus("History entry loaded")
}

// CopyResult places the last formatted result on the clipboard. A no-op
// when no calculation has happened yet.
func (mc *MainController) CopyResult() {
	text := mc.mainView.ResultText()
	if text == "" {
		return
	}

	mc.mainView.CopyToClipboard(text)
	mc.mainView.ShowInfo("Copied", "Result copied to clipboard.")
}

// ClearInputs resets the form and result display to defaults
func (mc *MainController) ClearInputs() {
	mc.mainView.ResetForm(mc.defaultTipPercent)
}

// ToggleTheme flips between the light and dark display variants
func (mc *MainController) ToggleTheme() {
	mc.mu.Lock()
	mc.darkMode = !mc.darkMode
	mc.mu.Unlock()

	mc.applyTheme()
}

// ShowAbout displays the about dialog
func (mc *MainController) ShowAbout() {
	mc.mainView.ShowAboutDialog(
		"TipSplit",
		"1.0.0",
		"Tip calculator with presets, slider, bill splitting, history, themes, and clipboard copy.",
	)
}

// RefreshHistory reloads the history log and pushes the rows to the view
func (mc *MainController) RefreshHistory() {
	entries := mc.service.HistoryEntries()
	rows := make([]string, 0, len(entries))
	for _, rec := range entries {
		rows = append(rows, mc.service.HistoryLine(rec))
	}
	mc.mainView.SetHistoryRows(rows)
}

func (mc *MainController) applyTheme() {
	mc.mu.Lock()
	dark := mc.darkMode
	mc.mu.Unlock()

	if dark {
		mc.mainView.SetTheme(theme.Dark())
	} else {
		mc.mainView.SetTheme(theme.Light())
	}
}

// Shutdown performs cleanup when the application closes
func (mc *MainController) Shutdown() {
	mc.logger.Info("MainController", "controller shutdown", nil)
	if mc.mainView != nil {
		mc.mainView.Close()
	}
}
