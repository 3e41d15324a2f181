package main

import (
	"log"
	"os"

	"tipsplit/internal/config"
	"tipsplit/internal/controllers"
	"tipsplit/internal/history"
	"tipsplit/internal/logger"
	"tipsplit/internal/services"
	"tipsplit/internal/shutdown"
	"tipsplit/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "TipSplit"
	AppID      = "com.tipsplit.app"
	AppVersion = "1.0.0"

	WindowWidth  = 480
	WindowHeight = 640
)

func main() {
	cfg, cfgErr := config.Load(config.DefaultFilePath())

	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))
	if cfgErr != nil {
		// A broken config file falls back to defaults; the app still starts.
		appLogger.Warning("Main", "config file invalid, using defaults", map[string]interface{}{
			"error": cfgErr.Error(),
		})
	}

	appLogger.Info("Main", "starting application", map[string]interface{}{
		"version":      AppVersion,
		"history_path": cfg.HistoryPath,
		"dark_mode":    cfg.DarkMode,
		"log_level":    cfg.LogLevel,
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	store := history.NewStore(cfg.HistoryPath, appLogger)
	service := services.NewCalculationService(store, cfg.CurrencySymbol, appLogger)

	controller := controllers.NewMainController(service, cfg.DefaultTipPercent, cfg.DarkMode, appLogger)
	mainView := views.NewMainView(window, cfg.DefaultTipPercent)
	controller.SetMainView(mainView)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(controller)
	shutdownManager.Listen()

	window.SetOnClosed(func() {
		appLogger.Info("Main", "window closed", nil)
	})

	if err := run(fyneApp, mainView); err != nil {
		log.Fatalf("application failed: %v", err)
	}

	appLogger.Info("Main", "application terminated", nil)
	os.Exit(0)
}

func run(fyneApp fyne.App, view *views.MainView) error {
	view.Show()
	fyneApp.Run()
	return nil
}
