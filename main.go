package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/customer-list/internal/config"
	"github.com/ytget/customer-list/internal/customers"
	"github.com/ytget/customer-list/internal/logging"
	"github.com/ytget/customer-list/internal/model"
	"github.com/ytget/customer-list/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.customer-list"
	AppName = "Customer List"

	WindowWidth  = 640
	WindowHeight = 560
)

func main() {
	env, dotenv := config.LoadEnv()

	logger, err := logging.New(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("app", AppName),
		zap.String("version", version),
		zap.Bool("dotenv", dotenv))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	var initial []model.Customer
	if settings.GetLoadSampleData() {
		initial = model.SampleCustomers()
	}
	manager := customers.NewManager(initial, logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, manager, settings, logger, env.PDFFontPath)

	// Show and run
	myWindow.ShowAndRun()

	logger.Info("stopped", zap.String("session", manager.Session()))
}
