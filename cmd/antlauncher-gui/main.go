package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"antlauncher/internal/launcher"
)

func main() {
	myApp := app.NewWithID("io.antlauncher.app")

	appState := &AppState{
		OutputCSV: "ground_data.csv",
		LogDir:    "logs",
	}

	mainApp := &App{
		fyneApp:      myApp,
		state:        appState,
		log:          logrus.New(),
		paramEntries: make(map[string]*paramEntry, len(launcher.Spec())),
	}

	mainApp.buildUI()
	mainApp.showAndRun()
}

func (a *App) showAndRun() {
	a.window.ShowAndRun()
}
