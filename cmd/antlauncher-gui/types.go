package main

import (
	"sync"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"antlauncher/internal/results"
)

type AppState struct {
	ExecutablePath string
	OutputCSV      string
	ExtraArgs      string
	LogDir         string

	// Runtime
	IsRunning bool
	mu        sync.RWMutex
}

// paramEntry pairs one simulation parameter with its input widget.
type paramEntry struct {
	name  string
	entry *widget.Entry
}

type App struct {
	fyneApp fyne.App
	window  fyne.Window
	state   *AppState
	log     *logrus.Logger

	// Currently displayed result table. Only mutated on the UI thread.
	table *results.Table

	// UI Elements
	exeEntry    *widget.Entry
	outputEntry *widget.Entry
	extraEntry  *widget.Entry

	paramEntries map[string]*paramEntry

	runBtn        *widget.Button
	loadBtn       *widget.Button
	savePresetBtn *widget.Button
	loadPresetBtn *widget.Button

	statusLabel  *widget.Label
	logTextArea  *widget.Entry
	resultsTable *widget.Table
	resultsLabel *widget.Label
}
