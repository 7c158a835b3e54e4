package main

import (
	"fmt"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"antlauncher/internal/launcher"
)

func (a *App) buildUI() {
	window := a.fyneApp.NewWindow("Ant Simulation Launcher")
	window.Resize(fyne.NewSize(1200, 700))

	controls := a.createControlPanel()

	resultsSection := a.createResultsSection()
	logSection := a.createLogSection()

	rightSplit := container.NewVSplit(resultsSection, logSection)
	rightSplit.SetOffset(0.65)

	split := container.NewHSplit(controls, rightSplit)
	split.SetOffset(0.3)

	window.SetContent(split)
	a.window = window

	// Initial state
	a.updateButtons()
}

func (a *App) createControlPanel() fyne.CanvasObject {
	a.exeEntry = widget.NewEntry()
	a.exeEntry.SetPlaceHolder("path to simulation executable")
	exeBrowseBtn := widget.NewButton("Browse...", a.browseForExecutable)

	a.outputEntry = widget.NewEntry()
	a.outputEntry.SetText(a.state.OutputCSV)

	a.extraEntry = widget.NewEntry()
	a.extraEntry.SetPlaceHolder("extra arguments (optional)")

	pathSection := container.NewVBox(
		widget.NewLabelWithStyle("Executable Configuration", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Executable:"), exeBrowseBtn, a.exeEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Output CSV:"), nil, a.outputEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Extra Args:"), nil, a.extraEntry),
	)

	// One entry row per simulation parameter, in canonical order.
	paramRows := container.NewVBox()
	for _, s := range launcher.Spec() {
		entry := widget.NewEntry()
		entry.SetText(s.Default)
		a.paramEntries[s.Name] = &paramEntry{name: s.Name, entry: entry}
		paramRows.Add(container.NewBorder(nil, nil, widget.NewLabel(s.Label+":"), nil, entry))
	}

	paramSection := container.NewVBox(
		widget.NewLabelWithStyle("Simulation Parameters", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		paramRows,
	)

	a.runBtn = widget.NewButton("Run Simulation", a.onRun)
	a.loadBtn = widget.NewButton("Load Results from CSV", a.onLoadResults)
	a.savePresetBtn = widget.NewButton("Save Preset", a.onSavePreset)
	a.loadPresetBtn = widget.NewButton("Load Preset", a.onLoadPreset)
	helpBtn := widget.NewButton("Parameter Help", a.showParameterHelp)

	buttonSection := container.NewVBox(
		a.runBtn,
		a.loadBtn,
		container.NewGridWithColumns(2, a.savePresetBtn, a.loadPresetBtn),
		helpBtn,
	)

	a.statusLabel = widget.NewLabel("Ready.")
	a.statusLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		pathSection,
		widget.NewSeparator(),
		paramSection,
		widget.NewSeparator(),
		buttonSection,
	)

	return container.NewBorder(nil, a.statusLabel, nil, nil, container.NewVScroll(content))
}

func (a *App) createResultsSection() fyne.CanvasObject {
	a.resultsLabel = widget.NewLabelWithStyle("Simulation Results", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	// The table reads from a.table; row 0 renders the column headers.
	a.resultsTable = widget.NewTable(
		func() (int, int) {
			if a.table == nil {
				return 0, 0
			}
			return len(a.table.Rows) + 1, len(a.table.Columns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if a.table == nil {
				label.SetText("")
				return
			}
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(a.table.Columns[id.Col])
				return
			}
			label.TextStyle = fyne.TextStyle{}
			label.SetText(a.table.Rows[id.Row-1][id.Col])
		},
	)

	return container.NewBorder(a.resultsLabel, nil, nil, nil, a.resultsTable)
}

func (a *App) createLogSection() fyne.CanvasObject {
	a.logTextArea = widget.NewMultiLineEntry()
	a.logTextArea.Wrapping = fyne.TextWrapWord

	clearBtn := widget.NewButton("Clear", func() {
		a.logTextArea.SetText("")
	})

	logControls := container.NewHBox(
		widget.NewLabelWithStyle("Live Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		clearBtn,
	)

	logScroll := container.NewScroll(a.logTextArea)

	return container.NewBorder(logControls, nil, nil, nil, logScroll)
}

func (a *App) updateButtons() {
	a.state.mu.RLock()
	isRunning := a.state.IsRunning
	a.state.mu.RUnlock()

	if isRunning {
		a.runBtn.Disable()
		a.loadBtn.Disable()
		a.loadPresetBtn.Disable()
	} else {
		a.runBtn.Enable()
		a.loadBtn.Enable()
		a.loadPresetBtn.Enable()
	}
}

func (a *App) logMessage(message string) {
	timestamp := time.Now().Format("15:04:05")
	logLine := fmt.Sprintf("[%s] %s\n", timestamp, message)

	fyne.Do(func() {
		a.appendToLog(logLine)
	})
}

// appendLines appends a drained batch of process output verbatim. Must be
// called on the UI thread.
func (a *App) appendLines(lines []string) {
	a.appendToLog(strings.Join(lines, "\n") + "\n")
}

func (a *App) appendToLog(text string) {
	currentText := a.logTextArea.Text
	a.logTextArea.SetText(currentText + text)

	// Auto-scroll to the last line.
	if len(currentText) > 0 {
		a.logTextArea.CursorRow = len(strings.Split(currentText, "\n"))
	}
}

func (a *App) setStatus(status string) {
	fyne.Do(func() {
		a.statusLabel.SetText(status)
	})
}
