package main

import (
	"fmt"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"antlauncher/internal/launcher"
	"antlauncher/internal/preset"
)

// showParameterHelp shows a reference window listing every simulation
// parameter with its flag name and default.
func (a *App) showParameterHelp() {
	helpWindow := a.fyneApp.NewWindow("Simulation Parameters")
	helpWindow.Resize(fyne.NewSize(500, 450))

	var text strings.Builder
	text.WriteString("Parameters passed to the simulation binary:\n\n")
	for _, s := range launcher.Spec() {
		text.WriteString(fmt.Sprintf("--%s\n    %s (default %s)\n\n", s.Name, s.Label, s.Default))
	}
	text.WriteString("--csv_filename\n    Output CSV path, appended automatically\n\n")
	text.WriteString("Values are passed through verbatim; the simulation\nreports malformed numbers itself.")

	helpLabel := widget.NewLabel(text.String())
	helpLabel.Wrapping = fyne.TextWrapWord

	closeBtn := widget.NewButton("Close", func() {
		helpWindow.Close()
	})

	content := container.NewBorder(
		nil,
		closeBtn,
		nil, nil,
		container.NewScroll(helpLabel),
	)

	helpWindow.SetContent(content)
	helpWindow.Show()
}

func (a *App) onSavePreset() {
	a.updateState()
	p := a.currentPreset()

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := p.Save(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.logMessage(fmt.Sprintf("Preset saved: %s", path))
	}, a.window)
	fd.SetFileName("launch.yaml")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	fd.Show()
}

func (a *App) onLoadPreset() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		p, err := preset.Load(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.applyPreset(p)
		a.logMessage(fmt.Sprintf("Preset loaded: %s", path))
	}, a.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	fd.Show()
}
