package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"golang.org/x/time/rate"

	"antlauncher/internal/launcher"
	"antlauncher/internal/relay"
	"antlauncher/internal/results"
	"antlauncher/internal/runlog"
)

// drainInterval is how often the UI polls the relay for new output lines.
const drainInterval = 100 * time.Millisecond

func (a *App) browseForExecutable() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err == nil && reader != nil {
			a.exeEntry.SetText(reader.URI().Path())
			reader.Close()
		}
	}, a.window)
	fd.Show()
}

func (a *App) updateState() {
	a.state.ExecutablePath = a.exeEntry.Text
	a.state.OutputCSV = a.outputEntry.Text
	a.state.ExtraArgs = a.extraEntry.Text
}

func (a *App) onRun() {
	a.updateState()

	if a.state.ExecutablePath == "" {
		dialog.ShowError(fmt.Errorf("please select the simulation executable"), a.window)
		return
	}

	a.state.mu.Lock()
	a.state.IsRunning = true
	a.state.mu.Unlock()
	a.updateButtons()

	command, err := launcher.BuildCommand(
		a.state.ExecutablePath, a.currentParams(), a.state.ExtraArgs, a.state.OutputCSV)
	if err != nil {
		a.state.mu.Lock()
		a.state.IsRunning = false
		a.state.mu.Unlock()
		a.updateButtons()
		a.setStatus("Error: invalid launch configuration.")
		dialog.ShowError(err, a.window)
		return
	}

	outputPath := a.state.OutputCSV
	logDir := a.state.LogDir

	go func() {
		// The run control comes back on every exit path, success or failure.
		defer func() {
			a.state.mu.Lock()
			a.state.IsRunning = false
			a.state.mu.Unlock()
			fyne.Do(a.updateButtons)
		}()

		a.logMessage(fmt.Sprintf("Launching: %s", command))
		a.setStatus("Running simulation... please wait.")

		runLog, err := runlog.New(logDir, a.log)
		if err != nil {
			a.setStatus("Error: could not open run log.")
			a.showError(err)
			return
		}

		rel := relay.New()

		// Drain loop: move relay batches onto the UI thread at a fixed
		// interval. Status refreshes are throttled separately so heavy
		// output does not redraw the label on every tick.
		drainDone := make(chan struct{})
		drainStopped := make(chan struct{})
		statusLimiter := rate.NewLimiter(rate.Every(250*time.Millisecond), 1)
		totalLines := 0

		drain := func() {
			lines := rel.Drain()
			if len(lines) == 0 {
				return
			}
			totalLines += len(lines)
			fyne.Do(func() {
				a.appendLines(lines)
			})
			if statusLimiter.Allow() {
				a.setStatus(fmt.Sprintf("Running... %d lines of output", totalLines))
			}
		}

		go func() {
			defer close(drainStopped)
			ticker := time.NewTicker(drainInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					drain()
				case <-drainDone:
					return
				}
			}
		}()

		runner := launcher.NewRunner(a.log)
		runErr := runner.Run(context.Background(), command, func(line string) {
			rel.Push(line)
			runLog.WriteLine(line)
		})

		// Stop the ticker, then flush whatever the last tick missed. The
		// stream is fully drained before any terminal handling, so the
		// result load below always sees a finished output file.
		close(drainDone)
		<-drainStopped
		drain()

		summary := "exit: success"
		if runErr != nil {
			summary = fmt.Sprintf("exit: %v", runErr)
		}
		if err := runLog.Finish(summary); err != nil {
			a.log.WithError(err).Warn("failed to finalize run log")
		}

		if runErr != nil {
			a.reportRunFailure(runErr)
			return
		}

		a.logMessage("Simulation finished successfully. Loading results...")
		a.setStatus("Loading results...")
		a.loadResults(outputPath)
	}()
}

// reportRunFailure surfaces each failure class as its own notification.
func (a *App) reportRunFailure(runErr error) {
	var exitErr *launcher.ExitError
	switch {
	case errors.As(runErr, &exitErr):
		a.logMessage(fmt.Sprintf("Simulation failed with exit code %d", exitErr.Code))
		a.setStatus("Error: simulation failed.")
		a.showError(
			fmt.Errorf("the simulation ran but failed with exit code %d\n\n%s",
				exitErr.Code, lastOutput(exitErr.Tail)))
	case errors.Is(runErr, launcher.ErrExecutableNotFound):
		a.logMessage("Executable not found at launch")
		a.setStatus("Error: executable not found.")
		a.showError(runErr)
	default:
		a.logMessage(fmt.Sprintf("Launch failed: %v", runErr))
		a.setStatus("Error: launch failed.")
		a.showError(runErr)
	}
}

// loadResults reads the output file and replaces the displayed table. On
// failure the previous table stays untouched.
func (a *App) loadResults(path string) {
	table, err := results.Load(path)
	if err != nil {
		var parseErr *results.ParseError
		switch {
		case errors.Is(err, results.ErrFileMissing):
			a.setStatus("Error: results file not found.")
			a.showError(fmt.Errorf("could not find the results file:\n%s", path))
		case errors.As(err, &parseErr):
			a.setStatus("Error: failed to parse results.")
			a.showError(err)
		default:
			a.setStatus("Error: failed to load results.")
			a.showError(err)
		}
		return
	}

	fyne.Do(func() {
		a.renderTable(table)
	})
	a.logMessage(fmt.Sprintf("Loaded %d rows from %s", len(table.Rows), path))
	a.setStatus(fmt.Sprintf("Ready. Loaded %d rows from %s", len(table.Rows), path))
}

func (a *App) onLoadResults() {
	a.updateState()

	path := a.state.OutputCSV
	go func() {
		a.setStatus("Loading results...")
		a.loadResults(path)
	}()
}

func (a *App) showError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, a.window)
	})
}

func lastOutput(tail []string) string {
	if len(tail) == 0 {
		return "(no output captured)"
	}
	out := ""
	for _, line := range tail {
		out += line + "\n"
	}
	return out
}
