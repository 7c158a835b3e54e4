package main

import (
	"antlauncher/internal/launcher"
	"antlauncher/internal/preset"
	"antlauncher/internal/results"
)

// currentParams collects the parameter entry values in canonical order.
// Values go through unvalidated - the simulation binary reports malformed
// numbers itself.
func (a *App) currentParams() []launcher.Param {
	specs := launcher.Spec()
	params := make([]launcher.Param, len(specs))
	for i, s := range specs {
		params[i] = launcher.Param{Name: s.Name, Value: a.paramEntries[s.Name].entry.Text}
	}
	return params
}

// renderTable replaces the displayed result table. Must be called on the
// UI thread.
func (a *App) renderTable(table *results.Table) {
	a.table = table

	for i := range table.Columns {
		width := float32(len(table.Columns[i])) * 12
		if width < 100 {
			width = 100
		}
		a.resultsTable.SetColumnWidth(i, width)
	}

	a.resultsTable.Refresh()
	a.resultsLabel.SetText(resultsTitle(table))
}

func resultsTitle(table *results.Table) string {
	if table == nil {
		return "Simulation Results"
	}
	title := "Simulation Results"
	if summary, ok := firstNumericSummary(table); ok {
		title += "  (" + summary + ")"
	}
	return title
}

// firstNumericSummary renders a short min/max line for the first numeric
// column, giving the user a sanity check without leaving the GUI.
func firstNumericSummary(table *results.Table) (string, bool) {
	for _, col := range table.Columns {
		summary, ok := table.Summarize(col)
		if !ok {
			continue
		}
		return col + ": min " + summary.Min.String() + ", max " + summary.Max.String(), true
	}
	return "", false
}

// currentPreset snapshots the UI fields into a preset for saving.
func (a *App) currentPreset() *preset.Preset {
	p := preset.Default()
	p.Executable = a.exeEntry.Text
	p.OutputCSV = a.outputEntry.Text
	p.ExtraArgs = a.extraEntry.Text
	for name, pe := range a.paramEntries {
		p.Params[name] = pe.entry.Text
	}
	return p
}

// applyPreset fills the UI fields from a loaded preset. Must be called on
// the UI thread.
func (a *App) applyPreset(p *preset.Preset) {
	if p.Executable != "" {
		a.exeEntry.SetText(p.Executable)
	}
	a.outputEntry.SetText(p.OutputCSV)
	a.extraEntry.SetText(p.ExtraArgs)
	for name, pe := range a.paramEntries {
		if value, ok := p.Params[name]; ok {
			pe.entry.SetText(value)
		}
	}
}
