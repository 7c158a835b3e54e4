package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"antlauncher/internal/launcher"
	"antlauncher/internal/preset"
	"antlauncher/internal/results"
	"antlauncher/internal/runlog"
)

var (
	exePath    string
	outputCSV  string
	presetFile string
	extraArgs  string
	logDir     string
	debug      bool
	paramFlags map[string]*string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "antlauncher",
		Short: "Launcher for the ant colony simulation",
		Long:  "Runs the external ant simulation binary with the given parameters, streams its console output, and loads the resulting CSV table",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the simulation",
		Long:  "Launches the simulation executable, streams its output to the terminal, and prints the result table on success",
		RunE:  runSimulation,
	}

	runCmd.Flags().StringVar(&exePath, "exe", "", "path to the simulation executable")
	runCmd.Flags().StringVar(&outputCSV, "output", "ground_data.csv", "output CSV path passed to the simulation")
	runCmd.Flags().StringVar(&presetFile, "preset", "", "launch preset file (YAML)")
	runCmd.Flags().StringVar(&extraArgs, "extra", "", "extra arguments appended to the command line")
	runCmd.Flags().StringVar(&logDir, "log", "logs", "directory for run log files")
	runCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	// One flag per simulation parameter so presets can be overridden ad hoc.
	paramFlags = make(map[string]*string)
	for _, s := range launcher.Spec() {
		paramFlags[s.Name] = runCmd.Flags().String(s.Name, s.Default, s.Label)
	}

	var resultsCmd = &cobra.Command{
		Use:   "results <file>",
		Short: "Print a result table",
		Long:  "Loads a simulation result CSV and prints the table with per-column numeric summaries",
		Args:  cobra.ExactArgs(1),
		RunE:  printResults,
	}

	rootCmd.AddCommand(runCmd, resultsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	// Start from the preset (or defaults) and let explicit flags win.
	var p *preset.Preset
	if presetFile != "" {
		loaded, err := preset.Load(presetFile)
		if err != nil {
			return fmt.Errorf("failed to load preset: %w", err)
		}
		p = loaded
	} else {
		p = preset.Default()
	}

	if cmd.Flags().Changed("exe") || p.Executable == "" {
		p.Executable = exePath
	}
	if cmd.Flags().Changed("output") || p.OutputCSV == "" {
		p.OutputCSV = outputCSV
	}
	if cmd.Flags().Changed("extra") {
		p.ExtraArgs = extraArgs
	}
	for name, value := range paramFlags {
		if cmd.Flags().Changed(name) {
			p.Params[name] = *value
		}
	}

	command, err := launcher.BuildCommand(p.Executable, p.ParamList(), p.ExtraArgs, p.OutputCSV)
	if err != nil {
		return err
	}

	runLog, err := runlog.New(logDir, log)
	if err != nil {
		return err
	}

	fmt.Printf("Running: %s\n", command)
	fmt.Printf("Run log: %s\n\n", runLog.Path())

	// Ctrl+C handling is a terminal convenience; the GUI offers no kill path.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Printf("\nInterrupt received, stopping...\n")
		cancel()
	}()

	runner := launcher.NewRunner(log)
	runErr := runner.Run(ctx, command, func(line string) {
		fmt.Println(line)
		runLog.WriteLine(line)
	})

	summary := "exit: success"
	if runErr != nil {
		summary = fmt.Sprintf("exit: %v", runErr)
	}
	if err := runLog.Finish(summary); err != nil {
		log.WithError(err).Warn("failed to finalize run log")
	}

	if runErr != nil {
		var exitErr *launcher.ExitError
		if errors.As(runErr, &exitErr) {
			return fmt.Errorf("simulation failed with exit code %d", exitErr.Code)
		}
		return runErr
	}

	fmt.Printf("\nSimulation finished, loading %s\n\n", p.OutputCSV)

	table, err := results.Load(p.OutputCSV)
	if err != nil {
		return fmt.Errorf("simulation succeeded but results could not be loaded: %w", err)
	}

	printTable(table)
	printSummaries(table)
	return nil
}

func printResults(cmd *cobra.Command, args []string) error {
	table, err := results.Load(args[0])
	if err != nil {
		return err
	}

	printTable(table)
	printSummaries(table)
	return nil
}

func printTable(table *results.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, col := range table.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)

	for _, row := range table.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	fmt.Printf("\n%d rows, %d columns\n", len(table.Rows), len(table.Columns))
}

func printSummaries(table *results.Table) {
	printed := false
	for _, col := range table.Columns {
		summary, ok := table.Summarize(col)
		if !ok {
			continue
		}
		if !printed {
			fmt.Printf("\nNumeric columns:\n")
			printed = true
		}
		fmt.Printf("  %s: min=%s max=%s mean=%s (n=%d)\n",
			summary.Column, summary.Min, summary.Max, summary.Mean, summary.Count)
	}
}
