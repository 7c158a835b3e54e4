package runlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// RunLog persists the console capture of one simulation run to a timestamped
// file. Lines are handed to a background writer through a channel so the
// process-reader goroutine is not tied to disk latency.
type RunLog struct {
	path     string
	file     *os.File
	writer   *bufio.Writer
	lineChan chan string
	doneChan chan struct{}
	log      *logrus.Logger
}

// New creates the log directory if needed and opens a new run log file
// named after the current time.
func New(dir string, log *logrus.Logger) (*RunLog, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("run_%s.log", time.Now().Format("20060102_150405")))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	l := &RunLog{
		path:     path,
		file:     file,
		writer:   bufio.NewWriter(file),
		lineChan: make(chan string, 1000),
		doneChan: make(chan struct{}),
	}
	l.log = log

	go l.runWriter()

	return l, nil
}

// Path returns the location of the log file.
func (l *RunLog) Path() string {
	return l.path
}

// WriteLine queues one output line for the background writer.
func (l *RunLog) WriteLine(line string) {
	l.lineChan <- line
}

// runWriter drains the line channel until Finish closes it.
func (l *RunLog) runWriter() {
	defer close(l.doneChan)
	for line := range l.lineChan {
		if _, err := l.writer.WriteString(line + "\n"); err != nil {
			l.log.WithError(err).Warn("failed to write run log line")
		}
	}
}

// Finish waits for queued lines to be written, appends the run summary,
// flushes and closes the file. The RunLog must not be used afterwards.
func (l *RunLog) Finish(summary string) error {
	close(l.lineChan)
	<-l.doneChan

	if summary != "" {
		fmt.Fprintf(l.writer, "--- %s\n", summary)
	}
	if err := l.writer.Flush(); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to flush run log: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close run log: %w", err)
	}
	return nil
}
