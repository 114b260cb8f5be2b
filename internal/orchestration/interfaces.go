package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/numlist/internal/digitlist"
)

// ConversionResult is the outcome of converting one file.
type ConversionResult struct {
	// Path is the file that was read.
	Path string
	// Decimal is the value read, rendered back in base 10.
	Decimal string
	// Converted holds the value in the alternate base. It is nil on error.
	Converted *digitlist.List
	Duration  time.Duration
	Err       error
}

// ProgressUpdate reports that the file at Index finished, successfully or not.
type ProgressUpdate struct {
	Index int
	Err   error
}

// ProgressReporter displays batch progress. DisplayProgress runs in its own
// goroutine, consumes updates until the channel is closed, then calls
// wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, progressChan, total, out)
}

// NullProgressReporter drains the channel without output. Quiet mode and
// tests use it.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// DrainChannel reads updates until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}

// ResultPresenter renders batch results.
type ResultPresenter interface {
	PresentBatchTable(results []ConversionResult, out io.Writer)
}
