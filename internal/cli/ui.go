package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/numlist/internal/orchestration"
	"github.com/agbru/numlist/internal/ui"
)

// FormatExecutionDuration shows microseconds below a millisecond,
// milliseconds below a second, and the default representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the length from which a rendered value is shortened
	// in standard output.
	TruncationLimit = 100
	// DisplayEdges is how many characters of each end of a truncated value
	// are kept.
	DisplayEdges = 25
	// ProgressRefreshRate is the spinner frame interval.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth is the width of the batch progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix sets the text shown after the spinner.
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)}
}

// ProgressState counts finished and failed files of a batch.
type ProgressState struct {
	total  int
	done   int
	failed int
}

// NewProgressState tracks a batch of total files.
func NewProgressState(total int) *ProgressState {
	return &ProgressState{total: total}
}

// Update records one finished file.
func (ps *ProgressState) Update(u orchestration.ProgressUpdate) {
	ps.done++
	if u.Err != nil {
		ps.failed++
	}
}

// Fraction returns the finished share of the batch in [0, 1].
func (ps *ProgressState) Fraction() float64 {
	if ps.total == 0 {
		return 0
	}
	return float64(ps.done) / float64(ps.total)
}

// Suffix renders the spinner text.
func (ps *ProgressState) Suffix() string {
	s := fmt.Sprintf(" %s %d/%d files", progressBar(ps.Fraction(), ProgressBarWidth), ps.done, ps.total)
	if ps.failed > 0 {
		s += fmt.Sprintf(", %s%d failed%s", ui.ColorRed(), ps.failed, ui.ColorReset())
	}
	return s
}

// DisplayProgress shows a spinner with a progress bar until progressChan is
// closed. It implements orchestration.ProgressReporter through
// CLIProgressReporter.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	if total <= 0 {
		orchestration.DrainChannel(progressChan)
		return
	}

	state := NewProgressState(total)
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(state.Suffix())
	s.Start()
	defer s.Stop()

	for u := range progressChan {
		state.Update(u)
		s.UpdateSuffix(state.Suffix())
	}
	fmt.Fprintf(out, "\r%s\n", strings.TrimSpace(state.Suffix()))
}

func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	return strings.Repeat("█", count) + strings.Repeat("░", length-count)
}
