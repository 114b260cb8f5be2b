package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/stretchr/testify/assert"

	"github.com/agbru/numlist/internal/orchestration"
)

type mockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *mockSpinner) Start()                     { m.started = true }
func (m *mockSpinner) Stop()                      { m.stopped = true }
func (m *mockSpinner) UpdateSuffix(suffix string) { m.suffix = suffix }

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatExecutionDuration(tt.d))
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "░░░░", progressBar(-1, 4))
	assert.Equal(t, "██░░", progressBar(0.5, 4))
	assert.Equal(t, "████", progressBar(2, 4))
}

func TestProgressState(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(4)
	ps.Update(orchestration.ProgressUpdate{Index: 0})
	ps.Update(orchestration.ProgressUpdate{Index: 2, Err: errors.New("boom")})

	assert.InDelta(t, 0.5, ps.Fraction(), 1e-9)
	assert.Contains(t, ps.Suffix(), "2/4 files")
	assert.Contains(t, ps.Suffix(), "1 failed")
	assert.Zero(t, NewProgressState(0).Fraction())
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	rs := &realSpinner{spinner.New(spinner.CharSets[11], 50*time.Millisecond, spinner.WithWriter(io.Discard))}
	rs.Start()
	rs.UpdateSuffix(" converting")
	rs.Stop()
}

// TestDisplayProgress swaps the package spinner factory and does not run in
// parallel.
func TestDisplayProgress(t *testing.T) {
	original := newSpinner
	t.Cleanup(func() { newSpinner = original })

	mock := &mockSpinner{}
	newSpinner = func(...spinner.Option) Spinner { return mock }

	ch := make(chan orchestration.ProgressUpdate, 3)
	ch <- orchestration.ProgressUpdate{Index: 0}
	ch <- orchestration.ProgressUpdate{Index: 1}
	ch <- orchestration.ProgressUpdate{Index: 2, Err: errors.New("bad")}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	var out bytes.Buffer
	DisplayProgress(&wg, ch, 3, &out)
	wg.Wait()

	assert.True(t, mock.started)
	assert.True(t, mock.stopped)
	assert.Contains(t, mock.suffix, "3/3 files")
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
	assert.Contains(t, out.String(), "1 failed")
}

func TestDisplayProgressNoFiles(t *testing.T) {
	t.Parallel()
	ch := make(chan orchestration.ProgressUpdate)
	close(ch)
	var wg sync.WaitGroup
	wg.Add(1)
	var out bytes.Buffer
	DisplayProgress(&wg, ch, 0, &out)
	wg.Wait()
	assert.Empty(t, out.String())
}
