package orchestration

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/numlist/internal/errors"
	"github.com/agbru/numlist/internal/numeric"
	"github.com/agbru/numlist/internal/store"
)

// ProgressBufferMultiplier sizes the progress channel relative to the number
// of files so workers rarely block on a slow display.
const ProgressBufferMultiplier = 2

// Batch converts decimal files to the adapter's alternate base.
type Batch struct {
	Store   *store.Store
	Adapter *numeric.Adapter
	// Workers bounds concurrent conversions. Zero means runtime.NumCPU().
	Workers int
}

// ExecuteConversions converts every path concurrently. Each worker owns the
// lists it builds. Results are returned in path order; a failed or canceled
// conversion is reported in its result rather than aborting the others.
func (b Batch) ExecuteConversions(ctx context.Context, paths []string, reporter ProgressReporter, out io.Writer) []ConversionResult {
	results := make([]ConversionResult, len(paths))
	progressChan := make(chan ProgressUpdate, len(paths)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(paths), out)

	var g errgroup.Group
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			results[i] = b.convert(ctx, path)
			progressChan <- ProgressUpdate{Index: i, Err: results[i].Err}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()
	return results
}

func (b Batch) convert(ctx context.Context, path string) ConversionResult {
	start := time.Now()
	res := ConversionResult{Path: path}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	l, ok := b.Store.LoadList(path)
	if !ok || l.IsEmpty() {
		res.Err = apperrors.InputError{Source: path}
		res.Duration = time.Since(start)
		return res
	}
	res.Decimal = b.Adapter.ToDecimalString(l)
	res.Converted = b.Adapter.ChangeScale(l)
	res.Duration = time.Since(start)
	return res
}

// AnalyzeResults sorts results with failures last, presents them and
// returns the exit code of the batch: success when every file converted,
// otherwise the code of the first failure.
func AnalyzeResults(results []ConversionResult, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		return (results[i].Err == nil) && (results[j].Err != nil)
	})
	presenter.PresentBatchTable(results, out)

	failed := 0
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
		}
	}
	if failed == 0 {
		fmt.Fprintf(out, "\nBatch status: %d file(s) converted.\n", len(results))
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "\nBatch status: %d of %d file(s) failed.\n", failed, len(results))
	return apperrors.ExitCodeFor(firstErr)
}
