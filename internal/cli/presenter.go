package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/numlist/internal/metrics"
	"github.com/agbru/numlist/internal/numeric"
	"github.com/agbru/numlist/internal/orchestration"
	"github.com/agbru/numlist/internal/ui"
)

// CLIProgressReporter shows batch progress with a spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}

// CLIResultPresenter renders batch results as an aligned table.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentBatchTable prints one row per file. Padding is computed on the
// uncolored text so ANSI codes do not break alignment.
func (CLIResultPresenter) PresentBatchTable(results []orchestration.ConversionResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Batch Summary ---\n")

	maxPath, maxDec := len("File"), len("Decimal")
	for _, r := range results {
		maxPath = max(maxPath, len(r.Path))
		maxDec = max(maxDec, len(truncate(r.Decimal)))
	}

	fmt.Fprintf(out, "%sFile%s%s   %sDecimal%s%s   %sConverted%s\n",
		ui.ColorBold(), ui.ColorReset(), padRight("", maxPath-len("File")),
		ui.ColorBold(), ui.ColorReset(), padRight("", maxDec-len("Decimal")),
		ui.ColorBold(), ui.ColorReset())

	for _, r := range results {
		dec := truncate(r.Decimal)
		var status string
		if r.Err != nil {
			status = fmt.Sprintf("%sfailed: %v%s", ui.ColorRed(), r.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s%s%s (base %d, %s)", ui.ColorGreen(), truncate(numeric.Display(r.Converted)), ui.ColorReset(),
				r.Converted.Base(), FormatExecutionDuration(r.Duration))
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorCyan(), r.Path, ui.ColorReset(), padRight("", maxPath-len(r.Path)),
			ui.ColorYellow(), dec, ui.ColorReset(), padRight("", maxDec-len(dec)),
			status)
	}
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// truncate shortens long renderings to their first and last DisplayEdges
// characters.
func truncate(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:]
}

// DisplayOperationStats prints per-operation counters and memory use.
func DisplayOperationStats(stats []metrics.OpStat, mem metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "%sOperations:%s\n", ui.ColorBold(), ui.ColorReset())
	if len(stats) == 0 {
		fmt.Fprintln(out, "  none yet")
	}
	for _, s := range stats {
		fmt.Fprintf(out, "  %s%-8s%s %4d call(s), %s%.0f%s digit(s) produced\n",
			ui.ColorYellow(), s.Op, ui.ColorReset(), s.Count, ui.ColorCyan(), s.TotalDigits, ui.ColorReset())
	}
	fmt.Fprintf(out, "%sMemory:%s heap %d KiB, %d objects, %d GC cycle(s)\n",
		ui.ColorBold(), ui.ColorReset(), mem.HeapAlloc/1024, mem.HeapObjects, mem.NumGC)
	if mem.SystemCPU > 0 || mem.SystemMem > 0 {
		fmt.Fprintf(out, "%sSystem:%s cpu %.1f%%, mem %.1f%%\n",
			ui.ColorBold(), ui.ColorReset(), mem.SystemCPU, mem.SystemMem)
	}
}
