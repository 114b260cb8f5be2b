// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/numlist/internal/digitlist"
	"github.com/agbru/numlist/internal/numeric"
	"github.com/agbru/numlist/internal/ui"
)

// OutputConfig controls how a one-shot result is shown.
type OutputConfig struct {
	// Quiet prints only the decimal value.
	Quiet bool
	// Verbose adds length, hash and timing details.
	Verbose bool
}

// FormatQuietResult returns the decimal value of l on a single line, for
// scripting.
func FormatQuietResult(a *numeric.Adapter, l *digitlist.List) string {
	return a.ToDecimalString(l)
}

// FormatDigits renders l as its digit string followed by its base, such as
// "111 (base 3)".
func FormatDigits(l *digitlist.List) string {
	return fmt.Sprintf("%s (base %d)", truncate(numeric.Display(l)), l.Base())
}

// DisplayListResult prints the outcome of a one-shot operation. label names
// the operation; extra, if non-empty, is printed on its own line (swap
// counts, OR operands).
func DisplayListResult(out io.Writer, a *numeric.Adapter, label string, l *digitlist.List, extra string, duration time.Duration, cfg OutputConfig) {
	if cfg.Quiet {
		fmt.Fprintln(out, FormatQuietResult(a, l))
		return
	}

	fmt.Fprintf(out, "%s%s%s\n", ui.ColorBold(), label, ui.ColorReset())
	fmt.Fprintf(out, "  Digits:  %s%s%s\n", ui.ColorCyan(), FormatDigits(l), ui.ColorReset())
	fmt.Fprintf(out, "  Decimal: %s%s%s\n", ui.ColorGreen(), truncate(a.ToDecimalString(l)), ui.ColorReset())
	if extra != "" {
		fmt.Fprintf(out, "  %s\n", extra)
	}
	if cfg.Verbose {
		fmt.Fprintf(out, "  Length:  %d digit(s)\n", l.Len())
		fmt.Fprintf(out, "  Hash:    %s%016x%s\n", ui.ColorMagenta(), a.Hash(l), ui.ColorReset())
		fmt.Fprintf(out, "  Time:    %s%s%s\n", ui.ColorYellow(), FormatExecutionDuration(duration), ui.ColorReset())
	}
}

// DisplaySaved confirms that a result was written to path.
func DisplaySaved(out io.Writer, path string) {
	fmt.Fprintf(out, "%s✓ Result saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
