package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/numlist/internal/config"
	"github.com/agbru/numlist/internal/ui"
)

// PrintExecutionConfig shows the resolved configuration in verbose mode.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation %s%s%s, primary base %s%d%s, alternate base %s%d%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(),
		ui.ColorCyan(), cfg.Base, ui.ColorReset(),
		ui.ColorCyan(), cfg.AltBase, ui.ColorReset())
	source := "--value"
	switch {
	case cfg.Batch:
		source = fmt.Sprintf("%d file(s)", len(cfg.Files))
	case cfg.InputFile != "":
		source = cfg.InputFile
	case cfg.Value == "" && len(cfg.Files) == 1:
		source = cfg.Files[0]
	}
	fmt.Fprintf(out, "Input from %s%s%s", ui.ColorYellow(), source, ui.ColorReset())
	if cfg.OutputFile != "" {
		fmt.Fprintf(out, ", saving to %s%s%s", ui.ColorYellow(), cfg.OutputFile, ui.ColorReset())
	}
	fmt.Fprintln(out, ".")
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}
