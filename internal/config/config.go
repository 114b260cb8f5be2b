// Package config parses the command line, environment and optional config
// file into an AppConfig.
//
// Resolution order, highest priority first:
//  1. Command-line flags
//  2. Environment variables (NUMLIST_*)
//  3. Config file (--config, YAML/JSON/TOML)
//  4. Defaults
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"

	apperrors "github.com/agbru/numlist/internal/errors"
	"github.com/agbru/numlist/internal/numeric"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "NUMLIST_"

// Operation names accepted by --op.
const (
	OpShow     = "show"
	OpDecimal  = "decimal"
	OpConvert  = "convert"
	OpScale    = "scale"
	OpOr       = "or"
	OpShiftL   = "shl"
	OpShiftR   = "shr"
	OpSortAsc  = "sort-asc"
	OpSortDesc = "sort-desc"
)

// Operations lists every valid --op value.
var Operations = []string{OpShow, OpDecimal, OpConvert, OpScale, OpOr, OpShiftL, OpShiftR, OpSortAsc, OpSortDesc}

const (
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "warn"
	DefaultAddr     = ":8080"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Base is the primary digit base parsed values are stored in.
	Base int
	// AltBase is the target base of the scale operation.
	AltBase int
	// InputFile holds the decimal line to load. Empty means use Value.
	InputFile string
	// OutputFile receives the result as a decimal line. Empty disables saving.
	OutputFile string
	// Value is a decimal number given directly on the command line.
	Value string
	// Op is the one-shot operation to run.
	Op string
	// Operand is the decimal right-hand side of the or operation.
	Operand string
	// ToBase is the target base of the convert operation.
	ToBase int

	REPL  bool
	TUI   bool
	Batch bool
	// Serve starts the HTTP API on Addr.
	Serve bool
	Addr  string
	// Files are the positional arguments; batch mode converts each one.
	Files []string

	Quiet    bool
	Verbose  bool
	NoColor  bool
	LogLevel string
	Timeout  time.Duration

	// ConfigFile is the optional config file path.
	ConfigFile string
}

// Validate checks the configuration for inconsistent or out-of-range values.
func (c AppConfig) Validate() error {
	if !numeric.ValidBase(c.Base) {
		return apperrors.NewConfigError("--base must be between %d and %d, got %d", numeric.MinBase, numeric.MaxBase, c.Base)
	}
	if !numeric.ValidBase(c.AltBase) {
		return apperrors.NewConfigError("--alt-base must be between %d and %d, got %d", numeric.MinBase, numeric.MaxBase, c.AltBase)
	}
	if !slices.Contains(Operations, c.Op) {
		return apperrors.NewConfigError("unknown --op %q (valid: %s)", c.Op, strings.Join(Operations, ", "))
	}
	if c.Op == OpConvert && !numeric.ValidBase(c.ToBase) {
		return apperrors.NewConfigError("--to-base must be between %d and %d for --op convert", numeric.MinBase, numeric.MaxBase)
	}
	if c.Op == OpOr && c.Operand == "" {
		return apperrors.NewConfigError("--op or requires --operand")
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.InputFile != "" && c.Value != "" {
		return apperrors.NewConfigError("--input and --value are mutually exclusive")
	}
	modes := 0
	for _, on := range []bool{c.REPL, c.TUI, c.Batch, c.Serve} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("--repl, --tui, --batch and --serve are mutually exclusive")
	}
	if c.Batch && len(c.Files) == 0 {
		return apperrors.NewConfigError("--batch requires at least one file argument")
	}
	if c.Serve && c.Addr == "" {
		return apperrors.NewConfigError("--serve requires --addr")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig,
// applying the config file and environment layers below the flags.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	return parseConfig(afero.NewOsFs(), programName, args, errWriter)
}

func parseConfig(fsys afero.Fs, programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [files...]\n\n", programName)
		fmt.Fprintln(errWriter, "Stores a non-negative integer as a linked list of digits and operates on it.")
		fmt.Fprintln(errWriter)
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.IntVar(&config.Base, "base", numeric.DefaultPrimaryBase, "Primary digit base (2-36).")
	fs.IntVar(&config.AltBase, "alt-base", numeric.DefaultAlternateBase, "Alternate base used by --op scale (2-36).")
	fs.StringVar(&config.InputFile, "input", "", "File whose first line holds the decimal value.")
	fs.StringVar(&config.InputFile, "i", "", "Shorthand for --input.")
	fs.StringVar(&config.OutputFile, "output", "", "File to save the result to as a decimal line.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.Value, "value", "", "Decimal value to operate on.")
	fs.StringVar(&config.Op, "op", OpShow, "Operation: "+strings.Join(Operations, "|")+".")
	fs.StringVar(&config.Operand, "operand", "", "Decimal right-hand side for --op or.")
	fs.IntVar(&config.ToBase, "to-base", 10, "Target base for --op convert (2-36).")
	fs.BoolVar(&config.REPL, "repl", false, "Start an interactive session.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive list editor.")
	fs.BoolVar(&config.Batch, "batch", false, "Convert every file argument to the alternate base.")
	fs.BoolVar(&config.Serve, "serve", false, "Serve the HTTP API.")
	fs.StringVar(&config.Addr, "addr", DefaultAddr, "Listen address for --serve.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print digits, bases and timings.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error, disabled.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum run time for batch mode.")
	fs.StringVar(&config.ConfigFile, "config", "", "Optional config file (yaml, json or toml).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	config.Files = fs.Args()

	if !isFlagSet(fs, "config") {
		config.ConfigFile = getEnvString("CONFIG", config.ConfigFile)
	}
	if err := applyFileOverrides(&config, fs, fsys); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&config, fs)
	config.Op = strings.ToLower(config.Op)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
