package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/numlist/internal/cli"
	"github.com/agbru/numlist/internal/config"
	"github.com/agbru/numlist/internal/digitlist"
	apperrors "github.com/agbru/numlist/internal/errors"
	"github.com/agbru/numlist/internal/logging"
	"github.com/agbru/numlist/internal/metrics"
	"github.com/agbru/numlist/internal/numeric"
	"github.com/agbru/numlist/internal/orchestration"
	"github.com/agbru/numlist/internal/server"
	"github.com/agbru/numlist/internal/store"
	"github.com/agbru/numlist/internal/tui"
	"github.com/agbru/numlist/internal/ui"
)

const tracerName = "github.com/agbru/numlist/internal/app"

// Application represents the numlist application instance.
type Application struct {
	Config    config.AppConfig
	Fs        afero.Fs
	In        io.Reader
	ErrWriter io.Writer
	Collector *metrics.Collector
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFs sets the filesystem used to load and save values.
func WithFs(fs afero.Fs) AppOption {
	return func(a *Application) { a.Fs = fs }
}

// WithInput sets the command source of the interactive session.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Fs == nil {
		app.Fs = afero.NewOsFs()
	}
	if app.In == nil {
		app.In = os.Stdin
	}
	if app.Collector == nil {
		app.Collector = metrics.NewCollector()
	}

	programName := "numlist"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if err := logging.SetLevel(a.Config.LogLevel); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	ui.InitTheme(a.Config.NoColor)

	logger := logging.NewConsoleLogger(a.ErrWriter, "numlist", a.Config.NoColor)
	adapter, err := numeric.NewAdapter(a.Config.Base, a.Config.AltBase,
		numeric.WithRecorder(a.Collector), numeric.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	env := runEnv{
		adapter: adapter,
		store:   store.New(a.Fs, adapter, logger),
		logger:  logger,
	}

	mode := a.mode()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "numlist.run",
		trace.WithAttributes(attribute.String("mode", mode), attribute.String("op", a.Config.Op)))
	defer span.End()

	var code int
	switch mode {
	case "repl":
		code = a.runREPL(out, env)
	case "tui":
		code = a.runTUI(ctx, env)
	case "batch":
		code = a.runBatch(ctx, out, env)
	case "serve":
		code = a.runServe(ctx, env)
	default:
		code = a.runOperation(ctx, out, env)
	}

	span.SetAttributes(attribute.Int("exit_code", code))
	if code != apperrors.ExitSuccess {
		span.SetStatus(codes.Error, "run failed")
	}
	return code
}

// runEnv carries the collaborators built for one run.
type runEnv struct {
	adapter *numeric.Adapter
	store   *store.Store
	logger  logging.Logger
}

func (a *Application) mode() string {
	switch {
	case a.Config.REPL:
		return "repl"
	case a.Config.TUI:
		return "tui"
	case a.Config.Batch:
		return "batch"
	case a.Config.Serve:
		return "serve"
	default:
		return "op"
	}
}

// runREPL starts the interactive session, seeded with the input value when
// one is given.
func (a *Application) runREPL(out io.Writer, env runEnv) int {
	repl := cli.NewREPL(cli.REPLConfig{
		Adapter:   env.adapter,
		Store:     env.store,
		Collector: a.Collector,
		Logger:    env.logger,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	if a.hasInput() {
		l, err := a.loadInput(env)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitCodeFor(err)
		}
		repl.SetList(l)
	}
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive list editor and saves the edited list on
// exit when an output file is configured.
func (a *Application) runTUI(ctx context.Context, env runEnv) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var initial *digitlist.List
	if a.hasInput() {
		l, err := a.loadInput(env)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitCodeFor(err)
		}
		initial = l
	}
	opts := tui.Options{Store: env.store, OutputFile: a.Config.OutputFile}
	if a.Config.Operand != "" {
		opts.Operand = env.adapter.ParseDecimal(a.Config.Operand)
	}

	edited, code := tui.Run(ctx, initial, env.adapter, opts, Version)
	if code == apperrors.ExitSuccess && a.Config.OutputFile != "" {
		env.store.SaveList(a.Config.OutputFile, edited)
	}
	return code
}

// runBatch converts every file argument to the alternate base concurrently.
func (a *Application) runBatch(ctx context.Context, out io.Writer, env runEnv) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, out)
	}

	var reporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		reporter = orchestration.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{}
	}

	batch := orchestration.Batch{Store: env.store, Adapter: env.adapter}
	results := batch.ExecuteConversions(ctx, a.Config.Files, reporter, progressOut)
	code := orchestration.AnalyzeResults(results, cli.CLIResultPresenter{}, out)

	if a.Config.Verbose {
		a.displayStats(out, env)
	}
	return code
}

// runServe serves the HTTP API until the context is canceled or a signal
// arrives.
func (a *Application) runServe(ctx context.Context, env runEnv) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv, err := server.New(server.DefaultConfig(a.Config.Addr), env.adapter, a.Collector, env.logger)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) displayStats(out io.Writer, env runEnv) {
	stats, err := a.Collector.Stats()
	if err != nil {
		env.logger.Error("metrics unavailable", err)
		return
	}
	cli.DisplayOperationStats(stats, metrics.ReadMemory(), out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
