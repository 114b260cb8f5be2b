package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/numlist/internal/cli"
	"github.com/agbru/numlist/internal/config"
	"github.com/agbru/numlist/internal/digitlist"
	apperrors "github.com/agbru/numlist/internal/errors"
)

// runOperation loads the input value, applies the configured operation,
// prints the result and saves it when an output file is set.
func (a *Application) runOperation(ctx context.Context, out io.Writer, env runEnv) int {
	if err := ctx.Err(); err != nil {
		return apperrors.ExitCodeFor(err)
	}
	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, out)
	}
	start := time.Now()

	l, err := a.loadInput(env)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	result, label, extra, err := a.apply(env, l)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	duration := time.Since(start)

	outputCfg := cli.OutputConfig{Quiet: a.Config.Quiet, Verbose: a.Config.Verbose}
	cli.DisplayListResult(out, env.adapter, label, result, extra, duration, outputCfg)

	if a.Config.OutputFile != "" {
		env.store.SaveList(a.Config.OutputFile, result)
		if !a.Config.Quiet {
			cli.DisplaySaved(out, a.Config.OutputFile)
		}
	}
	if a.Config.Verbose {
		a.displayStats(out, env)
	}
	return apperrors.ExitSuccess
}

func (a *Application) hasInput() bool {
	return a.Config.InputFile != "" || a.Config.Value != "" || len(a.Config.Files) == 1
}

// loadInput resolves the input value from --input, --value or a single file
// argument, in that order. A source without a decimal value is an
// InputError.
func (a *Application) loadInput(env runEnv) (*digitlist.List, error) {
	path := a.Config.InputFile
	if path == "" && a.Config.Value == "" && len(a.Config.Files) == 1 {
		path = a.Config.Files[0]
	}

	switch {
	case path != "":
		l, ok := env.store.LoadList(path)
		if !ok || l.IsEmpty() {
			return nil, apperrors.InputError{Source: path}
		}
		return l, nil
	case a.Config.Value != "":
		l := env.adapter.ParseDecimal(a.Config.Value)
		if l.IsEmpty() {
			return nil, apperrors.InputError{Source: "--value"}
		}
		return l, nil
	default:
		return nil, apperrors.InputError{Source: "input"}
	}
}

// apply runs the configured operation on l and returns the result, its
// display label and an optional detail line.
func (a *Application) apply(env runEnv, l *digitlist.List) (*digitlist.List, string, string, error) {
	ad := env.adapter
	switch a.Config.Op {
	case config.OpDecimal:
		return l, "Decimal value", "", nil
	case config.OpConvert:
		return ad.ConvertBase(l, a.Config.ToBase), fmt.Sprintf("Converted to base %d", a.Config.ToBase), "", nil
	case config.OpScale:
		return ad.ChangeScale(l), fmt.Sprintf("Scaled to base %d", ad.Alternate()), "", nil
	case config.OpOr:
		operand := ad.ParseDecimal(a.Config.Operand)
		if operand.IsEmpty() {
			return nil, "", "", apperrors.InputError{Source: "--operand"}
		}
		return ad.BitwiseOr(l, operand), "Bitwise OR", "Operand: " + ad.ToDecimalString(operand), nil
	case config.OpShiftL:
		l.ShiftLeft()
		return l, "Rotated left", "", nil
	case config.OpShiftR:
		l.ShiftRight()
		return l, "Rotated right", "", nil
	case config.OpSortAsc:
		n := l.SortAscending()
		return l, "Sorted ascending", fmt.Sprintf("Swaps:   %d", n), nil
	case config.OpSortDesc:
		n := l.SortDescending()
		return l, "Sorted descending", fmt.Sprintf("Swaps:   %d", n), nil
	default:
		return l, "Value", "", nil
	}
}
