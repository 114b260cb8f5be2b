package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/numlist/internal/digitlist"
	"github.com/agbru/numlist/internal/metrics"
	"github.com/agbru/numlist/internal/numeric"
	"github.com/agbru/numlist/internal/store"
)

type replFixture struct {
	repl *REPL
	out  *bytes.Buffer
	fs   afero.Fs
}

func newTestREPL(t *testing.T) replFixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	col := metrics.NewCollector()
	a, err := numeric.NewAdapter(3, 8, numeric.WithRecorder(col))
	require.NoError(t, err)
	r := NewREPL(REPLConfig{Adapter: a, Store: store.New(fs, a, nil), Collector: col})
	var out bytes.Buffer
	r.SetOutput(&out)
	return replFixture{repl: r, out: &out, fs: fs}
}

// run feeds script to a fresh session and returns its output and final list.
func run(t *testing.T, script string) (string, *digitlist.List) {
	t.Helper()
	f := newTestREPL(t)
	f.repl.SetInput(strings.NewReader(script))
	f.repl.Start()
	return f.out.String(), f.repl.List()
}

func TestREPLSetAndShow(t *testing.T) {
	t.Parallel()
	out, l := run(t, "set 13\nshow\n")
	assert.Contains(t, out, "111 (base 3) = 13")
	assert.Equal(t, []uint8{1, 1, 1}, l.Digits())
}

func TestREPLBareNumber(t *testing.T) {
	t.Parallel()
	_, l := run(t, "5\n")
	assert.Equal(t, []uint8{1, 2}, l.Digits())
}

func TestREPLNumericCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		script   string
		want     []uint8
		wantBase int
		contains string
	}{
		{"convert", "set 13\nconvert 8\n", []uint8{1, 5}, 8, "15 (base 8) = 13"},
		{"scale", "set 13\nscale\n", []uint8{1, 5}, 8, "15 (base 8) = 13"},
		{"or", "set 5\nor 3\n", []uint8{2, 1}, 3, "21 (base 3) = 7"},
		{"eq true", "set 13\nconvert 8\neq 13\n", []uint8{1, 5}, 8, "true"},
		{"eq false", "set 13\neq 14\n", []uint8{1, 1, 1}, 3, "false"},
		{"convert bad base", "set 13\nconvert 40\n", []uint8{1, 1, 1}, 3, "base must be between 2 and 36"},
		{"or bad operand", "set 13\nor -1\n", []uint8{1, 1, 1}, 3, "not a non-negative decimal integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, l := run(t, tt.script)
			assert.Equal(t, tt.want, l.Digits())
			assert.Equal(t, tt.wantBase, l.Base())
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestREPLListCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		script   string
		want     []uint8
		contains string
	}{
		{"shl", "set 21\nshl\n", []uint8{1, 0, 2}, "102 (base 3)"},
		{"shr", "set 21\nshr\n", []uint8{0, 2, 1}, "021 (base 3)"},
		{"sort asc", "set 21\nsort asc\n", []uint8{0, 1, 2}, "swap(s)"},
		{"sort desc", "set 5\nsort desc\n", []uint8{2, 1}, "1 swap(s)"},
		{"swap", "set 21\nswap 0 2\n", []uint8{0, 1, 2}, "012 (base 3)"},
		{"swap out of range", "set 21\nswap 0 3\n", []uint8{2, 1, 0}, "must both be below 3"},
		{"get", "set 21\nget 1\n", []uint8{2, 1, 0}, "[1] = 1"},
		{"get out of range", "set 21\nget 3\n", []uint8{2, 1, 0}, "get: index 3 out of range for size 3"},
		{"put", "set 21\nput 2 2\n", []uint8{2, 1, 2}, "replaced 0"},
		{"put invalid digit", "set 21\nput 0 36\n", []uint8{2, 1, 0}, "invalid digit"},
		{"insert", "set 21\ninsert 3 1\n", []uint8{2, 1, 0, 1}, "2101 (base 3)"},
		{"append", "set 21\nappend 2\n", []uint8{2, 1, 0, 2}, "2102 (base 3)"},
		{"remove", "set 21\nremove 0\n", []uint8{1, 0}, "removed 2"},
		{"remove at size", "set 21\nremove 3\n", []uint8{2, 1, 0}, "out of range"},
		{"delete", "set 21\ndelete 1\n", []uint8{2, 0}, "20 (base 3)"},
		{"delete missing", "set 21\ndelete 7\n", []uint8{2, 1, 0}, "7 not found"},
		{"find", "set 20\nfind 2\n", []uint8{2, 0, 2}, "first 0, last 2"},
		{"sub", "set 21\nsub 1 3\n", []uint8{2, 1, 0}, "10 (base 3)"},
		{"clear", "set 21\nclear\n", []uint8{}, "0 (base 3) = 0"},
		{"usage", "set 21\nswap 1\n", []uint8{2, 1, 0}, "usage: swap <i> <j>"},
		{"bad number", "set 21\nget x\n", []uint8{2, 1, 0}, `invalid number "x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, l := run(t, tt.script)
			assert.Equal(t, tt.want, l.Digits())
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestREPLLoadSave(t *testing.T) {
	t.Parallel()
	f := newTestREPL(t)
	require.NoError(t, afero.WriteFile(f.fs, "in.txt", []byte("26\n"), 0o644))

	f.repl.SetInput(strings.NewReader("load in.txt\nappend 1\nsave out/result.txt\nload missing.txt\n"))
	f.repl.Start()

	got, err := afero.ReadFile(f.fs, "out/result.txt")
	require.NoError(t, err)
	assert.Equal(t, "79", string(got))
	assert.Contains(t, f.out.String(), "Result saved to: out/result.txt")
	assert.Contains(t, f.out.String(), "missing.txt holds no decimal value")
}

func TestREPLStats(t *testing.T) {
	t.Parallel()
	out, _ := run(t, "set 13\nscale\nstats\n")
	assert.Contains(t, out, "Operations:")
	assert.Contains(t, out, "convert")
	assert.Contains(t, out, "parse")
	assert.Contains(t, out, "Memory:")
}

func TestREPLDisabledCollaborators(t *testing.T) {
	t.Parallel()
	r := NewREPL(REPLConfig{Adapter: numeric.Default()})
	var out bytes.Buffer
	r.SetOutput(&out)
	r.SetInput(strings.NewReader("stats\nsave x\nload x\n"))
	r.Start()
	assert.Contains(t, out.String(), "metrics are disabled")
	assert.Contains(t, out.String(), "file access is disabled")
}

func TestREPLExitAndUnknown(t *testing.T) {
	t.Parallel()
	out, l := run(t, "frobnicate\nhelp\nexit\nset 5\n")
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "Goodbye!")
	assert.True(t, l.IsEmpty(), "commands after exit must not run")
}

func TestREPLLastLineWithoutNewline(t *testing.T) {
	t.Parallel()
	_, l := run(t, "set 13")
	assert.Equal(t, []uint8{1, 1, 1}, l.Digits())
}

func TestREPLSetList(t *testing.T) {
	t.Parallel()
	f := newTestREPL(t)
	f.repl.SetList(digitlist.NewWithDigits(8, 1, 5))
	f.repl.SetInput(strings.NewReader("show\n"))
	f.repl.Start()
	assert.Contains(t, f.out.String(), "15 (base 8) = 13")
}
