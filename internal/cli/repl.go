// Package cli holds the line-oriented front ends: one-shot result display,
// batch progress and results, and the interactive session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/agbru/numlist/internal/digitlist"
	"github.com/agbru/numlist/internal/logging"
	"github.com/agbru/numlist/internal/metrics"
	"github.com/agbru/numlist/internal/numeric"
	"github.com/agbru/numlist/internal/store"
	"github.com/agbru/numlist/internal/ui"
)

// REPLConfig holds the collaborators of an interactive session.
type REPLConfig struct {
	Adapter *numeric.Adapter
	// Store serves load and save. Nil disables both commands.
	Store *store.Store
	// Collector serves the stats command. Nil disables it.
	Collector *metrics.Collector
	Logger    logging.Logger
}

// REPL is an interactive session editing one digit list.
type REPL struct {
	config REPLConfig
	mu     sync.Mutex
	list   *digitlist.List
	in     io.Reader
	out    io.Writer
}

// NewREPL returns a session whose current list is empty in the adapter's
// primary base.
func NewREPL(config REPLConfig) *REPL {
	if config.Logger == nil {
		config.Logger = logging.NewNopLogger()
	}
	return &REPL{
		config: config,
		list:   digitlist.New(config.Adapter.Primary()),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets the command source.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets the output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// SetList replaces the current list.
func (r *REPL) SetList(l *digitlist.List) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = l
}

// List returns a copy of the current list.
func (r *REPL) List() *digitlist.List {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list.Clone()
}

// Start reads commands until exit or end of input.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"digits> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %sDigit List - Interactive Mode%s            %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

var replHelp = [][2]string{
	{"set <decimal>", "Parse a decimal value into the primary base (or just type the number)"},
	{"show", "Show digits and decimal value"},
	{"convert <base>", "Convert the list to another base"},
	{"scale", "Convert the list to the alternate base"},
	{"or <decimal>", "Bitwise OR with a decimal value"},
	{"eq <decimal>", "Compare the value with a decimal value"},
	{"shl / shr", "Rotate digits left or right"},
	{"sort asc|desc", "Sort digits in place"},
	{"swap <i> <j>", "Exchange two digits"},
	{"get <i>", "Show the digit at an index"},
	{"put <i> <d>", "Replace the digit at an index"},
	{"insert <i> <d>", "Insert a digit before an index"},
	{"append <d>", "Append a digit"},
	{"remove <i>", "Remove the digit at an index"},
	{"delete <d>", "Remove the first occurrence of a digit"},
	{"find <d>", "Show the first and last index of a digit"},
	{"sub <from> <to>", "Show the digits in [from, to)"},
	{"clear", "Remove every digit"},
	{"load <path>", "Read a decimal line from a file"},
	{"save <path>", "Write the decimal value to a file"},
	{"stats", "Show operation counters"},
	{"help", "Display this help"},
	{"exit / quit", "Leave interactive mode"},
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, h := range replHelp {
		fmt.Fprintf(r.out, "  %s%-16s%s - %s\n", ui.ColorYellow(), h[0], ui.ColorReset(), h[1])
	}
}

// processCommand runs one command and reports whether the session goes on.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	switch cmd {
	case "set":
		err = r.cmdSet(args)
	case "show", "s":
		r.show()
	case "convert", "conv":
		err = r.cmdConvert(args)
	case "scale":
		r.list = r.config.Adapter.ChangeScale(r.list)
		r.show()
	case "or":
		err = r.cmdOr(args)
	case "eq":
		err = r.cmdEq(args)
	case "shl":
		r.list.ShiftLeft()
		r.show()
	case "shr":
		r.list.ShiftRight()
		r.show()
	case "sort":
		err = r.cmdSort(args)
	case "swap":
		err = r.cmdSwap(args)
	case "get":
		err = r.cmdGet(args)
	case "put":
		err = r.cmdPut(args)
	case "insert", "ins":
		err = r.cmdInsert(args)
	case "append", "add":
		err = r.cmdAppend(args)
	case "remove", "rm":
		err = r.cmdRemove(args)
	case "delete", "del":
		err = r.cmdDelete(args)
	case "find":
		err = r.cmdFind(args)
	case "sub":
		err = r.cmdSub(args)
	case "clear":
		r.list.Clear()
		r.show()
	case "load":
		err = r.cmdLoad(args)
	case "save":
		err = r.cmdSave(args)
	case "stats":
		err = r.cmdStats()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if isDecimal(cmd) {
			err = r.cmdSet([]string{cmd})
			break
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	if err != nil {
		r.config.Logger.Debug("repl command failed", logging.String("command", cmd), logging.Err(err))
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return true
}

var errUsage = errors.New("usage")

func usage(form string) error { return fmt.Errorf("%w: %s", errUsage, form) }

func isDecimal(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

func (r *REPL) show() {
	fmt.Fprintf(r.out, "  %s = %s%s%s\n", FormatDigits(r.list), ui.ColorGreen(),
		truncate(r.config.Adapter.ToDecimalString(r.list)), ui.ColorReset())
}

func (r *REPL) parseValue(text string) (*digitlist.List, error) {
	l := r.config.Adapter.ParseDecimal(text)
	if l.IsEmpty() {
		return nil, fmt.Errorf("%q is not a non-negative decimal integer", text)
	}
	return l, nil
}

func (r *REPL) cmdSet(args []string) error {
	if len(args) != 1 {
		return usage("set <decimal>")
	}
	l, err := r.parseValue(args[0])
	if err != nil {
		return err
	}
	r.list = l
	r.show()
	return nil
}

func (r *REPL) cmdConvert(args []string) error {
	if len(args) != 1 {
		return usage("convert <base>")
	}
	base, err := strconv.Atoi(args[0])
	if err != nil || !numeric.ValidBase(base) {
		return fmt.Errorf("base must be between %d and %d", numeric.MinBase, numeric.MaxBase)
	}
	r.list = r.config.Adapter.ConvertBase(r.list, base)
	r.show()
	return nil
}

func (r *REPL) cmdOr(args []string) error {
	if len(args) != 1 {
		return usage("or <decimal>")
	}
	operand, err := r.parseValue(args[0])
	if err != nil {
		return err
	}
	r.list = r.config.Adapter.BitwiseOr(r.list, operand)
	r.show()
	return nil
}

func (r *REPL) cmdEq(args []string) error {
	if len(args) != 1 {
		return usage("eq <decimal>")
	}
	other, err := r.parseValue(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "  %v\n", r.config.Adapter.Equal(r.list, other))
	return nil
}

func (r *REPL) cmdSort(args []string) error {
	if len(args) != 1 {
		return usage("sort asc|desc")
	}
	var swaps int
	switch strings.ToLower(args[0]) {
	case "asc":
		swaps = r.list.SortAscending()
	case "desc":
		swaps = r.list.SortDescending()
	default:
		return usage("sort asc|desc")
	}
	r.show()
	fmt.Fprintf(r.out, "  %d swap(s)\n", swaps)
	return nil
}

func (r *REPL) cmdSwap(args []string) error {
	ints, err := parseInts(args, 2, "swap <i> <j>")
	if err != nil {
		return err
	}
	if !r.list.Swap(ints[0], ints[1]) {
		return fmt.Errorf("swap: indexes %d and %d must both be below %d", ints[0], ints[1], r.list.Len())
	}
	r.show()
	return nil
}

func (r *REPL) cmdGet(args []string) error {
	ints, err := parseInts(args, 1, "get <i>")
	if err != nil {
		return err
	}
	d, err := r.list.Get(ints[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "  [%d] = %d\n", ints[0], d)
	return nil
}

func (r *REPL) cmdPut(args []string) error {
	ints, err := parseInts(args, 2, "put <i> <d>")
	if err != nil {
		return err
	}
	d, err := toDigit(ints[1])
	if err != nil {
		return err
	}
	old, err := r.list.Set(ints[0], d)
	if err != nil {
		return err
	}
	r.show()
	fmt.Fprintf(r.out, "  replaced %d\n", old)
	return nil
}

func (r *REPL) cmdInsert(args []string) error {
	ints, err := parseInts(args, 2, "insert <i> <d>")
	if err != nil {
		return err
	}
	d, err := toDigit(ints[1])
	if err != nil {
		return err
	}
	if err := r.list.Insert(ints[0], d); err != nil {
		return err
	}
	r.show()
	return nil
}

func (r *REPL) cmdAppend(args []string) error {
	ints, err := parseInts(args, 1, "append <d>")
	if err != nil {
		return err
	}
	d, err := toDigit(ints[0])
	if err != nil {
		return err
	}
	if err := r.list.Append(d); err != nil {
		return err
	}
	r.show()
	return nil
}

func (r *REPL) cmdRemove(args []string) error {
	ints, err := parseInts(args, 1, "remove <i>")
	if err != nil {
		return err
	}
	d, err := r.list.RemoveAt(ints[0])
	if err != nil {
		return err
	}
	r.show()
	fmt.Fprintf(r.out, "  removed %d\n", d)
	return nil
}

func (r *REPL) cmdDelete(args []string) error {
	ints, err := parseInts(args, 1, "delete <d>")
	if err != nil {
		return err
	}
	d, err := toDigit(ints[0])
	if err != nil {
		return err
	}
	if !r.list.RemoveValue(d) {
		fmt.Fprintf(r.out, "  %d not found\n", d)
		return nil
	}
	r.show()
	return nil
}

func (r *REPL) cmdFind(args []string) error {
	ints, err := parseInts(args, 1, "find <d>")
	if err != nil {
		return err
	}
	d, err := toDigit(ints[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "  first %d, last %d\n", r.list.IndexOf(d), r.list.LastIndexOf(d))
	return nil
}

func (r *REPL) cmdSub(args []string) error {
	ints, err := parseInts(args, 2, "sub <from> <to>")
	if err != nil {
		return err
	}
	sub, err := r.list.SubList(ints[0], ints[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "  %s\n", FormatDigits(sub))
	return nil
}

func (r *REPL) cmdLoad(args []string) error {
	if len(args) != 1 {
		return usage("load <path>")
	}
	if r.config.Store == nil {
		return errors.New("file access is disabled")
	}
	l, ok := r.config.Store.LoadList(args[0])
	if !ok || l.IsEmpty() {
		return fmt.Errorf("%s holds no decimal value", args[0])
	}
	r.list = l
	r.show()
	return nil
}

func (r *REPL) cmdSave(args []string) error {
	if len(args) != 1 {
		return usage("save <path>")
	}
	if r.config.Store == nil {
		return errors.New("file access is disabled")
	}
	r.config.Store.SaveList(args[0], r.list)
	DisplaySaved(r.out, args[0])
	return nil
}

func (r *REPL) cmdStats() error {
	if r.config.Collector == nil {
		return errors.New("metrics are disabled")
	}
	stats, err := r.config.Collector.Stats()
	if err != nil {
		return err
	}
	DisplayOperationStats(stats, metrics.ReadMemory(), r.out)
	return nil
}

func parseInts(args []string, n int, form string) ([]int, error) {
	if len(args) != n {
		return nil, usage(form)
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func toDigit(v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("digit %d is out of range", v)
	}
	return uint8(v), nil
}
