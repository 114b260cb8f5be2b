package numeric

import (
	"iter"
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/agbru/numlist/internal/digitlist"
	apperrors "github.com/agbru/numlist/internal/errors"
	"github.com/agbru/numlist/internal/logging"
)

const (
	// DefaultPrimaryBase is the base parsed values and OR results use.
	DefaultPrimaryBase = 3
	// DefaultAlternateBase is the target base of ChangeScale.
	DefaultAlternateBase = 8
	// MinBase and MaxBase bound every base the adapter accepts; MaxBase keeps
	// each digit renderable as a single character.
	MinBase = 2
	MaxBase = int(digitlist.MaxDigit) + 1
)

// Operation names passed to the Recorder.
const (
	OpParse   = "parse"
	OpDecimal = "decimal"
	OpConvert = "convert"
	OpOr      = "or"
)

// Sequence is any ordered run of digits, most significant first.
// *digitlist.List satisfies it.
type Sequence interface {
	Len() int
	All() iter.Seq[uint8]
}

// Based is implemented by sequences that know their own base.
type Based interface {
	Base() int
}

// Adapter performs numeric operations over digit lists.
type Adapter struct {
	primary   int
	alternate int
	recorder  Recorder
	logger    logging.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithRecorder sets the Recorder notified of every operation.
func WithRecorder(r Recorder) Option {
	return func(a *Adapter) { a.recorder = r }
}

// WithLogger sets the logger used to report rejected input at debug level.
func WithLogger(l logging.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// NewAdapter returns an adapter using the given primary and alternate bases.
// Both must lie in [MinBase, MaxBase].
func NewAdapter(primary, alternate int, opts ...Option) (*Adapter, error) {
	if !ValidBase(primary) {
		return nil, apperrors.ValidationError{Field: "primary base", Message: baseRangeMessage}
	}
	if !ValidBase(alternate) {
		return nil, apperrors.ValidationError{Field: "alternate base", Message: baseRangeMessage}
	}
	a := &Adapter{
		primary:   primary,
		alternate: alternate,
		recorder:  nopRecorder{},
		logger:    logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Default returns an adapter with the default ternary primary base and
// octal alternate base.
func Default() *Adapter {
	a, _ := NewAdapter(DefaultPrimaryBase, DefaultAlternateBase)
	return a
}

const baseRangeMessage = "must be between 2 and 36"

// ValidBase reports whether base is usable for digit expansion.
func ValidBase(base int) bool { return base >= MinBase && base <= MaxBase }

// Primary returns the primary base.
func (a *Adapter) Primary() int { return a.primary }

// Alternate returns the alternate base.
func (a *Adapter) Alternate() int { return a.alternate }

// ParseDecimal builds a list in the primary base from decimal text. Text
// must be one or more ASCII digits; anything else, including a sign or
// surrounding space, yields an empty list.
func (a *Adapter) ParseDecimal(text string) *digitlist.List {
	v, ok := parseDecimal(text)
	if !ok {
		a.logger.Debug("rejected decimal input", logging.Int("length", len(text)))
		return digitlist.New(a.primary)
	}
	l := fromValue(v, a.primary)
	a.recorder.Observe(OpParse, l.Len())
	return l
}

// ToDecimalString renders the value of s in base 10. An empty sequence
// renders as "0".
func (a *Adapter) ToDecimalString(s Sequence) string {
	v := a.Value(s)
	out := v.String()
	a.recorder.Observe(OpDecimal, len(out))
	return out
}

// ConvertBase returns a new list holding the value of s in newBase. A zero
// or empty input yields the single digit 0. A base outside [MinBase,
// MaxBase] yields an empty list tagged with that base.
func (a *Adapter) ConvertBase(s Sequence, newBase int) *digitlist.List {
	if !ValidBase(newBase) {
		a.logger.Debug("rejected target base", logging.Int("base", newBase))
		return digitlist.New(newBase)
	}
	l := fromValue(a.Value(s), newBase)
	a.recorder.Observe(OpConvert, l.Len())
	return l
}

// ChangeScale converts l to the alternate base. Unlike ConvertBase, an empty
// list stays empty.
func (a *Adapter) ChangeScale(l *digitlist.List) *digitlist.List {
	if isNil(l) || l.IsEmpty() {
		return digitlist.New(a.alternate)
	}
	return a.ConvertBase(l, a.alternate)
}

// BitwiseOr returns, in the primary base, the bitwise OR of the values of x
// and y. Operands that do not report their own base are read in the primary
// base. A nil operand yields an empty list.
func (a *Adapter) BitwiseOr(x, y Sequence) *digitlist.List {
	if isNil(x) || isNil(y) {
		return digitlist.New(a.primary)
	}
	v := new(big.Int).Or(a.Value(x), a.Value(y))
	l := fromValue(v, a.primary)
	a.recorder.Observe(OpOr, l.Len())
	return l
}

// Value returns the integer s denotes. A nil or empty sequence is zero.
func (a *Adapter) Value(s Sequence) *big.Int {
	if isNil(s) || s.Len() == 0 {
		return new(big.Int)
	}
	return accumulate(s.All(), a.baseOf(s))
}

// Equal reports whether x and y denote the same integer, whatever their base
// or number of leading zeros.
func (a *Adapter) Equal(x, y Sequence) bool {
	return a.Value(x).Cmp(a.Value(y)) == 0
}

// Hash returns a hash of the integer s denotes, consistent with Equal.
func (a *Adapter) Hash(s Sequence) uint64 {
	return xxhash.Sum64(a.Value(s).Bytes())
}

// Display concatenates the digits of s head to tail using 0-9 then A-Z.
// An empty sequence displays as "0".
func Display(s Sequence) string {
	if isNil(s) || s.Len() == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(s.Len())
	for d := range s.All() {
		b.WriteByte(DigitChar(d))
	}
	return b.String()
}

// DigitChar returns the display character of a single digit.
func DigitChar(d uint8) byte {
	if d < 10 {
		return '0' + d
	}
	return 'A' + d - 10
}

// baseOf returns the base s declares, or the primary base when s does not
// declare a usable one.
func (a *Adapter) baseOf(s Sequence) int {
	if b, ok := s.(Based); ok && ValidBase(b.Base()) {
		return b.Base()
	}
	return a.primary
}

func parseDecimal(text string) (*big.Int, bool) {
	if text == "" {
		return nil, false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(text, 10)
}

// fromValue expands a non-negative v into a fresh list in base.
func fromValue(v *big.Int, base int) *digitlist.List {
	l := digitlist.New(base)
	if v.Sign() < 0 {
		return l
	}
	if v.Sign() == 0 {
		_ = l.Append(0)
		return l
	}
	l.AppendAll(expand(v, base))
	return l
}

func reverse(ds []uint8) {
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}
}

func isNil(s Sequence) bool {
	if s == nil {
		return true
	}
	l, ok := s.(*digitlist.List)
	return ok && l == nil
}
