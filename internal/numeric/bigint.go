//go:build !gmp

package numeric

import (
	"iter"
	"math/big"
)

// accumulate returns the integer denoted by digits, most significant first,
// in base.
func accumulate(digits iter.Seq[uint8], base int) *big.Int {
	acc := new(big.Int)
	b := big.NewInt(int64(base))
	d := new(big.Int)
	for x := range digits {
		acc.Mul(acc, b)
		acc.Add(acc, d.SetUint64(uint64(x)))
	}
	return acc
}

// expand returns the base digits of a positive v, most significant first,
// by repeated division. v is not modified.
func expand(v *big.Int, base int) []uint8 {
	q := new(big.Int).Set(v)
	b := big.NewInt(int64(base))
	r := new(big.Int)
	var out []uint8
	for q.Sign() > 0 {
		q.QuoRem(q, b, r)
		out = append(out, uint8(r.Uint64()))
	}
	reverse(out)
	return out
}
