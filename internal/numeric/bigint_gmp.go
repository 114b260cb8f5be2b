//go:build gmp

package numeric

import (
	"iter"
	"math/big"

	"github.com/ncw/gmp"
)

// accumulate returns the integer denoted by digits, most significant first,
// in base. The loop runs on GMP integers; the result is handed back as a
// math/big value.
func accumulate(digits iter.Seq[uint8], base int) *big.Int {
	acc := gmp.NewInt(0)
	b := gmp.NewInt(int64(base))
	d := new(gmp.Int)
	for x := range digits {
		acc.Mul(acc, b)
		acc.Add(acc, d.SetInt64(int64(x)))
	}
	out, _ := new(big.Int).SetString(acc.String(), 10)
	return out
}

// expand returns the base digits of a positive v, most significant first,
// by repeated division on GMP integers.
func expand(v *big.Int, base int) []uint8 {
	q, _ := new(gmp.Int).SetString(v.String(), 10)
	b := gmp.NewInt(int64(base))
	r := new(gmp.Int)
	var out []uint8
	for q.Sign() > 0 {
		q.QuoRem(q, b, r)
		out = append(out, uint8(r.Int64()))
	}
	reverse(out)
	return out
}
