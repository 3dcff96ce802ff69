// Package fixedmath holds the integer primitives shared by both swap curve
// variants: full-width multiply-divide with explicit rounding, integer square
// root, and rescaling between a token's native decimals and the canonical
// 18-decimal representation used by the curve math.
package fixedmath

import (
	"errors"
	"math/big"
)

type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

// CanonicalDecimals is the internal decimal count all cross-token math runs at.
const CanonicalDecimals = 18

var ErrDivisionByZero = errors.New("fixedmath: division by zero")

// MulDiv returns (x*y)/denominator without intermediate overflow, rounding
// toward zero or up according to rounding.
func MulDiv(x, y, denominator *big.Int, rounding Rounding) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	mul := new(big.Int).Mul(x, y)
	div, mod := new(big.Int).QuoRem(mul, denominator, new(big.Int))
	if rounding == RoundingUp && mod.Sign() != 0 {
		return div.Add(div, big.NewInt(1)), nil
	}
	return div, nil
}

// Sqrt returns the floor of the square root of value using Babylonian
// iteration. Exact for perfect squares; Sqrt(0) == 0.
func Sqrt(value *big.Int) *big.Int {
	if value == nil || value.Sign() == 0 {
		return big.NewInt(0)
	}
	if value.Cmp(big.NewInt(1)) == 0 {
		return big.NewInt(1)
	}

	x := new(big.Int).Set(value)
	y := new(big.Int).Add(value, big.NewInt(1))
	y.Div(y, big.NewInt(2))

	for y.Cmp(x) < 0 {
		x.Set(y)
		y = new(big.Int).Add(x, new(big.Int).Div(value, x))
		y.Div(y, big.NewInt(2))
	}

	return x
}
