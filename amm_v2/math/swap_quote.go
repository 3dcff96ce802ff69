// Package math implements the v2 oracle-anchored swap curve: decimals-aware,
// skew-aware, with a constant-product special case and a quadratic-root
// general case. All internal math runs at canonical 18-decimal scale on
// big.Int and replicates the on-chain program's truncation to the integer.
package math

import (
	"fmt"
	"math/big"

	"github.com/krazyTry/lifinity-go/amm_v2/shared"
	"github.com/krazyTry/lifinity-go/fixedmath"
)

func tradeSides(pool *shared.Pool, direction shared.TradeDirection) (reserveIn, reserveOut *big.Int, decimalsIn, decimalsOut uint8, priceIn, priceOut *big.Int) {
	if direction == shared.TradeDirectionZeroToOne {
		return pool.Reserve0, pool.Reserve1, pool.Token0Decimals, pool.Token1Decimals, pool.Price0, pool.Price1
	}
	return pool.Reserve1, pool.Reserve0, pool.Token1Decimals, pool.Token0Decimals, pool.Price1, pool.Price0
}

// QuoteExactInput returns the output amount the pool pays for amountIn units
// of the input token, in the output token's native decimals.
func QuoteExactInput(pool *shared.Pool, direction shared.TradeDirection, amountIn *big.Int) (*big.Int, error) {
	reserveIn, reserveOut, decimalsIn, decimalsOut, priceIn, priceOut := tradeSides(pool, direction)

	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, shared.ErrInsufficientInputAmount
	}
	// a zero input reserve is quotable; a missing one is not
	if reserveIn == nil || reserveOut == nil || reserveOut.Sign() <= 0 {
		return nil, shared.ErrInsufficientLiquidity
	}

	amountInCanon := fixedmath.ToCanonical(decimalsIn, amountIn)
	reserveInCanon := fixedmath.ToCanonical(decimalsIn, reserveIn)
	reserveOutCanon := fixedmath.ToCanonical(decimalsOut, reserveOut)

	priceIn, priceOut, err := SkewAdjustedPrices(priceIn, priceOut, reserveInCanon, reserveOutCanon, pool.Lambda)
	if err != nil {
		return nil, err
	}

	feeFactor := new(big.Int).Add(shared.FeeDenominator, new(big.Int).SetUint64(pool.Fee))
	effectiveIn, err := fixedmath.MulDiv(amountInCanon, shared.FeeDenominator, feeFactor, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}

	var amountOut *big.Int
	if pool.Kappa.Cmp(shared.TwoQ64) == 0 {
		amountOut, err = constantProductOut(reserveOutCanon, effectiveIn, priceIn, priceOut)
	} else {
		amountOut, err = curveOut(reserveOutCanon, effectiveIn, priceIn, priceOut, pool.Kappa)
	}
	if err != nil {
		return nil, err
	}
	return fixedmath.FromCanonical(decimalsOut, amountOut), nil
}

// constantProductOut is the kappa == 2*Q64 special case, which degenerates to
// the oracle-priced constant-product form.
func constantProductOut(reserveOut, effectiveIn, priceIn, priceOut *big.Int) (*big.Int, error) {
	numerator := new(big.Int).Mul(reserveOut, effectiveIn)
	denominator := new(big.Int).Mul(priceOut, reserveOut)
	denominator.Add(denominator, new(big.Int).Mul(effectiveIn, priceIn))
	out, err := fixedmath.MulDiv(numerator, priceIn, denominator, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	return out, nil
}

// curveOut solves the curve's quadratic for the output amount via integer
// square root under Q64 scaling.
func curveOut(reserveOut, effectiveIn, priceIn, priceOut, kappa *big.Int) (*big.Int, error) {
	leftNumerator := new(big.Int).Mul(priceOut, reserveOut)
	leftNumerator.Add(leftNumerator, new(big.Int).Mul(priceIn, effectiveIn))

	inValue, err := fixedmath.MulDiv(effectiveIn, priceIn, shared.OneQ64, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	outValue, err := fixedmath.MulDiv(reserveOut, priceOut, shared.OneQ64, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	sqrtBase := new(big.Int).Sub(inValue, outValue)
	sqrtBase.Abs(sqrtBase)
	radicand := new(big.Int).Mul(sqrtBase, sqrtBase)

	priceProduct, err := fixedmath.MulDiv(new(big.Int).Mul(priceIn, priceOut), kappa, new(big.Int).Mul(shared.OneQ64, shared.OneQ64), fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	crossTerm, err := fixedmath.MulDiv(new(big.Int).Mul(reserveOut, effectiveIn), big.NewInt(2), shared.OneQ64, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	radicand.Add(radicand, new(big.Int).Mul(priceProduct, crossTerm))

	denominator, err := fixedmath.MulDiv(priceOut, new(big.Int).Sub(shared.TwoQ64, kappa), shared.OneQ64, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	if denominator.Sign() <= 0 {
		return nil, fmt.Errorf("%w: curvature drives quote denominator to %s", shared.ErrMathOverflow, denominator)
	}

	numerator := new(big.Int).Sub(leftNumerator, new(big.Int).Mul(shared.OneQ64, fixedmath.Sqrt(radicand)))
	out := numerator.Div(numerator, denominator)
	if out.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative output amount", shared.ErrMathOverflow)
	}
	return out, nil
}

// QuoteExactOutput returns the input amount the pool requires for amountOut
// units of the output token, fee included, in the input token's native
// decimals.
func QuoteExactOutput(pool *shared.Pool, direction shared.TradeDirection, amountOut *big.Int) (*big.Int, error) {
	reserveIn, reserveOut, decimalsIn, decimalsOut, priceIn, priceOut := tradeSides(pool, direction)

	if amountOut == nil || amountOut.Sign() <= 0 {
		return nil, shared.ErrInsufficientOutputAmount
	}
	if reserveIn == nil || reserveOut == nil || reserveOut.Sign() <= 0 {
		return nil, shared.ErrInsufficientLiquidity
	}

	// a single quote may not consume 80% or more of the output reserve
	lhs := new(big.Int).Mul(amountOut, big.NewInt(10))
	rhs := new(big.Int).Mul(reserveOut, big.NewInt(8))
	if lhs.Cmp(rhs) >= 0 {
		return nil, shared.ErrMaxReserveFractionExceeded
	}

	amountOutCanon := fixedmath.ToCanonical(decimalsOut, amountOut)
	reserveInCanon := fixedmath.ToCanonical(decimalsIn, reserveIn)
	reserveOutCanon := fixedmath.ToCanonical(decimalsOut, reserveOut)

	priceIn, priceOut, err := SkewAdjustedPrices(priceIn, priceOut, reserveInCanon, reserveOutCanon, pool.Lambda)
	if err != nil {
		return nil, err
	}

	remaining := new(big.Int).Mul(shared.OneQ64, new(big.Int).Sub(reserveOutCanon, amountOutCanon))
	priceImpact, err := fixedmath.MulDiv(new(big.Int).Mul(pool.Kappa, shared.OneQ64), amountOutCanon, remaining, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}

	avgPrice, err := fixedmath.MulDiv(priceOut, new(big.Int).Add(priceImpact, shared.TwoQ64), priceIn, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	amountIn, err := fixedmath.MulDiv(amountOutCanon, avgPrice, shared.TwoQ64, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}

	feeFactor := new(big.Int).Add(shared.FeeDenominator, new(big.Int).SetUint64(pool.Fee))
	amountIn, err = fixedmath.MulDiv(amountIn, feeFactor, shared.FeeDenominator, fixedmath.RoundingDown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	return fixedmath.FromCanonical(decimalsIn, amountIn), nil
}
