// Package math implements the v1 oracle-anchored swap curve. Quoting is pure:
// every function depends only on the Pool snapshot and its arguments, and all
// divisions round up so the program never under-collects the required input.
package math

import (
	"fmt"
	"math/big"

	"github.com/krazyTry/lifinity-go/amm_v1/shared"
	"github.com/krazyTry/lifinity-go/fixedmath"
	"github.com/shopspring/decimal"
)

// QuoteExactOutput returns the input amount the pool requires for amountOut
// units of the output token, fee included.
func QuoteExactOutput(pool *shared.Pool, direction shared.TradeDirection, amountOut *big.Int) (*big.Int, error) {
	reserveIn, reserveOut := pool.Reserve0, pool.Reserve1
	if direction == shared.TradeDirectionOneToZero {
		reserveIn, reserveOut = pool.Reserve1, pool.Reserve0
	}

	if amountOut == nil || amountOut.Sign() <= 0 {
		return nil, shared.ErrInsufficientOutputAmount
	}
	if reserveIn == nil || reserveIn.Sign() <= 0 || reserveOut == nil || reserveOut.Sign() <= 0 {
		return nil, shared.ErrInsufficientLiquidity
	}
	if pool.Fee >= 10_000 {
		return nil, fmt.Errorf("%w: fee %d consumes the whole quote", shared.ErrMathOverflow, pool.Fee)
	}

	feeFactor := new(big.Int).Sub(shared.FeeDenominator, new(big.Int).SetUint64(pool.Fee))
	amountOutWithFee, err := fixedmath.MulDiv(amountOut, shared.FeeDenominator, feeFactor, fixedmath.RoundingUp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}

	// cap a single quote below 90% of the output reserve to keep a
	// rounding/solvency margin
	lhs := new(big.Int).Mul(amountOutWithFee, big.NewInt(10))
	rhs := new(big.Int).Mul(reserveOut, big.NewInt(9))
	if lhs.Cmp(rhs) >= 0 {
		return nil, shared.ErrInsufficientOutputAmount
	}

	kappa := pool.Kappa
	if kappa == nil || kappa.Sign() == 0 {
		kappa = shared.OneQ128
	}

	remaining := new(big.Int).Sub(reserveOut, amountOutWithFee)
	priceImpact, err := fixedmath.MulDiv(kappa, amountOutWithFee, remaining, fixedmath.RoundingUp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}

	// average execution price over the trade, Q128
	impacted := new(big.Int).Add(shared.TwoQ128, priceImpact)
	var avgPrice *big.Int
	if direction == shared.TradeDirectionZeroToOne {
		avgPrice, err = fixedmath.MulDiv(impacted, shared.OneQ128, new(big.Int).Mul(pool.OraclePrice, big.NewInt(2)), fixedmath.RoundingUp)
	} else {
		avgPrice, err = fixedmath.MulDiv(pool.OraclePrice, impacted, shared.TwoQ128, fixedmath.RoundingUp)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}

	amountIn, err := fixedmath.MulDiv(amountOutWithFee, avgPrice, shared.OneQ128, fixedmath.RoundingUp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	return amountIn, nil
}

// QuoteExactInput mirrors the on-chain v1 program, which has no exact-input
// curve math and passes the amount through unchanged.
//
// TODO: replace the pass-through once the v1 curve owner publishes the
// exact-input formula.
func QuoteExactInput(pool *shared.Pool, direction shared.TradeDirection, amountIn *big.Int) (*big.Int, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, shared.ErrInsufficientInputAmount
	}
	return new(big.Int).Set(amountIn), nil
}

// SpotPrice mirrors the on-chain v1 program, which reports a fixed placeholder
// instead of a price ratio. Display-only; never a settlement value.
func SpotPrice(pool *shared.Pool, direction shared.TradeDirection) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
