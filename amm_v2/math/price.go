package math

import (
	"math/big"

	"github.com/krazyTry/lifinity-go/amm_v2/shared"
	"github.com/krazyTry/lifinity-go/fixedmath"
	"github.com/shopspring/decimal"
)

// SpotPrice returns the marginal price of the output token in input-token
// terms, as the ratio of the skew-adjusted oracle prices. Display-only: the
// result is a real-valued decimal, never a settlement amount.
func SpotPrice(pool *shared.Pool, direction shared.TradeDirection) (decimal.Decimal, error) {
	reserveIn, reserveOut, decimalsIn, decimalsOut, priceIn, priceOut := tradeSides(pool, direction)

	if reserveIn == nil || reserveOut == nil {
		return decimal.Zero, shared.ErrInsufficientLiquidity
	}
	reserveInCanon := fixedmath.ToCanonical(decimalsIn, reserveIn)
	reserveOutCanon := fixedmath.ToCanonical(decimalsOut, reserveOut)

	priceIn, priceOut, err := SkewAdjustedPrices(priceIn, priceOut, reserveInCanon, reserveOutCanon, pool.Lambda)
	if err != nil {
		return decimal.Zero, err
	}
	if priceOut.Sign() == 0 {
		return decimal.Zero, shared.ErrMathOverflow
	}
	return decimal.NewFromBigInt(priceIn, 0).Div(decimal.NewFromBigInt(priceOut, 0)), nil
}

// PriceImpact compares the execution price of a quote against the current
// spot price, in percent.
func PriceImpact(pool *shared.Pool, direction shared.TradeDirection, amountIn, amountOut *big.Int) (decimal.Decimal, error) {
	if amountIn.Sign() == 0 || amountOut.Sign() == 0 {
		return decimal.Zero, nil
	}
	spot, err := SpotPrice(pool, direction)
	if err != nil {
		return decimal.Zero, err
	}
	if spot.IsZero() {
		return decimal.Zero, nil
	}

	// spot is quoted as output token per input token, so execution price is
	// amountOut/amountIn after undoing each side's native decimals
	_, _, decimalsIn, decimalsOut, _, _ := tradeSides(pool, direction)
	executionPrice := decimal.NewFromBigInt(amountOut, 0).
		Div(decimal.New(1, int32(decimalsOut))).
		Div(decimal.NewFromBigInt(amountIn, 0).Div(decimal.New(1, int32(decimalsIn))))
	return executionPrice.Sub(spot).Abs().Div(spot).Mul(decimal.NewFromInt(100)), nil
}
