package math

import (
	"fmt"
	"math/big"

	"github.com/krazyTry/lifinity-go/amm_v2/shared"
	"github.com/krazyTry/lifinity-go/fixedmath"
)

// SkewAdjustedPrices nudges the raw oracle prices against the pool's current
// reserve imbalance: the over-represented side is discounted and the
// under-represented side gets a premium, both by the same Q64 magnitude
// s = |valueA-valueB| * lambda / (valueA+valueB). Trades that rebalance the
// pool therefore price better than trades that deepen the imbalance.
//
// Reserves must already be at canonical scale so the notional values compare.
func SkewAdjustedPrices(priceA, priceB, reserveA, reserveB, lambda *big.Int) (*big.Int, *big.Int, error) {
	if lambda == nil || lambda.Sign() == 0 {
		return new(big.Int).Set(priceA), new(big.Int).Set(priceB), nil
	}

	valueA := new(big.Int).Mul(reserveA, priceA)
	valueB := new(big.Int).Mul(reserveB, priceB)
	diff := new(big.Int).Sub(valueA, valueB)
	diff.Abs(diff)
	sum := new(big.Int).Add(valueA, valueB)

	skew, err := fixedmath.MulDiv(diff, lambda, sum, fixedmath.RoundingDown)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}

	discount := new(big.Int).Sub(shared.OneQ64, skew)
	premium := new(big.Int).Add(shared.OneQ64, skew)
	if valueA.Cmp(valueB) < 0 {
		discount, premium = premium, discount
	}

	adjustedA, err := fixedmath.MulDiv(priceA, discount, shared.OneQ64, fixedmath.RoundingDown)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	adjustedB, err := fixedmath.MulDiv(priceB, premium, shared.OneQ64, fixedmath.RoundingDown)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", shared.ErrMathOverflow, err)
	}
	return adjustedA, adjustedB, nil
}
