// Package shared holds the types, constants and errors common to the v2 amm
// quoting math and its state/client layers.
package shared

import (
	"errors"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
)

type TradeDirection uint8

const (
	TradeDirectionZeroToOne TradeDirection = 0
	TradeDirectionOneToZero TradeDirection = 1
)

// v2 fixed-point and fee bases. The v2 program runs on Q64 prices and
// parameters with a parts-per-10^8 fee; none of these may be reused for v1.
const ScaleOffset = 64

var (
	OneQ64 = new(big.Int).Lsh(big.NewInt(1), ScaleOffset)
	// TwoQ64 is the distinguished curvature value selecting the
	// constant-product special case.
	TwoQ64 = new(big.Int).Lsh(big.NewInt(1), ScaleOffset+1)

	FeeDenominator = big.NewInt(100_000_000)
)

var (
	ErrInsufficientInputAmount    = errors.New("insufficient input amount")
	ErrInsufficientOutputAmount   = errors.New("insufficient output amount")
	ErrInsufficientLiquidity      = errors.New("insufficient liquidity")
	ErrMaxReserveFractionExceeded = errors.New("max reserve fraction exceeded")
	ErrMathOverflow               = errors.New("math overflow")
)

// Pool is the immutable snapshot of a v2 pool consumed by the quoting math.
// The state service assembles one per call; the math never mutates it.
type Pool struct {
	Address solanago.PublicKey
	Token0  solanago.PublicKey
	Token1  solanago.PublicKey

	// vault balances in native token units
	Reserve0 *big.Int
	Reserve1 *big.Int

	// curvature, Q64; TwoQ64 selects the constant-product form
	Kappa *big.Int
	// skew sensitivity, Q64; zero disables reserve-imbalance price adjustment
	Lambda *big.Int
	// trade fee in parts per 10^8
	Fee uint64

	Token0Decimals uint8
	Token1Decimals uint8

	// oracle prices, Q64
	Price0 *big.Int
	Price1 *big.Int

	// Oracle feed refresh parameters; owned by the price-update path, never
	// consumed by the quoting math.
	UpdateFee      uint64
	UpdateFeedData []byte
}

// QuoteResult is what the v2 client returns for a quote.
type QuoteResult struct {
	InputAmount  *big.Int
	OutputAmount *big.Int
	// MinimumOutputAmount / MaximumInputAmount carry the slippage tolerance,
	// depending on which side was fixed.
	MinimumOutputAmount *big.Int
	MaximumInputAmount  *big.Int
}
