// Package shared holds the types, constants and errors common to the v1 amm
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

// v1 fixed-point and fee bases. The v1 program quotes against a single Q128
// oracle price with a basis-point fee; none of these may be reused for v2.
const ScaleOffset = 128

var (
	OneQ128 = new(big.Int).Lsh(big.NewInt(1), ScaleOffset)
	TwoQ128 = new(big.Int).Lsh(big.NewInt(1), ScaleOffset+1)

	FeeDenominator = big.NewInt(10_000)
)

var (
	ErrInsufficientInputAmount  = errors.New("insufficient input amount")
	ErrInsufficientOutputAmount = errors.New("insufficient output amount")
	ErrInsufficientLiquidity    = errors.New("insufficient liquidity")
	ErrMathOverflow             = errors.New("math overflow")
)

// Pool is the immutable snapshot of a v1 pool consumed by the quoting math.
// The state service assembles one per call; the math never mutates it.
type Pool struct {
	Address solanago.PublicKey
	Token0  solanago.PublicKey
	Token1  solanago.PublicKey

	// vault balances in native token units
	Reserve0 *big.Int
	Reserve1 *big.Int

	// curvature, Q128; zero means the default of one unit at Q128 scale
	Kappa *big.Int
	// trade fee in parts per 10,000
	Fee uint64
	// oracle price of token1 in token0, Q128
	OraclePrice *big.Int

	// Carried from the on-chain account for the settlement path; the quoting
	// formulas do not consume them.
	DecimalShift    int32
	QuoteTokenIndex uint8
}

// QuoteResult is what the v1 client returns for an exact-output quote.
type QuoteResult struct {
	InputAmount  *big.Int
	OutputAmount *big.Int
	// MaximumInputAmount is InputAmount padded by the slippage tolerance.
	MaximumInputAmount *big.Int
}
