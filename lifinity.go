// Package lifinity exposes off-chain swap quoting for both generations of the
// oracle-anchored amm programs. Quotes replicate the on-chain fixed-point
// arithmetic to the integer, so a quote equals what a swap would settle at
// against the same pool snapshot.
package lifinity

import (
	"context"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	ammv1 "github.com/krazyTry/lifinity-go/amm_v1"
	ammv2 "github.com/krazyTry/lifinity-go/amm_v2"
)

// Quoter is the capability set both curve variants implement. Dispatch is by
// value: hold a *ammv1.Client or *ammv2.Client depending on which program
// owns the pool.
type Quoter interface {
	// QuoteExactInput returns the output amount paid for amountIn units of
	// the input token, in native token units.
	QuoteExactInput(ctx context.Context, pool solanago.PublicKey, zeroForOne bool, amountIn *big.Int) (*big.Int, error)
	// QuoteExactOutput returns the input amount required for amountOut units
	// of the output token, fee included, in native token units.
	QuoteExactOutput(ctx context.Context, pool solanago.PublicKey, zeroForOne bool, amountOut *big.Int) (*big.Int, error)
	// SpotPrice returns the marginal price of the output token in input-token
	// terms. Display-only, never a settlement value.
	SpotPrice(ctx context.Context, pool solanago.PublicKey, zeroForOne bool) (decimal.Decimal, error)
}

var (
	_ Quoter = (*ammv1.Client)(nil)
	_ Quoter = (*ammv2.Client)(nil)
)

// NewV1Client creates a client for the v1 amm program.
//
// Example:
//
// v1 := lifinity.NewV1Client(rpcClient, rpc.CommitmentFinalized)
//
// amountIn, _ := v1.QuoteExactOutput(ctx, poolAddress, true, amountOut)
var NewV1Client = ammv1.NewClient

// NewV2Client creates a client for the v2 amm program.
//
// Example:
//
// v2 := lifinity.NewV2Client(rpcClient, rpc.CommitmentFinalized)
//
// amountOut, _ := v2.QuoteExactInput(ctx, poolAddress, true, amountIn)
var NewV2Client = ammv2.NewClient
