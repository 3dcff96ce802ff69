// Package ammv1 is the client for the v1 oracle-anchored amm program.
package ammv1

import (
	"context"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"

	"github.com/krazyTry/lifinity-go/amm_v1/math"
	"github.com/krazyTry/lifinity-go/amm_v1/shared"
)

// Client fetches v1 pool state and quotes swaps against it.
type Client struct {
	State      *StateService
	RPC        *rpc.Client
	Commitment rpc.CommitmentType
}

func NewClient(rpcClient *rpc.Client, commitment rpc.CommitmentType) *Client {
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	return &Client{
		State:      NewStateService(rpcClient, commitment),
		RPC:        rpcClient,
		Commitment: commitment,
	}
}

func direction(zeroForOne bool) shared.TradeDirection {
	if zeroForOne {
		return shared.TradeDirectionZeroToOne
	}
	return shared.TradeDirectionOneToZero
}

// QuoteExactOutput returns the input amount required for amountOut units of
// the output token, against a fresh pool snapshot.
func (c *Client) QuoteExactOutput(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool, amountOut *big.Int) (*big.Int, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return nil, err
	}
	return math.QuoteExactOutput(pool, direction(zeroForOne), amountOut)
}

// QuoteExactInput carries the v1 program's exact-input behavior, which is a
// pass-through rather than curve math.
func (c *Client) QuoteExactInput(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool, amountIn *big.Int) (*big.Int, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return nil, err
	}
	return math.QuoteExactInput(pool, direction(zeroForOne), amountIn)
}

// SpotPrice carries the v1 program's placeholder spot price.
func (c *Client) SpotPrice(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool) (decimal.Decimal, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return decimal.Zero, err
	}
	return math.SpotPrice(pool, direction(zeroForOne))
}

// GetSwapQuote is the rich form of QuoteExactOutput: it pads the required
// input by the slippage tolerance in basis points.
func (c *Client) GetSwapQuote(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool, amountOut *big.Int, slippageBps uint16) (*shared.QuoteResult, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return nil, err
	}
	amountIn, err := math.QuoteExactOutput(pool, direction(zeroForOne), amountOut)
	if err != nil {
		return nil, err
	}

	maximumIn := new(big.Int).Set(amountIn)
	if slippageBps > 0 {
		factor := big.NewInt(10_000 + int64(slippageBps))
		maximumIn.Mul(maximumIn, factor).Div(maximumIn, big.NewInt(10_000))
	}
	return &shared.QuoteResult{
		InputAmount:        amountIn,
		OutputAmount:       new(big.Int).Set(amountOut),
		MaximumInputAmount: maximumIn,
	}, nil
}
