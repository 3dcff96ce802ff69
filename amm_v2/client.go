// Package ammv2 is the client for the v2 oracle-anchored amm program.
package ammv2

import (
	"context"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"

	"github.com/krazyTry/lifinity-go/amm_v2/math"
	"github.com/krazyTry/lifinity-go/amm_v2/shared"
)

// Client fetches v2 pool state and quotes swaps against it.
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

// QuoteExactInput returns the output amount paid for amountIn units of the
// input token, against a fresh pool snapshot.
func (c *Client) QuoteExactInput(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool, amountIn *big.Int) (*big.Int, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return nil, err
	}
	return math.QuoteExactInput(pool, direction(zeroForOne), amountIn)
}

// QuoteExactOutput returns the input amount required for amountOut units of
// the output token, fee included.
func (c *Client) QuoteExactOutput(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool, amountOut *big.Int) (*big.Int, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return nil, err
	}
	return math.QuoteExactOutput(pool, direction(zeroForOne), amountOut)
}

// SpotPrice returns the skew-adjusted marginal price of the output token in
// input-token terms. Display-only.
func (c *Client) SpotPrice(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool) (decimal.Decimal, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return decimal.Zero, err
	}
	return math.SpotPrice(pool, direction(zeroForOne))
}

// GetSwapQuote is the rich form of QuoteExactInput: it shaves the output by
// the slippage tolerance in basis points and reports the price impact.
func (c *Client) GetSwapQuote(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool, amountIn *big.Int, slippageBps uint16) (*shared.QuoteResult, decimal.Decimal, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return nil, decimal.Zero, err
	}
	amountOut, err := math.QuoteExactInput(pool, direction(zeroForOne), amountIn)
	if err != nil {
		return nil, decimal.Zero, err
	}

	minimumOut := new(big.Int).Set(amountOut)
	if slippageBps > 0 {
		factor := big.NewInt(10_000 - int64(slippageBps))
		minimumOut.Mul(minimumOut, factor).Div(minimumOut, big.NewInt(10_000))
	}

	priceImpact, err := math.PriceImpact(pool, direction(zeroForOne), amountIn, amountOut)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &shared.QuoteResult{
		InputAmount:         new(big.Int).Set(amountIn),
		OutputAmount:        amountOut,
		MinimumOutputAmount: minimumOut,
	}, priceImpact, nil
}

// GetSwapQuoteExactOutput is the rich form of QuoteExactOutput: it pads the
// required input by the slippage tolerance in basis points and reports the
// price impact.
func (c *Client) GetSwapQuoteExactOutput(ctx context.Context, poolAddress solanago.PublicKey, zeroForOne bool, amountOut *big.Int, slippageBps uint16) (*shared.QuoteResult, decimal.Decimal, error) {
	pool, err := c.State.GetPool(ctx, poolAddress)
	if err != nil {
		return nil, decimal.Zero, err
	}
	amountIn, err := math.QuoteExactOutput(pool, direction(zeroForOne), amountOut)
	if err != nil {
		return nil, decimal.Zero, err
	}

	maximumIn := new(big.Int).Set(amountIn)
	if slippageBps > 0 {
		factor := big.NewInt(10_000 + int64(slippageBps))
		maximumIn.Mul(maximumIn, factor).Div(maximumIn, big.NewInt(10_000))
	}

	priceImpact, err := math.PriceImpact(pool, direction(zeroForOne), amountIn, amountOut)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &shared.QuoteResult{
		InputAmount:        amountIn,
		OutputAmount:       new(big.Int).Set(amountOut),
		MaximumInputAmount: maximumIn,
	}, priceImpact, nil
}
