package ammv2

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

// Network-bound tests run against a live cluster. Set RPC_ENDPOINT (and
// POOL_ADDRESS where a quotable pool is needed) to enable them.
func testRPC(t *testing.T) *rpc.Client {
	t.Helper()
	endpoint := os.Getenv("RPC_ENDPOINT")
	if endpoint == "" {
		t.Skip("RPC_ENDPOINT not set")
	}
	return rpc.New(endpoint)
}

func testPoolAddress(t *testing.T) solana.PublicKey {
	t.Helper()
	address := os.Getenv("POOL_ADDRESS")
	if address == "" {
		t.Skip("POOL_ADDRESS not set")
	}
	return solana.MustPublicKeyFromBase58(address)
}

// vaultBalance reads a token vault through the jsonParsed encoding, giving an
// independent view of the balance the binary decode path reports.
func vaultBalance(ctx context.Context, rpcClient *rpc.Client, vault solana.PublicKey) (string, uint64, error) {
	ctx1, cancel1 := context.WithTimeout(ctx, time.Second*5)
	defer cancel1()
	resp, err := rpcClient.GetAccountInfoWithOpts(ctx1, vault, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingJSONParsed,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return "", 0, err
	}
	if resp == nil || resp.Value == nil {
		return "", 0, fmt.Errorf("token vault %s not found", vault)
	}
	raw := resp.Value.Data.GetRawJSON()
	mint := gjson.GetBytes(raw, "parsed.info.mint").String()
	amount := gjson.GetBytes(raw, "parsed.info.tokenAmount.amount").Uint()
	return mint, amount, nil
}
