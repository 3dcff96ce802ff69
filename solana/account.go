// Package solana wraps the account reads both amm state services share:
// fetching and decoding SPL token vaults and mints.
package solana

import (
	"context"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

// Vault is the slice of an SPL token account the quoting path needs.
type Vault struct {
	Address solana.PublicKey
	Mint    solana.PublicKey
	Owner   solana.PublicKey
	Amount  uint64
}

// vaultLayout covers the token account prefix up to the balance; the
// delegate/close-authority tail is irrelevant here and left undecoded.
type vaultLayout struct {
	Mint   solana.PublicKey
	Owner  solana.PublicKey
	Amount uint64
}

func DecodeVault(address solana.PublicKey, data []byte) (*Vault, error) {
	raw := &vaultLayout{}
	if err := binary.NewBinDecoder(data).Decode(raw); err != nil {
		return nil, fmt.Errorf("decode token vault %s: %w", address, err)
	}
	return &Vault{
		Address: address,
		Mint:    raw.Mint,
		Owner:   raw.Owner,
		Amount:  raw.Amount,
	}, nil
}

// GetVaults fetches and decodes token vaults in one round trip, preserving
// order. The balances come from a single RPC response, so the pair is a
// coherent snapshot of both sides of a pool.
func GetVaults(ctx context.Context, rpcClient *rpc.Client, commitment rpc.CommitmentType, addresses ...solana.PublicKey) ([]*Vault, error) {
	res, err := rpcClient.GetMultipleAccountsWithOpts(ctx, addresses, &rpc.GetMultipleAccountsOpts{Commitment: commitment})
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.Value) != len(addresses) {
		return nil, fmt.Errorf("expected %d accounts", len(addresses))
	}
	vaults := make([]*Vault, 0, len(addresses))
	for i, acc := range res.Value {
		if acc == nil {
			return nil, fmt.Errorf("token vault %s not found", addresses[i])
		}
		vault, err := DecodeVault(addresses[i], acc.Data.GetBinary())
		if err != nil {
			return nil, err
		}
		vaults = append(vaults, vault)
	}
	return vaults, nil
}

// GetMintDecimals reads the decimal count of a token mint.
func GetMintDecimals(ctx context.Context, rpcClient *rpc.Client, commitment rpc.CommitmentType, mintAddress solana.PublicKey) (uint8, error) {
	acc, err := rpcClient.GetAccountInfoWithOpts(ctx, mintAddress, &rpc.GetAccountInfoOpts{Commitment: commitment})
	if err != nil {
		return 0, err
	}
	if acc == nil || acc.Value == nil {
		return 0, fmt.Errorf("mint %s not found", mintAddress)
	}
	mint := token.Mint{}
	if err := mint.Decode(acc.Value.Data.GetBinary()); err != nil {
		return 0, fmt.Errorf("decode mint %s: %w", mintAddress, err)
	}
	return mint.Decimals, nil
}
