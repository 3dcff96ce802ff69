package ammv2

import (
	"context"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/lifinity-go/amm_v2/shared"
	solana "github.com/krazyTry/lifinity-go/solana"
)

// StateService reads v2 pool accounts and assembles quoting snapshots.
type StateService struct {
	RPC        *rpc.Client
	Commitment rpc.CommitmentType
}

func NewStateService(rpcClient *rpc.Client, commitment rpc.CommitmentType) *StateService {
	return &StateService{RPC: rpcClient, Commitment: commitment}
}

// GetPool fetches a pool account, its vault balances and the mint decimals of
// both tokens, and returns the immutable snapshot the quoting math consumes.
func (s *StateService) GetPool(ctx context.Context, poolAddress solanago.PublicKey) (*shared.Pool, error) {
	acc, err := s.RPC.GetAccountInfoWithOpts(ctx, poolAddress, &rpc.GetAccountInfoOpts{Commitment: s.Commitment})
	if err != nil {
		return nil, err
	}
	if acc == nil || acc.Value == nil {
		return nil, fmt.Errorf("pool account %s not found", poolAddress)
	}
	parsed, err := ParseAmmAccount(acc.Value.Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("parse pool account %s: %w", poolAddress, err)
	}

	vaults, err := solana.GetVaults(ctx, s.RPC, s.Commitment, parsed.Token0Vault, parsed.Token1Vault)
	if err != nil {
		return nil, err
	}
	decimals0, err := solana.GetMintDecimals(ctx, s.RPC, s.Commitment, parsed.Token0Mint)
	if err != nil {
		return nil, err
	}
	decimals1, err := solana.GetMintDecimals(ctx, s.RPC, s.Commitment, parsed.Token1Mint)
	if err != nil {
		return nil, err
	}
	return poolFromAccount(poolAddress, parsed, vaults[0].Amount, vaults[1].Amount, decimals0, decimals1), nil
}

// GetPools lists every pool account owned by the v2 program. Reserves and
// decimals are not populated here; call GetPool for a quotable snapshot.
func (s *StateService) GetPools(ctx context.Context) (map[solanago.PublicKey]*AmmAccount, error) {
	accounts, err := s.RPC.GetProgramAccountsWithOpts(ctx, ProgramID, &rpc.GetProgramAccountsOpts{Commitment: s.Commitment})
	if err != nil {
		return nil, err
	}
	out := make(map[solanago.PublicKey]*AmmAccount, len(accounts))
	for _, acc := range accounts {
		parsed, err := ParseAmmAccount(acc.Account.Data.GetBinary())
		if err != nil {
			continue
		}
		out[acc.Pubkey] = parsed
	}
	return out, nil
}
