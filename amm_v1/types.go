package ammv1

import (
	"math/big"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/lifinity-go/amm_v1/shared"
)

// AmmAccount is the borsh layout of a v1 pool account. Curve parameters are
// stored Q64 on the wire; the state service shifts them up to the Q128 scale
// the quoting math runs at.
type AmmAccount struct {
	Token0Mint  solanago.PublicKey
	Token1Mint  solanago.PublicKey
	Token0Vault solanago.PublicKey
	Token1Vault solanago.PublicKey
	Oracle      solanago.PublicKey

	// trade fee in parts per 10,000
	Fee uint64
	// curvature, Q64 on the wire
	Kappa binary.Uint128
	// price of token1 in token0, Q64 on the wire
	OraclePrice binary.Uint128

	DecimalShift    int32
	QuoteTokenIndex uint8
}

func ParseAmmAccount(data []byte) (*AmmAccount, error) {
	acc := &AmmAccount{}
	if err := binary.NewBinDecoder(data).Decode(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// poolFromAccount assembles the quoting snapshot from the decoded account and
// the two vault balances read in the same round trip.
func poolFromAccount(address solanago.PublicKey, acc *AmmAccount, reserve0, reserve1 uint64) *shared.Pool {
	return &shared.Pool{
		Address:         address,
		Token0:          acc.Token0Mint,
		Token1:          acc.Token1Mint,
		Reserve0:        new(big.Int).SetUint64(reserve0),
		Reserve1:        new(big.Int).SetUint64(reserve1),
		Kappa:           new(big.Int).Lsh(acc.Kappa.BigInt(), 64),
		Fee:             acc.Fee,
		OraclePrice:     new(big.Int).Lsh(acc.OraclePrice.BigInt(), 64),
		DecimalShift:    acc.DecimalShift,
		QuoteTokenIndex: acc.QuoteTokenIndex,
	}
}
