package ammv2

import (
	"math/big"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/lifinity-go/amm_v2/shared"
)

// AmmAccount is the borsh layout of a v2 pool account. Prices and curve
// parameters are Q64 both on the wire and in the math.
type AmmAccount struct {
	Token0Mint  solanago.PublicKey
	Token1Mint  solanago.PublicKey
	Token0Vault solanago.PublicKey
	Token1Vault solanago.PublicKey
	Oracle      solanago.PublicKey

	// curvature, Q64; 2*Q64 selects the constant-product form
	Kappa binary.Uint128
	// skew sensitivity, Q64
	Lambda binary.Uint128
	// trade fee in parts per 10^8
	Fee uint64

	// last oracle prices pushed by the feed updater, Q64
	Price0 binary.Uint128
	Price1 binary.Uint128

	// feed refresh parameters, owned by the price-update path
	UpdateFee      uint64
	UpdateFeedData []byte
}

func ParseAmmAccount(data []byte) (*AmmAccount, error) {
	acc := &AmmAccount{}
	if err := binary.NewBinDecoder(data).Decode(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func poolFromAccount(address solanago.PublicKey, acc *AmmAccount, reserve0, reserve1 uint64, decimals0, decimals1 uint8) *shared.Pool {
	return &shared.Pool{
		Address:        address,
		Token0:         acc.Token0Mint,
		Token1:         acc.Token1Mint,
		Reserve0:       new(big.Int).SetUint64(reserve0),
		Reserve1:       new(big.Int).SetUint64(reserve1),
		Kappa:          acc.Kappa.BigInt(),
		Lambda:         acc.Lambda.BigInt(),
		Fee:            acc.Fee,
		Token0Decimals: decimals0,
		Token1Decimals: decimals1,
		Price0:         acc.Price0.BigInt(),
		Price1:         acc.Price1.BigInt(),
		UpdateFee:      acc.UpdateFee,
		UpdateFeedData: acc.UpdateFeedData,
	}
}
