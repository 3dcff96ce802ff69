package ammv1

import (
	"bytes"
	"math/big"
	"testing"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/lifinity-go/amm_v1/shared"
)

func TestParseAmmAccount(t *testing.T) {
	src := &AmmAccount{
		Token0Mint:      solanago.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112"),
		Token1Mint:      solanago.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"),
		Fee:             25,
		Kappa:           binary.Uint128{Lo: 0, Hi: 2}, // 2 at Q64 wire scale
		OraclePrice:     binary.Uint128{Lo: 0, Hi: 2},
		DecimalShift:    -3,
		QuoteTokenIndex: 1,
	}

	buf := new(bytes.Buffer)
	if err := binary.NewBinEncoder(buf).Encode(src); err != nil {
		t.Fatal(err)
	}
	got, err := ParseAmmAccount(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got.Fee != src.Fee || got.DecimalShift != src.DecimalShift || got.QuoteTokenIndex != src.QuoteTokenIndex {
		t.Fatalf("layout mismatch: %+v", got)
	}

	// wire Q64 parameters are lifted to the math's Q128 scale
	pool := poolFromAccount(solanago.PublicKey{}, got, 100, 200)
	wantKappa := new(big.Int).Mul(big.NewInt(2), shared.OneQ128)
	if pool.Kappa.Cmp(wantKappa) != 0 {
		t.Fatalf("kappa = %s, want %s", pool.Kappa, wantKappa)
	}
	if pool.OraclePrice.Cmp(wantKappa) != 0 {
		t.Fatalf("oracle price = %s", pool.OraclePrice)
	}
}
