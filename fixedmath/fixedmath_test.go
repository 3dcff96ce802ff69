package fixedmath

import (
	"math/big"
	"testing"
)

func TestMulDivRounding(t *testing.T) {
	cases := []struct {
		x, y, d  int64
		rounding Rounding
		want     int64
	}{
		{10, 3, 4, RoundingDown, 7},
		{10, 3, 4, RoundingUp, 8},
		{10, 2, 4, RoundingUp, 5}, // exact, no bump
		{0, 5, 3, RoundingUp, 0},
		{7, 7, 1, RoundingDown, 49},
	}
	for _, c := range cases {
		got, err := MulDiv(big.NewInt(c.x), big.NewInt(c.y), big.NewInt(c.d), c.rounding)
		if err != nil {
			t.Fatalf("MulDiv(%d,%d,%d) error: %v", c.x, c.y, c.d, err)
		}
		if got.Int64() != c.want {
			t.Fatalf("MulDiv(%d,%d,%d) = %s, want %d", c.x, c.y, c.d, got, c.want)
		}
	}
}

func TestMulDivZeroDenominator(t *testing.T) {
	if _, err := MulDiv(big.NewInt(1), big.NewInt(1), big.NewInt(0), RoundingDown); err != ErrDivisionByZero {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestMulDivNoIntermediateOverflow(t *testing.T) {
	// reserve * price * kappa scale products exceed 256 bits; big.Int must carry them
	x := new(big.Int).Lsh(big.NewInt(1), 200)
	y := new(big.Int).Lsh(big.NewInt(1), 200)
	d := new(big.Int).Lsh(big.NewInt(1), 100)
	got, err := MulDiv(x, y, d, RoundingDown)
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 300)
	if got.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSqrtFloorInvariant(t *testing.T) {
	one := big.NewInt(1)
	check := func(v *big.Int) {
		r := Sqrt(v)
		lo := new(big.Int).Mul(r, r)
		hi := new(big.Int).Add(r, one)
		hi.Mul(hi, hi)
		if lo.Cmp(v) > 0 || hi.Cmp(v) <= 0 {
			t.Fatalf("Sqrt(%s) = %s violates r^2 <= v < (r+1)^2", v, r)
		}
	}

	for i := int64(0); i < 1000; i++ {
		check(big.NewInt(i))
	}
	// perfect squares stay exact
	for i := int64(1); i < 100; i++ {
		sq := big.NewInt(i * i)
		if Sqrt(sq).Int64() != i {
			t.Fatalf("Sqrt(%d) != %d", i*i, i)
		}
	}
	// wide values around Q64 and Q128 scale
	for _, shift := range []uint{63, 64, 65, 127, 128, 129, 200} {
		v := new(big.Int).Lsh(one, shift)
		check(v)
		check(new(big.Int).Sub(v, one))
		check(new(big.Int).Add(v, one))
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	amount := new(big.Int).SetUint64(123_456_789_012_345)
	for d := uint8(0); d <= CanonicalDecimals; d++ {
		got := FromCanonical(d, ToCanonical(d, amount))
		if got.Cmp(amount) != 0 {
			t.Fatalf("decimals %d: round trip %s != %s", d, got, amount)
		}
	}
}

func TestCanonicalLossyAboveEighteen(t *testing.T) {
	// 24-decimal amounts floor away at most 10^6 - 1 units
	amount, _ := new(big.Int).SetString("123456789012345678901234", 10)
	got := FromCanonical(24, ToCanonical(24, amount))
	diff := new(big.Int).Sub(amount, got)
	if diff.Sign() < 0 || diff.Cmp(big.NewInt(1_000_000)) >= 0 {
		t.Fatalf("lossy round trip out of bounds: diff %s", diff)
	}
}
