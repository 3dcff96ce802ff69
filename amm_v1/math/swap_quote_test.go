package math

import (
	"errors"
	"math/big"
	"testing"

	"github.com/krazyTry/lifinity-go/amm_v1/shared"
)

func e18(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func testPool() *shared.Pool {
	return &shared.Pool{
		Reserve0:    e18(100),
		Reserve1:    e18(200),
		Kappa:       new(big.Int).Set(shared.TwoQ128),
		Fee:         25,
		OraclePrice: new(big.Int).Set(shared.TwoQ128),
	}
}

func TestQuoteExactOutputReferenceVectors(t *testing.T) {
	cases := []struct {
		name      string
		direction shared.TradeDirection
		amountOut *big.Int
		want      string
	}{
		{"zeroToOne", shared.TradeDirectionZeroToOne, e18(10), "5277044854881266492"},
		{"oneToZero", shared.TradeDirectionOneToZero, e18(10), "22284122562674094710"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := QuoteExactOutput(testPool(), c.direction, c.amountOut)
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != c.want {
				t.Fatalf("amountIn = %s, want %s", got, c.want)
			}
		})
	}
}

func TestQuoteExactOutputDeterminism(t *testing.T) {
	a, err := QuoteExactOutput(testPool(), shared.TradeDirectionZeroToOne, e18(10))
	if err != nil {
		t.Fatal(err)
	}
	b, err := QuoteExactOutput(testPool(), shared.TradeDirectionZeroToOne, e18(10))
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) != 0 {
		t.Fatalf("same inputs produced %s and %s", a, b)
	}
}

func TestQuoteExactOutputMonotonic(t *testing.T) {
	prev := big.NewInt(0)
	for _, n := range []int64{1, 2, 5, 10, 20, 50, 100} {
		got, err := QuoteExactOutput(testPool(), shared.TradeDirectionZeroToOne, e18(n))
		if err != nil {
			t.Fatalf("amountOut %de18: %v", n, err)
		}
		if got.Cmp(prev) <= 0 {
			t.Fatalf("amountIn not strictly increasing at %de18: %s <= %s", n, got, prev)
		}
		prev = got
	}
}

func TestQuoteExactOutputReserveCap(t *testing.T) {
	// post-fee output at or above 90% of reserveOut must be rejected
	pool := testPool()
	if _, err := QuoteExactOutput(pool, shared.TradeDirectionZeroToOne, e18(180)); !errors.Is(err, shared.ErrInsufficientOutputAmount) {
		t.Fatalf("expected ErrInsufficientOutputAmount, got %v", err)
	}
	// well inside the cap still quotes
	if _, err := QuoteExactOutput(pool, shared.TradeDirectionZeroToOne, e18(150)); err != nil {
		t.Fatalf("inside cap: %v", err)
	}
}

func TestQuoteExactOutputValidation(t *testing.T) {
	pool := testPool()
	if _, err := QuoteExactOutput(pool, shared.TradeDirectionZeroToOne, big.NewInt(0)); !errors.Is(err, shared.ErrInsufficientOutputAmount) {
		t.Fatalf("zero amountOut: %v", err)
	}

	drained := testPool()
	drained.Reserve1 = big.NewInt(0)
	if _, err := QuoteExactOutput(drained, shared.TradeDirectionZeroToOne, e18(1)); !errors.Is(err, shared.ErrInsufficientLiquidity) {
		t.Fatalf("zero reserve: %v", err)
	}
}

func TestQuoteExactOutputKappaDefault(t *testing.T) {
	// kappa == 0 must quote exactly like kappa == 1 at Q128 scale
	zero := testPool()
	zero.Kappa = big.NewInt(0)
	one := testPool()
	one.Kappa = new(big.Int).Set(shared.OneQ128)

	a, err := QuoteExactOutput(zero, shared.TradeDirectionOneToZero, e18(10))
	if err != nil {
		t.Fatal(err)
	}
	b, err := QuoteExactOutput(one, shared.TradeDirectionOneToZero, e18(10))
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) != 0 {
		t.Fatalf("kappa default mismatch: %s != %s", a, b)
	}
}

func TestQuoteExactInputPassThrough(t *testing.T) {
	in := e18(3)
	got, err := QuoteExactInput(testPool(), shared.TradeDirectionZeroToOne, in)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(in) != 0 {
		t.Fatalf("pass-through returned %s, want %s", got, in)
	}
	if got == in {
		t.Fatal("pass-through must not alias the caller's amount")
	}
	if _, err := QuoteExactInput(testPool(), shared.TradeDirectionZeroToOne, big.NewInt(0)); !errors.Is(err, shared.ErrInsufficientInputAmount) {
		t.Fatalf("zero amountIn: %v", err)
	}
}
