package fixedmath

import "math/big"

var ten = big.NewInt(10)

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// ToCanonical rescales amount from a token's native decimal count to the
// canonical 18-decimal representation. Tokens with more than 18 decimals lose
// precision here (floor division), matching the on-chain programs.
func ToCanonical(decimals uint8, amount *big.Int) *big.Int {
	if decimals > CanonicalDecimals {
		return new(big.Int).Div(amount, pow10(decimals-CanonicalDecimals))
	}
	return new(big.Int).Mul(amount, pow10(CanonicalDecimals-decimals))
}

// FromCanonical rescales amount from the canonical representation back to the
// token's native decimal count, flooring when the native count is coarser.
func FromCanonical(decimals uint8, amount *big.Int) *big.Int {
	if decimals > CanonicalDecimals {
		return new(big.Int).Mul(amount, pow10(decimals-CanonicalDecimals))
	}
	return new(big.Int).Div(amount, pow10(CanonicalDecimals-decimals))
}
