package common

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)

	ErrNegativeExponent = errors.New("exponent must be non-negative")
	ErrZeroModulus      = errors.New("modulus must be non-zero")
)

// modInt is a *big.Int that performs all of its arithmetic with modular reduction.
// Results are always in [0, |mod|).
type modInt big.Int

// ModInt panics with ErrZeroModulus if mod is nil or zero.
func ModInt(mod *big.Int) *modInt {
	if mod == nil || mod.Sign() == 0 {
		panic(errors.Wrap(ErrZeroModulus, "ModInt"))
	}
	return (*modInt)(new(big.Int).Set(mod))
}

func (mi *modInt) Mul(x, y *big.Int) *big.Int {
	i := new(big.Int).Mul(x, y)
	return i.Mod(i, mi.i())
}

// Exp computes x^y mod m with right-to-left square-and-multiply.
// A negative exponent is a caller bug and panics with ErrNegativeExponent.
func (mi *modInt) Exp(x, y *big.Int) *big.Int {
	if y.Sign() < 0 {
		panic(errors.Wrapf(ErrNegativeExponent, "Exp: got exponent %s", y))
	}
	m := mi.i()
	acc := new(big.Int).Mod(one, m)
	if y.Sign() == 0 {
		return acc
	}
	base := new(big.Int).Mod(x, m)
	exp := new(big.Int).Set(y)
	for {
		if exp.Bit(0) == 1 {
			acc.Mul(acc, base)
			acc.Mod(acc, m)
		}
		exp.Rsh(exp, 1)
		if exp.Cmp(zero) == 0 {
			return acc
		}
		base.Mul(base, base)
		base.Mod(base, m)
	}
}

func (mi *modInt) i() *big.Int {
	return (*big.Int)(mi)
}

// ModExp returns base^exponent mod modulus.
// It panics on a negative exponent or a zero modulus.
func ModExp(base, exponent, modulus *big.Int) *big.Int {
	return ModInt(modulus).Exp(base, exponent)
}
