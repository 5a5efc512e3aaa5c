// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"

	"github.com/binance-chain/primality/common"
)

// Tester decides primality by trial division against its sieve, falling
// back to Miller-Rabin witness rounds when the sieve is inconclusive.
type Tester struct {
	params  *Parameters
	witness *MillerRabin
}

var defaultTester = NewTester(nil)

// NewTester uses NewParameters(nil, nil) when params is nil.
func NewTester(params *Parameters) *Tester {
	if params == nil {
		params = NewParameters(nil, nil)
	}
	return &Tester{
		params:  params,
		witness: NewMillerRabin(params.Sampler(), params.Rounds()),
	}
}

func (t *Tester) Params() *Parameters {
	return t.params
}

// IsPrime reports whether n is prime (certainly, when the sieve decides) or
// a probable prime after the configured witness rounds. nil is not prime.
func (t *Tester) IsPrime(n *big.Int) bool {
	if n == nil {
		return false
	}
	switch result, p := t.params.Sieve().check(n); result {
	case DefinitelyPrime:
		common.Logger.Debugf("candidate %s: small prime", n)
		return true
	case DefinitelyComposite:
		if p == 0 {
			common.Logger.Debugf("candidate %s: below 2", n)
		} else {
			common.Logger.Debugf("candidate %s: divisible by %d", n, p)
		}
		return false
	}
	verdict := t.witness.Test(n)
	common.Logger.Debugf("candidate %s: probably prime after %d rounds: %t", n, t.witness.Rounds(), verdict)
	return verdict
}

// IsPrime tests n with the default sieve and crypto/rand witnesses.
// The round count defaults to DefaultRounds; passing more than one value,
// or a value <= 0, panics.
func IsPrime(n *big.Int, optionalRounds ...int) bool {
	if len(optionalRounds) == 0 {
		return defaultTester.IsPrime(n)
	}
	return NewTester(NewParameters(nil, nil, optionalRounds...)).IsPrime(n)
}
