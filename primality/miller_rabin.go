// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/binance-chain/primality/common"
	"github.com/binance-chain/primality/common/random"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)

	ErrInvalidRounds = errors.New("the number of witness rounds must be positive")
)

// modArith is satisfied by common.ModInt.
type modArith interface {
	Exp(x, y *big.Int) *big.Int
	Mul(x, y *big.Int) *big.Int
}

// MillerRabin runs a fixed number of randomized Miller-Rabin rounds.
// It holds no per-candidate state and is safe for concurrent use when its
// Sampler is.
type MillerRabin struct {
	sampler random.Sampler
	rounds  int
}

// NewMillerRabin panics with ErrInvalidRounds when rounds <= 0.
// A nil sampler selects uniform witnesses from crypto/rand.
func NewMillerRabin(sampler random.Sampler, rounds int) *MillerRabin {
	if rounds <= 0 {
		panic(errors.Wrapf(ErrInvalidRounds, "NewMillerRabin: got %d", rounds))
	}
	if sampler == nil {
		sampler = random.NewRejectionSampler(nil)
	}
	return &MillerRabin{sampler: sampler, rounds: rounds}
}

func (mr *MillerRabin) Rounds() int {
	return mr.rounds
}

// Test reports whether n is a probable prime. A composite n passes with
// probability at most ErrorBound(mr.Rounds()) when witnesses are uniform.
// Primes always pass.
func (mr *MillerRabin) Test(n *big.Int) bool {
	switch {
	case n.Cmp(one) <= 0:
		return false
	case n.Cmp(two) == 0:
		return true
	case n.Bit(0) == 0:
		return false
	case n.Cmp(three) == 0:
		// [2, n-2] is empty
		return true
	}

	s, d := decompose(n)
	nMinusOne := new(big.Int).Sub(n, one)
	nMinusTwo := new(big.Int).Sub(n, two)
	modN := common.ModInt(n)

	for round := 1; round <= mr.rounds; round++ {
		a := mr.sampler.Int(two, nMinusTwo)
		if !strongProbablePrime(modN, a, d, s, nMinusOne) {
			common.Logger.Debugf("candidate %s: witness %s proves compositeness in round %d", n, a, round)
			return false
		}
	}
	return true
}

// decompose returns s and odd d with n-1 = 2^s * d. n must be odd and > 1.
func decompose(n *big.Int) (int, *big.Int) {
	d := new(big.Int).Sub(n, one)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}
	return s, d
}

// strongProbablePrime runs one round with witness a. It returns false when a
// proves n composite: a^d is neither 1 nor n-1 and n-1 never appears among
// the next s-1 squarings, or 1 appears first (a nontrivial square root of 1).
func strongProbablePrime(modN modArith, a, d *big.Int, s int, nMinusOne *big.Int) bool {
	x := modN.Exp(a, d)
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}
	for r := 1; r < s; r++ {
		x = modN.Mul(x, x)
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
		if x.Cmp(one) == 0 {
			return false
		}
	}
	return false
}

// ErrorBound is the worst-case probability 4^-rounds that a composite
// candidate survives all rounds with uniformly drawn witnesses.
func ErrorBound(rounds int) float64 {
	return math.Pow(4, -float64(rounds))
}
