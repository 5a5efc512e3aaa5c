// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"
	"math/bits"
	"sync"

	"github.com/otiai10/primes"
	"github.com/pkg/errors"
)

// MaxSieveLimit bounds the table size accepted by NewSieve.
const MaxSieveLimit = 1 << 20

type SieveResult int

const (
	Inconclusive SieveResult = iota
	DefinitelyPrime
	DefinitelyComposite
)

func (r SieveResult) String() string {
	switch r {
	case Inconclusive:
		return "inconclusive"
	case DefinitelyPrime:
		return "prime"
	case DefinitelyComposite:
		return "composite"
	}
	return "unknown"
}

var ErrInvalidSieveLimit = errors.New("sieve limit out of range")

// smallPrimes holds the first 170 primes. Candidates equal to one of them
// are prime and candidates divisible by one of them are composite, without
// any randomized work.
var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307, 311, 313, 317,
	331, 337, 347, 349, 353, 359, 367, 373, 379, 383, 389, 397, 401, 409, 419,
	421, 431, 433, 439, 443, 449, 457, 461, 463, 467, 479, 487, 491, 499, 503,
	509, 521, 523, 541, 547, 557, 563, 569, 571, 577, 587, 593, 599, 601, 607,
	613, 617, 619, 631, 641, 643, 647, 653, 659, 661, 673, 677, 683, 691, 701,
	709, 719, 727, 733, 739, 743, 751, 757, 761, 769, 773, 787, 797, 809, 811,
	821, 823, 827, 829, 839, 853, 857, 859, 863, 877, 881, 883, 887, 907, 911,
	919, 929, 937, 941, 947, 953, 967, 971, 977, 983, 991, 997, 1009, 1013,
}

var defaultSieve = newSieve(smallPrimes)

// primes.Until shares an unsynchronized cache between calls.
var primesMtx sync.Mutex

// primeGroup is a run of consecutive table primes whose product fits in a
// uint64. A candidate is reduced mod the product once and the remainder is
// then tested against each prime of the run without further big.Int work.
type primeGroup struct {
	product *big.Int
	primes  []uint64
}

// Sieve is a trial-division filter over a fixed ascending table of primes.
// It is immutable and safe for concurrent use.
type Sieve struct {
	primes []uint64
	groups []primeGroup
}

// DefaultSieve returns the sieve over the first 170 primes (2 to 1013).
func DefaultSieve() *Sieve {
	return defaultSieve
}

// NewSieve builds a sieve over every prime <= limit.
func NewSieve(limit int64) (*Sieve, error) {
	if limit < 2 || MaxSieveLimit < limit {
		return nil, errors.Wrapf(ErrInvalidSieveLimit, "NewSieve: limit %d is not in [2, %d]", limit, MaxSieveLimit)
	}
	primesMtx.Lock()
	list := primes.Until(limit).List()
	table := make([]uint64, len(list))
	for i, p := range list {
		table[i] = uint64(p)
	}
	primesMtx.Unlock()
	return newSieve(table), nil
}

func newSieve(table []uint64) *Sieve {
	s := &Sieve{primes: table}
	var product uint64 = 1
	start := 0
	for i, p := range table {
		if hi, _ := bits.Mul64(product, p); hi != 0 {
			s.groups = append(s.groups, primeGroup{new(big.Int).SetUint64(product), table[start:i]})
			product, start = 1, i
		}
		product *= p
	}
	if start < len(table) {
		s.groups = append(s.groups, primeGroup{new(big.Int).SetUint64(product), table[start:]})
	}
	return s
}

// Check classifies n against the table.
func (s *Sieve) Check(n *big.Int) SieveResult {
	result, _ := s.check(n)
	return result
}

// check also returns the table prime that decided the result, or 0.
func (s *Sieve) check(n *big.Int) (SieveResult, uint64) {
	if n.Cmp(two) < 0 {
		return DefinitelyComposite, 0
	}
	small := n.IsUint64()
	var v uint64
	if small {
		v = n.Uint64()
	}
	rem := new(big.Int)
	for _, g := range s.groups {
		m := rem.Mod(n, g.product).Uint64()
		for _, p := range g.primes {
			if m%p != 0 {
				continue
			}
			if small && v == p {
				return DefinitelyPrime, p
			}
			return DefinitelyComposite, p
		}
	}
	return Inconclusive, 0
}

// Primes returns a copy of the table.
func (s *Sieve) Primes() []uint64 {
	out := make([]uint64, len(s.primes))
	copy(out, s.primes)
	return out
}

// Largest returns the largest table prime, or 0 for an empty table.
func (s *Sieve) Largest() uint64 {
	if len(s.primes) == 0 {
		return 0
	}
	return s.primes[len(s.primes)-1]
}
