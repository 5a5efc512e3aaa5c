// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package random

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// ErrInvalidRange is the cause of the panic raised when a Sampler is asked
// for a value in [low, high] with low > high.
var ErrInvalidRange = errors.New("sampling range is empty: low > high")

// Sampler draws integers from an inclusive range.
type Sampler interface {
	// Int returns a fresh value in [low, high]. It panics if low > high.
	Int(low, high *big.Int) *big.Int
}

// RejectionSampler is exactly uniform over [low, high]: it draws
// bitlen(high-low) bits and rejects draws above high-low.
type RejectionSampler struct {
	rand io.Reader
}

// NewRejectionSampler uses crypto/rand when rand is nil.
func NewRejectionSampler(rand io.Reader) *RejectionSampler {
	if rand == nil {
		rand = cryptorand.Reader
	}
	return &RejectionSampler{rand: rand}
}

func (s *RejectionSampler) Int(low, high *big.Int) *big.Int {
	span := checkRange(low, high)
	if span.Sign() == 0 {
		return new(big.Int).Set(low)
	}
	try := GetRandomPositiveInt(s.rand, span.Add(span, one))
	return try.Add(try, low)
}

// BisectionSampler narrows [low, high] to a single value by repeatedly
// keeping the lower half [low, mid] or the upper half [mid+1, high] on one
// random bit. It needs about bitlen(high-low) bits per draw but it is only
// uniform when high-low+1 is a power of two; otherwise values in the larger
// halves are favoured.
type BisectionSampler struct {
	rand io.Reader
}

// NewBisectionSampler uses crypto/rand when rand is nil.
func NewBisectionSampler(rand io.Reader) *BisectionSampler {
	if rand == nil {
		rand = cryptorand.Reader
	}
	return &BisectionSampler{rand: rand}
}

func (s *BisectionSampler) Int(low, high *big.Int) *big.Int {
	checkRange(low, high)
	lo, hi := new(big.Int).Set(low), new(big.Int).Set(high)
	mid := new(big.Int)
	bits := newBitReader(s.rand)
	for lo.Cmp(hi) != 0 {
		// Rsh floors, so mid is in [lo, hi) for negative bounds too
		mid.Add(lo, hi)
		mid.Rsh(mid, 1)
		if bits.next() == 0 {
			hi.Set(mid)
		} else {
			lo.Add(mid, one)
		}
	}
	return lo
}

// checkRange returns high-low and panics when it is negative.
func checkRange(low, high *big.Int) *big.Int {
	if low == nil || high == nil {
		panic(errors.Wrap(ErrInvalidRange, "nil bound"))
	}
	span := new(big.Int).Sub(high, low)
	if span.Sign() < 0 {
		panic(errors.Wrapf(ErrInvalidRange, "low %s, high %s", low, high))
	}
	return span
}
