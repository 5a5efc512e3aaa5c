// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package random

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// MustGetRandomInt returns a uniform value in [0, 2^bits).
// It panics if it is unable to gather entropy from `rand` or when `bits` is <= 0
func MustGetRandomInt(rand io.Reader, bits int) *big.Int {
	if bits <= 0 {
		panic(fmt.Errorf("MustGetRandomInt: bits should be positive and non-zero, got %d", bits))
	}
	max := new(big.Int).Lsh(one, uint(bits))
	n, err := cryptorand.Int(rand, max)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomInt!"))
	}
	return n
}

// GetRandomPositiveInt returns a uniform value in [0, lessThan) by drawing
// lessThan.BitLen() bits and retrying until the draw is in range.
// It returns nil when lessThan is nil or not positive.
func GetRandomPositiveInt(rand io.Reader, lessThan *big.Int) *big.Int {
	if lessThan == nil || zero.Cmp(lessThan) != -1 {
		return nil
	}
	var try *big.Int
	for {
		try = MustGetRandomInt(rand, lessThan.BitLen())
		if try.Cmp(lessThan) < 0 {
			break
		}
	}
	return try
}

// bitReader hands out the bits of r one at a time, most significant first.
type bitReader struct {
	r    io.Reader
	buf  [1]byte
	left uint
}

func newBitReader(r io.Reader) *bitReader {
	return &bitReader{r: r}
}

func (b *bitReader) next() uint {
	if b.left == 0 {
		if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
			panic(errors.Wrap(err, "bitReader: failed to read entropy"))
		}
		b.left = 8
	}
	b.left--
	return uint(b.buf[0]>>b.left) & 1
}
