// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality_test

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/decred/dcrd/dcrec/edwards/v2"
	"github.com/ipfs/go-log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/binance-chain/primality/common"
	"github.com/binance-chain/primality/common/random"
	. "github.com/binance-chain/primality/primality"
	"github.com/binance-chain/primality/test"
)

func setUp(level string) {
	if err := log.SetLogLevel(common.LoggerName, level); err != nil {
		panic(err)
	}
}

func TestIsPrimeEndToEnd(t *testing.T) {
	setUp("debug")

	for _, c := range test.EndToEnd {
		t.Run(c.Decimal, func(t *testing.T) {
			assert.Equal(t, c.Prime, IsPrime(test.MustParse(c.Decimal)))
		})
	}
}

func TestIsPrimeTablePrimesAndMultiples(t *testing.T) {
	setUp("info")

	for _, p := range DefaultSieve().Primes() {
		bp := new(big.Int).SetUint64(p)
		assert.True(t, IsPrime(bp), "%d", p)
		for k := int64(2); k < 12; k++ {
			assert.False(t, IsPrime(new(big.Int).Mul(bp, big.NewInt(k))), "%d * %d", p, k)
		}
	}
}

func TestIsPrimeSmallAndNegative(t *testing.T) {
	setUp("info")

	assert.False(t, IsPrime(big.NewInt(0)))
	assert.False(t, IsPrime(big.NewInt(1)))
	assert.False(t, IsPrime(nil))
	for _, n := range []int64{-1, -2, -3, -7, -1013, -1234687} {
		assert.False(t, IsPrime(big.NewInt(n)), "%d", n)
	}
	assert.True(t, IsPrime(big.NewInt(2)))
	for n := int64(4); n < 5000; n += 2 {
		assert.False(t, IsPrime(big.NewInt(n)), "%d", n)
	}
}

// ProbablyPrime is exact below 2^64, which makes it an oracle here.
func TestIsPrimeMatchesProbablyPrime(t *testing.T) {
	setUp("info")

	for n := int64(0); n < 20000; n++ {
		bn := big.NewInt(n)
		assert.Equal(t, bn.ProbablyPrime(0), IsPrime(bn), "%d", n)
	}
}

func TestIsPrimeIdempotentOnSmallFactorComposites(t *testing.T) {
	setUp("info")

	tester := NewTester(NewParameters(nil, random.NewBisectionSampler(nil), 1))
	n := test.MustParse("123123423465")
	for i := 0; i < 1000; i++ {
		assert.False(t, tester.IsPrime(n))
	}
}

func TestIsPrimeNoSmallFactor(t *testing.T) {
	setUp("info")

	for _, c := range test.NoSmallFactor {
		n := test.MustParse(c.Decimal)
		assert.Equal(t, Inconclusive, DefaultSieve().Check(n), c.Decimal)
		assert.Equal(t, c.Prime, IsPrime(n), c.Decimal)
	}
	assert.Equal(t, 0, test.Product(1171, 2341, 3511).Cmp(test.MustParse(test.NoSmallFactor[0].Decimal)))
	assert.False(t, IsPrime(test.Product(1019, 1021, 1031, 1033)))
}

func TestIsPrimeLargePrimes(t *testing.T) {
	setUp("info")

	fixtures := map[string]*big.Int{
		"secp256k1 field prime": btcec.S256().Params().P,
		"secp256k1 group order": btcec.S256().Params().N,
		"ed25519 field prime":   edwards.Edwards().Params().P,
		"ed25519 group order":   edwards.Edwards().Params().N,
	}
	for name, p := range fixtures {
		t.Run(name, func(t *testing.T) {
			before := new(big.Int).Set(p)
			assert.True(t, IsPrime(p))
			assert.Equal(t, 0, before.Cmp(p), "candidate must not be mutated")
			assert.False(t, IsPrime(new(big.Int).Mul(p, btcec.S256().Params().N)))
		})
	}
	for _, c := range test.Mersenne {
		assert.True(t, IsPrime(test.MustParse(c.Decimal)), c.Decimal)
	}
	// M67 = 193707721 * 761838257287
	assert.False(t, IsPrime(test.MustParse("147573952589676412927")))
}

func TestIsPrimeOptionalRounds(t *testing.T) {
	setUp("info")

	assert.True(t, IsPrime(big.NewInt(1234687), 1))
	assert.True(t, IsPrime(big.NewInt(1234687), 40))
	assert.False(t, IsPrime(big.NewInt(1234689), 1))

	assert.Panics(t, func() { IsPrime(big.NewInt(1234687), 1, 2) })
	defer func() {
		r := recover()
		if !assert.NotNil(t, r) {
			return
		}
		assert.Equal(t, ErrInvalidRounds, errors.Cause(r.(error)))
	}()
	IsPrime(big.NewInt(1234687), 0)
}

func TestNewParametersDefaults(t *testing.T) {
	params := NewParameters(nil, nil)
	assert.Equal(t, DefaultRounds, params.Rounds())
	assert.Equal(t, DefaultSieve(), params.Sieve())
	assert.IsType(t, (*random.RejectionSampler)(nil), params.Sampler())

	sieve, err := NewSieve(100)
	assert.NoError(t, err)
	sampler := random.NewBisectionSampler(nil)
	params = NewParameters(sieve, sampler, 3)
	assert.Equal(t, 3, params.Rounds())
	assert.Equal(t, sieve, params.Sieve())
	assert.Equal(t, sampler, params.Sampler())

	tester := NewTester(params)
	assert.Equal(t, params, tester.Params())
	// 1021^2 passes a sieve up to 100 and is rejected by the witness rounds
	assert.False(t, tester.IsPrime(big.NewInt(1021*1021)))
	assert.True(t, tester.IsPrime(big.NewInt(1021)))
}

func TestTesterWithSeededWitnessesIsReproducible(t *testing.T) {
	setUp("info")

	newTester := func() *Tester {
		sampler := random.NewRejectionSampler(random.NewSeededReader([]byte("reproducible")))
		return NewTester(NewParameters(nil, sampler, 1))
	}
	n := test.MustParse("9624742921")
	a, b := newTester(), newTester()
	for i := 0; i < 200; i++ {
		assert.Equal(t, a.IsPrime(n), b.IsPrime(n))
	}
}

func BenchmarkIsPrime(b *testing.B) {
	setUp("info")

	p := btcec.S256().Params().P
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsPrime(p)
	}
}
