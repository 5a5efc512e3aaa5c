// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package test

import (
	"fmt"
	"math/big"
)

// Candidate is a decimal fixture with its known verdict.
type Candidate struct {
	Decimal string
	Prime   bool
}

var (
	// EndToEnd are the reference verdicts every primality entry point must reproduce.
	EndToEnd = []Candidate{
		{"1234687", true},
		{"1234689", false},
		{"123123423463", true},
		{"123123423465", false},
		{"123123423467", false},
		{"123123423469", true},
	}

	// NoSmallFactor are composites whose smallest prime factor exceeds 1013,
	// so only the witness rounds can reject them.
	NoSmallFactor = []Candidate{
		{"9624742921", false}, // 1171 * 2341 * 3511, a Carmichael number
		{"1042441", false},    // 1021^2
		{"1373653", false},    // 829 * 1657, a strong pseudoprime to bases 2 and 3
	}

	// Mersenne primes M61, M89, M107 and M127.
	Mersenne = []Candidate{
		{"2305843009213693951", true},
		{"618970019642690137449562111", true},
		{"162259276829213363391578010288127", true},
		{"170141183460469231731687303715884105727", true},
	}
)

// MustParse converts a decimal fixture into a *big.Int.
func MustParse(decimal string) *big.Int {
	n, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic(fmt.Errorf("MustParse: %q is not a decimal integer", decimal))
	}
	return n
}

// Product multiplies its arguments.
func Product(factors ...int64) *big.Int {
	n := big.NewInt(1)
	for _, f := range factors {
		n.Mul(n, big.NewInt(f))
	}
	return n
}
