// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"github.com/pkg/errors"

	"github.com/binance-chain/primality/common/random"
)

type Parameters struct {
	sieve   *Sieve
	sampler random.Sampler
	rounds  int
}

const (
	DefaultRounds = 10
)

// NewParameters configures a Tester. A nil sieve selects DefaultSieve and a
// nil sampler selects uniform witnesses from crypto/rand. The round count
// defaults to DefaultRounds.
func NewParameters(sieve *Sieve, sampler random.Sampler, optionalRounds ...int) *Parameters {
	var rounds int
	if 0 < len(optionalRounds) {
		if 1 < len(optionalRounds) {
			panic(errors.New("NewParameters: expected 0 or 1 item in `optionalRounds`"))
		}
		rounds = optionalRounds[0]
	} else {
		rounds = DefaultRounds
	}
	if rounds <= 0 {
		panic(errors.Wrapf(ErrInvalidRounds, "NewParameters: got %d", rounds))
	}
	if sieve == nil {
		sieve = DefaultSieve()
	}
	if sampler == nil {
		sampler = random.NewRejectionSampler(nil)
	}
	return &Parameters{
		sieve:   sieve,
		sampler: sampler,
		rounds:  rounds,
	}
}

func (params *Parameters) Sieve() *Sieve {
	return params.sieve
}

func (params *Parameters) Sampler() random.Sampler {
	return params.sampler
}

func (params *Parameters) Rounds() int {
	return params.rounds
}
