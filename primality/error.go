// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

var ErrNilCandidate = errors.New("candidate is nil")

// Error ties a failure to the position of a candidate in a batch.
type Error struct {
	cause     error
	index     int
	candidate *big.Int
}

func NewError(err error, index int, candidate *big.Int) *Error {
	return &Error{cause: err, index: index, candidate: candidate}
}

func (err *Error) Unwrap() error { return err.cause }

func (err *Error) Cause() error { return err.cause }

func (err *Error) Index() int { return err.index }

func (err *Error) Candidate() *big.Int { return err.candidate }

func (err *Error) Error() string {
	if err == nil || err.cause == nil {
		return "Error is nil"
	}
	if err.candidate != nil {
		return fmt.Sprintf("candidate %d (%s): %s", err.index, err.candidate, err.cause.Error())
	}
	return fmt.Sprintf("candidate %d: %s", err.index, err.cause.Error())
}
