// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"context"
	"math/big"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/binance-chain/primality/common"
)

// ErrTestCancelled is returned from IsPrimeConcurrent when the context is
// done before every candidate has been tested.
var ErrTestCancelled = errors.New("primality test work cancelled")

// IsPrimeConcurrent tests every candidate and returns the verdicts in input
// order. Candidates are spread over `concurrency` workers, defaulting to the
// number of CPUs when concurrency < 1. Each candidate gets its own witness
// draws; workers share only the read-only Tester.
//
// nil candidates are reported before any work starts, one *Error per
// offending index, aggregated with go-multierror.
func (t *Tester) IsPrimeConcurrent(ctx context.Context, candidates []*big.Int, concurrency int) ([]bool, error) {
	var multiErr error
	for i, n := range candidates {
		if n == nil {
			multiErr = multierror.Append(multiErr, NewError(ErrNilCandidate, i, nil))
		}
	}
	if multiErr != nil {
		return nil, multiErr
	}

	results := make([]bool, len(candidates))
	if len(candidates) == 0 {
		return results, nil
	}
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}
	if len(candidates) < concurrency {
		concurrency = len(candidates)
	}

	common.Logger.Debugf("testing %d candidates with %d workers", len(candidates), concurrency)
	start := time.Now()

	jobCh := make(chan int)
	waitGroup := &sync.WaitGroup{}
	var done int64

	workerCtx, cancelWorkerCtx := context.WithCancel(ctx)
	defer cancelWorkerCtx()

	for i := 0; i < concurrency; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for idx := range jobCh {
				if workerCtx.Err() != nil {
					continue
				}
				results[idx] = t.IsPrime(candidates[idx])
				atomic.AddInt64(&done, 1)
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for i := range candidates {
			select {
			case jobCh <- i:
			case <-workerCtx.Done():
				return
			}
		}
	}()

	waitGroup.Wait()
	if finished := atomic.LoadInt64(&done); finished < int64(len(candidates)) {
		common.Logger.Warnf("batch cancelled after %d of %d candidates", finished, len(candidates))
		return nil, ErrTestCancelled
	}
	common.Logger.Debugf("batch of %d candidates done. took %s", len(candidates), time.Since(start))
	return results, nil
}
