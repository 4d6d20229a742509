// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftregistry/counter"
)

func TestAcquireRelease(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first slot")
	assert.True(t, c.Acquire(2), "second slot")
	assert.False(t, c.Acquire(2), "over limit")
	assert.Equal(t, uint64(2), c.Uint64(), "in use")

	c.Release()
	assert.Equal(t, uint64(1), c.Uint64(), "after release")
	assert.True(t, c.Acquire(2), "slot after release")
}

func TestConcurrentAcquire(t *testing.T) {
	var c counter.Counter
	const limit = 10

	var wg sync.WaitGroup
	var mutex sync.Mutex
	granted := 0

	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(limit) {
				mutex.Lock()
				granted += 1
				mutex.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, granted, "granted slots")
	assert.Equal(t, uint64(limit), c.Uint64(), "in use")
}
