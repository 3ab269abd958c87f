package rs

// SPDX-FileCopyrightText: The rscodec Authors

import "sync"

// EncodeResult is one block's outcome from EncodeBatch, indexed the same
// as the input slice so callers can match results back to blocks.
type EncodeResult struct {
	Parity []byte
	Tag    byte
	Err    error
}

// DecodeResult is one block's outcome from DecodeBatch.
type DecodeResult struct {
	Data   []byte
	Status Status
	Err    error
}

// EncodeBatch distributes independent blocks across workers (spec §5:
// "block encode/decode calls are embarrassingly parallel across
// independent blocks... per-block operations must not be subdivided
// across workers"). Each worker only ever calls EncodeBlock, which holds
// no state across calls, so there is nothing to synchronize beyond
// collecting results. workers <= 0 defaults to one worker per block.
func (c *Codec) EncodeBatch(blocks [][]byte, workers int) []EncodeResult {
	results := make([]EncodeResult, len(blocks))
	c.runPool(len(blocks), workers, func(i int) {
		parity, tag, err := c.EncodeBlock(blocks[i])
		results[i] = EncodeResult{Parity: parity, Tag: tag, Err: err}
	})
	return results
}

// DecodeBatch is EncodeBatch's decode counterpart. Every block gets its
// own x/y working copy inside DecodeBlock, so concurrent calls never
// share mutable state.
func (c *Codec) DecodeBatch(data, parity [][]byte, tags []byte, parityTrusted bool, workers int) []DecodeResult {
	results := make([]DecodeResult, len(data))
	c.runPool(len(data), workers, func(i int) {
		corrected, status, err := c.DecodeBlock(data[i], parity[i], tags[i], parityTrusted)
		results[i] = DecodeResult{Data: corrected, Status: status, Err: err}
	})
	return results
}

// runPool fans n independent units of work out across at most workers
// goroutines and blocks until every unit has run.
func (c *Codec) runPool(n, workers int, work func(i int)) {
	if n == 0 {
		return
	}
	if workers <= 0 || workers > n {
		workers = n
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				work(i)
			}
		}()
	}
	wg.Wait()
}
