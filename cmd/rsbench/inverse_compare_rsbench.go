//go:build rsbench

package main

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/dabecart/rscodec/rs"
)

// compareInverseStrategies times rs.NaiveInverse, one call per nonzero
// field element, and logs the total and per-call time, the Go
// counterpart of timing ReedSolomon.c's MOD_USE_NAIVE branch. Only the
// naive search is timed here; the table/Euclid strategy the codec uses
// is not measured by this function.
func compareInverseStrategies(prime uint32, logger *log.Logger) {
	start := time.Now()
	for b := uint32(1); b < prime; b++ {
		if _, ok := rs.NaiveInverse(b, prime); !ok {
			logger.Fatal("naive inverse search found no inverse", "b", b, "prime", prime)
		}
	}
	elapsed := time.Since(start)

	logger.Info("naive inverse strategy",
		"prime", prime,
		"calls", prime-1,
		"elapsed", elapsed,
		"avg_per_call", elapsed/time.Duration(prime-1),
	)
}
