//go:build !rsbench

package main

import "github.com/charmbracelet/log"

// compareInverseStrategies reports that the naive-inverse comparison
// named by spec §9 ("naive vs extended Euclid vs table lookup") is only
// built into rsbench when compiled with the rsbench tag, since the naive
// strategy itself (rs.NaiveInverse) is gated the same way.
func compareInverseStrategies(prime uint32, logger *log.Logger) {
	logger.Warn("--compare-inverse requires a build with -tags rsbench")
}
