// Command rsbench is the Go counterpart of the reference
// implementation's testBench (SimulationTools.c): it runs a large
// number of random encode/decode trials with a random error count per
// trial, tallies outcomes, and times the decoder. Unlike the reference,
// timing a recursive doCombinations call by wall clock, it exercises the
// library's iterative combinatorial search end to end.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	"github.com/dabecart/rscodec/internal/config"
	"github.com/dabecart/rscodec/internal/progress"
	"github.com/dabecart/rscodec/rs"
)

type tally struct {
	total                       int
	success                     int
	fixedIncorrectly            int
	exceedsErrorLimit           int
	fixedIncorrectlyExceedsMax  int
	minElapsed, maxElapsed      time.Duration
	totalElapsed                time.Duration
}

func main() {
	var (
		totalTests = pflag.IntP("tests", "n", 10000, "Number of random trials to run.")
		maxErrors  = pflag.IntP("max-errors", "m", 0, "Maximum data-side errors per trial (default: E).")
		seed       = pflag.Int64P("seed", "s", 0, "PRNG seed; 0 seeds from the current time.")
		reportDir  = pflag.StringP("report-dir", "r", "", "Directory to write a timestamped report file. Empty disables the report.")
		configPath = pflag.StringP("config", "c", "", "YAML config file overriding codec defaults.")
		compareInv = pflag.Bool("compare-inverse", false, "Time the naive inverse search over every nonzero field element (requires a build with -tags rsbench).")
		help       = pflag.BoolP("help", "h", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	logger := log.New(os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}

	codec, err := rs.NewCodec(rs.Params{Prime: cfg.Codec.Prime, K: cfg.Codec.K, E: cfg.Codec.E})
	if err != nil {
		logger.Fatal("invalid codec parameters", "err", err)
	}

	if *maxErrors <= 0 {
		*maxErrors = codec.Params().E
	}
	if *maxErrors > codec.Params().K {
		logger.Fatal("max-errors cannot exceed K", "max_errors", *maxErrors, "k", codec.Params().K)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	t := run(codec, *totalTests, *maxErrors, *seed, logger)
	report := formatReport(codec, t)
	fmt.Print(report)

	if *reportDir != "" {
		if err := writeReport(*reportDir, report); err != nil {
			logger.Error("writing report file", "err", err)
		}
	}

	if *compareInv {
		compareInverseStrategies(codec.Params().Prime, logger)
	}
}

func run(codec *rs.Codec, totalTests, maxErrors int, seed int64, logger *log.Logger) tally {
	rng := rand.New(rand.NewSource(seed))
	k := codec.Params().K

	t := tally{total: totalTests, minElapsed: time.Duration(1<<63 - 1)}
	bar := progress.New(os.Stderr, totalTests)

	for i := 0; i < totalTests; i++ {
		data := make([]byte, k)
		rng.Read(data)

		parity, tag, err := codec.EncodeBlock(data)
		if err != nil {
			logger.Fatal("encode failed mid-benchmark", "err", err)
		}

		numErrors := 1 + rng.Intn(maxErrors)
		corrupted := append([]byte(nil), data...)
		for _, pos := range shufflePositions(rng, k)[:numErrors] {
			var v byte
			for {
				v = byte(rng.Intn(256))
				if v != corrupted[pos] {
					break
				}
			}
			corrupted[pos] = v
		}

		start := time.Now()
		got, status, err := codec.DecodeBlock(corrupted, parity, tag, true)
		elapsed := time.Since(start)
		if err != nil {
			logger.Fatal("decode failed mid-benchmark", "err", err)
		}

		correct := status != rs.Uncorrectable && string(got) == string(data)
		exceedsLimit := numErrors >= codec.Params().E

		switch {
		case correct:
			t.success++
		case status != rs.Uncorrectable && exceedsLimit:
			t.fixedIncorrectlyExceedsMax++
			t.exceedsErrorLimit++
		case status != rs.Uncorrectable:
			t.fixedIncorrectly++
		case exceedsLimit:
			t.exceedsErrorLimit++
		}

		t.totalElapsed += elapsed
		if elapsed > t.maxElapsed {
			t.maxElapsed = elapsed
		}
		if elapsed < t.minElapsed {
			t.minElapsed = elapsed
		}

		bar.Update(i + 1)
	}
	bar.Done()

	return t
}

func formatReport(codec *rs.Codec, t tally) string {
	avg := t.totalElapsed / time.Duration(t.total)
	bitRate := float64(codec.Params().K) * float64(t.total) * 8 / t.totalElapsed.Seconds()

	return fmt.Sprintf(
		"############# BENCH RESULTS ###############\n"+
			"Success rate: %d/%d. Fixed incorrectly: %d.\n"+
			"Exceeding error limit: %d. Fixed incorrectly: %d.\n"+
			"Bitrate: %.2f bits/sec\n"+
			"Average elapsed time: %s\n"+
			"Minimum elapsed time: %s\n"+
			"Maximum elapsed time: %s\n",
		t.success, t.total-t.exceedsErrorLimit, t.fixedIncorrectly,
		t.exceedsErrorLimit, t.fixedIncorrectlyExceedsMax,
		bitRate, avg, t.minElapsed, t.maxElapsed,
	)
}

func writeReport(dir, contents string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	pattern, err := strftime.New("rsbench-%Y%m%d-%H%M%S.txt")
	if err != nil {
		return fmt.Errorf("building report filename pattern: %w", err)
	}
	name := pattern.FormatString(time.Now())

	return os.WriteFile(dir+string(os.PathSeparator)+name, []byte(contents), 0o644)
}

// shufflePositions returns [0, n) in Fisher-Yates shuffled order,
// mirroring SimulationTools.c's shuffleArray.
func shufflePositions(rng *rand.Rand, n int) []int {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pos[i], pos[j] = pos[j], pos[i]
	}
	return pos
}
