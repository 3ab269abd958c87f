// Command rsgen produces random test corpora for rsencode/rsdecode: a
// clean data file, the matching parity file, and an optional corrupted
// copy of the data file with a fixed number of errors injected per
// block. The error positions are chosen with a Fisher-Yates shuffle,
// mirroring the reference implementation's shuffleArray/generateRandom
// (SimulationTools.c), so that positions within a block never repeat.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/dabecart/rscodec/internal/config"
	"github.com/dabecart/rscodec/rs"
)

func main() {
	var (
		count      = pflag.IntP("count", "n", 100, "Number of blocks to generate.")
		errors     = pflag.IntP("errors", "e", 0, "Number of data-side errors to inject per block.")
		seed       = pflag.Int64P("seed", "s", 1, "PRNG seed, for reproducible corpora.")
		outPrefix  = pflag.StringP("output-prefix", "o", "rsgen", "Prefix for the generated <prefix>.data, <prefix>.corrupted and <prefix>.rspar files.")
		configPath = pflag.StringP("config", "c", "", "YAML config file overriding codec defaults.")
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
	if *errors > codec.Params().K {
		logger.Fatal("errors cannot exceed K", "errors", *errors, "k", codec.Params().K)
	}
	if *errors >= codec.Params().E {
		logger.Warn("injecting errors >= E, blocks are expected to be uncorrectable", "errors", *errors, "e", codec.Params().E)
	}

	if err := generate(codec, *count, *errors, *seed, *outPrefix, logger); err != nil {
		logger.Fatal("generation failed", "err", err)
	}
}

func generate(codec *rs.Codec, count, numErrors int, seed int64, prefix string, logger *log.Logger) error {
	rng := rand.New(rand.NewSource(seed))
	k := codec.Params().K

	dataFile, err := os.Create(prefix + ".data")
	if err != nil {
		return fmt.Errorf("creating data file: %w", err)
	}
	defer dataFile.Close()

	parityFile, err := os.Create(prefix + ".rspar")
	if err != nil {
		return fmt.Errorf("creating parity file: %w", err)
	}
	defer parityFile.Close()

	var corruptedFile *os.File
	if numErrors > 0 {
		corruptedFile, err = os.Create(prefix + ".corrupted")
		if err != nil {
			return fmt.Errorf("creating corrupted file: %w", err)
		}
		defer corruptedFile.Close()
	}

	for b := 0; b < count; b++ {
		data := make([]byte, k)
		rng.Read(data)

		if _, err := dataFile.Write(data); err != nil {
			return fmt.Errorf("writing block %d: %w", b, err)
		}

		parity, tag, err := codec.EncodeBlock(data)
		if err != nil {
			return fmt.Errorf("encoding block %d: %w", b, err)
		}
		if _, err := parityFile.Write(parity); err != nil {
			return fmt.Errorf("writing parity for block %d: %w", b, err)
		}
		if _, err := parityFile.Write([]byte{tag}); err != nil {
			return fmt.Errorf("writing tag for block %d: %w", b, err)
		}

		if corruptedFile != nil {
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
			if _, err := corruptedFile.Write(corrupted); err != nil {
				return fmt.Errorf("writing corrupted block %d: %w", b, err)
			}
		}
	}

	logger.Info("generated", "blocks", count, "k", k, "errors_per_block", numErrors, "prefix", prefix)
	return nil
}

// shufflePositions returns [0, n) in Fisher-Yates shuffled order, the
// same construction SimulationTools.c's shuffleArray uses to pick
// non-repeating error positions within a block.
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
