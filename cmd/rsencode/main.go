// Command rsencode reads a file in K-byte chunks and writes a parity
// file alongside it: E parity bytes plus one integrity tag byte per
// chunk, as specified by the file-level protocol in SPEC_FULL.md §6.2.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/dabecart/rscodec/internal/config"
	"github.com/dabecart/rscodec/internal/progress"
	"github.com/dabecart/rscodec/rs"
)

func main() {
	var (
		inputFile  = pflag.StringP("input", "i", "", "Input file to protect (required).")
		outputFile = pflag.StringP("output", "o", "", "Parity output file (default: <input>.rspar).")
		configPath = pflag.StringP("config", "c", "", "YAML config file overriding codec defaults.")
		dataSyms   = pflag.IntP("data-symbols", "k", 0, "Data symbols per block K (0: use config/default).")
		paritySyms = pflag.IntP("parity-symbols", "e", 0, "Parity symbols per block E (0: use config/default).")
		prime      = pflag.Uint32("prime", 0, "Field modulus P (0: use config/default).")
		workers    = pflag.IntP("workers", "j", 0, "Worker goroutines for batch encoding. 0 means one per block.")
		quiet      = pflag.BoolP("quiet", "q", false, "Suppress progress output.")
		help       = pflag.BoolP("help", "h", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i input-file [options]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}
	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "rsencode: --input is required")
		pflag.Usage()
		os.Exit(1)
	}
	if *outputFile == "" {
		*outputFile = *inputFile + ".rspar"
	}

	logger := log.New(os.Stderr)
	if *quiet {
		logger.SetLevel(log.WarnLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *dataSyms != 0 {
		cfg.Codec.K = *dataSyms
	}
	if *paritySyms != 0 {
		cfg.Codec.E = *paritySyms
	}
	if *prime != 0 {
		cfg.Codec.Prime = *prime
	}

	codec, err := rs.NewCodec(rs.Params{Prime: cfg.Codec.Prime, K: cfg.Codec.K, E: cfg.Codec.E})
	if err != nil {
		logger.Fatal("invalid codec parameters", "err", err)
	}

	if err := run(codec, cfg, *inputFile, *outputFile, logger); err != nil {
		logger.Fatal("encode failed", "err", err)
	}
}

func run(codec *rs.Codec, cfg config.Config, inputPath, outputPath string, logger *log.Logger) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	k := codec.Params().K
	e := codec.Params().E
	numChunks := int((info.Size() + int64(k) - 1) / int64(k))
	if numChunks == 0 {
		numChunks = 1
	}

	blocks := make([][]byte, 0, numChunks)
	for {
		chunk := make([]byte, k)
		n, err := io.ReadFull(in, chunk)
		if n > 0 {
			blocks = append(blocks, chunk)
		}
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	logger.Info("encoding", "chunks", len(blocks), "k", k, "e", e)

	bar := progress.New(os.Stderr, len(blocks))
	bar.Update(0)
	results := codec.EncodeBatch(blocks, cfg.Workers)
	bar.Update(len(blocks))
	bar.Done()

	for i, r := range results {
		if r.Err != nil {
			return fmt.Errorf("encoding chunk %d: %w", i, r.Err)
		}
		if _, err := out.Write(r.Parity); err != nil {
			return fmt.Errorf("writing parity for chunk %d: %w", i, err)
		}
		if _, err := out.Write([]byte{r.Tag}); err != nil {
			return fmt.Errorf("writing tag for chunk %d: %w", i, err)
		}
	}

	logger.Info("done", "parity_file", outputPath, "blocks", len(blocks))
	return nil
}
