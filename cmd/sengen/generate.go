package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/nihei9/sengen/driver"
	"github.com/nihei9/sengen/grammar/symbol"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	count         *int
	seed          *int64
	maxExpansions *int
	separator     *string
	tree          *bool
	verbose       *bool
}{}

func init() {
	flags := rootCmd.Flags()
	generateFlags.count = flags.IntP("count", "n", 1, "number of sentences to generate")
	generateFlags.seed = flags.Int64("seed", 0, "seed of the random source (default current time)")
	generateFlags.maxExpansions = flags.Int("max-expansions", 0, "fail when a sentence needs more expansions than this (0 means no limit)")
	generateFlags.separator = flags.StringP("separator", "s", " ", "string put between two terminals")
	generateFlags.tree = flags.Bool("tree", false, "print derivation trees instead of sentences")
	generateFlags.verbose = flags.BoolP("verbose", "v", false, "print diagnostics to stderr")
}

type generateConfig struct {
	count         int
	seed          int64
	maxExpansions int
	separator     string
	tree          bool
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}

	logger := log.New(io.Discard, "", 0)
	if *generateFlags.verbose {
		logger = log.New(os.Stderr, "sengen: ", 0)
	}

	gram, err := readGrammar(grmPath)
	if err != nil {
		return err
	}
	logger.Printf("start symbol: %v, non-terminals: %v, productions: %v", gram.StartSymbol(), len(gram.NonTerminals()), gram.ProductionCount())
	for _, sym := range gram.Unreachable() {
		logger.Printf("unreachable non-terminal: %v", sym)
	}
	for _, sym := range gram.Unproductive() {
		logger.Printf("unproductive non-terminal: %v; a derivation reaching it never finishes", sym)
	}

	seed := time.Now().UnixNano()
	if cmd.Flags().Changed("seed") {
		seed = *generateFlags.seed
	}
	logger.Printf("seed: %v", seed)

	return writeSentences(cmd.OutOrStdout(), gram, &generateConfig{
		count:         *generateFlags.count,
		seed:          seed,
		maxExpansions: *generateFlags.maxExpansions,
		separator:     *generateFlags.separator,
		tree:          *generateFlags.tree,
	}, logger)
}

// writeSentences writes one sentence, or one derivation tree, per line.
func writeSentences(w io.Writer, gram driver.Grammar, cfg *generateConfig, logger *log.Logger) error {
	if cfg.count < 1 {
		return fmt.Errorf("The number of sentences must be greater than or equal to 1: %v", cfg.count)
	}

	opts := []driver.GeneratorOption{
		driver.Seed(cfg.seed),
		driver.MaxExpansions(cfg.maxExpansions),
	}
	if cfg.tree {
		opts = append(opts, driver.RecordTree())
	}
	g, err := driver.NewGenerator(gram, opts...)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var sink driver.Sink
	ws := driver.NewWriterSink(bw, cfg.separator)
	if cfg.tree {
		sink = driver.SinkFunc(func(sym symbol.Symbol) error {
			return nil
		})
	} else {
		sink = ws
	}
	for i := 0; i < cfg.count; i++ {
		ws.Reset()
		err := g.Generate(sink)
		if err != nil {
			ferr := bw.Flush()
			if ferr != nil {
				return fmt.Errorf("Failed to generate a sentence: %w (failed to write the partial output: %v)", err, ferr)
			}
			return fmt.Errorf("Failed to generate a sentence: %w", err)
		}
		logger.Printf("sentence #%v: %v expansions", i+1, g.Expansions())

		if cfg.tree {
			driver.PrintTree(bw, g.Tree())
		} else {
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}
