package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"wordfreq/config"
	"wordfreq/internal/adapter/analyzer"
	"wordfreq/internal/adapter/fs"
)

type variant struct {
	name        string
	punctuation analyzer.Punctuation
	charset     analyzer.Charset
}

var variants = []variant{
	{"boundary/word", analyzer.PunctuationBoundary, analyzer.CharsetWord},
	{"boundary/alpha", analyzer.PunctuationBoundary, analyzer.CharsetAlpha},
	{"strip/word", analyzer.PunctuationStrip, analyzer.CharsetWord},
	{"strip/alpha", analyzer.PunctuationStrip, analyzer.CharsetAlpha},
}

func main() {
	input := flag.String("input", "", "Text file to analyze")
	dir := flag.String("dir", ".", "Directory to load wordfreq.yaml from")
	top := flag.Int("n", 5, "Number of top words per variant")
	rounds := flag.Int("rounds", 10, "Timed runs per variant")
	flag.Parse()

	if *input == "" {
		fmt.Println("Usage: go run cmd/benchmark/main.go -input book.txt [-n 5] [-rounds 10]")
		fmt.Println("\nCompares every punctuation/charset policy on one file:")
		fmt.Println("  1. Average analysis time")
		fmt.Println("  2. Total and unique word counts")
		fmt.Println("  3. Top words")
		os.Exit(1)
	}
	if *rounds < 1 {
		*rounds = 1
	}

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	reader, err := fs.NewReader(cfg.Input.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	text, err := reader.ReadText(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("WORD FREQUENCY POLICY BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Input:    %s (%d bytes, %s)\n", *input, len(text), reader.Encoding())
	fmt.Printf("Rounds:   %d\n\n", *rounds)

	for _, v := range variants {
		opts := cfg.AnalyzerOptions()
		opts.Punctuation = v.punctuation
		opts.Charset = v.charset
		opts.TopN = *top

		a, err := analyzer.NewAnalyzer(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", v.name, err)
			continue
		}

		var elapsed time.Duration
		summary := a.Analyze(text) // warm-up
		for i := 0; i < *rounds; i++ {
			start := time.Now()
			summary = a.Analyze(text)
			elapsed += time.Since(start)
		}
		avg := elapsed / time.Duration(*rounds)

		fmt.Printf("%s\n", v.name)
		fmt.Println(strings.Repeat("-", 70))
		fmt.Printf("  Avg time:     %s\n", avg)
		fmt.Printf("  Total words:  %d\n", summary.TotalWords)
		fmt.Printf("  Unique words: %d\n", summary.UniqueWords)
		for i, wc := range summary.Top {
			fmt.Printf("  %d. %-20s %d\n", i+1, wc.Word, wc.Count)
		}
		fmt.Println()
	}
}
