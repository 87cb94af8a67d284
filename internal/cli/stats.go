package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"wordfreq/internal/adapter/analyzer"
	"wordfreq/internal/adapter/fs"
	"wordfreq/internal/adapter/report"
	"wordfreq/internal/domain"
	"wordfreq/internal/usecase"
)

var (
	statsInput    string
	statsTop      int
	statsEncoding string
	statsOut      string
	statsFormat   string
	statsAll      bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print word statistics for a file",
	Long: `Count words in a text file and print the totals and the most frequent
words. The ranking can also be exported as CSV, JSON or XLSX.

Examples:
  wordfreq stats --input book.txt
  wordfreq stats --input old.txt --encoding cp1251 --top 10
  wordfreq stats --input book.txt --out report.csv --all`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsInput, "input", "", "input text file (required)")
	statsCmd.Flags().IntVar(&statsTop, "top", analyzer.DefaultTopN, "number of top words (default from config)")
	statsCmd.Flags().StringVar(&statsEncoding, "encoding", "", "input encoding, e.g. utf-8 or cp1251 (default from config)")
	statsCmd.Flags().StringVarP(&statsOut, "out", "o", "", "write the ranking to a report file")
	statsCmd.Flags().StringVar(&statsFormat, "format", "", "report format: csv, json, xlsx (default from extension)")
	statsCmd.Flags().BoolVar(&statsAll, "all", false, "export every word instead of the top-N")
	statsCmd.MarkFlagRequired("input")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	top := cfg.Analyzer.TopN
	if cmd.Flags().Changed("top") {
		top = statsTop
	}
	if top <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTop, top)
	}

	encoding := cfg.Input.Encoding
	if statsEncoding != "" {
		encoding = statsEncoding
	}
	reader, err := fs.NewReader(encoding)
	if err != nil {
		return err
	}

	opts := cfg.AnalyzerOptions()
	opts.TopN = top
	a, err := analyzer.NewAnalyzer(opts)
	if err != nil {
		return err
	}

	analyzeUC := usecase.NewAnalyzeUseCase(reader, a, GetLogger())
	summary, err := analyzeUC.AnalyzeFile(statsInput)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), summary, top)

	out := cfg.Report.Output
	if statsOut != "" {
		out = statsOut
	}
	if out == "" {
		return nil
	}

	format := cfg.Report.Format
	if statsFormat != "" {
		format = statsFormat
	}
	rows := summary.Top
	if statsAll {
		rows = analyzeUC.Ranking(summary)
	}
	if err := writeReport(out, format, rows); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to: %s\n", out)
	return nil
}

func printSummary(w io.Writer, summary domain.Summary, top int) {
	fmt.Fprintf(w, "Total words:  %d\n", summary.TotalWords)
	fmt.Fprintf(w, "Unique words: %d\n", summary.UniqueWords)
	fmt.Fprintf(w, "Top-%d:\n", top)
	for _, wc := range summary.Top {
		fmt.Fprintf(w, "  %s: %d\n", wc.Word, wc.Count)
	}
}

func writeReport(path, format string, rows []domain.WordCount) error {
	writer, err := report.ForPath(path, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := writer.Write(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
