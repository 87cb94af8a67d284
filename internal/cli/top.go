package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"wordfreq/internal/usecase"
)

var (
	topN    int
	topJSON bool
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most frequent words of the indexed corpus",
	Long: `Merge the counts of every indexed file and print the most frequent words.

Examples:
  wordfreq top
  wordfreq top -n 20 --json`,
	Args: cobra.NoArgs,
	RunE: runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntVarP(&topN, "top", "n", 0, "number of words (default from config)")
	topCmd.Flags().BoolVar(&topJSON, "json", false, "output as JSON")
}

func runTop(cmd *cobra.Command, args []string) error {
	n := GetConfig().Analyzer.TopN
	if cmd.Flags().Changed("top") {
		n = topN
	}
	if n <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTop, n)
	}

	st, a, err := openIndex(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	words, err := usecase.NewCorpusUseCase(st, a).Top(n)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if topJSON {
		output, err := json.MarshalIndent(words, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	if len(words) == 0 {
		fmt.Fprintln(out, "No words indexed.")
		return nil
	}
	for i, wc := range words {
		fmt.Fprintf(out, "%3d. %-20s %d\n", i+1, wc.Word, wc.Count)
	}
	return nil
}
