package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordfreq/internal/usecase"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup WORD",
	Short: "List indexed files containing a word",
	Long: `Normalize WORD the same way indexed text is normalized and list the
files that contain it, most occurrences first.

Examples:
  wordfreq lookup кот
  wordfreq lookup Ёлка   # matches "елка" when yo folding is on`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	st, a, err := openIndex(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	occurrences, err := usecase.NewCorpusUseCase(st, a).Lookup(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(occurrences) == 0 {
		fmt.Fprintf(out, "No files contain %q.\n", args[0])
		return nil
	}
	for _, o := range occurrences {
		fmt.Fprintf(out, "%6d  %s\n", o.Count, o.Path)
	}
	return nil
}
