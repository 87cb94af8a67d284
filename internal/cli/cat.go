package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordfreq/internal/adapter/fs"
)

var (
	catInput    string
	catNumber   bool
	catEncoding string
)

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Print a text file",
	Long: `Print a text file decoded with the configured encoding.

Examples:
  wordfreq cat --input book.txt
  wordfreq cat --input book.txt -n`,
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
	catCmd.Flags().StringVar(&catInput, "input", "", "input text file (required)")
	catCmd.Flags().BoolVarP(&catNumber, "number", "n", false, "number output lines")
	catCmd.Flags().StringVar(&catEncoding, "encoding", "", "input encoding (default from config)")
	catCmd.MarkFlagRequired("input")
}

func runCat(cmd *cobra.Command, args []string) error {
	encoding := GetConfig().Input.Encoding
	if catEncoding != "" {
		encoding = catEncoding
	}
	reader, err := fs.NewReader(encoding)
	if err != nil {
		return err
	}

	text, err := reader.ReadText(catInput)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !catNumber {
		fmt.Fprint(out, text)
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		fmt.Fprintf(out, "%6d\t%s", i+1, line)
	}
	return nil
}
