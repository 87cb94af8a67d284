package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordfreq/config"
	"wordfreq/internal/adapter/analyzer"
	"wordfreq/internal/adapter/fs"
	"wordfreq/internal/adapter/store"
	"wordfreq/internal/usecase"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Index text files for corpus queries",
	Long: `Count words in every matching file of the specified directory and store
the counts for the top and lookup commands. Unchanged files are skipped on
later runs. The index is stored in .wordfreq/index.db within the target
directory.

Examples:
  wordfreq index .                 # Index current directory
  wordfreq index /path/to/texts    # Index specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	log := GetLogger()

	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	if err := config.EnsureDataDir(path); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := config.IndexDBPath(path)
	st, err := store.Open(cmd.Context(), dbPath, log)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	migrationResult, err := st.CheckMigration(cfg)
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}

	if migrationResult.NeedsRebuild {
		fmt.Fprintf(out, "Index rebuild required: %s\n", migrationResult.Reason)
		fmt.Fprintln(out, "Clearing existing index...")
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear index: %w", err)
		}
	} else if migrationResult.NeedsMigration {
		log.Info("running schema migration", zap.String("reason", migrationResult.Reason))
		if err := st.Migrate(cfg); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	a, err := analyzer.NewAnalyzer(cfg.AnalyzerOptions())
	if err != nil {
		return err
	}
	reader, err := fs.NewReader(cfg.Input.Encoding)
	if err != nil {
		return err
	}
	walker := fs.NewWalker(cfg.Index.Includes, cfg.Index.Excludes)

	indexUC := usecase.NewIndexUseCase(st, walker, reader, a, cfg.Index.Workers, log)

	fmt.Fprintf(out, "Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}

		bar.Set(processed)

		elapsed := time.Since(startTime)
		rate := float64(processed) / elapsed.Seconds()
		if rate > 0 {
			eta := time.Duration(float64(total-processed)/rate) * time.Second
			bar.Describe(fmt.Sprintf("[cyan]Indexing[reset] ETA: %s", formatDuration(eta)))
		}
	}

	result, err := indexUC.Index(cmd.Context(), path, progressCallback)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	// Record the schema and config hash the index was built with.
	if err := st.Migrate(cfg); err != nil {
		return fmt.Errorf("failed to update schema info: %w", err)
	}

	stats, err := st.GetStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nIndexing complete:\n")
	fmt.Fprintf(out, "  Files indexed:  %d\n", result.FilesIndexed)
	fmt.Fprintf(out, "  Files skipped:  %d (unchanged)\n", result.FilesSkipped)
	fmt.Fprintf(out, "  Files deleted:  %d (removed)\n", result.FilesDeleted)
	fmt.Fprintf(out, "  Words counted:  %d\n", result.WordsCounted)
	fmt.Fprintf(out, "  Corpus:         %d docs, %d words, %d unique\n",
		stats.TotalDocs, stats.TotalWords, stats.UniqueWords)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}

	fmt.Fprintf(out, "\nIndex stored at: %s\n", dbPath)
	return nil
}

// openIndex opens the index under the root directory for querying.
func openIndex(ctx context.Context) (*store.BoltStore, *analyzer.Analyzer, error) {
	cfg := GetConfig()

	dbPath := config.IndexDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("no index found. Run 'wordfreq index' first")
	}

	st, err := store.Open(ctx, dbPath, GetLogger())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open index: %w", err)
	}

	if rebuild, reason, err := st.NeedsRebuild(cfg); err == nil && rebuild {
		GetLogger().Warn("index is out of date, rerun 'wordfreq index'", zap.String("reason", reason))
	}

	a, err := analyzer.NewAnalyzer(cfg.AnalyzerOptions())
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, a, nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
