package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"wordfreq/internal/adapter/analyzer"
	"wordfreq/internal/domain"
	"wordfreq/internal/logging"
	"wordfreq/internal/port"
)

// AnalyzeUseCase runs the word-frequency pipeline over a single text.
type AnalyzeUseCase struct {
	source   port.TextSource
	analyzer *analyzer.Analyzer
	log      *zap.Logger
}

// NewAnalyzeUseCase creates a new analyze use case.
func NewAnalyzeUseCase(source port.TextSource, a *analyzer.Analyzer, log *zap.Logger) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		source:   source,
		analyzer: a,
		log:      logging.OrNop(log),
	}
}

// AnalyzeFile reads path through the text source and analyzes it.
func (u *AnalyzeUseCase) AnalyzeFile(path string) (domain.Summary, error) {
	text, err := u.source.ReadText(path)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	summary := u.AnalyzeText(text)
	u.log.Debug("analyzed file",
		zap.String("path", path),
		zap.Int("total_words", summary.TotalWords),
		zap.Int("unique_words", summary.UniqueWords))
	return summary, nil
}

// AnalyzeText analyzes an in-memory text.
func (u *AnalyzeUseCase) AnalyzeText(text string) domain.Summary {
	return u.analyzer.Analyze(text)
}

// Ranking returns every word of the summary in ranked order.
func (u *AnalyzeUseCase) Ranking(summary domain.Summary) []domain.WordCount {
	return analyzer.Rank(summary.Frequencies)
}
