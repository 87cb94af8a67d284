//go:build js && wasm

package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"syscall/js"
	"time"

	"wordfreq/internal/adapter/analyzer"
	"wordfreq/internal/adapter/cache"
	"wordfreq/internal/adapter/memstore"
	"wordfreq/internal/domain"
	"wordfreq/internal/usecase"
)

var (
	store    *memstore.MemoryStore
	engine   *analyzer.Analyzer
	rankings *cache.RankingCache
)

func init() {
	store = memstore.NewMemoryStore()
	engine = analyzer.MustNewAnalyzer(analyzer.DefaultOptions())
	rankings = cache.NewRankingCache(16, 5*time.Minute)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("wordfreqAnalyze", js.FuncOf(analyzeText))
	js.Global().Set("wordfreqAdd", js.FuncOf(addText))
	js.Global().Set("wordfreqTop", js.FuncOf(corpusTop))
	js.Global().Set("wordfreqClear", js.FuncOf(clearCorpus))

	<-c
}

func analyzeText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: wordfreqAnalyze(text, [n])")
	}

	freq := analyzer.CountFrequency(engine.Tokens(args[0].String()))
	top := analyzer.TopN(freq, argN(args, 1))

	return makeResult(map[string]interface{}{
		"totalWords":  freq.Total(),
		"uniqueWords": len(freq),
		"top":         top,
	})
}

func addText(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: wordfreqAdd(name, text)")
	}

	name := args[0].String()
	summary := engine.Analyze(args[1].String())

	doc := domain.Document{
		ID:          generateDocID(name),
		Path:        name,
		ModTime:     time.Now(),
		TotalWords:  summary.TotalWords,
		UniqueWords: summary.UniqueWords,
	}
	if err := store.PutDocument(doc, summary.Frequencies); err != nil {
		return makeError("adding text failed: " + err.Error())
	}

	rankings.Invalidate()
	stats := updateStats()

	return makeResult(map[string]interface{}{
		"success":     true,
		"name":        name,
		"totalWords":  summary.TotalWords,
		"uniqueWords": summary.UniqueWords,
		"corpusDocs":  stats.TotalDocs,
	})
}

func corpusTop(this js.Value, args []js.Value) interface{} {
	corpus := usecase.NewCorpusUseCase(store, engine).WithCache(rankings)
	top, err := corpus.Top(argN(args, 0))
	if err != nil {
		return makeError("ranking failed: " + err.Error())
	}
	stats, _ := corpus.Stats()

	return makeResult(map[string]interface{}{
		"top":         top,
		"totalDocs":   stats.TotalDocs,
		"totalWords":  stats.TotalWords,
		"uniqueWords": stats.UniqueWords,
	})
}

func clearCorpus(this js.Value, args []js.Value) interface{} {
	store = memstore.NewMemoryStore()
	rankings.Invalidate()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func updateStats() domain.Stats {
	docs, _ := store.ListDocuments()
	merged := analyzer.Frequencies{}
	stats := domain.Stats{TotalDocs: len(docs)}
	for _, doc := range docs {
		freq, err := store.GetFrequencies(doc.ID)
		if err != nil {
			continue
		}
		merged.Merge(freq)
		stats.TotalWords += doc.TotalWords
	}
	stats.UniqueWords = len(merged)
	store.UpdateStats(stats)
	return stats
}

// argN reads an optional count argument, falling back to the analyzer's top-N.
func argN(args []js.Value, i int) int {
	if len(args) > i && args[i].Type() == js.TypeNumber {
		return args[i].Int()
	}
	return engine.Options().TopN
}

func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
