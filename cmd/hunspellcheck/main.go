// Command hunspellcheck is the config-driven, structured-logging sibling of
// cmd/smoketest: same directory-of-.txt-files scan against a Hunspell
// dictionary, but its dictionary path, target directory and worker count
// come from a TOML config file, and progress/results are logged through
// zap instead of fmt.Fprintf.
package main

import (
	"bufio"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/azleksandar/hunspore"
)

const (
	bytesToMBShift = 20
	topMisspellN   = 20
)

// Stats aggregates per-file results under a single mutex; each worker
// merges its fileState into it once the whole file is processed.
type Stats struct {
	mu             sync.Mutex
	filesScanned   int
	totalBytes     int64
	totalWords     int
	misspelled     int
	misspellCounts map[string]int
}

type fileState struct {
	path       string
	totalBytes int64
	totalWords int
	misspelled int
	counts     map[string]int
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (dict_path, dir, workers, debug)")
	flag.Parse()

	if *configPath == "" {
		os.Stderr.WriteString("Usage: hunspellcheck -config <path.toml>\n")
		os.Exit(1)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		os.Stderr.WriteString("building logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg Config, logger *zap.Logger) error {
	dict, err := hunspore.NewFromFiles(cfg.DictPath)
	if err != nil {
		return err
	}

	var filePaths []string
	err = filepath.WalkDir(cfg.Dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("scan starting", zap.Int("files", len(filePaths)), zap.Int("workers", cfg.Workers))
	start := time.Now()

	stats := &Stats{misspellCounts: make(map[string]int)}
	semaphore := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, dict, stats, logger)
		}(path)
	}

	wg.Wait()

	logger.Info("scan complete", zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	logSummary(stats, logger)
	return nil
}

func processFile(path string, dict *hunspore.Dictionary, stats *Stats, logger *zap.Logger) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		logger.Warn("open failed", zap.String("path", path), zap.Error(err))
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		logger.Warn("stat failed", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Debug("file start", zap.String("path", path), zap.Int64("mb", info.Size()>>bytesToMBShift))
	fileStart := time.Now()

	state := &fileState{path: path, counts: make(map[string]int)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		token := scanner.Text()
		state.totalBytes += int64(len(token)) + 1
		word := trimPunct(token)
		if word == "" {
			continue
		}
		state.totalWords++
		if !dict.Lookup(word) {
			state.misspelled++
			state.counts[strings.ToLower(word)]++
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("scan error", zap.String("path", path), zap.Error(err))
	}

	logger.Debug("file done",
		zap.String("path", filepath.Base(path)),
		zap.Duration("elapsed", time.Since(fileStart).Round(time.Millisecond)),
		zap.Int("words", state.totalWords),
		zap.Int("misspelled", state.misspelled),
	)

	mergeFileState(state, stats)
}

// trimPunct strips leading/trailing non-letter runes from a whitespace
// token, so "word." and "(word)" check the same as "word".
func trimPunct(s string) string {
	runes := []rune(s)
	start, end := 0, len(runes)
	for start < end && !unicode.IsLetter(runes[start]) {
		start++
	}
	for end > start && !unicode.IsLetter(runes[end-1]) {
		end--
	}
	return string(runes[start:end])
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.totalWords += fs.totalWords
	stats.misspelled += fs.misspelled
	for word, count := range fs.counts {
		stats.misspellCounts[word] += count
	}
}

func logSummary(stats *Stats, logger *zap.Logger) {
	rate := 0.0
	if stats.totalWords > 0 {
		rate = float64(stats.misspelled) / float64(stats.totalWords) * 100
	}
	logger.Info("summary",
		zap.Int("files_scanned", stats.filesScanned),
		zap.Int64("total_bytes", stats.totalBytes),
		zap.Int("total_words", stats.totalWords),
		zap.Int("misspelled", stats.misspelled),
		zap.Float64("misspelling_rate_pct", rate),
	)

	type wc struct {
		word  string
		count int
	}
	entries := make([]wc, 0, len(stats.misspellCounts))
	for w, c := range stats.misspellCounts {
		entries = append(entries, wc{w, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})

	top := entries
	if len(top) > topMisspellN {
		top = top[:topMisspellN]
	}
	for _, e := range top {
		logger.Info("frequent misspelling", zap.String("word", e.word), zap.Int("count", e.count))
	}
}
