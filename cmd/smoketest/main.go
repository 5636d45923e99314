// Command smoketest spell-checks every ".txt" file under a directory
// against a Hunspell dictionary, concurrently, and prints aggregate
// misspelling statistics. Intended as a throughput/sanity check against a
// real corpus, the way the teacher's own smoketest exercised its tokenizer
// against a directory of text files.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/azleksandar/hunspore"
)

const (
	maxWorkers     = 4
	expectedArgs   = 3
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
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <dictionary-base-path> <directory>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  dictionary-base-path: path without .aff/.dic extension, e.g. /usr/share/hunspell/en_US\n")
		os.Exit(1)
	}

	dictPath := os.Args[1]
	dirPath := os.Args[2]

	dict, err := hunspore.NewFromFiles(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dictionary: %v\n", err)
		os.Exit(1)
	}

	stats := &Stats{misspellCounts: make(map[string]int)}

	var filePaths []string
	err = filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
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
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, dict, stats)
		}(path)
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(path string, dict *hunspore.Dictionary, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stat %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "START %s (%d MB)\n", path, info.Size()>>bytesToMBShift)
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
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", path, err)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d words, %d misspelled)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalWords, state.misspelled)

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

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:      %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:        %d\n", stats.totalBytes)
	fmt.Printf("Total words:        %d\n", stats.totalWords)
	fmt.Printf("Misspelled words:   %d\n", stats.misspelled)
	if stats.totalWords > 0 {
		fmt.Printf("Misspelling rate:   %.2f%%\n", float64(stats.misspelled)/float64(stats.totalWords)*100)
	}
	fmt.Println()

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

	fmt.Println("Most frequent misspellings:")
	for i, e := range entries {
		if i >= topMisspellN {
			break
		}
		fmt.Printf("  %-20s %d\n", e.word, e.count)
	}
}
