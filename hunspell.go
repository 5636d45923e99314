// Package hunspore is a Hunspell-compatible spell checker: load a pair of
// ".aff"/".dic" files (or a zip/odt/xpi archive containing them) and check
// or suggest corrections for words.
//
// Grounded on original_source's dictionary.py, the single public entry
// point into the whole engine.
package hunspore

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/affreader"
	"github.com/azleksandar/hunspore/internal/dic"
	"github.com/azleksandar/hunspore/internal/dicreader"
	"github.com/azleksandar/hunspore/internal/lookup"
	"github.com/azleksandar/hunspore/internal/suggest"
)

// Dictionary is the main interface to the package: load one with
// NewFromFiles or NewFromZip, then call Lookup/Suggest.
type Dictionary struct {
	Aff *affix.Aff
	Dic *dic.Dic

	lookuper  *lookup.Lookup
	suggester *suggest.Suggester
}

// New wraps an already-parsed Aff/Dic pair, building the lookup and
// suggest engines over them. Exposed so callers constructing Aff/Dic by
// hand (fixtures, tests) don't need to go through a file reader.
func New(aff *affix.Aff, d *dic.Dic) *Dictionary {
	l := lookup.New(aff, d)
	return &Dictionary{
		Aff:       aff,
		Dic:       d,
		lookuper:  l,
		suggester: suggest.New(aff, d, l),
	}
}

// NewFromFiles reads "path.aff" and "path.dic" from the filesystem.
func NewFromFiles(path string) (*Dictionary, error) {
	affFile, err := os.Open(path + ".aff")
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}
	defer affFile.Close()

	aff, ctx, err := affreader.Read(affFile)
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}

	dicFile, err := os.Open(path + ".dic")
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}
	defer dicFile.Close()

	d, err := dicreader.Read(dicFile, aff, ctx)
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}

	return New(aff, d), nil
}

// NewFromZip reads a dictionary out of a zip archive (the format used by
// LibreOffice .odt and Firefox/Thunderbird .xpi dictionary extensions): the
// first ".aff" and ".dic" entries found are used.
func NewFromZip(path string) (*Dictionary, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}
	defer zr.Close()

	affEntry := findEntry(zr.File, ".aff")
	dicEntry := findEntry(zr.File, ".dic")
	if affEntry == nil || dicEntry == nil {
		return nil, fmt.Errorf("hunspore: %s: no .aff/.dic pair found", path)
	}

	affRC, err := affEntry.Open()
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}
	defer affRC.Close()

	aff, ctx, err := affreader.Read(affRC)
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}

	dicRC, err := dicEntry.Open()
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}
	defer dicRC.Close()

	d, err := dicreader.Read(dicRC, aff, ctx)
	if err != nil {
		return nil, fmt.Errorf("hunspore: %w", err)
	}

	return New(aff, d), nil
}

func findEntry(files []*zip.File, suffix string) *zip.File {
	for _, f := range files {
		if strings.HasSuffix(f.Name, suffix) {
			return f
		}
	}
	return nil
}

// systemDictionaryDirs are the conventional install locations Hunspell
// itself searches: the usual Linux/BSD paths plus macOS's /Library/Spelling.
var systemDictionaryDirs = []string{
	"/usr/share/hunspell",
	"/usr/share/myspell",
	"/usr/share/myspell/dicts",
	"/Library/Spelling",
}

// NewFromSystem looks for "<name>.aff"/"<name>.dic" under the system
// dictionary directories Hunspell conventionally installs into.
func NewFromSystem(name string) (*Dictionary, error) {
	for _, dir := range systemDictionaryDirs {
		affPath := filepath.Join(dir, name+".aff")
		if _, err := os.Stat(affPath); err == nil {
			return NewFromFiles(filepath.Join(dir, name))
		}
	}
	return nil, fmt.Errorf("hunspore: %s.aff not found under %v", name, systemDictionaryDirs)
}

// Lookup reports whether word is spelled correctly per this dictionary.
func (d *Dictionary) Lookup(word string) bool {
	return d.lookuper.Check(word, lookup.DefaultOptions())
}

// Suggest returns ranked spelling corrections for word, best first. The
// returned channel is closed when the suggestion pipeline ends; the n-gram
// and phonetic passes run only when the permutation passes found no good or
// very-good suggestion. A caller wanting only the first few results can
// stop ranging over it early.
func (d *Dictionary) Suggest(word string) <-chan string {
	return d.suggester.Suggest(word)
}

// SuggestSlice is a convenience wrapper draining Suggest into a slice, for
// callers that don't need the laziness.
func (d *Dictionary) SuggestSlice(word string) []string {
	var out []string
	for s := range d.Suggest(word) {
		out = append(out, s)
	}
	return out
}
