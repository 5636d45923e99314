// Package dicreader parses Hunspell ".dic" wordlists into an *dic.Dic,
// reusing the affreader.Context (encoding, flag format, AF aliases,
// IGNORE chars) built while reading the matching .aff file.
//
// Grounded on original_source's readers/dic.py: same stem/flags/data-tag
// split, same ph: alternate-spelling handling (including the REP-table
// mutation it performs on the Aff it's handed), same numeric AM-alias
// expansion.
package dicreader

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/affreader"
	"github.com/azleksandar/hunspore/internal/dic"
)

var (
	countLineRe = regexp.MustCompile(`^\d+(\s|$)`)
	tagRe       = regexp.MustCompile(`[ \t]\w{2}:`)
)

// Read parses a .dic wordlist from r, given the Aff and Context produced by
// affreader.Read for the corresponding .aff file. It may append entries to
// aff.Rep, mirroring ph: data tags that declare typical misspellings.
func Read(r io.Reader, aff *affix.Aff, ctx *affreader.Context) (*dic.Dic, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dicreader: %w", err)
	}

	d := dic.New()

	lineNo := 0
	for _, rawLine := range strings.Split(string(raw), "\n") {
		lineNo++
		line := strings.TrimRight(rawLine, "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "﻿")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if lineNo == 1 && countLineRe.MatchString(line) {
			continue
		}

		d.Add(parseLine(line, aff, ctx))
	}

	return d, nil
}

func parseLine(line string, aff *affix.Aff, ctx *affreader.Context) *dic.Word {
	tagsStart := -1
	if loc := tagRe.FindStringIndex(line); loc != nil {
		tagsStart = loc[0]
	}
	if tab := strings.IndexByte(line, '\t'); tab != -1 && (tagsStart == -1 || tab < tagsStart) {
		tagsStart = tab
	}

	var head, tagText string
	if tagsStart > 0 {
		head, tagText = line[:tagsStart], line[tagsStart:]
	} else {
		head = line
	}

	var flagsText string
	stem := head
	if !strings.HasPrefix(head, "/") {
		if i := unescapedSlash(head); i >= 0 {
			stem, flagsText = head[:i], head[i+1:]
		}
	}
	stem = strings.ReplaceAll(stem, `\/`, "/")
	stem = ctx.Ignore.Strip(stem)

	data := parseData(tagText, aff.AM)

	captype := aff.Casing.Guess(stem)
	var altSpellings []string

	if phValues, ok := data["ph"]; ok {
		for _, pattern := range phValues {
			switch {
			case strings.HasSuffix(pattern, "*"):
				patRunes := []rune(pattern)
				patHead := ""
				if len(patRunes) >= 2 {
					patHead = string(patRunes[:len(patRunes)-2])
				}
				stemRunes := []rune(stem)
				tail := ""
				if len(stemRunes) > 0 {
					tail = string(stemRunes[:len(stemRunes)-1])
				}
				aff.Rep = append(aff.Rep, affix.NewRepPattern(patHead, tail))
			case strings.Contains(pattern, "->"):
				from, to, _ := strings.Cut(pattern, "->")
				aff.Rep = append(aff.Rep, affix.NewRepPattern(from, to))
			default:
				aff.Rep = append(aff.Rep, affix.NewRepPattern(pattern, stem))
				altSpellings = append(altSpellings, pattern)
			}
		}
	}

	return &dic.Word{
		Stem:         stem,
		Flags:        ctx.ParseFlags(flagsText),
		Data:         data,
		AltSpellings: altSpellings,
		Captype:      captype,
	}
}

// unescapedSlash finds the first "/" in s not preceded by a backslash.
func unescapedSlash(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}

// parseData parses the data-tag tail of a dictionary line ("xy:value
// xy:value2 3"), expanding numeric AM aliases inline.
func parseData(text string, am map[string][]string) map[string][]string {
	data := map[string][]string{}
	if text == "" {
		return data
	}

	parts := strings.Fields(text)
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if tag, content, found := strings.Cut(part, ":"); found {
			if content != "" {
				data[tag] = append(data[tag], content)
			}
			continue
		}
		if isAllDigits(part) && len(am) > 0 {
			parts = append(parts, am[part]...)
		}
	}
	return data
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
