// Package affreader parses Hunspell ".aff" files into an *affix.Aff,
// turning each directive line into the compiled tables and scalar options
// internal/affix expects.
//
// Grounded on original_source's readers/aff.py: same directive dispatch
// table, same multi-line "count, then N rows" reading convention, same
// context (encoding / flag format / flag synonyms) threaded from line to
// line. Errors in recognized directives are returned rather than raised;
// like Hunspell, Read itself skips lines whose first field is not a
// directive name, and unknown directives.
package affreader

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/flagset"
)

// outdated directive names Hunspell still accepts.
var directiveSynonyms = map[string]string{
	"PSEUDOROOT":   "NEEDAFFIX",
	"COMPOUNDLAST": "COMPOUNDEND",
}

var (
	directiveNameRe = regexp.MustCompile(`^[A-Z]+$`)
	flagLongRe      = regexp.MustCompile(`..`)
	flagNumRe       = regexp.MustCompile(`\d+`)
)

// Context carries reading-time state threaded across directive lines and
// then handed to dicreader for parsing the matching .dic file.
type Context struct {
	Encoding     string
	FlagFormat   affix.FlagFormat
	FlagSynonyms map[string]flagset.Set
	Ignore       affix.Ignore
}

func newContext() *Context {
	return &Context{Encoding: "windows-1252", FlagFormat: affix.FlagShort}
}

// ParseFlag parses a single flag from a raw flag string, honoring the
// current flag format and AF aliasing.
func (c *Context) ParseFlag(s string) string {
	fs := c.ParseFlags(s)
	for _, f := range fs.Slice() {
		return f
	}
	return ""
}

// ParseFlags parses a raw flag-field string (e.g. a SFX/PFX slash suffix,
// or a dictionary word's flag column) into a Set, per FlagFormat.
func (c *Context) ParseFlags(s string) flagset.Set {
	if s == "" {
		return flagset.New()
	}
	if len(c.FlagSynonyms) > 0 && isDigits(s) {
		if fs, ok := c.FlagSynonyms[s]; ok {
			return fs
		}
		return flagset.New()
	}
	switch c.FlagFormat {
	case affix.FlagLong:
		return flagset.New(flagLongRe.FindAllString(s, -1)...)
	case affix.FlagNumeric:
		return flagset.New(flagNumRe.FindAllString(s, -1)...)
	default: // FlagShort, FlagUTF8: one rune each
		var out []string
		for _, r := range s {
			out = append(out, string(r))
		}
		return flagset.New(out...)
	}
}

func isDigits(s string) bool {
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

// Read parses an entire .aff file from r (decoded per the SET directive,
// defaulting to Windows-1252 the way Hunspell does) and returns the
// compiled Aff plus the reading Context dicreader needs.
func Read(r io.Reader) (*affix.Aff, *Context, error) {
	ctx := newContext()

	raw0, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("affreader: %w", err)
	}
	rawLines := splitRawLines(raw0)

	// decodeLine is re-evaluated on every call so a mid-file SET directive
	// (rare, but legal) changes how the remaining lines are decoded without
	// needing to re-open the source.
	decodeLine := func(i int) string {
		b, err := decode(rawLines[i], ctx.Encoding)
		if err != nil {
			return string(rawLines[i])
		}
		return b
	}

	raw := &affix.Aff{
		Prefixes: map[string][]*affix.Prefix{},
		Suffixes: map[string][]*affix.Suffix{},
	}
	var af map[string]flagset.Set
	var am map[string][]string
	var breakLines []string
	var repPairs [][2]string
	var compoundRuleLines []string
	var mapLines [][]string
	var iconvPairs, oconvPairs [][2]string
	var compoundPatternLines [][3]string
	var phonetPairs [][2]string

	idx := 0
	next := func() (string, bool) {
		for idx < len(rawLines) {
			line := strings.TrimSpace(decodeLine(idx))
			idx++
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if !directiveNameRe.MatchString(name) {
			continue
		}
		if syn, ok := directiveSynonyms[name]; ok {
			name = syn
		}
		args := fields[1:]

		readArray := func(count int) [][]string {
			rows := make([][]string, 0, count)
			for i := 0; i < count; i++ {
				l, ok := next()
				if !ok {
					break
				}
				rows = append(rows, strings.Fields(l)[1:])
			}
			return rows
		}

		switch name {
		case "SET":
			if len(args) > 0 {
				ctx.Encoding = args[0]
			}
		case "FLAG":
			if len(args) > 0 {
				switch args[0] {
				case "long":
					ctx.FlagFormat = affix.FlagLong
				case "num":
					ctx.FlagFormat = affix.FlagNumeric
				case "UTF-8":
					ctx.FlagFormat = affix.FlagUTF8
					ctx.Encoding = "UTF-8"
				default:
					ctx.FlagFormat = affix.FlagShort
				}
			}
		case "KEY":
			raw.Key = strings.Join(args, " ")
		case "TRY":
			raw.Try = strings.Join(args, " ")
		case "LANG":
			if len(args) > 0 {
				raw.Lang = args[0]
			}
		case "IGNORE":
			if len(args) > 0 {
				ctx.Ignore = affix.NewIgnore(args[0])
				raw.Ignore = ctx.Ignore
			}
		case "MAXDIFF":
			raw.MaxDiff = atoiOr(args, -1)
		case "MAXNGRAMSUGS":
			raw.MaxNGramSugs = atoiOr(args, -1)
		case "COMPOUNDMIN":
			raw.CompoundMin = atoiOr(args, 3)
		case "COMPOUNDWORDMAX":
			raw.CompoundWordMax = atoiOr(args, 0)
		case "NOSUGGEST":
			raw.NoSuggest = ctx.ParseFlag(first(args))
		case "KEEPCASE":
			raw.KeepCase = ctx.ParseFlag(first(args))
		case "CIRCUMFIX":
			raw.Circumfix = ctx.ParseFlag(first(args))
		case "NEEDAFFIX":
			raw.NeedAffix = ctx.ParseFlag(first(args))
		case "FORBIDDENWORD":
			raw.ForbiddenWord = ctx.ParseFlag(first(args))
		case "WARN":
			raw.Warn = ctx.ParseFlag(first(args))
		case "COMPOUNDFLAG":
			raw.CompoundFlag = ctx.ParseFlag(first(args))
		case "COMPOUNDBEGIN":
			raw.CompoundBegin = ctx.ParseFlag(first(args))
		case "COMPOUNDMIDDLE":
			raw.CompoundMiddle = ctx.ParseFlag(first(args))
		case "COMPOUNDEND":
			raw.CompoundLast = ctx.ParseFlag(first(args))
		case "ONLYINCOMPOUND":
			raw.OnlyInCompound = ctx.ParseFlag(first(args))
		case "COMPOUNDPERMITFLAG":
			raw.CompoundPermitFlag = ctx.ParseFlag(first(args))
		case "COMPOUNDFORBIDFLAG":
			raw.CompoundForbidFlag = ctx.ParseFlag(first(args))
			raw.CompoundForbidFlagSet = true
		case "FORCEUCASE":
			raw.ForceUCase = ctx.ParseFlag(first(args))
		case "COMPLEXPREFIXES":
			raw.ComplexPrefixes = true
		case "FULLSTRIP":
			// recognized, not modeled (see DESIGN.md).
		case "NOSPLITSUGS":
			raw.NoSplitSugs = true
		case "CHECKSHARPS":
			raw.CheckSharps = true
		case "CHECKCOMPOUNDCASE":
			raw.CheckCompoundCase = true
		case "CHECKCOMPOUNDDUP":
			raw.CheckCompoundDup = true
		case "CHECKCOMPOUNDREP":
			raw.CheckCompoundRep = true
		case "CHECKCOMPOUNDTRIPLE":
			raw.CheckCompoundTriple = true
		case "SIMPLIFIEDTRIPLE":
			raw.SimplifiedTriple = true
		case "ONLYMAXDIFF":
			raw.OnlyMaxDiff = true
		case "COMPOUNDMORESUFFIXES":
			raw.CompoundMoreSuffixes = true
		case "BREAK":
			n := atoiOr(args, 0)
			for _, row := range readArray(n) {
				if len(row) > 0 {
					breakLines = append(breakLines, row[0])
				}
			}
		case "COMPOUNDRULE":
			n := atoiOr(args, 0)
			for _, row := range readArray(n) {
				if len(row) > 0 {
					compoundRuleLines = append(compoundRuleLines, row[0])
				}
			}
		case "ICONV", "OCONV":
			n := atoiOr(args, 0)
			pairs := &iconvPairs
			if name == "OCONV" {
				pairs = &oconvPairs
			}
			for _, row := range readArray(n) {
				if len(row) >= 2 {
					*pairs = append(*pairs, [2]string{row[0], row[1]})
				}
			}
		case "REP":
			n := atoiOr(args, 0)
			for _, row := range readArray(n) {
				if len(row) >= 2 {
					repPairs = append(repPairs, [2]string{row[0], row[1]})
				}
			}
		case "MAP":
			n := atoiOr(args, 0)
			for _, row := range readArray(n) {
				if len(row) > 0 {
					mapLines = append(mapLines, splitMapGroups(row[0]))
				}
			}
		case "SFX", "PFX":
			if len(args) < 3 {
				continue
			}
			flag, crossProduct, count := args[0], args[1] == "Y", atoiOr(args[2:], 0)
			for _, row := range readArray(count) {
				// row still carries the per-line repeated flag as row[0]
				// (readArray only strips the leading "SFX"/"PFX" token).
				if len(row) < 4 {
					continue
				}
				strip, addField := row[1], row[2]
				cond := ""
				if len(row) > 3 {
					cond = row[3]
				}
				add, flagsText, _ := strings.Cut(addField, "/")
				add = ctx.Ignore.Strip(add)
				if strip == "0" {
					strip = ""
				}
				if add == "0" {
					add = ""
				}
				flags := ctx.ParseFlags(flagsText)
				if name == "SFX" {
					sfx := affix.NewSuffix(flag, crossProduct, strip, add, cond, flags)
					raw.Suffixes[flag] = append(raw.Suffixes[flag], sfx)
				} else {
					pfx := affix.NewPrefix(flag, crossProduct, strip, add, cond, flags)
					raw.Prefixes[flag] = append(raw.Prefixes[flag], pfx)
				}
			}
		case "CHECKCOMPOUNDPATTERN":
			n := atoiOr(args, 0)
			for _, row := range readArray(n) {
				if len(row) >= 2 {
					compoundPatternLines = append(compoundPatternLines, [3]string{row[0], row[1], ""})
				}
			}
		case "AF":
			n := atoiOr(args, 0)
			if af == nil {
				af = map[string]flagset.Set{}
			}
			for i, row := range readArray(n) {
				if len(row) > 0 {
					af[strconv.Itoa(i+1)] = ctx.ParseFlags(row[0])
				}
			}
			ctx.FlagSynonyms = af
		case "AM":
			n := atoiOr(args, 0)
			if am == nil {
				am = map[string][]string{}
			}
			for i, row := range readArray(n) {
				am[strconv.Itoa(i+1)] = row
			}
		case "PHONE":
			n := atoiOr(args, 0)
			for _, row := range readArray(n) {
				if len(row) >= 2 {
					repl := row[1]
					if repl == "_" {
						repl = ""
					}
					phonetPairs = append(phonetPairs, [2]string{row[0], repl})
				}
			}
		default:
			// Unknown/ignored directive (documentation-only, or simply not
			// reachable from spec.md's modules). Hunspell itself silently
			// tolerates this; so do we.
		}
	}

	for _, b := range breakLines {
		raw.Break = append(raw.Break, affix.NewBreakPattern(b))
	}
	for _, p := range repPairs {
		raw.Rep = append(raw.Rep, affix.NewRepPattern(p[0], p[1]))
	}
	for _, c := range compoundRuleLines {
		raw.CompoundRule = append(raw.CompoundRule, affix.NewCompoundRule(c))
	}
	for _, m := range mapLines {
		raw.Map = append(raw.Map, flagset.New(m...))
	}
	if len(iconvPairs) > 0 {
		raw.Iconv = affix.NewConvTable(iconvPairs)
	}
	if len(oconvPairs) > 0 {
		raw.Oconv = affix.NewConvTable(oconvPairs)
	}
	for _, cp := range compoundPatternLines {
		raw.CompoundPattern = append(raw.CompoundPattern, affix.NewCompoundPattern(cp[0], cp[1]))
	}
	if len(phonetPairs) > 0 {
		table, err := affix.NewPhonetTable(phonetPairs)
		if err != nil {
			return nil, nil, fmt.Errorf("affreader: PHONE: %w", err)
		}
		raw.Phonet = table
	}
	raw.AF = af
	raw.AM = am

	return affix.NewAff(raw), ctx, nil
}

// mapGroupRe matches either a parenthesized group or a single char, per
// aff.py's `(\([^()]+?\)|[^()])` MAP-row tokenizer.
var mapGroupRe = regexp.MustCompile(`\([^()]+?\)|[^()]`)

func splitMapGroups(s string) []string {
	matches := mapGroupRe.FindAllString(s, -1)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = strings.Trim(m, "()")
	}
	return out
}

func first(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func atoiOr(args []string, fallback int) int {
	if len(args) == 0 {
		return fallback
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fallback
	}
	return n
}

// splitRawLines splits raw file bytes on '\n', stripping a leading UTF-8 BOM
// and any trailing '\r'. Splitting happens before decoding: every charmap
// this package supports keeps ASCII control bytes (including 0x0A/0x0D)
// fixed, so splitting on raw bytes and decoding each line separately gives
// identical results to decoding-then-splitting, while also allowing a
// mid-file SET directive to change the decoder for the remaining lines.
func splitRawLines(b []byte) [][]byte {
	b = bytesTrimBOM(b)
	var out [][]byte
	for _, line := range bytesSplit(b, '\n') {
		out = append(out, bytesTrimRight(line, '\r'))
	}
	return out
}

func bytesTrimBOM(b []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(b) >= 3 && b[0] == bom[0] && b[1] == bom[1] && b[2] == bom[2] {
		return b[3:]
	}
	return b
}

func bytesSplit(b []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == sep {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	out = append(out, b[start:])
	return out
}

func bytesTrimRight(b []byte, c byte) []byte {
	if len(b) > 0 && b[len(b)-1] == c {
		return b[:len(b)-1]
	}
	return b
}

// decode converts one line's raw bytes from encoding to a Go string.
func decode(b []byte, encoding string) (string, error) {
	enc := encodingFor(encoding)
	if enc == nil {
		return string(b), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", encoding, err)
	}
	return string(out), nil
}

func encodingFor(name string) *charmap.Charmap {
	switch strings.ToUpper(name) {
	case "UTF-8", "UTF8":
		return nil
	case "ISO8859-1", "ISO-8859-1", "LATIN1":
		return charmap.ISO8859_1
	case "ISO8859-2", "ISO-8859-2":
		return charmap.ISO8859_2
	case "ISO8859-15", "ISO-8859-15":
		return charmap.ISO8859_15
	case "WINDOWS-1250":
		return charmap.Windows1250
	case "WINDOWS-1251":
		return charmap.Windows1251
	case "WINDOWS-1252", "":
		return charmap.Windows1252
	case "KOI8-R":
		return charmap.KOI8R
	default:
		return charmap.Windows1252
	}
}
