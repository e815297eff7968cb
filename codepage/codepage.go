// Package codepage translates between UTF-8 text and the escaped
// multi-codepage byte sequences used throughout the InSim wire protocol.
//
// LFS strings are never raw UTF-8. Instead, a string switches between one of
// several single-byte (or Shift-JIS/GBK) codepages using a "^" plus a letter
// marker, and a handful of punctuation characters are escaped with their own
// "^" sequences so they can never be mistaken for markers. Both directions
// are lossy: a character with no representation in any supported codepage
// becomes "?" on the bytes side, and an unmappable byte becomes "?" on the
// text side.
package codepage

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Page identifies one of the LFS codepages by its "^X" marker letter.
type Page byte

// Markers select the active codepage for the remainder of a string.
const (
	Latin1     Page = 'L' // default
	Greek      Page = 'G'
	Cyrillic   Page = 'C'
	Japanese   Page = 'J'
	Latin2     Page = 'E'
	Turkish    Page = 'T'
	Baltic     Page = 'B'
	Hebrew     Page = 'H'
	Chinese    Page = 'S'
	Korean     Page = 'K'
)

// codec pairs a Page with its golang.org/x/text encoding. exclude lists
// runes that the underlying x/text charmap can round-trip but that LFS's own
// narrower table for this page cannot.
type codec struct {
	page    Page
	enc     encoding.Encoding
	exclude map[rune]bool
}

// latin2Exclude drops the Hungarian double-acute vowels ő/ű (and their
// uppercase forms Ő/Ű) from the Latin-2 page. LFS's real Latin-2 table is
// narrower than the Windows-1250/ISO-8859-2 charmaps golang.org/x/text
// ships, and does not carry these; left in, they would round-trip instead
// of degrading to "?" like the rest of LFS's unsupported characters.
var latin2Exclude = map[rune]bool{
	'ő': true, 'Ő': true,
	'ű': true, 'Ű': true,
}

// priority is the fixed search order from spec §4A step 4. Latin-1 is tried
// first (and is also the initial codepage), then the remaining pages in the
// order LFS itself tries them.
var priority = []codec{
	{Latin1, charmap.Windows1252, nil},
	{Latin2, charmap.Windows1250, latin2Exclude},
	{Cyrillic, charmap.Windows1251, nil},
	{Greek, charmap.ISO8859_7, nil},
	{Turkish, charmap.Windows1254, nil},
	{Baltic, charmap.Windows1257, nil},
	{Hebrew, charmap.ISO8859_8, nil},
	{Japanese, japanese.ShiftJIS, nil},
	{Korean, korean.EUCKR, nil},
	{Chinese, simplifiedchinese.GBK, nil},
}

func codecFor(p Page) *codec {
	for i := range priority {
		if priority[i].page == p {
			return &priority[i]
		}
	}
	return nil
}

// escapeTable holds the punctuation characters that always get a two-byte
// "^x" escape instead of codepage encoding, conform spec §3's escape table.
var escapeTable = map[rune]byte{
	'|':  'v',
	'*':  'a',
	':':  'c',
	'\\': 'd',
	'/':  's',
	'?':  'q',
	'"':  't',
	'<':  'l',
	'>':  'r',
	'#':  'h',
}

var unescapeTable = func() map[byte]rune {
	m := make(map[byte]rune, len(escapeTable))
	for r, b := range escapeTable {
		m[b] = r
	}
	return m
}()

func isMarkerLetter(b byte) bool {
	switch Page(b) {
	case Latin1, Greek, Cyrillic, Japanese, Latin2, Turkish, Baltic, Hebrew, Chinese, Korean:
		return true
	}
	return false
}

// ToLossyBytes encodes UTF-8 text into LFS's escaped multi-codepage wire
// format, conform spec §4A.
func ToLossyBytes(text string) []byte {
	out := make([]byte, 0, len(text))
	current := Latin1

	for _, r := range text {
		if r == '^' {
			out = append(out, '^', '^')
			continue
		}

		if b, ok := escapeTable[r]; ok {
			out = append(out, '^', b)
			continue
		}

		if c := codecFor(current); c != nil {
			if b, ok := encodeRune(c, r); ok {
				out = append(out, b...)
				continue
			}
		}

		found := false
		for i := range priority {
			c := &priority[i]
			if c.page == current {
				continue
			}
			if b, ok := encodeRune(c, r); ok {
				out = append(out, '^', byte(c.page))
				out = append(out, b...)
				current = c.page
				found = true
				break
			}
		}
		if !found {
			out = append(out, '?')
		}
	}
	return out
}

func encodeRune(c *codec, r rune) ([]byte, bool) {
	if c.exclude[r] {
		return nil, false
	}
	b, err := c.enc.NewEncoder().Bytes([]byte(string(r)))
	if err != nil || len(b) == 0 {
		return nil, false
	}
	return b, true
}

// ToLossyString decodes LFS's escaped multi-codepage wire bytes into UTF-8
// text, conform spec §4A.
func ToLossyString(raw []byte) string {
	var out strings.Builder
	current := Latin1

	i := 0
	for i < len(raw) {
		b := raw[i]
		if b == '^' && i+1 < len(raw) {
			next := raw[i+1]
			switch {
			case isMarkerLetter(next):
				current = Page(next)
				i += 2
				continue
			case unescapeTable[next] != 0:
				out.WriteRune(unescapeTable[next])
				i += 2
				continue
			case next >= '0' && next <= '9':
				out.WriteByte('^')
				out.WriteByte(next)
				i += 2
				continue
			case next == '^':
				out.WriteByte('^')
				i += 2
				continue
			default:
				out.WriteByte('^')
				out.WriteByte(next)
				i += 2
				continue
			}
		}

		// Decode one codepage unit starting at i. Shift-JIS/GBK/EUC-KR
		// are multi-byte; charmap pages are single-byte.
		c := codecFor(current)
		if c == nil {
			out.WriteByte('?')
			i++
			continue
		}
		r, size, ok := decodeRune(c, raw[i:])
		if !ok {
			out.WriteRune(utf8.RuneError)
			i++
			continue
		}
		out.WriteRune(r)
		i += size
	}
	return out.String()
}

func decodeRune(c *codec, b []byte) (rune, int, bool) {
	dec := c.enc.NewDecoder()
	// Try shrinking prefixes so multi-byte codepages (Shift-JIS, GBK,
	// EUC-KR) consume the right number of source bytes.
	max := len(b)
	if max > 4 {
		max = 4
	}
	for n := 1; n <= max; n++ {
		out, err := dec.Bytes(b[:n])
		if err == nil && len(out) > 0 {
			r, _ := utf8.DecodeRune(out)
			if r != utf8.RuneError && !c.exclude[r] {
				return r, n, true
			}
		}
	}
	return '?', 1, true
}

// StripColours removes every "^" + digit colour marker, leaving everything
// else — including "^^" escapes — untouched. Linear in len(s).
func StripColours(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] == '^' && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
			i += 2
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}
