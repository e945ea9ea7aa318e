// Package textnorm canonicalizes raw quiz-bank text before it is classified.
//
// Two levels of normalization exist:
//   - document level: decoding, byte-order-mark removal and line-break
//     unification, applied once before the text is split into lines
//   - fragment level: quote straightening and whitespace collapsing, applied
//     to every question and option text before it is stored
package textnorm

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 indicates strict decoding met a byte sequence that is not UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 input")

const byteOrderMark = "\ufeff"

// Curly quotes folded to their ASCII counterparts.
var quoteReplacer = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2019", "'",
	"\u2018", "'",
)

// Line-break variants folded to a single line feed.
// Order matters: \r\n must be matched before the lone \r.
var lineBreakReplacer = strings.NewReplacer(
	byteOrderMark, "",
	"\r\n", "\n",
	"\r", "\n",
	"\f", "\n",
)

// Additional line separators recognized by tagged formats: vertical tab,
// the file, group and record separators, next line, and the Unicode line
// and paragraph separators.
var lineSeparatorReplacer = strings.NewReplacer(
	"\v", "\n",
	"\x1c", "\n",
	"\x1d", "\n",
	"\x1e", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// DecodeLenient decodes data as UTF-8, dropping a leading byte-order mark and
// replacing every invalid byte sequence with U+FFFD. It never fails.
func DecodeLenient(data []byte) string {
	// Error ignored: the UTF-8 decoder substitutes U+FFFD for invalid
	// sequences and never reports an error.
	out, _, _ := transform.Bytes(xunicode.UTF8BOM.NewDecoder(), data)
	return string(out)
}

// DecodeStrict decodes data as UTF-8 and rejects invalid byte sequences.
// A leading byte-order mark is dropped.
func DecodeStrict(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: at byte offset %d", ErrInvalidUTF8, firstInvalidOffset(data))
	}
	return strings.TrimPrefix(string(data), byteOrderMark), nil
}

func firstInvalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

// NormalizeDocument removes byte-order marks and converts \r\n, \r and form
// feeds to \n.
func NormalizeDocument(s string) string {
	return lineBreakReplacer.Replace(s)
}

// NormalizeLineSeparators converts every remaining line separator (see
// lineSeparatorReplacer) to \n. Apply it after NormalizeDocument.
func NormalizeLineSeparators(s string) string {
	return lineSeparatorReplacer.Replace(s)
}

// NormalizeQuotes replaces curly double and single quotes with straight ones.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

// SplitLines splits a normalized document on \n. A trailing newline yields a
// final empty line, which callers treat as a blank boundary.
func SplitLines(s string) []string {
	return strings.Split(s, "\n")
}

// Clean normalizes a single text fragment: quotes are straightened, runs of
// whitespace collapse to one space and the ends are trimmed.
func Clean(s string) string {
	return strings.Join(strings.FieldsFunc(NormalizeQuotes(s), IsSpace), " ")
}

// Trim removes leading and trailing whitespace as defined by IsSpace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// IsBlank reports whether s holds nothing but whitespace.
func IsBlank(s string) bool {
	return Trim(s) == ""
}

// IsSpace extends unicode.IsSpace with the ASCII information separators
// (U+001C..U+001F), which plain-text quiz exports occasionally carry.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
