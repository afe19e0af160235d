package description

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/custodia-labs/refslim/internal/core/ports/driven"
)

// Ensure Cleaner implements the interface.
var _ driven.DescriptionCleaner = (*Cleaner)(nil)

// substitution replaces every occurrence of a literal marker.
type substitution struct {
	marker      string
	replacement string
}

// Markers are matched case-sensitively, without attributes, in this order.
var substitutions = []substitution{
	{"<p>", " "},
	{"</p>", " "},
	{"<code>", "`"},
	{"</code>", "`"},
}

// Cleaner normalises description text.
type Cleaner struct{}

// New creates a new description cleaner.
func New() *Cleaner {
	return &Cleaner{}
}

// Clean converts paragraph markers to spaces and inline-code markers to
// backticks, decodes HTML entities, then collapses whitespace runs to single
// spaces with no leading or trailing whitespace.
func (c *Cleaner) Clean(raw string) string {
	text := raw
	for _, s := range substitutions {
		text = strings.ReplaceAll(text, s.marker, s.replacement)
	}

	// Decode after substitution so an escaped &lt;p&gt; survives as text.
	text = unescape(text)

	return strings.Join(strings.FieldsFunc(text, isSeparator), " ")
}

// charRef matches a numeric character reference, with or without the
// terminating semicolon.
var charRef = regexp.MustCompile(`&#(?:[0-9]+|[xX][0-9a-fA-F]+);?`)

// unescape decodes HTML entities in a single pass. Numeric references are
// decoded separately so that references to control characters and
// noncharacters are dropped, and so that decoded text is never decoded again.
func unescape(text string) string {
	refs := charRef.FindAllStringIndex(text, -1)
	if refs == nil {
		return html.UnescapeString(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, ref := range refs {
		b.WriteString(html.UnescapeString(text[last:ref[0]]))
		b.WriteString(decodeCharRef(text[ref[0]:ref[1]]))
		last = ref[1]
	}
	b.WriteString(html.UnescapeString(text[last:]))
	return b.String()
}

// decodeCharRef decodes one numeric reference. Out-of-range values become
// U+FFFD.
func decodeCharRef(ref string) string {
	digits := strings.TrimSuffix(ref[len("&#"):], ";")
	base := 10
	if digits[0] == 'x' || digits[0] == 'X' {
		digits = digits[1:]
		base = 16
	}

	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil || n > unicode.MaxRune {
		return "\uFFFD"
	}
	if isDroppedCodepoint(rune(n)) {
		return ""
	}
	// NUL, CR, surrogates and the windows-1252 range are remapped here.
	return html.UnescapeString(ref)
}

// isDroppedCodepoint reports whether a numeric reference to r decodes to
// nothing. That covers control characters other than whitespace and the
// Unicode noncharacters. U+0080..U+009F map to windows-1252 instead.
func isDroppedCodepoint(r rune) bool {
	switch {
	case r >= 0x01 && r <= 0x08, r == 0x0b, r >= 0x0e && r <= 0x1f, r == 0x7f:
		return true
	case r >= 0xfdd0 && r <= 0xfdef:
		return true
	case r&0xfffe == 0xfffe:
		return true
	}
	return false
}

// isSeparator reports whether r splits words. The ASCII information
// separators U+001C..U+001F count as whitespace alongside unicode.IsSpace.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
