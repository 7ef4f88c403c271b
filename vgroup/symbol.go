package vgroup

// Symbol defines the characters which carry structural meaning inside
// a class expression. Everything else is plain content.
type Symbol = byte

const (
	// SymbolOpen starts a variant group right after its prefix, e.g. "text-(".
	SymbolOpen Symbol = '('

	// SymbolClose terminates a variant group.
	SymbolClose Symbol = ')'

	// SymbolBracketOpen starts an arbitrary-value segment, e.g. "[&>:hover]:" or
	// "w-[calc(100%-2rem)]". Parens and whitespace inside brackets are content,
	// never structure.
	SymbolBracketOpen Symbol = '['

	// SymbolBracketClose terminates an arbitrary-value segment.
	SymbolBracketClose Symbol = ']'

	// SymbolDash is one of the two prefix separators, e.g. "outline-(...)".
	SymbolDash Symbol = '-'

	// SymbolColon is the variant separator, e.g. "placeholder:(...)".
	SymbolColon Symbol = ':'

	// SymbolBare is the group member meaning "the prefix itself, with no suffix",
	// e.g. "outline-(~ 2)" expands to "outline" and "outline-2".
	SymbolBare Symbol = '~'

	// SymbolEscape suppresses the structural meaning of the next byte.
	// The escape itself stays in the output untouched.
	SymbolEscape Symbol = '\\'
)

// isSpace reports whether the byte is ASCII whitespace. Class expressions are
// plain UTF-8, but all structural characters, including member delimiters,
// are single ASCII bytes, so byte-wise scanning is safe.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isSeparator reports whether the byte is a prefix separator character.
func isSeparator(b byte) bool {
	return b == SymbolDash || b == SymbolColon
}

// stripSeparator removes the prefix's single trailing separator, if present.
// Used for the bare "~" member: prefix "outline-" emits "outline",
// prefix "placeholder:" emits "placeholder". A prefix which abuts its group
// with no separator is returned as is.
func stripSeparator(prefix string) string {
	if prefix == "" {
		return prefix
	}

	if isSeparator(prefix[len(prefix)-1]) {
		return prefix[:len(prefix)-1]
	}

	return prefix
}
