package vgroup

// findGroupOpen locates the first structural opening paren in the token.
//
// Returns open = -1 if the token has no group. A structural closing paren
// occurring before any opener makes the token unbalanced; its offset is
// reported via stray so the caller can reject it instead of passing it through.
//
// Escaped parens and parens inside bracket segments are content and are
// skipped over.
func findGroupOpen(token string) (open int, stray int) {
	open, stray = -1, -1

	brackets := 0

	for i := 0; i < len(token); i++ {
		switch token[i] {
		case SymbolEscape:
			// the next byte is content no matter what it is
			i++

		case SymbolBracketOpen:
			brackets++

		case SymbolBracketClose:
			if brackets > 0 {
				brackets--
			}

		case SymbolOpen:
			if brackets == 0 {
				open = i
				return
			}

		case SymbolClose:
			if brackets == 0 {
				stray = i
				return
			}
		}
	}

	return
}

// matchingClose returns the byte offset of the closing paren matching the
// opener at open, counting nested pairs by depth. Returns -1 if the group is
// never closed. Supports arbitrary nesting.
func matchingClose(token string, open int) int {
	parens := 0
	brackets := 0

	for i := open; i < len(token); i++ {
		switch token[i] {
		case SymbolEscape:
			i++

		case SymbolBracketOpen:
			brackets++

		case SymbolBracketClose:
			if brackets > 0 {
				brackets--
			}

		case SymbolOpen:
			if brackets == 0 {
				parens++
			}

		case SymbolClose:
			if brackets == 0 {
				parens--
				if parens == 0 {
					return i
				}
			}
		}
	}

	return -1
}

// prefixStart returns the offset at which the group's prefix run begins inside
// head, the part of the token preceding the opening paren. The prefix run is
// the maximal run of non-whitespace bytes ending right before the paren and it
// keeps its trailing separator, e.g. "text-" or "placeholder:". The run may be
// empty when the paren opens the token.
func prefixStart(head string) int {
	for i := len(head) - 1; i >= 0; i-- {
		if isSpace(head[i]) {
			return i + 1
		}
	}

	return 0
}

// member is a single group item together with its byte offset relative to the
// text it was split from, so errors raised by recursive expansion stay
// addressable in the original token.
type member struct {
	val string
	off int
}

// splitMembers splits the text between a group's parens into members on
// top-level whitespace. Whitespace nested inside parens or brackets belongs to
// the member it occurs in ("b-(c d)" stays one member); consecutive whitespace
// collapses; leading and trailing whitespace is ignored.
//
// The same mechanics split a raw multi-class literal into tokens, see
// [ExpandString].
func splitMembers(inner string) []member {
	var members []member

	parens := 0
	brackets := 0

	// start of the current member, -1 while consuming whitespace
	start := -1

	flush := func(end int) {
		if start != -1 {
			members = append(members, member{val: inner[start:end], off: start})
			start = -1
		}
	}

	for i := 0; i < len(inner); i++ {
		b := inner[i]

		// 1) top-level whitespace terminates the current member, if any
		if isSpace(b) && parens == 0 && brackets == 0 {
			flush(i)
			continue
		}

		// 2) any other byte starts a member if none is in progress
		if start == -1 {
			start = i
		}

		// 3) track nesting so inner whitespace does not split the member
		switch b {
		case SymbolEscape:
			i++

		case SymbolBracketOpen:
			brackets++

		case SymbolBracketClose:
			if brackets > 0 {
				brackets--
			}

		case SymbolOpen:
			if brackets == 0 {
				parens++
			}

		case SymbolClose:
			if brackets == 0 && parens > 0 {
				parens--
			}
		}
	}

	flush(len(inner))

	return members
}
