// Package vgroup implements variant group expansion for CSS utility classes:
// the grouped notation "prefix-(a b c)" / "prefix:(a b c)" is flattened into
// the class names it denotes, e.g. "text-(center red)" becomes "text-center"
// and "text-red".
//
// The expansion is a pure function over its input. It holds no state, performs
// no I/O and is safe to call from any number of goroutines concurrently.
//
// Groups nest to arbitrary depth and are resolved by an explicit depth-counting
// scanner rather than a regular expression. Nested groups expand depth-first:
//
//	"placeholder:(italic text-(red sm))"
//	  -> "placeholder:italic", "placeholder:text-red", "placeholder:text-sm"
package vgroup

// Expand transforms an ordered sequence of raw class tokens into the flat
// ordered sequence of class names they denote.
//
// Tokens without a group pass through unchanged. Output order is stable:
// token order first, then member order left to right within each group.
//
// Any structural error ([IssueUnbalancedGroup], [IssueEmptyGroup]) aborts the
// whole call and is returned as an *[ExpandError]; there is no partial output.
func Expand(tokens []string) ([]string, error) {
	result := make([]string, 0, len(tokens))

	for idx, token := range tokens {
		expanded, expErr := expandToken(token, 0)
		if expErr != nil {
			expErr.Token = token
			expErr.TokenIndex = idx
			return nil, expErr
		}

		result = append(result, expanded...)
	}

	return result, nil
}

// ExpandString expands a raw literal which may hold several
// whitespace-separated class expressions, e.g. "text-(center red) font-bold".
// The literal is split into tokens on top-level whitespace only, so spaces
// inside a group or a bracket segment never break a token, and the pieces are
// expanded with [Expand].
//
// On error, [ExpandError.Token] is the offending sub-token and
// [ExpandError.Offset] is relative to it.
func ExpandString(s string) ([]string, error) {
	raw := splitMembers(s)

	tokens := make([]string, len(raw))
	for i, m := range raw {
		tokens[i] = m.val
	}

	return Expand(tokens)
}

// expandToken expands a single raw token into its flat class names.
//
// base is the byte offset of token within the original RawToken, used to keep
// error offsets absolute across recursion. Token and TokenIndex of a returned
// error are filled by the caller at the top level.
func expandToken(token string, base int) ([]string, *ExpandError) {
	// 1) locate the first structural opening paren
	open, stray := findGroupOpen(token)

	if open == -1 {
		if stray != -1 {
			return nil, &ExpandError{Issue: IssueUnbalancedGroup, Offset: base + stray}
		}

		// no group: the token passes through unchanged
		return []string{token}, nil
	}

	// 2) find its matching closing paren by depth counting
	closing := matchingClose(token, open)
	if closing == -1 {
		return nil, &ExpandError{Issue: IssueUnbalancedGroup, Offset: base + open}
	}

	// 3) split the head into the leading text and the prefix run;
	// the prefix keeps its trailing separator ("text-", "placeholder:"),
	// so joining a prefix with a suffix is plain concatenation for all
	// three separator kinds (dash, colon, none)
	head := token[:open]
	pStart := prefixStart(head)
	lead := head[:pStart]
	prefix := head[pStart:]

	// 4) split the group body into members on top-level whitespace
	members := splitMembers(token[open+1 : closing])
	if len(members) == 0 {
		return nil, &ExpandError{Issue: IssueEmptyGroup, Offset: base + open}
	}

	// 5) text after the closing paren applies to every expansion of the group;
	// it may itself hold another group, so it expands recursively too.
	// A plain remainder expands to itself and is appended verbatim.
	tails := []string{""}

	if tail := token[closing+1:]; tail != "" {
		var expErr *ExpandError

		tails, expErr = expandToken(tail, base+closing+1)
		if expErr != nil {
			return nil, expErr
		}
	}

	innerBase := base + open + 1

	// 6) expand every member depth-first, in written order
	var result []string

	for _, m := range members {
		var joined []string

		if len(m.val) == 1 && m.val[0] == SymbolBare {
			// the bare marker emits the prefix itself, separator stripped
			joined = []string{stripSeparator(prefix)}
		} else {
			expanded, expErr := expandToken(m.val, innerBase+m.off)
			if expErr != nil {
				return nil, expErr
			}

			joined = make([]string, len(expanded))
			for i, suffix := range expanded {
				joined[i] = prefix + suffix
			}
		}

		for _, j := range joined {
			for _, t := range tails {
				result = append(result, lead+j+t)
			}
		}
	}

	return result, nil
}
