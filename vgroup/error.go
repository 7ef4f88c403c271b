package vgroup

import "fmt"

// Issue defines the kinds of structural problems which abort an expansion.
type Issue int

const (
	// IssueUnbalancedGroup means the token contains an opening paren with no
	// matching closing one, or a closing paren with no opener before it.
	IssueUnbalancedGroup Issue = iota

	// IssueEmptyGroup means a group has no members between its parens,
	// e.g. "p-()". It almost certainly is a typo upstream, so there is no
	// "expand to nothing" default.
	IssueEmptyGroup
)

// String returns a short human-readable name of the Issue.
func (i Issue) String() string {
	switch i {
	case IssueUnbalancedGroup:
		return "unbalanced group"
	case IssueEmptyGroup:
		return "empty group"
	default:
		return "unknown issue"
	}
}

// ExpandError describes a structural error detected during expansion.
// It carries enough context for the caller's boundary (HTTP response, CLI exit,
// compile-time diagnostic) to render a precise message of its own, instead of
// being stuck with a preformatted string.
type ExpandError struct {
	// Issue is the category of the problem.
	Issue Issue `json:"issue"`

	// Token is the raw token which failed to expand.
	Token string `json:"token"`

	// TokenIndex is the position of the offending token in the input sequence
	// passed to [Expand].
	TokenIndex int `json:"token_index"`

	// Offset is the byte offset inside Token where the problem was detected.
	//
	// IMPORTANT: this is a byte position, not a rune index. A UI highlighting
	// the spot in a string with non-ASCII content must convert it first,
	// e.g. with utf8.RuneCountInString(token[:offset]).
	Offset int `json:"offset"`
}

func (e *ExpandError) Error() string {
	return fmt.Sprintf("%s at byte %d in token %q (index %d)", e.Issue, e.Offset, e.Token, e.TokenIndex)
}
