package vgroup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brofrain/yew-unocss-transformer/util"
)

func TestExpand_Flattening(t *testing.T) {
	type tc struct {
		name   string
		tokens []string
		want   []string
	}

	tests := []tc{
		{
			name:   "dash_group",
			tokens: []string{"p-(x5 y.5)"},
			want:   []string{"p-x5", "p-y.5"},
		},
		{
			name:   "dash_group_keywords",
			tokens: []string{"text-(center red)"},
			want:   []string{"text-center", "text-red"},
		},
		{
			name:   "slash_values_are_opaque",
			tokens: []string{"border-(1 blue/30)"},
			want:   []string{"border-1", "border-blue/30"},
		},
		{
			name:   "colon_group",
			tokens: []string{"placeholder:(italic text-sm text-secondary/75)"},
			want:   []string{"placeholder:italic", "placeholder:text-sm", "placeholder:text-secondary/75"},
		},
		{
			name:   "bare_marker",
			tokens: []string{"outline-(~ 2 offset-0 transparent)"},
			want:   []string{"outline", "outline-2", "outline-offset-0", "outline-transparent"},
		},
		{
			name:   "bare_marker_with_colon_prefix",
			tokens: []string{"hover:(~ underline)"},
			want:   []string{"hover", "hover:underline"},
		},
		{
			name:   "no_separator_group_joins_verbatim",
			tokens: []string{"text(red sm)"},
			want:   []string{"textred", "textsm"},
		},
		{
			name:   "leading_bang_is_opaque",
			tokens: []string{"!focus:outline-orange"},
			want:   []string{"!focus:outline-orange"},
		},
		{
			name:   "bang_inside_member_is_opaque",
			tokens: []string{"text-(!red)"},
			want:   []string{"text-!red"},
		},
		{
			name:   "multiple_tokens_keep_token_order",
			tokens: []string{"font-bold", "text-(lg blue)", "m-(x2 y4)"},
			want:   []string{"font-bold", "text-lg", "text-blue", "m-x2", "m-y4"},
		},
		{
			name:   "whitespace_collapses_inside_group",
			tokens: []string{"p-(  x5   y.5  )"},
			want:   []string{"p-x5", "p-y.5"},
		},
		{
			name:   "bracket_member_with_inner_parens",
			tokens: []string{"w-(full [calc(100%-2rem)])"},
			want:   []string{"w-full", "w-[calc(100%-2rem)]"},
		},
		{
			name:   "bracket_variant_prefix",
			tokens: []string{"[&>:hover]:(underline bold)"},
			want:   []string{"[&>:hover]:underline", "[&>:hover]:bold"},
		},
		{
			name:   "empty_prefix_group",
			tokens: []string{"(a b)"},
			want:   []string{"a", "b"},
		},
		{
			name:   "trailing_text_applies_to_every_expansion",
			tokens: []string{"grid-(cols rows)-2"},
			want:   []string{"grid-cols-2", "grid-rows-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_Nesting(t *testing.T) {
	type tc struct {
		name   string
		tokens []string
		want   []string
	}

	tests := []tc{
		{
			name:   "nested_group_expands_depth_first",
			tokens: []string{"placeholder:(italic text-(red sm))"},
			want:   []string{"placeholder:italic", "placeholder:text-red", "placeholder:text-sm"},
		},
		{
			name:   "deeply_nested",
			tokens: []string{"a:(b:(c-(1 2) d) e)"},
			want:   []string{"a:b:c-1", "a:b:c-2", "a:b:d", "a:e"},
		},
		{
			name:   "bare_marker_inside_nested_group",
			tokens: []string{"focus:(outline-(~ 2))"},
			want:   []string{"focus:outline", "focus:outline-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_PassThrough(t *testing.T) {
	tokens := []string{
		"text-red",
		"fw800",
		"hover:underline",
		"!focus:outline-orange",
		"border-blue/30",
		"w-[calc(100%-2rem)]",
		`a\(b`,
	}

	for _, token := range tokens {
		got, err := Expand([]string{token})
		require.NoError(t, err)
		require.Equal(t, []string{token}, got, "token %q must pass through unchanged", token)
	}
}

// Any generated token without parens must survive expansion byte-for-byte.
func TestExpand_PassThrough_Random(t *testing.T) {
	for i := 0; i < 100; i++ {
		token := util.RandomClassName()
		got, err := Expand([]string{token})
		require.NoError(t, err)
		require.Equal(t, []string{token}, got)
	}
}

func TestExpand_Errors(t *testing.T) {
	type tc struct {
		name       string
		tokens     []string
		wantIssue  Issue
		wantToken  string
		wantIndex  int
		wantOffset int
	}

	tests := []tc{
		{
			name:       "unclosed_group",
			tokens:     []string{"border-(1"},
			wantIssue:  IssueUnbalancedGroup,
			wantToken:  "border-(1",
			wantIndex:  0,
			wantOffset: 7,
		},
		{
			name:       "empty_group",
			tokens:     []string{"p-()"},
			wantIssue:  IssueEmptyGroup,
			wantToken:  "p-()",
			wantIndex:  0,
			wantOffset: 2,
		},
		{
			name:       "whitespace_only_group",
			tokens:     []string{"p-(   )"},
			wantIssue:  IssueEmptyGroup,
			wantToken:  "p-(   )",
			wantIndex:  0,
			wantOffset: 2,
		},
		{
			name:       "stray_closing_paren",
			tokens:     []string{"foo)"},
			wantIssue:  IssueUnbalancedGroup,
			wantToken:  "foo)",
			wantIndex:  0,
			wantOffset: 3,
		},
		{
			name:       "unclosed_outer_group",
			tokens:     []string{"focus:(a b-(c)"},
			wantIssue:  IssueUnbalancedGroup,
			wantToken:  "focus:(a b-(c)",
			wantIndex:  0,
			wantOffset: 6,
		},
		{
			name:       "nested_empty_group",
			tokens:     []string{"focus:(a b-())"},
			wantIssue:  IssueEmptyGroup,
			wantToken:  "focus:(a b-())",
			wantIndex:  0,
			wantOffset: 11,
		},
		{
			name:       "error_in_later_token_reports_its_index",
			tokens:     []string{"text-red", "fw800", "p-()"},
			wantIssue:  IssueEmptyGroup,
			wantToken:  "p-()",
			wantIndex:  2,
			wantOffset: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.tokens)
			require.Nil(t, got, "no partial output on error")
			require.Error(t, err)

			var expErr *ExpandError
			require.ErrorAs(t, err, &expErr)
			require.Equal(t, tt.wantIssue, expErr.Issue)
			require.Equal(t, tt.wantToken, expErr.Token)
			require.Equal(t, tt.wantIndex, expErr.TokenIndex)
			require.Equal(t, tt.wantOffset, expErr.Offset)
		})
	}
}

func TestExpandString(t *testing.T) {
	type tc struct {
		name  string
		input string
		want  []string
	}

	tests := []tc{
		{
			name:  "plain_classes",
			input: "text-blue fw800",
			want:  []string{"text-blue", "fw800"},
		},
		{
			name:  "group_mixed_with_plain",
			input: "text-(center red) font-bold",
			want:  []string{"text-center", "text-red", "font-bold"},
		},
		{
			name:  "group_whitespace_does_not_split_tokens",
			input: "placeholder:(italic text-sm) m-(x2 y4)",
			want:  []string{"placeholder:italic", "placeholder:text-sm", "m-x2", "m-y4"},
		},
		{
			name:  "empty_string",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace_only",
			input: "  \t ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandString(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExpandString_Error(t *testing.T) {
	got, err := ExpandString("font-bold border-(1")
	require.Nil(t, got)

	var expErr *ExpandError
	require.ErrorAs(t, err, &expErr)
	require.Equal(t, IssueUnbalancedGroup, expErr.Issue)
	require.Equal(t, "border-(1", expErr.Token)
	require.Equal(t, 1, expErr.TokenIndex)
	require.Equal(t, 7, expErr.Offset)
}
