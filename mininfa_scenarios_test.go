package mininfa_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coregx/mininfa"
)

func mustMatch(t *testing.T, pattern, input string) bool {
	t.Helper()
	pat, err := mininfa.Compile(pattern)
	require.NoError(t, err, "Compile(%q)", pattern)
	m, err := mininfa.NewMatcher(pat)
	require.NoError(t, err)
	return m.Match(input)
}

// TestConcreteScenarios runs the worked pattern/input/result scenarios,
// verbatim.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"nested-star-alternation", "h(e|a)*llo*", "haeeeallooo", true},
		{"alternation-no-match", "(a|b)*c|(a|ab)*c", "bbbcabbbc", false},
		{"alternation-match", "(a|b)*c|(a|ab)*c", "abc", true},
		{"optional-star-alternation", "a?(ab|ba)*", "ababababababababababababababababa", true},
		{"negated-class-match", "[^b-d]", "a", true},
		{"negated-class-no-match", "[^b-d]", "c", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := mustMatch(t, c.pattern, c.input)
			require.Equal(t, c.want, got)
		})
	}
}

// TestUniversalProperty_Determinism checks that matching the same pattern
// against the same input twice always produces the same result.
func TestUniversalProperty_Determinism(t *testing.T) {
	pat, err := mininfa.Compile("a*b")
	require.NoError(t, err)
	m, err := mininfa.NewMatcher(pat)
	require.NoError(t, err)

	first := m.Match("aaab")
	second := m.Match("aaab")
	require.Equal(t, first, second)
	require.True(t, first)
}

// TestUniversalProperty_MatcherIsReusable checks that a Matcher carries no
// state across calls with different inputs.
func TestUniversalProperty_MatcherIsReusable(t *testing.T) {
	pat, err := mininfa.Compile("h(e|a)*llo*")
	require.NoError(t, err)
	m, err := mininfa.NewMatcher(pat)
	require.NoError(t, err)

	require.True(t, m.Match("haeeeallooo"))
	require.False(t, m.Match("nope"))
	require.True(t, m.Match("hllo"))
}

// TestUniversalProperty_Anchoring checks that a match is rejected if the
// pattern only matches a proper prefix or suffix of the input.
func TestUniversalProperty_Anchoring(t *testing.T) {
	require.False(t, mustMatch(t, "a", "ab"))
	require.False(t, mustMatch(t, "a", "ba"))
	require.True(t, mustMatch(t, "a", "a"))
}

// TestUniversalProperty_AlternationSymmetry checks that match(a|b, s) ==
// match(a, s) || match(b, s).
func TestUniversalProperty_AlternationSymmetry(t *testing.T) {
	for _, in := range []string{"cat", "dog", "bird", ""} {
		want := mustMatch(t, "cat", in) || mustMatch(t, "dog", in)
		got := mustMatch(t, "cat|dog", in)
		require.Equal(t, want, got, "input %q", in)
	}
}

// TestBoundaryBehavior_EmptyInput checks each quantifier's stance on the
// empty string.
func TestBoundaryBehavior_EmptyInput(t *testing.T) {
	require.True(t, mustMatch(t, ".*", ""), `".*" must match ""`)
	require.True(t, mustMatch(t, "a?", ""), `"a?" must match ""`)
	require.False(t, mustMatch(t, "a+", ""), `"a+" must not match ""`)
	require.False(t, mustMatch(t, "[bc]", ""), `"[bc]" must not match ""`)
}

// TestBoundaryBehavior_NegatedClassRejectsNonPrintable checks that a
// negated class never matches outside the 7-bit printable domain.
func TestBoundaryBehavior_NegatedClassRejectsNonPrintable(t *testing.T) {
	require.False(t, mustMatch(t, "[^ -/]", "\t"))
	require.True(t, mustMatch(t, "[^ -/]", "0"))
}

// TestCompileErrorOffsets re-verifies the worked compile-error examples
// through the public boundary, including extracting the *CompileError with
// errors.As.
func TestCompileErrorOffsets(t *testing.T) {
	cases := []struct {
		pattern string
		status  mininfa.Status
		offset  int
	}{
		{"[z-a]", mininfa.StatusUnorderedRange, 4},
		{"(a", mininfa.StatusExpectedRParen, 2},
		{"(", mininfa.StatusUnexpectedEnd, 1},
		{"?", mininfa.StatusUnexpectedSpecial, 0},
	}

	for _, c := range cases {
		_, err := mininfa.Compile(c.pattern)
		require.Error(t, err, "Compile(%q)", c.pattern)

		var ce *mininfa.CompileError
		require.True(t, errors.As(err, &ce), "Compile(%q): not a *CompileError", c.pattern)
		require.Equal(t, c.status, ce.Status, "Compile(%q)", c.pattern)
		require.Equal(t, c.offset, ce.Offset, "Compile(%q)", c.pattern)
	}
}

// TestMustCompilePanicsOnInvalidPattern checks MustCompile's panic
// wrapper.
func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	require.Panics(t, func() {
		mininfa.MustCompile("?")
	})
}

// TestStatusTextUnknownValue checks the fallback branch for a Status value
// outside the enumerated range.
func TestStatusTextUnknownValue(t *testing.T) {
	require.Equal(t, "Unknown error", mininfa.StatusText(mininfa.Status(255)))
}
