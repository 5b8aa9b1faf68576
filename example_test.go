package mininfa_test

import (
	"fmt"

	"github.com/coregx/mininfa"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	pat, err := mininfa.Compile(`h(e|a)*llo*`)
	if err != nil {
		panic(err)
	}

	m, err := mininfa.NewMatcher(pat)
	if err != nil {
		panic(err)
	}

	fmt.Println(m.Match("haeeeallooo"))
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	pat := mininfa.MustCompile(`cat|dog`)
	m, _ := mininfa.NewMatcher(pat)
	fmt.Println(m.Match("dog"))
	// Output: true
}

// ExampleMatcher_Match demonstrates that matching is anchored: a pattern
// must match the whole input, not merely a substring of it.
func ExampleMatcher_Match() {
	pat := mininfa.MustCompile(`[a-c]+`)
	m, _ := mininfa.NewMatcher(pat)

	fmt.Println(m.Match("abc"))
	fmt.Println(m.Match("abcd"))
	// Output:
	// true
	// false
}

// ExamplePattern_EndOffset demonstrates the cursor offset reported after a
// successful compile.
func ExamplePattern_EndOffset() {
	pat := mininfa.MustCompile(`a(b|c)*`)
	fmt.Println(pat.EndOffset())
	// Output: 7
}

// ExampleCompile_error demonstrates the offset reported alongside a
// compile failure.
func ExampleCompile_error() {
	_, err := mininfa.Compile(`[z-a]`)
	ce, _ := err.(*mininfa.CompileError)
	fmt.Println(mininfa.StatusText(ce.Status), ce.Offset)
	// Output: unordered character range 4
}
