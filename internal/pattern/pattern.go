// Package pattern compiles window-title patterns into an immutable match set.
package pattern

import (
	"fmt"
	"regexp"
)

// SyntaxError reports a raw pattern that failed to compile.
type SyntaxError struct {
	Pattern string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Set is an ordered collection of compiled title patterns with a single
// case-sensitivity flag applied to all of them at compile time. A Set is
// read-only after Compile; order carries no matching semantics.
type Set struct {
	patterns        []*regexp.Regexp
	caseInsensitive bool
}

// Compile builds a Set from raw regular expressions. Case-insensitivity is
// baked into every pattern rather than decided per match. The first pattern
// that fails to compile aborts the build with a SyntaxError naming it.
func Compile(raw []string, caseInsensitive bool) (*Set, error) {
	patterns := make([]*regexp.Regexp, 0, len(raw))

	for _, p := range raw {
		expr := p
		if caseInsensitive {
			expr = "(?i)" + expr
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &SyntaxError{Pattern: p, Err: err}
		}

		patterns = append(patterns, re)
	}

	return &Set{patterns: patterns, caseInsensitive: caseInsensitive}, nil
}

// Match reports whether the title satisfies at least one pattern in the set.
// Matching is an unanchored search. An empty set matches nothing.
func (s *Set) Match(title string) bool {
	for _, re := range s.patterns {
		if re.MatchString(title) {
			return true
		}
	}

	return false
}

// Empty reports whether the set contains no patterns.
func (s *Set) Empty() bool {
	return len(s.patterns) == 0
}

// Len returns the number of compiled patterns.
func (s *Set) Len() int {
	return len(s.patterns)
}

// CaseInsensitive reports the flag the set was compiled with.
func (s *Set) CaseInsensitive() bool {
	return s.caseInsensitive
}
