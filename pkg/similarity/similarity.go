// Package similarity provides the string normalization and scoring
// primitives behind heuristic component matching: configurable
// normalization, token-set Jaccard similarity, and URL host extraction.
package similarity

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalizer applies the configured normalization flags identically to both
// sides of a comparison.
type Normalizer struct {
	IgnoreCase        bool
	IgnorePunctuation bool
	TrimWhitespace    bool
}

// DefaultNormalizer returns a normalizer with all flags enabled.
func DefaultNormalizer() Normalizer {
	return Normalizer{
		IgnoreCase:        true,
		IgnorePunctuation: true,
		TrimWhitespace:    true,
	}
}

var foldCaser = cases.Fold()

// Normalize applies Unicode NFC normalization followed by the configured
// trim, punctuation-strip, and case-fold steps.
func (n Normalizer) Normalize(s string) string {
	s = norm.NFC.String(s)

	if n.TrimWhitespace {
		s = strings.TrimSpace(s)
	}

	if n.IgnorePunctuation {
		// Punctuation becomes a space so "fix,v2" still splits into two
		// tokens instead of fusing into one.
		s = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return ' '
			}
			return r
		}, s)
	}

	if n.IgnoreCase {
		s = foldCaser.String(s)
	}

	return s
}

// Equal reports whether two strings are equal after normalization.
func (n Normalizer) Equal(a, b string) bool {
	return n.Normalize(a) == n.Normalize(b)
}

// Tokens splits a string into its normalized whitespace-delimited tokens.
func (n Normalizer) Tokens(s string) []string {
	return strings.Fields(n.Normalize(s))
}

// Jaccard returns the token-set Jaccard similarity of two strings in
// [0, 1]. Two empty token sets score zero: a pair of blank names carries no
// evidence of identity.
func (n Normalizer) Jaccard(a, b string) float64 {
	setA := tokenSet(n.Tokens(a))
	setB := tokenSet(n.Tokens(b))
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Host returns the lower-cased host of a URL, or "" when the URL does not
// parse or has no host.
func Host(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
