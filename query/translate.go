package query

import (
	"strconv"
	"strings"

	"github.com/poiesic/lexit/core"
)

// A rule recognizes one token pattern. It inspects the token at the
// cursor, plus whatever lookahead or lookbehind it needs, and on a
// match mutates the criteria and reports how many tokens it consumed.
// A rule that returns ok=false leaves the criteria and cursor alone.
type rule struct {
	name  string
	apply func(tokens []string, i int, criteria *core.FilterCriteria) (consumed int, ok bool)
}

// rules are evaluated in order at each cursor position; the first
// match wins. The cursor only ever advances, so no pattern is
// re-examined after a match.
var rules = []rule{
	{name: "all", apply: matchAll},
	{name: "single word", apply: matchSingleWord},
	{name: "palindrome", apply: matchPalindrome},
	{name: "longer than", apply: matchLongerThan},
	{name: "containing the letter", apply: matchContainsLetter},
	{name: "first vowel", apply: matchFirstVowel},
}

// Translate converts a natural-language phrase into a structured
// filter. The phrase is split into whitespace-delimited tokens and
// scanned left to right; recognized patterns consume one or more
// tokens and may set a criteria field, everything else is skipped one
// token at a time. Translation never fails: a phrase with no
// recognized patterns yields an unconstrained filter.
func Translate(phrase string) core.FilterCriteria {
	return TranslateWithMonitor(phrase, nil)
}

// TranslateWithMonitor translates a phrase while reporting each rule
// match and token skip to monitor. A nil monitor disables reporting.
func TranslateWithMonitor(phrase string, monitor TranslateMonitor) core.FilterCriteria {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	tokens := strings.Fields(phrase)
	var criteria core.FilterCriteria

	monitor.Start(tokens)

	i := 0
	for i < len(tokens) {
		matched := false
		for _, r := range rules {
			consumed, ok := r.apply(tokens, i, &criteria)
			if ok {
				monitor.RuleMatched(r.name, i, consumed)
				i += consumed
				matched = true
				break
			}
		}
		if !matched {
			monitor.TokenSkipped(tokens[i], i)
			i++
		}
	}

	monitor.Finish(criteria)
	return criteria
}

// matchAll consumes the filler word "all" without constraining
// anything. It exists so rule traces distinguish recognized filler
// from unknown tokens.
func matchAll(tokens []string, i int, _ *core.FilterCriteria) (int, bool) {
	if strings.ToLower(tokens[i]) != "all" {
		return 0, false
	}
	return 1, true
}

// matchSingleWord recognizes "single word" and constrains the word
// count to exactly one.
func matchSingleWord(tokens []string, i int, criteria *core.FilterCriteria) (int, bool) {
	if strings.ToLower(tokens[i]) != "single" {
		return 0, false
	}
	if i+1 >= len(tokens) || strings.ToLower(tokens[i+1]) != "word" {
		return 0, false
	}
	one := uint64(1)
	criteria.WordCount = &one
	return 2, true
}

// matchPalindrome recognizes "palindrome" or "palindromic" and
// constrains matches to palindromes. If the preceding token is "non"
// nothing is set and the filter stays unconstrained on palindrome-ness;
// negations pass through rather than inverting the match. At the first
// token there is no preceding token, so no "non".
func matchPalindrome(tokens []string, i int, criteria *core.FilterCriteria) (int, bool) {
	word := strings.ToLower(tokens[i])
	if word != "palindrome" && word != "palindromic" {
		return 0, false
	}
	if i == 0 || strings.ToLower(tokens[i-1]) != "non" {
		yes := true
		criteria.IsPalindrome = &yes
	}
	return 1, true
}

// matchLongerThan recognizes "longer than <N>" and constrains the
// minimum length to N+1 bytes. If <N> is missing or does not parse as
// a non-negative integer the pattern does not match and the scan skips
// just the "longer" token.
func matchLongerThan(tokens []string, i int, criteria *core.FilterCriteria) (int, bool) {
	if strings.ToLower(tokens[i]) != "longer" {
		return 0, false
	}
	if i+2 >= len(tokens) || strings.ToLower(tokens[i+1]) != "than" {
		return 0, false
	}
	n, err := strconv.ParseUint(tokens[i+2], 10, 64)
	if err != nil {
		return 0, false
	}
	min := n + 1
	criteria.MinLength = &min
	return 3, true
}

// matchContainsLetter recognizes "containing the letter <X>" and
// "contain the letter <X>", where <X> must be a single-character
// token. The character keeps its original case.
func matchContainsLetter(tokens []string, i int, criteria *core.FilterCriteria) (int, bool) {
	word := strings.ToLower(tokens[i])
	if word != "containing" && word != "contain" {
		return 0, false
	}
	if i+3 >= len(tokens) || strings.ToLower(tokens[i+1]) != "the" || strings.ToLower(tokens[i+2]) != "letter" {
		return 0, false
	}
	letter := tokens[i+3]
	if len(letter) != 1 {
		return 0, false
	}
	criteria.ContainsCharacter = &letter
	return 4, true
}

// matchFirstVowel recognizes "first vowel". It sets a fixed "a"
// stand-in rather than detecting vowels; that is the literal shipped
// behavior.
func matchFirstVowel(tokens []string, i int, criteria *core.FilterCriteria) (int, bool) {
	if strings.ToLower(tokens[i]) != "first" {
		return 0, false
	}
	if i+1 >= len(tokens) || strings.ToLower(tokens[i+1]) != "vowel" {
		return 0, false
	}
	a := "a"
	criteria.ContainsCharacter = &a
	return 2, true
}
