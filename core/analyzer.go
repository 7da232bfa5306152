package core

import (
	"strings"
	"unicode"
)

// Analyze computes the derived properties of text. It is pure, total,
// and deterministic: no I/O, no failure mode, and identical input
// always yields identical output.
//
// Property semantics:
//   - Length is the size of the text in bytes, not runes.
//   - IsPalindrome compares the lowercased rune sequence with its own
//     reverse. Whitespace and punctuation are not stripped, so a phrase
//     with spaces is palindromic only if the exact sequence mirrors.
//   - UniqueCharacters counts distinct alphabetic runes in the original
//     text. Case-sensitive: 'A' and 'a' are two characters.
//   - WordCount counts whitespace-delimited tokens.
//   - Sha256Hash is the lowercase hex SHA-256 digest of the raw bytes.
//   - CharacterFrequencyMap maps each alphabetic rune, original case,
//     to its occurrence count.
func Analyze(text string) StringProperties {
	frequency := make(map[string]uint64)
	var unique uint64
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		key := string(r)
		if _, seen := frequency[key]; !seen {
			unique++
		}
		frequency[key]++
	}

	return StringProperties{
		Length:                uint64(len(text)),
		IsPalindrome:          isPalindrome(text),
		UniqueCharacters:      unique,
		WordCount:             uint64(len(strings.Fields(text))),
		Sha256Hash:            IDFromContent(text),
		CharacterFrequencyMap: frequency,
	}
}

func isPalindrome(text string) bool {
	runes := []rune(strings.ToLower(text))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
