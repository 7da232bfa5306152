package query

import (
	"strings"

	"github.com/poiesic/lexit/core"
)

// Matches reports whether record satisfies every constraint present in
// criteria. Constraints combine with logical AND; a nil or empty
// criteria matches everything.
//
// Callers validate criteria with core.ValidateFilter before scanning.
// A contains_character value that is not exactly one character is
// treated as no constraint here; rejecting it is the validator's job.
func Matches(record *core.StringRecord, criteria *core.FilterCriteria) bool {
	if criteria == nil {
		return true
	}

	if criteria.IsPalindrome != nil && record.Properties.IsPalindrome != *criteria.IsPalindrome {
		return false
	}
	if criteria.MinLength != nil && record.Properties.Length < *criteria.MinLength {
		return false
	}
	if criteria.MaxLength != nil && record.Properties.Length > *criteria.MaxLength {
		return false
	}
	if criteria.WordCount != nil && record.Properties.WordCount != *criteria.WordCount {
		return false
	}
	if criteria.ContainsCharacter != nil && len(*criteria.ContainsCharacter) == 1 {
		// The character may be anything, not just a letter, and is
		// matched against the original value rather than the
		// frequency map.
		if !strings.Contains(record.Value, *criteria.ContainsCharacter) {
			return false
		}
	}

	return true
}
