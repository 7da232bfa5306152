package query

import (
	"testing"

	"github.com/poiesic/lexit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_Palindrome(t *testing.T) {
	criteria := Translate("all palindromic strings")
	require.NotNil(t, criteria.IsPalindrome)
	assert.True(t, *criteria.IsPalindrome)
	assert.Nil(t, criteria.MinLength)
	assert.Nil(t, criteria.MaxLength)
	assert.Nil(t, criteria.WordCount)
	assert.Nil(t, criteria.ContainsCharacter)

	// Pattern words are matched case-insensitively but only exactly:
	// the plural never matches.
	tests := []struct {
		name   string
		phrase string
		want   bool
	}{
		{name: "palindromic", phrase: "all palindromic strings", want: true},
		{name: "bare palindrome", phrase: "palindrome", want: true},
		{name: "uppercase", phrase: "PALINDROMIC strings", want: true},
		{name: "plural is not recognized", phrase: "show me PALINDROMES", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.phrase)
			if tt.want {
				require.NotNil(t, got.IsPalindrome)
				assert.True(t, *got.IsPalindrome)
			} else {
				assert.Nil(t, got.IsPalindrome)
			}
		})
	}
}

func TestTranslate_PalindromeAtStartOfPhrase(t *testing.T) {
	// The lookbehind for "non" must treat "no token before the first
	// one" as no "non", not as an error.
	criteria := Translate("palindromic phrases only")

	require.NotNil(t, criteria.IsPalindrome)
	assert.True(t, *criteria.IsPalindrome)
}

func TestTranslate_NonPalindromeIsPassThrough(t *testing.T) {
	// "non palindrome" deliberately leaves the filter unconstrained:
	// it does not negate the match.
	criteria := Translate("non palindrome")

	assert.Equal(t, core.FilterCriteria{}, criteria)
}

func TestTranslate_NonLookbehindIsCaseInsensitive(t *testing.T) {
	criteria := Translate("NON Palindromic strings")

	assert.Nil(t, criteria.IsPalindrome)
}

func TestTranslate_LongerThan(t *testing.T) {
	criteria := Translate("strings longer than 5")

	require.NotNil(t, criteria.MinLength)
	assert.Equal(t, uint64(6), *criteria.MinLength, "longer than N means min length N+1")
}

func TestTranslate_LongerThanEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   *uint64
	}{
		{
			name:   "zero",
			phrase: "longer than 0",
			want:   uintPtr(1),
		},
		{
			name:   "number missing at end of phrase",
			phrase: "strings longer than",
			want:   nil,
		},
		{
			name:   "not a number",
			phrase: "longer than five",
			want:   nil,
		},
		{
			name:   "negative numbers do not parse",
			phrase: "longer than -3",
			want:   nil,
		},
		{
			name:   "bare longer",
			phrase: "longer",
			want:   nil,
		},
		{
			name:   "prefix consumed then later pattern still applies",
			phrase: "longer than x palindrome",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.phrase)
			if tt.want == nil {
				assert.Nil(t, got.MinLength)
			} else {
				require.NotNil(t, got.MinLength)
				assert.Equal(t, *tt.want, *got.MinLength)
			}
		})
	}

	// The skipped "longer than x" prefix must not swallow the
	// palindrome token that follows.
	got := Translate("longer than x palindrome")
	require.NotNil(t, got.IsPalindrome)
	assert.True(t, *got.IsPalindrome)
}

func TestTranslate_ContainsLetter(t *testing.T) {
	for _, phrase := range []string{
		"strings containing the letter z",
		"strings that contain the letter z",
	} {
		criteria := Translate(phrase)
		require.NotNil(t, criteria.ContainsCharacter, phrase)
		assert.Equal(t, "z", *criteria.ContainsCharacter, phrase)
	}
}

func TestTranslate_ContainsLetterKeepsCase(t *testing.T) {
	criteria := Translate("containing the letter Z")

	require.NotNil(t, criteria.ContainsCharacter)
	assert.Equal(t, "Z", *criteria.ContainsCharacter)
}

func TestTranslate_ContainsLetterSkipsBadPatterns(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
	}{
		{name: "multi-character letter", phrase: "containing the letter ab"},
		{name: "truncated pattern", phrase: "containing the letter"},
		{name: "wrong middle words", phrase: "containing a letter z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := Translate(tt.phrase)
			assert.Nil(t, criteria.ContainsCharacter)
		})
	}
}

func TestTranslate_SingleWord(t *testing.T) {
	criteria := Translate("single word palindromes")

	require.NotNil(t, criteria.WordCount)
	assert.Equal(t, uint64(1), *criteria.WordCount)
}

func TestTranslate_FirstVowel(t *testing.T) {
	// "first vowel" maps to a fixed "a"; there is no actual vowel
	// detection.
	criteria := Translate("strings with the first vowel")

	require.NotNil(t, criteria.ContainsCharacter)
	assert.Equal(t, "a", *criteria.ContainsCharacter)
}

func TestTranslate_CombinedPatterns(t *testing.T) {
	criteria := Translate("all single word palindromic strings longer than 2 containing the letter b")

	require.NotNil(t, criteria.WordCount)
	assert.Equal(t, uint64(1), *criteria.WordCount)
	require.NotNil(t, criteria.IsPalindrome)
	assert.True(t, *criteria.IsPalindrome)
	require.NotNil(t, criteria.MinLength)
	assert.Equal(t, uint64(3), *criteria.MinLength)
	require.NotNil(t, criteria.ContainsCharacter)
	assert.Equal(t, "b", *criteria.ContainsCharacter)
}

func TestTranslate_NeverFails(t *testing.T) {
	for _, phrase := range []string{
		"",
		"   ",
		"completely unrelated words here",
		"single",
		"first",
	} {
		assert.Equal(t, core.FilterCriteria{}, Translate(phrase), "phrase %q", phrase)
	}
}

// traceMonitor records rule activity for assertions.
type traceMonitor struct {
	started  []string
	matches  []string
	skips    []string
	finished *core.FilterCriteria
}

var _ TranslateMonitor = (*traceMonitor)(nil)

func (m *traceMonitor) Start(tokens []string)             { m.started = tokens }
func (m *traceMonitor) RuleMatched(name string, _, _ int) { m.matches = append(m.matches, name) }
func (m *traceMonitor) TokenSkipped(token string, _ int)  { m.skips = append(m.skips, token) }
func (m *traceMonitor) Finish(c core.FilterCriteria)      { m.finished = &c }

func TestTranslateWithMonitor(t *testing.T) {
	monitor := &traceMonitor{}

	criteria := TranslateWithMonitor("all shiny palindromic strings longer than 4", monitor)

	assert.Equal(t, []string{"all", "shiny", "palindromic", "strings", "longer", "than", "4"}, monitor.started)
	assert.Equal(t, []string{"all", "palindrome", "longer than"}, monitor.matches)
	assert.Equal(t, []string{"shiny", "strings"}, monitor.skips)
	require.NotNil(t, monitor.finished)
	assert.Equal(t, criteria, *monitor.finished)
}
