package core

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// IDFromContent derives the content address of a piece of text: the
// lowercase hexadecimal encoding of the SHA-256 digest of its raw bytes.
// Identical values always produce identical IDs, which is what makes
// deduplication fall out of the addressing scheme.
func IDFromContent(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// StringProperties holds the derived properties of a piece of text.
// It is fully determined by the text and immutable once computed.
type StringProperties struct {
	Length                uint64            `json:"length"`
	IsPalindrome          bool              `json:"is_palindrome"`
	UniqueCharacters      uint64            `json:"unique_characters"`
	WordCount             uint64            `json:"word_count"`
	Sha256Hash            string            `json:"sha256_hash"`
	CharacterFrequencyMap map[string]uint64 `json:"character_frequency_map"`
}

// StringRecord is a stored string together with its derived properties.
//
// Invariant: Id == Properties.Sha256Hash == IDFromContent(Value).
// CreatedAt is stamped once, by the repository, at insertion.
type StringRecord struct {
	Id         string           `json:"id"`
	Value      string           `json:"value"`
	Properties StringProperties `json:"properties"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewStringRecord analyzes value and builds a record keyed by its
// content address. CreatedAt is left zero for the repository to fill.
func NewStringRecord(value string) *StringRecord {
	properties := Analyze(value)
	return &StringRecord{
		Id:         properties.Sha256Hash,
		Value:      value,
		Properties: properties,
	}
}

// FilterCriteria is a structured filter over stored records. Every
// field is optional; absent fields impose no constraint and present
// fields combine with logical AND.
//
// Fields are pointers so that the wire form round-trips exactly: an
// absent field stays absent, and the echoed filter shows null for
// constraints that were never supplied.
type FilterCriteria struct {
	IsPalindrome      *bool   `json:"is_palindrome" form:"is_palindrome"`
	MinLength         *uint64 `json:"min_length" form:"min_length"`
	MaxLength         *uint64 `json:"max_length" form:"max_length"`
	WordCount         *uint64 `json:"word_count" form:"word_count"`
	ContainsCharacter *string `json:"contains_character" form:"contains_character"`
}
