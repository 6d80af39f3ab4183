package errors

import (
	"unicode"
	"unicode/utf8"
)

// maxWordLength bounds the depth of the prefix tree built from a single word.
const maxWordLength = 256

// ValidateWord checks that a normalized word can be inserted as a chain of
// letters. The word must be non-empty, no longer than 256 runes, and made of
// letters only: digits, punctuation, whitespace and control characters are
// rejected because they have no place on a letter ring.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidRecord, "word cannot be empty")
	}

	if !utf8.ValidString(word) {
		return New(ErrCodeInvalidRecord, "word %q is not valid UTF-8", word)
	}

	n := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return New(ErrCodeInvalidRecord, "word %q contains non-letter %q", word, r)
		}
		n++
	}

	if n > maxWordLength {
		return New(ErrCodeInvalidRecord, "word too long (max %d letters)", maxWordLength)
	}
	return nil
}
