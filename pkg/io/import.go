package io

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/wordvis/pkg/errors"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1 << 20

// Record is one normalized (word, count) pair.
type Record struct {
	Word  string
	Count int64
}

// NormalizeWord trims, NFC-normalizes and lower-cases a raw word.
// It does not validate the result; see [errors.ValidateWord].
func NormalizeWord(raw string) string {
	w := norm.NFC.String(strings.TrimSpace(raw))
	return cases.Lower(language.Und).String(w)
}

// ReadWords decodes a word list from r.
//
// ReadWords returns the records in input order. Repeated words are returned
// as separate records; merging their counts is left to the trie. It returns
// an INVALID_RECORD error for the first malformed line and an IO_ERROR if r
// fails. ReadWords does not close r.
func ReadWords(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var records []Record
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := parseLine(text)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidRecord, "line %d: %s", line, errors.UserMessage(err))
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read line %d", line+1)
	}
	return records, nil
}

func parseLine(text string) (Record, error) {
	rawWord, rawCount, ok := strings.Cut(text, "\t")
	if !ok {
		return Record{}, errors.New(errors.ErrCodeInvalidRecord, "missing tab between word and count")
	}

	if !utf8.ValidString(rawWord) {
		return Record{}, errors.New(errors.ErrCodeInvalidRecord, "word %q is not valid UTF-8", rawWord)
	}
	word := NormalizeWord(rawWord)
	if err := errors.ValidateWord(word); err != nil {
		return Record{}, err
	}

	count, err := strconv.ParseInt(strings.TrimSpace(rawCount), 10, 64)
	if err != nil {
		return Record{}, errors.New(errors.ErrCodeInvalidRecord, "invalid count %q", strings.TrimSpace(rawCount))
	}
	if count < 0 {
		return Record{}, errors.New(errors.ErrCodeInvalidRecord, "negative count %d", count)
	}
	return Record{Word: word, Count: count}, nil
}

// ImportWords reads the word list at path.
//
// It returns an IO_ERROR wrapping the cause if the file cannot be opened,
// and otherwise the same results as [ReadWords].
func ImportWords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadWords(f)
}
