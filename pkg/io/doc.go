// Package io reads word frequency lists.
//
// # Format
//
// Each line holds a word, a tab character and a base-10 count:
//
//	THE	53097401461
//	OF	30966074232
//	AND	22632024504
//	TO	19347398077
//
// Words are case-insensitive. They are trimmed, NFC-normalized and
// lower-cased before use, so "The", "THE" and "the" are the same word.
// After normalization a word must be made of letters only.
//
// Counts must be non-negative integers. A count of zero is accepted and
// contributes nothing to the chart.
//
// Blank lines are ignored. Any other malformed line (missing tab, bad count,
// empty word or non-letter characters) fails the whole read with an
// INVALID_RECORD error naming the line; there is no partial result.
//
// # Import
//
// Use [ImportWords] to read a list from a file path, or [ReadWords] to read
// from any io.Reader:
//
//	records, err := io.ImportWords("words.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
package io
