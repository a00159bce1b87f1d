/*
Package textfile builds word indexes from UTF-8 text files.

A word index is an ordered map from words to the byte offset of their first
occurrence in the text. Text is segmented at line-break opportunities
(UAX #14) and every maximal run of letters and digits within a segment counts
as a word. As the index is an ordered map, clients may ask for the
alphabetically n-th word, for the number of words in a range, or for the
nearest word to a misspelled one.

Loading reports its progress to subscribers, which is helpful for large files.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
