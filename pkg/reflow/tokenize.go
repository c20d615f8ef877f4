package reflow

import "strings"

// Tokenize splits text into words on runs of whitespace, line breaks
// included. Empty or all-whitespace text yields no words.
func Tokenize(text string) []Word {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	words := make([]Word, len(fields))
	for i, f := range fields {
		words[i] = Word(f)
	}
	return words
}
