package reflow

// PackGreedy places words left to right, starting a new line whenever the
// next word (plus its separating space) would push the current line past
// maxLength. A word that is too long on its own still gets a line.
func PackGreedy(words []Word, maxLength int) []Line {
	var lines []Line
	var current Line
	length := 0
	for _, word := range words {
		wordLen := word.Len()
		if len(current) == 0 {
			current = Line{word}
			length = wordLen
			continue
		}
		if length+1+wordLen <= maxLength {
			current = append(current, word)
			length += 1 + wordLen
			continue
		}
		lines = append(lines, current)
		current = Line{word}
		length = wordLen
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
