package reflow

import "strings"

// Pack splits words into lines according to opts.
//
// Greedy mode ignores opts.LastLine: greedy packing already treats every
// line alike. In Balanced mode without LastLine the greedy pass decides
// which trailing words form the final line; only the words before it are
// balanced, over the remaining line slots.
func Pack(words []Word, opts Options) []Line {
	if opts.Mode() == Greedy {
		return PackGreedy(words, opts.MaxLength)
	}
	if opts.LastLine {
		return PackBalanced(words, opts.MaxLength)
	}

	greedy := PackGreedy(words, opts.MaxLength)
	if len(greedy) <= 1 {
		return greedy
	}
	last := greedy[len(greedy)-1]
	head := words[:len(words)-len(last)]
	return append(PackBalanced(head, opts.MaxLength), last)
}

// Render joins lines with newlines. No trailing newline is added.
func Render(lines []Line) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Cost returns the total squared shortfall of lines against maxLength.
// Overflowing lines contribute nothing.
func Cost(lines []Line, maxLength int) int {
	total := 0
	for _, l := range lines {
		n := l.Len()
		if n > maxLength {
			continue
		}
		short := maxLength - n
		total += short * short
	}
	return total
}

// Reformat rewraps text as one paragraph. It returns "" when text holds no
// words. Reformat never fails; a MaxLength below 1 puts every word on its
// own line.
func Reformat(opts Options, text string) string {
	words := Tokenize(text)
	if len(words) == 0 {
		return ""
	}
	return Render(Pack(words, opts))
}
