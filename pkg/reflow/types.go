package reflow

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the line width used when none is configured.
const DefaultMaxLength = 72

// ErrInvalidWidth is returned by Options.Validate for a MaxLength below 1.
var ErrInvalidWidth = errors.New("reflow: max length must be at least 1")

// Word is a run of non-whitespace characters.
type Word string

// Len reports the display length of w, counted in runes.
func (w Word) Len() int {
	return utf8.RuneCountInString(string(w))
}

// Line is a sequence of words rendered with single spaces between them.
type Line []Word

// Len reports the rendered length of l.
func (l Line) Len() int {
	if len(l) == 0 {
		return 0
	}
	n := len(l) - 1
	for _, w := range l {
		n += w.Len()
	}
	return n
}

// Overflows reports whether l is a lone word longer than maxLength.
func (l Line) Overflows(maxLength int) bool {
	return len(l) == 1 && l[0].Len() > maxLength
}

func (l Line) String() string {
	var sb strings.Builder
	for i, w := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(w))
	}
	return sb.String()
}

// Mode selects the packing strategy.
type Mode int

const (
	// Greedy fills each line as far as it will go.
	Greedy Mode = iota

	// Balanced evens out line lengths at the same line count as Greedy.
	Balanced
)

func (m Mode) String() string {
	switch m {
	case Greedy:
		return "greedy"
	case Balanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// Options configures Reformat.
//
// Fields:
//   - MaxLength        — target line width, in runes.
//   - LastLine         — pack the final line under the same objective as the
//     others instead of leaving it greedy.
//   - ReduceJaggedness — use Balanced instead of Greedy packing.
type Options struct {
	MaxLength        int
	LastLine         bool
	ReduceJaggedness bool
}

// DefaultOptions returns a 72 column greedy configuration.
func DefaultOptions() Options {
	return Options{MaxLength: DefaultMaxLength}
}

// Validate reports ErrInvalidWidth when MaxLength is below 1.
func (o Options) Validate() error {
	if o.MaxLength < 1 {
		return ErrInvalidWidth
	}
	return nil
}

// Mode returns the packing strategy o asks for.
func (o Options) Mode() Mode {
	if o.ReduceJaggedness {
		return Balanced
	}
	return Greedy
}
