package io_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	proseio "github.com/micr0-dev/prose/pkg/io"
	"github.com/micr0-dev/prose/pkg/reflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func process(t *testing.T, input string, opts reflow.Options) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, proseio.ProcessParagraphs(strings.NewReader(input), &out, opts))
	return out.String()
}

func TestProcessParagraphs(t *testing.T) {
	opts := reflow.Options{MaxLength: 10}
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"two paragraphs", "the quick brown fox jumps\n\na\n", "the quick\nbrown fox\njumps\n\na\n"},
		{"lines are joined", "the quick\nbrown fox jumps\n", "the quick\nbrown fox\njumps\n"},
		{"no trailing newline", "a b", "a b\n"},
		{"blank lines are echoed", "a\n\n\nb\n", "a\n\n\nb\n"},
		{"crlf input", "a b\r\n\r\nc\r\n", "a b\n\nc\n"},
		{"whitespace paragraph suppressed", "   \n\nb\n", "\nb\n"},
		{"empty input", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, process(t, tc.input, opts))
		})
	}
}

func TestProcessParagraphs_BetterFit(t *testing.T) {
	opts := reflow.Options{MaxLength: 5, ReduceJaggedness: true, LastLine: true}
	assert.Equal(t, "a b\nc d\ne f g\n\na b\nc d\ne f g\n", process(t, "a b c d e f g\n\na b c\nd e f g", opts))
}

// TestProcessParagraphs_LongLine checks lines past bufio's default 64K token
// size are accepted.
func TestProcessParagraphs_LongLine(t *testing.T) {
	input := strings.Repeat("word ", 40000)
	out := process(t, input, reflow.DefaultOptions())
	assert.Equal(t, reflow.Tokenize(input), reflow.Tokenize(out))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestProcessParagraphs_Errors(t *testing.T) {
	err := proseio.ProcessParagraphs(failingReader{}, &bytes.Buffer{}, reflow.DefaultOptions())
	assert.ErrorContains(t, err, "reading input: boom")

	err = proseio.ProcessParagraphs(strings.NewReader("a\n"), failingWriter{}, reflow.DefaultOptions())
	assert.ErrorContains(t, err, "writing output: disk full")
}

// TestProcessParagraphs_KeepsOutputBeforeReadError checks that a paragraph
// finished before the input fails is still written.
func TestProcessParagraphs_KeepsOutputBeforeReadError(t *testing.T) {
	r := io.MultiReader(strings.NewReader("first paragraph here\n\nsecond\n"), failingReader{})
	var out bytes.Buffer

	err := proseio.ProcessParagraphs(r, &out, reflow.DefaultOptions())
	assert.ErrorContains(t, err, "reading input")
	assert.Equal(t, "first paragraph here\n\n", out.String())
}

// chunkReader hands out one chunk per Read call and records what the output
// held each time it was asked for more input.
type chunkReader struct {
	chunks []string
	out    *bytes.Buffer
	seen   []string
}

func (r *chunkReader) Read(p []byte) (int, error) {
	r.seen = append(r.seen, r.out.String())
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

// TestProcessParagraphs_FlushesEachParagraph verifies a paragraph reaches the
// writer before the next one is read.
func TestProcessParagraphs_FlushesEachParagraph(t *testing.T) {
	var out bytes.Buffer
	r := &chunkReader{chunks: []string{"one two\n\n", "three\n"}, out: &out}

	require.NoError(t, proseio.ProcessParagraphs(r, &out, reflow.DefaultOptions()))
	require.GreaterOrEqual(t, len(r.seen), 2)
	assert.Equal(t, "", r.seen[0])
	assert.Equal(t, "one two\n\n", r.seen[1])
	assert.Equal(t, "one two\n\nthree\n", out.String())
}

// TestProcessParagraphs_HugeLine feeds a single line longer than 16 MiB.
func TestProcessParagraphs_HugeLine(t *testing.T) {
	word := strings.Repeat("x", 17*1024*1024)
	out := process(t, "a "+word+" b\n", reflow.Options{MaxLength: 10})
	assert.Equal(t, "a\n"+word+"\nb\n", out)
}

func TestReadParagraphs(t *testing.T) {
	paragraphs, err := proseio.ReadParagraphs(strings.NewReader("\n\none\ntwo\n\n\nthree\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one\ntwo", "three"}, paragraphs)

	paragraphs, err = proseio.ReadParagraphs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, paragraphs)

	_, err = proseio.ReadParagraphs(failingReader{})
	assert.Error(t, err)
}
