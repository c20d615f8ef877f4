package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/micr0-dev/prose/pkg/reflow"
)

// eachLine calls fn for every line of r with the line ending ("\n" or
// "\r\n") removed. Lines may be any length. Read errors are wrapped;
// errors from fn are returned as is.
func eachLine(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("reading input: %w", err)
		}
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// ProcessParagraphs reads r line by line and writes every paragraph to w
// reformatted with opts. Paragraphs are separated by empty lines; each empty
// line in the input is echoed as one blank line in the output.
//
// Output is flushed as soon as a paragraph ends, so everything finished
// before a read error has already reached w.
func ProcessParagraphs(r io.Reader, w io.Writer, opts reflow.Options) error {
	out := bufio.NewWriter(w)
	var buf []string

	err := eachLine(r, func(line string) error {
		if line != "" {
			buf = append(buf, line)
			return nil
		}
		printReformatted(out, opts, buf)
		out.WriteString("\n")
		buf = buf[:0]
		return flushOutput(out)
	})
	if err != nil {
		return err
	}

	printReformatted(out, opts, buf)
	return flushOutput(out)
}

func flushOutput(out *bufio.Writer) error {
	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Paragraphs that hold only whitespace reformat to "" and are skipped.
func printReformatted(w *bufio.Writer, opts reflow.Options, buf []string) {
	if len(buf) == 0 {
		return
	}
	if text := reflow.Reformat(opts, strings.Join(buf, "\n")); text != "" {
		w.WriteString(text)
		w.WriteString("\n")
	}
}

// ReadParagraphs splits r on empty lines and returns each paragraph's lines
// joined with newlines. Empty paragraphs are dropped.
func ReadParagraphs(r io.Reader) ([]string, error) {
	var paragraphs, buf []string
	flush := func() {
		if len(buf) > 0 {
			paragraphs = append(paragraphs, strings.Join(buf, "\n"))
			buf = buf[:0]
		}
	}

	err := eachLine(r, func(line string) error {
		if line != "" {
			buf = append(buf, line)
		} else {
			flush()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	flush()
	return paragraphs, nil
}

// Helper function to check whether stdin is redirected from a pipe or file
func StdinIsPiped() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode()&os.ModeCharDevice == 0
}

func DisplayHelp() {
	fmt.Println(`Prose: reformats prose to a specified width

Usage:
    Rewrap a file to the default width:
        prose < notes.txt

    Rewrap to 60 columns, evening out the right edge:
        prose -w 60 -f < notes.txt

    Tune the settings interactively:
        prose -p < notes.txt > wrapped.txt

Options:
    -w, --width WIDTH       Sets the maximum width for a line (default 72)
    -l, --last-line         Treat last line of a paragraph like the rest
    -f, --use-better-fit    Be more aggressive in reducing jagged line endings,
                            even if it means a narrower width
    -p, --preview           Adjust the settings in an interactive preview
    --save                  Save the given width and flags as the defaults
    -v, --version           Display version information
    -h, --help              Display help information`)
}

func DisplayVersion(version string) {
	fmt.Printf("prose version %s\n", version)
}
