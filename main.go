package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/micr0-dev/prose/pkg/io"
	"github.com/micr0-dev/prose/pkg/reflow"
	"github.com/micr0-dev/prose/pkg/tea"

	tearaw "github.com/charmbracelet/bubbletea"
)

const version = "0.1.0" // Program version

func main() {
	// Saved defaults become the flag defaults
	defaults, err := io.LoadDefaults()
	if err != nil {
		log.Printf("Warning: Could not load saved defaults. Using built-in defaults. Error: %v\n", err)
	}

	var width int
	var lastLine, betterFit, preview bool
	flag.IntVar(&width, "w", defaults.Width, "Sets the maximum width for a line")
	flag.IntVar(&width, "width", defaults.Width, "Sets the maximum width for a line")
	flag.BoolVar(&lastLine, "l", defaults.LastLine, "Treat last line of a paragraph like the rest")
	flag.BoolVar(&lastLine, "last-line", defaults.LastLine, "Treat last line of a paragraph like the rest")
	flag.BoolVar(&betterFit, "f", defaults.BetterFit, "Be more aggressive in reducing jagged line endings")
	flag.BoolVar(&betterFit, "use-better-fit", defaults.BetterFit, "Be more aggressive in reducing jagged line endings")
	flag.BoolVar(&preview, "p", false, "Adjust the settings in an interactive preview")
	flag.BoolVar(&preview, "preview", false, "Adjust the settings in an interactive preview")
	savePtr := flag.Bool("save", false, "Save the given width and flags as the defaults")
	helpPtr := flag.Bool("help", false, "Display help information")
	hPtr := flag.Bool("h", false, "Display help information")
	vPtr := flag.Bool("v", false, "Display version information")
	versionPtr := flag.Bool("version", false, "Display version information")

	flag.Usage = io.DisplayHelp
	flag.Parse()

	if *helpPtr || *hPtr {
		io.DisplayHelp()
		os.Exit(0)
	}

	if *vPtr || *versionPtr {
		io.DisplayVersion(version)
		os.Exit(0)
	}

	opts := reflow.Options{MaxLength: width, LastLine: lastLine, ReduceJaggedness: betterFit}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Choose a valid number: width must be a positive integer, got %d\n", width)
		os.Exit(1)
	}

	if *savePtr {
		if err := io.SaveDefaults(io.FromOptions(opts)); err != nil {
			log.Printf("Failed to save defaults: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Defaults saved successfully.")
	}

	if preview {
		runPreview(opts)
		return
	}

	if err := io.ProcessParagraphs(os.Stdin, os.Stdout, opts); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// The preview reads its keys from the terminal and draws on stderr, leaving
// stdin for the text and stdout for the accepted result.
func runPreview(opts reflow.Options) {
	if !io.StdinIsPiped() {
		log.Println("The preview needs text piped on stdin, e.g. prose -p < notes.txt")
		os.Exit(1)
	}

	paragraphs, err := io.ReadParagraphs(os.Stdin)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	save := func(o reflow.Options) error {
		return io.SaveDefaults(io.FromOptions(o))
	}

	p := tearaw.NewProgram(
		tea.InitialModel(paragraphs, opts, save),
		tearaw.WithInputTTY(),
		tearaw.WithOutput(os.Stderr),
		tearaw.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		log.Printf("Alas, there's been a Bubble Tea error: %v\n", err)
		os.Exit(1)
	}

	if out, ok := tea.Result(final); ok && out != "" {
		fmt.Println(out)
	}
}
