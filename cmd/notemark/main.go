// Package main is the entry point for the notemark tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/notemark/internal/config"
	"github.com/dshills/notemark/internal/notestore"
	"github.com/dshills/notemark/internal/tags"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		dataPath    string
		migrate     bool
		extractTags bool
		sanitize    bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&dataPath, "data", "", "Path to notes data file (overrides config)")
	flag.BoolVar(&migrate, "migrate", false, "Migrate the notes data file to span storage")
	flag.BoolVar(&extractTags, "extract-tags", false, "Extract canonical hashtags from text")
	flag.BoolVar(&sanitize, "sanitize-tags", false, "Sanitize a comma-separated tag list")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Notemark - note markup migration and tag tools\n\n")
		fmt.Fprintf(os.Stderr, "Usage: notemark [options] [text]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  notemark -migrate -data notes.json     Migrate notes to span storage\n")
		fmt.Fprintf(os.Stderr, "  notemark -extract-tags \"see #Math\"     Print canonical hashtags\n")
		fmt.Fprintf(os.Stderr, "  notemark -sanitize-tags \"a, #B, a\"     Canonicalize a tag list\n")
		fmt.Fprintf(os.Stderr, "  cat note.txt | notemark -extract-tags  Read text from stdin\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Notemark %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if dataPath == "" {
		dataPath = cfg.Store.DataPath
	}

	switch {
	case migrate:
		return runMigrate(dataPath)
	case extractTags:
		return runTags(tags.Extract)
	case sanitize:
		return runTags(tags.SanitizeList)
	default:
		flag.Usage()
		return 2
	}
}

func runMigrate(dataPath string) int {
	store := notestore.New(dataPath)
	report, err := store.Migrate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: migration failed: %v\n", err)
		return 1
	}
	fmt.Println(report)
	return 0
}

// runTags applies a tag function to the argument text, or to stdin when no
// argument is given, and prints one tag per line.
func runTags(fn func(string) []string) int {
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading stdin: %v\n", err)
			return 1
		}
		text = string(data)
	}

	for _, tag := range fn(text) {
		fmt.Println(tag)
	}
	return 0
}
