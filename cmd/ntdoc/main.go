// Package main is the entry point for the ntdoc reference browser.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Yeint-herp/ntdoc/internal/catalog"
	"github.com/Yeint-herp/ntdoc/internal/config"
	"github.com/Yeint-herp/ntdoc/internal/rank"
	"github.com/Yeint-herp/ntdoc/internal/synth"
	"github.com/Yeint-herp/ntdoc/internal/tui"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	raw         bool
	jsonOut     bool
	list        bool
	catalogPath string
	configPath  string
	query       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.catalogPath != "" {
		cfg.CatalogPath = opts.catalogPath
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.list {
		for _, rec := range cat {
			fmt.Println(rec.Name())
		}
		return 0
	}

	if opts.query != "" {
		return directLookup(cat, opts)
	}

	engine := rank.New(cat)
	browser, err := tui.New(cat, engine, cfg.Mouse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := browser.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// directLookup resolves the query to a single record and prints it.
func directLookup(cat catalog.Catalog, opts options) int {
	engine := rank.New(cat)
	rec, ok := engine.ResolveBest(opts.query)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no entry matching %q found.\n", opts.query)
		return 1
	}

	switch {
	case opts.jsonOut:
		out, err := catalog.ExportJSON(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(out)
	case opts.raw:
		fmt.Println(synth.Raw(rec, cat))
	default:
		fmt.Println(synth.Pretty(rec, cat))
	}
	return 0
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Embedded()
	}
	return catalog.LoadFile(path)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.BoolVar(&opts.raw, "raw", false, "Print the raw declaration instead of the annotated form")
	flag.BoolVar(&opts.raw, "r", false, "Print the raw declaration (shorthand)")
	flag.BoolVar(&opts.jsonOut, "json", false, "Print the resolved entry as JSON")
	flag.BoolVar(&opts.list, "list", false, "List all entry names and exit")
	flag.StringVar(&opts.catalogPath, "catalog", "", "Path to a catalog JSON file (default: embedded catalog)")
	flag.StringVar(&opts.configPath, "config", "", "Path to an init.lua configuration file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ntdoc - fuzzy NT/Win32 API reference\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ntdoc [options] [name]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ntdoc                       Open the interactive browser\n")
		fmt.Fprintf(os.Stderr, "  ntdoc NtCreateFile          Show the entry best matching a name\n")
		fmt.Fprintf(os.Stderr, "  ntdoc -r UNICODE_STRING     Print just the reconstructed declaration\n")
		fmt.Fprintf(os.Stderr, "  ntdoc -list                 Print every entry name\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("ntdoc %s\n", version)
		os.Exit(0)
	}

	opts.query = flag.Arg(0)
	return opts
}
