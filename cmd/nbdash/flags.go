package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// titleFlags holds report title flags.
type titleFlags struct {
	override     string
	defaultTitle string
}

// assetFlags holds styling flags (template style, extra CSS, custom asset path).
type assetFlags struct {
	style          string // name, path or inline CSS replacing the template style
	css            string // extra CSS file appended after the style
	assetPath      string // directory with styles/{name}.css overrides
	highlightStyle string // chroma style for fenced code
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	template string
	date     string
	title    titleFlags
	assets   assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log skipped items and conversion stats")
}

// addTitleFlags adds title flags to a FlagSet.
func addTitleFlags(fs *flag.FlagSet, f *titleFlags) {
	fs.StringVar(&f.override, "title", "", "report title (\"\" = first level-1 heading)")
	fs.StringVar(&f.defaultTitle, "default-title", "", "title when the notebook has no level-1 heading")
}

// addAssetFlags adds styling flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or inline CSS for the template")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/{name}.css overrides")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code blocks (default github)")
}

// registerConvertFlags binds every convert flag to f.
// Shared by parseConvertFlags and shell completion.
func registerConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.template, "template", "t", "", "template: default, minimal, grid")
	fs.StringVar(&f.date, "date", "", "\"Generated on\" stamp: \"auto\", \"auto:FORMAT\", or literal")

	addCommonFlags(fs, &f.common)
	addTitleFlags(fs, &f.title)
	addAssetFlags(fs, &f.assets)
}

// parseConvertFlags parses convert command flags and returns positional args.
// Parse errors are returned, not printed.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &convertFlags{}
	registerConvertFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
