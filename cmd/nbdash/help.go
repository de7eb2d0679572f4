package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbdash [flags] <notebook.ipynb>")
	fmt.Fprintln(w, "       nbdash <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Jupyter notebook into a self-contained HTML dashboard.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert notebooks to HTML (default)")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'nbdash help convert' for conversion flags.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbdash [convert] <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Jupyter notebook into a self-contained HTML dashboard.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Notebook file, or a directory searched for *.ipynb")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report:")
	fmt.Fprintln(w, "  -t, --template <name>       Template: default, minimal, grid")
	fmt.Fprintln(w, "      --title <s>             Report title (\"\" = first level-1 heading)")
	fmt.Fprintln(w, "      --default-title <s>     Title when the notebook has none (default Dashboard)")
	fmt.Fprintln(w, "      --date <s>              \"Generated on\" stamp: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                              Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                              Presets (case-insensitive): iso, datetime, european, us, long")
	fmt.Fprintln(w, "                              Use [text] to escape literals: [Run] YYYY-MM-DD")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>             Style name, .css path, or inline CSS for the template")
	fmt.Fprintln(w, "      --css <path>            Extra CSS file appended after the style")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with styles/{name}.css overrides")
	fmt.Fprintln(w, "      --highlight-style <s>   Code block colors (chroma style, default github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Log skipped items and conversion stats")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	if !isCommand(args[0]) {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: nbdash version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: nbdash help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		printCompletionUsage(env.Stdout)
	}
}
