// Package runner parses rexfsm's command-line flags, in the same
// goflags-group-plus-gologger style the reference projectdiscovery
// CLIs use.
package runner

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds every rexfsm CLI flag.
type Options struct {
	Regex    string
	Word     string
	Keywords goflags.StringSlice
	BatchIn  string
	Out      string
	Workers  int
	Verbose  bool
}

// ParseFlags parses os.Args into Options, applying the verbose log level
// immediately so later stages inherit it.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compiles a regular expression into NFA/DFA automata and tests it against input words.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Regex, "regex", "r", "", "regular expression to compile"),
		flagSet.StringVarP(&opts.Word, "word", "w", "", "input word to test against the compiled regex"),
		flagSet.StringSliceVarP(&opts.Keywords, "alphabet", "a", nil, "reserved multi-letter keyword literal to recognize, extending the default set (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.BatchIn, "batch", "b", "", "batch job file: one 'regex;word' pair per line"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Out, "out", "o", "", "directory to write Graphviz DOT exports (tree/nfa/dfa/mindfa), omit to skip export"),
		flagSet.IntVarP(&opts.Workers, "workers", "c", 1, "concurrent workers for -batch mode"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Regex == "" && opts.BatchIn == "" {
		gologger.Fatal().Msgf("rexfsm: one of -regex or -batch is required")
	}

	return opts
}
