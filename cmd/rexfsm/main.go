// Command rexfsm compiles a regular expression into its NFA and DFA
// forms and reports whether an input word is accepted, per spec.md §6.
package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/coregx/rexfsm/batch"
	"github.com/coregx/rexfsm/internal/dot"
	"github.com/coregx/rexfsm/internal/runner"
	"github.com/coregx/rexfsm/pipeline"
	"github.com/coregx/rexfsm/token"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags()
	cfg := pipeline.Config{Keywords: append(token.DefaultKeywords(), opts.Keywords...)}

	if opts.BatchIn != "" {
		runBatch(opts, cfg)
		return
	}
	runSingle(opts, cfg)
}

func runSingle(opts *runner.Options, cfg pipeline.Config) {
	res, err := pipeline.Run(cfg, opts.Regex, opts.Word)
	if err != nil {
		gologger.Fatal().Msgf("compile %q: %v", opts.Regex, err)
	}

	gologger.Info().Msgf("regex %q word %q: nfa=%v dfa=%v mindfa=%v",
		opts.Regex, opts.Word, res.AcceptNFA, res.AcceptDFA, res.AcceptMinDFA)
	gologger.Info().Msgf("nfa states=%d, dfa states=%d, minimized dfa states=%d",
		res.NFA.NumStates(), res.DFA.NumStates(), res.MinDFA.NumStates())

	if opts.Out != "" {
		writeGraphs(opts.Out, "", res)
	}

	if !res.Accepts() {
		os.Exit(1)
	}
}

func runBatch(opts *runner.Options, cfg pipeline.Config) {
	jobs, err := batch.ReadJobs(opts.BatchIn)
	if err != nil {
		gologger.Fatal().Msgf("read batch file %q: %v", opts.BatchIn, err)
	}
	gologger.Info().Msgf("loaded %d jobs from %s", len(jobs), opts.BatchIn)

	outcomes := batch.RunAll(context.Background(), jobs, cfg, opts.Workers)

	failures := 0
	for i, o := range outcomes {
		if o.Err != nil {
			failures++
			gologger.Error().Msgf("line %d: %q vs %q: %v", o.Job.Line, o.Job.Regex, o.Job.Word, o.Err)
			continue
		}
		gologger.Info().Msgf("line %d: %q vs %q: accept=%v", o.Job.Line, o.Job.Regex, o.Job.Word, o.Result.Accepts())
		if opts.Out != "" {
			writeGraphs(opts.Out, jobTag(i, o.Job.Line), o.Result)
		}
	}

	if failures > 0 {
		gologger.Fatal().Msgf("%d of %d jobs failed to compile", failures, len(jobs))
	}
}

// jobTag names the per-job export subdirectory under -out for batch mode,
// so exports from different lines never collide.
func jobTag(index, line int) string {
	return "job-" + strconv.Itoa(index) + "-line-" + strconv.Itoa(line)
}

// writeGraphs renders res's four graphs as DOT files under dir/tag.
func writeGraphs(dir, tag string, res *pipeline.Result) {
	target := filepath.Join(dir, tag)
	if err := os.MkdirAll(target, 0o755); err != nil {
		gologger.Error().Msgf("create output dir %q: %v", target, err)
		return
	}

	exports := map[string]string{
		"tree.dot":   dot.Render("tree", res.TreeGraph),
		"nfa.dot":    dot.Render("nfa", res.NFAGraph),
		"dfa.dot":    dot.Render("dfa", res.DFAGraph),
		"mindfa.dot": dot.Render("mindfa", res.MinDFAGraph),
	}
	for name, contents := range exports {
		path := filepath.Join(target, name)
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			gologger.Error().Msgf("write %q: %v", path, err)
		}
	}
}
