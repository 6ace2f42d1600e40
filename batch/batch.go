// Package batch reads the file-based job format spec.md §6 defines
// (one "regex;w" or "regex w" pair per line) and runs each job through
// package pipeline, optionally fanned out across a worker pool.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/coregx/rexfsm/pipeline"
)

// Job is one line of a batch file: the regex to compile and the word to
// test it against, plus the 1-based source line it came from (for error
// reporting).
type Job struct {
	Regex string
	Word  string
	Line  int
}

// ReadJobs parses path per spec.md §6: each non-blank line is a regex and
// a word separated by the first ';' if the line has one, otherwise by the
// first whitespace; leading/trailing whitespace around both fields is trimmed; a bare
// regex with no separator is a job against the empty word ε. Blank
// lines (after trimming) are skipped and do not count as jobs.
func ReadJobs(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var jobs []Job
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		regex, word := splitJobLine(line)
		jobs = append(jobs, Job{Regex: regex, Word: word, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return jobs, nil
}

// splitJobLine splits line on the first ';' if present, otherwise on the
// first run of whitespace, trimming both resulting fields. A line with
// neither separator is the regex alone, paired with the empty word.
func splitJobLine(line string) (regex, word string) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	if i := strings.IndexFunc(line, func(r rune) bool { return r == ' ' || r == '\t' }); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

// Outcome is the result of running one Job: either a *pipeline.Result or
// the error that prevented one.
type Outcome struct {
	Job    Job
	Result *pipeline.Result
	Err    error
}

// RunAll runs every job in jobs through pipeline.Run under cfg, using up
// to workers concurrent goroutines. Each goroutine calls pipeline.Run
// independently per job — pipeline.Run is stateless per call, so no
// mutable state is shared across workers. Outcomes are returned in the
// same order as jobs regardless of completion order. ctx cancellation
// stops dispatching new jobs; in-flight jobs still complete.
func RunAll(ctx context.Context, jobs []Job, cfg pipeline.Config, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]Outcome, len(jobs))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				j := jobs[i]
				res, err := pipeline.Run(cfg, j.Regex, j.Word)
				outcomes[i] = Outcome{Job: j, Result: res, Err: err}
			}
		}()
	}

	go func() {
		defer close(indices)
		for i := range jobs {
			select {
			case <-ctx.Done():
				return
			case indices <- i:
			}
		}
	}()

	wg.Wait()
	return outcomes
}
