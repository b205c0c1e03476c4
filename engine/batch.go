package engine

import (
	"context"
	"sync"

	"github.com/npillmayer/mathsym/poly"
)

// LineResult is the outcome of evaluating a single line in a batch.
type LineResult struct {
	Line   int // 1-based
	Input  string
	Result poly.Result
	Err    error
}

// Skipped is true for blank lines, which are not evaluated.
func (lr LineResult) Skipped() bool {
	return IsBlank(lr.Input)
}

// EvalLines evaluates independent lines concurrently, using at most
// Config().Workers goroutines. Results are returned in input order. If ctx is
// canceled, lines not yet evaluated report the context's error.
func (e *Engine) EvalLines(ctx context.Context, lines []string) []LineResult {
	results := make([]LineResult, len(lines))
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := e.conf.Workers
	if workers > len(lines) {
		workers = len(lines)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.evalLine(ctx, i, lines[i])
			}
		}()
	}
	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	tracer().Infof("evaluated %d lines, %d failed", len(lines), failed)
	return results
}

func (e *Engine) evalLine(ctx context.Context, i int, line string) LineResult {
	r := LineResult{Line: i + 1, Input: line}
	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}
	if IsBlank(line) {
		return r
	}
	r.Result, r.Err = e.Eval(ctx, line)
	return r
}
