package core

import (
	"sync"

	"github.com/altsource/altsource/schema"
)

// EvaluateAll scores every candidate against the source using a worker pool
// and returns the evaluations ranked. Each Evaluate call only reads its
// inputs and allocates its own output, so the fan-out needs no coordination
// beyond collecting results.
func EvaluateAll(table *schema.LogicTable, source *schema.PartAttributes, candidates []schema.PartAttributes, workers int, policy ScorePolicy) []schema.CandidateEvaluation {
	if len(candidates) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	results := make([]schema.CandidateEvaluation, len(candidates))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = Evaluate(table, source, &candidates[idx], policy)
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return RankCandidates(results, 0)
}
