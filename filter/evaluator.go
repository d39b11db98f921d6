package filter

import (
	"context"
	"runtime"
	"sync"

	"github.com/AtomsForPeace/fpl-go/fpl"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.workerCount = workers
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.batchSize = size
	}
}

// ConcurrentEvaluator implements both Evaluator and BatchEvaluator interfaces
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	pool        WorkerPool
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.pool = NewWorkerPool(e.workerCount)

	return e
}

// Evaluate evaluates a single filter against all players
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, players []fpl.Player) ([]fpl.Player, error) {
	if len(players) == 0 {
		return []fpl.Player{}, nil
	}

	// Small player lists are not worth the concurrency overhead
	if len(players) < e.batchSize {
		return e.evaluateSequential(filter, players), nil
	}

	return e.evaluateConcurrent(ctx, filter, players)
}

// EvaluateBatch evaluates multiple filters against players concurrently
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, players []fpl.Player) (map[string][]fpl.Player, error) {
	if len(filters) == 0 || len(players) == 0 {
		return make(map[string][]fpl.Player), nil
	}

	results := make(map[string][]fpl.Player)
	resultChan := make(chan BatchResult, len(filters))

	var wg sync.WaitGroup
	for name, filter := range filters {
		wg.Add(1)

		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultChan <- BatchResult{
					FilterName: name,
					Error:      ctx.Err(),
				}
				return
			default:
			}

			matches, err := e.Evaluate(ctx, filter, players)
			resultChan <- BatchResult{
				FilterName: name,
				Matches:    matches,
				Error:      err,
			}
		})

		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Filters that errored are skipped
	for result := range resultChan {
		if result.Error != nil {
			continue
		}
		results[result.FilterName] = result.Matches
	}

	return results, nil
}

// evaluateSequential evaluates a filter against all players sequentially
func (e *ConcurrentEvaluator) evaluateSequential(filter CompiledFilter, players []fpl.Player) []fpl.Player {
	matches := make([]fpl.Player, 0, len(players)/10)
	for _, player := range players {
		if filter.Evaluate(player) {
			matches = append(matches, player)
		}
	}
	return matches
}

// evaluateConcurrent evaluates a filter against players using the worker
// pool, preserving input order in the result.
func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, players []fpl.Player) ([]fpl.Player, error) {
	chunkSize := max(len(players)/e.workerCount, e.batchSize)

	type chunkResult struct {
		matches []fpl.Player
		order   int
	}

	resultChan := make(chan chunkResult, (len(players)/chunkSize)+1)
	var wg sync.WaitGroup

	chunkIndex := 0
	for i := 0; i < len(players); i += chunkSize {
		end := min(i+chunkSize, len(players))

		wg.Add(1)
		chunk := players[i:end]
		index := chunkIndex
		chunkIndex++

		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			matches := make([]fpl.Player, 0, len(chunk)/10)
			for _, player := range chunk {
				if filter.Evaluate(player) {
					matches = append(matches, player)
				}
			}

			resultChan <- chunkResult{matches: matches, order: index}
		})

		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make(map[int][]fpl.Player)
	for result := range resultChan {
		results[result.order] = result.matches
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	totalMatches := 0
	for i := 0; i < len(results); i++ {
		totalMatches += len(results[i])
	}

	allMatches := make([]fpl.Player, 0, totalMatches)
	for i := 0; i < len(results); i++ {
		allMatches = append(allMatches, results[i]...)
	}

	return allMatches, nil
}

// Stop gracefully stops the evaluator's worker pool
func (e *ConcurrentEvaluator) Stop(ctx context.Context) error {
	return e.pool.Stop(ctx)
}
