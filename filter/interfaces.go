package filter

import (
	"context"

	"github.com/AtomsForPeace/fpl-go/fpl"
)

// Filter defines the basic interface for player filters
type Filter interface {
	// Evaluate checks if a player matches the filter criteria
	Evaluate(player fpl.Player) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string

	// IsThreadSafe indicates if the filter can be evaluated concurrently
	IsThreadSafe() bool
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator evaluates filters against players
type Evaluator interface {
	// Evaluate evaluates a filter against all players
	Evaluate(ctx context.Context, filter CompiledFilter, players []fpl.Player) ([]fpl.Player, error)
}

// BatchEvaluator evaluates multiple filters concurrently
type BatchEvaluator interface {
	// EvaluateBatch evaluates multiple filters against players concurrently
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, players []fpl.Player) (map[string][]fpl.Player, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// BatchResult represents the result of evaluating a filter
type BatchResult struct {
	FilterName string
	Matches    []fpl.Player
	Error      error
}

// WorkerPool defines the interface for concurrent work execution
type WorkerPool interface {
	// Submit submits work to the pool
	Submit(work func()) error

	// Stop gracefully stops the worker pool
	Stop(ctx context.Context) error
}
