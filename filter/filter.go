// Package filter compiles boolean expressions into player filters and
// evaluates them concurrently.
//
// Expressions use the expr language and see each player's fields plus a
// set of helpers:
//
//	TotalPoints > 100 and price() < 8.0
//	isMidfielder() and form() > 5.0
//	contains(WebName, "sal") or selectedBy() > 50.0
package filter

import (
	"context"

	"github.com/AtomsForPeace/fpl-go/fpl"
)

// defaultCompiler backs the package-level convenience functions
var defaultCompiler = NewExprCompiler(WithCache(100))

// CompileFilter compiles an expression using a shared cached compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// MatchPlayers compiles an expression and returns the players matching it,
// in input order.
func MatchPlayers(ctx context.Context, expression string, players []fpl.Player) ([]fpl.Player, error) {
	compiled, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}

	evaluator := NewConcurrentEvaluator()
	defer evaluator.Stop(ctx)

	return evaluator.Evaluate(ctx, compiled, players)
}

// EvaluateFilters compiles and evaluates several named filters in one shot
func EvaluateFilters(ctx context.Context, expressions map[string]string, players []fpl.Player) (map[string][]fpl.Player, error) {
	manager := NewManager()
	defer manager.Close(ctx)

	if err := manager.RegisterFilters(expressions); err != nil {
		return nil, err
	}

	return manager.EvaluateAll(ctx, players)
}
