package filter

import (
	"context"
	"testing"

	"github.com/AtomsForPeace/fpl-go/fpl"
)

// Benchmark filter compilation
func BenchmarkCompileFilter(b *testing.B) {
	expressions := []struct {
		name string
		expr string
	}{
		{"simple", `TotalPoints > 100`},
		{"complex", `isMidfielder() and form() > 5.0 and price() < 8.0`},
	}

	for _, tc := range expressions {
		b.Run(tc.name, func(b *testing.B) {
			compiler := NewExprCompiler()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := compiler.Compile(tc.expr)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark filter compilation with caching
func BenchmarkCompileFilterWithCache(b *testing.B) {
	compiler := NewExprCompiler(WithCache(100))
	expression := `isMidfielder() and TotalPoints > 100`

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := compiler.Compile(expression)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark single filter evaluation
func BenchmarkEvaluateFilter(b *testing.B) {
	players := generateTestPlayers(1000)
	filter, err := CompileFilter(`isMidfielder() and TotalPoints > 120`)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		matches := 0
		for _, player := range players {
			if filter.Evaluate(player) {
				matches++
			}
		}
		_ = matches
	}
}

// Benchmark concurrent evaluation
func BenchmarkEvaluateConcurrent(b *testing.B) {
	players := generateTestPlayers(10000)
	filter, err := CompileFilter(`isMidfielder() and form() > 4.0`)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	evaluators := []struct {
		name      string
		evaluator *ConcurrentEvaluator
	}{
		{"workers-1", NewConcurrentEvaluator(WithWorkers(1))},
		{"workers-4", NewConcurrentEvaluator(WithWorkers(4))},
		{"workers-8", NewConcurrentEvaluator(WithWorkers(8))},
		{"workers-default", NewConcurrentEvaluator()},
	}

	for _, tc := range evaluators {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := tc.evaluator.Evaluate(ctx, filter, players)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark batch evaluation
func BenchmarkEvaluateBatch(b *testing.B) {
	players := generateTestPlayers(5000)
	filters := map[string]string{
		"midfielders": `isMidfielder()`,
		"cheap":       `price() < 6.0`,
		"inForm":      `form() > 6.0`,
		"highScoring": `TotalPoints > 150`,
		"complex":     `isForward() and form() > 4.0 and price() < 9.0`,
	}

	compiled := make(map[string]CompiledFilter)
	for name, expression := range filters {
		filter, err := CompileFilter(expression)
		if err != nil {
			b.Fatal(err)
		}
		compiled[name] = filter
	}

	ctx := context.Background()
	evaluator := NewConcurrentEvaluator()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := evaluator.EvaluateBatch(ctx, compiled, players)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark helper function performance
func BenchmarkHelperFunctions(b *testing.B) {
	b.Run("parse", func(b *testing.B) {
		form := createParseFunc("7.2")
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = form()
		}
	})

	b.Run("environment", func(b *testing.B) {
		player := fpl.Player{
			ID:          310,
			WebName:     "Saka",
			ElementType: 3,
			NowCost:     105,
			Form:        "7.2",
		}
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = createRuntimeEnvironment(player)
		}
	})
}
