package filter

import (
	"maps"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/AtomsForPeace/fpl-go/fpl"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Compile with static environment for validation; player properties
	// only exist at runtime
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a player. Players that make the
// expression error are treated as non-matching.
func (f *exprFilter) Evaluate(player fpl.Player) bool {
	env := createRuntimeEnvironment(player)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() during compilation
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// IsThreadSafe indicates that expr filters are thread-safe
func (f *exprFilter) IsThreadSafe() bool {
	return true
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 8)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// String helpers, all case-insensitive
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(player fpl.Player) map[string]any {
	env := make(map[string]any, 64)

	addHelperFunctions(env)

	env["Player"] = player

	// Numeric stats the API serves as strings, parsed once per player
	env["form"] = createParseFunc(player.Form)
	env["pointsPerGame"] = createParseFunc(player.PointsPerGame)
	env["selectedBy"] = createParseFunc(player.SelectedByPercent)
	env["ictIndex"] = createParseFunc(player.ICTIndex)
	env["influence"] = createParseFunc(player.Influence)
	env["creativity"] = createParseFunc(player.Creativity)
	env["threat"] = createParseFunc(player.Threat)
	env["xG"] = createParseFunc(player.ExpectedGoals)
	env["xA"] = createParseFunc(player.ExpectedAssists)
	env["xGI"] = createParseFunc(player.ExpectedGoalInvolvements)
	env["xGC"] = createParseFunc(player.ExpectedGoalsConceded)

	env["price"] = func() float64 { return player.Price() }

	// Position helpers
	env["isGoalkeeper"] = createPositionFunc(player.ElementType, 1)
	env["isDefender"] = createPositionFunc(player.ElementType, 2)
	env["isMidfielder"] = createPositionFunc(player.ElementType, 3)
	env["isForward"] = createPositionFunc(player.ElementType, 4)

	// Availability helpers
	env["isAvailable"] = createStatusFunc(player.Status, fpl.PlayerStatusAvailable)
	env["isDoubtful"] = createStatusFunc(player.Status, fpl.PlayerStatusDoubtful)
	env["isInjured"] = createStatusFunc(player.Status, fpl.PlayerStatusInjured)
	env["isSuspended"] = createStatusFunc(player.Status, fpl.PlayerStatusSuspended)
	env["isUnavailable"] = createStatusFunc(player.Status, fpl.PlayerStatusUnavailable)

	// Direct player properties for convenience
	env["ID"] = player.ID
	env["WebName"] = player.WebName
	env["FirstName"] = player.FirstName
	env["SecondName"] = player.SecondName
	env["FullName"] = player.FullName()
	env["Team"] = player.Team
	env["ElementType"] = player.ElementType
	env["Position"] = player.Position()
	env["Status"] = player.Status
	env["News"] = player.News
	env["NowCost"] = player.NowCost
	env["TotalPoints"] = player.TotalPoints
	env["EventPoints"] = player.EventPoints
	env["Minutes"] = player.Minutes
	env["GoalsScored"] = player.GoalsScored
	env["Assists"] = player.Assists
	env["CleanSheets"] = player.CleanSheets
	env["GoalsConceded"] = player.GoalsConceded
	env["YellowCards"] = player.YellowCards
	env["RedCards"] = player.RedCards
	env["Saves"] = player.Saves
	env["Bonus"] = player.Bonus
	env["BPS"] = player.BPS
	env["Starts"] = player.Starts
	env["DreamteamCount"] = player.DreamteamCount
	env["InDreamteam"] = player.InDreamteam
	env["TransfersIn"] = player.TransfersIn
	env["TransfersOut"] = player.TransfersOut

	return env
}

// Helper factory functions, closures so each value is computed once per player

func createParseFunc(raw string) func() float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		value = 0
	}
	return func() float64 {
		return value
	}
}

func createPositionFunc(elementType, want int64) func() bool {
	return func() bool {
		return elementType == want
	}
}

func createStatusFunc(status, want string) func() bool {
	return func() bool {
		return status == want
	}
}
