package transform

import "fable/internal/ast"

// ReturnStrategy is the contract governing how a translated statement list
// must be completed based on the syntactic slot it fills.
type ReturnStrategy int

const (
	// Return marks a function body tail: an empty or pass-only block becomes
	// an explicit empty return.
	Return ReturnStrategy = iota
	// NoReturn marks a non-tail nested block: an empty block becomes a no-op
	// and return values are discarded.
	NoReturn
	// NoBreak marks a switch-case body flattened into an if/elif chain:
	// trailing break markers are stripped, then NoReturn rules apply.
	NoBreak
)

// TailCallOpportunity marks the enclosing function as a candidate for
// iterative rewriting of self-recursion. A trailing self-call that the
// predicate accepts is retargeted into a loop continuation instead of a
// call.
type TailCallOpportunity struct {
	Label       string
	Formals     []string
	IsCandidate func(ast.Expr) bool
}

// Context is the immutable configuration threaded through every translation
// call. Derived contexts are produced by value; a Context is never mutated
// in place.
type Context struct {
	// TailCall is the current tail-call-optimization opportunity, if any.
	TailCall *TailCallOpportunity
	// ShouldHoist reports whether a declared variable is captured by a
	// nested closure and must be pre-bound ahead of its initializer.
	ShouldHoist func(name string) bool
	// TypeParams is the set of type parameters currently in scope.
	TypeParams map[string]struct{}
}

// NewContext returns the root context for one file.
func NewContext() Context {
	return Context{}
}

// WithTailCall derives a context carrying a new tail-call opportunity.
func (c Context) WithTailCall(tc *TailCallOpportunity) Context {
	c.TailCall = tc
	return c
}

// WithTypeParams derives a context with additional type parameters in scope.
func (c Context) WithTypeParams(names ...string) Context {
	params := make(map[string]struct{}, len(c.TypeParams)+len(names))
	for name := range c.TypeParams {
		params[name] = struct{}{}
	}
	for _, name := range names {
		params[name] = struct{}{}
	}
	c.TypeParams = params
	return c
}

func (c Context) isTypeParam(name string) bool {
	_, ok := c.TypeParams[name]
	return ok
}
