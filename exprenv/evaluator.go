package exprenv

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Evaluator runs expressions with the address functions available.
// Compiled programs are cached by expression text; it is safe for concurrent use.
type Evaluator struct {
	cache sync.Map // expression string → compiled *vm.Program
}

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate compiles (once) and runs expression against data.
func (e *Evaluator) Evaluate(expression string, data map[string]any) (any, error) {
	if expression == "" {
		return nil, nil
	}
	program, err := e.compile(expression, data)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	result, err := expr.Run(program, data)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression %q: %w", expression, err)
	}
	return result, nil
}

// Address evaluates expression and requires a string result.
func (e *Evaluator) Address(expression string, data map[string]any) (string, error) {
	result, err := e.Evaluate(expression, data)
	if err != nil {
		return "", err
	}
	s, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("expression %q evaluated to %T, expected string", expression, result)
	}
	return s, nil
}

func (e *Evaluator) compile(expression string, env map[string]any) (*vm.Program, error) {
	if cached, ok := e.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	opts := append([]expr.Option{expr.Env(env), expr.AllowUndefinedVariables()}, Functions()...)
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, err
	}
	e.cache.Store(expression, program)
	return program, nil
}
