package calculator

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression возвращается при пустом входе до обращения к движку
var ErrEmptyExpression = errors.New("empty expression")

// ParseError означает, что текст выражения не соответствует грамматике движка
type ParseError struct {
	Expression string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EvalError означает, что выражение разобрано, но численно не определено
type EvalError struct {
	Expression string
	Err        error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluation error: %v", e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
