// Package symbolic реализует движок вычисления выражений поверх
// символьного ядра gosymbol. Разбор текста выполняется собственным
// парсером (токенизация и сортировочная станция), числовое приведение —
// обходом дерева в complex128, упрощение и канонический вывод
// выражений со свободными переменными делегируются gosymbol.
package symbolic

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/njchilds90/gosymbol"

	"calctool/internal/calculator"
)

// Engine реализует calculator.Engine
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Expr — разобранное выражение
type Expr struct {
	root *node
}

func (e *Expr) String() string {
	return e.root.String()
}

// Parse разбирает текст выражения в символьное представление
func (e *Engine) Parse(expression string) (calculator.Expr, error) {
	root, err := parseExpression(expression)
	if err != nil {
		return nil, err
	}
	return &Expr{root: root}, nil
}

// Evaluate приводит представление к числовому значению и возвращает
// его каноническую строковую форму. Выражение со свободными
// переменными упрощается gosymbol и возвращается в символьном виде.
func (e *Engine) Evaluate(expr calculator.Expr) (string, error) {
	parsed, ok := expr.(*Expr)
	if !ok {
		return "", fmt.Errorf("expression was parsed by a different engine: %T", expr)
	}

	v, err := evalNode(parsed.root)
	if err != nil {
		var free *freeSymbolError
		if errors.As(err, &free) {
			g, gerr := toGosymbol(parsed.root)
			if gerr != nil {
				return "", gerr
			}
			return gosymbol.DeepSimplify(g).String(), nil
		}
		return "", err
	}

	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return "", ErrUndefined
	}

	return formatValue(v), nil
}
