package calculator

import (
	"strings"
)

// Request представляет запрос на вычисление выражения
type Request struct {
	Expression string `json:"expression"`
}

// Result представляет результат вычисления в строковом виде
type Result struct {
	Result string `json:"result"`
}

// Expr — символьное представление выражения, построенное движком при разборе.
// Содержимое непрозрачно для вычислителя.
type Expr interface {
	String() string
}

// Engine — узкий интерфейс внешнего символьного движка.
// Parse переводит текст в символьное представление, Evaluate приводит
// представление к числовому значению и возвращает его каноническую
// строковую форму. Движок можно подменить в тестах.
type Engine interface {
	Parse(expression string) (Expr, error)
	Evaluate(expr Expr) (string, error)
}

// Evaluator реализует контракт вычислителя: валидация входа,
// делегирование движку и классификация ошибок
type Evaluator struct {
	engine Engine
}

func NewEvaluator(engine Engine) *Evaluator {
	return &Evaluator{engine: engine}
}

// Evaluate вычисляет выражение из запроса. Пустой вход отклоняется
// до обращения к движку, строка выражения передается движку без изменений.
// Ошибки разбора и вычисления не интерпретируются, а оборачиваются
// в ParseError и EvalError соответственно.
func (e *Evaluator) Evaluate(req Request) (Result, error) {
	if strings.TrimSpace(req.Expression) == "" {
		return Result{}, ErrEmptyExpression
	}

	expr, err := e.engine.Parse(req.Expression)
	if err != nil {
		return Result{}, &ParseError{Expression: req.Expression, Err: err}
	}

	out, err := e.engine.Evaluate(expr)
	if err != nil {
		return Result{}, &EvalError{Expression: req.Expression, Err: err}
	}

	return Result{Result: out}, nil
}
