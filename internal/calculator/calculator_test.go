package calculator_test

import (
	"errors"
	"testing"

	"calctool/internal/calculator"
)

type fakeExpr string

func (f fakeExpr) String() string { return string(f) }

// fakeEngine позволяет управлять поведением разбора и вычисления в тестах
type fakeEngine struct {
	parseErr   error
	evalErr    error
	result     string
	lastParsed string
}

func (f *fakeEngine) Parse(expression string) (calculator.Expr, error) {
	f.lastParsed = expression
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return fakeExpr(expression), nil
}

func (f *fakeEngine) Evaluate(expr calculator.Expr) (string, error) {
	if f.evalErr != nil {
		return "", f.evalErr
	}
	return f.result, nil
}

func TestEvaluator_Evaluate(t *testing.T) {
	parseFailure := errors.New("mismatched parentheses")
	evalFailure := errors.New("division by zero")

	tests := []struct {
		name       string
		engine     *fakeEngine
		expression string
		want       string
		wantErr    error
		wantParse  bool
		wantEval   bool
	}{
		{
			name:       "успешное вычисление",
			engine:     &fakeEngine{result: "4"},
			expression: "2 + 2",
			want:       "4",
		},
		{
			name:       "пустое выражение",
			engine:     &fakeEngine{result: "0"},
			expression: "",
			wantErr:    calculator.ErrEmptyExpression,
		},
		{
			name:       "выражение из пробелов",
			engine:     &fakeEngine{result: "0"},
			expression: "   \t ",
			wantErr:    calculator.ErrEmptyExpression,
		},
		{
			name:       "ошибка разбора",
			engine:     &fakeEngine{parseErr: parseFailure},
			expression: "2 +",
			wantParse:  true,
		},
		{
			name:       "ошибка вычисления",
			engine:     &fakeEngine{evalErr: evalFailure},
			expression: "1/0",
			wantEval:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := calculator.NewEvaluator(tt.engine)
			got, err := ev.Evaluate(calculator.Request{Expression: tt.expression})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Evaluate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if tt.wantParse {
				var pe *calculator.ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("Evaluate() error = %v, want *ParseError", err)
				}
				if !errors.Is(err, parseFailure) {
					t.Errorf("ParseError не оборачивает исходную ошибку: %v", err)
				}
				return
			}

			if tt.wantEval {
				var ee *calculator.EvalError
				if !errors.As(err, &ee) {
					t.Fatalf("Evaluate() error = %v, want *EvalError", err)
				}
				if !errors.Is(err, evalFailure) {
					t.Errorf("EvalError не оборачивает исходную ошибку: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Evaluate() unexpected error = %v", err)
			}
			if got.Result != tt.want {
				t.Errorf("Evaluate() = %q, want %q", got.Result, tt.want)
			}
		})
	}
}

// Строка выражения должна попадать в движок без изменений
func TestEvaluator_PassesExpressionUnmodified(t *testing.T) {
	engine := &fakeEngine{result: "1"}
	ev := calculator.NewEvaluator(engine)

	const raw = "  sin(pi/2) "
	if _, err := ev.Evaluate(calculator.Request{Expression: raw}); err != nil {
		t.Fatalf("Evaluate() unexpected error = %v", err)
	}

	if engine.lastParsed != raw {
		t.Errorf("в движок передано %q, ожидалось %q", engine.lastParsed, raw)
	}
}

// Пустой вход не должен доходить до движка
func TestEvaluator_EmptyInputSkipsEngine(t *testing.T) {
	engine := &fakeEngine{result: "1"}
	ev := calculator.NewEvaluator(engine)

	_, err := ev.Evaluate(calculator.Request{Expression: " "})
	if !errors.Is(err, calculator.ErrEmptyExpression) {
		t.Fatalf("Evaluate() error = %v, want ErrEmptyExpression", err)
	}
	if engine.lastParsed != "" {
		t.Errorf("движок был вызван для пустого выражения: %q", engine.lastParsed)
	}
}
