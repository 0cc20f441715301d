package symbolic

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

var (
	// ErrDivisionByZero — деление на ноль, в том числе возведение нуля
	// в отрицательную степень
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUndefined — результат не определен численно (NaN или переполнение)
	ErrUndefined = errors.New("result is undefined")
)

// freeSymbolError сигнализирует о свободной переменной в выражении.
// Такое выражение остается в символьном виде.
type freeSymbolError struct {
	name string
}

func (e *freeSymbolError) Error() string {
	return fmt.Sprintf("free symbol: %s", e.name)
}

// evalNode приводит дерево к значению complex128.
// Константы pi и e подставляются здесь.
func evalNode(n *node) (complex128, error) {
	switch n.kind {
	case nodeNum:
		return n.value, nil
	case nodeSym:
		switch n.name {
		case "pi":
			return complex(math.Pi, 0), nil
		case "e":
			return complex(math.E, 0), nil
		}
		return 0, &freeSymbolError{name: n.name}
	case nodeCall:
		arg, err := evalNode(n.args[0])
		if err != nil {
			return 0, err
		}
		return evalCall(n.name, arg)
	case nodeOp:
		a, err := evalNode(n.args[0])
		if err != nil {
			return 0, err
		}
		if n.name == opNeg {
			return negValue(a), nil
		}
		b, err := evalNode(n.args[1])
		if err != nil {
			return 0, err
		}
		switch n.name {
		case "+":
			return a + b, nil
		case "-":
			return a - b, nil
		case "*":
			return a * b, nil
		case "/":
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a / b, nil
		case "^":
			return powValue(a, b)
		}
	}
	return 0, ErrUndefined
}

// powValue вычисляет степень. Вещественная ветка идет через math.Pow,
// чтобы целые степени оставались точными; отрицательное основание с
// дробным показателем и комплексные операнды уходят в cmplx.Pow.
func powValue(a, b complex128) (complex128, error) {
	if a == 0 && imag(b) == 0 && real(b) < 0 {
		return 0, ErrDivisionByZero
	}

	if imag(b) == 0 && isInteger(real(b)) && math.Abs(real(b)) <= 64 {
		return intPow(a, int(real(b)))
	}

	if imag(a) == 0 && imag(b) == 0 {
		r := math.Pow(real(a), real(b))
		if !math.IsNaN(r) {
			return complex(r, 0), nil
		}
	}

	if imag(a) == 0 {
		a = complex(real(a), 0)
	}
	return cmplx.Pow(a, b), nil
}

// negValue меняет знак значения, не оставляя -0 в компонентах:
// мнимая часть -0 уводит функции cmplx на другую сторону разреза
// (sqrt(-4) получался бы -2i вместо 2i)
func negValue(v complex128) complex128 {
	re, im := -real(v), -imag(v)
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	return complex(re, im)
}

func isInteger(v float64) bool {
	return v == math.Trunc(v) && !math.IsInf(v, 0)
}

// intPow считает целую степень повторным умножением: cmplx.Pow через
// exp и log теряет точность даже на i^2
func intPow(a complex128, e int) (complex128, error) {
	if e < 0 {
		if a == 0 {
			return 0, ErrDivisionByZero
		}
		v, err := intPow(a, -e)
		if err != nil {
			return 0, err
		}
		return 1 / v, nil
	}
	result := complex(1, 0)
	for i := 0; i < e; i++ {
		result *= a
	}
	return result, nil
}

// evalCall вычисляет функцию от значения. Вещественный аргумент в
// пределах области определения идет через math, за ее пределами —
// через комплексное продолжение cmplx (sqrt(-4) -> 2i).
func evalCall(name string, v complex128) (complex128, error) {
	if imag(v) == 0 {
		// мнимая часть могла быть -0, нормализуем перед cmplx
		v = complex(real(v), 0)
		x := real(v)
		switch name {
		case "sin":
			return complex(math.Sin(x), 0), nil
		case "cos":
			return complex(math.Cos(x), 0), nil
		case "tan":
			return complex(math.Tan(x), 0), nil
		case "asin":
			if x >= -1 && x <= 1 {
				return complex(math.Asin(x), 0), nil
			}
		case "acos":
			if x >= -1 && x <= 1 {
				return complex(math.Acos(x), 0), nil
			}
		case "atan":
			return complex(math.Atan(x), 0), nil
		case "sinh":
			return complex(math.Sinh(x), 0), nil
		case "cosh":
			return complex(math.Cosh(x), 0), nil
		case "tanh":
			return complex(math.Tanh(x), 0), nil
		case "exp":
			return complex(math.Exp(x), 0), nil
		case "ln", "log":
			if x > 0 {
				return complex(math.Log(x), 0), nil
			}
			if x == 0 {
				return 0, ErrUndefined
			}
		case "sqrt":
			if x >= 0 {
				return complex(math.Sqrt(x), 0), nil
			}
		case "abs":
			return complex(math.Abs(x), 0), nil
		case "floor":
			return complex(math.Floor(x), 0), nil
		case "ceil":
			return complex(math.Ceil(x), 0), nil
		case "sign":
			switch {
			case x > 0:
				return complex(1, 0), nil
			case x < 0:
				return complex(-1, 0), nil
			}
			return complex(0, 0), nil
		}
	}

	switch name {
	case "sin":
		return cmplx.Sin(v), nil
	case "cos":
		return cmplx.Cos(v), nil
	case "tan":
		return cmplx.Tan(v), nil
	case "asin":
		return cmplx.Asin(v), nil
	case "acos":
		return cmplx.Acos(v), nil
	case "atan":
		return cmplx.Atan(v), nil
	case "sinh":
		return cmplx.Sinh(v), nil
	case "cosh":
		return cmplx.Cosh(v), nil
	case "tanh":
		return cmplx.Tanh(v), nil
	case "exp":
		return cmplx.Exp(v), nil
	case "ln", "log":
		return cmplx.Log(v), nil
	case "sqrt":
		return cmplx.Sqrt(v), nil
	case "abs":
		return complex(cmplx.Abs(v), 0), nil
	case "floor", "ceil", "sign":
		return 0, fmt.Errorf("%s is not defined for complex argument", name)
	}

	return 0, fmt.Errorf("unknown function: %s", name)
}

// formatValue приводит значение к канонической строковой форме:
// "4", "6.302585092994046", "2i", "18 - 1i"
func formatValue(v complex128) string {
	re, im := real(v), imag(v)
	// убираем отрицательный ноль
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}

	if im == 0 {
		return strconv.FormatFloat(re, 'g', -1, 64)
	}

	ims := strconv.FormatFloat(math.Abs(im), 'g', -1, 64) + "i"
	if re == 0 {
		if im < 0 {
			return "-" + ims
		}
		return ims
	}

	sign := "+"
	if im < 0 {
		sign = "-"
	}
	return strconv.FormatFloat(re, 'g', -1, 64) + " " + sign + " " + ims
}
