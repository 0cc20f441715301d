package symbolic

import (
	"math"

	"github.com/njchilds90/gosymbol"
)

type nodeKind string

const (
	nodeNum  nodeKind = "num"
	nodeSym  nodeKind = "sym"
	nodeCall nodeKind = "call"
	nodeOp   nodeKind = "op"
)

// node — узел дерева выражения. Для nodeNum заполнено value,
// для nodeSym и nodeCall — name, для nodeOp name хранит оператор.
type node struct {
	kind  nodeKind
	value complex128
	name  string
	args  []*node
}

func (n *node) String() string {
	switch n.kind {
	case nodeNum:
		return formatValue(n.value)
	case nodeSym:
		return n.name
	case nodeCall:
		return n.name + "(" + n.args[0].String() + ")"
	case nodeOp:
		if n.name == opNeg {
			return "-" + parenthesize(n.args[0])
		}
		return parenthesize(n.args[0]) + " " + n.name + " " + parenthesize(n.args[1])
	}
	return ""
}

func parenthesize(n *node) string {
	if n.kind == nodeOp {
		return "(" + n.String() + ")"
	}
	return n.String()
}

// numExpr переводит числовое значение в дерево gosymbol.
// Мнимая часть представляется как произведение на символ i.
func numExpr(v complex128) gosymbol.Expr {
	re, im := real(v), imag(v)
	if im == 0 {
		return realNum(re)
	}
	imE := gosymbol.MulOf(realNum(im), gosymbol.S("i"))
	if re == 0 {
		return imE
	}
	return gosymbol.AddOf(realNum(re), imE)
}

func realNum(v float64) gosymbol.Expr {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return gosymbol.N(int64(v))
	}
	return gosymbol.NFloat(v)
}

// toGosymbol переводит дерево в представление gosymbol для
// символьного упрощения и канонического вывода. Числовые аргументы
// функций проверяются на область определения заранее: Simplify в
// gosymbol сворачивает их через math и на NaN/Inf строит
// некорректное число.
func toGosymbol(n *node) (gosymbol.Expr, error) {
	switch n.kind {
	case nodeNum:
		return numExpr(n.value), nil
	case nodeSym:
		return gosymbol.S(n.name), nil
	case nodeCall:
		arg, err := toGosymbol(n.args[0])
		if err != nil {
			return nil, err
		}
		if num, ok := arg.(*gosymbol.Num); ok {
			probe := probeReal(n.name, num.Float64())
			if math.IsNaN(probe) || math.IsInf(probe, 0) {
				return nil, ErrUndefined
			}
		}
		return callExpr(n.name, arg), nil
	case nodeOp:
		a, err := toGosymbol(n.args[0])
		if err != nil {
			return nil, err
		}
		if n.name == opNeg {
			return gosymbol.MulOf(gosymbol.N(-1), a), nil
		}
		b, err := toGosymbol(n.args[1])
		if err != nil {
			return nil, err
		}
		switch n.name {
		case "+":
			return gosymbol.AddOf(a, b), nil
		case "-":
			return gosymbol.AddOf(a, gosymbol.MulOf(gosymbol.N(-1), b)), nil
		case "*":
			return gosymbol.MulOf(a, b), nil
		case "/":
			return gosymbol.MulOf(a, gosymbol.PowOf(b, gosymbol.N(-1))), nil
		case "^":
			return gosymbol.PowOf(a, b), nil
		}
	}
	return nil, ErrUndefined
}

func callExpr(name string, arg gosymbol.Expr) gosymbol.Expr {
	switch name {
	case "sin":
		return gosymbol.SinOf(arg)
	case "cos":
		return gosymbol.CosOf(arg)
	case "tan":
		return gosymbol.TanOf(arg)
	case "asin":
		return gosymbol.AsinOf(arg)
	case "acos":
		return gosymbol.AcosOf(arg)
	case "atan":
		return gosymbol.AtanOf(arg)
	case "sinh":
		return gosymbol.SinhOf(arg)
	case "cosh":
		return gosymbol.CoshOf(arg)
	case "tanh":
		return gosymbol.TanhOf(arg)
	case "exp":
		return gosymbol.ExpOf(arg)
	case "ln", "log":
		return gosymbol.LnOf(arg)
	case "sqrt":
		return gosymbol.SqrtOf(arg)
	case "abs":
		return gosymbol.AbsOf(arg)
	case "floor":
		return gosymbol.FloorOf(arg)
	case "ceil":
		return gosymbol.CeilOf(arg)
	case "sign":
		return gosymbol.SignOf(arg)
	}
	return arg
}

// probeReal повторяет числовое поведение функции на вещественном
// аргументе, чтобы отловить выход за область определения
func probeReal(name string, v float64) float64 {
	switch name {
	case "sin":
		return math.Sin(v)
	case "cos":
		return math.Cos(v)
	case "tan":
		return math.Tan(v)
	case "asin":
		return math.Asin(v)
	case "acos":
		return math.Acos(v)
	case "atan":
		return math.Atan(v)
	case "sinh":
		return math.Sinh(v)
	case "cosh":
		return math.Cosh(v)
	case "tanh":
		return math.Tanh(v)
	case "exp":
		return math.Exp(v)
	case "abs":
		return math.Abs(v)
	}
	// sqrt и ln не сворачиваются gosymbol вне области определения,
	// floor/ceil/sign всюду определены
	return 0
}
