package symbolic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// opNeg — внутреннее имя унарного минуса в ОПЗ
const opNeg = "neg"

var precedence = map[string]int{
	"+":   1,
	"-":   1,
	"*":   2,
	"/":   2,
	opNeg: 3,
	"^":   4,
}

func rightAssociative(op string) bool {
	return op == "^" || op == opNeg
}

// унарная позиция: начало выражения, после оператора или открывающей скобки
func unaryPosition(prev *token) bool {
	if prev == nil {
		return true
	}
	return prev.typ == tokenOperator || prev.typ == tokenLeftParen
}

// toRPN переводит последовательность токенов в обратную польскую запись
// алгоритмом сортировочной станции. Идентификатор перед открывающей
// скобкой считается именем функции.
func toRPN(tokens []token) ([]token, error) {
	var output []token
	var stack []token
	var prev *token

	for k := 0; k < len(tokens); k++ {
		tok := tokens[k]

		switch tok.typ {
		case tokenNumber, tokenImag:
			output = append(output, tok)
		case tokenIdent:
			if k+1 < len(tokens) && tokens[k+1].typ == tokenLeftParen {
				stack = append(stack, token{typ: tokenFunc, value: tok.value})
			} else {
				output = append(output, tok)
			}
		case tokenOperator:
			op := tok.value
			if (op == "-" || op == "+") && unaryPosition(prev) {
				if op == "+" {
					// унарный плюс ни на что не влияет
					prev = &tokens[k]
					continue
				}
				// у префиксного оператора нет левого операнда,
				// снимать со стека нечего
				stack = append(stack, token{typ: tokenOperator, value: opNeg})
				prev = &tokens[k]
				continue
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.typ != tokenOperator {
					break
				}
				if precedence[top.value] > precedence[op] ||
					(precedence[top.value] == precedence[op] && !rightAssociative(op)) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, token{typ: tokenOperator, value: op})
		case tokenLeftParen:
			stack = append(stack, tok)
		case tokenRightParen:
			foundLeftParen := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.typ == tokenLeftParen {
					foundLeftParen = true
					break
				}
				output = append(output, top)
			}
			if !foundLeftParen {
				return nil, errors.New("mismatched parentheses")
			}
			if len(stack) > 0 && stack[len(stack)-1].typ == tokenFunc {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		}

		prev = &tokens[k]
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.typ == tokenLeftParen {
			return nil, errors.New("mismatched parentheses")
		}
		output = append(output, top)
	}

	return output, nil
}

var knownFunctions = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"exp": true, "ln": true, "log": true,
	"sqrt": true, "abs": true,
	"floor": true, "ceil": true, "sign": true,
}

// canonSymbol приводит имена констант к каноническому виду.
// Мнимая единица обозначается пустой строкой — вызывающий код
// подставляет числовой узел.
func canonSymbol(name string) (string, bool) {
	switch name {
	case "i", "I", "j", "J":
		return "", true
	case "pi", "Pi", "PI":
		return "pi", false
	case "e", "E":
		return "e", false
	}
	return name, false
}

// buildAST собирает дерево выражения из обратной польской записи
func buildAST(rpn []token) (*node, error) {
	var stack []*node

	for _, tok := range rpn {
		switch tok.typ {
		case tokenNumber:
			v, err := strconv.ParseFloat(tok.value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number: %s", tok.value)
			}
			stack = append(stack, &node{kind: nodeNum, value: complex(v, 0)})
		case tokenImag:
			v, err := strconv.ParseFloat(tok.value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number: %s", tok.value)
			}
			stack = append(stack, &node{kind: nodeNum, value: complex(0, v)})
		case tokenIdent:
			name, imaginary := canonSymbol(tok.value)
			if imaginary {
				stack = append(stack, &node{kind: nodeNum, value: complex(0, 1)})
			} else {
				stack = append(stack, &node{kind: nodeSym, name: name})
			}
		case tokenFunc:
			name := strings.ToLower(tok.value)
			if !knownFunctions[name] {
				return nil, fmt.Errorf("unknown function: %s", tok.value)
			}
			if len(stack) < 1 {
				return nil, errors.New("invalid expression")
			}
			arg := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, &node{kind: nodeCall, name: name, args: []*node{arg}})
		case tokenOperator:
			if tok.value == opNeg {
				if len(stack) < 1 {
					return nil, errors.New("invalid expression")
				}
				arg := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				stack = append(stack, &node{kind: nodeOp, name: opNeg, args: []*node{arg}})
				continue
			}
			if len(stack) < 2 {
				return nil, errors.New("invalid expression")
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &node{kind: nodeOp, name: tok.value, args: []*node{a, b}})
		}
	}

	if len(stack) != 1 {
		return nil, errors.New("invalid expression")
	}

	return stack[0], nil
}

// parseExpression разбирает текст выражения в дерево
func parseExpression(expr string) (*node, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}

	rpn, err := toRPN(tokens)
	if err != nil {
		return nil, err
	}

	return buildAST(rpn)
}
