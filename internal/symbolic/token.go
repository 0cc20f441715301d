package symbolic

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

type tokenType string

const (
	tokenNumber     tokenType = "number"
	tokenImag       tokenType = "imag"
	tokenIdent      tokenType = "ident"
	tokenFunc       tokenType = "func"
	tokenOperator   tokenType = "operator"
	tokenLeftParen  tokenType = "left_paren"
	tokenRightParen tokenType = "right_paren"
)

type token struct {
	typ   tokenType
	value string
}

func isDigit(c byte) bool {
	return unicode.IsDigit(rune(c))
}

func isLetter(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

// суффикс мнимой единицы сразу после числового литерала: 4i, 3.5j
func hasImagSuffix(expr string, j int) bool {
	if j >= len(expr) {
		return false
	}
	c := expr[j]
	if c != 'i' && c != 'I' && c != 'j' && c != 'J' {
		return false
	}
	if j+1 < len(expr) && (isLetter(expr[j+1]) || isDigit(expr[j+1])) {
		return false
	}
	return true
}

func tokenize(expr string) ([]token, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, errors.New("empty expression")
	}

	var tokens []token

	for i := 0; i < len(expr); i++ {
		char := expr[i]

		switch {
		case char == ' ' || char == '\t' || char == '\n' || char == '\r':
			// пробелы между токенами игнорируются
		case char == '(':
			tokens = append(tokens, token{typ: tokenLeftParen, value: "("})
		case char == ')':
			tokens = append(tokens, token{typ: tokenRightParen, value: ")"})
		case char == '*':
			// "**" — синоним возведения в степень
			if i+1 < len(expr) && expr[i+1] == '*' {
				tokens = append(tokens, token{typ: tokenOperator, value: "^"})
				i++
			} else {
				tokens = append(tokens, token{typ: tokenOperator, value: "*"})
			}
		case char == '+' || char == '-' || char == '/' || char == '^':
			tokens = append(tokens, token{typ: tokenOperator, value: string(char)})
		case isDigit(char) || (char == '.' && i+1 < len(expr) && isDigit(expr[i+1])):
			j := i
			for j < len(expr) && (isDigit(expr[j]) || expr[j] == '.') {
				j++
			}
			// экспоненциальная запись: 1e5, 2.5e-3. Суффикс e без
			// цифр после него остается отдельным идентификатором
			if j < len(expr) && (expr[j] == 'e' || expr[j] == 'E') {
				k := j + 1
				if k < len(expr) && (expr[k] == '+' || expr[k] == '-') {
					k++
				}
				if k < len(expr) && isDigit(expr[k]) {
					for k < len(expr) && isDigit(expr[k]) {
						k++
					}
					j = k
				}
			}
			value := expr[i:j]
			if strings.Count(value, ".") > 1 {
				return nil, fmt.Errorf("invalid number: %s", value)
			}
			if hasImagSuffix(expr, j) {
				tokens = append(tokens, token{typ: tokenImag, value: value})
				i = j
			} else {
				tokens = append(tokens, token{typ: tokenNumber, value: value})
				i = j - 1
			}
		case isLetter(char):
			j := i
			for j < len(expr) && (isLetter(expr[j]) || isDigit(expr[j])) {
				j++
			}
			tokens = append(tokens, token{typ: tokenIdent, value: expr[i:j]})
			i = j - 1
		default:
			return nil, fmt.Errorf("invalid character: %c", char)
		}
	}

	return tokens, nil
}
