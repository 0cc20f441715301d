package symbolic

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []token
		wantErr string
	}{
		{
			name:  "числа и операторы",
			input: "2+3.5*4",
			want: []token{
				{tokenNumber, "2"},
				{tokenOperator, "+"},
				{tokenNumber, "3.5"},
				{tokenOperator, "*"},
				{tokenNumber, "4"},
			},
		},
		{
			name:  "двойная звездочка как степень",
			input: "2**3",
			want: []token{
				{tokenNumber, "2"},
				{tokenOperator, "^"},
				{tokenNumber, "3"},
			},
		},
		{
			name:  "мнимый литерал",
			input: "3 + 4i",
			want: []token{
				{tokenNumber, "3"},
				{tokenOperator, "+"},
				{tokenImag, "4"},
			},
		},
		{
			name:  "идентификатор и скобки",
			input: "sin(pi)",
			want: []token{
				{tokenIdent, "sin"},
				{tokenLeftParen, "("},
				{tokenIdent, "pi"},
				{tokenRightParen, ")"},
			},
		},
		{
			name:  "экспоненциальная запись",
			input: "1e5 + 2.5e-3",
			want: []token{
				{tokenNumber, "1e5"},
				{tokenOperator, "+"},
				{tokenNumber, "2.5e-3"},
			},
		},
		{
			name:  "e без цифр остается константой",
			input: "2*e",
			want: []token{
				{tokenNumber, "2"},
				{tokenOperator, "*"},
				{tokenIdent, "e"},
			},
		},
		{
			name:    "пустое выражение",
			input:   "   ",
			wantErr: "empty expression",
		},
		{
			name:    "недопустимый символ",
			input:   "2 # 3",
			wantErr: "invalid character",
		},
		{
			name:    "две точки в числе",
			input:   "1.2.3",
			wantErr: "invalid number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenize(tt.input)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("tokenize() error = %v, want %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("tokenize() unexpected error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("tokenize() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("токен %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseExpression_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "оборванный оператор",
			input:  "2 +",
			errMsg: "invalid expression",
		},
		{
			name:   "незакрытая скобка",
			input:  "(2+2",
			errMsg: "mismatched parentheses",
		},
		{
			name:   "лишняя закрывающая скобка",
			input:  "2+2)",
			errMsg: "mismatched parentheses",
		},
		{
			name:   "неизвестная функция",
			input:  "frob(2)",
			errMsg: "unknown function",
		},
		{
			name:   "функция без аргумента",
			input:  "sin()",
			errMsg: "invalid expression",
		},
		{
			name:   "два числа подряд",
			input:  "2 3",
			errMsg: "invalid expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseExpression(tt.input)
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("parseExpression(%q) error = %v, want %q", tt.input, err, tt.errMsg)
			}
		})
	}
}

// Приоритеты и ассоциативность: -2^2 = -(2^2), 2^3^2 = 2^(3^2)
func TestParseExpression_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"унарный минус слабее степени", "-2^2", "-4"},
		{"степень правоассоциативна", "2^3^2", "512"},
		{"умножение раньше сложения", "2+3*4", "14"},
		{"скобки меняют порядок", "(2+3)*4", "20"},
		{"унарный плюс", "+2+2", "4"},
		{"двойной унарный минус", "--2", "2"},
		{"отрицательный показатель степени", "2^-3", "0.125"},
		{"отрицательный показатель после двойной звездочки", "2**-3", "0.125"},
		{"минус и основания и показателя", "-2^-2", "-0.25"},
		{"экспоненциальный литерал", "1e5 + 2.5e-3", "100000.0025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parseExpression(tt.input)
			if err != nil {
				t.Fatalf("parseExpression(%q) error = %v", tt.input, err)
			}
			v, err := evalNode(root)
			if err != nil {
				t.Fatalf("evalNode(%q) error = %v", tt.input, err)
			}
			if got := formatValue(v); got != tt.want {
				t.Errorf("%q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
