package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"calctool/internal/calculator"
	"calctool/internal/symbolic"
)

// Примеры выражений для демонстрационного режима
var demoExpressions = []string{
	"2 + 2",
	"sin(pi/2)",
	"e^2",
	"sqrt(16) + log(10)",
	"(3 + 4i) * (2 - 3i)",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	evaluator := calculator.NewEvaluator(symbolic.NewEngine())

	// Выражения из аргументов командной строки
	if len(os.Args) > 1 {
		for _, expr := range os.Args[1:] {
			printResult(evaluator, expr)
		}
		return
	}

	// Если на stdin подан поток, читаем выражения построчно
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			printResult(evaluator, line)
		}
		if err := scanner.Err(); err != nil {
			log.Fatalf("Ошибка чтения stdin: %v", err)
		}
		return
	}

	// Демонстрационный режим
	for _, expr := range demoExpressions {
		printResult(evaluator, expr)
	}
}

func printResult(evaluator *calculator.Evaluator, expr string) {
	fmt.Printf("Expression: %s\n", expr)
	result, err := evaluator.Evaluate(calculator.Request{Expression: expr})
	if err != nil {
		fmt.Printf("Error: %v\n\n", err)
		return
	}
	fmt.Printf("Result: %s\n\n", result.Result)
}
