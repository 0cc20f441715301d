package main

import (
	"log"
	"os"

	"calctool/internal/calculator"
	"calctool/internal/mcp"
	"calctool/internal/symbolic"
)

func main() {
	// stdout занят протоколом, все логи уходят в stderr
	log.SetOutput(os.Stderr)

	evaluator := calculator.NewEvaluator(symbolic.NewEngine())
	server := mcp.NewServer(mcp.NewHandler(evaluator))

	log.Println("MCP-сервер calctool запущен на stdio")
	if err := server.ProcessStream(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Ошибка обработки потока: %v", err)
	}
}
