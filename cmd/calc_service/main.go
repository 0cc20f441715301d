package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"calctool/internal/api"
	"calctool/internal/auth"
	"calctool/internal/calculator"
	"calctool/internal/database"
	grpcclient "calctool/internal/grpc"
	"calctool/internal/symbolic"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	log.Printf("Время жизни токена: %d минут", auth.GetTokenExpiration())

	db := database.GetDB()
	defer db.Close()

	// По умолчанию выражения вычисляются локально. Если задан адрес
	// evald, вычисление делегируется ему по gRPC.
	var evaluator api.Evaluator
	if addr := os.Getenv("EVALD_GRPC_ADDR"); addr != "" {
		client, err := grpcclient.NewEvaluatorClient(addr)
		if err != nil {
			log.Fatalf("Не удалось подключиться к evald по адресу %s: %v", addr, err)
		}
		defer client.Close()
		log.Printf("Вычисления делегируются evald: %s", addr)
		evaluator = client
	} else {
		evaluator = calculator.NewEvaluator(symbolic.NewEngine())
	}

	calcHandler := api.NewCalculatorHandler(evaluator)
	authHandler := api.NewAuthHandler()
	router := api.SetupRouter(calcHandler, authHandler)

	port := getEnvOrDefault("CALC_SERVICE_PORT", "8082")
	addr := fmt.Sprintf(":%s", port)

	log.Printf("Сервер запущен на http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(addr, router))
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию, если переменная не найдена
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
