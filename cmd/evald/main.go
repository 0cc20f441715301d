package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"calctool/internal/calculator"
	grpcserver "calctool/internal/grpc"
	"calctool/internal/symbolic"
)

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	evaluator := calculator.NewEvaluator(symbolic.NewEngine())

	grpcAddr := fmt.Sprintf(":%s", getEnvOrDefault("EVALD_GRPC_PORT", "50051"))
	httpAddr := fmt.Sprintf(":%s", getEnvOrDefault("EVALD_HTTP_PORT", "8083"))

	// HTTP-обвязка для проверки здоровья и отладочных запросов
	r := mux.NewRouter()
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)

	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/evaluate", evaluateHandler(evaluator)).Methods(http.MethodPost)

	go func() {
		log.Printf("HTTP-сервер evald запущен на http://localhost%s", httpAddr)
		if err := http.ListenAndServe(httpAddr, r); err != nil {
			log.Fatalf("Ошибка HTTP-сервера: %v", err)
		}
	}()

	log.Printf("gRPC-сервер evald запущен на %s", grpcAddr)
	if err := grpcserver.StartServer(grpcAddr, evaluator); err != nil {
		log.Fatalf("Ошибка gRPC-сервера: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func evaluateHandler(evaluator *calculator.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(evaluateResponse{Error: "Неверный формат запроса"})
			return
		}

		result, err := evaluator.Evaluate(calculator.Request{Expression: req.Expression})
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(evaluateResponse{Error: err.Error()})
			return
		}

		json.NewEncoder(w).Encode(evaluateResponse{Result: result.Result})
	}
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию, если переменная не найдена
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
