package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"

	"calctool/internal/calculator"
	"calctool/internal/database"
	"calctool/internal/models"
)

// Подменяются в тестах, чтобы не поднимать базу
var (
	SaveEvaluationFunc = database.SaveEvaluation
	GetEvaluationsFunc = database.GetEvaluations
)

// Evaluator — источник результатов: локальный вычислитель или
// gRPC клиент удаленного сервиса
type Evaluator interface {
	Evaluate(req calculator.Request) (calculator.Result, error)
}

const cacheSize = 1024

type CalculatorHandler struct {
	evaluator Evaluator
	// вычисление чистое и идемпотентное, поэтому результат можно
	// кешировать по тексту выражения
	cache *lru.Cache[string, string]
}

func NewCalculatorHandler(evaluator Evaluator) *CalculatorHandler {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		panic(err)
	}
	return &CalculatorHandler{
		evaluator: evaluator,
		cache:     cache,
	}
}

type CalculateRequest struct {
	Expression string `json:"expression"`
}

func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req CalculateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		SendErrorResponse(w, http.StatusUnprocessableEntity, "Expression is not valid")
		return
	}

	eval := &models.Evaluation{
		ID:         uuid.New().String(),
		Expression: req.Expression,
	}

	if cached, ok := h.cache.Get(strings.TrimSpace(req.Expression)); ok {
		eval.Status = models.StatusCompleted
		eval.Result = cached
		h.saveHistory(eval, userID)
		SendSuccessResponse(w, cached)
		return
	}

	result, err := h.evaluator.Evaluate(calculator.Request{Expression: req.Expression})
	if err != nil {
		eval.Status = models.StatusError
		h.saveHistory(eval, userID)

		var parseErr *calculator.ParseError
		var evalErr *calculator.EvalError
		if errors.Is(err, calculator.ErrEmptyExpression) ||
			errors.As(err, &parseErr) ||
			errors.As(err, &evalErr) {
			SendErrorResponse(w, http.StatusUnprocessableEntity, "Expression is not valid")
			return
		}

		SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.cache.Add(strings.TrimSpace(req.Expression), result.Result)

	eval.Status = models.StatusCompleted
	eval.Result = result.Result
	h.saveHistory(eval, userID)

	SendSuccessResponse(w, result.Result)
}

func (h *CalculatorHandler) saveHistory(eval *models.Evaluation, userID int) {
	if err := SaveEvaluationFunc(eval, userID); err != nil {
		log.Printf("Ошибка сохранения истории: %v", err)
	}
}

func (h *CalculatorHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	evaluations, err := GetEvaluationsFunc(userID)
	if err != nil {
		SendErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}

	if evaluations == nil {
		evaluations = []models.Evaluation{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.EvaluationList{Evaluations: evaluations})
}
