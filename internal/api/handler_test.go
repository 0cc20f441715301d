package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"calctool/internal/api"
	"calctool/internal/calculator"
	"calctool/internal/models"
	"calctool/internal/symbolic"
)

func withUser(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), api.UserIDKey, 1)
	return req.WithContext(ctx)
}

func stubHistory(t *testing.T) *[]models.Evaluation {
	t.Helper()

	var saved []models.Evaluation

	originalSave := api.SaveEvaluationFunc
	originalGet := api.GetEvaluationsFunc
	t.Cleanup(func() {
		api.SaveEvaluationFunc = originalSave
		api.GetEvaluationsFunc = originalGet
	})

	api.SaveEvaluationFunc = func(eval *models.Evaluation, userID int) error {
		saved = append(saved, *eval)
		return nil
	}
	api.GetEvaluationsFunc = func(userID int) ([]models.Evaluation, error) {
		return saved, nil
	}

	return &saved
}

func TestCalculatorHandler_Calculate(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		wantStatus     int
		wantResult     string
		wantErrMessage string
	}{
		{
			name:        "корректное выражение",
			requestBody: api.CalculateRequest{Expression: "2+2*2"},
			wantStatus:  http.StatusOK,
			wantResult:  "6",
		},
		{
			name:        "комплексное выражение",
			requestBody: api.CalculateRequest{Expression: "(3 + 4i) * (2 - 3i)"},
			wantStatus:  http.StatusOK,
			wantResult:  "18 - 1i",
		},
		{
			name:           "некорректное выражение",
			requestBody:    api.CalculateRequest{Expression: "2+"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "Expression is not valid",
		},
		{
			name:           "пустой запрос",
			requestBody:    nil,
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: "Internal server error",
		},
		{
			name:           "пустое выражение",
			requestBody:    api.CalculateRequest{Expression: ""},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "Expression is not valid",
		},
		{
			name:           "деление на ноль",
			requestBody:    api.CalculateRequest{Expression: "1/0"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "Expression is not valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubHistory(t)
			handler := api.NewCalculatorHandler(calculator.NewEvaluator(symbolic.NewEngine()))

			var body []byte
			if tt.requestBody != nil {
				var err error
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewReader(body)))
			w := httptest.NewRecorder()

			handler.Calculate(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("статус = %d, ожидался %d, тело: %s", w.Code, tt.wantStatus, w.Body.String())
			}

			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("не удалось разобрать ответ: %v", err)
			}

			if tt.wantResult != "" && resp["result"] != tt.wantResult {
				t.Errorf("result = %q, ожидалось %q", resp["result"], tt.wantResult)
			}
			if tt.wantErrMessage != "" && resp["error"] != tt.wantErrMessage {
				t.Errorf("error = %q, ожидалось %q", resp["error"], tt.wantErrMessage)
			}
		})
	}
}

func TestCalculatorHandler_Unauthorized(t *testing.T) {
	stubHistory(t)
	handler := api.NewCalculatorHandler(calculator.NewEvaluator(symbolic.NewEngine()))

	body, _ := json.Marshal(api.CalculateRequest{Expression: "2+2"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("статус = %d, ожидался %d", w.Code, http.StatusUnauthorized)
	}
}

// Кеш не должен менять результат и должен сохранять запись в истории
func TestCalculatorHandler_CacheIdempotent(t *testing.T) {
	saved := stubHistory(t)
	handler := api.NewCalculatorHandler(calculator.NewEvaluator(symbolic.NewEngine()))

	results := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		body, _ := json.Marshal(api.CalculateRequest{Expression: "sin(pi/2)"})
		req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewReader(body)))
		w := httptest.NewRecorder()

		handler.Calculate(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("статус = %d, тело: %s", w.Code, w.Body.String())
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		results = append(results, resp["result"])
	}

	if results[0] != results[1] {
		t.Errorf("повторный запрос дал другой результат: %q и %q", results[0], results[1])
	}
	if len(*saved) != 2 {
		t.Errorf("в истории %d записей, ожидалось 2", len(*saved))
	}
}

func TestCalculatorHandler_GetHistory(t *testing.T) {
	saved := stubHistory(t)
	*saved = append(*saved, models.Evaluation{
		ID:         "test-id",
		Expression: "2+2",
		Result:     "4",
		Status:     models.StatusCompleted,
	})

	handler := api.NewCalculatorHandler(calculator.NewEvaluator(symbolic.NewEngine()))

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("статус = %d, тело: %s", w.Code, w.Body.String())
	}

	var list models.EvaluationList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Evaluations) != 1 || list.Evaluations[0].Result != "4" {
		t.Errorf("неожиданная история: %+v", list)
	}
}
