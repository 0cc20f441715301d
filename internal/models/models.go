package models

// Evaluation представляет одно вычисленное выражение в истории пользователя.
// Результат хранится строкой: он может быть вещественным, комплексным
// или символьным.
type Evaluation struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type EvaluationList struct {
	Evaluations []Evaluation `json:"evaluations"`
}

// Статусы вычисления в истории
const (
	StatusCompleted = "completed"
	StatusError     = "error"
)
