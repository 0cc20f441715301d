package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"calctool/internal/auth"
	"calctool/internal/database"
	"calctool/internal/models"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErrorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if strings.TrimSpace(req.Login) == "" || strings.TrimSpace(req.Password) == "" {
		SendErrorResponse(w, http.StatusBadRequest, "Login and password required")
		return
	}

	if _, err := database.CreateUser(req.Login, req.Password); err != nil {
		SendErrorResponse(w, http.StatusConflict, "User already exists")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"})
}

// Login обрабатывает запрос на вход в систему
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErrorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := database.GetUser(req.Login)
	if err != nil || user == nil {
		SendErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !database.CheckPasswordHash(req.Password, user.Password) {
		SendErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Login)
	if err != nil {
		SendErrorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AuthResponse{Token: token})
}

// TokenInfo возвращает информацию о времени жизни токена
func (h *AuthHandler) TokenInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"expirationMinutes": strconv.Itoa(auth.GetTokenExpiration()),
	})
}
