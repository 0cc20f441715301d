package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrExpiredToken = errors.New("token has expired")

// Время жизни токена по умолчанию — 60 минут
const defaultTokenExpirationMinutes = 60

type Claims struct {
	UserID int    `json:"user_id"`
	Login  string `json:"login"`
	jwt.StandardClaims
}

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-jwt-secret-for-calctool"
	}
	return []byte(secret)
}

// GetTokenExpiration возвращает время жизни токена в минутах.
// Переопределяется переменной окружения JWT_TTL_MINUTES.
func GetTokenExpiration() int {
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return minutes
		}
	}
	return defaultTokenExpirationMinutes
}

func GenerateToken(userID int, login string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(GetTokenExpiration()) * time.Minute)

	claims := &Claims{
		UserID: userID,
		Login:  login,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

// ValidateToken проверяет и извлекает данные из JWT токена
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return getJWTSecret(), nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("недействительный токен")
	}

	return claims, nil
}

// ExtractTokenFromRequest достает токен из заголовка Authorization.
// Ожидается формат "Bearer {token}".
func ExtractTokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
