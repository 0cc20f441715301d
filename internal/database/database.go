package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"golang.org/x/crypto/bcrypt"

	"calctool/internal/models"
)

var (
	db   *sql.DB
	once sync.Once
)

func dbPath() string {
	if path := os.Getenv("CALCTOOL_DB"); path != "" {
		return path
	}
	return "./calctool.db"
}

// GetDB возвращает экземпляр соединения с базой данных
func GetDB() *sql.DB {
	once.Do(func() {
		var err error
		db, err = sql.Open("sqlite", dbPath())
		if err != nil {
			panic(fmt.Sprintf("Не удалось подключиться к базе данных: %v", err))
		}

		createTables()
	})

	return db
}

func createTables() {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			login TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		)
	`)
	if err != nil {
		panic(fmt.Sprintf("Ошибка создания таблицы users: %v", err))
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS evaluations (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL,
			expression TEXT NOT NULL,
			result TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%d.%m.%Y %H:%M:%S', 'now')),
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`)
	if err != nil {
		panic(fmt.Sprintf("Ошибка создания таблицы evaluations: %v", err))
	}
}

// CreateUser создает нового пользователя в базе данных
func CreateUser(login, password string) (int, error) {
	var count int
	err := GetDB().QueryRow("SELECT COUNT(*) FROM users WHERE login = ?", login).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка проверки существования пользователя: %w", err)
	}

	if count > 0 {
		return 0, fmt.Errorf("пользователь с логином %s уже существует", login)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	result, err := db.Exec("INSERT INTO users (login, password) VALUES (?, ?)", login, string(hashedPassword))
	if err != nil {
		return 0, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ошибка получения ID пользователя: %w", err)
	}

	return int(id), nil
}

func GetUser(login string) (*models.User, error) {
	var user models.User
	err := GetDB().QueryRow("SELECT id, login, password FROM users WHERE login = ?", login).
		Scan(&user.ID, &user.Login, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	return &user, nil
}

// SaveEvaluation сохраняет вычисление в истории пользователя
func SaveEvaluation(eval *models.Evaluation, userID int) error {
	if eval.CreatedAt == "" {
		eval.CreatedAt = time.Now().Format("02.01.2006 15:04:05")
	}

	_, err := GetDB().Exec(
		"INSERT INTO evaluations (id, user_id, expression, result, status, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		eval.ID, userID, eval.Expression, eval.Result, eval.Status, eval.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения вычисления: %w", err)
	}

	log.Printf("СОХРАНЕНО В БД: ID=%s, userID=%d, expression='%s', status=%s, result=%s",
		eval.ID, userID, eval.Expression, eval.Status, eval.Result)

	return nil
}

// GetEvaluations возвращает историю вычислений пользователя, новые первыми
func GetEvaluations(userID int) ([]models.Evaluation, error) {
	rows, err := GetDB().Query(
		"SELECT id, expression, result, status, created_at FROM evaluations WHERE user_id = ? ORDER BY rowid DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения истории: %w", err)
	}
	defer rows.Close()

	var evaluations []models.Evaluation
	for rows.Next() {
		var eval models.Evaluation
		err := rows.Scan(&eval.ID, &eval.Expression, &eval.Result, &eval.Status, &eval.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения данных вычисления: %w", err)
		}
		evaluations = append(evaluations, eval)
	}

	return evaluations, rows.Err()
}

// CheckPasswordHash сравнивает пароль и хеш пароля
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
