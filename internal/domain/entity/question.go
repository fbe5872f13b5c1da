package entity

import (
	"strings"
	"time"
)

// Question представляет вопрос в банке вопросов.
// Категория хранится как строковый идентификатор (ссылка на Category.ID);
// ссылочная целостность на записи не проверяется — "висячая" категория
// просто никогда не попадает в выборку по категории.
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Text       string    `gorm:"column:text;size:500;not null" json:"question"`
	Answer     string    `gorm:"size:500;not null" json:"answer"`
	Category   string    `gorm:"size:50;not null;index" json:"category"`
	Difficulty int       `gorm:"not null;default:1" json:"difficulty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// MatchesTerm проверяет, содержит ли текст вопроса подстроку term
// без учета регистра. Правило совпадает с ILIKE-фильтром хранилища.
func (q *Question) MatchesTerm(term string) bool {
	return strings.Contains(strings.ToLower(q.Text), strings.ToLower(term))
}

// IsComplete проверяет, заполнены ли все обязательные поля вопроса
func (q *Question) IsComplete() bool {
	return q.Text != "" && q.Answer != "" && q.Category != "" && q.Difficulty > 0
}
