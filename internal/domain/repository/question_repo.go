package repository

import (
	"github.com/yourusername/question-bank/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	Delete(id uint) error

	// ListAll возвращает все вопросы в порядке возрастания id
	ListAll() ([]entity.Question, error)

	// ListByCategory возвращает вопросы указанной категории (по строковой ссылке)
	ListByCategory(categoryRef string) ([]entity.Question, error)

	// SearchByText возвращает вопросы, текст которых содержит подстроку term
	// без учета регистра, в порядке возрастания id
	SearchByText(term string) ([]entity.Question, error)

	// CountAll возвращает общее количество вопросов
	CountAll() (int64, error)
}
