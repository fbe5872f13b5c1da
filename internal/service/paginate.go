package service

import (
	"github.com/yourusername/question-bank/internal/domain/entity"
)

// QuestionsPerPage определяет размер страницы при выдаче вопросов
const QuestionsPerPage = 10

// PaginateQuestions возвращает окно страницы page (нумерация с 1) размера
// pageSize над упорядоченным списком вопросов. Чистая функция: выход за
// пределы данных дает пустой срез, а не ошибку. Пустая страница
// интерпретируется вызывающим кодом как "не найдено".
func PaginateQuestions(questions []entity.Question, page, pageSize int) []entity.Question {
	if page < 1 || pageSize < 1 {
		return []entity.Question{}
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(questions) {
		return []entity.Question{}
	}
	if end > len(questions) {
		end = len(questions)
	}

	return questions[start:end]
}
