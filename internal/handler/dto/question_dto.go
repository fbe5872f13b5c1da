package dto

import (
	"net/http"

	"github.com/yourusername/question-bank/internal/domain/entity"
)

// CategoriesResponse представляет справочник категорий для ответа клиенту
type CategoriesResponse struct {
	Success         bool            `json:"success"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories"`
}

// QuestionListResponse представляет страницу вопросов для ответа клиенту.
// Categories заполняется только для общего листинга, CurrentCategory —
// только для выборки по категории.
type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions"`
	Categories      map[uint]string   `json:"categories,omitempty"`
	CurrentCategory string            `json:"current_category,omitempty"`
}

// CreatedResponse представляет результат создания вопроса
type CreatedResponse struct {
	Success        bool              `json:"success"`
	Created        uint              `json:"created"`
	Questions      []entity.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
}

// DeletedResponse представляет результат удаления вопроса
type DeletedResponse struct {
	Success        bool              `json:"success"`
	Deleted        uint              `json:"deleted"`
	Questions      []entity.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
}

// QuizResponse представляет очередной вопрос игры.
// При исчерпании пула Question отсутствует, Success остается true.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *entity.Question `json:"question,omitempty"`
}

// ErrorResponse представляет единый формат тела ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Сообщения ошибок, в точности как в исходном API
var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "Not Found",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusMethodNotAllowed:    "method not allowed",
}

// NewErrorResponse создает тело ошибки для указанного HTTP статуса
func NewErrorResponse(status int) ErrorResponse {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
